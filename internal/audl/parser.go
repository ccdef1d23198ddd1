package audl

import (
	"fmt"
	"strings"
)

// Parser builds an AST from a token sequence.
//
// It keeps a single forward cursor with one token of lookahead and never
// backtracks. The first error aborts the parse; no partial tree is returned.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a Parser over tokens.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseTokens parses tokens into top-level nodes.
func ParseTokens(tokens []Token) ([]Node, error) {
	return NewParser(tokens).Parse()
}

// Parse parses the whole token sequence.
//
//	Program := Element*
func (p *Parser) Parse() ([]Node, error) {
	var nodes []Node
	for !p.atEnd() {
		node, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// atEnd reports whether every token has been consumed.
func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// peek returns the next token without consuming it.
func (p *Parser) peek() (Token, bool) {
	if p.atEnd() {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

// peekIs reports whether the next token has the given kind.
func (p *Parser) peekIs(kind TokenKind) bool {
	tok, ok := p.peek()
	return ok && tok.Kind == kind
}

// next consumes one token. what names the expected token for errors.
func (p *Parser) next(what string) (Token, error) {
	tok, ok := p.peek()
	if !ok {
		return Token{}, NewErrorf("unexpected end of input, expected %s", what)
	}
	p.pos++
	return tok, nil
}

// expect consumes a token of the given kind.
func (p *Parser) expect(kind TokenKind) error {
	tok, err := p.next(quoteKind(kind))
	if err != nil {
		return err
	}
	if tok.Kind != kind {
		return NewErrorf("expected %s, got %q", quoteKind(kind), tok.Literal)
	}
	return nil
}

// word consumes a non-delimiter token, such as a loop variable or text literal.
func (p *Parser) word(what string) (string, error) {
	tok, err := p.next(what)
	if err != nil {
		return "", err
	}
	if tok.IsDelimiter() {
		return "", NewErrorf("expected %s, got %q", what, tok.Literal)
	}
	return tok.Literal, nil
}

// parseElement parses one element or loop.
//
//	Element := 'For' ForRest
//	         | Header '(' TextLiteral ')'
//	         | Header '{' Element* '}'
//	         | Header
func (p *Parser) parseElement() (Node, error) {
	if p.peekIs(TokenFor) {
		loop, err := p.parseFor()
		if err != nil {
			return nil, err
		}
		return loop, nil
	}

	tok, err := p.next("element")
	if err != nil {
		return nil, err
	}
	header, err := ParseElementHeader(tok.Literal)
	if err != nil {
		return nil, err
	}

	switch {
	case p.peekIs(TokenLParen):
		p.pos++
		text, err := p.parseTextArg()
		if err != nil {
			return nil, err
		}
		return newElement(header, []Node{text}), nil

	case p.peekIs(TokenLBrace):
		p.pos++
		children, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return newElement(header, children), nil
	}

	return newElement(header, nil), nil
}

// parseTextArg parses the remainder of Tag("text") after the '('.
func (p *Parser) parseTextArg() (*Text, error) {
	if p.peekIs(TokenRParen) {
		return nil, NewErrorWithHint(`expected text literal after "("`, `write Tag("text")`)
	}
	lit, err := p.word("text literal")
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenRParen); err != nil {
		return nil, err
	}
	return &Text{Content: unwrapText(lit)}, nil
}

// unwrapText drops the first and last byte of a text argument, which are
// expected to be its quotes. They are not checked.
func unwrapText(lit string) string {
	if len(lit) < 2 {
		return ""
	}
	return lit[1 : len(lit)-1]
}

// parseBlock parses children up to and including the closing '}'.
// The opening '{' has already been consumed.
func (p *Parser) parseBlock() ([]Node, error) {
	children := []Node{}
	for !p.peekIs(TokenRBrace) {
		if p.atEnd() {
			return nil, NewErrorWithHint(`unexpected end of input, expected "}"`, "unclosed block")
		}
		child, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	p.pos++ // }
	return children, nil
}

// parseFor parses a loop.
//
//	ForRest := Identifier 'in' Identifier '{' Element* '}'
//
// The header words may share one token ("For item in items[]") or be spread
// over several lines, since only newlines and delimiters split tokens.
func (p *Parser) parseFor() (*ForLoop, error) {
	tok, err := p.next(`"For"`)
	if err != nil {
		return nil, err
	}
	words := strings.Fields(tok.Literal)[1:]
	for len(words) < len(loopHeaderParts) {
		lit, err := p.word(loopHeaderParts[len(words)])
		if err != nil {
			return nil, err
		}
		words = append(words, strings.Fields(lit)...)
	}
	if len(words) > len(loopHeaderParts) {
		return nil, NewErrorf("unexpected %q in loop header", words[len(loopHeaderParts)])
	}
	if words[1] != "in" {
		return nil, NewErrorWithHint(fmt.Sprintf(`expected "in", got %q`, words[1]), "write For item in items[] { ... }")
	}
	if err := p.expect(TokenLBrace); err != nil {
		return nil, err
	}
	children, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ForLoop{Variable: words[0], Iterable: words[2], Children: children}, nil
}

// loopHeaderParts names the words following For, in order.
var loopHeaderParts = []string{"loop variable", `"in"`, "loop iterable"}

// quoteKind renders a token kind for error messages.
func quoteKind(kind TokenKind) string {
	return `"` + kind.String() + `"`
}
