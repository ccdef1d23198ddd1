package audl

import (
	"fmt"
	"strings"
)

// TokenKind classifies a token by its literal.
type TokenKind int

const (
	TokenHeader TokenKind = iota // element header: Div.card#main[role=list]
	TokenString                  // quoted text literal, quotes included
	TokenFor                     // For, alone or leading a loop header
	TokenIn                      // in
	TokenLBrace                  // {
	TokenRBrace                  // }
	TokenLParen                  // (
	TokenRParen                  // )
	TokenComma                   // ,
)

var tokenNames = map[TokenKind]string{
	TokenHeader: "Header",
	TokenString: "String",
	TokenFor:    "For",
	TokenIn:     "in",
	TokenLBrace: "{",
	TokenRBrace: "}",
	TokenLParen: "(",
	TokenRParen: ")",
	TokenComma:  ",",
}

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

// Token is a single syntactic unit. Tokens carry no position information.
type Token struct {
	Kind    TokenKind
	Literal string
}

// String returns a debug representation of the token.
func (t Token) String() string {
	lit := t.Literal
	if len(lit) > 20 {
		lit = lit[:17] + "..."
	}
	return fmt.Sprintf("%s(%q)", t.Kind, lit)
}

// IsDelimiter reports whether the token is structural punctuation.
func (t Token) IsDelimiter() bool {
	switch t.Kind {
	case TokenLBrace, TokenRBrace, TokenLParen, TokenRParen, TokenComma:
		return true
	}
	return false
}

var delimiters = map[string]TokenKind{
	"{": TokenLBrace,
	"}": TokenRBrace,
	"(": TokenLParen,
	")": TokenRParen,
	",": TokenComma,
}

var keywords = map[string]TokenKind{
	"For": TokenFor,
	"in":  TokenIn,
}

// LookupToken classifies a literal produced by the tokenizer.
func LookupToken(literal string) Token {
	if kind, ok := delimiters[literal]; ok {
		return Token{Kind: kind, Literal: literal}
	}
	if kind, ok := keywords[literal]; ok {
		return Token{Kind: kind, Literal: literal}
	}
	if isLoopHeader(literal) {
		return Token{Kind: TokenFor, Literal: literal}
	}
	if strings.HasPrefix(literal, `"`) {
		return Token{Kind: TokenString, Literal: literal}
	}
	return Token{Kind: TokenHeader, Literal: literal}
}

// isLoopHeader reports whether literal starts with the For keyword followed
// by more words, as in "For item in items[]".
func isLoopHeader(literal string) bool {
	fields := strings.Fields(literal)
	return len(fields) > 1 && fields[0] == "For"
}
