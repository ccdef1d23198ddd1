package audl

import "strings"

// Tokenize splits AUDL source into tokens.
//
// Quoted spans are opaque: delimiters inside a "..." literal do not split it.
// Newlines end the current token but never become tokens themselves.
// Tokenize cannot fail; malformed input is reported by the parser.
func Tokenize(input string) []Token {
	var (
		tokens   []Token
		buf      strings.Builder
		inString bool
	)

	flush := func() {
		if lit := strings.TrimSpace(buf.String()); lit != "" {
			tokens = append(tokens, LookupToken(lit))
		}
		buf.Reset()
	}

	// Separators are all ASCII, so scanning bytes leaves other input intact.
	for i := 0; i < len(input); i++ {
		ch := input[i]
		switch {
		case ch == '"':
			buf.WriteByte(ch)
			inString = !inString
		case !inString && isSeparator(ch):
			flush()
			if ch != '\n' {
				tokens = append(tokens, LookupToken(input[i:i+1]))
			}
		default:
			buf.WriteByte(ch)
		}
	}
	flush()

	return tokens
}

// isSeparator reports whether ch ends the current token outside a string.
func isSeparator(ch byte) bool {
	switch ch {
	case '{', '}', '(', ')', ',', '\n':
		return true
	}
	return false
}
