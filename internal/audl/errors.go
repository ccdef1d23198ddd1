package audl

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind distinguishes header failures from grammar failures.
type ErrorKind int

const (
	// StructuralParseError is any grammar violation, including running out
	// of tokens while a token is still expected.
	StructuralParseError ErrorKind = iota
	// HeaderSyntaxError means an element header has no valid tag name.
	HeaderSyntaxError
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case HeaderSyntaxError:
		return "SyntaxError"
	case StructuralParseError:
		return "ParseError"
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// Error is a compilation error with an optional hint.
type Error struct {
	Kind    ErrorKind
	Message string
	Hint    string // optional suggestion for fixing the error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Hint == "" {
		return e.Message
	}
	var sb strings.Builder
	sb.WriteString(e.Message)
	sb.WriteString(" (")
	sb.WriteString(e.Hint)
	sb.WriteString(")")
	return sb.String()
}

// NewErrorf creates a structural parse error with a formatted message.
func NewErrorf(format string, args ...any) *Error {
	return &Error{Kind: StructuralParseError, Message: fmt.Sprintf(format, args...)}
}

// NewErrorWithHint creates a structural parse error with a hint.
func NewErrorWithHint(message, hint string) *Error {
	return &Error{Kind: StructuralParseError, Message: message, Hint: hint}
}

// newHeaderError reports an element header without a valid tag.
func newHeaderError(header string) *Error {
	return &Error{
		Kind:    HeaderSyntaxError,
		Message: fmt.Sprintf(`Invalid tag in "%s"`, header),
		Hint:    "tags start with a letter or underscore",
	}
}

// KindOf returns the kind of a compilation error anywhere in err's chain.
// The second result is false when err is not a compilation error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
