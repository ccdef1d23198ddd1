package audl

import (
	"fmt"
	"strings"
)

const (
	rootOpen    = "<template>\n"
	rootClose   = "\n</template>\n"
	errorPrefix = "<!-- Error: "
	errorSuffix = " -->"
)

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Options configures a compilation.
type Options struct {
	// IndentWidth is the number of spaces per nesting level.
	// Zero means DefaultIndentWidth.
	IndentWidth int
}

// Compile compiles AUDL source into a template wrapped in a root
// <template> pair. It never fails: on error the result is a single-line
// comment of the form <!-- Error: message -->.
func Compile(input string) string {
	return CompileWithOptions(input, Options{})
}

// CompileWithOptions is Compile with explicit options.
func CompileWithOptions(input string, opts Options) string {
	out, err := CompileTemplateWithOptions(input, opts)
	if err != nil {
		return ErrorComment(err)
	}
	return out
}

// CompileTemplate compiles AUDL source and returns the wrapped template,
// or the first error encountered.
func CompileTemplate(input string) (string, error) {
	return CompileTemplateWithOptions(input, Options{})
}

// CompileTemplateWithOptions is CompileTemplate with explicit options.
// A panic in any stage is returned as an error.
func CompileTemplateWithOptions(input string, opts Options) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = "", fmt.Errorf("internal compiler error: %v", r)
		}
	}()

	nodes, err := ParseTokens(Tokenize(input))
	if err != nil {
		return "", err
	}

	g := NewGenerator()
	if opts.IndentWidth > 0 {
		g.IndentWidth = opts.IndentWidth
	}
	return rootOpen + g.Generate(nodes) + rootClose, nil
}

// ErrorComment renders err as the single-line diagnostic returned by Compile.
func ErrorComment(err error) string {
	return errorPrefix + newlineReplacer.Replace(err.Error()) + errorSuffix
}

// IsErrorOutput reports whether out is a diagnostic comment rather than a
// compiled template.
func IsErrorOutput(out string) bool {
	return strings.HasPrefix(out, errorPrefix)
}
