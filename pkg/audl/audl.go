// Package audl is the public entry point of the AUDL compiler.
//
// Editor hosts call [Compile] with the full source on every change and show
// the result as-is. Output starting with an error comment (see
// [IsErrorOutput]) means the compile failed.
package audl

import "github.com/grindlemire/go-audl/internal/audl"

// Options configures a compilation.
type Options = audl.Options

// Error is a compilation error; use errors.As to inspect its Kind.
type Error = audl.Error

// Compile compiles AUDL source into a <template>-wrapped template, or a
// single-line <!-- Error: ... --> comment. It never fails or panics.
func Compile(src string) string {
	return audl.Compile(src)
}

// CompileWithOptions is Compile with explicit options.
func CompileWithOptions(src string, opts Options) string {
	return audl.CompileWithOptions(src, opts)
}

// CompileTemplate compiles AUDL source and returns the first error instead of
// an error comment.
func CompileTemplate(src string) (string, error) {
	return audl.CompileTemplate(src)
}

// IsErrorOutput reports whether out is an error comment from Compile.
func IsErrorOutput(out string) bool {
	return audl.IsErrorOutput(out)
}

// GenerateGo compiles src and returns a Go file, in package pkg, that
// declares the template as a string constant named after sourceFile.
func GenerateGo(pkg, sourceFile, src string, opts Options) ([]byte, error) {
	return audl.GenerateGo(pkg, sourceFile, src, opts)
}
