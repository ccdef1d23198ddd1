package audl

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/tools/imports"
)

// EmbedGenerator writes a compiled template into a Go source file as a
// string constant, so templates can be shipped inside a Go binary.
type EmbedGenerator struct {
	buf bytes.Buffer

	// SkipImports uses format.Source instead of imports.Process (faster for tests)
	SkipImports bool
}

// NewEmbedGenerator creates a Go embedding generator.
func NewEmbedGenerator() *EmbedGenerator {
	return &EmbedGenerator{}
}

// Generate returns gofmt'd Go source declaring the template compiled from
// sourceFile as a constant in package pkg.
func (g *EmbedGenerator) Generate(pkg, sourceFile, template string) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("invalid package name %q", pkg)
	}
	name := ConstName(sourceFile)

	g.buf.Reset()
	g.buf.WriteString("// Code generated by audl generate. DO NOT EDIT.\n")
	fmt.Fprintf(&g.buf, "// Source: %s\n\n", filepath.Base(sourceFile))
	fmt.Fprintf(&g.buf, "package %s\n\n", pkg)
	fmt.Fprintf(&g.buf, "// %s is the compiled template for %s.\n", name, filepath.Base(sourceFile))
	fmt.Fprintf(&g.buf, "const %s = %s\n", name, goString(template))

	if g.SkipImports {
		return format.Source(g.buf.Bytes())
	}
	return imports.Process(GoFileName(sourceFile), g.buf.Bytes(), nil)
}

// GenerateGo compiles source and embeds the result; a compile error is
// returned rather than embedded.
func GenerateGo(pkg, sourceFile, source string, opts Options) ([]byte, error) {
	template, err := CompileTemplateWithOptions(source, opts)
	if err != nil {
		return nil, err
	}
	return NewEmbedGenerator().Generate(pkg, sourceFile, template)
}

// ConstName derives the exported constant name for a source file.
// Examples:
//
//	header.audl      -> HeaderTemplate
//	user-card.audl   -> UserCardTemplate
//	2col_grid.audl   -> X2colGridTemplate
func ConstName(sourceFile string) string {
	base := strings.TrimSuffix(filepath.Base(sourceFile), filepath.Ext(sourceFile))
	words := strings.FieldsFunc(base, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var sb strings.Builder
	for _, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		sb.WriteString(string(runes))
	}
	name := sb.String()
	if name == "" || !unicode.IsLetter([]rune(name)[0]) {
		name = "X" + name
	}
	return name + "Template"
}

// GoFileName converts a source filename to its generated Go filename.
// Examples:
//
//	header.audl   -> header_audl.go
//	my-app.audl   -> my_app_audl.go
func GoFileName(sourceFile string) string {
	dir := filepath.Dir(sourceFile)
	name := strings.TrimSuffix(filepath.Base(sourceFile), filepath.Ext(sourceFile))
	name = strings.ReplaceAll(name, "-", "_")
	return filepath.Join(dir, name+"_audl.go")
}

// goString quotes s as a raw string literal when possible.
func goString(s string) string {
	if strings.Contains(s, "`") || strings.Contains(s, "\r") {
		return strconv.Quote(s)
	}
	return "`" + s + "`"
}
