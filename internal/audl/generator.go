package audl

import (
	"fmt"
	"strings"
)

// DefaultIndentWidth is the number of spaces per nesting level.
const DefaultIndentWidth = 2

// Generator serializes an AST into template markup.
type Generator struct {
	// IndentWidth is the number of spaces per nesting level.
	// Zero or negative means DefaultIndentWidth.
	IndentWidth int

	buf strings.Builder
}

// NewGenerator creates a generator with the default indent width.
func NewGenerator() *Generator {
	return &Generator{IndentWidth: DefaultIndentWidth}
}

// AstToTemplate serializes nodes with the given indent width.
func AstToTemplate(nodes []Node, indentWidth int) string {
	g := NewGenerator()
	g.IndentWidth = indentWidth
	return g.Generate(nodes)
}

// Generate serializes top-level nodes, one per line group, separated by
// newlines. The result has no trailing newline.
func (g *Generator) Generate(nodes []Node) string {
	g.buf.Reset()
	g.generateNodes(nodes, 0)
	return g.buf.String()
}

// generateNodes writes nodes at level, separated by newlines.
func (g *Generator) generateNodes(nodes []Node, level int) {
	for i, n := range nodes {
		if i > 0 {
			g.buf.WriteByte('\n')
		}
		g.generateNode(n, level)
	}
}

func (g *Generator) generateNode(node Node, level int) {
	switch n := node.(type) {
	case *Element:
		g.generateElement(n, level)
	case *ForLoop:
		g.generateFor(n, level)
	case *Text:
		g.writeIndent(level)
		g.buf.WriteString(n.Content)
	default:
		panic(fmt.Sprintf("audl: unexpected node type %T", node))
	}
}

// generateFor lowers a loop to a keyed <template v-for> wrapper.
// Only the first "[]" of the iterable is removed.
func (g *Generator) generateFor(f *ForLoop, level int) {
	iterable := strings.Replace(f.Iterable, "[]", "", 1)

	g.writeIndent(level)
	fmt.Fprintf(&g.buf, `<template v-for="(%s, i) in %s" :key="i">`, f.Variable, iterable)
	g.buf.WriteByte('\n')
	g.generateNodes(f.Children, level+1)
	g.buf.WriteByte('\n')
	g.writeIndent(level)
	g.buf.WriteString("</template>")
}

func (g *Generator) generateElement(e *Element, level int) {
	tag := strings.ToLower(e.Tag)

	g.writeIndent(level)
	g.buf.WriteByte('<')
	g.buf.WriteString(tag)
	g.writeAttributes(e)

	if len(e.Children) == 0 {
		g.buf.WriteString(" />")
		return
	}

	g.buf.WriteString(">\n")
	g.generateNodes(e.Children, level+1)
	g.buf.WriteByte('\n')
	g.writeIndent(level)
	g.buf.WriteString("</")
	g.buf.WriteString(tag)
	g.buf.WriteByte('>')
}

// writeAttributes writes class, id and props, each with a leading space.
// Values are written verbatim.
func (g *Generator) writeAttributes(e *Element) {
	if len(e.Classes) > 0 {
		fmt.Fprintf(&g.buf, ` class="%s"`, strings.Join(e.Classes, " "))
	}
	if e.ID != "" {
		fmt.Fprintf(&g.buf, ` id="%s"`, e.ID)
	}
	for _, prop := range e.Props {
		fmt.Fprintf(&g.buf, ` %s="%s"`, prop.Key, prop.Value)
	}
}

func (g *Generator) writeIndent(level int) {
	width := g.IndentWidth
	if width <= 0 {
		width = DefaultIndentWidth
	}
	g.buf.WriteString(strings.Repeat(" ", level*width))
}
