package audl

// Node is the interface implemented by all AST nodes:
// *Element, *ForLoop and *Text.
type Node interface {
	node() // marker method to ensure type safety
}

// Element is a tag with optional classes, id, props and children.
type Element struct {
	Tag      string
	Classes  []string
	ID       string // empty when the element has no id
	Props    []Prop
	Children []Node // *Element, *ForLoop or *Text
}

func (e *Element) node() {}

// ForLoop repeats its children for each item of Iterable.
//
//	For item in items[] { ... }
type ForLoop struct {
	Variable string
	Iterable string // as written, including any [] suffix
	Children []Node
}

func (f *ForLoop) node() {}

// Text is literal content inside an element. It never appears at top level.
type Text struct {
	Content string
}

func (t *Text) node() {}

// newElement builds an element node from a decoded header.
func newElement(h *ElementHeader, children []Node) *Element {
	return &Element{
		Tag:      h.Tag,
		Classes:  h.Classes,
		ID:       h.ID,
		Props:    h.Props,
		Children: children,
	}
}
