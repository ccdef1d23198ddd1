package audl

import (
	"regexp"
	"strings"
)

var (
	tagPattern     = regexp.MustCompile(`^[a-zA-Z_][\w-]*`)
	classIDPattern = regexp.MustCompile(`\.[\w-]+|#[\w-]+`)
	propPattern    = regexp.MustCompile(`\[([^\]]+)]`)
)

// Prop is a single key="value" attribute from a bracket group.
type Prop struct {
	Key   string
	Value string
}

// ElementHeader is the decoded form of an element token such as
// Div.card#main[role=list].
type ElementHeader struct {
	Tag     string
	Classes []string
	ID      string // empty when the header has no #id
	Props   []Prop
}

// setProp assigns key. An existing key keeps its position and takes the new value.
func (h *ElementHeader) setProp(key, value string) {
	for i := range h.Props {
		if h.Props[i].Key == key {
			h.Props[i].Value = value
			return
		}
	}
	h.Props = append(h.Props, Prop{Key: key, Value: value})
}

// ParseElementHeader decodes an element header.
//
// Class and id markers are collected in a single left-to-right pass over
// everything after the tag, bracket groups included. A repeated #id keeps
// the last one; repeated classes are all kept. Each [key=value] group is
// split on '=' and only the text between the first and second '=' is used
// as the value.
func ParseElementHeader(header string) (*ElementHeader, error) {
	tag := tagPattern.FindString(header)
	if tag == "" {
		return nil, newHeaderError(header)
	}

	h := &ElementHeader{Tag: tag}
	rest := header[len(tag):]

	for _, m := range classIDPattern.FindAllString(rest, -1) {
		switch m[0] {
		case '.':
			h.Classes = append(h.Classes, m[1:])
		case '#':
			h.ID = m[1:]
		}
	}

	for _, group := range propPattern.FindAllStringSubmatch(rest, -1) {
		parts := strings.Split(group[1], "=")
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		h.setProp(strings.TrimSpace(parts[0]), unquote(strings.TrimSpace(parts[1])))
	}

	return h, nil
}

// unquote strips one leading and one trailing double quote, if present.
func unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}
