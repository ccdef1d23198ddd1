package audl

import "strings"

// KnownTags is the tag vocabulary offered to editor hosts for completion.
// The compiler accepts any tag matching the header grammar.
var KnownTags = []string{
	"V-Stack", "H-Stack",
	"Card", "Grid", "Button",
	"P", "H1", "H2", "H3", "H4", "H5", "H6",
	"For", "a", "div", "span", "img", "ul", "li",
}

// CompleteTag returns the known tags starting with prefix, ignoring case,
// in KnownTags order. An empty prefix matches nothing.
func CompleteTag(prefix string) []string {
	if prefix == "" {
		return nil
	}
	prefix = strings.ToLower(prefix)
	var matches []string
	for _, tag := range KnownTags {
		if strings.HasPrefix(strings.ToLower(tag), prefix) {
			matches = append(matches, tag)
		}
	}
	return matches
}
