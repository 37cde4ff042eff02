package urth

import "strings"

// Element is a node produced by a markup normalizer.
// The normalizer is the only place that knows how headword markers are
// recognized (bold tags, CSS classes, inline styles).
type Element interface {
	// IsHeadwordMarker reports whether the element marks a headword.
	IsHeadwordMarker() bool

	// Text returns the element's plain text including all descendants.
	Text() string

	// Children returns the element's direct children in document order.
	// Text runs between child elements are returned as leaf elements.
	Children() []Element
}

// HeadwordText returns the text of the direct headword-marker children of el,
// space-joined and trimmed. Returns "" if el has no such children.
func HeadwordText(el Element) string {
	var parts []string
	for _, child := range el.Children() {
		if !child.IsHeadwordMarker() {
			continue
		}
		parts = append(parts, strings.TrimSpace(child.Text()))
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// DefinitionText returns the text of el with its direct headword-marker
// children left out. The element tree is not modified.
func DefinitionText(el Element) string {
	children := el.Children()
	if len(children) == 0 {
		if el.IsHeadwordMarker() {
			return ""
		}
		return el.Text()
	}

	var b strings.Builder
	for _, child := range children {
		if child.IsHeadwordMarker() {
			continue
		}
		b.WriteString(child.Text())
	}
	return b.String()
}
