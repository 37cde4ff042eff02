package mock

import (
	"strings"

	"github.com/fwojciec/urth"
)

var _ urth.Element = (*Element)(nil)

// Element is an in-memory urth.Element.
// Leaf elements return Value; elements with Nodes return their children's text.
type Element struct {
	Marker bool
	Value  string
	Nodes  []urth.Element
}

// IsHeadwordMarker reports Marker.
func (e *Element) IsHeadwordMarker() bool {
	return e.Marker
}

// Text returns Value for leaves and the concatenated child text otherwise.
func (e *Element) Text() string {
	if len(e.Nodes) == 0 {
		return e.Value
	}
	var b strings.Builder
	for _, n := range e.Nodes {
		b.WriteString(n.Text())
	}
	return b.String()
}

// Children returns Nodes.
func (e *Element) Children() []urth.Element {
	return e.Nodes
}

// Bold returns a headword-marker leaf.
func Bold(text string) *Element {
	return &Element{Marker: true, Value: text}
}

// Text returns a plain text leaf.
func Text(text string) *Element {
	return &Element{Value: text}
}

// P returns a paragraph with a bold headword followed by definition text.
// An empty headword produces a paragraph without a marker child.
func P(headword, text string) *Element {
	p := &Element{}
	if headword != "" {
		p.Nodes = append(p.Nodes, Bold(headword), Text(" "))
	}
	p.Nodes = append(p.Nodes, Text(text))
	return p
}
