// Package goquery normalizes HTML documents into extraction input using
// goquery selections.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/urth"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Defaults for Normalizer.
const (
	DefaultMarker    = "b, strong, .bold"
	DefaultContainer = "body"
)

// blockTags end with a line break when flattened to text.
var blockTags = map[string]bool{
	"address": true, "article": true, "blockquote": true, "dd": true,
	"div": true, "dl": true, "dt": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "hr": true,
	"li": true, "ol": true, "p": true, "pre": true, "section": true,
	"table": true, "tr": true, "ul": true,
}

// skippedTags never contribute text.
var skippedTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
}

// Ensure Normalizer implements urth.Normalizer at compile time.
var _ urth.Normalizer = (*Normalizer)(nil)

// Normalizer turns HTML into elements or delimited text.
// Headword markers are the elements matching a CSS selector.
type Normalizer struct {
	marker    string
	container string
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithMarker sets the CSS selector that identifies headword markers.
func WithMarker(selector string) Option {
	return func(n *Normalizer) {
		n.marker = selector
	}
}

// WithContainer sets the CSS selector of the element whose children are
// scanned. The first match is used.
func WithContainer(selector string) Option {
	return func(n *Normalizer) {
		n.container = selector
	}
}

// NewNormalizer creates a new Normalizer.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		marker:    DefaultMarker,
		container: DefaultContainer,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Elements returns the container's children as urth elements.
// Comment nodes are dropped; text runs become leaf elements.
func (n *Normalizer) Elements(rawHTML string) ([]urth.Element, error) {
	root, markers, err := n.parse(rawHTML)
	if err != nil {
		return nil, err
	}
	return children(root.Nodes[0], markers), nil
}

// DelimitedText flattens the container to text, wrapping every marker
// element's text in delimiter. Block elements end with a newline.
func (n *Normalizer) DelimitedText(rawHTML string, delimiter string) (string, error) {
	if delimiter == "" {
		return "", urth.Errorf(urth.EINVALID, "delimiter required")
	}

	root, markers, err := n.parse(rawHTML)
	if err != nil {
		return "", err
	}

	// Only text that flatten emits can collide.
	if strings.Contains(nodeText(root.Nodes[0]), delimiter) {
		return "", urth.Errorf(urth.ECONFLICT, "delimiter %q occurs in document text", delimiter)
	}

	var b strings.Builder
	for c := root.Nodes[0].FirstChild; c != nil; c = c.NextSibling {
		flatten(&b, c, markers, delimiter)
	}
	return norm.NFC.String(b.String()), nil
}

// Title returns the document's <title>, or "" if absent.
func (n *Normalizer) Title(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}
	return norm.NFC.String(strings.TrimSpace(doc.Find("title").First().Text()))
}

// parse returns the container selection and the set of marker nodes in it.
func (n *Normalizer) parse(rawHTML string) (*goquery.Selection, map[*html.Node]bool, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, nil, urth.Errorf(urth.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, nil, urth.Errorf(urth.EINVALID, "failed to parse HTML: %v", err)
	}

	root := doc.Find(n.container).First()
	if root.Length() == 0 {
		return nil, nil, urth.Errorf(urth.ENOTFOUND, "container %q not found", n.container)
	}

	markers := make(map[*html.Node]bool)
	root.Find(n.marker).Each(func(_ int, sel *goquery.Selection) {
		markers[sel.Get(0)] = true
	})

	return root, markers, nil
}

// flatten writes the text of node to b.
func flatten(b *strings.Builder, node *html.Node, markers map[*html.Node]bool, delimiter string) {
	switch node.Type {
	case html.TextNode:
		b.WriteString(node.Data)
		return
	case html.ElementNode:
	default:
		return
	}

	if skippedTags[node.Data] {
		return
	}
	if markers[node] {
		b.WriteString(delimiter)
		b.WriteString(nodeText(node))
		b.WriteString(delimiter)
		return
	}
	if node.Data == "br" {
		b.WriteString("\n")
		return
	}

	for c := node.FirstChild; c != nil; c = c.NextSibling {
		flatten(b, c, markers, delimiter)
	}
	if blockTags[node.Data] {
		b.WriteString("\n")
	}
}

// nodeText returns the concatenated text of node and its descendants.
func nodeText(node *html.Node) string {
	if node.Type == html.TextNode {
		return node.Data
	}
	var b strings.Builder
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && skippedTags[c.Data] {
			continue
		}
		b.WriteString(nodeText(c))
	}
	return b.String()
}

func children(node *html.Node, markers map[*html.Node]bool) []urth.Element {
	var out []urth.Element
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
		case html.ElementNode:
			if skippedTags[c.Data] {
				continue
			}
		default:
			continue
		}
		out = append(out, &element{node: c, markers: markers})
	}
	return out
}

// element adapts an html.Node to urth.Element.
type element struct {
	node    *html.Node
	markers map[*html.Node]bool
}

func (e *element) IsHeadwordMarker() bool {
	return e.markers[e.node]
}

func (e *element) Text() string {
	if e.node.Type == html.ElementNode && e.node.Data == "br" {
		return "\n"
	}
	return norm.NFC.String(nodeText(e.node))
}

func (e *element) Children() []urth.Element {
	return children(e.node, e.markers)
}
