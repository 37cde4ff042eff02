package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Marker selectors recognized by Detector, in order of preference.
const (
	MarkerTags        = "b, strong"
	MarkerClass       = ".bold"
	MarkerInlineStyle = "[style*='font-weight:bold'], [style*='font-weight: bold'], [style*='font-weight:700'], [style*='font-weight: 700']"
)

// Detector identifies how a document marks headwords.
// Word processors export bold text as tags, CSS classes or inline styles
// depending on the tool and its settings.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectMarker returns the marker selector matching the most elements in
// the container. Returns DefaultMarker if no convention is found.
func (d *Detector) DetectMarker(rawHTML string, container string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return DefaultMarker
	}

	root := doc.Find(container).First()
	if root.Length() == 0 {
		root = doc.Selection
	}

	best, bestCount := DefaultMarker, 0
	for _, candidate := range []string{MarkerTags, MarkerClass, MarkerInlineStyle} {
		if count := d.count(root, candidate); count > bestCount {
			best, bestCount = candidate, count
		}
	}
	return best
}

// count returns the number of non-empty elements matching selector.
func (d *Detector) count(root *goquery.Selection, selector string) int {
	n := 0
	root.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		if strings.TrimSpace(sel.Text()) != "" {
			n++
		}
	})
	return n
}
