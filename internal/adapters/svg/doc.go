// Package svg implements the SVG chart renderer. It emits a standalone SVG
// document with a calendar header, weekend shading, one bar per task and
// elbow connectors for dependencies.
package svg

import (
	"fmt"
	"strings"
)

// document accumulates SVG elements and serializes them with a fixed
// viewBox. Coordinates are in pixels.
type document struct {
	width    int
	height   int
	elements []string
}

func newDocument(width, height int) *document {
	return &document{width: width, height: height}
}

func (d *document) rect(x, y, w, h float64, attrs string) {
	d.elements = append(d.elements, fmt.Sprintf(
		`<rect x="%g" y="%g" width="%g" height="%g" %s/>`, x, y, w, h, attrs))
}

func (d *document) line(x1, y1, x2, y2 float64, attrs string) {
	d.elements = append(d.elements, fmt.Sprintf(
		`<line x1="%g" y1="%g" x2="%g" y2="%g" %s/>`, x1, y1, x2, y2, attrs))
}

func (d *document) circle(cx, cy, r float64, attrs string) {
	d.elements = append(d.elements, fmt.Sprintf(
		`<circle cx="%g" cy="%g" r="%g" %s/>`, cx, cy, r, attrs))
}

func (d *document) text(x, y float64, attrs, content string) {
	d.elements = append(d.elements, fmt.Sprintf(
		`<text x="%g" y="%g" %s>%s</text>`, x, y, attrs, escape(content)))
}

func (d *document) String() string {
	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		d.width, d.height, d.width, d.height)
	b.WriteString("\n")
	for _, el := range d.elements {
		b.WriteString("  " + el + "\n")
	}
	b.WriteString("</svg>\n")
	return b.String()
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
