package labelgen

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/kantina/labelgen/schema"
)

const defaultStrokeWidth = 1.0

// renderLine draws a horizontal stroke across the element's width.
func (g *Generator) renderLine(pdf *gofpdf.Fpdf, el *schema.Line) {
	x, y, w, _ := boxPt(el.Geometry)
	sw := el.StrokeWidth
	if sw <= 0 {
		sw = defaultStrokeWidth
	}
	r, gr, b := parseHexColor(el.Color)
	pdf.SetDrawColor(r, gr, b)
	pdf.SetLineWidth(sw)
	pdf.Line(x, y, x+w, y)
}

// renderRect draws an axis-aligned box: filled when a fill color is set,
// stroked when a border is set, outline-only when neither is.
func (g *Generator) renderRect(pdf *gofpdf.Fpdf, el *schema.Rect) {
	x, y, w, h := boxPt(el.Geometry)

	style := ""
	if el.Color != "" {
		r, gr, b := parseHexColor(el.Color)
		pdf.SetFillColor(r, gr, b)
		style = "F"
	}
	if el.BorderColor != "" || el.BorderWidth > 0 {
		r, gr, b := parseHexColor(el.BorderColor)
		pdf.SetDrawColor(r, gr, b)
		bw := el.BorderWidth
		if bw <= 0 {
			bw = defaultStrokeWidth
		}
		pdf.SetLineWidth(bw)
		style += "D"
	}
	if style == "" {
		style = "D"
	}
	pdf.Rect(x, y, w, h, style)
}
