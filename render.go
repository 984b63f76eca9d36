package labelgen

import (
	"fmt"
	"io"
	"sort"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/kantina/labelgen/geom"
	"github.com/kantina/labelgen/schema"
)

// render builds the document and composes one page per input set. Only the
// template's first page schema is used; stored templates may carry more
// pages, but label generation renders page index 0.
func (g *Generator) render(w io.Writer, tpl *schema.Template, ins []schema.Inputs, widthMM, heightMM float64) ([]Warning, error) {
	if tpl == nil {
		return nil, ErrNilTemplate
	}
	if len(tpl.Pages) == 0 {
		return nil, ErrEmptyTemplate
	}
	if widthMM <= 0 || heightMM <= 0 {
		return nil, &RenderError{Op: "Render", Err: fmt.Errorf("%w: %gx%g mm", ErrPageSize, widthMM, heightMM)}
	}
	page := tpl.Pages[0]

	// The canvas runs in points so font sizes, stroke widths and measured
	// string widths share one unit.
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size: gofpdf.SizeType{
			Wd: geom.MMToPt(widthMM),
			Ht: geom.MMToPt(heightMM),
		},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	if len(ins) == 0 {
		// gofpdf cannot finalize a zero-page document; callers reject empty
		// batches upstream, this keeps the output well formed regardless.
		pdf.AddPage()
	}

	var warns []Warning
	for i, in := range ins {
		pdf.AddPage()
		warns = append(warns, g.renderPage(pdf, page, in, i)...)
	}

	if pdf.Err() {
		return nil, &RenderError{Op: "Render", Err: pdf.Error()}
	}
	if err := pdf.Output(w); err != nil {
		return nil, &RenderError{Op: "Output", Err: err}
	}
	return warns, nil
}

// renderPage draws every field of the page schema onto the current PDF
// page. Field order within a page carries no meaning; fields are walked in
// sorted name order so identical calls produce identical documents.
func (g *Generator) renderPage(pdf *gofpdf.Fpdf, page schema.Page, in schema.Inputs, pageIdx int) []Warning {
	names := make([]string, 0, len(page))
	for name := range page {
		names = append(names, name)
	}
	sort.Strings(names)

	var warns []Warning
	for _, name := range names {
		el := page[name]
		if err := g.renderElement(pdf, el, in[name]); err != nil {
			g.log.Warn("element degraded",
				zap.Int("page", pageIdx),
				zap.String("field", name),
				zap.String("kind", el.Kind()),
				zap.Error(err))
			warns = append(warns, Warning{Page: pageIdx, Field: name, Kind: el.Kind(), Err: err})
		}
	}
	return warns
}

func (g *Generator) renderElement(pdf *gofpdf.Fpdf, el schema.Element, value string) error {
	switch el := el.(type) {
	case *schema.Text:
		return g.renderText(pdf, el, value)
	case *schema.Image:
		return g.renderImage(pdf, el, value)
	case *schema.QRCode:
		return g.renderQRCode(pdf, el, value)
	case *schema.Barcode:
		return g.renderBarcode(pdf, el, value)
	case *schema.Line:
		g.renderLine(pdf, el)
		return nil
	case *schema.Rect:
		g.renderRect(pdf, el)
		return nil
	default:
		return fmt.Errorf("unhandled element kind %q", el.Kind())
	}
}

// boxPt converts an element's geometry into canvas coordinates: the
// top-left corner plus the box extent, all in points.
func boxPt(geo schema.Geometry) (x, y, w, h float64) {
	x, y = geom.Transform(geo.Position.X, geo.Position.Y)
	return x, y, geom.MMToPt(geo.Width), geom.MMToPt(geo.Height)
}
