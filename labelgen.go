// Package labelgen renders print-ready label PDFs from declarative JSON
// templates.
//
// A template (see the schema package) names positioned elements on a
// fixed-size canvas: rich text, images, QR codes, linear barcodes, lines
// and rectangles. A Generator fills the template's first page with a set of
// field values and produces the PDF in memory; batch generation repeats the
// page once per input set.
//
// Rendering is fail-open by design: a field that cannot be rendered (bad
// barcode payload, undecodable image) is skipped or replaced by a textual
// placeholder and reported as a Warning, so one bad field never blocks a
// label from printing. Only document-level problems, such as a non-positive
// page size, fail the call.
package labelgen

import (
	"bytes"
	"io"

	"go.uber.org/zap"

	"github.com/kantina/labelgen/schema"
)

// Generator renders label templates to PDF. Construct it with New.
type Generator struct {
	log        *zap.Logger
	fontFamily string
}

// Generate renders the template's first page against one set of inputs and
// returns the PDF bytes. The page measures widthMM x heightMM millimeters.
// Warnings describe elements that degraded; the document is still valid
// when warnings are present.
func (g *Generator) Generate(tpl *schema.Template, in schema.Inputs, widthMM, heightMM float64) ([]byte, []Warning, error) {
	return g.generate(tpl, []schema.Inputs{in}, widthMM, heightMM)
}

// GenerateBatch renders one page per input set, in order, onto a single
// document. Every page uses the template's first page schema and the same
// page size.
func (g *Generator) GenerateBatch(tpl *schema.Template, ins []schema.Inputs, widthMM, heightMM float64) ([]byte, []Warning, error) {
	return g.generate(tpl, ins, widthMM, heightMM)
}

// Render is the io.Writer form of Generate.
func (g *Generator) Render(w io.Writer, tpl *schema.Template, in schema.Inputs, widthMM, heightMM float64) ([]Warning, error) {
	return g.render(w, tpl, []schema.Inputs{in}, widthMM, heightMM)
}

// RenderBatch is the io.Writer form of GenerateBatch.
func (g *Generator) RenderBatch(w io.Writer, tpl *schema.Template, ins []schema.Inputs, widthMM, heightMM float64) ([]Warning, error) {
	return g.render(w, tpl, ins, widthMM, heightMM)
}

func (g *Generator) generate(tpl *schema.Template, ins []schema.Inputs, widthMM, heightMM float64) ([]byte, []Warning, error) {
	var buf bytes.Buffer
	warns, err := g.render(&buf, tpl, ins, widthMM, heightMM)
	if err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), warns, nil
}
