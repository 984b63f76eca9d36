package labelgen

import (
	"bytes"
	"fmt"
	"image/png"
	"math"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/code39"
	"github.com/boombuler/barcode/ean"
	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/kantina/labelgen/schema"
)

// rasterScale oversamples generated symbols relative to their box size in
// points, keeping modules crisp on 300 dpi label printers.
const rasterScale = 4

// renderQRCode encodes the value at medium error correction and draws it as
// a square sized to the smaller box dimension. An unencodable value leaves
// a textual placeholder and reports the failure.
func (g *Generator) renderQRCode(pdf *gofpdf.Fpdf, el *schema.QRCode, value string) error {
	if value == "" {
		return nil
	}
	x, y, w, h := boxPt(el.Geometry)
	if w <= 0 || h <= 0 {
		return fmt.Errorf("element box is empty: %gx%g mm", el.Width, el.Height)
	}
	side := math.Min(w, h)

	pngBytes, err := qrcode.Encode(value, qrcode.Medium, int(math.Max(side*rasterScale, 64)))
	if err != nil {
		g.drawPlaceholder(pdf, el.Geometry, fmt.Sprintf("[QR: %s]", truncate(value, 32)))
		return fmt.Errorf("encoding qr code: %w", err)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	name := imageName(pngBytes)
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(pngBytes))
	pdf.ImageOptions(name, x, y, side, side, false, opts, 0, "")
	return nil
}

// renderBarcode encodes the value in the element's symbology and draws it
// scaled into the box, without human-readable text. An invalid payload
// (for example a wrong-length EAN-13) leaves a placeholder instead.
func (g *Generator) renderBarcode(pdf *gofpdf.Fpdf, el *schema.Barcode, value string) error {
	if value == "" {
		return nil
	}
	x, y, w, h := boxPt(el.Geometry)
	if w <= 0 || h <= 0 {
		return fmt.Errorf("element box is empty: %gx%g mm", el.Width, el.Height)
	}

	bc, err := encodeSymbology(el.Symbology, value)
	if err == nil {
		bc, err = scaleToBox(bc, w, h)
	}
	var buf bytes.Buffer
	if err == nil {
		err = png.Encode(&buf, bc)
	}
	if err != nil {
		g.drawPlaceholder(pdf, el.Geometry, fmt.Sprintf("[Barcode: %s]", value))
		return fmt.Errorf("encoding %s barcode: %w", el.Symbology, err)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	name := imageName(buf.Bytes())
	pdf.RegisterImageOptionsReader(name, opts, &buf)
	pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	return nil
}

func encodeSymbology(sym schema.Symbology, value string) (barcode.Barcode, error) {
	switch sym {
	case schema.SymbologyEAN13:
		return ean.Encode(value)
	case schema.SymbologyCode39:
		return code39.Encode(value, false, false)
	default:
		return code128.Encode(value)
	}
}

func scaleToBox(bc barcode.Barcode, w, h float64) (barcode.Barcode, error) {
	wPx := int(math.Round(w * rasterScale))
	hPx := int(math.Round(h * rasterScale))
	// Scale refuses targets below the symbol's intrinsic module counts.
	if min := bc.Bounds().Dx(); wPx < min {
		wPx = min
	}
	if min := bc.Bounds().Dy(); hPx < min {
		hPx = min
	}
	return barcode.Scale(bc, wPx, hPx)
}

// drawPlaceholder writes a small diagnostic string into the element's box
// so a failed symbol is visible on the printed label.
func (g *Generator) drawPlaceholder(pdf *gofpdf.Fpdf, geo schema.Geometry, text string) {
	x, y, _, _ := boxPt(geo)
	const size = 6.0
	pdf.SetFont(g.fontFamily, "", size)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(x, y+size, text)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
