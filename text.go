package labelgen

import (
	"strings"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/kantina/labelgen/richtext"
	"github.com/kantina/labelgen/schema"
)

const (
	defaultFontSize = 10.0
	lineSpacing     = 1.2
)

// renderText tokenizes the value's <b> markup, wraps it to the element
// width, clips to the height budget and draws each line's runs with the
// resolved style. An empty value is a no-op, not an error.
func (g *Generator) renderText(pdf *gofpdf.Fpdf, el *schema.Text, value string) error {
	if value == "" {
		return nil
	}
	x, y, w, h := boxPt(el.Geometry)

	size := el.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	family := g.resolveFamily(el.FontName)
	schemaBold := strings.EqualFold(el.FontWeight, "bold")
	italic := strings.EqualFold(el.FontStyle, "italic")

	// Inline run boldness ORs with the schema-level flag.
	styleOf := func(bold bool) string {
		s := ""
		if bold || schemaBold {
			s += "B"
		}
		if italic {
			s += "I"
		}
		return s
	}
	measure := func(text string, bold bool) float64 {
		pdf.SetFont(family, styleOf(bold), size)
		return pdf.GetStringWidth(text)
	}

	lines := richtext.Wrap(richtext.Tokenize(value), w, measure)

	lineHeight := size * lineSpacing
	maxLines := int(h / lineHeight)
	if maxLines < 1 {
		maxLines = 1
	}
	if len(lines) > maxLines {
		// Overflow clips silently on the label; the log is the only trace.
		g.log.Debug("text clipped to element height",
			zap.Int("lines", len(lines)),
			zap.Int("kept", maxLines))
		lines = lines[:maxLines]
	}

	r, gr, b := parseHexColor(el.FontColor)
	pdf.SetTextColor(r, gr, b)

	for i, line := range lines {
		offset := 0.0
		switch strings.ToLower(el.Alignment) {
		case "center":
			offset = (w - line.Width) / 2
		case "right":
			offset = w - line.Width
		}
		baseline := y + size + float64(i)*lineHeight
		runX := x + offset
		for _, run := range line.Runs {
			pdf.SetFont(family, styleOf(run.Bold), size)
			pdf.Text(runX, baseline, run.Text)
			runX += pdf.GetStringWidth(run.Text)
		}
	}
	return nil
}

// resolveFamily maps a template font name onto the built-in core families.
// Anything unrecognized falls back to the generator default so a renamed
// frontend font never breaks printing.
func (g *Generator) resolveFamily(name string) string {
	if family, ok := coreFamily(name); ok {
		return family
	}
	return g.fontFamily
}

// coreFamily maps a font name onto the canvas's built-in families. Only
// these names may ever reach SetFont; an unknown family would trip the
// document's sticky error state and turn one styling mistake into a hard
// failure.
func coreFamily(name string) (string, bool) {
	switch strings.ToLower(name) {
	case "helvetica", "arial":
		return "Helvetica", true
	case "times", "times new roman", "serif":
		return "Times", true
	case "courier", "courier new", "monospace":
		return "Courier", true
	default:
		return "", false
	}
}
