package labelgen

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"hash/fnv"
	"image"
	"math"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"
	_ "golang.org/x/image/webp"

	"github.com/kantina/labelgen/schema"
)

// renderImage decodes a data-URI or bare base64 payload and draws it scaled
// into the element box, preserving aspect ratio, anchored at the box's
// top-left corner. Remote URLs are not fetched here; the caller layer
// resolves them to base64 before rendering.
func (g *Generator) renderImage(pdf *gofpdf.Fpdf, el *schema.Image, value string) error {
	if value == "" {
		return nil
	}
	x, y, w, h := boxPt(el.Geometry)
	if w <= 0 || h <= 0 {
		// Drawing into a degenerate box would fall back to the image's
		// intrinsic size and paint outside the element.
		return fmt.Errorf("element box is empty: %gx%g mm", el.Width, el.Height)
	}
	raw, err := decodeImagePayload(value)
	if err != nil {
		return err
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decoding image: %w", err)
	}
	bounds := img.Bounds()
	iw, ih := float64(bounds.Dx()), float64(bounds.Dy())
	if iw <= 0 || ih <= 0 {
		return fmt.Errorf("image has empty bounds %v", bounds)
	}

	// Re-encode to 8-bit PNG. This normalizes everything the decoders
	// accept (16-bit PNG, webp, gif, progressive JPEG) into a form the PDF
	// canvas embeds reliably.
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, imaging.Clone(img), imaging.PNG); err != nil {
		return fmt.Errorf("normalizing image: %w", err)
	}

	scale := math.Min(w/iw, h/ih)
	drawW, drawH := iw*scale, ih*scale

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	name := imageName(raw)
	pdf.RegisterImageOptionsReader(name, opts, &buf)
	pdf.ImageOptions(name, x, y, drawW, drawH, false, opts, 0, "")
	return nil
}

// decodeImagePayload accepts "data:image/...;base64,<data>" or a raw
// base64 string and returns the decoded bytes.
func decodeImagePayload(value string) ([]byte, error) {
	payload := value
	if strings.HasPrefix(value, "data:") {
		comma := strings.Index(value, ",")
		if comma < 0 {
			return nil, fmt.Errorf("malformed data URI")
		}
		meta := value[:comma]
		if !strings.Contains(meta, ";base64") {
			return nil, fmt.Errorf("unsupported data URI encoding %q", meta)
		}
		payload = value[comma+1:]
	} else if i := strings.Index(value, "://"); i >= 0 {
		return nil, fmt.Errorf("unsupported image scheme %q: images must be base64 encoded by the caller", value[:i])
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// Tolerate payloads with the padding stripped.
		raw, err = base64.RawStdEncoding.DecodeString(payload)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding base64 payload: %w", err)
	}
	return raw, nil
}

// imageName derives a stable registration name so the same payload placed
// on several pages embeds once.
func imageName(raw []byte) string {
	h := fnv.New64a()
	h.Write(raw)
	return fmt.Sprintf("img-%016x", h.Sum64())
}
