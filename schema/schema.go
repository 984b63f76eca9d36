// Package schema defines the JSON label template format and its decoded form.
//
// A template describes one label's visual layout as named, absolutely
// positioned elements on a fixed-size canvas. All geometry is expressed in
// millimeters from the page's top-left corner.
//
// Example JSON:
//
//	{
//	  "schemas": [{
//	    "productName": {
//	      "type": "text",
//	      "position": {"x": 5, "y": 5},
//	      "width": 70, "height": 12,
//	      "fontSize": 10, "alignment": "center"
//	    },
//	    "ean": {
//	      "type": "ean13",
//	      "position": {"x": 5, "y": 20},
//	      "width": 40, "height": 15
//	    }
//	  }]
//	}
//
// Element types form a closed set. Decoding resolves the "type" tag into a
// concrete variant so rendering can dispatch on the Go type rather than on a
// string.
package schema

// Position is an element's top-left corner in millimeters.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Geometry holds the placement fields shared by every element variant.
type Geometry struct {
	Position Position `json:"position"`
	Width    float64  `json:"width"`  // mm
	Height   float64  `json:"height"` // mm
}

// Geom returns the element's placement.
func (g Geometry) Geom() Geometry { return g }

// Element is one named entry in a template page. The concrete type is one
// of Text, Image, QRCode, Barcode, Line, or Rect.
type Element interface {
	Geom() Geometry
	Kind() string
}

// Text is a rich-text element. The field value may contain <b>...</b>
// markers for partial bold styling.
type Text struct {
	Geometry
	FontSize   float64 `json:"fontSize"`  // points
	FontColor  string  `json:"fontColor"` // "#RRGGBB"
	Alignment  string  `json:"alignment"` // left, center, right
	FontName   string  `json:"fontName"`
	FontWeight string  `json:"fontWeight"` // "bold" applies to the whole field
	FontStyle  string  `json:"fontStyle"`  // "italic" applies to the whole field
}

func (*Text) Kind() string { return "text" }

// Image draws a base64 or data-URI payload scaled into the element box.
type Image struct {
	Geometry
}

func (*Image) Kind() string { return "image" }

// QRCode encodes the field value as a QR symbol.
type QRCode struct {
	Geometry
}

func (*QRCode) Kind() string { return "qrcode" }

// Symbology selects a linear barcode encoding.
type Symbology string

// Supported barcode symbologies. The generic "barcode" template type maps
// to Code128.
const (
	SymbologyCode128 Symbology = "code128"
	SymbologyEAN13   Symbology = "ean13"
	SymbologyCode39  Symbology = "code39"
)

// Barcode encodes the field value as a linear barcode.
type Barcode struct {
	Geometry
	Symbology Symbology `json:"-"`

	// typeTag is the template's declared type. The generic "barcode" type
	// keeps its own tag even though it encodes as Code128.
	typeTag string
}

// Kind reports the template's declared element type, e.g. "barcode" for a
// generic element that renders as Code128.
func (b *Barcode) Kind() string {
	if b.typeTag == "" {
		return string(b.Symbology)
	}
	return b.typeTag
}

// Line draws a horizontal stroke across the element's width.
type Line struct {
	Geometry
	Color       string  `json:"color"`       // "#RRGGBB"
	StrokeWidth float64 `json:"strokeWidth"` // points
}

func (*Line) Kind() string { return "line" }

// Rect draws an axis-aligned box, filled and/or stroked.
type Rect struct {
	Geometry
	Color       string  `json:"color"`       // fill, empty means no fill
	BorderColor string  `json:"borderColor"` // stroke
	BorderWidth float64 `json:"borderWidth"` // points
}

func (*Rect) Kind() string { return "rectangle" }
