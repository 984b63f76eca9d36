package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Template is the decoded form of a stored label template. Pages holds one
// entry per page in the template's "schemas" array; field names are unique
// within a page.
type Template struct {
	Pages []Page `json:"schemas"`
}

// Page maps field names to their elements.
type Page map[string]Element

// ParseTemplate decodes a template from its stored JSON form.
func ParseTemplate(data []byte) (*Template, error) {
	var tpl Template
	if err := json.Unmarshal(data, &tpl); err != nil {
		return nil, fmt.Errorf("schema: parsing template: %w", err)
	}
	return &tpl, nil
}

// UnmarshalJSON decodes each field's element into its concrete variant.
func (p *Page) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Page, len(raw))
	for name, msg := range raw {
		el, err := decodeElement(msg)
		if err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		out[name] = el
	}
	*p = out
	return nil
}

func decodeElement(data []byte) (Element, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	switch strings.ToLower(head.Type) {
	case "text":
		var e Text
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return &e, nil
	case "image":
		var e Image
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return &e, nil
	case "qrcode":
		var e QRCode
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return &e, nil
	case "code128":
		return decodeBarcode(data, SymbologyCode128, "code128")
	case "barcode":
		return decodeBarcode(data, SymbologyCode128, "barcode")
	case "ean13":
		return decodeBarcode(data, SymbologyEAN13, "ean13")
	case "code39":
		return decodeBarcode(data, SymbologyCode39, "code39")
	case "line":
		var e Line
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return &e, nil
	case "rectangle":
		var e Rect
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return &e, nil
	default:
		return nil, fmt.Errorf("unknown element type %q", head.Type)
	}
}

func decodeBarcode(data []byte, sym Symbology, tag string) (Element, error) {
	var e Barcode
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	e.Symbology = sym
	e.typeTag = tag
	return &e, nil
}
