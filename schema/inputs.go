package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Inputs maps field names to the values that fill one label instance.
// A missing field renders as empty.
type Inputs map[string]string

// ParseInputs decodes an inputs object from JSON. Values are coerced to
// strings at this boundary: numbers and booleans are formatted, null and
// absent fields become the empty string.
func ParseInputs(data []byte) (Inputs, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("schema: parsing inputs: %w", err)
	}
	out := make(Inputs, len(raw))
	for k, v := range raw {
		out[k] = coerce(v)
	}
	return out, nil
}

// ParseInputsList decodes a JSON array of inputs objects for batch
// generation, preserving order.
func ParseInputsList(data []byte) ([]Inputs, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("schema: parsing inputs list: %w", err)
	}
	out := make([]Inputs, 0, len(raws))
	for i, raw := range raws {
		in, err := ParseInputs(raw)
		if err != nil {
			return nil, fmt.Errorf("schema: inputs entry %d: %w", i, err)
		}
		out = append(out, in)
	}
	return out, nil
}

func coerce(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
