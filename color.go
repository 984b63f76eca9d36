package labelgen

import (
	"strconv"
	"strings"
)

// parseHexColor converts "#RRGGBB" to 8-bit RGB components. Malformed
// input falls back to black rather than failing the element.
func parseHexColor(hex string) (r, g, b int) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16), int(v >> 8 & 0xff), int(v & 0xff)
}
