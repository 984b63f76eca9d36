package labelgen

import "testing"

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
	}{
		{"#000000", 0, 0, 0},
		{"#ffffff", 255, 255, 255},
		{"#FF8000", 255, 128, 0},
		{"112233", 17, 34, 51},
		{" #0a0b0c ", 10, 11, 12},
		{"", 0, 0, 0},
		{"#fff", 0, 0, 0},
		{"#zzzzzz", 0, 0, 0},
		{"red", 0, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := parseHexColor(tt.in)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = (%d, %d, %d), want (%d, %d, %d)",
				tt.in, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestResolveFamily(t *testing.T) {
	gen := New()
	tests := []struct {
		in   string
		want string
	}{
		{"Helvetica", "Helvetica"},
		{"arial", "Helvetica"},
		{"Times New Roman", "Times"},
		{"COURIER", "Courier"},
		{"Roboto", "Helvetica"}, // unknown falls back to the default
		{"", "Helvetica"},
	}
	for _, tt := range tests {
		if got := gen.resolveFamily(tt.in); got != tt.want {
			t.Errorf("resolveFamily(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	custom := New(WithFontFamily("Times"))
	if got := custom.resolveFamily("Roboto"); got != "Times" {
		t.Errorf("resolveFamily with custom default = %q, want Times", got)
	}
}

func TestWithFontFamilyRejectsUnknown(t *testing.T) {
	// A family outside the core set must never reach SetFont, where it
	// would poison the document's error state.
	gen := New(WithFontFamily("Roboto"))
	if got := gen.resolveFamily("Roboto"); got != "Helvetica" {
		t.Errorf("unknown default family resolved to %q, want Helvetica", got)
	}

	aliased := New(WithFontFamily("arial"))
	if got := aliased.resolveFamily("Roboto"); got != "Helvetica" {
		t.Errorf("aliased default family resolved to %q, want Helvetica", got)
	}
}
