package richtext

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Segment
	}{
		{
			name: "plain",
			in:   "Kyllingfilet med ris",
			want: []Segment{{Text: "Kyllingfilet med ris"}},
		},
		{
			name: "empty",
			in:   "",
			want: []Segment{{Text: ""}},
		},
		{
			name: "leading bold",
			in:   "<b>Kyllingfilet</b> med ris",
			want: []Segment{{Text: "Kyllingfilet", Bold: true}, {Text: " med ris"}},
		},
		{
			name: "inner bold",
			in:   "Allergen: <b>gluten</b>, soya",
			want: []Segment{{Text: "Allergen: "}, {Text: "gluten", Bold: true}, {Text: ", soya"}},
		},
		{
			name: "multiple spans",
			in:   "<b>A</b>b<b>C</b>",
			want: []Segment{{Text: "A", Bold: true}, {Text: "b"}, {Text: "C", Bold: true}},
		},
		{
			name: "case insensitive",
			in:   "<B>Viktig</B> melding",
			want: []Segment{{Text: "Viktig", Bold: true}, {Text: " melding"}},
		},
		{
			name: "unclosed tag is literal",
			in:   "pris <b>99",
			want: []Segment{{Text: "pris <b>99"}},
		},
		{
			name: "stray close tag is literal",
			in:   "a</b>b",
			want: []Segment{{Text: "a</b>b"}},
		},
		{
			name: "empty span",
			in:   "a<b></b>b",
			want: []Segment{{Text: "a"}, {Text: "b"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenizeReconstructsInput(t *testing.T) {
	inputs := []string{
		"Kyllingfilet med ris",
		"<b>Kyllingfilet</b> med ris",
		"a <b>b</b> c <b>d</b> e",
		"ingen tagger her",
		"<b>alt i fet</b>",
	}
	for _, in := range inputs {
		var b strings.Builder
		for _, seg := range Tokenize(in) {
			b.WriteString(seg.Text)
		}
		stripped := strings.NewReplacer("<b>", "", "</b>", "").Replace(in)
		if b.String() != stripped {
			t.Errorf("Tokenize(%q) reconstructs %q, want %q", in, b.String(), stripped)
		}
	}
}
