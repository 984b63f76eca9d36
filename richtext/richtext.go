// Package richtext parses inline <b>...</b> markup and wraps the result
// into width-bounded lines of styled runs.
package richtext

// Segment is a contiguous piece of input text with one style.
type Segment struct {
	Text string
	Bold bool
}

// Tokenize splits s into ordered segments at <b>...</b> boundaries. Tags
// match case-insensitively and do not nest. The concatenated segment texts
// reconstruct s with the tags removed. Malformed markup never fails: an
// open tag without a matching close is kept as literal text.
func Tokenize(s string) []Segment {
	var segs []Segment
	for len(s) > 0 {
		open := indexTag(s, "<b>")
		if open < 0 {
			segs = append(segs, Segment{Text: s})
			break
		}
		end := indexTag(s[open:], "</b>")
		if end < 0 {
			// Unclosed tag: everything from here on is literal.
			segs = append(segs, Segment{Text: s})
			break
		}
		end += open
		if open > 0 {
			segs = append(segs, Segment{Text: s[:open]})
		}
		if inner := s[open+3 : end]; inner != "" {
			segs = append(segs, Segment{Text: inner, Bold: true})
		}
		s = s[end+4:]
	}
	if segs == nil {
		segs = []Segment{{Text: ""}}
	}
	return segs
}

// indexTag finds the first occurrence of tag in s, comparing ASCII letters
// case-insensitively. Tags are pure ASCII, so a byte scan is safe on any
// UTF-8 input.
func indexTag(s, tag string) int {
	for i := 0; i+len(tag) <= len(s); i++ {
		if matchFold(s[i:i+len(tag)], tag) {
			return i
		}
	}
	return -1
}

func matchFold(s, tag string) bool {
	for i := 0; i < len(tag); i++ {
		a, b := s[i], tag[i]
		if a >= 'A' && a <= 'Z' {
			a += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}
