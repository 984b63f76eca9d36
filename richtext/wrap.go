package richtext

import "strings"

// Run is a maximal stretch of same-style text within one wrapped line.
type Run struct {
	Text string
	Bold bool
}

// Line is one wrapped line. Width is the measured width of all runs.
type Line struct {
	Runs  []Run
	Width float64
}

// Text returns the line's full text.
func (l Line) Text() string {
	var b strings.Builder
	for _, r := range l.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// MeasureFunc reports the rendered width of text in the current font at the
// given boldness.
type MeasureFunc func(text string, bold bool) float64

// word is a space-free token carrying its style and whether whitespace
// separated it from the previous token.
type word struct {
	text       string
	bold       bool
	spaceAfter bool
}

// Wrap greedily packs the tokenized segments into lines no wider than
// maxWidth. A hard \n in the input always starts a new line; wrapping never
// merges text across it. A single word wider than the budget is emitted on
// its own line, never split. Adjacent words of equal boldness merge into one
// run; on a style change the separating space attaches to the new run.
func Wrap(segs []Segment, maxWidth float64, measure MeasureFunc) []Line {
	var lines []Line
	for _, para := range splitParagraphs(segs) {
		lines = append(lines, wrapParagraph(para, maxWidth, measure)...)
	}
	return lines
}

// splitParagraphs cuts the segment list at explicit newlines, preserving
// segment styles. Every paragraph is wrapped independently.
func splitParagraphs(segs []Segment) [][]Segment {
	paras := [][]Segment{nil}
	for _, seg := range segs {
		parts := strings.Split(seg.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				paras = append(paras, nil)
			}
			if part != "" {
				last := len(paras) - 1
				paras[last] = append(paras[last], Segment{Text: part, Bold: seg.Bold})
			}
		}
	}
	return paras
}

func wrapParagraph(segs []Segment, maxWidth float64, measure MeasureFunc) []Line {
	words := splitWords(segs)
	if len(words) == 0 {
		// Blank paragraph, e.g. between two consecutive newlines.
		return []Line{{}}
	}

	var lines []Line
	var cur Line
	pendingSpace := false
	for _, w := range words {
		sep := ""
		if pendingSpace && len(cur.Runs) > 0 {
			sep = " "
		}
		width := measure(sep+w.text, w.bold)
		if len(cur.Runs) > 0 && cur.Width+width > maxWidth {
			lines = append(lines, cur)
			cur = Line{}
			sep = ""
			width = measure(w.text, w.bold)
		}
		appendRun(&cur, sep+w.text, w.bold, width)
		pendingSpace = w.spaceAfter
	}
	return append(lines, cur)
}

func appendRun(l *Line, text string, bold bool, width float64) {
	if n := len(l.Runs); n > 0 && l.Runs[n-1].Bold == bold {
		l.Runs[n-1].Text += text
	} else {
		l.Runs = append(l.Runs, Run{Text: text, Bold: bold})
	}
	l.Width += width
}

// splitWords cuts segments into space-free words. A style boundary with no
// intervening space keeps the halves adjacent when drawn.
func splitWords(segs []Segment) []word {
	var words []word
	for _, seg := range segs {
		rest := seg.Text
		for rest != "" {
			i := strings.IndexRune(rest, ' ')
			if i < 0 {
				words = append(words, word{text: rest, bold: seg.Bold})
				break
			}
			if i > 0 {
				words = append(words, word{text: rest[:i], bold: seg.Bold, spaceAfter: true})
			} else if n := len(words); n > 0 {
				words[n-1].spaceAfter = true
			}
			rest = strings.TrimLeft(rest[i:], " ")
		}
	}
	return words
}
