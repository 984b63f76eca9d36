package richtext

import (
	"testing"
)

// runeWidth measures one unit per rune regardless of style, which keeps the
// wrap tests independent of any font.
func runeWidth(text string, bold bool) float64 {
	return float64(len([]rune(text)))
}

func TestWrapStyledRuns(t *testing.T) {
	segs := Tokenize("<b>Kyllingfilet</b> med ris")
	lines := Wrap(segs, 1000, runeWidth)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	runs := lines[0].Runs
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2: %v", len(runs), runs)
	}
	if runs[0].Text != "Kyllingfilet" || !runs[0].Bold {
		t.Errorf("run 0 = %+v, want bold Kyllingfilet", runs[0])
	}
	if runs[1].Text != " med ris" || runs[1].Bold {
		t.Errorf("run 1 = %+v, want regular \" med ris\"", runs[1])
	}
}

func TestWrapWidthBound(t *testing.T) {
	segs := Tokenize("en to tre fire fem seks sju atte ni ti")
	const budget = 10.0
	lines := Wrap(segs, budget, runeWidth)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %d lines", len(lines))
	}
	for i, line := range lines {
		wide := line.Width > budget
		singleWord := len(line.Runs) == 1 && !containsSpace(line.Runs[0].Text)
		if wide && !singleWord {
			t.Errorf("line %d %q exceeds budget: width %v", i, line.Text(), line.Width)
		}
	}
}

func TestWrapLongWordNotSplit(t *testing.T) {
	lines := Wrap(Tokenize("ekstraordinaert"), 5, runeWidth)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Text() != "ekstraordinaert" {
		t.Errorf("long word was altered: %q", lines[0].Text())
	}
}

func TestWrapHardNewline(t *testing.T) {
	lines := Wrap(Tokenize("A\nB"), 1000, runeWidth)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].Text() != "A" || lines[1].Text() != "B" {
		t.Errorf("got lines %q and %q, want A and B", lines[0].Text(), lines[1].Text())
	}
}

func TestWrapBlankParagraph(t *testing.T) {
	lines := Wrap(Tokenize("A\n\nB"), 1000, runeWidth)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if len(lines[1].Runs) != 0 {
		t.Errorf("middle line should be blank, got %q", lines[1].Text())
	}
}

func TestWrapStyleBoundarySurvivesWrap(t *testing.T) {
	// Budget forces the bold word onto the second line; boldness must follow.
	segs := Tokenize("vanlig <b>fet</b>")
	lines := Wrap(segs, 6, runeWidth)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[1].Text() != "fet" || !lines[1].Runs[0].Bold {
		t.Errorf("second line = %+v, want bold fet", lines[1].Runs)
	}
}

func TestWrapMergesSameStyleWords(t *testing.T) {
	lines := Wrap(Tokenize("en to tre"), 1000, runeWidth)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if len(lines[0].Runs) != 1 {
		t.Errorf("same-style words should merge into one run, got %v", lines[0].Runs)
	}
	if lines[0].Runs[0].Text != "en to tre" {
		t.Errorf("merged run = %q, want \"en to tre\"", lines[0].Runs[0].Text)
	}
}

func containsSpace(s string) bool {
	for _, r := range s {
		if r == ' ' {
			return true
		}
	}
	return false
}
