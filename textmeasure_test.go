package flexbox

import "testing"

func TestWrapTextUnconstrainedReturnsParagraphsUnsplit(t *testing.T) {
	lines := wrapText("hello world\nsecond line", Unconstrained)
	if len(lines) != 2 || lines[0] != "hello world" || lines[1] != "second line" {
		t.Errorf("got %v", lines)
	}
}

func TestWrapTextGreedilyBreaksOnWidth(t *testing.T) {
	lines := wrapText("hello world", 5)
	want := []string{"hello", "world"}
	if len(lines) != len(want) {
		t.Fatalf("got %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWrapTextKeepsWordsThatFitOnOneLine(t *testing.T) {
	lines := wrapText("ab cd", 10)
	if len(lines) != 1 || lines[0] != "ab cd" {
		t.Errorf("got %v, want one line \"ab cd\"", lines)
	}
}

func TestWrapTextEmptyParagraphProducesEmptyLine(t *testing.T) {
	lines := wrapText("first\n\nthird", 10)
	if len(lines) != 3 || lines[1] != "" {
		t.Errorf("got %v, want a blank middle line", lines)
	}
}

func TestDefaultTextMeasureFuncUnconstrainedMeasuresWholeLineWidth(t *testing.T) {
	fn := DefaultTextMeasureFunc("hello world")
	w, h := fn(Unconstrained, MeasureUndefined, Unconstrained, MeasureUndefined)
	if w != 11 {
		t.Errorf("width = %v, want 11 (len of \"hello world\")", w)
	}
	if h != 1 {
		t.Errorf("height = %v, want 1 line", h)
	}
}

func TestDefaultTextMeasureFuncAtMostWrapsAndReportsLineCount(t *testing.T) {
	fn := DefaultTextMeasureFunc("hello world")
	w, h := fn(5, MeasureAtMost, Unconstrained, MeasureUndefined)
	if w != 5 {
		t.Errorf("width = %v, want 5 (widest wrapped line)", w)
	}
	if h != 2 {
		t.Errorf("height = %v, want 2 (two wrapped lines)", h)
	}
}
