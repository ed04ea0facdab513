package flexbox

import (
	"strings"

	"github.com/rivo/uniseg"
)

// DefaultTextMeasureFunc returns a MeasureFunc that treats a node as a
// single block of wrapped plain text, measuring cell widths with
// grapheme-cluster awareness (wide runes, combining marks, emoji
// sequences) rather than len()/utf8.RuneCountInString, which undercounts
// or overcounts in a terminal. Lines are greedily word-wrapped to the
// width the engine offers; height is the resulting line count.
//
// This is sugar for the common text-leaf case (§4.3/§6.1's opaque
// measure-callback contract); nothing else in the engine depends on it.
func DefaultTextMeasureFunc(text string) MeasureFunc {
	return func(width float64, widthMode MeasureMode, height float64, heightMode MeasureMode) (float64, float64) {
		maxWidth := width
		if widthMode == MeasureUndefined || isUnconstrained(width) {
			maxWidth = Unconstrained
		}
		lines := wrapText(text, maxWidth)

		w := 0.0
		for _, line := range lines {
			if lw := float64(uniseg.StringWidth(line)); lw > w {
				w = lw
			}
		}
		h := float64(len(lines))
		return w, h
	}
}

// wrapText greedily word-wraps text to maxWidth terminal cells (or not
// at all, if maxWidth is Unconstrained).
func wrapText(text string, maxWidth float64) []string {
	paragraphs := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if isUnconstrained(maxWidth) {
		return paragraphs
	}

	var out []string
	for _, para := range paragraphs {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		lineWidth := uniseg.StringWidth(line)
		for _, word := range words[1:] {
			wordWidth := uniseg.StringWidth(word)
			if float64(lineWidth+1+wordWidth) > maxWidth {
				out = append(out, line)
				line = word
				lineWidth = wordWidth
				continue
			}
			line += " " + word
			lineWidth += 1 + wordWidth
		}
		out = append(out, line)
	}
	return out
}
