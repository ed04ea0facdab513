package flexbox

import "golang.org/x/text/unicode/bidi"

// DetectParagraphDirection inspects s's leading strongly-directional
// characters to pick LTR vs RTL, for callers that want a root node's
// Direction to follow its text content rather than a hardcoded default.
// It never overrides an explicit SetDirection call — callers are
// expected to use this only to choose what to pass when the direction
// would otherwise be DirectionInherit on a root.
func DetectParagraphDirection(s string) Direction {
	var p bidi.Paragraph
	p.SetString(s)
	order, err := p.Order()
	if err != nil || order.NumRuns() == 0 {
		return DirectionLTR
	}
	run := order.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}
