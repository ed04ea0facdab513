package flexbox

// flexItem is per-child scratch state used while laying out one node's
// children. It is rebuilt on every layout pass of the parent — never
// stored on the Node itself — matching the corpus convention
// (grindlemire-go-tui's flexItem) of keeping flex math off the
// persistent tree.
type flexItem struct {
	node *Node

	// outer margin on the main and cross axis, already direction-folded
	// via resolveEdges/axisLeadingTrailing.
	marginMainLead, marginMainTrail   float64
	marginCrossLead, marginCrossTrail float64
	autoMarginMainLead, autoMarginMainTrail bool
	autoMarginCrossLead, autoMarginCrossTrail bool

	flexBasis        float64
	hypotheticalMain float64
	mainSize         float64 // resolved after C6
	frozen           bool
	scaledShrink     float64 // shrink_i * flexBasis_i

	minMain, maxMain float64
	hasMaxMain       bool

	crossSize float64 // resolved after C7
	baseline  float64
	alignSelf Align

	mainPos, crossPos float64 // position within the line/content box, set by C6/C7
}

func (it *flexItem) outerMain() float64 {
	return it.mainSize + it.marginMainLead + it.marginMainTrail
}

func (it *flexItem) outerHypotheticalMain() float64 {
	return it.hypotheticalMain + it.marginMainLead + it.marginMainTrail
}

func (it *flexItem) outerCross() float64 {
	return it.crossSize + it.marginCrossLead + it.marginCrossTrail
}

// flexLine is one main-axis line of items (wrap produces more than one).
type flexLine struct {
	items []*flexItem

	mainGap float64 // gap already multiplied by (len(items)-1), cached for convenience

	crossSize float64 // resolved by C7, step 1 (before align-content stretch)
	crossPos  float64 // line's offset along the cross axis, set by C7 step 3
}

func (l *flexLine) totalGrow() float64 {
	var sum float64
	for _, it := range l.items {
		sum += it.node.Style.FlexGrow
	}
	return sum
}

func (l *flexLine) totalShrink() float64 {
	var sum float64
	for _, it := range l.items {
		sum += it.node.Style.FlexShrink
	}
	return sum
}

func (l *flexLine) autoMainMarginCount() int {
	n := 0
	for _, it := range l.items {
		if it.autoMarginMainLead {
			n++
		}
		if it.autoMarginMainTrail {
			n++
		}
	}
	return n
}
