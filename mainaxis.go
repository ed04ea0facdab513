package flexbox

// resolveMainAxis distributes free space across one line's items by
// flexGrow/flexShrink with min/max clamps and frozen-item fixed-point
// iteration (spec §4.5). It sets each item's mainSize in place.
func resolveMainAxis(line *flexLine, availableMain float64) {
	n := len(line.items)
	if n == 0 {
		return
	}

	outerHypoSum := 0.0
	for _, it := range line.items {
		it.mainSize = it.hypotheticalMain
		it.frozen = false
		outerHypoSum += it.outerHypotheticalMain()
	}
	freeSpace := availableMain - outerHypoSum - line.mainGap

	growing := freeSpace > 0
	if growing && line.totalGrow() <= 0 {
		return // nothing to grow; items keep hypothetical size
	}
	if !growing && (freeSpace >= 0 || line.totalShrink() <= 0) {
		return // no deficit, or nothing can shrink
	}

	// Bounded fixed-point iteration: each round either converges or
	// freezes at least one more item, so it terminates in at most n
	// rounds (spec §4.5, §5 "O(T)... bounded by line length").
	for round := 0; round < n; round++ {
		remaining := freeSpace
		var weightSum float64
		anyUnfrozen := false
		for _, it := range line.items {
			if it.frozen {
				remaining += it.outerHypotheticalMain() - it.outerMain()
				continue
			}
			anyUnfrozen = true
			if growing {
				weightSum += it.node.Style.FlexGrow
			} else {
				weightSum += it.scaledShrink
			}
		}
		if !anyUnfrozen || weightSum <= 0 {
			break
		}

		violated := false
		for _, it := range line.items {
			if it.frozen {
				continue
			}
			var share float64
			if growing {
				share = remaining * it.node.Style.FlexGrow / weightSum
				it.mainSize = it.hypotheticalMain + share
			} else {
				share = remaining * it.scaledShrink / weightSum
				it.mainSize = it.hypotheticalMain + share // remaining is negative here
			}

			clamped := it.mainSize
			if clamped < it.minMain {
				clamped = it.minMain
			}
			if it.hasMaxMain && clamped > it.maxMain {
				clamped = it.maxMain
			}
			if clamped < 0 {
				clamped = 0
			}
			if clamped != it.mainSize {
				it.mainSize = clamped
				it.frozen = true
				violated = true
			}
		}
		if !violated {
			break
		}
	}

	for _, it := range line.items {
		if it.mainSize < 0 {
			it.mainSize = 0
		}
	}
}

// distributeAutoMainMargins implements spec §4.5's auto-main-margin
// rule: if any item on the line has an auto main margin, the remaining
// free space is split equally among all auto margins and justify-
// content is suppressed for that line. Returns true if it took effect.
func distributeAutoMainMargins(line *flexLine, availableMain float64) bool {
	count := line.autoMainMarginCount()
	if count == 0 {
		return false
	}
	used := line.mainGap
	for _, it := range line.items {
		used += it.outerMain()
	}
	free := availableMain - used
	if free < 0 {
		free = 0
	}
	share := free / float64(count)
	for _, it := range line.items {
		if it.autoMarginMainLead {
			it.marginMainLead = share
		}
		if it.autoMarginMainTrail {
			it.marginMainTrail = share
		}
	}
	return true
}

// justifyOffsets computes the leading offset and inter-item spacing for
// a justify-content mode given the line's remaining free space (spec
// §4.5). RTL row mirroring is applied afterward, as a whole-line
// coordinate flip, rather than here — see layoutContainer.
func justifyOffsets(justify Justify, freeSpace float64, itemCount int) (leading, spacing float64) {
	if itemCount == 0 {
		return 0, 0
	}
	if freeSpace < 0 {
		freeSpace = 0
	}
	switch justify {
	case JustifyFlexEnd:
		return freeSpace, 0
	case JustifyCenter:
		return freeSpace / 2, 0
	case JustifySpaceBetween:
		if itemCount > 1 {
			return 0, freeSpace / float64(itemCount-1)
		}
		return 0, 0
	case JustifySpaceAround:
		s := freeSpace / float64(itemCount)
		return s / 2, s
	case JustifySpaceEvenly:
		s := freeSpace / float64(itemCount+1)
		return s, s
	default: // JustifyFlexStart
		return 0, 0
	}
}

// layoutLineMainAxis resolves main sizes, auto margins, and justify
// positioning for one line, filling in each item's mainPos (relative to
// the content box's main-axis origin). reverseMain is true for
// *Reverse flex directions and flips item visitation order without
// reversing the underlying slice. gap is the raw per-item gutter value
// (not pre-multiplied by item count).
func layoutLineMainAxis(line *flexLine, availableMain, gap float64, justify Justify, reverseMain bool) {
	resolveMainAxis(line, availableMain)

	autoApplied := distributeAutoMainMargins(line, availableMain)

	used := line.mainGap
	for _, it := range line.items {
		used += it.outerMain()
	}
	freeSpace := availableMain - used

	effectiveJustify := justify
	if autoApplied {
		effectiveJustify = JustifyFlexStart
	}
	leading, spacing := justifyOffsets(effectiveJustify, freeSpace, len(line.items))

	order := make([]int, len(line.items))
	for i := range order {
		order[i] = i
	}
	if reverseMain {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	pos := leading
	for i, idx := range order {
		it := line.items[idx]
		pos += it.marginMainLead
		it.mainPos = pos
		pos += it.mainSize + it.marginMainTrail + spacing
		if i < len(order)-1 {
			pos += gap
		}
	}
}
