package flexbox

// resolveItemCrossSize determines one item's hypothetical cross size
// before the line's final cross size is known (spec §4.6 step 1):
// explicit point/percent wins (clamped to min/max cross); otherwise the
// item is measured under its resolved main size. Stretch is applied
// later once the line's cross size is settled, since stretch depends on
// it.
func resolveItemCrossSize(it *flexItem, isRow bool, dir Direction, availableCross float64, crossDefinite bool) {
	_, crossValue := styleMainCross(it.node.Style, isRow)
	minCross, maxCross := styleMinMaxCross(it.node.Style, isRow)

	clamp := func(v float64) float64 {
		if mn := minCross.ResolveOr(availableCross, crossDefinite, -1); mn >= 0 && v < mn {
			v = mn
		}
		if !maxCross.IsUndefined() && !maxCross.IsAuto() {
			if mx := maxCross.ResolveOr(availableCross, crossDefinite, -1); mx >= 0 && v > mx {
				v = mx
			}
		}
		if v < 0 {
			v = 0
		}
		return v
	}

	if !crossValue.IsAuto() && !crossValue.IsUndefined() {
		it.crossSize = clamp(crossValue.ResolveOr(availableCross, crossDefinite, 0))
		return
	}

	// Auto cross: measure the child under its resolved main size to get
	// a hypothetical content cross, honoring aspect-ratio if set.
	if ar := it.node.Style.AspectRatio; ar > 0 {
		if isRow {
			it.crossSize = clamp(it.mainSize / ar)
		} else {
			it.crossSize = clamp(it.mainSize * ar)
		}
		return
	}

	crossMode := MeasureAtMost
	crossAvail := availableCross - it.marginCrossLead - it.marginCrossTrail
	if !crossDefinite {
		crossMode = MeasureUndefined
		crossAvail = Unconstrained
	}
	var w, h float64
	if isRow {
		w, h = layoutNode(it.node, it.mainSize, crossAvail, MeasureExactly, crossMode, dir, false)
	} else {
		w, h = layoutNode(it.node, crossAvail, it.mainSize, crossMode, MeasureExactly, dir, false)
	}
	_, cross := mainCrossOf(isRow, w, h)
	it.crossSize = clamp(cross)
}

// crossAlignOffset returns the cross-axis offset (from the line's
// leading edge) for an item of outerSize within a line of lineCross,
// per spec §4.6 step 2.
func crossAlignOffset(align Align, lineCross, outerSize float64) float64 {
	switch align {
	case AlignFlexEnd:
		return lineCross - outerSize
	case AlignCenter:
		return (lineCross - outerSize) / 2
	default: // FlexStart, Stretch, Baseline (baseline handled by caller)
		return 0
	}
}

// layoutLineCrossAxis resolves item cross sizes/positions for one line
// (spec §4.6 steps 1–2). lineCross is the line's settled cross size
// (post align-content, if applicable on the final pass; pre for the
// sizing pass).
func layoutLineCrossAxis(line *flexLine, isRow bool, dir Direction, availableCross float64, crossDefinite bool, lineCross float64) {
	maxAscent, maxDescent := 0.0, 0.0
	anyBaseline := false

	for _, it := range line.items {
		resolveItemCrossSize(it, isRow, dir, availableCross, crossDefinite)

		_, crossValue := styleMainCross(it.node.Style, isRow)
		if it.alignSelf == AlignStretch && (crossValue.IsAuto() || crossValue.IsUndefined()) &&
			!it.autoMarginCrossLead && !it.autoMarginCrossTrail {
			stretched := lineCross - it.marginCrossLead - it.marginCrossTrail
			if stretched < 0 {
				stretched = 0
			}
			it.crossSize = stretched
		}

		if it.alignSelf == AlignBaseline {
			anyBaseline = true
			asc := baselineOf(it.node, it.mainSize, it.crossSize, isRow)
			if asc > maxAscent {
				maxAscent = asc
			}
			if d := it.crossSize - asc; d > maxDescent {
				maxDescent = d
			}
			it.baseline = asc
		}
	}

	for _, it := range line.items {
		if it.autoMarginCrossLead || it.autoMarginCrossTrail {
			free := lineCross - it.outerCross()
			if free < 0 {
				free = 0
			}
			switch {
			case it.autoMarginCrossLead && it.autoMarginCrossTrail:
				it.marginCrossLead += free / 2
				it.marginCrossTrail += free / 2
			case it.autoMarginCrossLead:
				it.marginCrossLead += free
			default:
				it.marginCrossTrail += free
			}
			it.crossPos = it.marginCrossLead
			continue
		}
		if it.alignSelf == AlignBaseline && anyBaseline {
			it.crossPos = it.marginCrossLead + (maxAscent - it.baseline)
			continue
		}
		it.crossPos = it.marginCrossLead + crossAlignOffset(it.alignSelf, lineCross, it.outerCross())
	}

	if anyBaseline && maxAscent+maxDescent > line.crossSize {
		line.crossSize = maxAscent + maxDescent
	}
}

// baselineOf returns a node's baseline offset from its own top edge,
// via its BaselineFunc if set, else the node's outer bottom edge (spec
// §4.6 step 2 "baseline").
func baselineOf(n *Node, mainSize, crossSize float64, isRow bool) float64 {
	if n.Style.Baseline != nil {
		w, h := fromMainCross(isRow, mainSize, crossSize)
		return n.Style.Baseline(w, h)
	}
	return crossSize
}

// hypotheticalLineCross computes a line's initial cross size (spec
// §4.6: "max of the tallest item's hypothetical outer cross") prior to
// align-content/stretch. Used by layoutContainer's cross-axis sizing
// pass.
func hypotheticalLineCross(line *flexLine, isRow bool, dir Direction, availableCross float64, crossDefinite bool) float64 {
	maxCross := 0.0
	for _, it := range line.items {
		resolveItemCrossSize(it, isRow, dir, availableCross, crossDefinite)
		if oc := it.outerCross(); oc > maxCross {
			maxCross = oc
		}
	}
	return maxCross
}

// alignContentOffsets computes, for align-content across n lines with
// totalCross already consumed, the leading offset and inter-line
// spacing (spec §4.6 step 3). Mirrors justifyOffsets' shape.
func alignContentOffsets(align Align, freeSpace float64, lineCount int) (leading, spacing float64) {
	if lineCount == 0 {
		return 0, 0
	}
	if freeSpace < 0 {
		freeSpace = 0
	}
	switch align {
	case AlignFlexEnd:
		return freeSpace, 0
	case AlignCenter:
		return freeSpace / 2, 0
	case AlignSpaceBetween:
		if lineCount > 1 {
			return 0, freeSpace / float64(lineCount-1)
		}
		return 0, 0
	case AlignSpaceAround:
		s := freeSpace / float64(lineCount)
		return s / 2, s
	default: // FlexStart, Stretch (stretch handled by caller growing each line)
		return 0, 0
	}
}
