package flexbox

// mainCrossOf splits a (width, height) pair into (main, cross) according
// to the container's axis orientation.
func mainCrossOf(isRow bool, width, height float64) (main, cross float64) {
	if isRow {
		return width, height
	}
	return height, width
}

// fromMainCross is the inverse of mainCrossOf.
func fromMainCross(isRow bool, main, cross float64) (width, height float64) {
	if isRow {
		return main, cross
	}
	return cross, main
}

// buildFlexItem resolves one in-flow child into scratch flexItem state:
// margins, flex-basis, and the hypothetical main size (spec §4.4).
// widthRef/widthRefDefinite is the parent's available *width* specifically —
// per spec §4.1, percent margins/padding always resolve against inline-size
// (the containing block's width) regardless of which axis the edge is on,
// so this is passed separately from availableMain/availableCross.
func buildFlexItem(child *Node, dir Direction, fd FlexDirection, isRow bool, availableMain float64, mainDefinite bool, availableCross float64, crossDefinite bool, widthRef float64, widthRefDefinite bool) *flexItem {
	mainLead, mainTrail := axisLeadingTrailing(fd, dir, true)
	crossLead, crossTrail := axisLeadingTrailing(fd, dir, false)

	margin := resolveEdges(child.Style.Margin, dir, widthRef, widthRefDefinite)

	it := &flexItem{node: child}
	it.marginMainLead, it.autoMarginMainLead = marginComponent(margin, mainLead)
	it.marginMainTrail, it.autoMarginMainTrail = marginComponent(margin, mainTrail)
	it.marginCrossLead, it.autoMarginCrossLead = marginComponent(margin, crossLead)
	it.marginCrossTrail, it.autoMarginCrossTrail = marginComponent(margin, crossTrail)

	it.alignSelf = effectiveAlignSelf(child.Style.AlignSelf, AlignStretch) // parent's AlignItems substituted by caller

	mainDim, _ := styleMainCross(child.Style, isRow)
	minMain, maxMain := styleMinMaxMain(child.Style, isRow)
	it.minMain = minMain.ResolveOr(availableMain, mainDefinite, 0)
	if maxMain.IsUndefined() || maxMain.IsAuto() {
		it.hasMaxMain = false
	} else {
		it.maxMain = maxMain.ResolveOr(availableMain, mainDefinite, 0)
		it.hasMaxMain = true
	}

	it.flexBasis = resolveFlexBasis(child, isRow, mainDim, availableMain, mainDefinite, availableCross, crossDefinite, dir)

	hyp := it.flexBasis
	if hyp < it.minMain {
		hyp = it.minMain
	}
	if it.hasMaxMain && hyp > it.maxMain {
		hyp = it.maxMain
	}
	// Automatic minimum main size (spec §4.4 step 2): a content-derived
	// flex basis (flexBasis and the main dimension both auto, so
	// resolveFlexBasis fell back to max-content measurement) ordinarily
	// floors the item at its content size. For an overflow:hidden/scroll
	// item that floor is 0 instead — since this engine has no separate
	// min-content tracking, the practical equivalent is to let the
	// content-derived basis be capped down to the available main space
	// rather than forcing the container to honor it, which is what
	// produces the documented Yoga divergence (clipped content never
	// demands room beyond its container).
	contentDerived := (child.Style.FlexBasis.IsAuto() || child.Style.FlexBasis.IsUndefined()) && (mainDim.IsAuto() || mainDim.IsUndefined())
	if contentDerived && mainDefinite && child.Style.Overflow.clipsContent() && hyp > availableMain {
		hyp = availableMain
	}
	if hyp < 0 {
		hyp = 0
	}
	it.hypotheticalMain = hyp
	it.scaledShrink = child.Style.FlexShrink * it.flexBasis

	return it
}

func marginComponent(m resolvedPhysical, edge Edge) (value float64, auto bool) {
	switch edge {
	case EdgeLeft:
		return m.Left, m.AutoLeft
	case EdgeTop:
		return m.Top, m.AutoTop
	case EdgeRight:
		return m.Right, m.AutoRight
	default:
		return m.Bottom, m.AutoBottom
	}
}

func styleMainCross(s Style, isRow bool) (main, cross Value) {
	if isRow {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

func styleMinMaxMain(s Style, isRow bool) (min, max Value) {
	if isRow {
		return s.MinWidth, s.MaxWidth
	}
	return s.MinHeight, s.MaxHeight
}

func styleMinMaxCross(s Style, isRow bool) (min, max Value) {
	if isRow {
		return s.MinHeight, s.MaxHeight
	}
	return s.MinWidth, s.MaxWidth
}

// resolveFlexBasis implements spec §4.4 step 1's precedence: explicit
// flexBasis, else the main-axis dimension if defined, else the child's
// max-content main size obtained by measuring it under unconstrained
// main / AtMost cross.
func resolveFlexBasis(child *Node, isRow bool, mainDim Value, availableMain float64, mainDefinite bool, availableCross float64, crossDefinite bool, dir Direction) float64 {
	basis := child.Style.FlexBasis
	if !basis.IsAuto() && !basis.IsUndefined() {
		return basis.ResolveOr(availableMain, mainDefinite, 0)
	}
	if !mainDim.IsAuto() && !mainDim.IsUndefined() {
		if v := mainDim.ResolveOr(availableMain, mainDefinite, -1); v >= 0 {
			return v
		}
	}

	// Fall back to max-content: measure the child with its cross axis
	// bounded AtMost by availableCross (unconstrained when the cross axis
	// is indefinite), then read back its main-axis size.
	crossMode := MeasureAtMost
	cross := availableCross
	if !crossDefinite {
		crossMode = MeasureUndefined
		cross = Unconstrained
	}
	var w, h float64
	if isRow {
		w, h = layoutNode(child, Unconstrained, cross, MeasureUndefined, crossMode, dir, false)
	} else {
		w, h = layoutNode(child, cross, Unconstrained, crossMode, MeasureUndefined, dir, false)
	}
	main, _ := mainCrossOf(isRow, w, h)
	return main
}

// buildFlexLines groups a node's in-flow children into main-axis lines
// under wrap (spec §4.4). Absolute and Display:None children never
// enter a line; they are handled by C8 and the Display:None short
// circuit respectively.
func buildFlexLines(parent *Node, dir Direction, isRow bool, wrap FlexWrap, availableMain float64, mainDefinite bool, availableCross float64, crossDefinite bool, gap float64, widthRef float64, widthRefDefinite bool) []*flexLine {
	var lines []*flexLine
	var cur *flexLine

	startLine := func() {
		cur = &flexLine{}
		lines = append(lines, cur)
	}

	for _, child := range parent.children {
		if child.Style.Display == DisplayNone {
			continue
		}
		if child.Style.PositionType == PositionAbsolute {
			continue
		}

		item := buildFlexItem(child, dir, parent.Style.FlexDirection, isRow, availableMain, mainDefinite, availableCross, crossDefinite, widthRef, widthRefDefinite)
		item.alignSelf = effectiveAlignSelf(child.Style.AlignSelf, parent.Style.AlignItems)

		// Overflow container automatic minimum main size is 0 (spec
		// §4.4 step 2's documented Yoga divergence) — already satisfied
		// since we never raise minMain above the style's own MinWidth/
		// MinHeight, and we don't add a content-based automatic minimum
		// here at all.
		_ = parent.Style.Overflow

		if cur == nil {
			startLine()
		} else if wrap != NoWrap && len(cur.items) > 0 {
			lineGap := gap * float64(len(cur.items))
			used := lineGap
			for _, it := range cur.items {
				used += it.outerHypotheticalMain()
			}
			if used+item.outerHypotheticalMain() > availableMain && mainDefinite {
				startLine()
			}
		}
		cur.items = append(cur.items, item)
	}

	for _, line := range lines {
		if len(line.items) > 1 {
			line.mainGap = gap * float64(len(line.items)-1)
		}
	}

	if wrap == WrapReverse {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}

	return lines
}
