package flexbox

import "math"

// resolveDirection folds a node's own Direction setting against the
// direction inherited from its parent (spec §4.8 step 1). The root's
// parentDir comes from the calculateLayout argument.
func resolveDirection(node *Node, parentDir Direction) Direction {
	if node.Style.Direction != DirectionInherit {
		return node.Style.Direction
	}
	if parentDir == DirectionInherit {
		return DirectionLTR
	}
	return parentDir
}

// canonicalAvail maps any NaN that reaches an availability argument to
// the Unconstrained sentinel, so a stray NaN can never desynchronize a
// cache key from another Unconstrained query (spec §4.2, §9).
func canonicalAvail(v float64) float64 {
	if math.IsNaN(v) {
		return Unconstrained
	}
	return v
}

// layoutNode is the engine's driver (C9): given a target node and the
// constraints its parent is imposing, it resolves direction, probes the
// fingerprint cache, and either short-circuits or computes a fresh size
// for the leaf/container case, per spec §4.8.
//
// commit distinguishes the call that finalizes node's own computed
// rectangle for this pass (the root entry in calculate.go, a container's
// per-child commit loop, an absolute child's final sizing call) from a
// scratch/premeasure probe (resolveFlexBasis's content-fallback
// measurement, resolveItemCrossSize's auto-cross measurement, an
// absolute child's auto-size probe). Fingerprint caching and dirty
// clearing happen unconditionally either way — both are pure functions
// of (node, key) and premeasure results are worth caching too — but
// node.computed and hasNewLayout/hasLayout, which spec §4.8/§9 frame as
// the child's one finalized rectangle, must never be written by a probe:
// a probe commonly runs under different availability than the node's
// real assigned size, so writing it there would make the *next* commit
// call compare against a throwaway value instead of the true prior pass.
func layoutNode(node *Node, availW, availH float64, wMode, hMode MeasureMode, parentDir Direction, commit bool) (float64, float64) {
	availW = canonicalAvail(availW)
	availH = canonicalAvail(availH)
	dir := resolveDirection(node, parentDir)

	key := layoutCacheKey{
		availW: availW, availH: availH,
		widthMode: wMode, heightMode: hMode,
		parentDir:   dir,
		styleGen:    node.styleGen,
		childrenGen: node.childrenGen,
	}

	if !node.dirty {
		if w, h, cdir, ok := node.layoutCache.lookup(key); ok {
			traceFingerprintHit(node, key)
			if commit {
				node.computed.Width = w
				node.computed.Height = h
				node.computed.Direction = cdir
			}
			return w, h
		}
	}
	traceFingerprintMiss(node, key)
	traceLayoutEnter(node, key)

	var w, h float64
	switch {
	case node.Style.Display == DisplayNone:
		w, h = 0, 0
	case len(node.children) == 0:
		w, h = layoutLeaf(node, dir, availW, availH, wMode, hMode)
	default:
		w, h = layoutContainer(node, dir, availW, availH, wMode, hMode, commit)
	}

	if commit {
		prevW, prevH := node.computed.Width, node.computed.Height
		node.computed.Width = w
		node.computed.Height = h
		node.computed.Direction = dir
		if !node.hasLayout || prevW != w || prevH != h {
			node.hasNewLayout = true
		}
		node.hasLayout = true
	}
	node.dirty = false

	node.layoutCache.insert(key, w, h, dir)
	traceLayoutExit(node, key, w, h)
	return w, h
}

// layoutLeaf resolves the size of a childless node: either via its
// measure callback (spec §4.8 step 4) or its explicit style dimensions
// (step 5). An axis offered in Exactly mode takes the offered size, the
// size the parent accepted after grow/shrink/stretch.
func layoutLeaf(node *Node, dir Direction, availW, availH float64, wMode, hMode MeasureMode) (float64, float64) {
	style := &node.Style
	widthDefinite := wMode == MeasureExactly
	heightDefinite := hMode == MeasureExactly

	explicitW, hasW := resolveExplicitLeaf(style.Width, availW, widthDefinite)
	explicitH, hasH := resolveExplicitLeaf(style.Height, availH, heightDefinite)
	if widthDefinite {
		explicitW, hasW = availW, true
	}
	if heightDefinite {
		explicitH, hasH = availH, true
	}

	var w, h float64
	if style.Measure != nil {
		mw, mwMode := availW, wMode
		if hasW {
			mw, mwMode = explicitW, MeasureExactly
		}
		mh, mhMode := availH, hMode
		if hasH {
			mh, mhMode = explicitH, MeasureExactly
		}
		if _, _, hit := node.measureCache.lookup(measureCacheKey{w: mw, h: mh, wMode: mwMode, hMode: mhMode}); hit {
			traceMeasureHit(node)
		} else {
			traceMeasureCall(node)
		}
		ow, oh := node.measureCache.measure(style.Measure, mw, mwMode, mh, mhMode)

		w = applyMeasureMode(ow, mw, mwMode)
		h = applyMeasureMode(oh, mh, mhMode)
	} else {
		w = explicitW
		if !hasW {
			w = 0
			if wMode == MeasureExactly {
				w = availW
			}
		}
		h = explicitH
		if !hasH {
			h = 0
			if hMode == MeasureExactly {
				h = availH
			}
		}
	}

	w = clampMinMax(w, style.MinWidth, style.MaxWidth, availW)
	h = clampMinMax(h, style.MinHeight, style.MaxHeight, availH)
	return w, h
}

func resolveExplicitLeaf(v Value, ref float64, refDefinite bool) (value float64, ok bool) {
	if v.IsAuto() || v.IsUndefined() {
		return 0, false
	}
	r := v.Resolve(ref, refDefinite)
	if !r.isDefinite() {
		return 0, false
	}
	return r.n, true
}

// applyMeasureMode honors the mode contract of spec §4.8 step 4: Exactly
// uses the caller-provided size outright, AtMost clamps the callback's
// answer to that size, Undefined takes the callback's natural answer.
func applyMeasureMode(measured, avail float64, mode MeasureMode) float64 {
	switch mode {
	case MeasureExactly:
		return avail
	case MeasureAtMost:
		if !isUnconstrained(avail) && measured > avail {
			return avail
		}
		return measured
	default:
		return measured
	}
}

// layoutContainer runs C5–C8 for a non-leaf node and computes its own
// border-box size (spec §4.8 step 6). commit propagates from layoutNode:
// it is true only when this container's own size is being finalized for
// the pass, and gates whether its children's commit loop below finalizes
// their computed rectangles too.
func layoutContainer(node *Node, dir Direction, availW, availH float64, wMode, hMode MeasureMode, commit bool) (float64, float64) {
	style := &node.Style
	isRow := style.FlexDirection.isRow()

	widthDefinite := wMode == MeasureExactly
	heightDefinite := hMode == MeasureExactly

	percentRef := availW
	if isUnconstrained(percentRef) {
		percentRef = 0
	}
	_, padding, border := resolveInsets(style, dir, percentRef, widthDefinite)

	contentAvailW := subtractInsets(availW, padding.Horizontal()+border.Horizontal())
	contentAvailH := subtractInsets(availH, padding.Vertical()+border.Vertical())

	var availableMain, availableCross float64
	var mainDefinite, crossDefinite bool
	var gapMain, gapCross float64
	if isRow {
		availableMain, availableCross = contentAvailW, contentAvailH
		mainDefinite, crossDefinite = widthDefinite, heightDefinite
		gapMain, gapCross = style.GapRow, style.GapColumn
	} else {
		availableMain, availableCross = contentAvailH, contentAvailW
		mainDefinite, crossDefinite = heightDefinite, widthDefinite
		gapMain, gapCross = style.GapColumn, style.GapRow
	}

	lines := buildFlexLines(node, dir, isRow, style.FlexWrap, availableMain, mainDefinite, availableCross, crossDefinite, gapMain, percentRef, widthDefinite)

	reverseMain := style.FlexDirection.isReverse()
	for _, line := range lines {
		layoutLineMainAxis(line, availableMain, gapMain, style.JustifyContent, reverseMain)
	}

	// Cross-axis sizing pass: hypothetical cross size per line.
	for _, line := range lines {
		line.crossSize = hypotheticalLineCross(line, isRow, dir, availableCross, crossDefinite)
	}

	totalLinesCross := 0.0
	for i, line := range lines {
		totalLinesCross += line.crossSize
		if i > 0 {
			totalLinesCross += gapCross
		}
	}

	finalCross := availableCross
	if !crossDefinite {
		finalCross = totalLinesCross
	}

	// align-content across lines (spec §4.6 step 3); single line always
	// occupies the full cross extent.
	freeCross := finalCross - totalLinesCross
	if len(lines) == 1 {
		lines[0].crossSize = finalCross
		lines[0].crossPos = 0
	} else if len(lines) > 1 {
		if style.AlignContent == AlignStretch && freeCross > 0 {
			extra := freeCross / float64(len(lines))
			for _, line := range lines {
				line.crossSize += extra
			}
			freeCross = 0
		}
		leading, spacing := alignContentOffsets(style.AlignContent, freeCross, len(lines))
		pos := leading
		for _, line := range lines {
			line.crossPos = pos
			pos += line.crossSize + gapCross + spacing
		}
	}

	for _, line := range lines {
		layoutLineCrossAxis(line, isRow, dir, availableCross, crossDefinite, line.crossSize)
	}

	// Commit each in-flow child: invoke layoutNode with the final,
	// Exactly-mode main/cross size so its cache entry reflects the size
	// the parent actually accepted, never a pre-override hypothetical
	// one (spec §4.8 step 7, §9 "Parent-override after caching").
	mirrorRow := isRow && dir == DirectionRTL
	for _, line := range lines {
		for _, it := range line.items {
			childW, childH := fromMainCross(isRow, it.mainSize, it.crossSize)
			if it.mainSize != it.hypotheticalMain {
				traceParentOverride(it.node, childW, childH)
			}
			layoutNode(it.node, childW, childH, MeasureExactly, MeasureExactly, dir, commit)

			mainPos := it.mainPos
			if mirrorRow {
				mainPos = availableMain - it.mainPos - it.mainSize
			}
			localMain := mainPos
			localCross := line.crossPos + it.crossPos
			localX, localY := fromMainCross(isRow, localMain, localCross)

			if commit {
				left := border.Left + padding.Left + localX
				top := border.Top + padding.Top + localY
				if it.node.computed.Left != left || it.node.computed.Top != top {
					it.node.hasNewLayout = true
				}
				it.node.computed.Left = left
				it.node.computed.Top = top
			}
		}
	}

	// Own size: definite axes take the assigned border-box size outright;
	// auto axes derive from content (the widest line's main extent, the
	// stacked lines' cross extent), clamped to the AtMost bound if any.
	mainContent := totalMainExtent(lines, gapMain)
	contentW, contentH := fromMainCross(isRow, mainContent, finalCross)

	var width, height float64
	if widthDefinite {
		width = availW
	} else {
		width = contentW + padding.Horizontal() + border.Horizontal()
		if !isUnconstrained(availW) && wMode == MeasureAtMost && width > availW {
			width = availW
		}
	}
	if heightDefinite {
		height = availH
	} else {
		height = contentH + padding.Vertical() + border.Vertical()
		if !isUnconstrained(availH) && hMode == MeasureAtMost && height > availH {
			height = availH
		}
	}

	width = clampMinMax(width, style.MinWidth, style.MaxWidth, availW)
	height = clampMinMax(height, style.MinHeight, style.MaxHeight, availH)

	contentRect := Rect{
		X:      border.Left + padding.Left,
		Y:      border.Top + padding.Top,
		Width:  width - padding.Horizontal() - border.Horizontal(),
		Height: height - padding.Vertical() - border.Vertical(),
	}
	if contentRect.Width < 0 {
		contentRect.Width = 0
	}
	if contentRect.Height < 0 {
		contentRect.Height = 0
	}
	layoutAbsoluteChildren(node, dir, contentRect, commit)

	return width, height
}

// totalMainExtent returns the content-box main-axis extent consumed by
// all lines (the widest line, since lines stack on the cross axis).
func totalMainExtent(lines []*flexLine, gapMain float64) float64 {
	max := 0.0
	for _, line := range lines {
		used := 0.0
		for i, it := range line.items {
			used += it.outerMain()
			if i > 0 {
				used += gapMain
			}
		}
		if used > max {
			max = used
		}
	}
	return max
}

// subtractInsets reduces a border-box available length by padding+
// border to get the content-box available length. An Unconstrained
// (infinite) length passes through unreduced.
func subtractInsets(avail, insets float64) float64 {
	if isUnconstrained(avail) {
		return avail
	}
	v := avail - insets
	if v < 0 {
		v = 0
	}
	return v
}
