package flexbox

// layoutAbsoluteChildren positions position:Absolute children of parent
// against the parent's padded content box, after the in-flow pass has
// filled it (spec §4.7). contentRect is in parent-local coordinates
// (origin at the content box's top-left).
func layoutAbsoluteChildren(parent *Node, dir Direction, contentRect Rect, commit bool) {
	for _, child := range parent.children {
		if child.Style.Display == DisplayNone {
			continue
		}
		if child.Style.PositionType != PositionAbsolute {
			continue
		}
		layoutAbsoluteChild(child, dir, contentRect, commit)
	}
}

// commit mirrors layoutNode's: only the caller finalizing parent's own
// rectangle for this pass should finalize child's computed rectangle too.
func layoutAbsoluteChild(child *Node, dir Direction, contentRect Rect, commit bool) {
	pos := resolvePositionEdges(child.Style.Position, dir, contentRect.Width, true, contentRect.Height, true)
	margin := resolveEdges(child.Style.Margin, dir, contentRect.Width, true)

	leftSlot, rightSlot := physicalLeftRightSlots(dir)
	leftSet := !child.Style.Position.Get(EdgeLeft).IsUndefined() || !child.Style.Position.Get(leftSlot).IsUndefined()
	rightSet := !child.Style.Position.Get(EdgeRight).IsUndefined() || !child.Style.Position.Get(rightSlot).IsUndefined()
	topSet := !child.Style.Position.Get(EdgeTop).IsUndefined()
	bottomSet := !child.Style.Position.Get(EdgeBottom).IsUndefined()

	width, widthAuto := resolveAbsoluteExtent(child.Style.Width, child.Style.MinWidth, child.Style.MaxWidth, contentRect.Width, leftSet, rightSet, pos.Left, pos.Right, contentRect.Width)
	height, heightAuto := resolveAbsoluteExtent(child.Style.Height, child.Style.MinHeight, child.Style.MaxHeight, contentRect.Height, topSet, bottomSet, pos.Top, pos.Bottom, contentRect.Height)

	if widthAuto || heightAuto {
		wMode, hMode := MeasureAtMost, MeasureAtMost
		if !widthAuto {
			wMode = MeasureExactly
		}
		if !heightAuto {
			hMode = MeasureExactly
		}
		w, h := layoutNode(child, width, height, wMode, hMode, dir, false)
		if widthAuto {
			width = w
		}
		if heightAuto {
			height = h
		}
	}
	layoutNode(child, width, height, MeasureExactly, MeasureExactly, dir, commit)

	x := absolutePosition(leftSet, rightSet, pos.Left, pos.Right, margin.AutoLeft, margin.AutoRight, margin.Left, margin.Right, width, contentRect.Width)
	y := absolutePosition(topSet, bottomSet, pos.Top, pos.Bottom, margin.AutoTop, margin.AutoBottom, margin.Top, margin.Bottom, height, contentRect.Height)

	if commit {
		left, top := contentRect.X+x, contentRect.Y+y
		if child.computed.Left != left || child.computed.Top != top ||
			child.computed.Width != width || child.computed.Height != height {
			child.hasNewLayout = true
		}
		child.computed.Left = left
		child.computed.Top = top
		child.computed.Width = width
		child.computed.Height = height
		child.computed.Direction = dir
	}
}

// resolveAbsoluteExtent resolves one axis's size for an absolutely
// positioned child: explicit style size wins; else if both opposite
// position edges are set, size is derived from the gap between them
// (spec §4.7 "derive size from the trailing edge if size is auto").
func resolveAbsoluteExtent(size, minSize, maxSize Value, ref float64, leadSet, trailSet bool, lead, trail, refForGap float64) (value float64, auto bool) {
	if !size.IsAuto() && !size.IsUndefined() {
		v := size.ResolveOr(ref, true, 0)
		v = clampMinMax(v, minSize, maxSize, ref)
		return v, false
	}
	if leadSet && trailSet {
		v := refForGap - lead - trail
		if v < 0 {
			v = 0
		}
		v = clampMinMax(v, minSize, maxSize, ref)
		return v, false
	}
	return 0, true
}

func clampMinMax(v float64, minV, maxV Value, ref float64) float64 {
	return clampMinMaxRef(v, minV, maxV, ref, !isUnconstrained(ref))
}

func clampMinMaxRef(v float64, minV, maxV Value, ref float64, refDefinite bool) float64 {
	if mn := minV.ResolveOr(ref, refDefinite, -1); mn >= 0 && v < mn {
		v = mn
	}
	if mx := maxV.ResolveOr(ref, refDefinite, -1); mx >= 0 && v > mx {
		v = mx
	}
	if v < 0 {
		v = 0
	}
	return v
}

// absolutePosition computes one axis's leading offset for an absolute
// child within a span of extent refExtent, given which position edges
// are set and whether either margin is auto. Auto margins on both sides
// center the child across the remaining free space — spec §4.7's
// documented CSS-compliant extension over Yoga.
func absolutePosition(leadSet, trailSet bool, lead, trail float64, leadAuto, trailAuto bool, leadMargin, trailMargin float64, size, refExtent float64) float64 {
	if leadAuto && trailAuto && !leadSet && !trailSet && !currentConfig.StrictYogaParity {
		return (refExtent - size) / 2
	}
	if leadAuto && trailSet {
		return refExtent - trail - trailMargin - size
	}
	if leadSet {
		return lead + leadMargin
	}
	if trailSet {
		return refExtent - trail - trailMargin - size
	}
	return leadMargin
}
