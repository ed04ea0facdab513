package flexbox

// Edge is one of the six logical slots used for margin, padding, and
// position (spec §3 "Edge").
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
	EdgeStart
	EdgeEnd
	edgeCount
)

// Gutter selects which axis a Gap applies to (spec §3 "Gutter").
type Gutter uint8

const (
	GutterRow Gutter = iota
	GutterColumn
)

// Direction is the resolved (or inherited) writing direction. Only
// LTR/RTL horizontal variation is supported per spec §1 non-goals.
type Direction uint8

const (
	DirectionInherit Direction = iota
	DirectionLTR
	DirectionRTL
)

// FlexDirection selects the main axis and its physical orientation.
type FlexDirection uint8

const (
	Column FlexDirection = iota
	ColumnReverse
	Row
	RowReverse
)

func (fd FlexDirection) isRow() bool {
	return fd == Row || fd == RowReverse
}

func (fd FlexDirection) isReverse() bool {
	return fd == RowReverse || fd == ColumnReverse
}

// EdgeValues holds a typed Value for each of the six logical edge slots,
// used for Margin, Padding, and Position.
type EdgeValues [edgeCount]Value

func (e *EdgeValues) Set(edge Edge, v Value) { e[edge] = v }
func (e EdgeValues) Get(edge Edge) Value     { return e[edge] }

// BorderValues holds a raw, unitless number (spec: "no unit") per edge.
type BorderValues [edgeCount]float64

func (b *BorderValues) Set(edge Edge, n float64) { b[edge] = n }
func (b BorderValues) Get(edge Edge) float64     { return b[edge] }

// physicalLeftRightSlots returns which logical slot supplies the
// physical left and right edge under dir: Start/End fold to Left/Right
// under LTR and Right/Left under RTL (spec §4.1).
func physicalLeftRightSlots(dir Direction) (leftSlot, rightSlot Edge) {
	if dir == DirectionRTL {
		return EdgeEnd, EdgeStart
	}
	return EdgeStart, EdgeEnd
}

// resolvedPhysical is the resolved physical box edges (Left, Top, Right,
// Bottom) for one of Margin/Padding after direction folding and Value
// resolution against ref. This is the single helper spec §4.1 requires:
// "All downstream code must read edges through this helper — never via
// raw style access — to keep RTL correct."
type resolvedPhysical struct {
	Left, Top, Right, Bottom float64
	// autoLeft/autoRight/autoTop/autoBottom record whether that physical
	// edge was UnitAuto (only meaningful for margin; callers that don't
	// care may ignore these).
	AutoLeft, AutoTop, AutoRight, AutoBottom bool
}

// resolveEdges resolves an EdgeValues (margin or padding) into physical
// values. ref is the reference length for Percent resolution — per spec
// §4.1, percent margins/padding always resolve against the parent's
// main-axis available width, regardless of which axis the edge is on.
func resolveEdges(ev EdgeValues, dir Direction, ref float64, refDefinite bool) resolvedPhysical {
	leftSlot, rightSlot := physicalLeftRightSlots(dir)

	left := ev.Get(EdgeLeft)
	if !ev.Get(leftSlot).IsUndefined() {
		left = ev.Get(leftSlot)
	}
	right := ev.Get(EdgeRight)
	if !ev.Get(rightSlot).IsUndefined() {
		right = ev.Get(rightSlot)
	}
	top := ev.Get(EdgeTop)
	bottom := ev.Get(EdgeBottom)

	out := resolvedPhysical{}
	out.AutoLeft = left.IsAuto()
	out.AutoRight = right.IsAuto()
	out.AutoTop = top.IsAuto()
	out.AutoBottom = bottom.IsAuto()
	out.Left = left.ResolveOr(ref, refDefinite, 0)
	out.Right = right.ResolveOr(ref, refDefinite, 0)
	out.Top = top.ResolveOr(ref, refDefinite, 0)
	out.Bottom = bottom.ResolveOr(ref, refDefinite, 0)
	return out
}

// resolvePositionEdges is resolveEdges specialized for the `position`
// property: unlike margin/padding (always resolved against inline-size,
// spec §4.1), CSS resolves left/right/start/end position percentages
// against the containing block's width and top/bottom against its
// height, so the two axes need independent reference lengths.
func resolvePositionEdges(ev EdgeValues, dir Direction, widthRef float64, widthRefDefinite bool, heightRef float64, heightRefDefinite bool) resolvedPhysical {
	horizontal := resolveEdges(ev, dir, widthRef, widthRefDefinite)
	vertical := resolveEdges(ev, dir, heightRef, heightRefDefinite)
	return resolvedPhysical{
		Left: horizontal.Left, Right: horizontal.Right,
		AutoLeft: horizontal.AutoLeft, AutoRight: horizontal.AutoRight,
		Top: vertical.Top, Bottom: vertical.Bottom,
		AutoTop: vertical.AutoTop, AutoBottom: vertical.AutoBottom,
	}
}

// resolveBorder folds logical Start/End into physical Left/Right for a
// BorderValues; border numbers need no Value resolution (no unit).
func resolveBorder(bv BorderValues, dir Direction) (left, top, right, bottom float64) {
	leftSlot, rightSlot := physicalLeftRightSlots(dir)
	left = bv.Get(EdgeLeft)
	if bv.Get(leftSlot) != 0 {
		left = bv.Get(leftSlot)
	}
	right = bv.Get(EdgeRight)
	if bv.Get(rightSlot) != 0 {
		right = bv.Get(rightSlot)
	}
	return left, bv.Get(EdgeTop), right, bv.Get(EdgeBottom)
}

// toEdgeInsets converts a resolvedPhysical margin/padding result into an
// EdgeInsets usable by Rect.Inset.
func (r resolvedPhysical) toEdgeInsets() EdgeInsets {
	return EdgeInsets{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

func (r resolvedPhysical) Horizontal() float64 { return r.Left + r.Right }
func (r resolvedPhysical) Vertical() float64   { return r.Top + r.Bottom }

// EdgeInsets is a resolved, purely physical set of four edge amounts.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

func (e EdgeInsets) Horizontal() float64 { return e.Left + e.Right }
func (e EdgeInsets) Vertical() float64   { return e.Top + e.Bottom }

// axisLeadingTrailing returns, for the given axis (main iff isMain) of a
// container laid out with flexDirection fd under direction dir, which
// physical edges are "leading" and "trailing". This is the other half of
// the single-helper requirement in spec §4.1: main/cross axis code calls
// this instead of hardcoding Left/Top.
func axisLeadingTrailing(fd FlexDirection, dir Direction, isMain bool) (leading, trailing Edge) {
	rowAxis := fd.isRow()
	onThisAxisIsRow := rowAxis == isMain
	if !onThisAxisIsRow {
		// This axis is vertical (column-direction main, or row-direction cross).
		if isMain && fd.isReverse() {
			return EdgeBottom, EdgeTop
		}
		return EdgeTop, EdgeBottom
	}
	// This axis is horizontal.
	leadPhysical := EdgeLeft
	if dir == DirectionRTL {
		leadPhysical = EdgeRight
	}
	trailPhysical := EdgeRight
	if dir == DirectionRTL {
		trailPhysical = EdgeLeft
	}
	if isMain && fd.isReverse() {
		leadPhysical, trailPhysical = trailPhysical, leadPhysical
	}
	return leadPhysical, trailPhysical
}

// resolveInsets computes the physical margin, padding and border insets
// for a style, given the direction and the parent main-axis available
// width used as the percent reference (spec §4.1).
func resolveInsets(style *Style, dir Direction, percentRef float64, percentRefDefinite bool) (margin, padding resolvedPhysical, border EdgeInsets) {
	margin = resolveEdges(style.Margin, dir, percentRef, percentRefDefinite)
	padding = resolveEdges(style.Padding, dir, percentRef, percentRefDefinite)
	bl, bt, br, bb := resolveBorder(style.Border, dir)
	border = EdgeInsets{Left: bl, Top: bt, Right: br, Bottom: bb}
	return
}
