package flexbox

import "fmt"

// ComputedLayout is the result written to a node by a full layout pass
// (spec §3 "Computed layout").
type ComputedLayout struct {
	Left, Top, Width, Height float64
	Direction                Direction
}

// Node is a single element in the layout tree. A Node is exclusively
// owned by its parent; the root is owned by the caller (spec §3
// "Node... Invariant 1").
type Node struct {
	Style Style

	parent   *Node
	children []*Node

	computed ComputedLayout
	hasLayout bool // has this node ever been laid out

	dirty       bool
	hasNewLayout bool

	styleGen    uint64
	childrenGen uint64

	layoutCache  layoutCache
	measureCache measureCache

	// calculating is set for the duration of a CalculateLayout call on
	// this node (only meaningful on a root); used to detect forbidden
	// re-entrant CalculateLayout calls from inside a measure callback
	// (spec §7 "Re-entrant calculateLayout... forbidden; must abort").
	calculating bool

	// id is a process-unique, creation-order identifier used only by the
	// optional trace subsystem (§6.3) to label events with a stable
	// "nodeIndex" without leaking pointer identity.
	id uint64
}

var nextNodeID uint64

func allocNodeID() uint64 {
	nextNodeID++
	return nextNodeID
}

// Create builds a new, empty node with default style (spec §6.1
// "Node.create()").
func Create() *Node {
	return &Node{
		Style: DefaultStyle(),
		dirty: true,
		id:    allocNodeID(),
	}
}

// GetParent returns the node's parent, or nil for a root.
func (n *Node) GetParent() *Node { return n.parent }

// GetChildCount returns the number of children.
func (n *Node) GetChildCount() int { return len(n.children) }

// GetChild returns the child at index, or nil if out of range.
func (n *Node) GetChild(index int) *Node {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	return n.children[index]
}

// InsertChild inserts child at index, reparenting it. Panics if child
// already has a parent (double-parenting) or if inserting child would
// create a cycle (child is an ancestor of n) — both are consumer bugs
// spec §7 requires rejecting, not silently accepting.
func (n *Node) InsertChild(child *Node, index int) {
	if child == nil {
		panic("flexbox: InsertChild called with nil child")
	}
	if child.parent != nil {
		panic("flexbox: node already has a parent; remove it first (double-parenting)")
	}
	if wouldCycle(n, child) {
		panic("flexbox: InsertChild would create a cycle")
	}

	if index < 0 || index > len(n.children) {
		index = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n

	n.markChildrenStructureDirty()
}

// wouldCycle reports whether attaching child under n would make child an
// ancestor of itself, i.e. n is child or a descendant of child.
func wouldCycle(n, child *Node) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == child {
			return true
		}
	}
	return false
}

// RemoveChild removes child from n's children, if present.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			n.markChildrenStructureDirty()
			return
		}
	}
}

// Free detaches n from its parent. If releaseChildren is true, children
// are recursively freed too (spec §3 "Lifecycle").
func (n *Node) Free(releaseChildren bool) {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
	if releaseChildren {
		for _, c := range n.children {
			c.parent = nil
			c.Free(true)
		}
		n.children = nil
	}
}

// MarkDirty marks n and propagates dirtiness to every ancestor (spec §3
// Invariant 1, §6.1 "markDirty()").
func (n *Node) MarkDirty() {
	for cur := n; cur != nil && !cur.dirty; cur = cur.parent {
		cur.dirty = true
	}
}

// markChildrenStructureDirty bumps this node's childrenGen (structural
// change) and marks it (and ancestors) dirty.
func (n *Node) markChildrenStructureDirty() {
	n.childrenGen++
	n.MarkDirty()
}

// IsDirty reports whether n needs recalculation.
func (n *Node) IsDirty() bool { return n.dirty }

// HasNewLayout reports whether n's computed layout has changed since the
// flag was last cleared by MarkLayoutSeen.
func (n *Node) HasNewLayout() bool { return n.hasNewLayout }

// MarkLayoutSeen clears the has-new-layout flag (consumers call this
// after consuming a fresh layout, spec §3 "Has-new-layout flag").
func (n *Node) MarkLayoutSeen() { n.hasNewLayout = false }

// GetComputedLayout returns the node's last computed rectangle.
func (n *Node) GetComputedLayout() ComputedLayout { return n.computed }

func (n *Node) GetComputedLeft() float64   { return n.computed.Left }
func (n *Node) GetComputedTop() float64    { return n.computed.Top }
func (n *Node) GetComputedWidth() float64  { return n.computed.Width }
func (n *Node) GetComputedHeight() float64 { return n.computed.Height }

// onStyleChanged is called by every setter after it has confirmed the
// new value actually differs from the old one (spec invariant 5:
// "setting to the same value must not [mark dirty]"). Style embeds two
// func-typed fields (Measure, Baseline) which makes the whole struct
// non-comparable with ==, so each setter below compares only the field
// it owns rather than the struct as a whole — see spec §9
// "Style-setter dirty-marking".
func (n *Node) onStyleChanged() {
	n.styleGen++
	n.MarkDirty()
	if n.parent != nil {
		n.parent.markChildrenStructureDirty()
	}
}

// --- Dimension setters (spec §6.1) ---

func (n *Node) SetWidth(v float64)        { n.setWidthValue(Point(v)) }
func (n *Node) SetWidthPercent(p float64) { n.setWidthValue(Percent(p)) }
func (n *Node) SetWidthAuto()             { n.setWidthValue(AutoValue) }

func (n *Node) setWidthValue(v Value) {
	if n.Style.Width == v {
		return
	}
	n.Style.Width = v
	n.onStyleChanged()
}

func (n *Node) SetHeight(v float64)        { n.setHeightValue(Point(v)) }
func (n *Node) SetHeightPercent(p float64) { n.setHeightValue(Percent(p)) }
func (n *Node) SetHeightAuto()             { n.setHeightValue(AutoValue) }

func (n *Node) setHeightValue(v Value) {
	if n.Style.Height == v {
		return
	}
	n.Style.Height = v
	n.onStyleChanged()
}

func (n *Node) SetMinWidth(v float64)        { n.setMinWidthValue(Point(v)) }
func (n *Node) SetMinWidthPercent(p float64) { n.setMinWidthValue(Percent(p)) }

func (n *Node) setMinWidthValue(v Value) {
	if n.Style.MinWidth == v {
		return
	}
	n.Style.MinWidth = v
	n.onStyleChanged()
}

func (n *Node) SetMinHeight(v float64)        { n.setMinHeightValue(Point(v)) }
func (n *Node) SetMinHeightPercent(p float64) { n.setMinHeightValue(Percent(p)) }

func (n *Node) setMinHeightValue(v Value) {
	if n.Style.MinHeight == v {
		return
	}
	n.Style.MinHeight = v
	n.onStyleChanged()
}

func (n *Node) SetMaxWidth(v float64) {
	nv := Point(v)
	if n.Style.MaxWidth == nv {
		return
	}
	n.Style.MaxWidth = nv
	n.onStyleChanged()
}

func (n *Node) SetMaxHeight(v float64) {
	nv := Point(v)
	if n.Style.MaxHeight == nv {
		return
	}
	n.Style.MaxHeight = nv
	n.onStyleChanged()
}

// --- Flex setters ---

func (n *Node) SetFlexGrow(g float64) {
	if n.Style.FlexGrow == g {
		return
	}
	n.Style.FlexGrow = g
	n.onStyleChanged()
}

func (n *Node) SetFlexShrink(sh float64) {
	if n.Style.FlexShrink == sh {
		return
	}
	n.Style.FlexShrink = sh
	n.onStyleChanged()
}

func (n *Node) SetFlexBasis(v float64)        { n.setFlexBasisValue(Point(v)) }
func (n *Node) SetFlexBasisPercent(p float64) { n.setFlexBasisValue(Percent(p)) }
func (n *Node) SetFlexBasisAuto()             { n.setFlexBasisValue(AutoValue) }

func (n *Node) setFlexBasisValue(v Value) {
	if n.Style.FlexBasis == v {
		return
	}
	n.Style.FlexBasis = v
	n.onStyleChanged()
}

func (n *Node) SetFlexDirection(fd FlexDirection) {
	if n.Style.FlexDirection == fd {
		return
	}
	n.Style.FlexDirection = fd
	n.onStyleChanged()
}

func (n *Node) SetFlexWrap(w FlexWrap) {
	if n.Style.FlexWrap == w {
		return
	}
	n.Style.FlexWrap = w
	n.onStyleChanged()
}

// --- Alignment setters ---

func (n *Node) SetAlignItems(a Align) {
	if n.Style.AlignItems == a {
		return
	}
	n.Style.AlignItems = a
	n.onStyleChanged()
}

func (n *Node) SetAlignSelf(a Align) {
	if n.Style.AlignSelf == a {
		return
	}
	n.Style.AlignSelf = a
	n.onStyleChanged()
}

func (n *Node) SetAlignContent(a Align) {
	if n.Style.AlignContent == a {
		return
	}
	n.Style.AlignContent = a
	n.onStyleChanged()
}

func (n *Node) SetJustifyContent(j Justify) {
	if n.Style.JustifyContent == j {
		return
	}
	n.Style.JustifyContent = j
	n.onStyleChanged()
}

// --- Edges ---

func (n *Node) SetMargin(e Edge, v float64)        { n.setMarginValue(e, Point(v)) }
func (n *Node) SetMarginPercent(e Edge, p float64) { n.setMarginValue(e, Percent(p)) }
func (n *Node) SetMarginAuto(e Edge)               { n.setMarginValue(e, AutoValue) }

func (n *Node) setMarginValue(e Edge, v Value) {
	if n.Style.Margin.Get(e) == v {
		return
	}
	n.Style.Margin.Set(e, v)
	n.onStyleChanged()
}

func (n *Node) SetPadding(e Edge, v float64)        { n.setPaddingValue(e, Point(v)) }
func (n *Node) SetPaddingPercent(e Edge, p float64) { n.setPaddingValue(e, Percent(p)) }

func (n *Node) setPaddingValue(e Edge, v Value) {
	if n.Style.Padding.Get(e) == v {
		return
	}
	n.Style.Padding.Set(e, v)
	n.onStyleChanged()
}

func (n *Node) SetBorder(e Edge, width float64) {
	if n.Style.Border.Get(e) == width {
		return
	}
	n.Style.Border.Set(e, width)
	n.onStyleChanged()
}

func (n *Node) SetGap(g Gutter, v float64) {
	switch g {
	case GutterRow:
		if n.Style.GapRow == v {
			return
		}
		n.Style.GapRow = v
	default:
		if n.Style.GapColumn == v {
			return
		}
		n.Style.GapColumn = v
	}
	n.onStyleChanged()
}

// --- Position ---

func (n *Node) SetPositionType(p PositionType) {
	if n.Style.PositionType == p {
		return
	}
	n.Style.PositionType = p
	n.onStyleChanged()
}

func (n *Node) SetPosition(e Edge, v float64)        { n.setPositionValue(e, Point(v)) }
func (n *Node) SetPositionPercent(e Edge, p float64) { n.setPositionValue(e, Percent(p)) }

func (n *Node) setPositionValue(e Edge, v Value) {
	if n.Style.Position.Get(e) == v {
		return
	}
	n.Style.Position.Set(e, v)
	n.onStyleChanged()
}

// --- Visual/misc ---

func (n *Node) SetDisplay(d Display) {
	if n.Style.Display == d {
		return
	}
	n.Style.Display = d
	n.onStyleChanged()
}

func (n *Node) SetOverflow(o Overflow) {
	if n.Style.Overflow == o {
		return
	}
	n.Style.Overflow = o
	n.onStyleChanged()
}

func (n *Node) SetAspectRatio(r float64) {
	if n.Style.AspectRatio == r {
		return
	}
	n.Style.AspectRatio = r
	n.onStyleChanged()
}

func (n *Node) SetDirection(d Direction) {
	if n.Style.Direction == d {
		return
	}
	n.Style.Direction = d
	n.onStyleChanged()
}

// --- Callbacks ---

// SetMeasureFunc installs a measure callback. Only a leaf's (no children)
// callback is consulted: a node with children is laid out as a container
// and its callback is never called. The setter does not validate this,
// matching the corpus convention of not over-validating setters. Identity comparison of func values is not possible in Go, so
// unlike the value setters above this always marks dirty — matching the
// spec's invariant 5 carve-out, since there is no meaningful notion of
// "setting a callback to the same value" to special-case.
func (n *Node) SetMeasureFunc(fn MeasureFunc) {
	n.Style.Measure = fn
	n.measureCache.clear()
	n.onStyleChanged()
}

func (n *Node) UnsetMeasureFunc() {
	if n.Style.Measure == nil {
		return
	}
	n.Style.Measure = nil
	n.measureCache.clear()
	n.onStyleChanged()
}

func (n *Node) SetBaselineFunc(fn BaselineFunc) {
	n.Style.Baseline = fn
	n.onStyleChanged()
}

func (n *Node) UnsetBaselineFunc() {
	if n.Style.Baseline == nil {
		return
	}
	n.Style.Baseline = nil
	n.onStyleChanged()
}

// String implements a small debug representation, handy in test
// failures (spec leaves this unspecified; included as ordinary Go
// ergonomics, matching the corpus's habit of Stringer-ing layout types).
func (n *Node) String() string {
	return fmt.Sprintf("Node{w=%v h=%v children=%d dirty=%v}", n.Style.Width, n.Style.Height, len(n.children), n.dirty)
}
