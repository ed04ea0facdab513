package flexbox

import (
	"math/rand"
	"testing"
)

func rectOf(n *Node) (left, top, width, height float64) {
	return n.GetComputedLeft(), n.GetComputedTop(), n.GetComputedWidth(), n.GetComputedHeight()
}

func assertRect(t *testing.T, label string, n *Node, wantLeft, wantTop, wantWidth, wantHeight float64) {
	t.Helper()
	l, tp, w, h := rectOf(n)
	if l != wantLeft || tp != wantTop || w != wantWidth || h != wantHeight {
		t.Errorf("%s: got (%v,%v,%v,%v), want (%v,%v,%v,%v)", label, l, tp, w, h, wantLeft, wantTop, wantWidth, wantHeight)
	}
}

// S1 — Column with fixed + flex + fixed.
func TestScenarioColumnFixedFlexFixed(t *testing.T) {
	root := Create()
	a, b, c := Create(), Create(), Create()
	a.SetHeight(1)
	b.SetFlexGrow(1)
	c.SetHeight(1)
	root.InsertChild(a, 0)
	root.InsertChild(b, 1)
	root.InsertChild(c, 2)

	root.CalculateLayout(80, 24, DirectionLTR)

	assertRect(t, "a", a, 0, 0, 80, 1)
	assertRect(t, "b", b, 0, 1, 80, 22)
	assertRect(t, "c", c, 0, 23, 80, 1)
}

// S2 — Row with equal grow.
func TestScenarioRowEqualGrow(t *testing.T) {
	root := Create()
	root.SetFlexDirection(Row)
	a, b := Create(), Create()
	a.SetFlexGrow(1)
	b.SetFlexGrow(1)
	root.InsertChild(a, 0)
	root.InsertChild(b, 1)

	root.CalculateLayout(80, 24, DirectionLTR)

	assertRect(t, "a", a, 0, 0, 40, 24)
	assertRect(t, "b", b, 40, 0, 40, 24)
}

// S3 — Space-between.
func TestScenarioSpaceBetween(t *testing.T) {
	root := Create()
	root.SetFlexDirection(Row)
	root.SetJustifyContent(JustifySpaceBetween)
	a, b := Create(), Create()
	a.SetWidth(20)
	b.SetWidth(20)
	root.InsertChild(a, 0)
	root.InsertChild(b, 1)

	root.CalculateLayout(80, 24, DirectionLTR)

	if a.GetComputedLeft() != 0 {
		t.Errorf("a.Left = %v, want 0", a.GetComputedLeft())
	}
	if b.GetComputedLeft() != 60 {
		t.Errorf("b.Left = %v, want 60", b.GetComputedLeft())
	}
}

// S4 — Wrap.
func TestScenarioWrap(t *testing.T) {
	root := Create()
	root.SetFlexDirection(Row)
	root.SetFlexWrap(Wrap)
	a, b, c := Create(), Create(), Create()
	for _, n := range []*Node{a, b, c} {
		n.SetWidth(40)
		n.SetHeight(20)
	}
	root.InsertChild(a, 0)
	root.InsertChild(b, 1)
	root.InsertChild(c, 2)

	root.CalculateLayout(100, 100, DirectionLTR)

	assertRect(t, "a", a, 0, 0, 40, 20)
	assertRect(t, "b", b, 40, 0, 40, 20)
	assertRect(t, "c", c, 0, 20, 40, 20)
}

// S5 — Border + padding.
func TestScenarioBorderAndPadding(t *testing.T) {
	root := Create()
	for _, e := range []Edge{EdgeLeft, EdgeTop, EdgeRight, EdgeBottom} {
		root.SetBorder(e, 1)
	}
	child := Create()
	child.SetFlexGrow(1)
	root.InsertChild(child, 0)

	root.CalculateLayout(80, 24, DirectionLTR)

	assertRect(t, "child", child, 1, 1, 78, 22)
}

// S6 — Overflow:hidden + flexGrow=1 under a fixed parent must not inflate
// to its content's demanded size.
func TestScenarioOverflowHiddenFlexGrowIgnoresContentSize(t *testing.T) {
	root := Create()
	child := Create()
	child.SetFlexGrow(1)
	child.SetOverflow(OverflowHidden)
	root.InsertChild(child, 0)
	for i := 0; i < 30; i++ {
		grandchild := Create()
		grandchild.SetHeight(1)
		child.InsertChild(grandchild, i)
	}

	root.CalculateLayout(80, 10, DirectionLTR)

	if child.GetComputedHeight() != 10 {
		t.Errorf("child.Height = %v, want 10 (overflow:hidden must not grow past the grow-assigned size)", child.GetComputedHeight())
	}
}

// S7 — Partial dirty preserves siblings: marking one child dirty and
// re-laying out must reproduce the same rectangles as a fresh layout.
func TestScenarioPartialDirtyMatchesFreshLayout(t *testing.T) {
	build := func() (*Node, *Node, *Node) {
		root := Create()
		root.SetFlexDirection(Row)
		fixed := Create()
		fixed.SetWidth(10)
		fixed.SetHeight(1)
		shrink := Create()
		shrink.SetFlexShrink(1)
		shrink.SetWidth(50)
		root.InsertChild(fixed, 0)
		root.InsertChild(shrink, 1)
		return root, fixed, shrink
	}

	root1, fixed1, shrink1 := build()
	root1.CalculateLayout(40, 10, DirectionLTR)

	fixed1.MarkDirty()
	root1.CalculateLayout(40, 10, DirectionLTR)

	root2, fixed2, shrink2 := build()
	root2.CalculateLayout(40, 10, DirectionLTR)

	if rectOf2(fixed1) != rectOf2(fixed2) {
		t.Error("partial-dirty fixed child rect diverged from fresh layout")
	}
	if rectOf2(shrink1) != rectOf2(shrink2) {
		t.Error("partial-dirty shrink sibling rect diverged from fresh layout")
	}
}

type rect4 struct{ left, top, width, height float64 }

func rectOf2(n *Node) rect4 {
	l, tp, w, h := rectOf(n)
	return rect4{l, tp, w, h}
}

// S8 — RTL row mirroring.
func TestScenarioRTLRowMirroring(t *testing.T) {
	buildTree := func() (*Node, *Node, *Node) {
		root := Create()
		root.SetFlexDirection(Row)
		a, b := Create(), Create()
		a.SetWidth(30)
		b.SetWidth(20)
		root.InsertChild(a, 0)
		root.InsertChild(b, 1)
		return root, a, b
	}

	ltrRoot, aLTR, bLTR := buildTree()
	ltrRoot.CalculateLayout(100, 50, DirectionLTR)
	if aLTR.GetComputedLeft() != 0 || bLTR.GetComputedLeft() != 30 {
		t.Errorf("LTR lefts = (%v,%v), want (0,30)", aLTR.GetComputedLeft(), bLTR.GetComputedLeft())
	}

	rtlRoot, aRTL, bRTL := buildTree()
	rtlRoot.CalculateLayout(100, 50, DirectionRTL)
	if aRTL.GetComputedLeft() != 70 || bRTL.GetComputedLeft() != 50 {
		t.Errorf("RTL lefts = (%v,%v), want (70,50)", aRTL.GetComputedLeft(), bRTL.GetComputedLeft())
	}
}

// Universal property: determinism — repeated calculateLayout on the same
// clean tree yields identical rectangles.
func TestPropertyDeterminism(t *testing.T) {
	root := buildSampleTree()
	root.CalculateLayout(80, 24, DirectionLTR)
	first := snapshotTree(root)

	for i := 0; i < 5; i++ {
		root.CalculateLayout(80, 24, DirectionLTR)
		if got := snapshotTree(root); got != first {
			t.Fatalf("pass %d diverged from the first layout", i)
		}
	}
}

// Universal property: idempotence with no mutations between calls.
func TestPropertyIdempotence(t *testing.T) {
	root := buildSampleTree()
	root.CalculateLayout(80, 24, DirectionLTR)
	a := snapshotTree(root)
	root.CalculateLayout(80, 24, DirectionLTR)
	b := snapshotTree(root)
	if a != b {
		t.Error("two identical calculateLayout calls produced different rectangles")
	}
}

// Universal property: resize round-trip.
func TestPropertyResizeRoundTrip(t *testing.T) {
	root := buildSampleTree()
	root.CalculateLayout(80, 24, DirectionLTR)
	w1 := snapshotTree(root)

	root.CalculateLayout(60, 24, DirectionLTR)
	root.CalculateLayout(80, 24, DirectionLTR)
	w1Again := snapshotTree(root)

	if w1 != w1Again {
		t.Error("layout at W1 -> W2 -> W1 did not reproduce the original W1 rectangles")
	}
}

// Universal property: sanity — every finalized rectangle is finite and
// non-negative in size.
func TestPropertySanity(t *testing.T) {
	root := buildSampleTree()
	root.CalculateLayout(80, 24, DirectionLTR)
	walkTree(root, func(n *Node) {
		l, tp, w, h := rectOf(n)
		if w < 0 || h < 0 {
			t.Errorf("negative size: w=%v h=%v", w, h)
		}
		if isUnconstrained(l) || isUnconstrained(tp) || isUnconstrained(w) || isUnconstrained(h) {
			t.Error("finalized rectangle must not carry the unconstrained sentinel")
		}
	})
}

// Universal property (cardinal): incremental equivalence — a fuzzed
// sequence of mutations followed by calculateLayout must match a fresh
// tree built directly to the same final style.
func TestPropertyIncrementalEquivalenceFuzz(t *testing.T) {
	const trials = 500
	rng := rand.New(rand.NewSource(12345))

	for trial := 0; trial < trials; trial++ {
		seed := rng.Int63()

		fresh := buildFuzzedTree(rand.New(rand.NewSource(seed)))
		fresh.CalculateLayout(80, 24, DirectionLTR)

		incremental := buildFuzzedTreeIncrementally(rand.New(rand.NewSource(seed)))
		incremental.CalculateLayout(80, 24, DirectionLTR)

		if snapshotTree(fresh) != snapshotTree(incremental) {
			t.Fatalf("trial %d (seed %d): incremental layout diverged from a fresh build", trial, seed)
		}
	}
}

// A premeasure/scratch layoutNode call (commit=false) must not touch the
// node's finalized computed rectangle, hasLayout, or hasNewLayout — those
// belong only to the call that finalizes a node's size for the pass.
func TestLayoutNodeNonCommitLeavesFinalizedFieldsUntouched(t *testing.T) {
	child := Create()
	child.SetWidthPercent(50)
	child.SetHeightPercent(50)

	// Finalize the child at one availability (commit=true).
	layoutNode(child, 20, 8, MeasureExactly, MeasureExactly, DirectionLTR, true)
	child.MarkLayoutSeen()
	prevW, prevH := child.GetComputedWidth(), child.GetComputedHeight()
	wasLaidOut := child.hasLayout

	// Probe the same child at a different availability, as
	// resolveFlexBasis/resolveItemCrossSize do for a hypothetical
	// measurement — commit=false.
	w, h := layoutNode(child, 100, 100, MeasureExactly, MeasureExactly, DirectionLTR, false)
	if w == prevW && h == prevH {
		t.Fatalf("test setup: probe must use availability that differs from the finalized size")
	}

	if child.GetComputedWidth() != prevW || child.GetComputedHeight() != prevH {
		t.Errorf("non-commit layoutNode call mutated the finalized computed rectangle: got (%v,%v), want (%v,%v)",
			child.GetComputedWidth(), child.GetComputedHeight(), prevW, prevH)
	}
	if child.HasNewLayout() {
		t.Error("non-commit layoutNode call must not set hasNewLayout")
	}
	if child.hasLayout != wasLaidOut {
		t.Error("non-commit layoutNode call must not change hasLayout")
	}

	// The probe's own fingerprint is still cached and dirty is still
	// cleared — caching and dirty-tracking are unaffected by commit.
	if child.IsDirty() {
		t.Error("a layoutNode call, commit or not, must clear dirty")
	}
}

// The same scratch-vs-commit distinction must hold for a container whose
// children were probed via resolveItemCrossSize (auto cross on a row)
// before the commit loop in layoutContainer runs.
func TestContainerPremeasureDoesNotLeakIntoChildFinalRect(t *testing.T) {
	root := Create()
	root.SetFlexDirection(Row)
	root.SetWidth(40)
	root.SetHeight(10)

	child := Create()
	child.SetWidth(10)
	// Height left auto: resolveItemCrossSize will probe the child with
	// an unconstrained/at-most cross size before the final commit pass
	// assigns it the stretched cross size.
	root.InsertChild(child, 0)

	root.CalculateLayout(80, 24, DirectionLTR)

	if got := child.GetComputedHeight(); got != 10 {
		t.Errorf("child height = %v, want 10 (stretched to parent's cross size, not a premeasure leftover)", got)
	}
}

// buildSampleTree constructs a modestly nested tree exercising row/
// column, grow/shrink, wrap and alignment in one shot.
func buildSampleTree() *Node {
	root := Create()
	root.SetFlexDirection(Column)
	header := Create()
	header.SetHeight(2)
	body := Create()
	body.SetFlexGrow(1)
	body.SetFlexDirection(Row)
	left := Create()
	left.SetWidth(20)
	right := Create()
	right.SetFlexGrow(1)
	body.InsertChild(left, 0)
	body.InsertChild(right, 1)
	footer := Create()
	footer.SetHeight(1)
	root.InsertChild(header, 0)
	root.InsertChild(body, 1)
	root.InsertChild(footer, 2)
	return root
}

func snapshotTree(n *Node) string {
	var sb []byte
	var walk func(*Node)
	walk = func(n *Node) {
		l, tp, w, h := rectOf(n)
		sb = appendFloats(sb, l, tp, w, h)
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(n)
	return string(sb)
}

func appendFloats(sb []byte, vs ...float64) []byte {
	for _, v := range vs {
		sb = append(sb, []byte(formatFloat(v))...)
		sb = append(sb, ';')
	}
	return sb
}

func formatFloat(v float64) string {
	// Simple, deterministic stringification sufficient for equality
	// comparison in tests; avoids pulling in strconv formatting quirks.
	if v == float64(int64(v)) {
		return itoa(int64(v))
	}
	return itoaFrac(v)
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func itoaFrac(v float64) string {
	scaled := int64(v * 1000)
	return itoa(scaled)
}

func walkTree(n *Node, fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		walkTree(c, fn)
	}
}

// buildFuzzedTree and buildFuzzedTreeIncrementally both end at the same
// final style for a given seed; the former builds it directly, the
// latter via an extra round of throwaway mutations before settling,
// exercising the incremental-equivalence invariant (spec §8.3).
func buildFuzzedTree(rng *rand.Rand) *Node {
	root := Create()
	nodeSeed := rng.Int63()
	applyFuzzedStyle(root, rand.New(rand.NewSource(nodeSeed)))
	n := 2 + rng.Intn(4)
	for i := 0; i < n; i++ {
		child := Create()
		childSeed := rng.Int63()
		applyFuzzedStyle(child, rand.New(rand.NewSource(childSeed)))
		root.InsertChild(child, i)
	}
	return root
}

// buildFuzzedTreeIncrementally must consume the shared rng stream in
// exactly the same order/shape as buildFuzzedTree (one Int63 + one
// Intn(4) at the root, one Int63 per child) so a given seed produces the
// same tree shape and final style. The extra throwaway mutation per node
// is driven by an unrelated derived source so it never perturbs that
// shared stream — only the final applyFuzzedStyle call (seeded
// identically to the fresh build) determines the settled style.
func buildFuzzedTreeIncrementally(rng *rand.Rand) *Node {
	root := Create()
	nodeSeed := rng.Int63()
	applyFuzzedStyle(root, rand.New(rand.NewSource(nodeSeed^0xA5A5)))
	applyFuzzedStyle(root, rand.New(rand.NewSource(nodeSeed)))
	n := 2 + rng.Intn(4)
	for i := 0; i < n; i++ {
		child := Create()
		childSeed := rng.Int63()
		applyFuzzedStyle(child, rand.New(rand.NewSource(childSeed^0xA5A5)))
		root.InsertChild(child, i)
		applyFuzzedStyle(child, rand.New(rand.NewSource(childSeed)))
	}
	return root
}

func applyFuzzedStyle(n *Node, rng *rand.Rand) {
	if rng.Intn(2) == 0 {
		n.SetFlexDirection(Row)
	} else {
		n.SetFlexDirection(Column)
	}
	if rng.Intn(3) == 0 {
		n.SetFlexGrow(float64(1 + rng.Intn(3)))
	} else {
		n.SetFlexGrow(0)
	}
	if rng.Intn(3) == 0 {
		n.SetFlexShrink(float64(1 + rng.Intn(3)))
	} else {
		n.SetFlexShrink(0)
	}
	if rng.Intn(2) == 0 {
		n.SetWidth(float64(5 + rng.Intn(30)))
	} else {
		n.SetWidthAuto()
	}
	if rng.Intn(2) == 0 {
		n.SetHeight(float64(5 + rng.Intn(15)))
	} else {
		n.SetHeightAuto()
	}
	aligns := []Align{AlignStretch, AlignFlexStart, AlignCenter, AlignFlexEnd}
	n.SetAlignItems(aligns[rng.Intn(len(aligns))])
	justifies := []Justify{JustifyFlexStart, JustifyCenter, JustifyFlexEnd, JustifySpaceBetween}
	n.SetJustifyContent(justifies[rng.Intn(len(justifies))])
}
