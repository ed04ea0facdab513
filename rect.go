package flexbox

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Point2D is an x/y coordinate. Named to avoid colliding with the Value
// constructor Point (value.go).
type Point2D struct {
	X, Y float64
}

// Rect is an axis-aligned box: origin plus size.
type Rect struct {
	X, Y, Width, Height float64
}

// NewRect constructs a Rect from raw components.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Inset returns r shrunk by e on each physical edge (EdgeInsets' Left,
// Top, Right and Bottom fields). Per SPEC_FULL.md's supplemented-feature
// list, grounded on grindlemire-go-tui's Rect.Inset(Edges).
func (r Rect) Inset(e EdgeInsets) Rect {
	left, top, right, bottom := e.Left, e.Top, e.Right, e.Bottom
	w := r.Width - left - right
	h := r.Height - top - bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  w,
		Height: h,
	}
}

// EdgeAll creates EdgeInsets with the same value on all four physical
// edges.
func EdgeAll(n float64) EdgeInsets {
	return EdgeInsets{Left: n, Top: n, Right: n, Bottom: n}
}

// EdgeSymmetric creates EdgeInsets with vertical (top/bottom) and
// horizontal (left/right) values.
func EdgeSymmetric(vertical, horizontal float64) EdgeInsets {
	return EdgeInsets{Top: vertical, Bottom: vertical, Left: horizontal, Right: horizontal}
}

// EdgeTRBL creates EdgeInsets following CSS order: top, right, bottom,
// left.
func EdgeTRBL(top, right, bottom, left float64) EdgeInsets {
	return EdgeInsets{Top: top, Right: right, Bottom: bottom, Left: left}
}
