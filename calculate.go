package flexbox

import "math"

// Config carries the engine's runtime tunables (spec §9 open questions;
// SPEC_FULL.md "Configuration"). Cache sizes are compile-time constants
// (see measure.go/cache.go) since they back fixed-size arrays; Config
// exposes the knobs that are genuinely a per-call/per-application
// choice.
type Config struct {
	// PointGrid is the grid CalculateLayout rounds (availW, availH) to
	// before seeding the root (spec §4.9 step 1). Default 1 (whole
	// terminal cells).
	PointGrid float64

	// StrictYogaParity, when true, disables the absolute-child
	// auto-margin centering divergence (§4.7) so absolutely positioned
	// children with auto margins on both sides behave like Yoga
	// (leading edge wins) instead of the CSS-compliant centering this
	// engine does by default.
	StrictYogaParity bool
}

// DefaultConfig returns the engine's out-of-the-box tunables.
func DefaultConfig() Config {
	return Config{PointGrid: 1, StrictYogaParity: false}
}

// currentConfig is the Config in effect for the CalculateLayout call
// currently on the stack. It is process-wide by the same reasoning as
// the trace sink (§5): the engine is single-threaded and assumes no two
// CalculateLayout calls run concurrently.
var currentConfig = DefaultConfig()

func roundToGrid(v, grid float64) float64 {
	if grid <= 0 || isUnconstrained(v) {
		return v
	}
	return math.Round(v/grid) * grid
}

// CalculateLayout is the engine's entry point (spec §4.9, §6.1), using
// DefaultConfig's tunables.
func (n *Node) CalculateLayout(availW, availH float64, dir Direction) {
	n.CalculateLayoutWithConfig(availW, availH, dir, DefaultConfig())
}

// CalculateLayoutWithConfig is CalculateLayout with an explicit Config.
func (n *Node) CalculateLayoutWithConfig(availW, availH float64, dir Direction, cfg Config) {
	if n.calculating {
		panic("flexbox: re-entrant CalculateLayout call on the same tree")
	}
	n.calculating = true
	defer func() { n.calculating = false }()

	prevConfig := currentConfig
	currentConfig = cfg
	defer func() { currentConfig = prevConfig }()

	availW = roundToGrid(canonicalAvail(availW), cfg.PointGrid)
	availH = roundToGrid(canonicalAvail(availH), cfg.PointGrid)

	// A root's own explicit width/height (points, or percent of the
	// caller-given size) take precedence over the caller-given size.
	if w, ok := resolveExplicitLeaf(n.Style.Width, availW, !isUnconstrained(availW)); ok {
		availW = w
	}
	if h, ok := resolveExplicitLeaf(n.Style.Height, availH, !isUnconstrained(availH)); ok {
		availH = h
	}

	rootDir := dir
	if rootDir == DirectionInherit {
		rootDir = DirectionLTR
	}

	key := layoutCacheKey{
		availW: availW, availH: availH,
		widthMode: MeasureExactly, heightMode: MeasureExactly,
		parentDir:   rootDir,
		styleGen:    n.styleGen,
		childrenGen: n.childrenGen,
	}
	if !n.dirty {
		if w, h, cdir, ok := n.layoutCache.lookup(key); ok {
			n.computed.Width = w
			n.computed.Height = h
			n.computed.Direction = cdir
			n.computed.Left = 0
			n.computed.Top = 0
			return
		}
	}

	layoutNode(n, availW, availH, MeasureExactly, MeasureExactly, rootDir, true)
	n.computed.Left = 0
	n.computed.Top = 0
}
