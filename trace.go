package flexbox

import "github.com/rs/zerolog"

// EventKind tags one recorded trace event (spec §6.3).
type EventKind uint8

const (
	EventLayoutEnter EventKind = iota
	EventLayoutExit
	EventFingerprintHit
	EventFingerprintMiss
	EventMeasureCall
	EventMeasureHit
	EventParentOverride
)

func (k EventKind) String() string {
	switch k {
	case EventLayoutEnter:
		return "layout_enter"
	case EventLayoutExit:
		return "layout_exit"
	case EventFingerprintHit:
		return "fingerprint_hit"
	case EventFingerprintMiss:
		return "fingerprint_miss"
	case EventMeasureCall:
		return "measure_call"
	case EventMeasureHit:
		return "measure_hit"
	case EventParentOverride:
		return "parent_override"
	default:
		return "unknown"
	}
}

// TraceEvent is one entry in the process-scope trace buffer (spec
// §6.3). NodeIndex is the node's creation-order id, not a pointer, so
// traces stay comparable across separately-built trees in tests.
type TraceEvent struct {
	Kind      EventKind
	NodeIndex uint64
	AvailW    float64
	AvailH    float64
	WidthMode MeasureMode
	HeightMode MeasureMode
	Width     float64
	Height    float64
}

// traceState is process-wide by design (spec §5: "an optional process-
// wide trace sink whose lifecycle is enable -> record -> disable and is
// used only by tests"). It is not safe for concurrent calculateLayout
// calls, matching the engine's single-threaded model.
var traceState struct {
	enabled bool
	events  []TraceEvent
	logger  zerolog.Logger
}

// EnableTrace turns on event capture for subsequent calculateLayout
// calls. logger, if non-zero, additionally receives a structured debug
// line per event; pass zerolog.Nop() to capture only the in-memory
// buffer.
func EnableTrace(logger zerolog.Logger) {
	traceState.enabled = true
	traceState.logger = logger
}

// DisableTrace stops capture; the buffer already recorded is left
// intact for inspection.
func DisableTrace() {
	traceState.enabled = false
}

// ClearTrace empties the in-memory event buffer without touching the
// enabled/disabled state.
func ClearTrace() {
	traceState.events = nil
}

// TraceEvents returns a snapshot of the events recorded since the last
// ClearTrace (or process start).
func TraceEvents() []TraceEvent {
	out := make([]TraceEvent, len(traceState.events))
	copy(out, traceState.events)
	return out
}

func record(ev TraceEvent) {
	if !traceState.enabled {
		return
	}
	traceState.events = append(traceState.events, ev)
	traceState.logger.Debug().
		Str("event", ev.Kind.String()).
		Uint64("node", ev.NodeIndex).
		Float64("availW", ev.AvailW).
		Float64("availH", ev.AvailH).
		Msg("flexbox trace")
}

func traceLayoutEnter(n *Node, key layoutCacheKey) {
	record(TraceEvent{Kind: EventLayoutEnter, NodeIndex: n.id, AvailW: key.availW, AvailH: key.availH, WidthMode: key.widthMode, HeightMode: key.heightMode})
}

func traceLayoutExit(n *Node, key layoutCacheKey, w, h float64) {
	record(TraceEvent{Kind: EventLayoutExit, NodeIndex: n.id, AvailW: key.availW, AvailH: key.availH, WidthMode: key.widthMode, HeightMode: key.heightMode, Width: w, Height: h})
}

func traceFingerprintHit(n *Node, key layoutCacheKey) {
	record(TraceEvent{Kind: EventFingerprintHit, NodeIndex: n.id, AvailW: key.availW, AvailH: key.availH, WidthMode: key.widthMode, HeightMode: key.heightMode})
}

func traceFingerprintMiss(n *Node, key layoutCacheKey) {
	record(TraceEvent{Kind: EventFingerprintMiss, NodeIndex: n.id, AvailW: key.availW, AvailH: key.availH, WidthMode: key.widthMode, HeightMode: key.heightMode})
}

func traceMeasureCall(n *Node) {
	record(TraceEvent{Kind: EventMeasureCall, NodeIndex: n.id})
}

func traceMeasureHit(n *Node) {
	record(TraceEvent{Kind: EventMeasureHit, NodeIndex: n.id})
}

func traceParentOverride(n *Node, w, h float64) {
	record(TraceEvent{Kind: EventParentOverride, NodeIndex: n.id, Width: w, Height: h})
}

// diffTraces locates the first structural divergence between two
// recorded passes, returning the index of the first differing event;
// when one slice is a strict prefix of the other it returns the shorter
// slice's length, and -1 only when the two are equal.
// Intended for test scaffolding that compares a fresh layout's trace
// against an incremental one (spec §6.3).
func diffTraces(a, b []TraceEvent) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}
