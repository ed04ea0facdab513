package flexbox

import (
	"testing"

	"github.com/rs/zerolog"
)

func resetTraceState(t *testing.T) {
	t.Helper()
	DisableTrace()
	ClearTrace()
	t.Cleanup(func() {
		DisableTrace()
		ClearTrace()
	})
}

func TestEventKindStringNamesEveryKind(t *testing.T) {
	cases := []struct {
		k    EventKind
		want string
	}{
		{EventLayoutEnter, "layout_enter"},
		{EventLayoutExit, "layout_exit"},
		{EventFingerprintHit, "fingerprint_hit"},
		{EventFingerprintMiss, "fingerprint_miss"},
		{EventMeasureCall, "measure_call"},
		{EventMeasureHit, "measure_hit"},
		{EventParentOverride, "parent_override"},
		{EventKind(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("%d.String() = %q, want %q", c.k, got, c.want)
		}
	}
}

func TestTraceDisabledByDefaultRecordsNothing(t *testing.T) {
	resetTraceState(t)
	root := Create()
	root.SetWidth(10)
	root.SetHeight(10)
	root.CalculateLayout(100, 100, DirectionLTR)

	if events := TraceEvents(); len(events) != 0 {
		t.Errorf("expected no events while disabled, got %d", len(events))
	}
}

func TestEnableTraceCapturesLayoutEnterAndExit(t *testing.T) {
	resetTraceState(t)
	EnableTrace(zerolog.Nop())

	root := Create()
	root.SetWidth(10)
	root.SetHeight(10)
	root.CalculateLayout(100, 100, DirectionLTR)

	events := TraceEvents()
	if len(events) == 0 {
		t.Fatal("expected at least one event once tracing is enabled")
	}

	var sawEnter, sawExit, sawMiss bool
	for _, ev := range events {
		switch ev.Kind {
		case EventLayoutEnter:
			sawEnter = true
		case EventLayoutExit:
			sawExit = true
		case EventFingerprintMiss:
			sawMiss = true
		}
	}
	if !sawEnter {
		t.Error("expected an EventLayoutEnter")
	}
	if !sawExit {
		t.Error("expected an EventLayoutExit")
	}
	if !sawMiss {
		t.Error("expected an EventFingerprintMiss on the first, uncached pass")
	}
}

func TestDisableTraceStopsCaptureButKeepsBuffer(t *testing.T) {
	resetTraceState(t)
	EnableTrace(zerolog.Nop())

	root := Create()
	root.CalculateLayout(100, 100, DirectionLTR)
	before := len(TraceEvents())
	if before == 0 {
		t.Fatal("expected events recorded while enabled")
	}

	DisableTrace()
	root.SetWidth(50)
	root.CalculateLayout(100, 100, DirectionLTR)

	after := TraceEvents()
	if len(after) != before {
		t.Errorf("DisableTrace should freeze the buffer: got %d events, want %d", len(after), before)
	}
}

func TestClearTraceEmptiesBufferWithoutChangingEnabledState(t *testing.T) {
	resetTraceState(t)
	EnableTrace(zerolog.Nop())

	root := Create()
	root.CalculateLayout(100, 100, DirectionLTR)
	if len(TraceEvents()) == 0 {
		t.Fatal("expected events before ClearTrace")
	}

	ClearTrace()
	if len(TraceEvents()) != 0 {
		t.Error("ClearTrace should empty the buffer")
	}

	// still enabled: a fresh pass must record again.
	root.SetWidth(20)
	root.CalculateLayout(100, 100, DirectionLTR)
	if len(TraceEvents()) == 0 {
		t.Error("ClearTrace must not disable capture")
	}
}

func TestTraceEventsReturnsASnapshotNotALiveView(t *testing.T) {
	resetTraceState(t)
	EnableTrace(zerolog.Nop())

	root := Create()
	root.CalculateLayout(100, 100, DirectionLTR)

	snap := TraceEvents()
	ClearTrace()
	if len(snap) == 0 {
		t.Fatal("expected a non-empty snapshot before clearing")
	}
	if len(TraceEvents()) != 0 {
		t.Error("ClearTrace should not retroactively empty a snapshot already taken")
	}
}

func TestSecondLayoutPassHitsFingerprintCache(t *testing.T) {
	resetTraceState(t)
	root := Create()
	root.SetWidth(10)
	root.SetHeight(10)
	root.CalculateLayout(100, 100, DirectionLTR)

	ClearTrace()
	EnableTrace(zerolog.Nop())
	root.CalculateLayout(100, 100, DirectionLTR)

	// A root-level cache hit returns out of CalculateLayoutWithConfig
	// before ever reaching layoutNode, so no fingerprint event is traced
	// for this second pass at all (spec §6.1's root short-circuit).
	events := TraceEvents()
	if len(events) != 0 {
		t.Errorf("expected 0 events for a root-cached repeat pass, got %d", len(events))
	}
}

func TestDiffTracesFindsFirstDivergenceIndex(t *testing.T) {
	a := []TraceEvent{
		{Kind: EventLayoutEnter, NodeIndex: 1},
		{Kind: EventLayoutExit, NodeIndex: 1, Width: 10},
	}
	b := []TraceEvent{
		{Kind: EventLayoutEnter, NodeIndex: 1},
		{Kind: EventLayoutExit, NodeIndex: 1, Width: 20},
	}
	if got := diffTraces(a, b); got != 1 {
		t.Errorf("diffTraces = %d, want 1", got)
	}
}

func TestDiffTracesEqualPrefixesReturnsMinusOne(t *testing.T) {
	a := []TraceEvent{{Kind: EventLayoutEnter, NodeIndex: 1}}
	b := []TraceEvent{{Kind: EventLayoutEnter, NodeIndex: 1}}
	if got := diffTraces(a, b); got != -1 {
		t.Errorf("diffTraces = %d, want -1 for identical slices", got)
	}
}

func TestDiffTracesShorterSliceIsAPrefixDivergesAtItsLength(t *testing.T) {
	a := []TraceEvent{{Kind: EventLayoutEnter, NodeIndex: 1}}
	b := []TraceEvent{
		{Kind: EventLayoutEnter, NodeIndex: 1},
		{Kind: EventLayoutExit, NodeIndex: 1},
	}
	if got := diffTraces(a, b); got != 1 {
		t.Errorf("diffTraces = %d, want 1 (length of the shorter slice)", got)
	}
}

func TestDiffTracesEmptySlicesReturnsMinusOne(t *testing.T) {
	if got := diffTraces(nil, nil); got != -1 {
		t.Errorf("diffTraces(nil,nil) = %d, want -1", got)
	}
}
