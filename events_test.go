package tweens

import (
	"slices"
	"testing"
)

func TestTraceReportsPhases(t *testing.T) {
	tw, _ := newFloat(t, Config{Loops: 2, LoopType: LoopMirror})
	var got []PhaseEvent
	cancel := Trace(tw, func(ev PhaseEvent) { got = append(got, ev) })

	tw.Play()
	mustUpdate(t, tw, 2)

	var phases []Phase
	for _, ev := range got {
		if ev.Playable != Playable(tw) {
			t.Fatalf("event for %v", ev.Playable)
		}
		phases = append(phases, ev.Phase)
	}
	want := []Phase{
		PhaseStarting, PhaseStarted, PhaseLoopStarting, PhaseLoopStarted,
		PhaseLoopCompleting, PhaseLoopCompleted, PhaseLoopStarting, PhaseLoopStarted,
		PhaseLoopCompleting, PhaseLoopCompleted, PhaseCompleting, PhaseCompleted,
	}
	if !slices.Equal(phases, want) {
		t.Fatalf("phases:\n got %v\nwant %v", phases, want)
	}
	if got[6].Loop != 1 || got[6].Direction != Backward {
		t.Errorf("second LoopStarting = %+v, want loop 1 Backward", got[6])
	}

	cancel()
	got = nil
	tw.Play()
	if len(got) != 0 {
		t.Errorf("events after cancel: %v", got)
	}
	if tw.Events().Started.Len() != 0 {
		t.Errorf("cancel left %d Started handlers", tw.Events().Started.Len())
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseLoopCompleted.String() != "LoopCompleted" {
		t.Errorf("String = %q", PhaseLoopCompleted.String())
	}
	if Phase(200).String() != "Unknown" {
		t.Errorf("out of range = %q", Phase(200).String())
	}
	if StatePaused.String() != "Paused" || Backward.String() != "Backward" || LoopMirror.String() != "Mirror" {
		t.Error("enum names")
	}
}

func TestEventClear(t *testing.T) {
	var e Event[PhaseHandler]
	e.Add(func(Playable, Direction) {})
	e.Add(func(Playable, Direction) {})
	if e.Len() != 2 {
		t.Fatalf("Len = %d", e.Len())
	}
	e.Clear()
	if e.Len() != 0 {
		t.Errorf("Len after Clear = %d", e.Len())
	}
	if e.Remove(1) {
		t.Error("Remove after Clear reported true")
	}
}
