package tweens

// HandlerID identifies a registered handler so it can be removed later.
type HandlerID uint64

// PhaseHandler receives lifecycle notifications (Starting, Started,
// Completing, Completed, Paused, Resumed, Stopped).
type PhaseHandler func(p Playable, dir Direction)

// LoopHandler receives loop boundary notifications.
type LoopHandler func(p Playable, loop int, dir Direction)

// UpdateHandler receives per-tick notifications. elapsed is the run clock
// for Updating/Updated and the loop time for LoopUpdating/LoopUpdated.
type UpdateHandler func(p Playable, loop int, elapsed float64, dir Direction)

type handlerEntry[H any] struct {
	id HandlerID
	fn H
}

// Event is a multicast list of handlers of one kind. The same function may be
// added several times; each registration gets its own HandlerID.
//
// Handlers added while the event is firing are not called until the next
// firing. Removing a handler while firing is safe.
type Event[H any] struct {
	entries []handlerEntry[H]
	next    HandlerID
}

// Add registers fn and returns an ID for Remove. A nil fn is ignored and
// reported with ID 0.
func (e *Event[H]) Add(fn H) HandlerID {
	if isNilFunc(fn) {
		return 0
	}
	e.next++
	e.entries = append(e.entries, handlerEntry[H]{id: e.next, fn: fn})
	return e.next
}

// Remove unregisters the handler with the given ID and reports whether it
// was registered.
func (e *Event[H]) Remove(id HandlerID) bool {
	for i, h := range e.entries {
		if h.id == id {
			// Copy so a firing loop keeps iterating over the old slice.
			out := make([]handlerEntry[H], 0, len(e.entries)-1)
			out = append(out, e.entries[:i]...)
			out = append(out, e.entries[i+1:]...)
			e.entries = out
			return true
		}
	}
	return false
}

// Clear removes every handler.
func (e *Event[H]) Clear() {
	e.entries = nil
}

// Len returns the number of registered handlers.
func (e *Event[H]) Len() int {
	return len(e.entries)
}

func isNilFunc[H any](fn H) bool {
	switch f := any(fn).(type) {
	case PhaseHandler:
		return f == nil
	case LoopHandler:
		return f == nil
	case UpdateHandler:
		return f == nil
	case nil:
		return true
	}
	return false
}

// Events is the subscription surface of a Playable, one Event per phase.
type Events struct {
	Starting Event[PhaseHandler]
	Started  Event[PhaseHandler]

	Updating Event[UpdateHandler]
	Updated  Event[UpdateHandler]

	LoopStarting   Event[LoopHandler]
	LoopStarted    Event[LoopHandler]
	LoopUpdating   Event[UpdateHandler]
	LoopUpdated    Event[UpdateHandler]
	LoopCompleting Event[LoopHandler]
	LoopCompleted  Event[LoopHandler]

	Completing Event[PhaseHandler]
	Completed  Event[PhaseHandler]

	Paused  Event[PhaseHandler]
	Resumed Event[PhaseHandler]
	Stopped Event[PhaseHandler]
}

func firePhase(e *Event[PhaseHandler], p Playable, dir Direction) {
	for _, h := range e.entries {
		h.fn(p, dir)
	}
}

func fireLoop(e *Event[LoopHandler], p Playable, loop int, dir Direction) {
	for _, h := range e.entries {
		h.fn(p, loop, dir)
	}
}

func fireUpdate(e *Event[UpdateHandler], p Playable, loop int, elapsed float64, dir Direction) {
	for _, h := range e.entries {
		h.fn(p, loop, elapsed, dir)
	}
}

// Phase names a lifecycle or loop event for tracing.
type Phase uint8

const (
	PhaseStarting Phase = iota
	PhaseStarted
	PhaseLoopStarting
	PhaseLoopStarted
	PhaseLoopCompleting
	PhaseLoopCompleted
	PhaseCompleting
	PhaseCompleted
	PhasePaused
	PhaseResumed
	PhaseStopped
)

var phaseNames = [...]string{
	PhaseStarting:       "Starting",
	PhaseStarted:        "Started",
	PhaseLoopStarting:   "LoopStarting",
	PhaseLoopStarted:    "LoopStarted",
	PhaseLoopCompleting: "LoopCompleting",
	PhaseLoopCompleted:  "LoopCompleted",
	PhaseCompleting:     "Completing",
	PhaseCompleted:      "Completed",
	PhasePaused:         "Paused",
	PhaseResumed:        "Resumed",
	PhaseStopped:        "Stopped",
}

// String returns the phase name.
func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "Unknown"
}

// PhaseEvent is one traced notification.
type PhaseEvent struct {
	Phase     Phase
	Playable  Playable
	Loop      int
	Direction Direction
}

// Trace subscribes fn to every lifecycle and loop event of p (not the
// per-tick update events) and returns a function that unsubscribes it.
func Trace(p Playable, fn func(PhaseEvent)) (cancel func()) {
	ev := p.Events()
	phase := func(ph Phase) PhaseHandler {
		return func(pl Playable, dir Direction) {
			fn(PhaseEvent{Phase: ph, Playable: pl, Loop: pl.LoopIndex(), Direction: dir})
		}
	}
	loop := func(ph Phase) LoopHandler {
		return func(pl Playable, l int, dir Direction) {
			fn(PhaseEvent{Phase: ph, Playable: pl, Loop: l, Direction: dir})
		}
	}

	type phaseSub struct {
		e  *Event[PhaseHandler]
		id HandlerID
	}
	type loopSub struct {
		e  *Event[LoopHandler]
		id HandlerID
	}
	phases := []phaseSub{
		{&ev.Starting, ev.Starting.Add(phase(PhaseStarting))},
		{&ev.Started, ev.Started.Add(phase(PhaseStarted))},
		{&ev.Completing, ev.Completing.Add(phase(PhaseCompleting))},
		{&ev.Completed, ev.Completed.Add(phase(PhaseCompleted))},
		{&ev.Paused, ev.Paused.Add(phase(PhasePaused))},
		{&ev.Resumed, ev.Resumed.Add(phase(PhaseResumed))},
		{&ev.Stopped, ev.Stopped.Add(phase(PhaseStopped))},
	}
	loops := []loopSub{
		{&ev.LoopStarting, ev.LoopStarting.Add(loop(PhaseLoopStarting))},
		{&ev.LoopStarted, ev.LoopStarted.Add(loop(PhaseLoopStarted))},
		{&ev.LoopCompleting, ev.LoopCompleting.Add(loop(PhaseLoopCompleting))},
		{&ev.LoopCompleted, ev.LoopCompleted.Add(loop(PhaseLoopCompleted))},
	}
	return func() {
		for _, s := range phases {
			s.e.Remove(s.id)
		}
		for _, s := range loops {
			s.e.Remove(s.id)
		}
	}
}
