package tweens

import (
	"iter"
	"math"
	"slices"
)

// Chronoline anchors a child playable at an offset inside a Sequence.
type Chronoline struct {
	Offset   float64
	Playable Playable
}

// End returns the time at which the child's run finishes inside the sequence.
func (c Chronoline) End() float64 {
	return c.Offset + c.Playable.TotalDuration()
}

// Sequence plays child tweens and sequences on a shared timeline. Each child
// runs on its own clock, derived from the sequence's eased local time minus
// the child's offset. Children are exclusively owned: once inserted they are
// driven by the sequence and ignore direct control calls.
type Sequence struct {
	playback

	lines     []Chronoline
	loopReset LoopResetBehaviour
}

var _ Playable = (*Sequence)(nil)

// NewSequence creates an empty, idle sequence. Its duration grows as children
// are inserted.
func NewSequence(name string, cfg SequenceConfig) (*Sequence, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.LoopReset > ResetSkipChildren {
		return nil, invalidArgf("loop reset behaviour %d", cfg.LoopReset)
	}
	s := &Sequence{loopReset: cfg.LoopReset}
	s.init(s, s, name, 0, cfg.Config)
	return s, nil
}

// LoopReset returns how children are treated when a loop restarts.
func (s *Sequence) LoopReset() LoopResetBehaviour { return s.loopReset }

// Insert places child at offset seconds from the start of the sequence. The
// sequence must not be running. A child already owned by a sequence fails
// with ErrOwnershipConflict and nothing changes.
func (s *Sequence) Insert(offset float64, child Playable) error {
	if s.disposed {
		debugCheckDisposed(s, "Insert")
		return transitionf("insert into disposed sequence %q", s.name)
	}
	if child == nil {
		return invalidArgf("nil child for sequence %q", s.name)
	}
	if math.IsNaN(offset) || math.IsInf(offset, 0) || offset < 0 {
		return invalidArgf("offset %v for %q in %q", offset, child.Name(), s.name)
	}
	c := child.core()
	if c.owner != nil {
		return ownershipf("%q already belongs to sequence %q", c.name, c.owner.name)
	}
	if c.disposed {
		debugCheckDisposed(child, "Insert")
		return transitionf("insert of disposed %q into %q", c.name, s.name)
	}
	if root := s.root(); root.dispatching > 0 || root.state.IsActive() {
		return transitionf("insert into %q while %q is %s", s.name, root.name, root.state)
	}
	if c.dispatching > 0 || c.state.IsActive() {
		return transitionf("insert of %s playable %q", c.state, c.name)
	}
	if math.IsInf(child.TotalDuration(), 1) {
		return invalidArgf("%q loops forever and cannot be sequenced", c.name)
	}
	for anc := &s.playback; anc != nil; {
		if anc == c {
			return invalidArgf("inserting %q into %q would create a cycle", c.name, s.name)
		}
		if anc.owner == nil {
			break
		}
		anc = &anc.owner.playback
	}

	c.owner = s
	c.pending = nil
	s.lines = append(s.lines, Chronoline{Offset: offset, Playable: child})
	s.relayout()
	debugCheckNesting(s)
	debugCheckChildCount(s)
	return nil
}

// Append inserts child at the current end of the sequence.
func (s *Sequence) Append(child Playable) error {
	return s.Insert(s.duration, child)
}

// relayout recomputes the duration up the owner chain and puts every
// affected sequence back at the start of its run.
func (s *Sequence) relayout() {
	for seq := s; seq != nil; seq = seq.owner {
		d := 0.0
		for _, l := range seq.lines {
			d = math.Max(d, l.End())
		}
		seq.duration = d
		if seq.owner == nil {
			seq.state = StateIdle
			seq.reversed = false
			seq.place(0, false)
			seq.resync(false)
		}
	}
}

func (s *Sequence) root() *Sequence {
	for s.owner != nil {
		s = s.owner
	}
	return s
}

// Len returns the number of chronolines.
func (s *Sequence) Len() int { return len(s.lines) }

// Chronolines returns a copy of the timeline in insertion order.
func (s *Sequence) Chronolines() []Chronoline {
	return slices.Clone(s.lines)
}

// GenerateChronolines iterates over the timeline in insertion order without
// copying it. The sequence must not be modified during iteration.
func (s *Sequence) GenerateChronolines() iter.Seq2[int, Chronoline] {
	return func(yield func(int, Chronoline) bool) {
		for i, l := range s.lines {
			if !yield(i, l) {
				return
			}
		}
	}
}

// Children returns the child playables in insertion order.
func (s *Sequence) Children() []Playable {
	out := make([]Playable, len(s.lines))
	for i, l := range s.lines {
		out[i] = l.Playable
	}
	return out
}

// IsDisposed reports whether Dispose has been called.
func (s *Sequence) IsDisposed() bool { return s.disposed }

// Dispose detaches every child, which become top-level idle playables again,
// and marks the sequence unusable. Disposing an owned sequence is ignored.
func (s *Sequence) Dispose() {
	if s.disposed {
		return
	}
	if s.owner != nil {
		debugIgnoredControl(&s.playback, "Dispose")
		return
	}
	for _, l := range s.lines {
		c := l.Playable.core()
		c.owner = nil
		c.reversed = false
		if c.state.IsActive() {
			c.state = StatePaused
		}
	}
	s.lines = nil
	s.pending = nil
	s.state = StateStopped
	s.disposed = true
}

// depth returns the height of the sequence tree rooted at s.
func (s *Sequence) depth() int {
	h := 0
	for _, l := range s.lines {
		if sub, ok := l.Playable.(*Sequence); ok {
			h = max(h, sub.depth())
		}
	}
	return h + 1
}

// localTime is the eased position inside the current loop, in seconds.
func (s *Sequence) localTime() float64 {
	if s.duration <= 0 {
		return 0
	}
	return s.formula.Ease(s.elapsed/s.duration) * s.duration
}

func (s *Sequence) render(silent bool) {
	if silent {
		s.resync(true)
		return
	}
	t := s.localTime()
	for _, l := range s.lines {
		l.Playable.core().driveTo(t - l.Offset)
	}
}

func (s *Sequence) resync(write bool) {
	t := s.localTime()
	for _, l := range s.lines {
		l.Playable.core().seekChild(t-l.Offset, write)
	}
}

func (s *Sequence) hold(st State) {
	for _, l := range s.lines {
		c := l.Playable.core()
		if c.state == StatePlaying || (st == StateStopped && c.state == StatePaused) {
			c.state = st
			if st == StatePaused {
				c.waits[waitPause].resolveAll()
			} else {
				c.waits[waitStop].resolveAll()
			}
		}
		c.kind.hold(st)
	}
}

func (s *Sequence) loopRestart() {
	s.resync(s.loopReset == ResetRewindChildren)
}
