package tweens

import (
	"math"
)

// Playable is anything with direction, loop and phase-event semantics: a
// *Tween[T] or a *Sequence. The interface is closed; the state machine shared
// by both kinds lives in an embedded helper rather than a base class.
//
// Control methods return the receiver so calls can be chained. Calls made from
// inside an event handler of the same playable (or of the sequence that owns
// it) are queued and take effect at the start of the next Update. Control
// calls on a playable owned by a Sequence are ignored: the sequence drives it.
type Playable interface {
	Name() string
	// Duration is the length of one loop.
	Duration() float64
	// TotalDuration is Duration times LoopsCount, +Inf for Infinite loops.
	TotalDuration() float64
	LoopsCount() int
	LoopType() LoopType
	Formula() Formula

	// State of a playable owned by a Sequence follows its sequence: running
	// children pause and stop with it, otherwise they report the state the
	// sequence last drove them to.
	State() State
	Direction() Direction
	LoopIndex() int
	ElapsedLoopTime() float64
	// Elapsed is the run clock, in [0, TotalDuration].
	Elapsed() float64
	// Owner returns the sequence this playable belongs to, or nil.
	Owner() *Sequence

	Events() *Events

	// Update advances a top-level playable by dt seconds.
	Update(dt float64) error

	Play() Playable
	PlayForward() Playable
	PlayBackward() Playable
	Pause() Playable
	Resume() Playable
	Stop() Playable
	Reset() Playable
	ResetTo(dir Direction) Playable

	RewindToStart(opts ...RewindOption) error
	RewindToEnd(opts ...RewindOption) error
	Goto(t float64) error

	WaitForComplete() *Wait
	WaitForPause() *Wait
	WaitForStop() *Wait

	core() *playback
}

// renderer is implemented by the concrete playable kinds.
type renderer interface {
	// render writes the current position. A silent render is a seek: owned
	// descendants are re-derived without firing events.
	render(silent bool)
	// resync re-derives owned descendants from the current position without
	// events, writing their values only when write is set.
	resync(write bool)
	// loopRestart runs when a new loop begins without mirroring.
	loopRestart()
	// hold moves running descendants to st (Paused or Stopped) when the
	// playable itself pauses or stops.
	hold(st State)
}

// playback is the state machine composed into Tween and Sequence.
//
// Position is a pure function of the run clock: loop k covers
// [k*duration, (k+1)*duration], origin is the flow direction of loop 0 and
// reversed is set while the clock runs back toward 0. atLoopEnd
// disambiguates a clock sitting on a boundary: end of loop k-1 rather than
// start of loop k.
type playback struct {
	self Playable
	kind renderer

	name     string
	duration float64
	loops    int
	loopType LoopType
	formula  Formula
	initial  Direction

	origin    Direction
	reversed  bool
	clock     float64
	atLoopEnd bool

	state     State
	direction Direction
	loopIndex int
	elapsed   float64

	owner    *Sequence
	disposed bool

	dispatching int
	pending     []func()

	events Events
	waits  [waitKinds]waitList
}

func (p *playback) init(self Playable, kind renderer, name string, duration float64, cfg Config) {
	p.self = self
	p.kind = kind
	p.name = name
	p.duration = duration
	p.loops = cfg.loops()
	p.loopType = cfg.LoopType
	p.formula = cfg.Formula
	p.initial = cfg.Direction
	p.origin = cfg.Direction
	p.locate()
}

func (p *playback) core() *playback { return p }

// Name returns the diagnostic name.
func (p *playback) Name() string { return p.name }

// Duration returns the length of one loop in seconds.
func (p *playback) Duration() float64 { return p.duration }

// TotalDuration returns the length of a full run.
func (p *playback) TotalDuration() float64 {
	if p.loops == Infinite {
		return math.Inf(1)
	}
	return p.duration * float64(p.loops)
}

// LoopsCount returns the configured number of loops, or Infinite.
func (p *playback) LoopsCount() int { return p.loops }

// LoopType returns the loop boundary policy.
func (p *playback) LoopType() LoopType { return p.loopType }

// Formula returns the easing applied to per-loop progress.
func (p *playback) Formula() Formula { return p.formula }

// State returns the lifecycle state.
func (p *playback) State() State { return p.state }

// Direction returns the direction in which loop time currently flows.
func (p *playback) Direction() Direction { return p.direction }

// LoopIndex returns the current 0-based loop.
func (p *playback) LoopIndex() int { return p.loopIndex }

// ElapsedLoopTime returns the position inside the current loop.
func (p *playback) ElapsedLoopTime() float64 { return p.elapsed }

// Elapsed returns the run clock.
func (p *playback) Elapsed() float64 { return p.clock }

// Owner returns the owning sequence, or nil for a top-level playable.
func (p *playback) Owner() *Sequence { return p.owner }

// Events returns the phase event subscription surface.
func (p *playback) Events() *Events { return &p.events }

// ---- position ---------------------------------------------------------------

func (p *playback) loopAt(clock float64) int {
	return int(math.Floor(clock/p.duration + timeEpsilon))
}

// position maps the clock to a loop index and the time spent in that loop.
func (p *playback) position(clock float64, atEnd bool) (int, float64) {
	d := p.duration
	if d <= 0 {
		return 0, 0
	}
	var k int
	var u float64
	if atEnd {
		k = int(math.Round(clock/d)) - 1
		u = d
	} else {
		k = p.loopAt(clock)
		u = clock - float64(k)*d
	}
	if k < 0 {
		k, u = 0, 0
	}
	if p.loops != Infinite && k >= p.loops {
		k, u = p.loops-1, d
	}
	return k, clamp(u, 0, d)
}

func (p *playback) flowOf(k int) Direction {
	if p.loopType == LoopMirror && k%2 == 1 {
		return p.origin.Opposite()
	}
	return p.origin
}

func (p *playback) setPosition(k int, u float64) {
	flow := p.flowOf(k)
	p.loopIndex = k
	if flow == Forward {
		p.elapsed = u
	} else {
		p.elapsed = p.duration - u
	}
	p.direction = flow
	if p.reversed {
		p.direction = flow.Opposite()
	}
}

func (p *playback) locate() {
	p.setPosition(p.position(p.clock, p.atLoopEnd))
}

func (p *playback) place(clock float64, atEnd bool) {
	p.clock = clock
	p.atLoopEnd = atEnd && clock > 0 && p.duration > 0
	p.locate()
}

// ---- control ----------------------------------------------------------------

// guard runs a control operation now, or queues it when called from inside
// one of this playable's handlers.
func (p *playback) guard(op string, fn func()) Playable {
	if p.owner != nil {
		debugIgnoredControl(p, op)
		return p.self
	}
	if p.dispatching > 0 {
		p.pending = append(p.pending, fn)
		return p.self
	}
	p.dispatching++
	defer func() { p.dispatching-- }()
	fn()
	return p.self
}

// flush applies the control calls queued during the previous dispatch. Calls
// queued by the handlers they trigger wait for the next flush.
func (p *playback) flush() {
	queued := p.pending
	p.pending = nil
	for _, fn := range queued {
		p.dispatching++
		fn()
		p.dispatching--
	}
}

// Play starts or resumes playback in the current direction. A completed or
// stopped playable starts a new run.
func (p *playback) Play() Playable {
	return p.guard("Play", func() { p.play(p.direction) })
}

// PlayForward plays with loop time flowing toward Duration. A running
// playable moving the other way reverses in place.
func (p *playback) PlayForward() Playable {
	return p.guard("PlayForward", func() { p.play(Forward) })
}

// PlayBackward plays with loop time flowing toward 0. A running playable
// moving the other way reverses in place.
func (p *playback) PlayBackward() Playable {
	return p.guard("PlayBackward", func() { p.play(Backward) })
}

// Pause holds a playing playable at its current position.
func (p *playback) Pause() Playable {
	return p.guard("Pause", p.pause)
}

// Resume continues a paused playable. Other states are left alone.
func (p *playback) Resume() Playable {
	return p.guard("Resume", func() {
		if p.state == StatePaused {
			p.play(p.direction)
		}
	})
}

// Stop cancels the run and keeps the position for inspection. Stopping a
// playable that is not running does nothing.
func (p *playback) Stop() Playable {
	return p.guard("Stop", p.stop)
}

// Reset returns to the start of loop 0 in the current direction without
// firing events and leaves the playable idle. The start is the boundary the
// direction leaves from: ElapsedLoopTime is 0 for Forward and Duration for
// Backward.
func (p *playback) Reset() Playable {
	return p.guard("Reset", func() { p.reset(p.direction) })
}

// ResetTo is Reset with an explicit direction for the next run.
func (p *playback) ResetTo(dir Direction) Playable {
	return p.guard("ResetTo", func() { p.reset(dir) })
}

func (p *playback) play(dir Direction) {
	switch p.state {
	case StatePlaying:
		p.turn(dir)
	case StatePaused:
		p.turn(dir)
		p.state = StatePlaying
		firePhase(&p.events.Resumed, p.self, p.direction)
	case StateIdle:
		if p.clock == 0 && !p.atLoopEnd {
			p.restart(dir)
		} else {
			p.turn(dir)
		}
		p.begin()
	default:
		p.restart(dir)
		p.begin()
	}
}

func (p *playback) restart(dir Direction) {
	p.origin = dir
	p.reversed = false
	p.place(0, false)
	p.kind.resync(false)
}

// turn reverses the clock when dir differs from the current flow.
func (p *playback) turn(dir Direction) {
	if dir != p.direction {
		p.reversed = !p.reversed
		p.locate()
	}
}

func (p *playback) begin() {
	firePhase(&p.events.Starting, p.self, p.direction)
	p.state = StatePlaying
	firePhase(&p.events.Started, p.self, p.direction)
	fireLoop(&p.events.LoopStarting, p.self, p.loopIndex, p.direction)
	fireLoop(&p.events.LoopStarted, p.self, p.loopIndex, p.direction)
}

func (p *playback) pause() {
	if p.state != StatePlaying {
		return
	}
	p.state = StatePaused
	p.kind.hold(StatePaused)
	firePhase(&p.events.Paused, p.self, p.direction)
	p.waits[waitPause].resolveAll()
}

func (p *playback) stop() {
	if !p.state.IsActive() {
		return
	}
	p.state = StateStopped
	p.kind.hold(StateStopped)
	firePhase(&p.events.Stopped, p.self, p.direction)
	p.waits[waitStop].resolveAll()
}

func (p *playback) reset(dir Direction) {
	p.restart(dir)
	p.state = StateIdle
	p.kind.render(true)
}

func (p *playback) complete() {
	firePhase(&p.events.Completing, p.self, p.direction)
	// A mirrored run flips once more on its last boundary, so replaying it
	// heads back toward where it came from.
	if p.loopType == LoopMirror && !p.reversed {
		p.direction = p.direction.Opposite()
	}
	p.state = StateCompleted
	firePhase(&p.events.Completed, p.self, p.direction)
	p.waits[waitComplete].resolveAll()
}

// ---- time -------------------------------------------------------------------

// Update advances a top-level playable by dt seconds in its current
// direction. Playables that are not playing ignore the call, apart from
// applying control calls queued by handlers.
func (p *playback) Update(dt float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return invalidArgf("delta time %v for %q", dt, p.name)
	}
	if p.disposed {
		return transitionf("update of disposed %q", p.name)
	}
	if p.owner != nil {
		return ownershipf("%q is driven by sequence %q", p.name, p.owner.name)
	}
	if p.dispatching > 0 {
		return transitionf("re-entrant update of %q", p.name)
	}
	p.flush()
	if p.state != StatePlaying {
		return nil
	}

	p.dispatching++
	defer func() { p.dispatching-- }()

	target := p.clock + dt
	if p.reversed {
		target = p.clock - dt
	}
	if p.moveTo(target) {
		p.complete()
	}
	return nil
}

// driveTo moves an owned playable to clock c on behalf of its sequence,
// firing the same events a top-level Update would.
func (p *playback) driveTo(c float64) {
	c = clamp(c, 0, p.TotalDuration())
	if c == p.clock {
		return
	}
	p.dispatching++
	defer func() { p.dispatching-- }()

	down := c < p.clock
	if down != p.reversed {
		p.reversed = down
		p.locate()
	}
	switch p.state {
	case StatePaused:
		p.state = StatePlaying
	case StatePlaying:
	default:
		p.begin()
	}
	if p.moveTo(c) {
		p.complete()
	}
}

// moveTo runs the clock to target, firing boundary and update events on the
// way, and reports whether the run reached its end.
func (p *playback) moveTo(target float64) bool {
	span := p.TotalDuration()
	if target < timeEpsilon {
		target = 0
	}
	if !math.IsInf(span, 1) && target > span-timeEpsilon {
		target = span
	}
	down := target < p.clock

	fireUpdate(&p.events.Updating, p.self, p.loopIndex, p.clock, p.direction)

	var finished bool
	switch {
	case p.duration <= 0:
		finished = p.collapse()
	case down:
		finished = p.crossDown(target)
	default:
		finished = p.crossUp(target)
	}
	if !finished {
		p.place(target, false)
		p.renderTick()
	}

	fireUpdate(&p.events.Updated, p.self, p.loopIndex, p.clock, p.direction)
	return finished
}

func (p *playback) crossUp(target float64) bool {
	d := p.duration
	k := p.loopAt(p.clock) + 1
	if p.atLoopEnd {
		k--
	}
	last := p.loopAt(target)
	if p.loops != Infinite && last > p.loops {
		last = p.loops
	}
	for ; k <= last; k++ {
		p.clock = float64(k) * d
		p.atLoopEnd = true
		p.setPosition(k-1, d)
		p.renderTick()
		fireLoop(&p.events.LoopCompleting, p.self, k-1, p.direction)
		fireLoop(&p.events.LoopCompleted, p.self, k-1, p.direction)
		if p.loops != Infinite && k == p.loops {
			return true
		}
		p.atLoopEnd = false
		p.setPosition(k, 0)
		if p.loopType != LoopMirror {
			p.kind.loopRestart()
		}
		fireLoop(&p.events.LoopStarting, p.self, k, p.direction)
		fireLoop(&p.events.LoopStarted, p.self, k, p.direction)
	}
	return false
}

func (p *playback) crossDown(target float64) bool {
	d := p.duration
	k := p.loopAt(p.clock)
	if p.atLoopEnd {
		k--
	}
	if p.loops != Infinite && k >= p.loops {
		k = p.loops - 1
	}
	first := p.loopAt(target) + 1
	if target == 0 {
		first = 0
	}
	for ; k >= first; k-- {
		p.clock = float64(k) * d
		p.atLoopEnd = false
		p.setPosition(k, 0)
		p.renderTick()
		fireLoop(&p.events.LoopCompleting, p.self, k, p.direction)
		fireLoop(&p.events.LoopCompleted, p.self, k, p.direction)
		if k == 0 {
			return true
		}
		p.atLoopEnd = true
		p.setPosition(k-1, d)
		if p.loopType != LoopMirror {
			p.kind.loopRestart()
		}
		fireLoop(&p.events.LoopStarting, p.self, k-1, p.direction)
		fireLoop(&p.events.LoopStarted, p.self, k-1, p.direction)
	}
	return false
}

// collapse finishes a zero-length timeline (an empty sequence) in one step.
func (p *playback) collapse() bool {
	if p.loops == Infinite {
		return false
	}
	for k := 0; k < p.loops; k++ {
		p.setPosition(k, 0)
		p.renderTick()
		fireLoop(&p.events.LoopCompleting, p.self, k, p.direction)
		fireLoop(&p.events.LoopCompleted, p.self, k, p.direction)
		if k+1 < p.loops {
			fireLoop(&p.events.LoopStarting, p.self, k+1, p.direction)
			fireLoop(&p.events.LoopStarted, p.self, k+1, p.direction)
		}
	}
	return true
}

func (p *playback) renderTick() {
	fireUpdate(&p.events.LoopUpdating, p.self, p.loopIndex, p.elapsed, p.direction)
	p.kind.render(false)
	fireUpdate(&p.events.LoopUpdated, p.self, p.loopIndex, p.elapsed, p.direction)
}

// ---- seeking ----------------------------------------------------------------

// RewindOption adjusts RewindToStart and RewindToEnd.
type RewindOption func(*rewindOptions)

type rewindOptions struct {
	loop    int
	hasLoop bool
	clamp   bool
}

// AtLoop pins a rewind to the given 0-based loop instead of the first or
// last loop of the run.
func AtLoop(loop int) RewindOption {
	return func(o *rewindOptions) {
		o.loop = loop
		o.hasLoop = true
	}
}

// ClampLoop clamps an out-of-range AtLoop index instead of failing.
func ClampLoop() RewindOption {
	return func(o *rewindOptions) { o.clamp = true }
}

func (p *playback) rewindLoop(opts []RewindOption, def int) (int, error) {
	var o rewindOptions
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hasLoop {
		return def, nil
	}
	k := o.loop
	if k >= 0 && (p.loops == Infinite || k < p.loops) {
		return k, nil
	}
	if !o.clamp {
		return 0, invalidArgf("loop %d out of range for %q (%d loops)", k, p.name, p.loops)
	}
	if k < 0 {
		return 0, nil
	}
	return p.loops - 1, nil
}

// RewindToStart jumps to the start of the run, or of the loop chosen with
// AtLoop. No events fire and no time passes; the value is written once.
func (p *playback) RewindToStart(opts ...RewindOption) error {
	k, err := p.rewindLoop(opts, 0)
	if err != nil {
		return err
	}
	return p.seek(float64(k)*p.duration, false)
}

// RewindToEnd jumps to the end of the run, or of the loop chosen with
// AtLoop. Infinite playables default to the end of the current loop.
func (p *playback) RewindToEnd(opts ...RewindOption) error {
	def := p.loops - 1
	if p.loops == Infinite {
		def = p.loopIndex
	}
	k, err := p.rewindLoop(opts, def)
	if err != nil {
		return err
	}
	return p.seek(float64(k+1)*p.duration, true)
}

// Goto jumps to run clock t in [0, TotalDuration].
func (p *playback) Goto(t float64) error {
	span := p.TotalDuration()
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 || t > span {
		return invalidArgf("time %v outside [0, %v] for %q", t, span, p.name)
	}
	return p.seek(t, t == span)
}

func (p *playback) seek(clock float64, atEnd bool) error {
	if p.disposed {
		return transitionf("seek on disposed %q", p.name)
	}
	if p.owner != nil {
		return ownershipf("%q is driven by sequence %q", p.name, p.owner.name)
	}
	if p.dispatching > 0 {
		return transitionf("seek on %q from inside an event handler", p.name)
	}
	p.dispatching++
	defer func() { p.dispatching-- }()

	if !p.state.IsActive() {
		p.reversed = false
		p.state = StateIdle
	}
	p.place(clock, atEnd)
	p.kind.render(true)
	return nil
}

// seekChild re-derives an owned playable from its sequence's time. write
// controls whether values are rendered or only the clock is moved.
func (p *playback) seekChild(c float64, write bool) {
	span := p.TotalDuration()
	p.origin = p.initial
	p.reversed = false
	switch {
	case c <= 0:
		p.place(0, false)
		p.state = StateIdle
	case c >= span:
		p.place(span, true)
		p.state = StateCompleted
	default:
		p.place(c, false)
		p.state = StatePaused
	}
	p.kind.resync(write)
}

// ---- waiting ----------------------------------------------------------------

// WaitForComplete returns a handle that is ready once the playable completes.
func (p *playback) WaitForComplete() *Wait {
	return p.wait(waitComplete, p.state == StateCompleted)
}

// WaitForPause returns a handle that is ready once the playable pauses.
func (p *playback) WaitForPause() *Wait {
	return p.wait(waitPause, p.state == StatePaused)
}

// WaitForStop returns a handle that is ready once the playable is stopped.
func (p *playback) WaitForStop() *Wait {
	return p.wait(waitStop, p.state == StateStopped)
}

func (p *playback) wait(kind waitKind, reached bool) *Wait {
	if reached {
		return readyWait()
	}
	w := newWait()
	p.waits[kind].add(w)
	return w
}
