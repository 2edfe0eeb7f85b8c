package tweens

import (
	"errors"
	"math"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EventSink is the interface for optional ECS integration. When set on a
// Driver, lifecycle and loop events of every driven playable are forwarded.
type EventSink interface {
	EmitPhase(ev PhaseEvent)
}

type driven struct {
	p       Playable
	untrace func()
}

// Driver owns a set of top-level playables and advances them together once
// per tick. It is the usual home for playables in an Ebitengine game: call
// Update from Game.Update.
type Driver struct {
	entries   []driven
	timeScale float64
	prune     bool
	sink      EventSink
	script    *Runner
	debug     bool
}

// NewDriver creates an empty driver running at normal speed.
func NewDriver() *Driver {
	return &Driver{timeScale: 1}
}

// Add registers a top-level playable. Adding a playable twice is a no-op; a
// playable owned by a Sequence fails with ErrOwnershipConflict.
func (d *Driver) Add(p Playable) error {
	if p == nil {
		return invalidArgf("nil playable")
	}
	if owner := p.Owner(); owner != nil {
		return ownershipf("%q is driven by sequence %q", p.Name(), owner.Name())
	}
	if d.index(p) >= 0 {
		return nil
	}
	d.entries = append(d.entries, d.track(p))
	return nil
}

// Remove unregisters p and reports whether it was present. The playable keeps
// its state.
func (d *Driver) Remove(p Playable) bool {
	i := d.index(p)
	if i < 0 {
		return false
	}
	d.release(i)
	d.entries = slices.Delete(d.entries, i, i+1)
	return true
}

// Len returns the number of registered playables.
func (d *Driver) Len() int { return len(d.entries) }

// Playables returns the registered playables in insertion order.
func (d *Driver) Playables() []Playable {
	out := make([]Playable, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.p
	}
	return out
}

// TimeScale returns the multiplier applied to every tick.
func (d *Driver) TimeScale() float64 { return d.timeScale }

// SetTimeScale sets the multiplier applied to every tick. 0 freezes time.
func (d *Driver) SetTimeScale(scale float64) error {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale < 0 {
		return invalidArgf("time scale %v", scale)
	}
	d.timeScale = scale
	return nil
}

// SetPruneFinished makes Tick drop playables once they complete or stop.
func (d *Driver) SetPruneFinished(enabled bool) { d.prune = enabled }

// SetEventSink sets the optional ECS bridge. Pass nil to detach it.
func (d *Driver) SetEventSink(sink EventSink) {
	for i := range d.entries {
		d.release(i)
	}
	d.sink = sink
	for i := range d.entries {
		d.entries[i] = d.track(d.entries[i].p)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, use of a
// disposed sequence panics, ignored control calls and deep nesting are
// reported, and per-tick stats are logged to stderr.
//
// The checks on playables read a process-wide flag, so the last call on any
// Driver wins for them. Per-tick stats stay per Driver.
func (d *Driver) SetDebugMode(enabled bool) {
	d.debug = enabled
	globalDebug = enabled
}

// Update advances every playable by one Ebitengine tick.
func (d *Driver) Update() error {
	return d.Tick(1.0 / float64(ebiten.TPS()))
}

// Tick advances every playable by dt seconds times the time scale. Errors
// from individual playables are joined; the remaining playables still tick.
// Playables that were inserted into a sequence since the last tick are
// dropped, since their sequence now drives them.
func (d *Driver) Tick(dt float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return invalidArgf("delta time %v", dt)
	}
	var stats debugStats
	var t0 time.Time
	if d.debug {
		t0 = time.Now()
	}

	var errs []error
	if d.script != nil {
		if err := d.script.step(d); err != nil {
			errs = append(errs, err)
		}
	}
	step := dt * d.timeScale
	// Handlers may add or remove playables; tick the ones present now.
	for _, e := range slices.Clone(d.entries) {
		if e.p.Owner() != nil {
			d.Remove(e.p)
			stats.pruned++
			continue
		}
		if err := e.p.Update(step); err != nil {
			errs = append(errs, err)
		}
		switch st := e.p.State(); {
		case st == StatePlaying:
			stats.playing++
		case d.prune && (st == StateCompleted || st == StateStopped):
			d.Remove(e.p)
			stats.pruned++
		}
	}

	if d.debug {
		stats.tickTime = time.Since(t0)
		stats.playables = len(d.entries)
		stats.errors = len(errs)
		debugLog(stats)
	}
	return errors.Join(errs...)
}

func (d *Driver) index(p Playable) int {
	return slices.IndexFunc(d.entries, func(e driven) bool { return e.p == p })
}

func (d *Driver) track(p Playable) driven {
	e := driven{p: p}
	if d.sink != nil {
		sink := d.sink
		e.untrace = Trace(p, sink.EmitPhase)
	}
	return e
}

func (d *Driver) release(i int) {
	if u := d.entries[i].untrace; u != nil {
		u()
		d.entries[i].untrace = nil
	}
}
