package tweens

import "math"

// Infinite is the LoopsCount sentinel for a playable that never completes on
// its own when played forward.
const Infinite = -1

// timeEpsilon absorbs float drift when summing per-frame deltas, so that ten
// updates of 0.1 land on a 1.0 boundary.
const timeEpsilon = 1e-9

// Direction is the direction in which a playable's loop time flows.
type Direction uint8

const (
	Forward  Direction = iota // loop time increases toward Duration
	Backward                  // loop time decreases toward 0
)

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	default:
		return "Unknown"
	}
}

// State is the coarse lifecycle state of a playable.
type State uint8

const (
	StateIdle      State = iota // created or reset, not running
	StatePlaying                // advanced by Update
	StatePaused                 // holds position until resumed
	StateStopped                // cancelled; position kept for inspection
	StateCompleted              // final loop finished
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateStopped:
		return "Stopped"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// IsActive reports whether the playable is inside a run (playing or paused).
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}

// LoopType selects what happens when a loop boundary is crossed.
type LoopType uint8

const (
	LoopReset    LoopType = iota // snap back to the start boundary
	LoopMirror                   // flip direction and ping-pong
	LoopContinue                 // restart loop time but keep ramping the value
)

// String returns the loop type name.
func (l LoopType) String() string {
	switch l {
	case LoopReset:
		return "Reset"
	case LoopMirror:
		return "Mirror"
	case LoopContinue:
		return "Continue"
	default:
		return "Unknown"
	}
}

// LoopResetBehaviour controls what a Sequence does to its children when one of
// its own loops restarts under LoopReset or LoopContinue.
type LoopResetBehaviour uint8

const (
	ResetRewindChildren LoopResetBehaviour = iota // render children back to their start
	ResetSkipChildren                             // reset child clocks, keep last written values
)

// String returns the behaviour name.
func (b LoopResetBehaviour) String() string {
	switch b {
	case ResetRewindChildren:
		return "Rewind"
	case ResetSkipChildren:
		return "Skip"
	default:
		return "Unknown"
	}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// Vec4 is a four component vector for values that do not fit r2/r3.
type Vec4 struct {
	X, Y, Z, W float64
}

// Config holds the playback settings shared by tweens and sequences. The zero
// value plays once, forward, with Linear easing and LoopReset.
type Config struct {
	Formula   Formula
	Loops     int // 0 means 1; Infinite loops forever
	LoopType  LoopType
	Direction Direction
}

func (c Config) loops() int {
	if c.Loops == 0 {
		return 1
	}
	return c.Loops
}

func (c Config) validate() error {
	if c.Loops < Infinite {
		return invalidArgf("loops count %d", c.Loops)
	}
	if c.LoopType > LoopContinue {
		return invalidArgf("loop type %d", c.LoopType)
	}
	if c.Direction > Backward {
		return invalidArgf("direction %d", c.Direction)
	}
	return nil
}

// SequenceConfig extends Config with the child handling at loop restarts.
type SequenceConfig struct {
	Config
	LoopReset LoopResetBehaviour
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
