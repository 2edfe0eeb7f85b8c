package tweens

import (
	"fmt"
	"io"
	"os"
	"time"
)

// globalDebug mirrors the most recently set Driver debug flag so that
// playable operations (which lack a Driver pointer) can check it cheaply.
var globalDebug bool

// debugOut receives warnings and per-tick stats.
var debugOut io.Writer = os.Stderr

// debugStats holds per-tick metrics. Only populated when debug mode is on.
type debugStats struct {
	tickTime  time.Duration
	playables int
	playing   int
	pruned    int
	errors    int
}

// debugLog prints one tick's stats. The Driver gates it on its own flag.
func debugLog(stats debugStats) {
	_, _ = fmt.Fprintf(debugOut,
		"[tweens] tick: %v | playables: %d | playing: %d | pruned: %d | errors: %d\n",
		stats.tickTime, stats.playables, stats.playing, stats.pruned, stats.errors)
}

// debugCheckDisposed panics with a descriptive message when a disposed
// sequence is used. Release mode returns an error from the caller instead.
func debugCheckDisposed(p Playable, op string) {
	if !globalDebug {
		return
	}
	if p.core().disposed {
		panic(fmt.Sprintf("tweens debug: %s on disposed %q", op, p.Name()))
	}
}

// debugIgnoredControl notes a control call on a playable its sequence drives.
func debugIgnoredControl(p *playback, op string) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[tweens] %s on %q ignored: owned by sequence %q\n",
		op, p.name, p.owner.name)
}

// debugCheckNesting warns if a sequence tree grows deeper than the threshold.
const debugMaxNesting = 32

func debugCheckNesting(s *Sequence) {
	if !globalDebug {
		return
	}
	depth := s.root().depth()
	if depth > debugMaxNesting {
		_, _ = fmt.Fprintf(debugOut, "[tweens] warning: sequence depth %d exceeds %d (sequence %q)\n",
			depth, debugMaxNesting, s.name)
	}
}

// debugCheckChildCount warns if a sequence holds more than 1000 chronolines.
const debugMaxChildCount = 1000

func debugCheckChildCount(s *Sequence) {
	if !globalDebug {
		return
	}
	if len(s.lines) > debugMaxChildCount {
		_, _ = fmt.Fprintf(debugOut, "[tweens] warning: sequence %q has %d chronolines (threshold %d)\n",
			s.name, len(s.lines), debugMaxChildCount)
	}
}
