package tweens

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a playback script.
type scriptStep struct {
	Action string  `json:"action"`
	Target string  `json:"target,omitempty"`
	Label  string  `json:"label,omitempty"`
	Time   float64 `json:"time,omitempty"`
	Loop   *int    `json:"loop,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// playbackScript is the top-level JSON structure for a playback script.
type playbackScript struct {
	Steps []scriptStep `json:"steps"`
}

// Mark is a snapshot recorded by a "mark" step.
type Mark struct {
	Label   string
	Frame   int
	Target  string
	State   State
	Loop    int
	Elapsed float64
}

// Runner sequences control calls on a Driver's playables across frames for
// frame-accurate playback tests and demos. Attach to a Driver via SetScript.
//
// Actions: play, playForward, playBackward, pause, resume, stop, reset,
// rewindStart, rewindEnd (optional loop), goto (time), wait (frames) and mark
// (label).
type Runner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	frame     int
	done      bool
	marks     []Mark
}

// LoadScript parses a JSON playback script and returns a Runner ready to be
// attached to a Driver via SetScript.
func LoadScript(jsonData []byte) (*Runner, error) {
	var script playbackScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse playback script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse playback script: no steps")
	}
	for i, st := range script.Steps {
		if st.Action != "wait" && st.Target == "" {
			return nil, fmt.Errorf("parse playback script: step %d (%s) has no target", i, st.Action)
		}
	}
	return &Runner{steps: script.Steps}, nil
}

// SetScript attaches a Runner to the driver. The runner's step method is
// called from Driver.Tick before playables advance each frame.
func (d *Driver) SetScript(r *Runner) {
	d.script = r
}

// Done reports whether all steps in the script have been executed.
func (r *Runner) Done() bool {
	return r.done
}

// Marks returns the snapshots recorded so far.
func (r *Runner) Marks() []Mark {
	return r.marks
}

// step advances the runner by one frame. Called from Driver.Tick.
func (r *Runner) step(d *Driver) error {
	if r.done {
		return nil
	}
	r.frame++
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}

	// Run every step up to and including the next wait.
	for r.cursor < len(r.steps) {
		st := r.steps[r.cursor]
		r.cursor++
		if st.Action == "wait" {
			if st.Frames > 0 {
				r.waitCount = st.Frames - 1 // this frame counts as one
			}
			break
		}
		if err := r.apply(d, st); err != nil {
			r.done = true
			return fmt.Errorf("playback script step %d: %w", r.cursor-1, err)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
	return nil
}

func (r *Runner) apply(d *Driver, st scriptStep) error {
	p := d.find(st.Target)
	if p == nil {
		return invalidArgf("unknown target %q", st.Target)
	}
	var opts []RewindOption
	if st.Loop != nil {
		opts = append(opts, AtLoop(*st.Loop))
	}
	switch st.Action {
	case "play":
		p.Play()
	case "playForward":
		p.PlayForward()
	case "playBackward":
		p.PlayBackward()
	case "pause":
		p.Pause()
	case "resume":
		p.Resume()
	case "stop":
		p.Stop()
	case "reset":
		p.Reset()
	case "rewindStart":
		return p.RewindToStart(opts...)
	case "rewindEnd":
		return p.RewindToEnd(opts...)
	case "goto":
		return p.Goto(st.Time)
	case "mark":
		r.marks = append(r.marks, Mark{
			Label:   st.Label,
			Frame:   r.frame,
			Target:  p.Name(),
			State:   p.State(),
			Loop:    p.LoopIndex(),
			Elapsed: p.ElapsedLoopTime(),
		})
	default:
		return invalidArgf("unknown action %q", st.Action)
	}
	return nil
}

// find looks a playable up by name among the driven playables and their
// sequence descendants, depth first.
func (d *Driver) find(name string) Playable {
	var walk func(p Playable) Playable
	walk = func(p Playable) Playable {
		if p.Name() == name {
			return p
		}
		if s, ok := p.(*Sequence); ok {
			for _, l := range s.lines {
				if found := walk(l.Playable); found != nil {
					return found
				}
			}
		}
		return nil
	}
	for _, e := range d.entries {
		if found := walk(e.p); found != nil {
			return found
		}
	}
	return nil
}
