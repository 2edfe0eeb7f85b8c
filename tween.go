package tweens

import "math"

// Tween interpolates a single value of type T from From to To and hands each
// new value to a setter. The Tweak that knows how to interpolate T is chosen
// at construction.
type Tween[T any] struct {
	playback

	from   T
	to     T
	setter func(T)
	tweak  Tweak[T]
}

var _ Playable = (*Tween[float64])(nil)

// NewTween creates an idle tween. duration is the length of one loop and must
// be positive; setter and tweak must not be nil.
func NewTween[T any](name string, from, to T, setter func(T), duration float64, tweak Tweak[T], cfg Config) (*Tween[T], error) {
	if setter == nil {
		return nil, invalidArgf("tween %q: nil setter", name)
	}
	if tweak == nil {
		return nil, invalidArgf("tween %q: nil tweak", name)
	}
	if tf, ok := tweak.(TweakFunc[T]); ok && tf.InterpolateFn == nil {
		return nil, invalidArgf("tween %q: TweakFunc without InterpolateFn", name)
	}
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration <= 0 {
		return nil, invalidArgf("tween %q: duration %v", name, duration)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Tween[T]{from: from, to: to, setter: setter, tweak: tweak}
	t.init(t, t, name, duration, cfg)
	return t, nil
}

// NewFloatTween creates a float64 tween using FloatTweak.
func NewFloatTween(name string, from, to float64, setter func(float64), duration float64, cfg Config) (*Tween[float64], error) {
	return NewTween[float64](name, from, to, setter, duration, FloatTweak{}, cfg)
}

// From returns the start value.
func (t *Tween[T]) From() T { return t.from }

// To returns the end value.
func (t *Tween[T]) To() T { return t.to }

// Value computes the value for the current position without calling the
// setter.
func (t *Tween[T]) Value() T {
	return t.tweak.Interpolate(t.from, t.to, t.progress())
}

// SetRange replaces the start and end values. The new range is written on
// the next render.
func (t *Tween[T]) SetRange(from, to T) {
	t.from = from
	t.to = to
}

// SeekValue places the tween inside its current loop at the position whose
// linear progress matches current, as reported by the Tweak. It is used to
// pick up a value that was changed from outside mid-flight.
func (t *Tween[T]) SeekValue(current T) error {
	f := t.tweak.Progress(t.from, t.to, current)
	u := f * t.duration
	if t.flowOf(t.loopIndex) == Backward {
		u = t.duration - u
	}
	base := float64(t.loopIndex) * t.duration
	return t.seek(base+u, u >= t.duration)
}

func (t *Tween[T]) progress() float64 {
	eased := t.formula.Ease(t.elapsed / t.duration)
	if t.loopType == LoopContinue {
		// Each finished loop shifts the ramp by one whole range.
		if t.origin == Forward {
			eased += float64(t.loopIndex)
		} else {
			eased -= float64(t.loopIndex)
		}
	}
	return eased
}

func (t *Tween[T]) render(bool) {
	t.setter(t.tweak.Interpolate(t.from, t.to, t.progress()))
}

func (t *Tween[T]) resync(write bool) {
	if write {
		t.render(true)
	}
}

func (t *Tween[T]) loopRestart() {}

func (t *Tween[T]) hold(State) {}
