package tweens

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// TweenField creates a tween that animates *field from its current value to
// to over duration seconds. The start value is read once, here.
func TweenField(name string, field *float64, to, duration float64, cfg Config) (*Tween[float64], error) {
	if field == nil {
		return nil, invalidArgf("tween %q: nil field", name)
	}
	return NewTween(name, *field, to, func(v float64) { *field = v }, duration, FloatTweak{}, cfg)
}

// TweenVec2 creates a tween that moves *field in a straight line to to.
func TweenVec2(name string, field *r2.Vec, to r2.Vec, duration float64, cfg Config) (*Tween[r2.Vec], error) {
	if field == nil {
		return nil, invalidArgf("tween %q: nil field", name)
	}
	return NewTween(name, *field, to, func(v r2.Vec) { *field = v }, duration, Vec2Tweak{}, cfg)
}

// TweenVec3 creates a tween that moves *field in a straight line to to.
func TweenVec3(name string, field *r3.Vec, to r3.Vec, duration float64, cfg Config) (*Tween[r3.Vec], error) {
	if field == nil {
		return nil, invalidArgf("tween %q: nil field", name)
	}
	return NewTween(name, *field, to, func(v r3.Vec) { *field = v }, duration, Vec3Tweak{}, cfg)
}

// TweenColor creates a tween that animates all four components of *field.
// perceptual blends through CIE L*a*b* instead of RGB.
func TweenColor(name string, field *Color, to Color, duration float64, perceptual bool, cfg Config) (*Tween[Color], error) {
	if field == nil {
		return nil, invalidArgf("tween %q: nil field", name)
	}
	var tweak Tweak[Color] = ColorTweak{}
	if perceptual {
		tweak = LabColorTweak{}
	}
	return NewTween(name, *field, to, func(v Color) { *field = v }, duration, tweak, cfg)
}

// TweenRotation creates a tween that turns *field along the shortest arc to
// to.
func TweenRotation(name string, field *r3.Rotation, to r3.Rotation, duration float64, cfg Config) (*Tween[r3.Rotation], error) {
	if field == nil {
		return nil, invalidArgf("tween %q: nil field", name)
	}
	return NewTween(name, *field, to, func(v r3.Rotation) { *field = v }, duration, RotationTweak{}, cfg)
}

// Parallel creates a sequence that starts every child at offset 0.
func Parallel(name string, cfg SequenceConfig, children ...Playable) (*Sequence, error) {
	s, err := NewSequence(name, cfg)
	if err != nil {
		return nil, err
	}
	for _, c := range children {
		if err := s.Insert(0, c); err != nil {
			s.Dispose()
			return nil, err
		}
	}
	return s, nil
}

// Chain creates a sequence that plays children one after another.
func Chain(name string, cfg SequenceConfig, children ...Playable) (*Sequence, error) {
	s, err := NewSequence(name, cfg)
	if err != nil {
		return nil, err
	}
	for _, c := range children {
		if err := s.Append(c); err != nil {
			s.Dispose()
			return nil, err
		}
	}
	return s, nil
}
