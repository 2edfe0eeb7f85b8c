package tweens

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Tweak interpolates values of type T. A Tween receives its Tweak at
// construction, so new value types only need a new Tweak.
type Tweak[T any] interface {
	// Interpolate returns the value at eased progress between from and to.
	// Progress may leave [0, 1] for overshooting formulas and LoopContinue.
	Interpolate(from, to T, progress float64) T

	// Progress returns where current lies between from and to as a fraction
	// of the way, clamped to [0, 1]. It is the inverse of a linear Interpolate.
	Progress(from, to, current T) float64
}

// TweakFunc adapts a pair of functions to the Tweak interface. It is the
// registration point for custom value types. A nil ProgressFn reports 0.
type TweakFunc[T any] struct {
	InterpolateFn func(from, to T, progress float64) T
	ProgressFn    func(from, to, current T) float64
}

// Interpolate implements Tweak.
func (f TweakFunc[T]) Interpolate(from, to T, progress float64) T {
	return f.InterpolateFn(from, to, progress)
}

// Progress implements Tweak.
func (f TweakFunc[T]) Progress(from, to, current T) float64 {
	if f.ProgressFn == nil {
		return 0
	}
	return clamp(f.ProgressFn(from, to, current), 0, 1)
}

// FloatTweak interpolates float64 values.
type FloatTweak struct{}

// Interpolate implements Tweak.
func (FloatTweak) Interpolate(from, to float64, progress float64) float64 {
	return from + (to-from)*progress
}

// Progress implements Tweak.
func (FloatTweak) Progress(from, to, current float64) float64 {
	span := to - from
	if span == 0 {
		return 0
	}
	return clamp((current-from)/span, 0, 1)
}

// Vec2Tweak interpolates 2D vectors component-wise.
type Vec2Tweak struct{}

// Interpolate implements Tweak.
func (Vec2Tweak) Interpolate(from, to r2.Vec, progress float64) r2.Vec {
	return r2.Add(from, r2.Scale(progress, r2.Sub(to, from)))
}

// Progress implements Tweak. current is projected onto the from→to segment.
func (Vec2Tweak) Progress(from, to, current r2.Vec) float64 {
	d := r2.Sub(to, from)
	n := r2.Norm2(d)
	if n == 0 {
		return 0
	}
	return clamp(r2.Dot(r2.Sub(current, from), d)/n, 0, 1)
}

// Vec3Tweak interpolates 3D vectors component-wise.
type Vec3Tweak struct{}

// Interpolate implements Tweak.
func (Vec3Tweak) Interpolate(from, to r3.Vec, progress float64) r3.Vec {
	return r3.Add(from, r3.Scale(progress, r3.Sub(to, from)))
}

// Progress implements Tweak. current is projected onto the from→to segment.
func (Vec3Tweak) Progress(from, to, current r3.Vec) float64 {
	d := r3.Sub(to, from)
	n := r3.Norm2(d)
	if n == 0 {
		return 0
	}
	return clamp(r3.Dot(r3.Sub(current, from), d)/n, 0, 1)
}

// Vec4Tweak interpolates Vec4 values component-wise.
type Vec4Tweak struct{}

// Interpolate implements Tweak.
func (Vec4Tweak) Interpolate(from, to Vec4, progress float64) Vec4 {
	return Vec4{
		X: from.X + (to.X-from.X)*progress,
		Y: from.Y + (to.Y-from.Y)*progress,
		Z: from.Z + (to.Z-from.Z)*progress,
		W: from.W + (to.W-from.W)*progress,
	}
}

// Progress implements Tweak.
func (Vec4Tweak) Progress(from, to, current Vec4) float64 {
	return projectProgress(
		[4]float64{from.X, from.Y, from.Z, from.W},
		[4]float64{to.X, to.Y, to.Z, to.W},
		[4]float64{current.X, current.Y, current.Z, current.W},
	)
}

// ColorTweak interpolates colors channel by channel in sRGB space.
type ColorTweak struct{}

// Interpolate implements Tweak.
func (ColorTweak) Interpolate(from, to Color, progress float64) Color {
	c := toColorful(from).BlendRgb(toColorful(to), progress)
	return Color{R: c.R, G: c.G, B: c.B, A: from.A + (to.A-from.A)*progress}
}

// Progress implements Tweak.
func (ColorTweak) Progress(from, to, current Color) float64 {
	return projectProgress(colorVec(from), colorVec(to), colorVec(current))
}

// LabColorTweak interpolates colors in CIE L*a*b* space, which keeps the
// perceived brightness change even. Results are clamped to valid RGB.
type LabColorTweak struct{}

// Interpolate implements Tweak.
func (LabColorTweak) Interpolate(from, to Color, progress float64) Color {
	c := toColorful(from).BlendLab(toColorful(to), progress).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: from.A + (to.A-from.A)*progress}
}

// Progress implements Tweak using distances in Lab space.
func (LabColorTweak) Progress(from, to, current Color) float64 {
	total := toColorful(from).DistanceLab(toColorful(to))
	if total == 0 {
		return 0
	}
	return clamp(toColorful(from).DistanceLab(toColorful(current))/total, 0, 1)
}

// RotationTweak interpolates rotations along the shortest arc (slerp).
type RotationTweak struct{}

// Interpolate implements Tweak.
func (RotationTweak) Interpolate(from, to r3.Rotation, progress float64) r3.Rotation {
	q0 := quat.Number(from)
	q1 := shortestArc(q0, quat.Number(to))
	// p(t) = (q1 * q0^-1)^t * q0
	d := quat.Mul(q1, quat.Inv(q0))
	return r3.Rotation(quat.Mul(quat.PowReal(d, progress), q0))
}

// Progress implements Tweak as the ratio of the arc already covered.
func (RotationTweak) Progress(from, to, current r3.Rotation) float64 {
	total := arcAngle(quat.Number(from), quat.Number(to))
	if total == 0 {
		return 0
	}
	return clamp(arcAngle(quat.Number(from), quat.Number(current))/total, 0, 1)
}

// shortestArc flips q1 into the hemisphere of q0; q and -q are the same
// rotation but only one of them is reached by the short path.
func shortestArc(q0, q1 quat.Number) quat.Number {
	if quatDot(q0, q1) < 0 {
		return quat.Scale(-1, q1)
	}
	return q1
}

func arcAngle(q0, q1 quat.Number) float64 {
	n := quat.Abs(q0) * quat.Abs(q1)
	if n == 0 {
		return 0
	}
	d := math.Abs(quatDot(q0, q1)) / n
	return 2 * math.Acos(clamp(d, -1, 1))
}

func quatDot(a, b quat.Number) float64 {
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func colorVec(c Color) [4]float64 {
	return [4]float64{c.R, c.G, c.B, c.A}
}

func projectProgress(from, to, current [4]float64) float64 {
	var dot, n float64
	for i := range from {
		d := to[i] - from[i]
		dot += (current[i] - from[i]) * d
		n += d * d
	}
	if n == 0 {
		return 0
	}
	return clamp(dot/n, 0, 1)
}
