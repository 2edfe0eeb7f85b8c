package tweens

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestFloatTweak(t *testing.T) {
	var tw FloatTweak
	assert.InDelta(t, 15.0, tw.Interpolate(10, 20, 0.5), 1e-12)
	assert.InDelta(t, 25.0, tw.Interpolate(10, 20, 1.5), 1e-12, "overshoot is not clamped")
	assert.InDelta(t, 0.25, tw.Progress(10, 20, 12.5), 1e-12)
	assert.Equal(t, 1.0, tw.Progress(10, 20, 40), "progress clamps")
	assert.Equal(t, 0.0, tw.Progress(5, 5, 5), "empty range")
}

func TestVec2Tweak(t *testing.T) {
	var tw Vec2Tweak
	from, to := r2.Vec{X: 0, Y: 0}, r2.Vec{X: 10, Y: 20}
	got := tw.Interpolate(from, to, 0.25)
	assert.InDelta(t, 2.5, got.X, 1e-12)
	assert.InDelta(t, 5.0, got.Y, 1e-12)
	assert.InDelta(t, 0.5, tw.Progress(from, to, r2.Vec{X: 5, Y: 10}), 1e-12)
}

func TestVec3Tweak(t *testing.T) {
	var tw Vec3Tweak
	from, to := r3.Vec{X: 1, Y: 1, Z: 1}, r3.Vec{X: 3, Y: 5, Z: -1}
	got := tw.Interpolate(from, to, 0.5)
	assert.InDelta(t, 2.0, got.X, 1e-12)
	assert.InDelta(t, 3.0, got.Y, 1e-12)
	assert.InDelta(t, 0.0, got.Z, 1e-12)
	assert.InDelta(t, 0.5, tw.Progress(from, to, got), 1e-12)
}

func TestVec4Tweak(t *testing.T) {
	var tw Vec4Tweak
	from, to := Vec4{}, Vec4{X: 4, Y: 8, Z: 12, W: 16}
	got := tw.Interpolate(from, to, 0.75)
	assert.Equal(t, Vec4{X: 3, Y: 6, Z: 9, W: 12}, got)
	assert.InDelta(t, 0.75, tw.Progress(from, to, got), 1e-12)
}

func TestColorTweak(t *testing.T) {
	var tw ColorTweak
	from := Color{R: 1, G: 0, B: 0, A: 1}
	to := Color{R: 0, G: 1, B: 0.5, A: 0}
	got := tw.Interpolate(from, to, 0.5)
	assert.InDelta(t, 0.5, got.R, 1e-9)
	assert.InDelta(t, 0.5, got.G, 1e-9)
	assert.InDelta(t, 0.25, got.B, 1e-9)
	assert.InDelta(t, 0.5, got.A, 1e-9)
	assert.InDelta(t, 0.5, tw.Progress(from, to, got), 1e-9)
}

func TestLabColorTweakEndpoints(t *testing.T) {
	var tw LabColorTweak
	from := Color{R: 0.2, G: 0.4, B: 0.9, A: 1}
	to := Color{R: 0.9, G: 0.7, B: 0.1, A: 1}

	start := tw.Interpolate(from, to, 0)
	end := tw.Interpolate(from, to, 1)
	for _, c := range [][2]float64{
		{start.R, from.R}, {start.G, from.G}, {start.B, from.B},
		{end.R, to.R}, {end.G, to.G}, {end.B, to.B},
	} {
		assert.InDelta(t, c[1], c[0], 1e-3)
	}
	mid := tw.Interpolate(from, to, 0.5)
	for _, v := range []float64{mid.R, mid.G, mid.B} {
		assert.True(t, v >= 0 && v <= 1, "channel %v out of range", v)
	}
	assert.InDelta(t, 0.0, tw.Progress(from, to, from), 1e-9)
	assert.InDelta(t, 1.0, tw.Progress(from, to, to), 1e-9)
}

func TestRotationTweakSlerp(t *testing.T) {
	var tw RotationTweak
	from := r3.NewRotation(0, r3.Vec{Z: 1})
	to := r3.NewRotation(math.Pi/2, r3.Vec{Z: 1})

	mid := tw.Interpolate(from, to, 0.5)
	v := mid.Rotate(r3.Vec{X: 1})
	// Halfway between 0 and 90 degrees about Z.
	assert.InDelta(t, math.Cos(math.Pi/4), v.X, 1e-9)
	assert.InDelta(t, math.Sin(math.Pi/4), v.Y, 1e-9)
	assert.InDelta(t, 0.0, v.Z, 1e-9)

	assert.InDelta(t, 0.5, tw.Progress(from, to, mid), 1e-9)
}

func TestRotationTweakShortestArc(t *testing.T) {
	var tw RotationTweak
	from := r3.NewRotation(0, r3.Vec{Z: 1})
	// 350 degrees is reached by turning -10 degrees.
	to := r3.NewRotation(350*math.Pi/180, r3.Vec{Z: 1})

	mid := tw.Interpolate(from, to, 0.5)
	v := mid.Rotate(r3.Vec{X: 1})
	want := -5 * math.Pi / 180
	assert.InDelta(t, math.Cos(want), v.X, 1e-9)
	assert.InDelta(t, math.Sin(want), v.Y, 1e-9)
}

func TestTweakFunc(t *testing.T) {
	tw := TweakFunc[int]{
		InterpolateFn: func(from, to int, p float64) int {
			return from + int(math.Round(float64(to-from)*p))
		},
	}
	assert.Equal(t, 5, tw.Interpolate(0, 10, 0.5))
	assert.Equal(t, 0.0, tw.Progress(0, 10, 5), "nil ProgressFn reports 0")

	tw.ProgressFn = func(from, to, cur int) float64 { return float64(cur-from) / float64(to-from) }
	assert.Equal(t, 0.5, tw.Progress(0, 10, 5))
	assert.Equal(t, 1.0, tw.Progress(0, 10, 50), "clamped")
}
