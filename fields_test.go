package tweens

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestTweenFieldReachesTarget(t *testing.T) {
	x := 10.0
	tw, err := TweenField("x", &x, 100, 1, Config{})
	if err != nil {
		t.Fatal(err)
	}
	tw.Play()
	mustUpdate(t, tw, 0.5)
	if math.Abs(x-55) > 1e-9 {
		t.Errorf("x = %f, want 55 at halfway", x)
	}
	mustUpdate(t, tw, 0.5)
	if x != 100 {
		t.Errorf("x = %f, want 100", x)
	}
	if tw.From() != 10 || tw.To() != 100 {
		t.Errorf("From/To = %v/%v", tw.From(), tw.To())
	}
}

func TestTweenVec2ReachesTarget(t *testing.T) {
	pos := r2.Vec{X: 10, Y: 20}
	tw, err := TweenVec2("pos", &pos, r2.Vec{X: 100, Y: 200}, 1, Config{})
	if err != nil {
		t.Fatal(err)
	}
	tw.Play()
	mustUpdate(t, tw, 0.5)
	mustUpdate(t, tw, 0.5)
	if math.Abs(pos.X-100) > 1e-9 || math.Abs(pos.Y-200) > 1e-9 {
		t.Errorf("pos = %v, want (100, 200)", pos)
	}
}

func TestTweenVec3Interpolates(t *testing.T) {
	v := r3.Vec{}
	tw, err := TweenVec3("v", &v, r3.Vec{X: 2, Y: 4, Z: 6}, 2, Config{})
	if err != nil {
		t.Fatal(err)
	}
	tw.Play()
	mustUpdate(t, tw, 1)
	if math.Abs(v.X-1) > 1e-9 || math.Abs(v.Y-2) > 1e-9 || math.Abs(v.Z-3) > 1e-9 {
		t.Errorf("v = %v, want (1, 2, 3)", v)
	}
}

func TestTweenColorAllComponents(t *testing.T) {
	c := Color{R: 1, G: 0, B: 0, A: 1}
	target := Color{R: 0, G: 1, B: 0.5, A: 0.5}
	tw, err := TweenColor("color", &c, target, 1, false, Config{})
	if err != nil {
		t.Fatal(err)
	}
	tw.Play()
	mustUpdate(t, tw, 0.5)
	mustUpdate(t, tw, 0.5)
	for _, pair := range [][2]float64{{c.R, target.R}, {c.G, target.G}, {c.B, target.B}, {c.A, target.A}} {
		if math.Abs(pair[0]-pair[1]) > 0.01 {
			t.Errorf("component = %f, want %f", pair[0], pair[1])
		}
	}
}

func TestTweenColorPerceptualEndsOnTarget(t *testing.T) {
	c := ColorWhite
	target := Color{R: 0.1, G: 0.2, B: 0.8, A: 1}
	tw, err := TweenColor("lab", &c, target, 1, true, Config{})
	if err != nil {
		t.Fatal(err)
	}
	tw.Play()
	mustUpdate(t, tw, 1)
	if math.Abs(c.R-target.R) > 0.01 || math.Abs(c.G-target.G) > 0.01 || math.Abs(c.B-target.B) > 0.01 {
		t.Errorf("color = %+v, want %+v", c, target)
	}
}

func TestTweenRotationQuarterTurn(t *testing.T) {
	rot := r3.NewRotation(0, r3.Vec{Z: 1})
	tw, err := TweenRotation("rot", &rot, r3.NewRotation(math.Pi/2, r3.Vec{Z: 1}), 1, Config{})
	if err != nil {
		t.Fatal(err)
	}
	tw.Play()
	mustUpdate(t, tw, 1)
	v := rot.Rotate(r3.Vec{X: 1})
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-1) > 1e-9 {
		t.Errorf("rotated x axis = %v, want (0, 1, 0)", v)
	}
}

func TestTweenFieldNil(t *testing.T) {
	if _, err := TweenField("nil", nil, 1, 1, Config{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("TweenField(nil) = %v", err)
	}
	if _, err := TweenVec2("nil", nil, r2.Vec{}, 1, Config{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("TweenVec2(nil) = %v", err)
	}
	if _, err := TweenColor("nil", nil, ColorWhite, 1, false, Config{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("TweenColor(nil) = %v", err)
	}
}

func TestChainPlaysInOrder(t *testing.T) {
	var x, y float64
	tx, _ := TweenField("x", &x, 1, 1, Config{})
	ty, _ := TweenField("y", &y, 1, 1, Config{})
	s, err := Chain("chain", SequenceConfig{}, tx, ty)
	if err != nil {
		t.Fatal(err)
	}
	if s.Duration() != 2 {
		t.Fatalf("Duration = %v, want 2", s.Duration())
	}
	s.Play()
	mustUpdate(t, s, 1.5)
	if x != 1 || math.Abs(y-0.5) > 1e-9 {
		t.Errorf("x=%v y=%v, want 1 and 0.5", x, y)
	}
}

func TestChainRejectsOwnedChild(t *testing.T) {
	var x float64
	tx, _ := TweenField("x", &x, 1, 1, Config{})
	if _, err := Chain("first", SequenceConfig{}, tx); err != nil {
		t.Fatal(err)
	}
	if _, err := Chain("second", SequenceConfig{}, tx); !errors.Is(err, ErrOwnershipConflict) {
		t.Errorf("err = %v, want ErrOwnershipConflict", err)
	}
}
