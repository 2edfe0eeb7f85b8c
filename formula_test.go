package tweens

import (
	"errors"
	"math"
	"testing"
)

func TestFormulaEndpointsPinned(t *testing.T) {
	for _, f := range Formulas() {
		if got := f.Ease(0); got != 0 {
			t.Errorf("%s.Ease(0) = %v, want 0", f, got)
		}
		if got := f.Ease(1); got != 1 {
			t.Errorf("%s.Ease(1) = %v, want 1", f, got)
		}
	}
}

func TestFormulaClampsInput(t *testing.T) {
	if got := InQuad.Ease(-3); got != 0 {
		t.Errorf("Ease(-3) = %v, want 0", got)
	}
	if got := InQuad.Ease(7); got != 1 {
		t.Errorf("Ease(7) = %v, want 1", got)
	}
}

func TestFormulaLinearExact(t *testing.T) {
	for _, x := range []float64{0.1, 0.25, 1.0 / 3, 0.9} {
		if got := Linear.Ease(x); got != x {
			t.Errorf("Linear.Ease(%v) = %v", x, got)
		}
	}
}

func TestFormulaZeroValueIsLinear(t *testing.T) {
	var f Formula
	if f.Name() != "Linear" {
		t.Errorf("Name = %q, want Linear", f.Name())
	}
	if got := f.Ease(0.3); got != 0.3 {
		t.Errorf("Ease(0.3) = %v, want 0.3", got)
	}
}

func TestFormulaFromEaseShape(t *testing.T) {
	if got := InQuad.Ease(0.5); math.Abs(got-0.25) > 1e-6 {
		t.Errorf("InQuad.Ease(0.5) = %v, want 0.25", got)
	}
	if got := OutQuad.Ease(0.5); math.Abs(got-0.75) > 1e-6 {
		t.Errorf("OutQuad.Ease(0.5) = %v, want 0.75", got)
	}
	if got := InOutCubic.Ease(0.5); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("InOutCubic.Ease(0.5) = %v, want 0.5", got)
	}
	// Back overshoots below zero early on.
	if got := InBack.Ease(0.2); got >= 0 {
		t.Errorf("InBack.Ease(0.2) = %v, want negative", got)
	}
}

func TestFormulaRegistry(t *testing.T) {
	f, ok := FormulaByName("OutBounce")
	if !ok || f.Name() != "OutBounce" {
		t.Fatalf("FormulaByName(OutBounce) = %v, %v", f, ok)
	}
	if _, ok := FormulaByName("Nope"); ok {
		t.Error("unknown formula should not resolve")
	}

	step := NewFormula("TestStep", func(t float64) float64 {
		if t < 0.5 {
			return 0
		}
		return 1
	})
	if err := RegisterFormula(step); err != nil {
		t.Fatal(err)
	}
	defer delete(formulaRegistry, "TestStep")
	got, ok := FormulaByName("TestStep")
	if !ok || got.Ease(0.4) != 0 || got.Ease(0.6) != 1 {
		t.Error("registered formula not usable by name")
	}

	if err := RegisterFormula(Formula{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("RegisterFormula(zero) = %v, want ErrInvalidArgument", err)
	}
}

func TestFormulasSorted(t *testing.T) {
	all := Formulas()
	if len(all) != 41 {
		t.Errorf("len(Formulas()) = %d, want 41", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name() >= all[i].Name() {
			t.Fatalf("not sorted at %d: %s >= %s", i, all[i-1], all[i])
		}
	}
}
