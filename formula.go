package tweens

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// Formula is a named easing function mapping normalized progress in [0, 1] to
// eased progress. Overshooting formulas (Back, Elastic) may leave [0, 1].
// Formulas must be pure: sequences re-evaluate past positions when seeking.
//
// The zero Formula behaves as Linear.
type Formula struct {
	name string
	fn   func(t float64) float64
}

// NewFormula wraps fn under the given diagnostic name.
func NewFormula(name string, fn func(t float64) float64) Formula {
	return Formula{name: name, fn: fn}
}

// FromEase adapts a gween easing function. The function is sampled over a unit
// duration with a unit change, so its output is the eased progress.
func FromEase(name string, fn ease.TweenFunc) Formula {
	return Formula{name: name, fn: func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}}
}

// Name returns the formula's diagnostic name.
func (f Formula) Name() string {
	if f.fn == nil {
		return Linear.name
	}
	return f.name
}

// Ease maps progress t to eased progress. Inputs outside [0, 1] are clamped.
func (f Formula) Ease(t float64) float64 {
	t = clamp(t, 0, 1)
	if f.fn == nil {
		return t
	}
	// Pin the endpoints so float32 easing tables cannot drift off them.
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return f.fn(t)
}

// String implements fmt.Stringer.
func (f Formula) String() string {
	return f.Name()
}

// Linear is computed natively in float64 so that scrubbing is exact.
var Linear = NewFormula("Linear", func(t float64) float64 { return t })

// Easing library, named after the gween functions they adapt.
var (
	InQuad       = FromEase("InQuad", ease.InQuad)
	OutQuad      = FromEase("OutQuad", ease.OutQuad)
	InOutQuad    = FromEase("InOutQuad", ease.InOutQuad)
	OutInQuad    = FromEase("OutInQuad", ease.OutInQuad)
	InCubic      = FromEase("InCubic", ease.InCubic)
	OutCubic     = FromEase("OutCubic", ease.OutCubic)
	InOutCubic   = FromEase("InOutCubic", ease.InOutCubic)
	OutInCubic   = FromEase("OutInCubic", ease.OutInCubic)
	InQuart      = FromEase("InQuart", ease.InQuart)
	OutQuart     = FromEase("OutQuart", ease.OutQuart)
	InOutQuart   = FromEase("InOutQuart", ease.InOutQuart)
	OutInQuart   = FromEase("OutInQuart", ease.OutInQuart)
	InQuint      = FromEase("InQuint", ease.InQuint)
	OutQuint     = FromEase("OutQuint", ease.OutQuint)
	InOutQuint   = FromEase("InOutQuint", ease.InOutQuint)
	OutInQuint   = FromEase("OutInQuint", ease.OutInQuint)
	InSine       = FromEase("InSine", ease.InSine)
	OutSine      = FromEase("OutSine", ease.OutSine)
	InOutSine    = FromEase("InOutSine", ease.InOutSine)
	OutInSine    = FromEase("OutInSine", ease.OutInSine)
	InExpo       = FromEase("InExpo", ease.InExpo)
	OutExpo      = FromEase("OutExpo", ease.OutExpo)
	InOutExpo    = FromEase("InOutExpo", ease.InOutExpo)
	OutInExpo    = FromEase("OutInExpo", ease.OutInExpo)
	InCirc       = FromEase("InCirc", ease.InCirc)
	OutCirc      = FromEase("OutCirc", ease.OutCirc)
	InOutCirc    = FromEase("InOutCirc", ease.InOutCirc)
	OutInCirc    = FromEase("OutInCirc", ease.OutInCirc)
	InElastic    = FromEase("InElastic", ease.InElastic)
	OutElastic   = FromEase("OutElastic", ease.OutElastic)
	InOutElastic = FromEase("InOutElastic", ease.InOutElastic)
	OutInElastic = FromEase("OutInElastic", ease.OutInElastic)
	InBack       = FromEase("InBack", ease.InBack)
	OutBack      = FromEase("OutBack", ease.OutBack)
	InOutBack    = FromEase("InOutBack", ease.InOutBack)
	OutInBack    = FromEase("OutInBack", ease.OutInBack)
	InBounce     = FromEase("InBounce", ease.InBounce)
	OutBounce    = FromEase("OutBounce", ease.OutBounce)
	InOutBounce  = FromEase("InOutBounce", ease.InOutBounce)
	OutInBounce  = FromEase("OutInBounce", ease.OutInBounce)
)

var formulaRegistry = map[string]Formula{}

func init() {
	for _, f := range []Formula{
		Linear,
		InQuad, OutQuad, InOutQuad, OutInQuad,
		InCubic, OutCubic, InOutCubic, OutInCubic,
		InQuart, OutQuart, InOutQuart, OutInQuart,
		InQuint, OutQuint, InOutQuint, OutInQuint,
		InSine, OutSine, InOutSine, OutInSine,
		InExpo, OutExpo, InOutExpo, OutInExpo,
		InCirc, OutCirc, InOutCirc, OutInCirc,
		InElastic, OutElastic, InOutElastic, OutInElastic,
		InBack, OutBack, InOutBack, OutInBack,
		InBounce, OutBounce, InOutBounce, OutInBounce,
	} {
		formulaRegistry[f.name] = f
	}
}

// RegisterFormula makes f available to FormulaByName and preset files.
// Registering an existing name replaces it.
func RegisterFormula(f Formula) error {
	if f.name == "" || f.fn == nil {
		return invalidArgf("formula needs a name and a function")
	}
	formulaRegistry[f.name] = f
	return nil
}

// FormulaByName looks up a built-in or registered formula.
func FormulaByName(name string) (Formula, bool) {
	f, ok := formulaRegistry[name]
	return f, ok
}

// Formulas returns every known formula sorted by name.
func Formulas() []Formula {
	out := make([]Formula, 0, len(formulaRegistry))
	for _, f := range formulaRegistry {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
