package evaluation

import (
	"fmt"

	"github.com/srmorales/npi-sourcing/pkg/infrastructure/config"
)

// Trapezoid is a trapezoidal membership function with breakpoints
// A <= B <= C <= D. Triangles have B == C; shoulders have A == B or C == D.
type Trapezoid struct {
	A, B, C, D float64
}

// At returns the membership degree of x, always in [0,1].
func (t Trapezoid) At(x float64) float64 {
	switch {
	case x < t.A || x > t.D:
		return 0
	case x < t.B:
		return (x - t.A) / (t.B - t.A)
	case x <= t.C:
		return 1
	default:
		return (t.D - x) / (t.D - t.C)
	}
}

// Variable is a linguistic variable: a universe, an absolute guard range for
// crisp inputs, and a set of named terms.
type Variable struct {
	Name     string
	Min, Max float64
	GuardMin float64
	GuardMax float64

	terms map[string]Trapezoid
}

func newVariable(name string, vc config.VariableConfig) *Variable {
	v := &Variable{
		Name:     name,
		Min:      vc.UniverseMin,
		Max:      vc.UniverseMax,
		GuardMin: vc.GuardMin,
		GuardMax: vc.GuardMax,
		terms:    make(map[string]Trapezoid, len(vc.Terms)),
	}
	for _, tc := range vc.Terms {
		v.terms[tc.Name] = Trapezoid{A: tc.Points[0], B: tc.Points[1], C: tc.Points[2], D: tc.Points[3]}
	}
	return v
}

// HasTerm reports whether the variable defines a term.
func (v *Variable) HasTerm(name string) bool {
	_, ok := v.terms[name]
	return ok
}

// Guard rejects crisp values outside the absolute domain bounds. The guard
// is a sanity check at the engine boundary, distinct from universe clamping.
func (v *Variable) Guard(x float64) error {
	if x < v.GuardMin || x > v.GuardMax {
		return fmt.Errorf("%w: %s=%g outside [%g, %g]", ErrInvalidRange, v.Name, x, v.GuardMin, v.GuardMax)
	}
	return nil
}

// Fuzzify maps a crisp value to membership degrees per term. Values outside
// the universe take the boundary's degrees; there is no extrapolation.
func (v *Variable) Fuzzify(x float64) map[string]float64 {
	if x < v.Min {
		x = v.Min
	}
	if x > v.Max {
		x = v.Max
	}
	degrees := make(map[string]float64, len(v.terms))
	for name, t := range v.terms {
		degrees[name] = t.At(x)
	}
	return degrees
}
