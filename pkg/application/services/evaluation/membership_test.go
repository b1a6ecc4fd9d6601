package evaluation

import (
	"testing"

	"github.com/srmorales/npi-sourcing/pkg/infrastructure/config"
	"github.com/stretchr/testify/require"
)

func TestTrapezoid_At(t *testing.T) {
	shoulder := Trapezoid{A: 0, B: 0, C: 30, D: 60}
	triangle := Trapezoid{A: 30, B: 60, C: 60, D: 90}

	testCases := []struct {
		name string
		mf   Trapezoid
		x    float64
		want float64
	}{
		{"left shoulder at origin", shoulder, 0, 1},
		{"left shoulder plateau", shoulder, 20, 1},
		{"left shoulder falling edge", shoulder, 45, 0.5},
		{"left shoulder beyond support", shoulder, 70, 0},
		{"triangle before support", triangle, 20, 0},
		{"triangle rising edge", triangle, 45, 0.5},
		{"triangle apex", triangle, 60, 1},
		{"triangle falling edge", triangle, 75, 0.5},
		{"triangle beyond support", triangle, 100, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, tc.mf.At(tc.x), 1e-9)
		})
	}
}

func TestVariable_FuzzifyClampsToUniverse(t *testing.T) {
	v := newVariable(VarDueTime, config.Default().Fuzzy.DueTime)

	// Below the universe the boundary term dominates fully.
	under := v.Fuzzify(-50)
	require.InDelta(t, 1, under["close"], 1e-9)
	require.InDelta(t, 0, under["far"], 1e-9)

	over := v.Fuzzify(10000)
	require.InDelta(t, 0, over["close"], 1e-9)
	require.InDelta(t, 1, over["far"], 1e-9)

	// No extrapolation: the clamped value matches the boundary exactly.
	require.Equal(t, v.Fuzzify(v.Min), under)
	require.Equal(t, v.Fuzzify(v.Max), over)
}

func TestVariable_Guard(t *testing.T) {
	v := newVariable(VarDeliveryTime, config.Default().Fuzzy.DeliveryTime)

	require.NoError(t, v.Guard(0))
	require.NoError(t, v.Guard(120)) // outside universe, inside guard
	require.ErrorIs(t, v.Guard(-1), ErrInvalidRange)
	require.ErrorIs(t, v.Guard(400), ErrInvalidRange)
}

func TestVariable_DegreesBounded(t *testing.T) {
	v := newVariable(VarSpend, config.Default().Fuzzy.Spend)
	for x := -100.0; x <= 600; x += 7.3 {
		for term, d := range v.Fuzzify(x) {
			if d < 0 || d > 1 {
				t.Fatalf("degree for %s at %g out of [0,1]: %g", term, x, d)
			}
		}
	}
}
