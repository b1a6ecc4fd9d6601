package evaluation

import (
	"testing"

	"github.com/srmorales/npi-sourcing/pkg/infrastructure/config"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(config.Default().Fuzzy)
	require.NoError(t, err)
	return e
}

func TestEngine_EvaluateStrongCandidate(t *testing.T) {
	e := newTestEngine(t)

	// Fast delivery, cheap, punctual, plenty of runway to SOP.
	d, err := e.Evaluate(Inputs{
		DeliveryTimeDays: 15,
		SpendHundreds:    20,
		OnTimeRatio:      0.9,
		DueTimeDays:      200,
	})
	require.NoError(t, err)
	require.Equal(t, Implement, d.Action)
	require.InDelta(t, 1, d.Implement, 1e-9)
	require.InDelta(t, 0, d.Wait, 1e-9)
	// Centroid of the full implement membership function.
	require.InDelta(t, 6.833, d.Score, 0.05)
	require.Len(t, d.RuleStrengths, len(decisionRules))
}

func TestEngine_EvaluateWeakCandidate(t *testing.T) {
	e := newTestEngine(t)

	// SOP imminent, slow and unpunctual, expensive.
	d, err := e.Evaluate(Inputs{
		DeliveryTimeDays: 60,
		SpendHundreds:    200,
		OnTimeRatio:      0.1,
		DueTimeDays:      10,
	})
	require.NoError(t, err)
	require.Equal(t, Wait, d.Action)
	require.InDelta(t, 1, d.Wait, 1e-9)
	require.InDelta(t, 0, d.Implement, 1e-9)
	require.InDelta(t, 3.167, d.Score, 0.05)
}

func TestEngine_EvaluateIsPure(t *testing.T) {
	e := newTestEngine(t)
	in := Inputs{DeliveryTimeDays: 28, SpendHundreds: 75, OnTimeRatio: 0.55, DueTimeDays: 65}

	first, err := e.Evaluate(in)
	require.NoError(t, err)
	second, err := e.Evaluate(in)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEngine_FasterDeliveryNeverHurts(t *testing.T) {
	e := newTestEngine(t)

	pairs := []struct {
		fast, slow float64
	}{
		{15, 40},
		{20, 45},
		{15, 55},
	}
	for _, pair := range pairs {
		base := Inputs{SpendHundreds: 20, OnTimeRatio: 0.9, DueTimeDays: 200}

		quick := base
		quick.DeliveryTimeDays = pair.fast
		slow := base
		slow.DeliveryTimeDays = pair.slow

		dq, err := e.Evaluate(quick)
		require.NoError(t, err)
		ds, err := e.Evaluate(slow)
		require.NoError(t, err)
		require.GreaterOrEqual(t, dq.Implement, ds.Implement,
			"delivery %g vs %g", pair.fast, pair.slow)
	}
}

func TestEngine_ScoreStaysInOutputUniverse(t *testing.T) {
	e := newTestEngine(t)

	for _, delivery := range []float64{5, 25, 45, 70, 120} {
		for _, spend := range []float64{5, 60, 110, 300} {
			for _, otd := range []float64{0.1, 0.5, 0.9} {
				for _, due := range []float64{-30, 15, 60, 400} {
					d, err := e.Evaluate(Inputs{
						DeliveryTimeDays: delivery,
						SpendHundreds:    spend,
						OnTimeRatio:      otd,
						DueTimeDays:      due,
					})
					require.NoError(t, err)
					require.GreaterOrEqual(t, d.Score, 0.0)
					require.LessOrEqual(t, d.Score, 10.0)
				}
			}
		}
	}
}

func TestEngine_NewSupplierRuleBase(t *testing.T) {
	e := newTestEngine(t)

	// Far SOP, fast and cheap: the history-less base implements.
	d, err := e.Evaluate(Inputs{
		DeliveryTimeDays: 15,
		SpendHundreds:    20,
		DueTimeDays:      200,
		NewSupplier:      true,
	})
	require.NoError(t, err)
	require.Equal(t, Implement, d.Action)
	require.Len(t, d.RuleStrengths, len(newSupplierDecisionRules))

	// Punctuality is not guarded for new suppliers; there is nothing to read.
	_, err = e.Evaluate(Inputs{
		DeliveryTimeDays: 15,
		SpendHundreds:    20,
		OnTimeRatio:      5,
		DueTimeDays:      200,
		NewSupplier:      true,
	})
	require.NoError(t, err)
}

func TestEngine_OverdueProjectReadsAsClose(t *testing.T) {
	e := newTestEngine(t)

	// Negative due time clamps to the universe floor: SOP pressure is total.
	d, err := e.Evaluate(Inputs{
		DeliveryTimeDays: 15,
		SpendHundreds:    200,
		DueTimeDays:      -30,
		NewSupplier:      true,
	})
	require.NoError(t, err)
	require.Equal(t, Wait, d.Action)
	require.InDelta(t, 1, d.Wait, 1e-9)
}

func TestEngine_ZeroActivationCollapsesToWait(t *testing.T) {
	e := newTestEngine(t)

	// Regular spend fires no history-less rule: degenerate aggregate.
	d, err := e.Evaluate(Inputs{
		DeliveryTimeDays: 10,
		SpendHundreds:    90,
		DueTimeDays:      200,
		NewSupplier:      true,
	})
	require.NoError(t, err)
	require.Equal(t, Wait, d.Action)
	require.Zero(t, d.Wait)
	require.Zero(t, d.Implement)
	require.Zero(t, d.Score)
}

func TestEngine_InvalidRange(t *testing.T) {
	e := newTestEngine(t)

	testCases := []struct {
		name string
		in   Inputs
	}{
		{"delivery above guard", Inputs{DeliveryTimeDays: 400, SpendHundreds: 20, OnTimeRatio: 0.5, DueTimeDays: 60}},
		{"negative delivery", Inputs{DeliveryTimeDays: -1, SpendHundreds: 20, OnTimeRatio: 0.5, DueTimeDays: 60}},
		{"negative spend", Inputs{DeliveryTimeDays: 20, SpendHundreds: -5, OnTimeRatio: 0.5, DueTimeDays: 60}},
		{"on-time ratio above one", Inputs{DeliveryTimeDays: 20, SpendHundreds: 20, OnTimeRatio: 1.5, DueTimeDays: 60}},
		{"due time below guard", Inputs{DeliveryTimeDays: 20, SpendHundreds: 20, OnTimeRatio: 0.5, DueTimeDays: -8000}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.Evaluate(tc.in)
			require.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestEngine_Classify(t *testing.T) {
	e := newTestEngine(t)

	high, err := e.Classify(Inputs{
		DeliveryTimeDays: 15,
		SpendHundreds:    20,
		OnTimeRatio:      0.9,
		DueTimeDays:      200,
	})
	require.NoError(t, err)
	require.Equal(t, "High", high.Rating)
	require.InDelta(t, 1, high.High, 1e-9)
	require.Greater(t, high.Score, 5.0)

	low, err := e.Classify(Inputs{
		DeliveryTimeDays: 60,
		SpendHundreds:    200,
		OnTimeRatio:      0.1,
		DueTimeDays:      200,
	})
	require.NoError(t, err)
	require.Equal(t, "Low", low.Rating)
	require.Less(t, low.Score, 5.0)

	// New suppliers rate on price and lead time alone.
	rating, err := e.Classify(Inputs{
		DeliveryTimeDays: 25,
		SpendHundreds:    250,
		DueTimeDays:      200,
		NewSupplier:      true,
	})
	require.NoError(t, err)
	require.Equal(t, "Low", rating.Rating)
	require.Len(t, rating.RuleStrengths, len(newSupplierClassificationRules))
}
