package evaluation

import (
	"fmt"
	"math"

	"github.com/srmorales/npi-sourcing/pkg/infrastructure/config"
)

// Action is the categorical sourcing recommendation.
type Action int

const (
	Wait Action = iota
	Implement
)

// String method for Action enum
func (a Action) String() string {
	switch a {
	case Wait:
		return "Wait"
	case Implement:
		return "Implement"
	default:
		return "Unknown"
	}
}

// Inputs are the crisp signals for one supplier/ECN/project evaluation.
type Inputs struct {
	// DeliveryTimeDays is the quoted lead time for the ECN.
	DeliveryTimeDays float64
	// SpendHundreds is the FY spend in hundreds of currency units.
	SpendHundreds float64
	// OnTimeRatio is the supplier's historical on-time-delivery ratio.
	// Ignored for new suppliers, which have no history to read.
	OnTimeRatio float64
	// DueTimeDays is the time remaining to start of production. Negative
	// when the evaluation happens past SOP.
	DueTimeDays float64
	// NewSupplier selects the history-less rule base.
	NewSupplier bool
}

// Decision is the defuzzified implement/wait recommendation.
type Decision struct {
	// Score is the centroid of the aggregated output set, within the
	// output universe.
	Score float64
	// Wait and Implement are the peak activations of the two output terms.
	Wait      float64
	Implement float64
	Action    Action
	// RuleStrengths records each rule's firing strength, in rule-base order.
	RuleStrengths []float64
}

// Classification is the spend-priority rating of a supplier.
type Classification struct {
	Score         float64
	Low           float64
	Regular       float64
	High          float64
	Rating        string
	RuleStrengths []float64
}

// Engine is a Mamdani fuzzy inference engine over the fixed supplier
// evaluation rule bases. Membership parameters come from configuration at
// construction and are immutable afterwards; evaluation is a pure function
// of its inputs.
type Engine struct {
	vars           map[string]*Variable
	decision       *Variable
	classification *Variable
	step           float64
}

// NewEngine builds an engine from fuzzy configuration, verifying that every
// rule references terms the configured variables define.
func NewEngine(fc config.FuzzyConfig) (*Engine, error) {
	if fc.OutputStep <= 0 {
		return nil, fmt.Errorf("output step must be positive, got %g", fc.OutputStep)
	}
	e := &Engine{
		vars: map[string]*Variable{
			VarDueTime:      newVariable(VarDueTime, fc.DueTime),
			VarDeliveryTime: newVariable(VarDeliveryTime, fc.DeliveryTime),
			VarPunctuality:  newVariable(VarPunctuality, fc.Punctuality),
			VarSpend:        newVariable(VarSpend, fc.Spend),
		},
		decision:       newVariable("decision", fc.Decision),
		classification: newVariable("classification", fc.Classification),
		step:           fc.OutputStep,
	}

	bases := []struct {
		rules  []Rule
		output *Variable
	}{
		{decisionRules, e.decision},
		{newSupplierDecisionRules, e.decision},
		{classificationRules, e.classification},
		{newSupplierClassificationRules, e.classification},
	}
	for _, base := range bases {
		for i, rule := range base.rules {
			if !base.output.HasTerm(rule.Then) {
				return nil, fmt.Errorf("rule %d: output term %q not configured", i+1, rule.Then)
			}
			for _, clause := range rule.When {
				v, ok := e.vars[clause.Var]
				if !ok {
					return nil, fmt.Errorf("rule %d: unknown variable %q", i+1, clause.Var)
				}
				for _, term := range clause.AnyOf {
					if !v.HasTerm(term) {
						return nil, fmt.Errorf("rule %d: %s has no term %q", i+1, clause.Var, term)
					}
				}
			}
		}
	}
	return e, nil
}

// Evaluate runs fuzzification, rule combination, aggregation, and centroid
// defuzzification for one evaluation. Ties between the wait and implement
// activations resolve to Wait.
func (e *Engine) Evaluate(in Inputs) (*Decision, error) {
	degrees, err := e.fuzzifyInputs(in)
	if err != nil {
		return nil, err
	}

	rules := decisionRules
	if in.NewSupplier {
		rules = newSupplierDecisionRules
	}
	strengths, activation := fire(rules, degrees)

	d := &Decision{
		Score:         e.centroid(e.decision, activation),
		Wait:          activation["wait"],
		Implement:     activation["implement"],
		Action:        Wait,
		RuleStrengths: strengths,
	}
	if d.Implement > d.Wait {
		d.Action = Implement
	}
	return d, nil
}

// Classify runs the spend-priority rule base, rating the supplier low,
// regular, or high. Ties resolve toward the lower rating.
func (e *Engine) Classify(in Inputs) (*Classification, error) {
	degrees, err := e.fuzzifyInputs(in)
	if err != nil {
		return nil, err
	}

	rules := classificationRules
	if in.NewSupplier {
		rules = newSupplierClassificationRules
	}
	strengths, activation := fire(rules, degrees)

	c := &Classification{
		Score:         e.centroid(e.classification, activation),
		Low:           activation["low"],
		Regular:       activation["regular"],
		High:          activation["high"],
		RuleStrengths: strengths,
	}
	peak := math.Max(c.Low, math.Max(c.Regular, c.High))
	switch peak {
	case c.Low:
		c.Rating = "Low"
	case c.Regular:
		c.Rating = "Regular"
	default:
		c.Rating = "High"
	}
	return c, nil
}

func (e *Engine) fuzzifyInputs(in Inputs) (map[string]map[string]float64, error) {
	checks := []struct {
		name  string
		value float64
		skip  bool
	}{
		{VarDueTime, in.DueTimeDays, false},
		{VarDeliveryTime, in.DeliveryTimeDays, false},
		{VarPunctuality, in.OnTimeRatio, in.NewSupplier},
		{VarSpend, in.SpendHundreds, false},
	}
	degrees := make(map[string]map[string]float64, len(checks))
	for _, c := range checks {
		v := e.vars[c.name]
		if c.skip {
			// New suppliers carry no punctuality signal; the history-less
			// rule bases never read it.
			degrees[c.name] = map[string]float64{}
			continue
		}
		if err := v.Guard(c.value); err != nil {
			return nil, err
		}
		degrees[c.name] = v.Fuzzify(c.value)
	}
	return degrees, nil
}

// fire evaluates a rule base against fuzzified inputs. It returns every
// rule's firing strength and the per-consequent-term activation peaks
// (maximum strength across the rules sharing a consequent).
func fire(rules []Rule, degrees map[string]map[string]float64) ([]float64, map[string]float64) {
	strengths := make([]float64, len(rules))
	activation := make(map[string]float64)
	for i, rule := range rules {
		strength := 1.0
		for _, clause := range rule.When {
			clauseDegree := 0.0
			for _, term := range clause.AnyOf {
				if d := degrees[clause.Var][term]; d > clauseDegree {
					clauseDegree = d
				}
			}
			if clauseDegree < strength {
				strength = clauseDegree
			}
		}
		strengths[i] = strength
		if strength > activation[rule.Then] {
			activation[rule.Then] = strength
		}
	}
	return strengths, activation
}

// centroid defuzzifies the aggregated output set by center of gravity over
// the sampled output universe. Each consequent membership function is
// clipped at its activation and the clipped sets combine with maximum. A
// zero-area aggregate collapses to the universe floor.
func (e *Engine) centroid(v *Variable, activation map[string]float64) float64 {
	steps := int(math.Round((v.Max-v.Min)/e.step)) + 1
	var num, den float64
	for i := 0; i < steps; i++ {
		x := v.Min + float64(i)*e.step
		mu := 0.0
		for term, strength := range activation {
			d := math.Min(strength, v.terms[term].At(x))
			if d > mu {
				mu = d
			}
		}
		num += x * mu
		den += mu
	}
	if den == 0 {
		return v.Min
	}
	return num / den
}
