package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries every tunable of a simulation session: the distribution
// parameters behind the quote generator and the membership breakpoints of
// the fuzzy evaluation model. Loaded once, immutable afterwards.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Fuzzy      FuzzyConfig      `yaml:"fuzzy"`
}

// Stat holds the mean and standard deviation of a normal distribution.
type Stat struct {
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"std_dev"`
}

// Factor scales a base distribution's mean and standard deviation. Supplier
// profile levels are expressed as factors over the neutral distribution.
type Factor struct {
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"std_dev"`
}

// Range is an inclusive integer interval for randomized attribute bounds.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// SimulationConfig parameterizes synthetic entity and quote generation.
type SimulationConfig struct {
	PartsPerECN Range `yaml:"parts_per_ecn"`
	EAU         Range `yaml:"eau"`

	// Prices are sampled per part from the complexity tier's distribution,
	// scaled by the supplier's price profile and floored at MinimumPrice.
	MinimumPrice      float64           `yaml:"minimum_price"`
	PriceByComplexity map[string]Stat   `yaml:"price_by_complexity"`
	PriceFactors      map[string]Factor `yaml:"price_factors"`

	DeliveryTime        Stat              `yaml:"delivery_time"`
	MinimumDeliveryDays int               `yaml:"minimum_delivery_days"`
	DeliveryFactors     map[string]Factor `yaml:"delivery_factors"`

	// Quotation turnaround between RFQ and quote submission, per profile.
	QuotationTime        map[string]Stat `yaml:"quotation_time"`
	MinimumQuotationDays int             `yaml:"minimum_quotation_days"`

	// Probability that a historical delivery landed on time, per profile.
	PunctualityRate map[string]float64 `yaml:"punctuality_rate"`

	// Synthetic delivery history length for non-new suppliers.
	HistoryDeliveries Range `yaml:"history_deliveries"`
}

// TermConfig defines one linguistic term as a trapezoid over the variable's
// universe. Triangles are trapezoids whose two middle points coincide.
type TermConfig struct {
	Name   string     `yaml:"name"`
	Points [4]float64 `yaml:"points"`
}

// VariableConfig defines a linguistic variable: its membership universe,
// the absolute sanity bounds guarding crisp inputs, and its terms.
type VariableConfig struct {
	UniverseMin float64      `yaml:"universe_min"`
	UniverseMax float64      `yaml:"universe_max"`
	GuardMin    float64      `yaml:"guard_min"`
	GuardMax    float64      `yaml:"guard_max"`
	Terms       []TermConfig `yaml:"terms"`
}

// FuzzyConfig parameterizes the Mamdani evaluation model.
type FuzzyConfig struct {
	DueTime      VariableConfig `yaml:"due_time"`
	DeliveryTime VariableConfig `yaml:"delivery_time"`
	Punctuality  VariableConfig `yaml:"punctuality"`
	Spend        VariableConfig `yaml:"spend"`

	// Decision is the output variable for the implement/wait recommendation;
	// Classification is the output variable for the spend-priority rating.
	Decision       VariableConfig `yaml:"decision"`
	Classification VariableConfig `yaml:"classification"`

	// OutputStep is the sampling resolution of the output universe used for
	// centroid defuzzification.
	OutputStep float64 `yaml:"output_step"`
}

// Default returns the built-in configuration, calibrated from historical
// copper-piping sourcing statistics.
func Default() Config {
	return Config{
		Simulation: SimulationConfig{
			PartsPerECN:  Range{Min: 1, Max: 4},
			EAU:          Range{Min: 50, Max: 500},
			MinimumPrice: 1.50,
			PriceByComplexity: map[string]Stat{
				"low":    {Mean: 8.50, StdDev: 2.00},
				"medium": {Mean: 15.00, StdDev: 4.00},
				"high":   {Mean: 27.50, StdDev: 7.50},
			},
			PriceFactors: map[string]Factor{
				"low":     {Mean: 0.85, StdDev: 0.85},
				"regular": {Mean: 1.00, StdDev: 1.00},
				"high":    {Mean: 1.20, StdDev: 1.10},
			},
			DeliveryTime:        Stat{Mean: 34.6, StdDev: 16.3},
			MinimumDeliveryDays: 12,
			DeliveryFactors: map[string]Factor{
				"low":     {Mean: 1.25, StdDev: 1.10},
				"regular": {Mean: 1.00, StdDev: 1.00},
				"high":    {Mean: 0.75, StdDev: 0.80},
			},
			QuotationTime: map[string]Stat{
				"low":     {Mean: 29.0, StdDev: 25.1},
				"regular": {Mean: 27.7, StdDev: 21.6},
				"high":    {Mean: 24.9, StdDev: 10.3},
			},
			MinimumQuotationDays: 9,
			PunctualityRate: map[string]float64{
				"low":     0.19,
				"regular": 0.47,
				"high":    0.64,
			},
			HistoryDeliveries: Range{Min: 20, Max: 40},
		},
		Fuzzy: FuzzyConfig{
			DueTime: VariableConfig{
				UniverseMin: 0, UniverseMax: 720,
				GuardMin: -720, GuardMax: 3650,
				Terms: []TermConfig{
					{Name: "close", Points: [4]float64{0, 0, 30, 60}},
					{Name: "near", Points: [4]float64{30, 60, 60, 90}},
					{Name: "far", Points: [4]float64{60, 90, 720, 720}},
				},
			},
			DeliveryTime: VariableConfig{
				UniverseMin: 0, UniverseMax: 84,
				GuardMin: 0, GuardMax: 365,
				Terms: []TermConfig{
					{Name: "fast", Points: [4]float64{0, 0, 18.3, 34.6}},
					{Name: "moderate", Points: [4]float64{18.3, 34.6, 34.6, 50.9}},
					{Name: "slow", Points: [4]float64{34.6, 50.9, 84, 84}},
				},
			},
			Punctuality: VariableConfig{
				UniverseMin: 0, UniverseMax: 1,
				GuardMin: 0, GuardMax: 1,
				Terms: []TermConfig{
					{Name: "bad", Points: [4]float64{0, 0, 0.25, 0.5}},
					{Name: "regular", Points: [4]float64{0.25, 0.5, 0.5, 0.75}},
					{Name: "good", Points: [4]float64{0.5, 0.75, 1, 1}},
				},
			},
			Spend: VariableConfig{
				UniverseMin: 0, UniverseMax: 400,
				GuardMin: 0, GuardMax: 5000,
				Terms: []TermConfig{
					{Name: "low", Points: [4]float64{0, 0, 40, 90}},
					{Name: "regular", Points: [4]float64{40, 90, 90, 140}},
					{Name: "high", Points: [4]float64{90, 140, 400, 400}},
				},
			},
			Decision: VariableConfig{
				UniverseMin: 0, UniverseMax: 10,
				GuardMin: 0, GuardMax: 10,
				Terms: []TermConfig{
					{Name: "wait", Points: [4]float64{0, 0, 5, 7.5}},
					{Name: "implement", Points: [4]float64{2.5, 5, 10, 10}},
				},
			},
			Classification: VariableConfig{
				UniverseMin: 0, UniverseMax: 10,
				GuardMin: 0, GuardMax: 10,
				Terms: []TermConfig{
					{Name: "low", Points: [4]float64{0, 0, 2.5, 5}},
					{Name: "regular", Points: [4]float64{2.5, 5, 5, 7.5}},
					{Name: "high", Points: [4]float64{5, 7.5, 10, 10}},
				},
			},
			OutputStep: 0.01,
		},
	}
}

// Load returns the default configuration, overlaid with the YAML file at
// path when one is given.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks structural soundness of the configuration.
func (c Config) Validate() error {
	s := c.Simulation
	if s.PartsPerECN.Min < 1 || s.PartsPerECN.Max < s.PartsPerECN.Min {
		return fmt.Errorf("invalid parts_per_ecn range [%d, %d]", s.PartsPerECN.Min, s.PartsPerECN.Max)
	}
	if s.EAU.Min < 0 || s.EAU.Max < s.EAU.Min {
		return fmt.Errorf("invalid eau range [%d, %d]", s.EAU.Min, s.EAU.Max)
	}
	if s.MinimumPrice < 0 {
		return fmt.Errorf("minimum_price cannot be negative, got %g", s.MinimumPrice)
	}
	for _, tier := range []string{"low", "medium", "high"} {
		if _, ok := s.PriceByComplexity[tier]; !ok {
			return fmt.Errorf("price_by_complexity missing tier %q", tier)
		}
	}
	for _, level := range []string{"low", "regular", "high"} {
		if _, ok := s.PriceFactors[level]; !ok {
			return fmt.Errorf("price_factors missing level %q", level)
		}
		if _, ok := s.DeliveryFactors[level]; !ok {
			return fmt.Errorf("delivery_factors missing level %q", level)
		}
		if _, ok := s.QuotationTime[level]; !ok {
			return fmt.Errorf("quotation_time missing level %q", level)
		}
		p, ok := s.PunctualityRate[level]
		if !ok {
			return fmt.Errorf("punctuality_rate missing level %q", level)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("punctuality_rate[%s] must be in [0,1], got %g", level, p)
		}
	}

	if c.Fuzzy.OutputStep <= 0 {
		return fmt.Errorf("output_step must be positive, got %g", c.Fuzzy.OutputStep)
	}
	vars := map[string]VariableConfig{
		"due_time":       c.Fuzzy.DueTime,
		"delivery_time":  c.Fuzzy.DeliveryTime,
		"punctuality":    c.Fuzzy.Punctuality,
		"spend":          c.Fuzzy.Spend,
		"decision":       c.Fuzzy.Decision,
		"classification": c.Fuzzy.Classification,
	}
	for name, v := range vars {
		if err := validateVariable(name, v); err != nil {
			return err
		}
	}
	return nil
}

func validateVariable(name string, v VariableConfig) error {
	if v.UniverseMax <= v.UniverseMin {
		return fmt.Errorf("%s: universe [%g, %g] is empty", name, v.UniverseMin, v.UniverseMax)
	}
	if v.GuardMin > v.UniverseMin || v.GuardMax < v.UniverseMax {
		return fmt.Errorf("%s: guard [%g, %g] must contain universe [%g, %g]",
			name, v.GuardMin, v.GuardMax, v.UniverseMin, v.UniverseMax)
	}
	if len(v.Terms) < 2 {
		return fmt.Errorf("%s: at least two terms required, got %d", name, len(v.Terms))
	}
	seen := make(map[string]bool)
	for _, term := range v.Terms {
		if term.Name == "" {
			return fmt.Errorf("%s: term name cannot be empty", name)
		}
		if seen[term.Name] {
			return fmt.Errorf("%s: duplicate term %q", name, term.Name)
		}
		seen[term.Name] = true
		p := term.Points
		for i := 1; i < len(p); i++ {
			if p[i] < p[i-1] {
				return fmt.Errorf("%s/%s: breakpoints must be non-decreasing, got %v", name, term.Name, p)
			}
		}
	}
	return nil
}
