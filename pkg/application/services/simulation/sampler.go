package simulation

import (
	"math/rand"

	"github.com/srmorales/npi-sourcing/pkg/infrastructure/config"
)

// Sampler draws one value from a distribution. Every random attribute in
// the simulation goes through a Sampler so tests can pin distributions and
// runs reproduce from a recorded seed.
type Sampler interface {
	Sample(r *rand.Rand) float64
}

// Normal samples a normal distribution truncated from below.
type Normal struct {
	Mean   float64
	StdDev float64
	Min    float64
}

// Sample draws from the distribution, flooring at Min.
func (n Normal) Sample(r *rand.Rand) float64 {
	v := r.NormFloat64()*n.StdDev + n.Mean
	if v < n.Min {
		return n.Min
	}
	return v
}

// Bernoulli samples 1 with probability P, else 0.
type Bernoulli struct {
	P float64
}

// Sample draws a single trial.
func (b Bernoulli) Sample(r *rand.Rand) float64 {
	if r.Float64() < b.P {
		return 1
	}
	return 0
}

// scaled applies a profile factor to a base distribution. The floor scales
// with the mean factor so biased profiles keep a proportionate minimum.
func scaled(base config.Stat, f config.Factor, min float64) Normal {
	return Normal{
		Mean:   base.Mean * f.Mean,
		StdDev: base.StdDev * f.StdDev,
		Min:    min * f.Mean,
	}
}

// intBetween samples an integer uniformly from an inclusive range.
func intBetween(r *rand.Rand, rng config.Range) int {
	if rng.Max <= rng.Min {
		return rng.Min
	}
	return rng.Min + r.Intn(rng.Max-rng.Min+1)
}
