package testkit

import (
	"math/rand"
)

// SampleGeneratorConfig configures synthetic population draws
type SampleGeneratorConfig struct {
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"std_dev"`
	Likelihood float64 `json:"likelihood"`
	Seed       int64   `json:"seed"`
}

// DefaultSampleConfig returns a standard normal population with likelihood 0.5
func DefaultSampleConfig() SampleGeneratorConfig {
	return SampleGeneratorConfig{
		Mean:       0,
		StdDev:     1,
		Likelihood: 0.5,
		Seed:       DefaultSeed,
	}
}

// SampleGenerator draws reproducible samples from a configured population
type SampleGenerator struct {
	config SampleGeneratorConfig
	rng    *rand.Rand
}

// NewSampleGenerator creates a generator seeded from config.Seed
func NewSampleGenerator(config SampleGeneratorConfig) *SampleGenerator {
	return &SampleGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Normal draws n values from N(Mean, StdDev^2)
func (g *SampleGenerator) Normal(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = g.config.Mean + g.config.StdDev*g.rng.NormFloat64()
	}
	return out
}

// Bernoulli draws n 0/1 values with success probability Likelihood
func (g *SampleGenerator) Bernoulli(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		if g.rng.Float64() < g.config.Likelihood {
			out[i] = 1
		}
	}
	return out
}

// Paired draws n matched pairs where the second member is the first minus
// shift plus independent noise of the given spread.
func (g *SampleGenerator) Paired(n int, shift, noise float64) ([]float64, []float64) {
	first := g.Normal(n)
	second := make([]float64, n)
	for i, v := range first {
		second[i] = v - shift + noise*g.rng.NormFloat64()
	}
	return first, second
}
