// Package testkit provides reference fixtures and seeded random sources for
// the inference tests.
package testkit

import (
	"math/rand"

	"hypokit/adapters/rng"
	"hypokit/adapters/stats/resample"
)

// Reference samples with published summary statistics
var (
	// MeanSample has mean 0.45644444444444443 and stdDev 0.21284390472310402
	MeanSample = []float64{0.593, 0.142, 0.329, 0.691, 0.231, 0.793, 0.519, 0.392, 0.418}

	// IntervalSample is the fourteen-point sample used for sample-size planning
	IntervalSample = []float64{2.7, 2.4, 1.9, 2.6, 2.4, 1.9, 2.3, 2.2, 2.5, 2.3, 1.8, 2.5, 2.0, 2.2}

	// VarianceSample has variance 11.788781609195409 over thirty fills
	VarianceSample = []float64{
		501.4, 498.0, 498.6, 499.2, 495.2, 501.4, 509.5, 494.9, 498.6, 497.6,
		505.5, 505.1, 499.8, 502.4, 497.0, 504.3, 499.7, 497.9, 496.5, 498.9,
		504.9, 503.2, 503.0, 502.6, 496.8, 498.2, 500.1, 497.9, 502.2, 503.2,
	}

	// CategoricalSample holds four successes in fifteen trials
	CategoricalSample = []float64{1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	// PairedBefore and PairedAfter are matched measurements of fifteen subjects
	PairedBefore = []float64{17.6, 20.2, 19.5, 11.3, 13.0, 16.3, 15.3, 16.2, 12.2, 14.8, 21.3, 22.1, 16.9, 17.6, 18.4}
	PairedAfter  = []float64{17.3, 19.1, 18.4, 11.5, 12.7, 15.8, 14.9, 15.3, 12.0, 14.2, 21.0, 21.0, 16.1, 16.7, 17.5}
)

// Repeat returns n copies of v
func Repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// DefaultSeed seeds every stream the kit hands out
const DefaultSeed int64 = 42

var streams = rng.NewStreams()

// Rand returns a deterministic source for the named test
func Rand(name string) *rand.Rand {
	return streams.SeededStream(name, DefaultSeed)
}

// Resampler returns a resampler drawing from Rand(name)
func Resampler(name string) *resample.Resampler {
	return resample.NewResampler(Rand(name))
}
