// Package sample computes the summary statistics every analyzer is built on.
package sample

import (
	"fmt"
	"math"

	"hypokit/domain/core"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
)

// Mean returns the arithmetic mean of values
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, core.NewInvalidArgumentError("sample", "cannot be empty")
	}
	if err := checkFinite(values); err != nil {
		return 0, err
	}
	return stats.Mean(values)
}

// Variance returns the Bessel-corrected sample variance (divides by n-1)
func Variance(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, core.NewInvalidArgumentError("sample", fmt.Sprintf("needs at least 2 values for a variance, got %d", len(values)))
	}
	if err := checkFinite(values); err != nil {
		return 0, err
	}
	return stats.SampleVariance(values)
}

// StdDev returns the square root of Variance
func StdDev(values []float64) (float64, error) {
	variance, err := Variance(values)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(variance), nil
}

// CategoricalLikelihood returns the fraction of 1s in a {0,1}-valued sample
func CategoricalLikelihood(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, core.NewInvalidArgumentError("sample", "cannot be empty")
	}
	successes := 0
	for i, v := range values {
		switch v {
		case 1:
			successes++
		case 0:
		default:
			return 0, core.NewInvalidArgumentError("sample", fmt.Sprintf("element %d is %v, categorical values must be 0 or 1", i, v))
		}
	}
	return float64(successes) / float64(len(values)), nil
}

// CategoricalStandardError returns sqrt(p(1-p)/n) for the sample likelihood p
func CategoricalStandardError(values []float64) (float64, error) {
	p, err := CategoricalLikelihood(values)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(p * (1 - p) / float64(len(values))), nil
}

// Differences returns the elementwise difference a[i] - b[i] of two paired samples
func Differences(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, core.NewInvalidArgumentError("paired samples", "cannot be empty")
	}
	if len(a) != len(b) {
		return nil, core.NewInvalidArgumentError("paired samples", fmt.Sprintf("must have equal size, got %d and %d", len(a), len(b)))
	}
	diffs := make([]float64, len(a))
	floats.SubTo(diffs, a, b)
	return diffs, nil
}

func checkFinite(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return core.NewInvalidArgumentError("sample", fmt.Sprintf("element %d is not a finite number", i))
		}
	}
	return nil
}
