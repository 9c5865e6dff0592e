// Package distributions provides the reference distributions consumed by the
// inference engine: gonum-backed Normal, Student's t, chi-squared and F,
// a discretized normal table, and an exact binomial.
package distributions

import (
	"fmt"
	"math"

	"hypokit/domain/core"
)

func checkProbability(name string, p float64) error {
	return core.CheckProbability(name, p)
}

func checkDF(name string, df float64) error {
	if math.IsNaN(df) || df <= 0 {
		return core.NewInvalidArgumentError(name, fmt.Sprintf("degrees of freedom must be positive, got %v", df))
	}
	return nil
}

func checkValue(name string, v float64) error {
	return core.CheckValue(name, v)
}

// twoSidedPercentiles returns the (lower, upper) percentiles enclosing confidenceLevel
func twoSidedPercentiles(confidenceLevel float64) (float64, float64, error) {
	if err := checkProbability("confidenceLevel", confidenceLevel); err != nil {
		return 0, 0, err
	}
	alpha := (1 - confidenceLevel) / 2
	return alpha, 1 - alpha, nil
}
