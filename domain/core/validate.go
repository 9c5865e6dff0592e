package core

import (
	"fmt"
	"math"
)

// CheckProbability rejects a missing (NaN) value or one outside [0,1]
func CheckProbability(field string, p float64) error {
	if math.IsNaN(p) {
		return NewInvalidArgumentError(field, "cannot be missing")
	}
	if p < 0 || p > 1 {
		return NewInvalidArgumentError(field, fmt.Sprintf("must lie in [0,1], got %v", p))
	}
	return nil
}

// CheckValue rejects a missing (NaN) value
func CheckValue(field string, v float64) error {
	if math.IsNaN(v) {
		return NewInvalidArgumentError(field, "cannot be missing")
	}
	return nil
}

// CheckPositive rejects a missing value or one that is not strictly positive
func CheckPositive(field string, v float64) error {
	if math.IsNaN(v) || v <= 0 {
		return NewInvalidArgumentError(field, fmt.Sprintf("must be positive, got %v", v))
	}
	return nil
}
