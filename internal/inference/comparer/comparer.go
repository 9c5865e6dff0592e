// Package comparer implements two-population inference: intervals and
// directional tests for differences of means and likelihoods and for the
// ratio of variances.
package comparer

import (
	"math"

	"hypokit/adapters/stats/sample"
	"hypokit/domain/core"
	"hypokit/domain/inference"
)

// MeanComparer is implemented by the Welch, paired and pooled comparers.
// delta is the hypothesized difference mean1 - mean2.
type MeanComparer interface {
	Difference() float64
	DF() float64
	ConfidenceInterval(confidenceLevel float64) (inference.Interval, error)
	TestStatistic(delta float64) (float64, error)
	RightTailTest(delta, type1Confidence float64) (bool, error)
	LeftTailTest(delta, type1Confidence float64) (bool, error)
	TwinTailTest(delta, type1Confidence float64) (bool, error)
}

// quantileFunc is a distribution quantile with its shape parameters bound
type quantileFunc func(percentile float64) (float64, error)

// criticalTest compares stat with critical values of the bound distribution:
// right accepts stat >= q(c), left accepts stat <= -q(c) and twin accepts
// |stat| >= q(1-(1-c)/2).
func criticalTest(quantile quantileFunc, tail inference.Tail, stat, type1Confidence float64) (bool, error) {
	switch tail {
	case inference.TailRight, inference.TailLeft:
		critical, err := quantile(type1Confidence)
		if err != nil {
			return false, err
		}
		if tail == inference.TailRight {
			return stat >= critical, nil
		}
		return stat <= -critical, nil
	case inference.TailTwin:
		critical, err := quantile(1 - (1-type1Confidence)/2)
		if err != nil {
			return false, err
		}
		return math.Abs(stat) >= critical, nil
	}
	return false, core.NewInvalidArgumentError("tail", "must be right, left or twin")
}

func checkTest(delta, type1Confidence float64) error {
	if err := core.CheckProbability("type1Confidence", type1Confidence); err != nil {
		return err
	}
	return core.CheckValue("delta", delta)
}

// symmetric returns center +/- half
func symmetric(center, half float64) inference.Interval {
	return inference.Interval{Lower: center - half, Upper: center + half}
}

type moments struct {
	mean     float64
	variance float64
	n        int
}

func describe(field string, values []float64) (moments, error) {
	if len(values) == 0 {
		return moments{}, core.NewInvalidArgumentError(field, "cannot be empty")
	}
	mean, err := sample.Mean(values)
	if err != nil {
		return moments{}, err
	}
	variance, err := sample.Variance(values)
	if err != nil {
		return moments{}, err
	}
	return moments{mean: mean, variance: variance, n: len(values)}, nil
}
