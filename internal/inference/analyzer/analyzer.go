// Package analyzer implements single-population inference: confidence
// intervals, test statistics, and tail tests for a population mean, variance
// or categorical likelihood estimated from one sample.
//
// Every analyzer computes its summary statistics once at construction and is
// read-only afterwards, so it is safe for concurrent use. The bootstrap
// analyzer is the exception: it draws from its random source on every call.
package analyzer

import (
	"math"

	"hypokit/adapters/stats/sample"
	"hypokit/domain/core"
	"hypokit/domain/inference"
)

// MeanAnalyzer is implemented by the normal, Student's t and bootstrap mean analyzers
type MeanAnalyzer interface {
	Mean() float64
	StdDev() float64
	N() int
	ConfidenceInterval(confidenceLevel float64) (inference.Interval, error)
	SampleSizeForInterval(confidenceLevel, width float64) (float64, error)
	SampleSizeForTesting(type1Confidence, type2Confidence, delta float64) (float64, error)
	TestStatistic(nullMean float64) (float64, error)
	RightTailTest(nullMean, type1Confidence float64) (bool, error)
	LeftTailTest(nullMean, type1Confidence float64) (bool, error)
	TwinTailTest(nullMean, type1Confidence float64) (bool, error)
	TestPower(nullMean, type1Confidence float64) (float64, error)
	PowerTest(tail inference.Tail, nullMean, type1Confidence, type2Confidence float64) (inference.PowerDecision, error)
}

// TailTest dispatches to the right, left or twin tail test of a
type TailTest func(nullValue, type1Confidence float64) (bool, error)

// SelectTest returns the test for tail from the three directional tests
func SelectTest(tail inference.Tail, right, left, twin TailTest) (TailTest, error) {
	switch tail {
	case inference.TailRight:
		return right, nil
	case inference.TailLeft:
		return left, nil
	case inference.TailTwin:
		return twin, nil
	}
	return nil, core.NewInvalidArgumentError("tail", "must be right, left or twin")
}

// meanSummary holds the statistics every mean analyzer derives from its sample
type meanSummary struct {
	values   []float64
	mean     float64
	variance float64
	stdDev   float64
	n        int
}

func summarize(values []float64) (meanSummary, error) {
	mean, err := sample.Mean(values)
	if err != nil {
		return meanSummary{}, err
	}
	variance, err := sample.Variance(values)
	if err != nil {
		return meanSummary{}, err
	}
	return meanSummary{
		values:   append([]float64(nil), values...),
		mean:     mean,
		variance: variance,
		stdDev:   math.Sqrt(variance),
		n:        len(values),
	}, nil
}

func (s meanSummary) Mean() float64     { return s.mean }
func (s meanSummary) StdDev() float64   { return s.stdDev }
func (s meanSummary) Variance() float64 { return s.variance }
func (s meanSummary) N() int            { return s.n }

// standardError is stdDev/sqrt(n)
func (s meanSummary) standardError() float64 {
	return s.stdDev / math.Sqrt(float64(s.n))
}

// TestStatistic returns sqrt(n)*(mean-nullMean)/stdDev
func (s meanSummary) TestStatistic(nullMean float64) (float64, error) {
	if err := core.CheckValue("nullMean", nullMean); err != nil {
		return 0, err
	}
	return s.statistic(nullMean), nil
}

func (s meanSummary) statistic(nullMean float64) float64 {
	return inference.Standardize(math.Sqrt(float64(s.n))*(s.mean-nullMean), s.stdDev)
}

func checkTest(nullValue, type1Confidence float64) error {
	if err := core.CheckProbability("type1Confidence", type1Confidence); err != nil {
		return err
	}
	return core.CheckValue("nullValue", nullValue)
}

func checkPowerTest(nullValue, type1Confidence, type2Confidence float64) error {
	if err := checkTest(nullValue, type1Confidence); err != nil {
		return err
	}
	return core.CheckProbability("type2Confidence", type2Confidence)
}
