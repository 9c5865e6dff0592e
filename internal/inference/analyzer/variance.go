package analyzer

import (
	"math"

	"hypokit/adapters/stats/distributions"
	"hypokit/adapters/stats/sample"
	"hypokit/domain/core"
	"hypokit/domain/inference"
	"hypokit/ports"
)

// VarianceAnalyzer infers the variance of a normal population with the
// chi-squared distribution at n-1 degrees of freedom.
type VarianceAnalyzer struct {
	variance float64
	n        int
	df       float64
	chi      ports.ChiSquaredDistribution
}

// NewVarianceAnalyzer creates an analyzer over values. A nil chi uses the library-backed distribution.
func NewVarianceAnalyzer(values []float64, chi ports.ChiSquaredDistribution) (*VarianceAnalyzer, error) {
	variance, err := sample.Variance(values)
	if err != nil {
		return nil, err
	}
	if chi == nil {
		chi = distributions.NewChiSquared()
	}
	n := len(values)
	return &VarianceAnalyzer{variance: variance, n: n, df: float64(n - 1), chi: chi}, nil
}

func (a *VarianceAnalyzer) Variance() float64 { return a.variance }
func (a *VarianceAnalyzer) N() int            { return a.n }
func (a *VarianceAnalyzer) DF() float64       { return a.df }

// TestStatistic returns (n-1)*variance/testVariance
func (a *VarianceAnalyzer) TestStatistic(testVariance float64) (float64, error) {
	if err := core.CheckPositive("testVariance", testVariance); err != nil {
		return 0, err
	}
	return a.statistic(testVariance), nil
}

func (a *VarianceAnalyzer) statistic(testVariance float64) float64 {
	return a.df * a.variance / testVariance
}

// ConfidenceInterval bounds the population standard deviation: the square
// roots of (n-1)*variance over the upper and lower two-sided critical values.
func (a *VarianceAnalyzer) ConfidenceInterval(confidenceLevel float64) (inference.Interval, error) {
	if err := core.CheckProbability("confidenceLevel", confidenceLevel); err != nil {
		return inference.Interval{}, err
	}
	upper, err := a.chi.UpperCritical(confidenceLevel, a.df)
	if err != nil {
		return inference.Interval{}, err
	}
	lower, err := a.chi.LowerCritical(confidenceLevel, a.df)
	if err != nil {
		return inference.Interval{}, err
	}
	return inference.Interval{
		Lower: math.Sqrt(a.statistic(upper)),
		Upper: math.Sqrt(a.statistic(lower)),
	}, nil
}

func (a *VarianceAnalyzer) checkTest(testVariance, confidenceLevel float64) error {
	if err := core.CheckProbability("confidenceLevel", confidenceLevel); err != nil {
		return err
	}
	return core.CheckPositive("testVariance", testVariance)
}

// RightTailTest accepts the hypothesis that the population variance exceeds
// testVariance when the statistic passes the one-sided upper critical value.
func (a *VarianceAnalyzer) RightTailTest(testVariance, confidenceLevel float64) (bool, error) {
	if err := a.checkTest(testVariance, confidenceLevel); err != nil {
		return false, err
	}
	critical, err := a.chi.Quantile(confidenceLevel, a.df)
	if err != nil {
		return false, err
	}
	return a.statistic(testVariance) > critical, nil
}

// LeftTailTest accepts the hypothesis that the population variance is below testVariance
func (a *VarianceAnalyzer) LeftTailTest(testVariance, confidenceLevel float64) (bool, error) {
	if err := a.checkTest(testVariance, confidenceLevel); err != nil {
		return false, err
	}
	critical, err := a.chi.Quantile(1-confidenceLevel, a.df)
	if err != nil {
		return false, err
	}
	return a.statistic(testVariance) < critical, nil
}

// TwinTailTest rejects when the statistic falls outside the two-sided critical values
func (a *VarianceAnalyzer) TwinTailTest(testVariance, confidenceLevel float64) (bool, error) {
	if err := a.checkTest(testVariance, confidenceLevel); err != nil {
		return false, err
	}
	upper, err := a.chi.UpperCritical(confidenceLevel, a.df)
	if err != nil {
		return false, err
	}
	lower, err := a.chi.LowerCritical(confidenceLevel, a.df)
	if err != nil {
		return false, err
	}
	stat := a.statistic(testVariance)
	return stat > upper || stat < lower, nil
}

// SampleSizeForInterval is not supported
func (a *VarianceAnalyzer) SampleSizeForInterval(confidenceLevel, width float64) (float64, error) {
	return 0, core.NewNotSupportedError("sample size for interval", "variance analyzer")
}

// SampleSizeForTesting is not supported
func (a *VarianceAnalyzer) SampleSizeForTesting(type1Confidence, type2Confidence, delta float64) (float64, error) {
	return 0, core.NewNotSupportedError("sample size for testing", "variance analyzer")
}
