package distributions

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// ChiSquared wraps gonum's chi-squared distribution
type ChiSquared struct{}

// NewChiSquared creates a chi-squared provider
func NewChiSquared() *ChiSquared {
	return &ChiSquared{}
}

// LeftTailArea returns P(X <= x) with df degrees of freedom
func (ChiSquared) LeftTailArea(x float64, df float64) (float64, error) {
	if err := checkValue("x", x); err != nil {
		return 0, err
	}
	if err := checkDF("df", df); err != nil {
		return 0, err
	}
	return distuv.ChiSquared{K: df}.CDF(x), nil
}

// Quantile returns the chi-squared value whose left-tail area equals percentile
func (ChiSquared) Quantile(percentile float64, df float64) (float64, error) {
	if err := checkProbability("percentile", percentile); err != nil {
		return 0, err
	}
	if err := checkDF("df", df); err != nil {
		return 0, err
	}
	return distuv.ChiSquared{K: df}.Quantile(percentile), nil
}

// UpperCritical returns the quantile at 1 - (1-confidenceLevel)/2
func (c ChiSquared) UpperCritical(confidenceLevel float64, df float64) (float64, error) {
	_, upper, err := twoSidedPercentiles(confidenceLevel)
	if err != nil {
		return 0, err
	}
	return c.Quantile(upper, df)
}

// LowerCritical returns the quantile at (1-confidenceLevel)/2
func (c ChiSquared) LowerCritical(confidenceLevel float64, df float64) (float64, error) {
	lower, _, err := twoSidedPercentiles(confidenceLevel)
	if err != nil {
		return 0, err
	}
	return c.Quantile(lower, df)
}
