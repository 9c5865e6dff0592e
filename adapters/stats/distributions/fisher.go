package distributions

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// F wraps gonum's Fisher-Snedecor distribution
type F struct{}

// NewF creates an F provider
func NewF() *F {
	return &F{}
}

func checkDFPair(df1, df2 float64) error {
	if err := checkDF("df1", df1); err != nil {
		return err
	}
	return checkDF("df2", df2)
}

// LeftTailArea returns P(X <= f)
func (F) LeftTailArea(f float64, df1, df2 float64) (float64, error) {
	if err := checkValue("f", f); err != nil {
		return 0, err
	}
	if err := checkDFPair(df1, df2); err != nil {
		return 0, err
	}
	return distuv.F{D1: df1, D2: df2}.CDF(f), nil
}

// Quantile returns the F value whose left-tail area equals percentile
func (F) Quantile(percentile float64, df1, df2 float64) (float64, error) {
	if err := checkProbability("percentile", percentile); err != nil {
		return 0, err
	}
	if err := checkDFPair(df1, df2); err != nil {
		return 0, err
	}
	return distuv.F{D1: df1, D2: df2}.Quantile(percentile), nil
}

// UpperCritical returns the quantile at 1 - (1-confidenceLevel)/2
func (f F) UpperCritical(confidenceLevel float64, df1, df2 float64) (float64, error) {
	_, upper, err := twoSidedPercentiles(confidenceLevel)
	if err != nil {
		return 0, err
	}
	return f.Quantile(upper, df1, df2)
}

// LowerCritical returns the quantile at (1-confidenceLevel)/2
func (f F) LowerCritical(confidenceLevel float64, df1, df2 float64) (float64, error) {
	lower, _, err := twoSidedPercentiles(confidenceLevel)
	if err != nil {
		return 0, err
	}
	return f.Quantile(lower, df1, df2)
}
