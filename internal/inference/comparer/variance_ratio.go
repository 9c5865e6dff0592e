package comparer

import (
	"hypokit/adapters/stats/distributions"
	"hypokit/domain/core"
	"hypokit/domain/inference"
	"hypokit/ports"
)

// VarianceRatioComparer compares two normal population variances with the
// F distribution at (n1-1, n2-1) degrees of freedom.
type VarianceRatioComparer struct {
	var1 float64
	n1   int
	df1  float64
	var2 float64
	n2   int
	df2  float64
	f    ports.FDistribution
}

// NewVarianceRatioComparer creates a comparer. A nil f uses the library-backed distribution.
func NewVarianceRatioComparer(sample1, sample2 []float64, f ports.FDistribution) (*VarianceRatioComparer, error) {
	m1, err := describe("sample1", sample1)
	if err != nil {
		return nil, err
	}
	m2, err := describe("sample2", sample2)
	if err != nil {
		return nil, err
	}
	if m2.variance == 0 {
		return nil, core.NewInvalidArgumentError("sample2", "has zero variance")
	}
	if f == nil {
		f = distributions.NewF()
	}
	return &VarianceRatioComparer{
		var1: m1.variance,
		n1:   m1.n,
		df1:  float64(m1.n - 1),
		var2: m2.variance,
		n2:   m2.n,
		df2:  float64(m2.n - 1),
		f:    f,
	}, nil
}

// DF returns the numerator and denominator degrees of freedom
func (c *VarianceRatioComparer) DF() (float64, float64) { return c.df1, c.df2 }

// TestStatistic returns var1/var2
func (c *VarianceRatioComparer) TestStatistic() float64 {
	return c.var1 / c.var2
}

// ConfidenceInterval returns (stat*F_lower, stat*F_upper) with two-sided F critical values
func (c *VarianceRatioComparer) ConfidenceInterval(confidenceLevel float64) (inference.Interval, error) {
	lower, upper, err := c.criticals(confidenceLevel)
	if err != nil {
		return inference.Interval{}, err
	}
	stat := c.TestStatistic()
	return inference.Interval{Lower: stat * lower, Upper: stat * upper}, nil
}

func (c *VarianceRatioComparer) criticals(confidenceLevel float64) (float64, float64, error) {
	if err := core.CheckProbability("confidenceLevel", confidenceLevel); err != nil {
		return 0, 0, err
	}
	lower, err := c.f.LowerCritical(confidenceLevel, c.df1, c.df2)
	if err != nil {
		return 0, 0, err
	}
	upper, err := c.f.UpperCritical(confidenceLevel, c.df1, c.df2)
	if err != nil {
		return 0, 0, err
	}
	return lower, upper, nil
}

// GreaterTest accepts that population 1 has the larger variance
func (c *VarianceRatioComparer) GreaterTest(type1Confidence float64) (bool, error) {
	if err := core.CheckProbability("type1Confidence", type1Confidence); err != nil {
		return false, err
	}
	critical, err := c.f.Quantile(type1Confidence, c.df1, c.df2)
	if err != nil {
		return false, err
	}
	return c.TestStatistic() >= critical, nil
}

// UnequalTest accepts that the variances differ
func (c *VarianceRatioComparer) UnequalTest(type1Confidence float64) (bool, error) {
	lower, upper, err := c.criticals(type1Confidence)
	if err != nil {
		return false, err
	}
	stat := c.TestStatistic()
	return stat <= lower || stat >= upper, nil
}
