package comparer

import (
	"math"

	"hypokit/adapters/stats/distributions"
	"hypokit/domain/core"
	"hypokit/domain/inference"
	"hypokit/ports"
)

// WelchComparer compares the means of two independent normal populations
// without assuming equal variances. Degrees of freedom follow the
// Welch-Satterthwaite approximation.
type WelchComparer struct {
	mean1, var1 float64
	n1          int
	mean2, var2 float64
	n2          int
	df          float64
	t           ports.TDistribution
}

// NewWelchComparer creates a comparer. A nil t uses the library-backed distribution.
func NewWelchComparer(sample1, sample2 []float64, t ports.TDistribution) (*WelchComparer, error) {
	m1, err := describe("sample1", sample1)
	if err != nil {
		return nil, err
	}
	m2, err := describe("sample2", sample2)
	if err != nil {
		return nil, err
	}
	if m1.variance == 0 && m2.variance == 0 {
		// the degrees of freedom are 0/0
		return nil, core.NewInvalidArgumentError("samples", "both have zero variance")
	}
	if t == nil {
		t = distributions.NewStudentsT()
	}
	c := &WelchComparer{
		mean1: m1.mean,
		var1:  m1.variance,
		n1:    m1.n,
		mean2: m2.mean,
		var2:  m2.variance,
		n2:    m2.n,
		t:     t,
	}
	c.df = welchDF(c.var1, c.n1, c.var2, c.n2)
	return c, nil
}

// welchDF is (n1-1)(n2-1) / ((1-c)^2(n1-1) + c^2(n2-1)) with
// c = (var1/n1) / (var1/n1 + var2/n2).
func welchDF(var1 float64, n1 int, var2 float64, n2 int) float64 {
	a := var1 / float64(n1)
	b := var2 / float64(n2)
	c := a / (a + b)
	d1 := float64(n1 - 1)
	d2 := float64(n2 - 1)
	return d1 * d2 / ((1-c)*(1-c)*d1 + c*c*d2)
}

func (c *WelchComparer) Difference() float64 { return c.mean1 - c.mean2 }
func (c *WelchComparer) DF() float64         { return c.df }

// StandardError returns sqrt(var1/n1 + var2/n2)
func (c *WelchComparer) StandardError() float64 {
	return math.Sqrt(c.var1/float64(c.n1) + c.var2/float64(c.n2))
}

// ConfidenceInterval returns the difference +/- t(1-alpha/2, df) * standard error
func (c *WelchComparer) ConfidenceInterval(confidenceLevel float64) (inference.Interval, error) {
	if err := core.CheckProbability("confidenceLevel", confidenceLevel); err != nil {
		return inference.Interval{}, err
	}
	t, err := c.t.Quantile(1-(1-confidenceLevel)/2, c.df)
	if err != nil {
		return inference.Interval{}, err
	}
	return symmetric(c.Difference(), t*c.StandardError()), nil
}

// TestStatistic returns (mean1 - mean2 - delta) / standard error
func (c *WelchComparer) TestStatistic(delta float64) (float64, error) {
	if err := core.CheckValue("delta", delta); err != nil {
		return 0, err
	}
	return (c.Difference() - delta) / c.StandardError(), nil
}

func (c *WelchComparer) test(tail inference.Tail, delta, type1Confidence float64) (bool, error) {
	if err := checkTest(delta, type1Confidence); err != nil {
		return false, err
	}
	stat := (c.Difference() - delta) / c.StandardError()
	return criticalTest(func(p float64) (float64, error) { return c.t.Quantile(p, c.df) }, tail, stat, type1Confidence)
}

// RightTailTest accepts mean1 - mean2 > delta
func (c *WelchComparer) RightTailTest(delta, type1Confidence float64) (bool, error) {
	return c.test(inference.TailRight, delta, type1Confidence)
}

// LeftTailTest accepts mean1 - mean2 < delta
func (c *WelchComparer) LeftTailTest(delta, type1Confidence float64) (bool, error) {
	return c.test(inference.TailLeft, delta, type1Confidence)
}

// TwinTailTest accepts mean1 - mean2 != delta
func (c *WelchComparer) TwinTailTest(delta, type1Confidence float64) (bool, error) {
	return c.test(inference.TailTwin, delta, type1Confidence)
}
