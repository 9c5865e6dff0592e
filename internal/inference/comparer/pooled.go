package comparer

import (
	"math"

	"hypokit/adapters/stats/distributions"
	"hypokit/domain/core"
	"hypokit/domain/inference"
	"hypokit/ports"
)

// PooledComparer compares the means of two independent normal populations
// assumed to share one variance, estimated by the pooled standard deviation.
type PooledComparer struct {
	mean1 float64
	n1    int
	mean2 float64
	n2    int
	sp    float64
	df    float64
	t     ports.TDistribution
}

// NewPooledComparer creates a comparer. A nil t uses the library-backed distribution.
func NewPooledComparer(sample1, sample2 []float64, t ports.TDistribution) (*PooledComparer, error) {
	m1, err := describe("sample1", sample1)
	if err != nil {
		return nil, err
	}
	m2, err := describe("sample2", sample2)
	if err != nil {
		return nil, err
	}
	if t == nil {
		t = distributions.NewStudentsT()
	}
	df := float64(m1.n + m2.n - 2)
	pooled := (float64(m1.n-1)*m1.variance + float64(m2.n-1)*m2.variance) / df
	return &PooledComparer{
		mean1: m1.mean,
		n1:    m1.n,
		mean2: m2.mean,
		n2:    m2.n,
		sp:    math.Sqrt(pooled),
		df:    df,
		t:     t,
	}, nil
}

func (c *PooledComparer) Difference() float64 { return c.mean1 - c.mean2 }
func (c *PooledComparer) DF() float64         { return c.df }

// PooledStdDev returns sqrt(((n1-1)var1 + (n2-1)var2)/(n1+n2-2))
func (c *PooledComparer) PooledStdDev() float64 { return c.sp }

func (c *PooledComparer) standardError() float64 {
	return c.sp * math.Sqrt(1/float64(c.n1)+1/float64(c.n2))
}

// ConfidenceInterval returns the difference +/- t(1-alpha/2, df)*sp*sqrt(1/n1 + 1/n2)
func (c *PooledComparer) ConfidenceInterval(confidenceLevel float64) (inference.Interval, error) {
	if err := core.CheckProbability("confidenceLevel", confidenceLevel); err != nil {
		return inference.Interval{}, err
	}
	t, err := c.t.Quantile(1-(1-confidenceLevel)/2, c.df)
	if err != nil {
		return inference.Interval{}, err
	}
	return symmetric(c.Difference(), t*c.standardError()), nil
}

// TestStatistic returns (mean1 - mean2 - delta)/(sp*sqrt(1/n1 + 1/n2))
func (c *PooledComparer) TestStatistic(delta float64) (float64, error) {
	if err := core.CheckValue("delta", delta); err != nil {
		return 0, err
	}
	return inference.Standardize(c.Difference()-delta, c.standardError()), nil
}

func (c *PooledComparer) test(tail inference.Tail, delta, type1Confidence float64) (bool, error) {
	if err := checkTest(delta, type1Confidence); err != nil {
		return false, err
	}
	stat := inference.Standardize(c.Difference()-delta, c.standardError())
	return criticalTest(func(p float64) (float64, error) { return c.t.Quantile(p, c.df) }, tail, stat, type1Confidence)
}

func (c *PooledComparer) RightTailTest(delta, type1Confidence float64) (bool, error) {
	return c.test(inference.TailRight, delta, type1Confidence)
}

func (c *PooledComparer) LeftTailTest(delta, type1Confidence float64) (bool, error) {
	return c.test(inference.TailLeft, delta, type1Confidence)
}

func (c *PooledComparer) TwinTailTest(delta, type1Confidence float64) (bool, error) {
	return c.test(inference.TailTwin, delta, type1Confidence)
}
