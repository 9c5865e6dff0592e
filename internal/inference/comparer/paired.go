package comparer

import (
	"fmt"
	"math"

	"hypokit/adapters/stats/distributions"
	"hypokit/adapters/stats/sample"
	"hypokit/domain/core"
	"hypokit/domain/inference"
	"hypokit/ports"
)

// PairedComparer compares matched measurements by a one-sample t analysis
// of their elementwise differences sample1[i] - sample2[i].
type PairedComparer struct {
	mean   float64
	stdDev float64
	n      int
	df     float64
	t      ports.TDistribution
}

// NewPairedComparer creates a comparer. The samples must have equal length.
func NewPairedComparer(sample1, sample2 []float64, t ports.TDistribution) (*PairedComparer, error) {
	if len(sample1) == 0 {
		return nil, core.NewInvalidArgumentError("sample1", "cannot be empty")
	}
	if len(sample2) == 0 {
		return nil, core.NewInvalidArgumentError("sample2", "cannot be empty")
	}
	if len(sample1) != len(sample2) {
		return nil, core.NewInvalidArgumentError("samples", fmt.Sprintf("paired samples differ in length: %d vs %d", len(sample1), len(sample2)))
	}
	diffs, err := sample.Differences(sample1, sample2)
	if err != nil {
		return nil, err
	}
	m, err := describe("differences", diffs)
	if err != nil {
		return nil, err
	}
	if t == nil {
		t = distributions.NewStudentsT()
	}
	return &PairedComparer{
		mean:   m.mean,
		stdDev: math.Sqrt(m.variance),
		n:      m.n,
		df:     float64(m.n - 1),
		t:      t,
	}, nil
}

func (c *PairedComparer) Difference() float64 { return c.mean }
func (c *PairedComparer) StdDev() float64     { return c.stdDev }
func (c *PairedComparer) N() int              { return c.n }
func (c *PairedComparer) DF() float64         { return c.df }

func (c *PairedComparer) standardError() float64 {
	return c.stdDev / math.Sqrt(float64(c.n))
}

// ConfidenceInterval returns the mean difference +/- t(1-alpha/2, n-1)*stdDev/sqrt(n)
func (c *PairedComparer) ConfidenceInterval(confidenceLevel float64) (inference.Interval, error) {
	if err := core.CheckProbability("confidenceLevel", confidenceLevel); err != nil {
		return inference.Interval{}, err
	}
	t, err := c.t.Quantile(1-(1-confidenceLevel)/2, c.df)
	if err != nil {
		return inference.Interval{}, err
	}
	return symmetric(c.mean, t*c.standardError()), nil
}

// TestStatistic returns (meanDifference - delta)*sqrt(n)/stdDev
func (c *PairedComparer) TestStatistic(delta float64) (float64, error) {
	if err := core.CheckValue("delta", delta); err != nil {
		return 0, err
	}
	return inference.Standardize(c.mean-delta, c.standardError()), nil
}

func (c *PairedComparer) test(tail inference.Tail, delta, type1Confidence float64) (bool, error) {
	if err := checkTest(delta, type1Confidence); err != nil {
		return false, err
	}
	stat := inference.Standardize(c.mean-delta, c.standardError())
	return criticalTest(func(p float64) (float64, error) { return c.t.Quantile(p, c.df) }, tail, stat, type1Confidence)
}

func (c *PairedComparer) RightTailTest(delta, type1Confidence float64) (bool, error) {
	return c.test(inference.TailRight, delta, type1Confidence)
}

func (c *PairedComparer) LeftTailTest(delta, type1Confidence float64) (bool, error) {
	return c.test(inference.TailLeft, delta, type1Confidence)
}

// TwinTailTest accepts a mean difference other than delta when |stat| reaches
// the two-sided critical value. |stat| is compared with +t, as in every other
// comparer, so a large negative statistic accepts too.
func (c *PairedComparer) TwinTailTest(delta, type1Confidence float64) (bool, error) {
	return c.test(inference.TailTwin, delta, type1Confidence)
}
