package comparer

import (
	"math"

	"hypokit/adapters/stats/distributions"
	"hypokit/adapters/stats/sample"
	"hypokit/domain/core"
	"hypokit/domain/inference"
	"hypokit/ports"
)

// LikelihoodDifferenceComparer compares the success likelihoods of two 0/1
// populations with the normal approximation.
type LikelihoodDifferenceComparer struct {
	likelihood1 float64
	n1          int
	likelihood2 float64
	n2          int
	normal      ports.NormalDistribution
}

// NewLikelihoodDifferenceComparer creates a comparer. A nil normal uses the
// shared approximate normal table.
func NewLikelihoodDifferenceComparer(sample1, sample2 []float64, normal ports.NormalDistribution) (*LikelihoodDifferenceComparer, error) {
	p1, err := sample.CategoricalLikelihood(sample1)
	if err != nil {
		return nil, err
	}
	p2, err := sample.CategoricalLikelihood(sample2)
	if err != nil {
		return nil, err
	}
	if normal == nil {
		normal = distributions.SharedNormalTable()
	}
	return &LikelihoodDifferenceComparer{
		likelihood1: p1,
		n1:          len(sample1),
		likelihood2: p2,
		n2:          len(sample2),
		normal:      normal,
	}, nil
}

// Difference returns p1 - p2
func (c *LikelihoodDifferenceComparer) Difference() float64 {
	return c.likelihood1 - c.likelihood2
}

// StandardError returns sqrt(p1(1-p1)/n1 + p2(1-p2)/n2)
func (c *LikelihoodDifferenceComparer) StandardError() float64 {
	return math.Sqrt(c.likelihood1*(1-c.likelihood1)/float64(c.n1) + c.likelihood2*(1-c.likelihood2)/float64(c.n2))
}

// TestStatistic returns (p1 - p2)/standard error
func (c *LikelihoodDifferenceComparer) TestStatistic() float64 {
	return inference.Standardize(c.Difference(), c.StandardError())
}

// ConfidenceInterval returns p1 - p2 +/- z(1-alpha/2)*standard error
func (c *LikelihoodDifferenceComparer) ConfidenceInterval(confidenceLevel float64) (inference.Interval, error) {
	if err := core.CheckProbability("confidenceLevel", confidenceLevel); err != nil {
		return inference.Interval{}, err
	}
	z, err := c.normal.Quantile(1 - (1-confidenceLevel)/2)
	if err != nil {
		return inference.Interval{}, err
	}
	return symmetric(c.Difference(), z*c.StandardError()), nil
}

// Test accepts p1 > p2 (right), p1 < p2 (left) or p1 != p2 (twin)
func (c *LikelihoodDifferenceComparer) Test(tail inference.Tail, type1Confidence float64) (bool, error) {
	if err := core.CheckProbability("type1Confidence", type1Confidence); err != nil {
		return false, err
	}
	return criticalTest(c.normal.Quantile, tail, c.TestStatistic(), type1Confidence)
}

func (c *LikelihoodDifferenceComparer) GreaterTest(type1Confidence float64) (bool, error) {
	return c.Test(inference.TailRight, type1Confidence)
}

func (c *LikelihoodDifferenceComparer) LesserTest(type1Confidence float64) (bool, error) {
	return c.Test(inference.TailLeft, type1Confidence)
}

func (c *LikelihoodDifferenceComparer) UnequalTest(type1Confidence float64) (bool, error) {
	return c.Test(inference.TailTwin, type1Confidence)
}
