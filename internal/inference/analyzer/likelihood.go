package analyzer

import (
	"math"

	"hypokit/adapters/stats/distributions"
	"hypokit/adapters/stats/sample"
	"hypokit/domain/core"
	"hypokit/domain/inference"
	"hypokit/ports"
)

// LikelihoodAnalyzer infers the success likelihood of a 0/1 population.
// Intervals use the Wilson score interval; tests use the exact binomial tail.
type LikelihoodAnalyzer struct {
	likelihood    float64
	standardError float64
	n             int
	binomial      ports.BinomialDistribution
	normal        ports.NormalDistribution
}

// NewLikelihoodAnalyzer creates an analyzer over a 0/1 sample. Nil providers
// use the exact binomial and the shared approximate normal table.
func NewLikelihoodAnalyzer(values []float64, binomial ports.BinomialDistribution, normal ports.NormalDistribution) (*LikelihoodAnalyzer, error) {
	likelihood, err := sample.CategoricalLikelihood(values)
	if err != nil {
		return nil, err
	}
	se, err := sample.CategoricalStandardError(values)
	if err != nil {
		return nil, err
	}
	if binomial == nil {
		binomial = distributions.NewBinomial()
	}
	if normal == nil {
		normal = distributions.SharedNormalTable()
	}
	return &LikelihoodAnalyzer{
		likelihood:    likelihood,
		standardError: se,
		n:             len(values),
		binomial:      binomial,
		normal:        normal,
	}, nil
}

func (a *LikelihoodAnalyzer) Likelihood() float64    { return a.likelihood }
func (a *LikelihoodAnalyzer) StandardError() float64 { return a.standardError }
func (a *LikelihoodAnalyzer) N() int                 { return a.n }

// ConfidenceInterval returns the Wilson score interval. A sample of all
// failures or all successes gets a one-sided exact bound instead.
func (a *LikelihoodAnalyzer) ConfidenceInterval(confidenceLevel float64) (inference.Interval, error) {
	if err := core.CheckProbability("confidenceLevel", confidenceLevel); err != nil {
		return inference.Interval{}, err
	}
	alpha := (1 - confidenceLevel) / 2
	n := float64(a.n)

	switch a.likelihood {
	case 0:
		return inference.Interval{Lower: 0, Upper: 1 - math.Pow(alpha/2, 1/n)}, nil
	case 1:
		return inference.Interval{Lower: math.Pow(alpha/2, 1/n), Upper: 1}, nil
	}

	z, err := a.normal.Quantile(1 - alpha)
	if err != nil {
		return inference.Interval{}, err
	}
	z2 := z * z
	adjustedN := n + z2
	adjusted := (a.likelihood*n + z2/2) / adjustedN
	half := z * math.Sqrt(adjusted*(1-adjusted)/adjustedN)
	return inference.Interval{Lower: adjusted - half, Upper: adjusted + half}, nil
}

// SampleSizeForInterval returns z^2*p(1-p)/width^2. Unlike the mean analyzers
// width is used whole, not halved.
func (a *LikelihoodAnalyzer) SampleSizeForInterval(confidenceLevel, width float64) (float64, error) {
	if err := core.CheckProbability("confidenceLevel", confidenceLevel); err != nil {
		return 0, err
	}
	if err := core.CheckPositive("width", width); err != nil {
		return 0, err
	}
	z, err := a.normal.Quantile(1 - (1-confidenceLevel)/2)
	if err != nil {
		return 0, err
	}
	return z * z * a.likelihood * (1 - a.likelihood) / (width * width), nil
}

// TestStatistic returns (p - testLikelihood)/standardError
func (a *LikelihoodAnalyzer) TestStatistic(testLikelihood float64) (float64, error) {
	if err := core.CheckProbability("testLikelihood", testLikelihood); err != nil {
		return 0, err
	}
	return inference.Standardize(a.likelihood-testLikelihood, a.standardError), nil
}

// PValue returns the exact binomial tail at floor(testLikelihood*n) successes
func (a *LikelihoodAnalyzer) PValue(tail inference.Tail, testLikelihood float64) (float64, error) {
	if err := core.CheckProbability("testLikelihood", testLikelihood); err != nil {
		return 0, err
	}
	expected := int(math.Floor(testLikelihood * float64(a.n)))
	area, err := a.binomial.LeftTailArea(expected, a.n, testLikelihood)
	if err != nil {
		return 0, err
	}

	switch tail {
	case inference.TailRight:
		return 1 - area, nil
	case inference.TailLeft:
		return area, nil
	case inference.TailTwin:
		if a.likelihood >= testLikelihood {
			return 2 * (1 - area), nil
		}
		return 2 * area, nil
	}
	return 0, core.NewInvalidArgumentError("tail", "must be right, left or twin")
}

func (a *LikelihoodAnalyzer) test(tail inference.Tail, testLikelihood, confidenceLevel float64) (bool, error) {
	if err := core.CheckProbability("confidenceLevel", confidenceLevel); err != nil {
		return false, err
	}
	p, err := a.PValue(tail, testLikelihood)
	if err != nil {
		return false, err
	}
	return p <= 1-confidenceLevel, nil
}

// RightTailTest accepts the hypothesis that the likelihood exceeds testLikelihood
func (a *LikelihoodAnalyzer) RightTailTest(testLikelihood, confidenceLevel float64) (bool, error) {
	return a.test(inference.TailRight, testLikelihood, confidenceLevel)
}

// LeftTailTest accepts the hypothesis that the likelihood is below testLikelihood
func (a *LikelihoodAnalyzer) LeftTailTest(testLikelihood, confidenceLevel float64) (bool, error) {
	return a.test(inference.TailLeft, testLikelihood, confidenceLevel)
}

// TwinTailTest accepts the hypothesis that the likelihood differs from testLikelihood
func (a *LikelihoodAnalyzer) TwinTailTest(testLikelihood, confidenceLevel float64) (bool, error) {
	return a.test(inference.TailTwin, testLikelihood, confidenceLevel)
}
