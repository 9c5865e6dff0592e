package analyzer

import (
	"math"

	"hypokit/adapters/stats/distributions"
	"hypokit/domain/core"
	"hypokit/domain/inference"
	"hypokit/ports"
)

// TMeanAnalyzer infers a population mean with Student's t at n-1 degrees of freedom
type TMeanAnalyzer struct {
	meanSummary
	df float64
	t  ports.TDistribution
}

// NewTMeanAnalyzer creates an analyzer over values. A nil t uses the library-backed distribution.
func NewTMeanAnalyzer(values []float64, t ports.TDistribution) (*TMeanAnalyzer, error) {
	summary, err := summarize(values)
	if err != nil {
		return nil, err
	}
	if t == nil {
		t = distributions.NewStudentsT()
	}
	return &TMeanAnalyzer{meanSummary: summary, df: float64(summary.n - 1), t: t}, nil
}

// DF returns the degrees of freedom
func (a *TMeanAnalyzer) DF() float64 {
	return a.df
}

// ConfidenceInterval returns mean +/- t(1-alpha/2, df)*stdDev/sqrt(n)
func (a *TMeanAnalyzer) ConfidenceInterval(confidenceLevel float64) (inference.Interval, error) {
	if err := core.CheckProbability("confidenceLevel", confidenceLevel); err != nil {
		return inference.Interval{}, err
	}
	t, err := a.t.Quantile(1-(1-confidenceLevel)/2, a.df)
	if err != nil {
		return inference.Interval{}, err
	}
	half := t * a.standardError()
	return inference.Interval{Lower: a.mean - half, Upper: a.mean + half}, nil
}

// SampleSizeForInterval is not supported: the answer depends on the df it would produce
func (a *TMeanAnalyzer) SampleSizeForInterval(confidenceLevel, width float64) (float64, error) {
	return 0, core.NewNotSupportedError("sample size for interval", "t mean analyzer")
}

// SampleSizeForTesting is not supported for the same reason
func (a *TMeanAnalyzer) SampleSizeForTesting(type1Confidence, type2Confidence, delta float64) (float64, error) {
	return 0, core.NewNotSupportedError("sample size for testing", "t mean analyzer")
}

// PValue returns the one- or two-sided p-value against nullMean
func (a *TMeanAnalyzer) PValue(tail inference.Tail, nullMean float64) (float64, error) {
	if err := core.CheckValue("nullMean", nullMean); err != nil {
		return 0, err
	}
	stat := a.statistic(nullMean)
	switch tail {
	case inference.TailRight:
		area, err := a.t.LeftTailArea(stat, a.df)
		return 1 - area, err
	case inference.TailLeft:
		return a.t.LeftTailArea(stat, a.df)
	case inference.TailTwin:
		area, err := a.t.LeftTailArea(math.Abs(stat), a.df)
		return 2 * (1 - area), err
	}
	return 0, core.NewInvalidArgumentError("tail", "must be right, left or twin")
}

func (a *TMeanAnalyzer) test(tail inference.Tail, nullMean, type1Confidence float64) (bool, error) {
	if err := checkTest(nullMean, type1Confidence); err != nil {
		return false, err
	}
	p, err := a.PValue(tail, nullMean)
	if err != nil {
		return false, err
	}
	return p <= 1-type1Confidence, nil
}

func (a *TMeanAnalyzer) RightTailTest(nullMean, type1Confidence float64) (bool, error) {
	return a.test(inference.TailRight, nullMean, type1Confidence)
}

func (a *TMeanAnalyzer) LeftTailTest(nullMean, type1Confidence float64) (bool, error) {
	return a.test(inference.TailLeft, nullMean, type1Confidence)
}

func (a *TMeanAnalyzer) TwinTailTest(nullMean, type1Confidence float64) (bool, error) {
	return a.test(inference.TailTwin, nullMean, type1Confidence)
}

// TestPower is not supported
func (a *TMeanAnalyzer) TestPower(nullMean, type1Confidence float64) (float64, error) {
	return 0, core.NewNotSupportedError("test power", "t mean analyzer")
}

// PowerTest is not supported
func (a *TMeanAnalyzer) PowerTest(tail inference.Tail, nullMean, type1Confidence, type2Confidence float64) (inference.PowerDecision, error) {
	return inference.PowerDecision{}, core.NewNotSupportedError("power test", "t mean analyzer")
}
