package analyzer

import (
	"math"

	"hypokit/adapters/stats/distributions"
	"hypokit/domain/core"
	"hypokit/domain/inference"
	"hypokit/ports"
)

// NormalMeanAnalyzer infers a population mean assuming the sampling
// distribution of the mean is normal with the sample standard deviation.
type NormalMeanAnalyzer struct {
	meanSummary
	normal ports.NormalDistribution
}

// NewNormalMeanAnalyzer creates an analyzer over values. A nil normal uses the
// process-wide approximate normal table.
func NewNormalMeanAnalyzer(values []float64, normal ports.NormalDistribution) (*NormalMeanAnalyzer, error) {
	summary, err := summarize(values)
	if err != nil {
		return nil, err
	}
	if normal == nil {
		normal = distributions.SharedNormalTable()
	}
	return &NormalMeanAnalyzer{meanSummary: summary, normal: normal}, nil
}

// ConfidenceInterval returns mean +/- z(1-alpha/2)*stdDev/sqrt(n)
func (a *NormalMeanAnalyzer) ConfidenceInterval(confidenceLevel float64) (inference.Interval, error) {
	if err := core.CheckProbability("confidenceLevel", confidenceLevel); err != nil {
		return inference.Interval{}, err
	}
	z, err := a.normal.Quantile(1 - (1-confidenceLevel)/2)
	if err != nil {
		return inference.Interval{}, err
	}
	half := z * a.standardError()
	return inference.Interval{Lower: a.mean - half, Upper: a.mean + half}, nil
}

// SampleSizeForInterval returns the unrounded sample size giving a
// confidence interval of the requested full width.
func (a *NormalMeanAnalyzer) SampleSizeForInterval(confidenceLevel, width float64) (float64, error) {
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
	e := width / 2
	return float64(a.n) * z * z * a.variance / (e * e), nil
}

// SampleSizeForTesting returns the sample size detecting a shift of delta at
// the given type I and type II confidence levels.
func (a *NormalMeanAnalyzer) SampleSizeForTesting(type1Confidence, type2Confidence, delta float64) (float64, error) {
	if err := core.CheckProbability("type1Confidence", type1Confidence); err != nil {
		return 0, err
	}
	if err := core.CheckProbability("type2Confidence", type2Confidence); err != nil {
		return 0, err
	}
	if err := core.CheckValue("delta", delta); err != nil {
		return 0, err
	}
	if delta == 0 {
		return 0, core.NewInvalidArgumentError("delta", "must be non-zero")
	}
	z1, err := a.normal.Quantile(1 - (1-type1Confidence)/2)
	if err != nil {
		return 0, err
	}
	z2, err := a.normal.Quantile(type2Confidence)
	if err != nil {
		return 0, err
	}
	return float64(a.n) * a.variance * (z1 + z2) * (z1 + z2) / (delta * delta), nil
}

// PValue returns the one- or two-sided p-value of the observed mean against nullMean
func (a *NormalMeanAnalyzer) PValue(tail inference.Tail, nullMean float64) (float64, error) {
	if err := core.CheckValue("nullMean", nullMean); err != nil {
		return 0, err
	}
	stat := a.statistic(nullMean)
	switch tail {
	case inference.TailRight:
		area, err := a.normal.LeftTailArea(stat)
		return 1 - area, err
	case inference.TailLeft:
		return a.normal.LeftTailArea(stat)
	case inference.TailTwin:
		area, err := a.normal.LeftTailArea(math.Abs(stat))
		return 2 * (1 - area), err
	}
	return 0, core.NewInvalidArgumentError("tail", "must be right, left or twin")
}

func (a *NormalMeanAnalyzer) test(tail inference.Tail, nullMean, type1Confidence float64) (bool, error) {
	if err := checkTest(nullMean, type1Confidence); err != nil {
		return false, err
	}
	p, err := a.PValue(tail, nullMean)
	if err != nil {
		return false, err
	}
	return p <= 1-type1Confidence, nil
}

// RightTailTest accepts the hypothesis that the population mean exceeds nullMean
func (a *NormalMeanAnalyzer) RightTailTest(nullMean, type1Confidence float64) (bool, error) {
	return a.test(inference.TailRight, nullMean, type1Confidence)
}

// LeftTailTest accepts the hypothesis that the population mean is below nullMean
func (a *NormalMeanAnalyzer) LeftTailTest(nullMean, type1Confidence float64) (bool, error) {
	return a.test(inference.TailLeft, nullMean, type1Confidence)
}

// TwinTailTest accepts the hypothesis that the population mean differs from nullMean
func (a *NormalMeanAnalyzer) TwinTailTest(nullMean, type1Confidence float64) (bool, error) {
	return a.test(inference.TailTwin, nullMean, type1Confidence)
}

// TestPower returns the probability of rejecting the null when the true mean
// is the sample mean and the null mean is nullMean.
func (a *NormalMeanAnalyzer) TestPower(nullMean, type1Confidence float64) (float64, error) {
	if err := checkTest(nullMean, type1Confidence); err != nil {
		return 0, err
	}
	z, err := a.normal.Quantile(type1Confidence)
	if err != nil {
		return 0, err
	}
	beta := z - math.Sqrt(float64(a.n))*math.Abs(nullMean-a.mean)/a.stdDev
	area, err := a.normal.LeftTailArea(beta)
	if err != nil {
		return 0, err
	}
	return 1 - area, nil
}

// PowerTest runs the tail test and, when the null survives, reports whether
// the test had adequate power at type2Confidence.
func (a *NormalMeanAnalyzer) PowerTest(tail inference.Tail, nullMean, type1Confidence, type2Confidence float64) (inference.PowerDecision, error) {
	if err := checkPowerTest(nullMean, type1Confidence, type2Confidence); err != nil {
		return inference.PowerDecision{}, err
	}
	rejected, err := a.test(tail, nullMean, type1Confidence)
	if err != nil {
		return inference.PowerDecision{}, err
	}
	if rejected {
		return inference.PowerDecision{NullRejected: true}, nil
	}

	powerLevel := type1Confidence
	if tail == inference.TailTwin {
		powerLevel = type1Confidence + (1-type1Confidence)/2
	}
	power, err := a.TestPower(nullMean, powerLevel)
	if err != nil {
		return inference.PowerDecision{}, err
	}
	return inference.PowerDecision{PowerAdequate: power >= type2Confidence}, nil
}

// RightTailPowerTest is PowerTest for the right tail
func (a *NormalMeanAnalyzer) RightTailPowerTest(nullMean, type1Confidence, type2Confidence float64) (inference.PowerDecision, error) {
	return a.PowerTest(inference.TailRight, nullMean, type1Confidence, type2Confidence)
}

// LeftTailPowerTest is PowerTest for the left tail
func (a *NormalMeanAnalyzer) LeftTailPowerTest(nullMean, type1Confidence, type2Confidence float64) (inference.PowerDecision, error) {
	return a.PowerTest(inference.TailLeft, nullMean, type1Confidence, type2Confidence)
}

// TwinTailPowerTest is PowerTest for the twin tail
func (a *NormalMeanAnalyzer) TwinTailPowerTest(nullMean, type1Confidence, type2Confidence float64) (inference.PowerDecision, error) {
	return a.PowerTest(inference.TailTwin, nullMean, type1Confidence, type2Confidence)
}
