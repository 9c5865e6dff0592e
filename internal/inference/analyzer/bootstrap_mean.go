package analyzer

import (
	"fmt"
	"math"
	"sort"

	"hypokit/adapters/stats/resample"
	"hypokit/domain/core"
	"hypokit/domain/inference"

	"github.com/montanaflynn/stats"
)

// DefaultResampleCount is the number of bootstrap resamples drawn per call
const DefaultResampleCount = 10000

// BootstrapMeanAnalyzer infers a population mean from the bootstrap-t
// distribution of the sample. Every interval or test call draws a fresh set
// of resamples from the resampler, so results are reproducible only when the
// resampler's source is seeded immediately before the call.
type BootstrapMeanAnalyzer struct {
	meanSummary
	resampleCount int
	resampler     *resample.Resampler
}

// NewBootstrapMeanAnalyzer creates an analyzer over values. resampleCount 0
// selects DefaultResampleCount; a nil resampler draws from a clock-seeded source.
func NewBootstrapMeanAnalyzer(values []float64, resampleCount int, resampler *resample.Resampler) (*BootstrapMeanAnalyzer, error) {
	if resampleCount < 0 {
		return nil, core.NewInvalidArgumentError("resampleCount", fmt.Sprintf("cannot be negative, got %d", resampleCount))
	}
	if resampleCount == 0 {
		resampleCount = DefaultResampleCount
	}
	summary, err := summarize(values)
	if err != nil {
		return nil, err
	}
	if resampler == nil {
		resampler = resample.NewResampler(nil)
	}
	return &BootstrapMeanAnalyzer{meanSummary: summary, resampleCount: resampleCount, resampler: resampler}, nil
}

// ResampleCount returns the number of resamples drawn per call
func (a *BootstrapMeanAnalyzer) ResampleCount() int {
	return a.resampleCount
}

// pivots draws resampleCount bootstrap-t statistics
// sqrt(n)*(resampleMean-mean)/resampleStdDev.
func (a *BootstrapMeanAnalyzer) pivots() ([]float64, error) {
	rootN := math.Sqrt(float64(a.n))
	return a.resampler.Replicate(a.values, a.resampleCount, func(rs []float64) float64 {
		m, sd := meanStdDev(rs)
		// a resample of one repeated value has no spread
		return inference.Standardize(rootN*(m-a.mean), sd)
	})
}

// meanStdDev returns the mean and Bessel-corrected standard deviation of a
// resample. Resamples are never empty, so the library errors cannot occur.
func meanStdDev(values []float64) (float64, float64) {
	mean, _ := stats.Mean(values)
	sd, _ := stats.StandardDeviationSample(values)
	return mean, sd
}

// ConfidenceInterval returns the bootstrap-t interval read off the sorted
// pivots at indices floor(R*(1-alpha)) and floor(R*alpha), without interpolation.
func (a *BootstrapMeanAnalyzer) ConfidenceInterval(confidenceLevel float64) (inference.Interval, error) {
	if err := core.CheckProbability("confidenceLevel", confidenceLevel); err != nil {
		return inference.Interval{}, err
	}
	dist, err := a.pivots()
	if err != nil {
		return inference.Interval{}, err
	}
	sort.Float64s(dist)

	alpha := (1 - confidenceLevel) / 2
	upperIdx := a.index(1 - alpha)
	lowerIdx := a.index(alpha)
	se := a.standardError()
	return inference.Interval{
		Lower: a.mean - dist[upperIdx]*se,
		Upper: a.mean - dist[lowerIdx]*se,
	}, nil
}

func (a *BootstrapMeanAnalyzer) index(fraction float64) int {
	i := int(float64(a.resampleCount) * fraction)
	if i >= a.resampleCount {
		i = a.resampleCount - 1
	}
	return i
}

// SampleSizeForInterval is not supported
func (a *BootstrapMeanAnalyzer) SampleSizeForInterval(confidenceLevel, width float64) (float64, error) {
	return 0, core.NewNotSupportedError("sample size for interval", "bootstrap mean analyzer")
}

// SampleSizeForTesting is not supported
func (a *BootstrapMeanAnalyzer) SampleSizeForTesting(type1Confidence, type2Confidence, delta float64) (float64, error) {
	return 0, core.NewNotSupportedError("sample size for testing", "bootstrap mean analyzer")
}

// PValue returns the empirical p-value of the observed statistic against
// a fresh set of pivots. The twin tail doubles the smaller one-sided count.
func (a *BootstrapMeanAnalyzer) PValue(tail inference.Tail, nullMean float64) (float64, error) {
	if err := core.CheckValue("nullMean", nullMean); err != nil {
		return 0, err
	}
	if tail != inference.TailRight && tail != inference.TailLeft && tail != inference.TailTwin {
		return 0, core.NewInvalidArgumentError("tail", "must be right, left or twin")
	}
	dist, err := a.pivots()
	if err != nil {
		return 0, err
	}

	observed := a.statistic(nullMean)
	above, below := 0, 0
	for _, s := range dist {
		// ties count toward the right tail only
		if s >= observed {
			above++
		} else {
			below++
		}
	}

	r := float64(a.resampleCount)
	switch tail {
	case inference.TailRight:
		return float64(above) / r, nil
	case inference.TailLeft:
		return float64(below) / r, nil
	default:
		return 2 * float64(min(above, below)) / r, nil
	}
}

func (a *BootstrapMeanAnalyzer) test(tail inference.Tail, nullMean, type1Confidence float64) (bool, error) {
	if err := checkTest(nullMean, type1Confidence); err != nil {
		return false, err
	}
	p, err := a.PValue(tail, nullMean)
	if err != nil {
		return false, err
	}
	return p <= 1-type1Confidence, nil
}

func (a *BootstrapMeanAnalyzer) RightTailTest(nullMean, type1Confidence float64) (bool, error) {
	return a.test(inference.TailRight, nullMean, type1Confidence)
}

func (a *BootstrapMeanAnalyzer) LeftTailTest(nullMean, type1Confidence float64) (bool, error) {
	return a.test(inference.TailLeft, nullMean, type1Confidence)
}

func (a *BootstrapMeanAnalyzer) TwinTailTest(nullMean, type1Confidence float64) (bool, error) {
	return a.test(inference.TailTwin, nullMean, type1Confidence)
}

// TestPower is not supported
func (a *BootstrapMeanAnalyzer) TestPower(nullMean, type1Confidence float64) (float64, error) {
	return 0, core.NewNotSupportedError("test power", "bootstrap mean analyzer")
}

// PowerTest is not supported
func (a *BootstrapMeanAnalyzer) PowerTest(tail inference.Tail, nullMean, type1Confidence, type2Confidence float64) (inference.PowerDecision, error) {
	return inference.PowerDecision{}, core.NewNotSupportedError("power test", "bootstrap mean analyzer")
}
