package analyzer

import (
	"math"
	"testing"

	"hypokit/adapters/stats/distributions"
	"hypokit/domain/core"
	"hypokit/domain/inference"
	"hypokit/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var invalidLevels = []float64{math.NaN(), -1, 2}

func newNormal(t *testing.T, values []float64) *NormalMeanAnalyzer {
	t.Helper()
	a, err := NewNormalMeanAnalyzer(values, nil)
	require.NoError(t, err)
	return a
}

func TestNewNormalMeanAnalyzer_Validation(t *testing.T) {
	for name, values := range map[string][]float64{
		"nil":    nil,
		"empty":  {},
		"single": {1.5},
		"nan":    {1, math.NaN()},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewNormalMeanAnalyzer(values, nil)
			assert.True(t, core.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func TestNormalMeanAnalyzer_Summary(t *testing.T) {
	a := newNormal(t, testkit.MeanSample)
	assert.InDelta(t, 0.45644444444444443, a.Mean(), 1e-12)
	assert.InDelta(t, 0.21284390472310402, a.StdDev(), 1e-12)
	assert.Equal(t, 9, a.N())
}

func TestNormalMeanAnalyzer_ConfidenceInterval(t *testing.T) {
	a := newNormal(t, testkit.IntervalSample)
	a.n = 50
	a.mean = 2.8
	a.stdDev = 0.6

	interval, err := a.ConfidenceInterval(0.95)
	require.NoError(t, err)
	assert.InDelta(t, 2.633688485064924, interval.Lower, 1e-9)
	assert.InDelta(t, 2.9663115149350756, interval.Upper, 1e-9)

	for _, level := range invalidLevels {
		_, err := a.ConfidenceInterval(level)
		assert.True(t, core.IsInvalidArgument(err), "level %v", level)
	}
}

func TestNormalMeanAnalyzer_ConfidenceIntervalWidensWithLevel(t *testing.T) {
	for name, a := range map[string]MeanAnalyzer{
		"normal": newNormal(t, testkit.MeanSample),
		"t":      newT(t, testkit.MeanSample),
	} {
		t.Run(name, func(t *testing.T) {
			previous := 0.0
			for _, level := range []float64{0.5, 0.8, 0.9, 0.95, 0.99} {
				interval, err := a.ConfidenceInterval(level)
				require.NoError(t, err)
				assert.Greater(t, interval.Width(), previous, "level %v", level)
				assert.True(t, interval.Contains(a.Mean()))
				previous = interval.Width()
			}
		})
	}
}

func TestNormalMeanAnalyzer_IsDeterministic(t *testing.T) {
	a := newNormal(t, testkit.MeanSample)
	first, err := a.ConfidenceInterval(0.9)
	require.NoError(t, err)
	second, err := a.ConfidenceInterval(0.9)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	s1, _ := a.TestStatistic(0.3)
	s2, _ := a.TestStatistic(0.3)
	assert.Equal(t, s1, s2)
}

func TestNormalMeanAnalyzer_SampleSizeForInterval(t *testing.T) {
	a := newNormal(t, testkit.IntervalSample)
	n, err := a.SampleSizeForInterval(0.95, 0.6)
	require.NoError(t, err)
	assert.InDelta(t, 46.52604444444445, n, 1e-9)

	for _, level := range invalidLevels {
		_, err := a.SampleSizeForInterval(level, 0.3)
		assert.True(t, core.IsInvalidArgument(err))
	}
	for _, width := range []float64{math.NaN(), -1, 0} {
		_, err := a.SampleSizeForInterval(0.95, width)
		assert.True(t, core.IsInvalidArgument(err), "width %v", width)
	}
}

func TestNormalMeanAnalyzer_SampleSizeForTesting(t *testing.T) {
	a := newNormal(t, testkit.MeanSample)
	n, err := a.SampleSizeForTesting(0.95, 0.75, 0.3)
	require.NoError(t, err)
	assert.InDelta(t, 31.4306944411, n, 1e-9)

	for _, level := range invalidLevels {
		_, err := a.SampleSizeForTesting(level, 0.75, 0.3)
		assert.True(t, core.IsInvalidArgument(err))
		_, err = a.SampleSizeForTesting(0.95, level, 0.3)
		assert.True(t, core.IsInvalidArgument(err))
	}
	_, err = a.SampleSizeForTesting(0.95, 0.75, math.NaN())
	assert.True(t, core.IsInvalidArgument(err))
}

func TestNormalMeanAnalyzer_TestStatistic(t *testing.T) {
	a := newNormal(t, testkit.MeanSample)
	stat, err := a.TestStatistic(0.3)
	require.NoError(t, err)
	assert.InDelta(t, 2.2050588385131595, stat, 1e-12)

	_, err = a.TestStatistic(math.NaN())
	assert.True(t, core.IsInvalidArgument(err))
}

func TestNormalMeanAnalyzer_ZeroSpread(t *testing.T) {
	a := newNormal(t, testkit.Repeat(2, 4))

	at, err := a.TestStatistic(2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, at)
	above, err := a.TestStatistic(1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(above, 1))

	p, err := a.PValue(inference.TailRight, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)
	accepted, err := a.RightTailTest(1, 0.95)
	require.NoError(t, err)
	assert.True(t, accepted)

	twin, err := a.PValue(inference.TailTwin, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, twin, 1e-6)
}

func TestNormalMeanAnalyzer_TailTests(t *testing.T) {
	a := newNormal(t, testkit.MeanSample)

	tests := []struct {
		name     string
		test     func(float64, float64) (bool, error)
		nullMean float64
		level    float64
		want     bool
	}{
		{"right accepts", a.RightTailTest, 0.3, 0.96, true},
		{"right rejects", a.RightTailTest, 0.3, 0.99, false},
		{"left accepts", a.LeftTailTest, 1, 0.95, true},
		{"left rejects", a.LeftTailTest, 0.3, 0.99, false},
		{"twin accepts", a.TwinTailTest, 0.2, 0.95, true},
		{"twin rejects", a.TwinTailTest, 0.3, 0.99, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.test(tt.nullMean, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			for _, level := range invalidLevels {
				_, err := tt.test(tt.nullMean, level)
				assert.True(t, core.IsInvalidArgument(err))
			}
			_, err = tt.test(math.NaN(), 0.95)
			assert.True(t, core.IsInvalidArgument(err))
		})
	}
}

func TestNormalMeanAnalyzer_TwinTailDoublesOneTail(t *testing.T) {
	a := newNormal(t, testkit.MeanSample)
	right, err := a.PValue(inference.TailRight, 0.3)
	require.NoError(t, err)
	twin, err := a.PValue(inference.TailTwin, 0.3)
	require.NoError(t, err)
	assert.InDelta(t, 2*right, twin, 1e-12)

	// right tail accepted at 0.96 means the twin tail accepts at 0.92
	accepted, err := a.TwinTailTest(0.3, 0.92)
	require.NoError(t, err)
	assert.True(t, accepted)
}

func TestNormalMeanAnalyzer_TestPower(t *testing.T) {
	a := newNormal(t, testkit.MeanSample)
	power, err := a.TestPower(0.3, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 0.7120898636179198, power, 1e-9)

	for _, level := range invalidLevels {
		_, err := a.TestPower(0.3, level)
		assert.True(t, core.IsInvalidArgument(err))
	}
	_, err = a.TestPower(math.NaN(), 0.95)
	assert.True(t, core.IsInvalidArgument(err))
}

func TestNormalMeanAnalyzer_PowerTests(t *testing.T) {
	a := newNormal(t, testkit.MeanSample)
	rejected := inference.PowerDecision{PowerAdequate: false, NullRejected: true}
	retained := inference.PowerDecision{PowerAdequate: false, NullRejected: false}

	tests := []struct {
		name     string
		test     func(float64, float64, float64) (inference.PowerDecision, error)
		nullMean float64
		type1    float64
		want     inference.PowerDecision
	}{
		{"right rejects null", a.RightTailPowerTest, 0.2, 0.95, rejected},
		{"right underpowered", a.RightTailPowerTest, 0.3, 0.99, retained},
		{"left rejects null", a.LeftTailPowerTest, 1, 0.95, rejected},
		{"left underpowered", a.LeftTailPowerTest, 0.3, 0.99, retained},
		{"twin rejects null", a.TwinTailPowerTest, 1, 0.95, rejected},
		{"twin underpowered", a.TwinTailPowerTest, 0.3, 0.99, retained},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.test(tt.nullMean, tt.type1, 0.75)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			for _, level := range invalidLevels {
				_, err := tt.test(tt.nullMean, level, 0.75)
				assert.True(t, core.IsInvalidArgument(err))
				_, err = tt.test(tt.nullMean, 0.95, level)
				assert.True(t, core.IsInvalidArgument(err))
			}
			_, err = tt.test(math.NaN(), 0.95, 0.75)
			assert.True(t, core.IsInvalidArgument(err))
		})
	}

	// power 0.4516 clears a lower type II requirement
	adequate, err := a.LeftTailPowerTest(0.3, 0.99, 0.4)
	require.NoError(t, err)
	assert.Equal(t, inference.PowerDecision{PowerAdequate: true}, adequate)
}

func TestNormalMeanAnalyzer_LibraryBackend(t *testing.T) {
	a, err := NewNormalMeanAnalyzer(testkit.IntervalSample, distributions.NewNormal())
	require.NoError(t, err)
	a.n = 50
	a.mean = 2.8
	a.stdDev = 0.6

	interval, err := a.ConfidenceInterval(0.95)
	require.NoError(t, err)
	assert.InDelta(t, 2.633688485064924, interval.Lower, 1e-4)
	assert.InDelta(t, 2.9663115149350756, interval.Upper, 1e-4)
}
