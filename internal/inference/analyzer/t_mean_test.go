package analyzer

import (
	"math"
	"testing"

	"hypokit/domain/core"
	"hypokit/domain/inference"
	"hypokit/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newT(t *testing.T, values []float64) *TMeanAnalyzer {
	t.Helper()
	a, err := NewTMeanAnalyzer(values, nil)
	require.NoError(t, err)
	return a
}

func TestNewTMeanAnalyzer_Validation(t *testing.T) {
	_, err := NewTMeanAnalyzer(nil, nil)
	assert.True(t, core.IsInvalidArgument(err))
	_, err = NewTMeanAnalyzer([]float64{}, nil)
	assert.True(t, core.IsInvalidArgument(err))
}

func TestTMeanAnalyzer_Summary(t *testing.T) {
	a := newT(t, testkit.MeanSample)
	assert.InDelta(t, 0.45644444444444443, a.Mean(), 1e-12)
	assert.Equal(t, 8.0, a.DF())
}

func TestTMeanAnalyzer_ConfidenceInterval(t *testing.T) {
	// df stays at 13 from the fourteen-point sample
	a := newT(t, testkit.IntervalSample)
	a.n = 50
	a.mean = 2.8
	a.stdDev = 0.6

	interval, err := a.ConfidenceInterval(0.95)
	require.NoError(t, err)
	assert.InDelta(t, 2.6166866407784255, interval.Lower, 1e-7)
	assert.InDelta(t, 2.983313359221574, interval.Upper, 1e-7)

	for _, level := range invalidLevels {
		_, err := a.ConfidenceInterval(level)
		assert.True(t, core.IsInvalidArgument(err))
	}
}

func TestTMeanAnalyzer_TestStatistic(t *testing.T) {
	a := newT(t, testkit.MeanSample)
	stat, err := a.TestStatistic(0.3)
	require.NoError(t, err)
	assert.InDelta(t, 2.2050588385131595, stat, 1e-12)

	_, err = a.TestStatistic(math.NaN())
	assert.True(t, core.IsInvalidArgument(err))
}

func TestTMeanAnalyzer_TailTests(t *testing.T) {
	a := newT(t, testkit.MeanSample)

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

func TestTMeanAnalyzer_WiderThanNormal(t *testing.T) {
	normal := newNormal(t, testkit.MeanSample)
	student := newT(t, testkit.MeanSample)

	zInterval, err := normal.ConfidenceInterval(0.95)
	require.NoError(t, err)
	tInterval, err := student.ConfidenceInterval(0.95)
	require.NoError(t, err)
	assert.Greater(t, tInterval.Width(), zInterval.Width())
}

func TestTMeanAnalyzer_NotSupported(t *testing.T) {
	a := newT(t, testkit.MeanSample)

	_, err := a.SampleSizeForInterval(0.95, 0.6)
	assert.True(t, core.IsNotSupported(err))
	_, err = a.SampleSizeForTesting(0.95, 0.75, 0.3)
	assert.True(t, core.IsNotSupported(err))
	_, err = a.TestPower(0.3, 0.95)
	assert.True(t, core.IsNotSupported(err))
	_, err = a.PowerTest(inference.TailRight, 0.3, 0.95, 0.75)
	assert.True(t, core.IsNotSupported(err))
	assert.False(t, core.IsInvalidArgument(err))
}
