package distributions

import (
	"math"
	"testing"

	"hypokit/domain/core"
	"hypokit/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ ports.NormalDistribution     = (*Normal)(nil)
	_ ports.NormalDistribution     = (*ApproximateNormalTable)(nil)
	_ ports.TDistribution          = (*StudentsT)(nil)
	_ ports.ChiSquaredDistribution = (*ChiSquared)(nil)
	_ ports.FDistribution          = (*F)(nil)
	_ ports.BinomialDistribution   = (*Binomial)(nil)
)

var badProbabilities = []float64{math.NaN(), -1, 2}

func TestStudentsT(t *testing.T) {
	dist := NewStudentsT()

	area, err := dist.LeftTailArea(2.2, 8)
	require.NoError(t, err)
	assert.InDelta(t, 0.9705030460420883, area, 1e-7)

	q, err := dist.Quantile(0.99, 8)
	require.NoError(t, err)
	assert.InDelta(t, 2.896459442760522, q, 1e-7)

	for _, p := range badProbabilities {
		_, err := dist.Quantile(p, 8)
		assert.True(t, core.IsInvalidArgument(err), "percentile %v", p)
	}
	for _, df := range []float64{math.NaN(), -1, 0} {
		_, err := dist.LeftTailArea(1, df)
		assert.True(t, core.IsInvalidArgument(err), "df %v", df)
		_, err = dist.Quantile(0.5, df)
		assert.True(t, core.IsInvalidArgument(err), "df %v", df)
	}
	_, err = dist.LeftTailArea(math.NaN(), 8)
	assert.True(t, core.IsInvalidArgument(err))
}

func TestChiSquared(t *testing.T) {
	dist := NewChiSquared()

	area, err := dist.LeftTailArea(2.2, 8)
	require.NoError(t, err)
	assert.InDelta(t, 0.02574181652967084, area, 1e-7)

	q, err := dist.Quantile(0.99, 8)
	require.NoError(t, err)
	assert.InDelta(t, 20.090235029663233, q, 1e-6)

	upper, err := dist.UpperCritical(0.99, 8)
	require.NoError(t, err)
	assert.InDelta(t, 21.954954990659534, upper, 1e-6)

	lower, err := dist.LowerCritical(0.99, 8)
	require.NoError(t, err)
	assert.InDelta(t, 1.3444130870148103, lower, 1e-6)

	for _, p := range badProbabilities {
		_, err := dist.Quantile(p, 8)
		assert.True(t, core.IsInvalidArgument(err))
		_, err = dist.UpperCritical(p, 8)
		assert.True(t, core.IsInvalidArgument(err))
		_, err = dist.LowerCritical(p, 8)
		assert.True(t, core.IsInvalidArgument(err))
	}
	_, err = dist.LeftTailArea(1, -1)
	assert.True(t, core.IsInvalidArgument(err))
}

func TestF(t *testing.T) {
	dist := NewF()

	q, err := dist.Quantile(0.975, 10, 7)
	require.NoError(t, err)
	assert.InDelta(t, 4.761116434996814, q, 1e-6)

	lower, err := dist.LowerCritical(0.95, 39, 39)
	require.NoError(t, err)
	assert.InDelta(t, 0.5288993273080331, lower, 1e-7)

	upper, err := dist.UpperCritical(0.95, 39, 39)
	require.NoError(t, err)
	assert.InDelta(t, 1.8907189863329057, upper, 1e-6)

	area, err := dist.LeftTailArea(upper, 39, 39)
	require.NoError(t, err)
	assert.InDelta(t, 0.975, area, 1e-9)

	for _, p := range badProbabilities {
		_, err := dist.Quantile(p, 10, 7)
		assert.True(t, core.IsInvalidArgument(err))
	}
	_, err = dist.Quantile(0.5, -1, 7)
	assert.True(t, core.IsInvalidArgument(err))
	_, err = dist.Quantile(0.5, 10, math.NaN())
	assert.True(t, core.IsInvalidArgument(err))
}

func TestNormal(t *testing.T) {
	dist := NewNormal()

	area, err := dist.LeftTailArea(1.96)
	require.NoError(t, err)
	assert.InDelta(t, 0.9750021048517795, area, 1e-12)

	q, err := dist.Quantile(0.975)
	require.NoError(t, err)
	assert.InDelta(t, 1.959963984540054, q, 1e-9)

	for _, p := range badProbabilities {
		_, err := dist.Quantile(p)
		assert.True(t, core.IsInvalidArgument(err))
	}
}

func TestContinuousRoundTrip(t *testing.T) {
	normal := NewNormal()
	studentsT := NewStudentsT()
	chi := NewChiSquared()
	f := NewF()

	for i := 1; i <= 99; i++ {
		p := float64(i) / 100

		z, err := normal.Quantile(p)
		require.NoError(t, err)
		area, err := normal.LeftTailArea(z)
		require.NoError(t, err)
		assert.InDelta(t, p, area, 1e-9, "normal p=%v", p)

		tv, err := studentsT.Quantile(p, 12)
		require.NoError(t, err)
		area, err = studentsT.LeftTailArea(tv, 12)
		require.NoError(t, err)
		assert.InDelta(t, p, area, 1e-8, "t p=%v", p)

		x, err := chi.Quantile(p, 5)
		require.NoError(t, err)
		area, err = chi.LeftTailArea(x, 5)
		require.NoError(t, err)
		assert.InDelta(t, p, area, 1e-8, "chi-squared p=%v", p)

		fv, err := f.Quantile(p, 6, 9)
		require.NoError(t, err)
		area, err = f.LeftTailArea(fv, 6, 9)
		require.NoError(t, err)
		assert.InDelta(t, p, area, 1e-8, "F p=%v", p)
	}
}
