package comparer

import (
	"math"
	"testing"

	"hypokit/domain/core"
	"hypokit/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryLikelihoods(t *testing.T, p1 float64, n1 int, p2 float64, n2 int) *LikelihoodDifferenceComparer {
	t.Helper()
	c, err := NewLikelihoodDifferenceComparer([]float64{0, 1}, []float64{1, 0}, nil)
	require.NoError(t, err)
	c.likelihood1, c.n1 = p1, n1
	c.likelihood2, c.n2 = p2, n2
	return c
}

func TestNewLikelihoodDifferenceComparer(t *testing.T) {
	_, err := NewLikelihoodDifferenceComparer([]float64{1, 0, 2}, testkit.CategoricalSample, nil)
	assert.True(t, core.IsInvalidArgument(err))

	_, err = NewLikelihoodDifferenceComparer(testkit.CategoricalSample, []float64{}, nil)
	assert.True(t, core.IsInvalidArgument(err))

	c, err := NewLikelihoodDifferenceComparer(testkit.CategoricalSample, testkit.Repeat(0, 5), nil)
	require.NoError(t, err)
	assert.InDelta(t, 4.0/15, c.Difference(), 1e-12)
}

func TestLikelihoodDifferenceComparer_ConstantSamples(t *testing.T) {
	same, err := NewLikelihoodDifferenceComparer(testkit.Repeat(1, 3), testkit.Repeat(1, 3), nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, same.TestStatistic())

	apart, err := NewLikelihoodDifferenceComparer(testkit.Repeat(1, 3), testkit.Repeat(0, 3), nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(apart.TestStatistic(), 1))
	accepted, err := apart.GreaterTest(0.95)
	require.NoError(t, err)
	assert.True(t, accepted)
}

func TestLikelihoodDifferenceComparer_ConfidenceInterval(t *testing.T) {
	c := summaryLikelihoods(t, 0.784, 527, 0.645, 608)
	assert.InDelta(t, 0.02641854427856807, c.StandardError(), 1e-12)

	interval, err := c.ConfidenceInterval(0.95)
	require.NoError(t, err)
	assert.InDelta(t, 0.0872196532140066, interval.Lower, 1e-9)
	assert.InDelta(t, 0.19078034678599343, interval.Upper, 1e-9)

	for _, level := range invalidLevels {
		_, err := c.ConfidenceInterval(level)
		assert.True(t, core.IsInvalidArgument(err))
	}
}

func TestLikelihoodDifferenceComparer_Tests(t *testing.T) {
	c := summaryLikelihoods(t, 0.752, 125, 0.646, 175)
	assert.InDelta(t, 2.003664831784244, c.TestStatistic(), 1e-9)

	greater, err := c.GreaterTest(0.95)
	require.NoError(t, err)
	assert.True(t, greater)

	lesser, err := c.LesserTest(0.95)
	require.NoError(t, err)
	assert.False(t, lesser)

	unequal, err := c.UnequalTest(0.95)
	require.NoError(t, err)
	assert.True(t, unequal)

	// 2.0037 falls short of z(0.995)
	unequal, err = c.UnequalTest(0.99)
	require.NoError(t, err)
	assert.False(t, unequal)

	_, err = c.Test("sideways", 0.95)
	assert.True(t, core.IsInvalidArgument(err))
	for _, level := range invalidLevels {
		_, err := c.GreaterTest(level)
		assert.True(t, core.IsInvalidArgument(err))
	}
}
