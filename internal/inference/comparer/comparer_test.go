package comparer

import (
	"math"
	"testing"

	"hypokit/domain/core"
	"hypokit/domain/inference"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var invalidLevels = []float64{math.NaN(), -1, 2}

var (
	_ MeanComparer = (*WelchComparer)(nil)
	_ MeanComparer = (*PairedComparer)(nil)
	_ MeanComparer = (*PooledComparer)(nil)
)

func fixedQuantile(v float64) quantileFunc {
	return func(float64) (float64, error) { return v, nil }
}

func TestCriticalTest(t *testing.T) {
	tests := []struct {
		tail inference.Tail
		stat float64
		want bool
	}{
		{inference.TailRight, 2, true},
		{inference.TailRight, 1.99, false},
		{inference.TailLeft, -2, true},
		{inference.TailLeft, 2, false},
		{inference.TailTwin, -2, true},
		{inference.TailTwin, 2, true},
		{inference.TailTwin, 0.5, false},
	}
	for _, tt := range tests {
		got, err := criticalTest(fixedQuantile(2), tt.tail, tt.stat, 0.95)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s tail at %v", tt.tail, tt.stat)
	}

	_, err := criticalTest(fixedQuantile(2), inference.Tail("sideways"), 0, 0.95)
	assert.True(t, core.IsInvalidArgument(err))
}

func TestDescribe(t *testing.T) {
	_, err := describe("sample1", nil)
	assert.True(t, core.IsInvalidArgument(err))
	_, err = describe("sample1", []float64{3})
	assert.True(t, core.IsInvalidArgument(err))

	m, err := describe("sample1", []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, moments{mean: 2, variance: 1, n: 3}, m)
}
