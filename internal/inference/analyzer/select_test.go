package analyzer

import (
	"testing"

	"hypokit/domain/core"
	"hypokit/domain/inference"
	"hypokit/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTest(t *testing.T) {
	a, err := NewNormalMeanAnalyzer(testkit.MeanSample, nil)
	require.NoError(t, err)

	for _, tail := range inference.Tails {
		test, err := SelectTest(tail, a.RightTailTest, a.LeftTailTest, a.TwinTailTest)
		require.NoError(t, err)
		got, err := test(0.3, 0.95)
		require.NoError(t, err)
		want, err := a.test(tail, 0.3, 0.95)
		require.NoError(t, err)
		assert.Equal(t, want, got, tail)
	}

	_, err = SelectTest("up", a.RightTailTest, a.LeftTailTest, a.TwinTailTest)
	assert.True(t, core.IsInvalidArgument(err))
}
