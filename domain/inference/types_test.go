package inference

import (
	"encoding/json"
	"math"
	"testing"

	"hypokit/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterval(t *testing.T) {
	iv := Interval{Lower: -1.5, Upper: 2.5}
	assert.Equal(t, 4.0, iv.Width())
	assert.True(t, iv.Contains(-1.5))
	assert.True(t, iv.Contains(0))
	assert.False(t, iv.Contains(2.6))
	assert.Equal(t, "(-1.5, 2.5)", iv.String())
}

func TestParseTail(t *testing.T) {
	for _, tail := range Tails {
		got, err := ParseTail(string(tail))
		require.NoError(t, err)
		assert.Equal(t, tail, got)
	}

	_, err := ParseTail("both")
	require.Error(t, err)
	assert.True(t, core.IsInvalidArgument(err))
}

func TestStandardize(t *testing.T) {
	assert.Equal(t, 2.5, Standardize(5, 2))
	assert.Equal(t, 0.0, Standardize(0, 0))
	assert.True(t, math.IsInf(Standardize(3, 0), 1))
	assert.True(t, math.IsInf(Standardize(-3, 0), -1))
}

func TestValue_JSON(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{Value(2.5), `2.5`},
		{Value(math.Inf(1)), `"+Inf"`},
		{Value(math.Inf(-1)), `"-Inf"`},
	}
	for _, tt := range tests {
		data, err := json.Marshal(tt.value)
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(data))

		var back Value
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, tt.value, back)
	}

	data, err := json.Marshal(Value(math.NaN()))
	require.NoError(t, err)
	assert.Equal(t, `"NaN"`, string(data))
	var nan Value
	require.NoError(t, json.Unmarshal(data, &nan))
	assert.True(t, math.IsNaN(float64(nan)))

	var bad Value
	assert.True(t, core.IsInvalidArgument(json.Unmarshal([]byte(`"many"`), &bad)))
}

func TestReport_NonFiniteStatistic(t *testing.T) {
	stat := Value(math.Inf(-1))
	data, err := json.Marshal(Report{Analysis: "mean", TestStatistic: &stat})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"test_statistic":"-Inf"`)

	var back Report
	require.NoError(t, json.Unmarshal(data, &back))
	require.NotNil(t, back.TestStatistic)
	assert.True(t, math.IsInf(float64(*back.TestStatistic), -1))
}
