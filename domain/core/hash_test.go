package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHash(t *testing.T) {
	assert.Equal(t, Hash("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"), NewHash(nil))
	assert.Equal(t, "e3b0c44298fc", NewHash(nil).Short())
	assert.True(t, Hash("").IsEmpty())
	assert.Equal(t, "abc", Hash("abc").Short())
}

func TestHashSample(t *testing.T) {
	a := HashSample([]float64{1, 2, 3})
	assert.Len(t, a.String(), 64)
	assert.Equal(t, a, HashSample([]float64{1, 2, 3}))
	assert.NotEqual(t, a, HashSample([]float64{3, 2, 1}))
	assert.NotEqual(t, a, HashSample([]float64{1, 2, 3.0000000001}))
	assert.Equal(t, NewHash(nil), HashSample(nil))
}
