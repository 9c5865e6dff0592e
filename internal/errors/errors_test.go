package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "bad level", ConfigInvalid("bad level").Error())

	cause := stderrors.New("permission denied")
	err := InvalidInputf(cause, "reading %s", "data.csv")
	assert.Equal(t, "reading data.csv: permission denied", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	wrapped := Wrap(NotFound("column \"x\""), "loading sample")
	assert.Equal(t, CodeNotFound, GetCode(wrapped))
	assert.Equal(t, "loading sample: column \"x\" not found", wrapped.Error())

	plain := Wrapf(stderrors.New("boom"), "step %d", 2)
	assert.Equal(t, CodeInternalError, GetCode(plain))
	assert.Equal(t, "step 2: boom", plain.Error())
}

func TestWithCode(t *testing.T) {
	assert.Nil(t, WithCode(CodeInvalidInput, nil))

	err := WithCode(CodeInvalidInput, stderrors.New("not a number"))
	assert.Equal(t, CodeInvalidInput, GetCode(err))
	assert.Equal(t, "not a number", err.Error())

	recoded := WithCode(CodeConfigInvalid, NotFound("file"))
	assert.Equal(t, CodeConfigInvalid, GetCode(recoded))
	assert.Equal(t, "file not found", recoded.Error())

	// outer context around a coded error survives recoding
	wrapped := WithCode(CodeInvalidInput, fmt.Errorf("loading: %w", NotFound("file")))
	assert.Equal(t, CodeInvalidInput, GetCode(wrapped))
	assert.Equal(t, "loading: file not found", wrapped.Error())
	var notFound *AppError
	require.True(t, stderrors.As(stderrors.Unwrap(wrapped), &notFound))
	assert.Equal(t, CodeNotFound, notFound.Code)
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
	assert.False(t, IsAppError(stderrors.New("plain")))

	nested := fmt.Errorf("outer: %w", ConfigInvalidf("HYPOKIT_WORKERS must be positive, got %d", 0))
	assert.True(t, IsAppError(nested))
	assert.Equal(t, CodeConfigInvalid, GetCode(nested))
}
