package core

import (
	"errors"
	"fmt"
)

// Inference errors - a single taxonomy shared by every analyzer and comparer
var (
	// ErrInvalidArgument covers missing values, probabilities outside [0,1],
	// negative counts or degrees of freedom, malformed categorical samples and
	// mismatched paired samples.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotSupported marks operations with no closed form for a given analyzer.
	ErrNotSupported = errors.New("operation not supported")
)

// Error constructors with context
func NewInvalidArgumentError(field string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidArgument, field, reason)
}

func NewNotSupportedError(operation string, analyzer string) error {
	return fmt.Errorf("%w: %s has no closed form for %s", ErrNotSupported, operation, analyzer)
}

// Error checking helpers
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsNotSupported(err error) bool {
	return errors.Is(err, ErrNotSupported)
}
