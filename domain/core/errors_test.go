package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorTaxonomy(t *testing.T) {
	invalid := NewInvalidArgumentError("confidenceLevel", "must lie in [0,1]")
	if !IsInvalidArgument(invalid) {
		t.Errorf("expected invalid argument, got %v", invalid)
	}
	if IsNotSupported(invalid) {
		t.Errorf("invalid argument must not match not supported")
	}

	unsupported := NewNotSupportedError("sample size for interval", "t-distribution mean analyzer")
	if !IsNotSupported(unsupported) {
		t.Errorf("expected not supported, got %v", unsupported)
	}

	wrapped := fmt.Errorf("welch comparer: %w", invalid)
	if !errors.Is(wrapped, ErrInvalidArgument) {
		t.Errorf("wrapping must preserve the sentinel")
	}
}
