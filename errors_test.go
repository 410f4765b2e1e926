package sm2

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrInvalidQuality,
		ErrInvalidConfig,
	}
	for _, err := range sentinels {
		if err == nil {
			t.Error("sentinel error is nil")
		}
	}
}

func TestSentinelErrorsIsCheck(t *testing.T) {
	// Wrapping with fmt.Errorf %w preserves errors.Is chain.
	wrapped := fmt.Errorf("context: %w", ErrInvalidQuality)
	if !errors.Is(wrapped, ErrInvalidQuality) {
		t.Error("errors.Is(wrapped, ErrInvalidQuality) = false, want true")
	}
	if errors.Is(wrapped, ErrInvalidConfig) {
		t.Error("errors.Is(wrapped, ErrInvalidConfig) = true, want false")
	}
}

func TestSentinelErrorPrefix(t *testing.T) {
	tests := []struct {
		err    error
		prefix string
	}{
		{ErrInvalidQuality, "sm2: "},
		{ErrInvalidConfig, "sm2: "},
	}
	for _, tt := range tests {
		msg := tt.err.Error()
		if len(msg) < len(tt.prefix) || msg[:len(tt.prefix)] != tt.prefix {
			t.Errorf("%v should start with %q, got %q", tt.err, tt.prefix, msg)
		}
	}
}
