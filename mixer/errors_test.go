package mixer

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrDuplicateSound", ErrDuplicateSound, "sound name already registered"},
		{"ErrSoundNotFound", ErrSoundNotFound, "sound not found"},
		{"ErrNoFreeChannel", ErrNoFreeChannel, "no free channel"},
		{"ErrUnknownCategory", ErrUnknownCategory, "unknown sound category"},
		{"ErrUnknownPriority", ErrUnknownPriority, "unknown sound priority"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatalf("%s is nil", tt.name)
			}
			if tt.err.Error() != tt.msg {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.msg)
			}
		})
	}
}

func TestSentinelErrors_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("playing %q: %w", "boom", ErrSoundNotFound)
	if !errors.Is(wrapped, ErrSoundNotFound) {
		t.Error("errors.Is() failed for wrapped ErrSoundNotFound")
	}

	if errors.Is(wrapped, ErrNoFreeChannel) {
		t.Error("errors.Is() matched an unrelated sentinel")
	}
}
