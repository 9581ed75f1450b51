// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Distinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrInvalidWindowLength,
		ErrUnknownShape,
		ErrInvalidSnippetLen,
		ErrInvalidOverlap,
		ErrOverlapTooLarge,
		ErrInvalidOutputLen,
		ErrGainOutOfRange,
		ErrEmptySource,
		ErrSourceTooShort,
	}

	for i, a := range sentinels {
		if a == nil {
			t.Fatalf("sentinel %d is nil", i)
		}
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v matches unrelated sentinel %v", a, b)
			}
		}
	}
}

func TestSentinelErrors_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("validating: %w", ErrOverlapTooLarge)
	if !errors.Is(wrapped, ErrOverlapTooLarge) {
		t.Error("errors.Is() failed for wrapped ErrOverlapTooLarge")
	}
}
