// SPDX-License-Identifier: EPL-2.0

package synth

import "testing"

func TestSeed_ZeroValue(t *testing.T) {
	t.Parallel()

	var s Seed
	if s.Deterministic() {
		t.Error("zero Seed reports Deterministic() = true")
	}
	if s.Value() != 0 {
		t.Errorf("zero Seed Value() = %d, want 0", s.Value())
	}
}

func TestSeedFromValue(t *testing.T) {
	t.Parallel()

	s := SeedFromValue(42)
	if !s.Deterministic() {
		t.Error("SeedFromValue(42).Deterministic() = false")
	}
	if s.Value() != 42 {
		t.Errorf("SeedFromValue(42).Value() = %d, want 42", s.Value())
	}

	// Zero is a legitimate deterministic seed, distinct from "unset"
	if !SeedFromValue(0).Deterministic() {
		t.Error("SeedFromValue(0).Deterministic() = false")
	}
}

func TestSeedFromCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		code          string
		deterministic bool
	}{
		{"decimal", "12345", true},
		{"negative decimal", "-7", true},
		{"padded decimal", "  42  ", true},
		{"text", "my mix tuesday", true},
		{"blank", "", false},
		{"whitespace only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SeedFromCode(tt.code)
			if s.Deterministic() != tt.deterministic {
				t.Errorf("SeedFromCode(%q).Deterministic() = %v, want %v",
					tt.code, s.Deterministic(), tt.deterministic)
			}
		})
	}
}

func TestSeedFromCode_NumericValue(t *testing.T) {
	t.Parallel()

	if got := SeedFromCode("12345").Value(); got != 12345 {
		t.Errorf("SeedFromCode(\"12345\").Value() = %d, want 12345", got)
	}

	// Trimmed text maps to the same seed
	if SeedFromCode(" 42 ").Value() != SeedFromCode("42").Value() {
		t.Error("padded and bare numeric codes produced different seeds")
	}
}

func TestSeedFromCode_TextStable(t *testing.T) {
	t.Parallel()

	a := SeedFromCode("texture alpha")
	b := SeedFromCode("texture alpha")
	c := SeedFromCode("texture beta")

	if a.Value() != b.Value() {
		t.Error("identical text codes produced different seeds")
	}
	if a.Value() == c.Value() {
		t.Error("different text codes produced the same seed")
	}
}
