// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// Seed carries the optional "repeat code" that makes a synthesis run
// reproducible. The zero value means no seed: the generator is seeded from
// entropy and two runs will differ.
type Seed struct {
	value uint64
	set   bool
}

// SeedFromValue returns a deterministic seed with the given value.
func SeedFromValue(v uint64) Seed {
	return Seed{value: v, set: true}
}

// SeedFromCode derives a deterministic seed from user-supplied repeat code
// text. Decimal numbers (including negative ones) map directly to their
// integer value; any other text is hashed with FNV-1a so friendly codes like
// "my mix tuesday" work too. Blank text yields the zero Seed.
func SeedFromCode(code string) Seed {
	code = strings.TrimSpace(code)
	if code == "" {
		return Seed{}
	}

	if n, err := strconv.ParseInt(code, 10, 64); err == nil {
		return Seed{value: uint64(n), set: true}
	}
	if n, err := strconv.ParseUint(code, 10, 64); err == nil {
		return Seed{value: n, set: true}
	}

	h := fnv.New64a()
	h.Write([]byte(code))
	return Seed{value: h.Sum64(), set: true}
}

// Deterministic reports whether the seed was set.
func (s Seed) Deterministic() bool { return s.set }

// Value returns the seed value; zero for the unset Seed.
func (s Seed) Value() uint64 { return s.value }
