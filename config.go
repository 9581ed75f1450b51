// SPDX-License-Identifier: EPL-2.0

package audiorandomiser

import (
	"math"

	"github.com/Nated4wgy/Audiorandomiser/synth"
)

// Config is the user-facing parameter surface in human units: snippet and
// overlap in milliseconds, output length in seconds. Params converts it to
// the engine's frame-based parameters once the source sample rate is known.
type Config struct {
	// SnippetMS is the snippet size in milliseconds.
	SnippetMS float64

	// OverlapMS is the crossfade/overlap length in milliseconds.
	OverlapMS float64

	// OutputSeconds is the target output length in seconds.
	OutputSeconds float64

	// Gain scales the output; accepted range is [0.05, 2.0].
	Gain float64

	// Shape selects the snippet window.
	Shape synth.Shape

	// Repeatable requests deterministic output seeded from RepeatCode.
	Repeatable bool

	// RepeatCode is the user's repeat code; numeric text is used directly,
	// anything else is hashed. Ignored unless Repeatable is set.
	RepeatCode string
}

// Params converts the config to engine parameters at the given sample rate
// and validates the result. Snippet length is floored at one frame and
// overlap at zero, matching the millisecond rounding a user would expect.
func (c Config) Params(sampleRate int) (synth.Params, error) {
	if sampleRate <= 0 {
		return synth.Params{}, ErrInvalidSampleRate
	}
	if c.SnippetMS <= 0 {
		return synth.Params{}, synth.ErrInvalidSnippetLen
	}
	if c.OverlapMS < 0 {
		return synth.Params{}, synth.ErrInvalidOverlap
	}
	if c.OutputSeconds <= 0 {
		return synth.Params{}, synth.ErrInvalidOutputLen
	}

	var seed synth.Seed
	if c.Repeatable {
		seed = synth.SeedFromCode(c.RepeatCode)
		if !seed.Deterministic() {
			return synth.Params{}, ErrEmptyRepeatCode
		}
	}

	rate := float64(sampleRate)
	snippet := int(math.Round(c.SnippetMS / 1000.0 * rate))
	if snippet < 1 {
		snippet = 1
	}
	overlap := int(math.Round(c.OverlapMS / 1000.0 * rate))
	if overlap < 0 {
		overlap = 0
	}

	p := synth.Params{
		SnippetFrames: snippet,
		OverlapFrames: overlap,
		OutputFrames:  int(math.Round(c.OutputSeconds * rate)),
		Gain:          float32(c.Gain),
		Shape:         c.Shape,
		Seed:          seed,
	}

	if err := p.Validate(); err != nil {
		return synth.Params{}, err
	}

	return p, nil
}
