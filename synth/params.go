// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"time"
)

// Gain policy range. The math tolerates any positive gain; the range is an
// intentional guard rail against silent or blown-out output.
const (
	MinGain float32 = 0.05
	MaxGain float32 = 2.0
)

// Params describes one synthesis run. All lengths are in sample frames at
// the source's sample rate; use FramesForDuration to convert from wall time.
type Params struct {
	// SnippetFrames is the length of each randomly placed snippet.
	SnippetFrames int

	// OverlapFrames is the crossfade region shared by consecutive snippets.
	// The write cursor advances by SnippetFrames-OverlapFrames each step.
	OverlapFrames int

	// OutputFrames is the exact length of the output buffer.
	OutputFrames int

	// Gain scales the finished output. Must lie within [MinGain, MaxGain].
	Gain float32

	// Shape selects the snippet window.
	Shape Shape

	// Seed makes the run reproducible when set. The zero value seeds from
	// entropy.
	Seed Seed
}

// Validate checks the parameter set before any buffer is allocated.
//
// The overlap rule depends on the window shape, matching how the windows
// are built: a Hann bell needs overlap < snippet, while a linear window
// carries an explicit fade at each end and needs 2*overlap < snippet.
func (p Params) Validate() error {
	if p.SnippetFrames <= 0 {
		return ErrInvalidSnippetLen
	}
	if p.OverlapFrames < 0 {
		return ErrInvalidOverlap
	}

	switch p.Shape {
	case ShapeLinear:
		if 2*p.OverlapFrames >= p.SnippetFrames {
			return ErrOverlapTooLarge
		}
	case ShapeHann:
		if p.OverlapFrames >= p.SnippetFrames {
			return ErrOverlapTooLarge
		}
	default:
		return ErrUnknownShape
	}

	if p.OutputFrames <= 0 {
		return ErrInvalidOutputLen
	}
	if p.Gain < MinGain || p.Gain > MaxGain {
		return ErrGainOutOfRange
	}

	return nil
}

// Hop returns the write-cursor step between consecutive snippets, floored
// at one frame so the loop always advances.
func (p Params) Hop() int {
	hop := p.SnippetFrames - p.OverlapFrames
	if hop < 1 {
		hop = 1
	}
	return hop
}

// FramesForDuration converts a duration to a frame count at the given
// sample rate, rounding to nearest.
func FramesForDuration(d time.Duration, sampleRate int) int {
	return int(math.Round(d.Seconds() * float64(sampleRate)))
}
