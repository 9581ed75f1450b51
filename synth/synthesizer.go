// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"context"
	"math/rand/v2"

	"github.com/Nated4wgy/Audiorandomiser/audio"
)

// Option configures a synthesis run.
type Option func(*options)

type options struct {
	progress func(fraction float64)
	rng      *rand.Rand
}

// WithProgress installs a completion callback. It is invoked once per
// snippet iteration with a monotonically nondecreasing fraction in [0,1],
// ending at exactly 1. The callback runs on the calling goroutine; a GUI
// or CLI owner is expected to marshal it to its own presentation layer.
func WithProgress(fn func(fraction float64)) Option {
	return func(o *options) { o.progress = fn }
}

// WithRand supplies a caller-owned random generator, overriding the seed in
// Params. The generator must not be shared across concurrent invocations.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// newRand builds the per-invocation generator: PCG seeded from the repeat
// code when one was given, from entropy otherwise.
func newRand(s Seed) *rand.Rand {
	if s.Deterministic() {
		return rand.New(rand.NewPCG(s.Value(), s.Value()))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Synthesize regenerates src into a new buffer of exactly p.OutputFrames
// frames by overlap-adding randomly positioned, windowed snippets.
//
// Each iteration draws a random start offset, multiplies the snippet by the
// window, and accumulates it into the output at the write cursor; the
// cursor then advances by p.Hop() so consecutive snippets crossfade over
// p.OverlapFrames frames. The final snippet is truncated at the output
// boundary, so the result is always exactly p.OutputFrames long. After the
// loop every sample is scaled by p.Gain.
//
// Overlapping window contributions are summed, not normalized: a high
// overlap deliberately stacks energy, and keeping the output in range is
// the caller's gain decision. Samples are not clipped here; int-PCM
// conversion saturates on encode.
//
// With a deterministic seed the same (source, params) pair produces
// bit-identical output on every run.
//
// Cancellation is cooperative: ctx is checked at each iteration boundary
// and the context error is returned with a nil buffer, so no partial
// result ever surfaces as success.
func Synthesize(ctx context.Context, src *audio.Buffer, p Params, opts ...Option) (*audio.Buffer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if src == nil || len(src.Data) == 0 {
		return nil, ErrEmptySource
	}
	if src.Channels <= 0 {
		return nil, audio.ErrInvalidChannels
	}
	if src.Frames() < p.SnippetFrames {
		return nil, ErrSourceTooShort
	}

	if ctx == nil {
		ctx = context.Background()
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.rng
	if rng == nil {
		rng = newRand(p.Seed)
	}

	win, err := BuildCrossfadeWindow(p.SnippetFrames, p.OverlapFrames, p.Shape)
	if err != nil {
		return nil, err
	}

	channels := src.Channels
	out, err := audio.NewBuffer(channels, p.OutputFrames, src.SampleRate)
	if err != nil {
		return nil, err
	}

	hop := p.Hop()
	maxStart := src.Frames() - p.SnippetFrames

	for pos := 0; pos < p.OutputFrames; pos += hop {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := 0
		if maxStart > 0 {
			start = rng.IntN(maxStart + 1)
		}

		frames := p.SnippetFrames
		if rem := p.OutputFrames - pos; frames > rem {
			frames = rem
		}

		for f := range frames {
			w := win[f]
			srcBase := (start + f) * channels
			outBase := (pos + f) * channels
			for c := range channels {
				out.Data[outBase+c] += src.Data[srcBase+c] * w
			}
		}

		if o.progress != nil {
			frac := float64(pos+hop) / float64(p.OutputFrames)
			if frac > 1 {
				frac = 1
			}
			o.progress(frac)
		}
	}

	if p.Gain != 1 {
		for i := range out.Data {
			out.Data[i] *= p.Gain
		}
	}

	return out, nil
}
