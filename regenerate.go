// SPDX-License-Identifier: EPL-2.0

package audiorandomiser

import (
	"context"
	"fmt"

	"github.com/Nated4wgy/Audiorandomiser/audio"
	"github.com/Nated4wgy/Audiorandomiser/synth"
)

// Regenerate is the high-level pipeline: drain src into memory, convert the
// config to engine parameters at the source's sample rate, and run the
// snippet synthesizer. The result preserves the source's channel count and
// sample rate and is exactly cfg.OutputSeconds long.
//
// Options (progress callback, caller-owned RNG) pass through to
// synth.Synthesize.
//
// Example:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	out, err := audiorandomiser.Regenerate(ctx, src, audiorandomiser.Config{
//	    SnippetMS:     250,
//	    OverlapMS:     100,
//	    OutputSeconds: 30,
//	    Gain:          1.0,
//	    Shape:         synth.ShapeLinear,
//	})
func Regenerate(ctx context.Context, src audio.Source, cfg Config, opts ...synth.Option) (*audio.Buffer, error) {
	if src == nil {
		return nil, audio.ErrNilSource
	}

	buf, err := audio.Collect(src, src.BufSize())
	if err != nil {
		return nil, fmt.Errorf("collecting source: %w", err)
	}

	p, err := cfg.Params(buf.SampleRate)
	if err != nil {
		return nil, err
	}

	return synth.Synthesize(ctx, buf, p, opts...)
}

// RegenerateAtRate resamples the source to targetRate before synthesis, so
// the output carries targetRate instead of the source's rate. Snippet and
// overlap lengths are computed against the target rate.
func RegenerateAtRate(ctx context.Context, src audio.Source, cfg Config, targetRate int, opts ...synth.Option) (*audio.Buffer, error) {
	if src == nil {
		return nil, audio.ErrNilSource
	}
	if targetRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	return Regenerate(ctx, audio.NewResampler(src, targetRate), cfg, opts...)
}

// RegenerateMono folds the source down to one channel before synthesis.
func RegenerateMono(ctx context.Context, src audio.Source, cfg Config, opts ...synth.Option) (*audio.Buffer, error) {
	if src == nil {
		return nil, audio.ErrNilSource
	}

	return Regenerate(ctx, audio.NewMonoMixer(src), cfg, opts...)
}
