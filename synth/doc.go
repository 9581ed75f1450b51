// SPDX-License-Identifier: EPL-2.0

// Package synth implements the overlap-add snippet synthesis engine.
//
// The engine regenerates a source buffer into a new "textured" buffer:
// snippets are cut from random positions in the source, tapered with a
// window, and summed into the output at an advancing write cursor so that
// consecutive snippets crossfade over a configurable overlap region.
//
// # Windows
//
// Two shapes are available:
//   - ShapeLinear: linear fade-in over the overlap, flat sustain, linear
//     fade-out. Crossfades sum to unity, so the texture keeps constant
//     level through the overlap.
//   - ShapeHann: a cosine bell over the whole snippet. Softer grain edges;
//     works best around 50% overlap, though any legal overlap is allowed.
//
// BuildWindow produces a standalone symmetric window; the synthesizer uses
// BuildCrossfadeWindow, which takes the overlap into account for the
// linear shape.
//
// # Parameters
//
// Params carries everything in sample frames. Converting from wall-clock
// units happens at the edge:
//
//	p := synth.Params{
//	    SnippetFrames: synth.FramesForDuration(250*time.Millisecond, rate),
//	    OverlapFrames: synth.FramesForDuration(100*time.Millisecond, rate),
//	    OutputFrames:  synth.FramesForDuration(30*time.Second, rate),
//	    Gain:          1.0,
//	    Shape:         synth.ShapeLinear,
//	}
//
// Validate rejects parameter sets before any allocation. The overlap rule
// is shape-specific: Hann needs overlap < snippet, Linear needs
// 2*overlap < snippet.
//
// # Repeatability
//
// A Seed makes a run reproducible. SeedFromCode accepts the user-facing
// "repeat code": numeric text is used directly, anything else is hashed.
// The zero Seed draws from entropy. The generator is owned by the
// invocation; nothing is shared, so concurrent runs are safe.
//
//	out, err := synth.Synthesize(ctx, src, p)
//
// # Progress and cancellation
//
// Synthesize is sequential and does no I/O. Callers that run it on a
// worker goroutine can observe it through WithProgress and cancel it
// through the context; both are checked once per snippet iteration.
//
// # Level
//
// Overlapping windows are summed as-is. With the linear shape at most two
// snippets cover any output sample, so the stack is bounded by twice the
// window peak; a Hann window with overlap approaching the snippet length
// stacks many snippets and can push the output well past full scale. The
// engine does not normalize or clip; choose Gain accordingly, and note
// that PCM encoding saturates.
package synth
