// SPDX-License-Identifier: EPL-2.0

// Package audiorandomiser regenerates audio into new textures by
// overlap-adding randomly positioned, windowed snippets of a source
// recording.
//
// A source file of any length becomes an output of any requested length:
// short snippets are cut from random positions, tapered with a linear or
// Hann window, and crossfaded into the output at a fixed hop. The result
// keeps the spectral character of the source while scrambling its
// structure.
//
// # Supported Formats
//
// Source material can be decoded from:
//   - WAV (PCM 16-bit) via formats/wav
//   - AIFF (PCM 16-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// Output is written as WAV or AIFF (16- or 24-bit PCM) with the encoders
// in the same format packages.
//
// # Quick Start
//
//	// Decode the source
//	file, _ := os.Open("source.wav")
//	src, _ := wav.Decoder{}.Decode(file)
//
//	// Regenerate 30 seconds of texture
//	out, err := audiorandomiser.Regenerate(ctx, src, audiorandomiser.Config{
//	    SnippetMS:     250,
//	    OverlapMS:     100,
//	    OutputSeconds: 30,
//	    Gain:          1.0,
//	    Shape:         synth.ShapeLinear,
//	})
//
//	// Persist it
//	dst, _ := os.Create("texture.wav")
//	wav.Encode(dst, out, 16)
//
// # Repeatable Results
//
// Set Repeatable and a RepeatCode to make runs reproducible:
//
//	cfg.Repeatable = true
//	cfg.RepeatCode = "42"
//
// The same source, config, and code always produce bit-identical output.
// Without a code each run draws fresh randomness.
//
// # Pipeline Variants
//
// RegenerateAtRate resamples the source first (audio.Resampler) and
// RegenerateMono folds it to one channel (audio.MonoMixer). For full
// control, use the audio and synth packages directly: audio.Collect turns
// any Source into a Buffer, and synth.Synthesize is the engine itself with
// progress and cancellation hooks.
//
// # Responsiveness
//
// Synthesis is a plain synchronous call. Interactive callers run it on
// their own goroutine, watch it through synth.WithProgress, and cancel it
// through the context.
package audiorandomiser
