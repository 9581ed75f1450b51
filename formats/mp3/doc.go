// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 decoding on top of
// github.com/hajimehoshi/go-mp3, so compressed source material can feed
// the regenerator without a prior conversion step.
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("source.mp3")
//	src, err := decoder.Decode(file)
//
// The decoder returns an audio.Source yielding interleaved float32 samples
// in [-1.0, 1.0]. go-mp3 always produces two-channel output at the file's
// native sample rate.
//
// Decoding is input-only; regenerated output is persisted as WAV or AIFF.
package mp3
