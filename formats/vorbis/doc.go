// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding on top of
// github.com/jfreymuth/oggvorbis, so compressed source material can feed
// the regenerator without a prior conversion step.
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("source.ogg")
//	src, err := decoder.Decode(file)
//
// The decoder returns an audio.Source yielding interleaved float32 samples
// in [-1.0, 1.0], preserving the stream's channel count and sample rate.
//
// Decoding is input-only; regenerated output is persisted as WAV or AIFF.
package vorbis
