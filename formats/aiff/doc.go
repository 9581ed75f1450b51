// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding and encoding on top of
// github.com/go-audio/aiff.
//
// # Decoding
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("source.aiff")
//	src, err := decoder.Decode(file)
//
// The decoder returns an audio.Source yielding interleaved float32 samples
// in [-1.0, 1.0]. Only 16-bit PCM AIFF is supported for input. Non-seekable
// readers are buffered in memory, since go-audio needs an io.ReadSeeker.
//
// # Encoding
//
// Encode persists a regenerated buffer as 16- or 24-bit PCM AIFF,
// preserving its channel count and sample rate:
//
//	out, _ := os.Create("texture.aiff")
//	err := aiff.Encode(out, buf, 16)
//
// # Errors
//
//   - ErrNotAiffFile: the input is not a valid AIFF stream
//   - ErrOnlyPCM16bitSupported: input sample format other than PCM 16-bit
//   - ErrUnsupportedAiffLayout: valid AIFF without a usable format chunk
//   - ErrEmptyBuffer, ErrUnsupportedBitDepth: encoder argument errors
package aiff
