// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// The decoder reads canonical PCM 16-bit WAV files into the audio.Source
// streaming interface; the encoder persists a synthesized audio.Buffer as
// a 16- or 24-bit PCM WAV via github.com/go-audio/wav.
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("source.wav")
//	src, err := decoder.Decode(file)
//
// The decoder returns an audio.Source yielding interleaved float32 samples
// in [-1.0, 1.0]. Any channel count and sample rate is accepted; only the
// canonical 44-byte header layout with PCM 16-bit samples is supported.
//
// # Encoding
//
// Encode writes a regenerated buffer, preserving its channel count and
// sample rate:
//
//	out, _ := os.Create("texture.wav")
//	err := wav.Encode(out, buf, 16)
//
// Samples pushed past full scale by gain saturate during PCM conversion.
//
// For mono int16 streams there is also WriteWAV16, a minimal-allocation
// fast path that writes the 44-byte header and raw little-endian data to
// any io.Writer.
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrOnlyPCM16bitSupported: sample format other than PCM 16-bit
//   - ErrUnsupportedWavLayout, ErrUnsupportedWavChunks: non-canonical layout
//   - ErrEmptyBuffer, ErrUnsupportedBitDepth: encoder argument errors
package wav
