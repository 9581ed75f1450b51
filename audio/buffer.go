// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// Buffer holds a fully decoded block of audio: interleaved float32 samples
// in [-1,1], tagged with channel count and sample rate. It is the in-memory
// exchange format between decoders, the snippet synthesizer, and encoders.
type Buffer struct {
	// Data is channel-interleaved: frame f, channel c lives at Data[f*Channels+c].
	Data       []float32
	Channels   int
	SampleRate int
}

// NewBuffer allocates a zeroed buffer of frames*channels samples.
func NewBuffer(channels, frames, sampleRate int) (*Buffer, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if frames < 0 {
		return nil, ErrInvalidFrames
	}

	return &Buffer{
		Data:       make([]float32, frames*channels),
		Channels:   channels,
		SampleRate: sampleRate,
	}, nil
}

// Frames returns the number of sample frames (samples per channel).
func (b *Buffer) Frames() int {
	if b == nil || b.Channels <= 0 {
		return 0
	}
	return len(b.Data) / b.Channels
}

// Duration returns the playback time of the buffer at its sample rate.
func (b *Buffer) Duration() time.Duration {
	if b == nil || b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(b.Frames()) / float64(b.SampleRate) * float64(time.Second))
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	if b == nil {
		return nil
	}

	data := make([]float32, len(b.Data))
	copy(data, b.Data)

	return &Buffer{
		Data:       data,
		Channels:   b.Channels,
		SampleRate: b.SampleRate,
	}
}

// Source returns a Source that streams the buffer's samples from the start.
// Each call returns an independent cursor, so one buffer can feed several
// consumers (e.g., an encoder and a resampler).
func (b *Buffer) Source() Source {
	return &bufferSource{buf: b}
}

// Collect drains src into a Buffer, reading bufSize samples at a time.
// It is the load half of the decode -> synthesize -> encode pipeline;
// the synthesizer needs random access to the whole source, so streaming
// stops here.
func Collect(src Source, bufSize int) (*Buffer, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if src.Channels() <= 0 {
		return nil, ErrInvalidChannels
	}
	if bufSize <= 0 {
		bufSize = 4096
	}

	out := &Buffer{
		Channels:   src.Channels(),
		SampleRate: src.SampleRate(),
	}
	tmp := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(tmp)
		if n > 0 {
			out.Data = append(out.Data, tmp[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	// Drop any trailing partial frame a misbehaving source may produce.
	if rem := len(out.Data) % out.Channels; rem != 0 {
		out.Data = out.Data[:len(out.Data)-rem]
	}

	return out, nil
}

// bufferSource streams a Buffer's samples through the Source interface.
type bufferSource struct {
	buf *Buffer
	pos int // samples consumed
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *bufferSource) Channels() int   { return s.buf.Channels }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.buf.Channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if s.pos >= len(s.buf.Data) {
		return 0, io.EOF
	}

	n := copy(dst, s.buf.Data[s.pos:])
	s.pos += n

	if s.pos >= len(s.buf.Data) {
		return n, io.EOF
	}
	return n, nil
}
