// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"io"
	"math"
	"testing"
)

// fakeMP3Reader feeds raw 16-bit little-endian PCM bytes to the source.
type fakeMP3Reader struct {
	data []byte
	pos  int
	rate int
}

func (f *fakeMP3Reader) SampleRate() int { return f.rate }

func (f *fakeMP3Reader) Read(p []byte) (int, error) {
	if f.pos >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func pcm16Bytes(samples ...int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		out[2*i] = byte(s)
		out[2*i+1] = byte(uint16(s) >> 8)
	}
	return out
}

func TestSource_Conversion(t *testing.T) {
	t.Parallel()

	fake := &fakeMP3Reader{
		data: pcm16Bytes(32767, -32768, 16384, 0),
		rate: 44100,
	}
	src := &source{dec: fake, sampleRate: 44100, channels: 2, buf: make([]byte, 64)}

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}

	wants := []float64{32767.0 / 32768, -1, 0.5, 0}
	for i, want := range wants {
		if math.Abs(float64(dst[i])-want) > 1e-6 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	fake := &fakeMP3Reader{data: pcm16Bytes(100, 200), rate: 44100}
	src := &source{dec: fake, sampleRate: 44100, channels: 2, buf: make([]byte, 64)}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("first ReadSamples() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("first ReadSamples() n = %d, want 2", n)
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	fake := &fakeMP3Reader{rate: 48000}
	src := &source{dec: fake, sampleRate: 48000, channels: 2, buf: make([]byte, 8192)}

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestDecoder_Garbage(t *testing.T) {
	t.Parallel()

	junk := bytes.NewReader(make([]byte, 32))
	if _, err := (Decoder{}).Decode(junk); err == nil {
		t.Error("Decode(junk) error = nil, want error")
	}
}
