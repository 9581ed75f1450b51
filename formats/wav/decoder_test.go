// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
)

func TestDecoder_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := []int16{100, -100, 200, -200, 300, -300}
	wavData := new(bytes.Buffer)
	if err := WriteWAV16(wavData, 8000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	src, err := Decoder{}.Decode(wavData)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	buf := make([]float32, 16)
	n, err := src.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}

	for i, want := range samples {
		got := buf[i] * 32768.0
		if math.Abs(float64(got)-float64(want)) > 1 {
			t.Errorf("sample %d = %v, want ≈%d", i, got, want)
		}
	}
}

func TestDecoder_NotWav(t *testing.T) {
	t.Parallel()

	junk := bytes.NewReader(append([]byte("OGGSnope"), make([]byte, 64)...))

	_, err := Decoder{}.Decode(junk)
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode(junk) error = %v, want ErrNotWavFile", err)
	}
}

func TestDecoder_Truncated(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("RIFF")))
	if err == nil {
		t.Error("Decode(truncated) error = nil, want error")
	}
}

func TestDecoder_EOFAfterData(t *testing.T) {
	t.Parallel()

	wavData := new(bytes.Buffer)
	WriteWAV16(wavData, 8000, []int16{1, 2, 3})

	src, err := Decoder{}.Decode(wavData)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	buf := make([]float32, 8)
	if _, err := src.ReadSamples(buf); err != nil && err != io.EOF {
		t.Fatalf("first ReadSamples() error = %v", err)
	}

	n, err := src.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after data = (%d, %v), want (0, io.EOF)", n, err)
	}
}
