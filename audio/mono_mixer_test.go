// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"
)

func TestMonoMixer_StereoAverage(t *testing.T) {
	t.Parallel()

	// Left channel 0.8, right channel 0.2: mono output must be 0.5
	src := newMockSource(8000, 2, 100, func(sample, channel int) float32 {
		if channel == 0 {
			return 0.8
		}
		return 0.2
	})

	mono := NewMonoMixer(src)

	if mono.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", mono.Channels())
	}
	if mono.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", mono.SampleRate())
	}

	buf := make([]float32, 256)
	total := 0
	for {
		n, err := mono.ReadSamples(buf)
		for i := range n {
			if math.Abs(float64(buf[i])-0.5) > 1e-6 {
				t.Fatalf("sample %d = %v, want 0.5", total+i, buf[i])
			}
		}
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != 100 {
		t.Errorf("read %d mono samples, want 100", total)
	}
}

func TestMonoMixer_MonoPassThrough(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 50, 0.3)
	mono := NewMonoMixer(src)

	buf := make([]float32, 64)
	n, err := mono.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 50 {
		t.Errorf("ReadSamples() n = %d, want 50", n)
	}
	for i := range n {
		if buf[i] != 0.3 {
			t.Fatalf("sample %d = %v, want 0.3 (pass-through)", i, buf[i])
		}
	}
}

func TestMonoMixer_QuadAverage(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 4, 40, func(sample, channel int) float32 {
		return float32(channel) // 0,1,2,3 -> mean 1.5
	})

	mono := NewMonoMixer(src)
	buf := make([]float32, 64)
	n, err := mono.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	for i := range n {
		if math.Abs(float64(buf[i])-1.5) > 1e-6 {
			t.Fatalf("sample %d = %v, want 1.5", i, buf[i])
		}
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	mono := NewMonoMixer(newSilentSource(8000, 2, 10))
	n, err := mono.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}
