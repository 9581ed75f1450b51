// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"strings"
)

// Shape selects the fade curve applied at snippet boundaries.
type Shape int

const (
	// ShapeLinear is a linear crossfade: straight fade-in, flat sustain,
	// straight fade-out.
	ShapeLinear Shape = iota

	// ShapeHann is a cosine bell spanning the whole snippet.
	ShapeHann
)

func (s Shape) String() string {
	switch s {
	case ShapeLinear:
		return "linear"
	case ShapeHann:
		return "hann"
	default:
		return "unknown"
	}
}

// ParseShape maps a user-facing shape name to a Shape. It accepts the short
// names "linear" and "hann" as well as the longer UI labels
// "linear crossfade" and "hann (cosine)", case-insensitively.
func ParseShape(name string) (Shape, error) {
	switch {
	case strings.EqualFold(name, "linear"),
		strings.EqualFold(name, "linear crossfade"):
		return ShapeLinear, nil
	case strings.EqualFold(name, "hann"),
		strings.EqualFold(name, "hann (cosine)"),
		strings.EqualFold(name, "hanning"):
		return ShapeHann, nil
	default:
		return 0, ErrUnknownShape
	}
}

// Window is a per-sample multiplier curve in [0,1], applied to a snippet to
// taper its edges. The same window is reused across all channels.
type Window []float32

// BuildWindow returns a symmetric window of the given length. Linear is a
// triangle/trapezoid built from two half-length fades; Hann is
// 0.5*(1-cos(2*pi*i/(length-1))). Both reach exactly 0 at the endpoints and
// exactly 1 at the top for length > 2.
//
// A length of 0 or 1 yields the single-sample window {1} (no fade).
// A negative length is rejected with ErrInvalidWindowLength.
func BuildWindow(length int, shape Shape) (Window, error) {
	switch shape {
	case ShapeLinear:
		return BuildCrossfadeWindow(length, length/2, ShapeLinear)
	case ShapeHann:
		return BuildCrossfadeWindow(length, 0, ShapeHann)
	default:
		return nil, ErrUnknownShape
	}
}

// BuildCrossfadeWindow returns the snippet window used by the synthesizer.
//
// For ShapeLinear the window fades linearly from 0 to 1 over the first
// overlap samples, sustains at 1, and fades back to 0 over the last overlap
// samples. An overlap of 0 disables fading entirely (all ones).
//
// For ShapeHann the overlap argument is ignored and the cosine bell spans
// the whole snippet; the effective crossfade region is whatever overlap the
// synthesizer advances by.
func BuildCrossfadeWindow(length, overlap int, shape Shape) (Window, error) {
	if length < 0 {
		return nil, ErrInvalidWindowLength
	}
	if overlap < 0 {
		return nil, ErrInvalidOverlap
	}
	if length <= 1 {
		return Window{1}, nil
	}

	switch shape {
	case ShapeHann:
		win := make(Window, length)
		for i := range win {
			win[i] = float32(0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(length-1))))
		}
		return win, nil

	case ShapeLinear:
		if overlap == 0 {
			win := make(Window, length)
			for i := range win {
				win[i] = 1
			}
			return win, nil
		}
		if 2*overlap > length {
			return nil, ErrOverlapTooLarge
		}

		win := make(Window, length)
		fade := rampUp(overlap)
		copy(win, fade)
		for i := overlap; i < length-overlap; i++ {
			win[i] = 1
		}
		for i := range overlap {
			win[length-1-i] = fade[i]
		}
		return win, nil

	default:
		return nil, ErrUnknownShape
	}
}

// rampUp returns n samples rising linearly from 0 to exactly 1.
// A single-sample ramp is just {0}, matching a hard edge.
func rampUp(n int) []float32 {
	ramp := make([]float32, n)
	if n == 1 {
		return ramp
	}
	for i := range ramp {
		ramp[i] = float32(i) / float32(n-1)
	}
	return ramp
}
