// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize  = errors.New("dst size must be multiple of channels")
	ErrInvalidChannels = errors.New("channel count must be positive")
	ErrInvalidFrames   = errors.New("frame count must not be negative")
	ErrNilSource       = errors.New("source must not be nil")
)
