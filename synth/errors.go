// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	// ErrInvalidWindowLength indicates a negative window length.
	ErrInvalidWindowLength = errors.New("window length must not be negative")

	// ErrUnknownShape indicates a window shape outside the known set.
	ErrUnknownShape = errors.New("unknown window shape")

	// ErrInvalidSnippetLen indicates a snippet length of zero or less.
	ErrInvalidSnippetLen = errors.New("snippet length must be positive")

	// ErrInvalidOverlap indicates a negative overlap length.
	ErrInvalidOverlap = errors.New("overlap length must not be negative")

	// ErrOverlapTooLarge indicates an overlap that leaves no room for the
	// snippet body: overlap >= snippet for Hann, 2*overlap >= snippet for
	// Linear.
	ErrOverlapTooLarge = errors.New("overlap too large for snippet length")

	// ErrInvalidOutputLen indicates an output length of zero or less.
	ErrInvalidOutputLen = errors.New("output length must be positive")

	// ErrGainOutOfRange indicates a gain outside [0.05, 2.0].
	ErrGainOutOfRange = errors.New("gain out of range")

	// ErrEmptySource indicates a nil or zero-length source buffer.
	ErrEmptySource = errors.New("source buffer is empty")

	// ErrSourceTooShort indicates a source shorter than one snippet.
	ErrSourceTooShort = errors.New("source shorter than snippet length")
)
