// SPDX-License-Identifier: EPL-2.0

package audiorandomiser

import "errors"

var (
	// ErrEmptyRepeatCode indicates a repeatable run without a repeat code.
	ErrEmptyRepeatCode = errors.New("repeat code must not be empty when repeatable")

	// ErrInvalidSampleRate indicates a sample rate of zero or less.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
