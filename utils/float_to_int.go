package utils

// Float32ToInt16 converts a normalized sample to 16-bit PCM, saturating
// anything outside [-1,1]. Gain applied upstream can push samples past
// full scale; this is where they clip.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Float32ToInt24 converts a normalized sample to 24-bit PCM with the same
// saturation rule as Float32ToInt16.
func Float32ToInt24(x float32) int32 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int32(x * 8388607.0)
}
