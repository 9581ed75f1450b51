package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrOnlyPCM16bitSupported indicates only 16-bit PCM is supported
	ErrOnlyPCM16bitSupported = errors.New("only 16-bit PCM AIFF is supported")

	// ErrUnsupportedAiffLayout indicates an unsupported AIFF layout
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")

	// ErrEmptyBuffer indicates an encode request with no samples
	ErrEmptyBuffer = errors.New("buffer has no samples")

	// ErrUnsupportedBitDepth indicates a bit depth other than 16 or 24
	ErrUnsupportedBitDepth = errors.New("bit depth must be 16 or 24")
)
