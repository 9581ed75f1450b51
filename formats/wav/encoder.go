// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/Nated4wgy/Audiorandomiser/audio"
	"github.com/Nated4wgy/Audiorandomiser/utils"
)

// Encode writes buf as a PCM WAV file at the given bit depth (16 or 24),
// preserving the buffer's channel count and sample rate. Samples outside
// [-1,1] saturate during the PCM conversion.
//
// go-audio's encoder patches the RIFF sizes after the data chunk, hence
// the io.WriteSeeker requirement.
func Encode(w io.WriteSeeker, buf *audio.Buffer, bitDepth int) error {
	if buf == nil || len(buf.Data) == 0 {
		return ErrEmptyBuffer
	}
	if bitDepth != 16 && bitDepth != 24 {
		return ErrUnsupportedBitDepth
	}

	enc := gowav.NewEncoder(w, buf.SampleRate, bitDepth, buf.Channels, 1)

	ib := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: buf.Channels,
			SampleRate:  buf.SampleRate,
		},
		SourceBitDepth: bitDepth,
		Data:           make([]int, len(buf.Data)),
	}

	switch bitDepth {
	case 16:
		for i, s := range buf.Data {
			ib.Data[i] = int(utils.Float32ToInt16(s))
		}
	case 24:
		for i, s := range buf.Data {
			ib.Data[i] = int(utils.Float32ToInt24(s))
		}
	}

	if err := enc.Write(ib); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
