// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/sfxmix/mixer"
)

// Decoder loads a complete WAV file into a mixer.Clip.
type Decoder struct{}

// Decode reads all of r and returns the decoded clip at its native sample
// rate and channel count. go-audio needs a seeker, so the data is buffered
// in memory first; clips are fully resident anyway.
func (Decoder) Decode(r io.Reader) (*mixer.Clip, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec := gowav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav data: %w", err)
	}
	if buf == nil || buf.Format == nil {
		return nil, ErrUnsupportedWavLayout
	}

	return clipFromIntBuffer(buf, int(dec.BitDepth))
}

// clipFromIntBuffer normalizes go-audio integer samples into float32 [-1, 1].
func clipFromIntBuffer(buf *goaudio.IntBuffer, bitDepth int) (*mixer.Clip, error) {
	var maxVal float32
	switch bitDepth {
	case 8:
		maxVal = 128.0
	case 16:
		maxVal = 32768.0
	case 24:
		maxVal = 8388608.0
	case 32:
		maxVal = 2147483648.0
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}

	samples := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float32(v) / maxVal
	}

	return &mixer.Clip{
		Data:       samples,
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
	}, nil
}
