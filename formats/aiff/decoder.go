// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/sfxmix/mixer"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decoder loads a complete AIFF file into a mixer.Clip.
type Decoder struct{}

// Decode reads all of r and returns the decoded clip. Only 16-bit PCM AIFF
// files are supported. go-audio needs a seeker, so the data is buffered in
// memory first.
func (Decoder) Decode(r io.Reader) (*mixer.Clip, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()
	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	return decodeFrom(dec, format)
}

// decodeFrom drains dec into a clip, normalizing 16-bit samples to float32.
func decodeFrom(dec aiffReader, format *goaudio.Format) (*mixer.Clip, error) {
	intBuf := &goaudio.IntBuffer{
		Data:   make([]int, 4096),
		Format: format,
	}

	var samples []float32
	for {
		n, err := dec.PCMBuffer(intBuf)
		for i := 0; i < n; i++ {
			samples = append(samples, float32(intBuf.Data[i])/32768.0)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding aiff data: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return &mixer.Clip{
		Data:       samples,
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
	}, nil
}
