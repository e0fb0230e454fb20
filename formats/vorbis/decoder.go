// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/sfxmix/mixer"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Decoder loads a complete Ogg Vorbis file into a mixer.Clip.
type Decoder struct{}

// Decode reads all of r and returns the decoded clip at its native sample
// rate and channel count.
func (Decoder) Decode(r io.Reader) (*mixer.Clip, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening ogg vorbis stream: %w", err)
	}

	return decodeFrom(dec)
}

// decodeFrom drains dec. oggvorbis yields float32 samples directly; Read
// reports the number of values written, always a whole number of frames.
func decodeFrom(dec oggReader) (*mixer.Clip, error) {
	channels := dec.Channels()
	buf := make([]float32, 4096*channels)

	var samples []float32
	for {
		n, err := dec.Read(buf)
		samples = append(samples, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding ogg vorbis data: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return &mixer.Clip{
		Data:       samples,
		SampleRate: dec.SampleRate(),
		Channels:   channels,
	}, nil
}
