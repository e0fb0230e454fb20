// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/sfxmix/mixer"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Decoder loads a complete MP3 file into a mixer.Clip.
type Decoder struct{}

// Decode reads all of r and returns the decoded clip. go-mp3 always outputs
// 16-bit little-endian stereo, so the clip has two channels.
func (Decoder) Decode(r io.Reader) (*mixer.Clip, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return decodeFrom(dec)
}

// decodeFrom drains dec, converting 16-bit LE byte pairs to float32.
func decodeFrom(dec mp3Reader) (*mixer.Clip, error) {
	buf := make([]byte, 8192)

	var samples []float32
	for {
		n, err := dec.Read(buf)
		// Convert complete byte pairs; a trailing odd byte cannot happen
		// with go-mp3's frame-aligned output.
		for i := 0; i+1 < n; i += 2 {
			v := int16(uint16(buf[i]) | uint16(buf[i+1])<<8)
			samples = append(samples, float32(v)/32768.0)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding mp3 data: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return &mixer.Clip{
		Data:       samples,
		SampleRate: dec.SampleRate(),
		Channels:   2,
	}, nil
}
