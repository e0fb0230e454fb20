// SPDX-License-Identifier: EPL-2.0

package otodriver

import (
	"io"
	"math"

	"github.com/ik5/sfxmix/mixer"
)

const bytesPerFrame = ChannelCount * 4 // float32 LE per channel

// minRate bounds the playback rate away from zero. Reverse playback is not
// supported, negative pitches play forward at the minimum rate.
const minRate = 0.01

// clipReader streams a clip as float32 LE stereo at the device rate. Rate
// conversion and pitch share one linear-interpolation pass; a mono clip is
// written to both output channels.
type clipReader struct {
	clip *mixer.Clip
	rate float64
	pos  float64
	loop bool
}

func newClipReader(clip *mixer.Clip, pitch float64, loop bool) *clipReader {
	rate := float64(clip.SampleRate) / SampleRate * pitch
	if rate < minRate {
		rate = minRate
	}

	return &clipReader{clip: clip, rate: rate, loop: loop}
}

func (r *clipReader) Read(p []byte) (int, error) {
	frames := r.clip.Frames()
	if frames == 0 {
		return 0, io.EOF
	}

	n := 0
	for n+bytesPerFrame <= len(p) {
		if r.pos >= float64(frames) {
			if !r.loop {
				if n == 0 {
					return 0, io.EOF
				}
				return n, nil
			}
			r.pos = math.Mod(r.pos, float64(frames))
		}

		left, right := r.frameAt(r.pos, frames)
		putFloat32LE(p[n:], left)
		putFloat32LE(p[n+4:], right)
		n += bytesPerFrame
		r.pos += r.rate
	}

	return n, nil
}

// frameAt samples the clip at fractional frame position pos.
func (r *clipReader) frameAt(pos float64, frames int) (left, right float32) {
	i := int(pos)
	frac := float32(pos - float64(i))

	next := i + 1
	if next >= frames {
		if r.loop {
			next = 0
		} else {
			next = i
		}
	}

	c := r.clip.Channels
	left = lerp(r.clip.Data[i*c], r.clip.Data[next*c], frac)
	if c == 1 {
		return left, left
	}
	right = lerp(r.clip.Data[i*c+1], r.clip.Data[next*c+1], frac)
	return left, right
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func putFloat32LE(buf []byte, v float32) {
	bits := math.Float32bits(v)
	buf[0] = byte(bits)
	buf[1] = byte(bits >> 8)
	buf[2] = byte(bits >> 16)
	buf[3] = byte(bits >> 24)
}
