// SPDX-License-Identifier: EPL-2.0

package mixer

// Clip is a fully decoded, in-memory PCM buffer.
//
//	[Data]      = [frame 1] [frame 2] [frame 3] ...
//	[frame *]   = [channel 1] [channel 2] ...
//	[channel *] = [float32] in [-1, 1]
//
// Clips are immutable after creation and may be shared by any number of
// sounds and channels.
type Clip struct {
	Data       []float32
	SampleRate int
	Channels   int
}

// Frames returns the number of sample frames in the clip.
func (c *Clip) Frames() int {
	if c == nil || c.Channels == 0 {
		return 0
	}
	return len(c.Data) / c.Channels
}

// Duration returns the playback length in seconds at the clip's native rate.
func (c *Clip) Duration() float64 {
	if c == nil || c.SampleRate == 0 {
		return 0
	}
	return float64(c.Frames()) / float64(c.SampleRate)
}
