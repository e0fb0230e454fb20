// SPDX-License-Identifier: EPL-2.0

package mixer

// Player is the playback backend behind a channel. The driver/otodriver
// package implements it on a real audio device; tests substitute fakes.
//
// Implementations are not required to honor pitch exactly; a backend that
// cannot retune simply ignores SetPitch.
type Player interface {
	// Start begins playback of clip from its first frame.
	Start(clip *Clip, loop bool)
	// Pause suspends playback without losing position.
	Pause()
	// Resume continues paused playback.
	Resume()
	// Stop ends playback and discards position.
	Stop()
	// SetVolume sets the playback volume in [0, 1].
	SetVolume(v float64)
	// SetPitch sets the playback rate factor.
	SetPitch(p float64)
	// Playing reports whether the backend is still producing audio.
	Playing() bool
}

// ChannelState tracks what a channel is doing with its player.
type ChannelState int

const (
	Idle ChannelState = iota
	Playing
	Paused
)

func (s ChannelState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return "invalid"
}

// Channel is one unit of the playback pool. It is bound to at most one sound
// at a time and owns a Player for the lifetime of the pool. A channel is
// borrowed from the pool by Acquire and returns to Idle when playback stops,
// naturally or explicitly.
type Channel struct {
	id     int
	player Player
	state  ChannelState

	sound    *Sound
	base     float64 // descriptor volume × per-call scale, before category/master
	volume   float64 // live volume actually sent to the player
	pitch    float64
	priority Priority
}

func newChannel(id int, p Player) *Channel {
	return &Channel{
		id:     id,
		player: p,
		pitch:  1,
	}
}

func (c *Channel) ID() int             { return c.id }
func (c *Channel) State() ChannelState { return c.state }
func (c *Channel) Busy() bool          { return c.state != Idle }
func (c *Channel) Sound() *Sound       { return c.sound }
func (c *Channel) Volume() float64     { return c.volume }
func (c *Channel) Pitch() float64      { return c.pitch }
func (c *Channel) Priority() Priority  { return c.priority }

// BaseVolume is the channel's pre-mix volume: the descriptor volume after any
// per-call scaling, before the category and master factors are applied.
func (c *Channel) BaseVolume() float64 { return c.base }

// Bind configures the channel from a descriptor. base and pitch arrive
// already combined with any per-call scaling; they are clamped again here so
// the channel upholds its own ranges regardless of the caller.
func (c *Channel) Bind(s *Sound, base, pitch float64) {
	c.sound = s
	c.base = clamp01(base)
	c.pitch = clampPitch(pitch)
	c.priority = s.Priority
	c.player.SetPitch(c.pitch)
}

// Start begins playback of the bound sound's clip.
func (c *Channel) Start() {
	if c.sound == nil {
		return
	}
	c.player.Start(c.sound.Clip, c.sound.Loop)
	c.state = Playing
}

// Pause suspends a playing channel. Idle and paused channels are unaffected.
func (c *Channel) Pause() {
	if c.state != Playing {
		return
	}
	c.player.Pause()
	c.state = Paused
}

// Resume continues a paused channel. Other states are unaffected.
func (c *Channel) Resume() {
	if c.state != Paused {
		return
	}
	c.player.Resume()
	c.state = Playing
}

// Stop ends playback and releases the binding, returning the channel to the
// pool's idle set.
func (c *Channel) Stop() {
	if c.state != Idle {
		c.player.Stop()
	}
	c.state = Idle
	c.sound = nil
	c.base = 0
	c.priority = PriorityLow
}

// SetVolume stores v clamped to [0, 1] and forwards it to the player.
func (c *Channel) SetVolume(v float64) {
	c.volume = clamp01(v)
	c.player.SetVolume(c.volume)
}

// Finished reports that the channel thinks it is playing but the backend has
// run out of audio, meaning playback ended naturally.
func (c *Channel) Finished() bool {
	return c.state == Playing && !c.player.Playing()
}
