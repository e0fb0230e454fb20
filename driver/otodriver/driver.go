// SPDX-License-Identifier: EPL-2.0

package otodriver

import (
	"fmt"

	"github.com/hajimehoshi/oto/v2"

	"github.com/ik5/sfxmix/mixer"
)

const (
	// SampleRate is the fixed device rate; clips at other rates are
	// resampled on the fly.
	SampleRate = 44100
	// ChannelCount is the device layout. Mono clips play on both channels.
	ChannelCount = 2
	// BitDepth selects 32-bit float output (oto.FormatFloat32LE).
	BitDepth = 0
)

// Driver owns the operating system audio context and hands out players for
// the channel pool. One driver serves any number of players.
type Driver struct {
	ctx   *oto.Context
	ready chan struct{}
}

// New opens the audio device. The device becomes ready asynchronously;
// sounds started before that are dropped silently.
func New() (*Driver, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}

	return &Driver{ctx: ctx, ready: ready}, nil
}

// Ready reports whether the device has finished initializing.
func (d *Driver) Ready() bool {
	select {
	case <-d.ready:
		return true
	default:
		return false
	}
}

// NewPlayer returns a device-backed player, suitable as the NewPlayer
// factory in sfxmix.Config.
func (d *Driver) NewPlayer() mixer.Player {
	return &player{drv: d, volume: 1, pitch: 1}
}

// player renders one clip at a time through an oto player.
type player struct {
	drv    *Driver
	out    oto.Player
	volume float64
	pitch  float64
}

func (p *player) Start(clip *mixer.Clip, loop bool) {
	p.closeOut()
	if clip == nil || !p.drv.Ready() {
		return
	}

	p.out = p.drv.ctx.NewPlayer(newClipReader(clip, p.pitch, loop))
	p.out.SetVolume(p.volume)
	p.out.Play()
}

func (p *player) Pause() {
	if p.out != nil {
		p.out.Pause()
	}
}

func (p *player) Resume() {
	if p.out != nil {
		p.out.Play()
	}
}

func (p *player) Stop() {
	p.closeOut()
}

func (p *player) SetVolume(v float64) {
	p.volume = v
	if p.out != nil {
		p.out.SetVolume(v)
	}
}

// SetPitch takes effect on the next Start; oto cannot retune a running
// player.
func (p *player) SetPitch(pitch float64) {
	p.pitch = pitch
}

func (p *player) Playing() bool {
	return p.out != nil && p.out.IsPlaying()
}

func (p *player) closeOut() {
	if p.out == nil {
		return
	}
	p.out.Close()
	p.out = nil
}
