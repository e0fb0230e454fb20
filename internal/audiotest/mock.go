// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides playback fakes and canned clips shared by
// tests and examples across the module.
package audiotest

import (
	"math"
	"sync"

	"github.com/ik5/sfxmix/mixer"
)

// FakePlayer implements mixer.Player and records everything forwarded to
// it. It is concurrent-safe so tests can poke it from multiple goroutines.
type FakePlayer struct {
	mu sync.Mutex

	clip    *mixer.Clip
	loop    bool
	volume  float64
	pitch   float64
	playing bool
	paused  bool

	starts int
	stops  int

	volumes []float64
}

// NewFakePlayer returns a fake at pitch 1 and volume 0, not playing.
func NewFakePlayer() *FakePlayer {
	return &FakePlayer{pitch: 1}
}

func (f *FakePlayer) Start(clip *mixer.Clip, loop bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.clip = clip
	f.loop = loop
	f.playing = true
	f.paused = false
	f.starts++
}

func (f *FakePlayer) Pause() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.paused = true
}

func (f *FakePlayer) Resume() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.paused = false
}

func (f *FakePlayer) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.playing = false
	f.paused = false
	f.stops++
}

func (f *FakePlayer) SetVolume(v float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.volume = v
	f.volumes = append(f.volumes, v)
}

func (f *FakePlayer) SetPitch(p float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pitch = p
}

func (f *FakePlayer) Playing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.playing && !f.paused
}

// Finish simulates the backend running out of audio, as a one-shot clip
// does when it reaches its last frame.
func (f *FakePlayer) Finish() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.playing = false
}

// Volume returns the last volume forwarded to the player.
func (f *FakePlayer) Volume() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.volume
}

// Pitch returns the last pitch forwarded to the player.
func (f *FakePlayer) Pitch() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.pitch
}

// Clip returns the clip handed to the last Start.
func (f *FakePlayer) Clip() *mixer.Clip {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.clip
}

// Loop reports the loop flag handed to the last Start.
func (f *FakePlayer) Loop() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.loop
}

// Starts returns the number of Start calls.
func (f *FakePlayer) Starts() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.starts
}

// Stops returns the number of Stop calls.
func (f *FakePlayer) Stops() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.stops
}

// Volumes returns every volume forwarded to the player, in call order.
func (f *FakePlayer) Volumes() []float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]float64, len(f.volumes))
	copy(out, f.volumes)
	return out
}

// FakeDeck is a player factory that keeps every fake it hands out, so a
// test can reach the player behind pool channel i as Players[i].
type FakeDeck struct {
	Players []*FakePlayer
}

// NewPlayer satisfies the factory signature expected by mixer.NewPool and
// sfxmix.Config.
func (d *FakeDeck) NewPlayer() mixer.Player {
	p := NewFakePlayer()
	d.Players = append(d.Players, p)
	return p
}

// Beep returns a mono sine clip of the given length in frames.
func Beep(sampleRate, frames int, frequency float64) *mixer.Clip {
	data := make([]float32, frames)
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		data[i] = float32(math.Sin(2 * math.Pi * frequency * t))
	}
	return &mixer.Clip{Data: data, SampleRate: sampleRate, Channels: 1}
}

// Silence returns a silent clip with the given frame count and channels.
func Silence(sampleRate, channels, frames int) *mixer.Clip {
	return &mixer.Clip{
		Data:       make([]float32, frames*channels),
		SampleRate: sampleRate,
		Channels:   channels,
	}
}
