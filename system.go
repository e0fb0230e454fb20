// SPDX-License-Identifier: EPL-2.0

package sfxmix

import (
	"fmt"
	"log"
	"sync"

	"github.com/ik5/sfxmix/mixer"
)

// DefaultFadeTime is the fade duration in seconds used when a request does
// not carry its own.
const DefaultFadeTime = 1.0

// Config configures a System. The zero value is usable: it yields a pool of
// mixer.DefaultChannels silent channels, the default fade time and the
// standard logger.
type Config struct {
	// Channels is the fixed pool capacity. Zero or less means
	// mixer.DefaultChannels.
	Channels int

	// NewPlayer builds the playback backend for one channel. Nil means a
	// no-op backend that keeps the System fully functional but silent,
	// useful for servers and tests.
	NewPlayer func() mixer.Player

	// FadeTime is the default fade duration in seconds. Zero or less means
	// DefaultFadeTime.
	FadeTime float64

	// Logger receives the degrade-silently warnings (unknown sound,
	// exhausted pool, duplicate name). Nil means log.Default().
	Logger *log.Logger
}

// System is the playback orchestrator. Construct one with New and share it
// by reference; all methods are concurrent-safe.
type System struct {
	mu sync.Mutex

	log      *log.Logger
	fadeTime float64

	registry *mixer.Registry
	pool     *mixer.Pool
	levels   *mixer.Levels
	fader    *mixer.Fader
	music    *mixer.MusicDesk
}

// New builds a System from cfg.
func New(cfg Config) *System {
	newPlayer := cfg.NewPlayer
	if newPlayer == nil {
		newPlayer = func() mixer.Player { return &nopPlayer{} }
	}
	fadeTime := cfg.FadeTime
	if fadeTime <= 0 {
		fadeTime = DefaultFadeTime
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &System{
		log:      logger,
		fadeTime: fadeTime,
		registry: mixer.NewRegistry(),
		pool:     mixer.NewPool(cfg.Channels, newPlayer),
		levels:   mixer.NewLevels(),
		fader:    mixer.NewFader(),
		music:    mixer.NewMusicDesk(),
	}
}

// Register adds a sound descriptor. A duplicate name keeps the first
// registration, logs a warning and returns mixer.ErrDuplicateSound.
func (s *System) Register(snd *mixer.Sound) error {
	if err := s.registry.Add(snd); err != nil {
		s.log.Printf("sfxmix: duplicate sound %q ignored, first registration wins", snd.Name)
		return err
	}
	return nil
}

// PlayOptions carries the optional parameters of a play request. The zero
// value means an immediate start with the sound's authored volume and pitch.
type PlayOptions struct {
	// FadeIn ramps the sound up from silence over FadeTime.
	FadeIn bool

	// FadeTime is the ramp duration in seconds. Zero or less falls back to
	// the System default.
	FadeTime float64

	// VolumeScale multiplies the sound's authored volume for this playback
	// only. Zero means no scaling; any negative value means silence. The
	// shared descriptor is not touched.
	VolumeScale float64

	// PitchScale multiplies the sound's authored pitch for this playback
	// only. Zero means no scaling.
	PitchScale float64
}

func (o PlayOptions) scales() (vol, pitch float64) {
	vol, pitch = o.VolumeScale, o.PitchScale
	switch {
	case vol == 0:
		vol = 1
	case vol < 0:
		vol = 0
	}
	if pitch == 0 {
		pitch = 1
	}
	return vol, pitch
}

// Play starts the named sound immediately at its effective volume. Missing
// names and an exhausted pool are logged and reported, not fatal.
func (s *System) Play(name string) error {
	return s.PlayWith(name, PlayOptions{})
}

// PlayWith starts the named sound with per-call options. Music-category
// sounds go through the music desk, cross-fading out the current track.
func (s *System) PlayWith(name string, o PlayOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snd, ok := s.registry.Lookup(name)
	if !ok {
		s.log.Printf("sfxmix: play request for unregistered sound %q dropped", name)
		return fmt.Errorf("playing %q: %w", name, mixer.ErrSoundNotFound)
	}

	ch, err := s.pool.Acquire()
	if err != nil {
		s.log.Printf("sfxmix: no free channel for sound %q, request dropped", name)
		return fmt.Errorf("playing %q: %w", name, err)
	}

	volScale, pitchScale := o.scales()
	base := snd.Volume() * volScale
	ch.Bind(snd, base, snd.Pitch()*pitchScale)
	target := s.levels.EffectiveBase(ch.BaseVolume(), snd.Category)

	fadeTime := o.FadeTime
	if fadeTime <= 0 {
		fadeTime = s.fadeTime
	}

	if snd.Category == mixer.Music {
		s.music.Play(snd, ch, s.pool, s.fader, o.FadeIn, fadeTime, target)
		return nil
	}

	if o.FadeIn {
		s.fader.FadeIn(ch, target, fadeTime)
	} else {
		ch.SetVolume(target)
	}
	ch.Start()

	return nil
}

// Stop ends playback of the named sound immediately, cancelling any fade in
// progress on its channel. Stopping a sound that is not registered returns
// mixer.ErrSoundNotFound; stopping one that is not playing is a no-op.
func (s *System) Stop(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, err := s.boundChannel(name)
	if err != nil || ch == nil {
		return err
	}

	s.fader.Cancel(ch)
	ch.Stop()
	return nil
}

// StopFaded ramps the named sound down over fadeTime seconds and stops its
// channel when the ramp reaches silence.
func (s *System) StopFaded(name string, fadeTime float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, err := s.boundChannel(name)
	if err != nil || ch == nil {
		return err
	}

	if fadeTime <= 0 {
		fadeTime = s.fadeTime
	}
	s.fader.FadeOut(ch, fadeTime)
	return nil
}

func (s *System) boundChannel(name string) (*mixer.Channel, error) {
	snd, ok := s.registry.Lookup(name)
	if !ok {
		s.log.Printf("sfxmix: stop request for unregistered sound %q dropped", name)
		return nil, fmt.Errorf("stopping %q: %w", name, mixer.ErrSoundNotFound)
	}
	ch, ok := s.pool.Bound(snd)
	if !ok {
		return nil, nil
	}
	return ch, nil
}

// SetVolume sets the level of one category and re-applies the effective
// volume to every bound channel immediately, retargeting fades in progress.
func (s *System) SetVolume(c mixer.Category, v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.levels.SetCategory(c, v)
	s.applyLevels()
}

// SetMasterVolume sets the master level and re-applies the effective volume
// to every bound channel immediately, retargeting fades in progress.
func (s *System) SetMasterVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.levels.SetMaster(v)
	s.applyLevels()
}

// applyLevels pushes the current levels to every bound channel and points
// any active fade at the channel's new effective volume, so a level change
// lands immediately and the fade does not finish at a stale product.
func (s *System) applyLevels() {
	s.levels.Apply(s.pool)
	s.pool.ForEach(func(ch *mixer.Channel) {
		snd := ch.Sound()
		if snd == nil {
			return
		}
		s.fader.Retarget(ch, s.levels.EffectiveBase(ch.BaseVolume(), snd.Category))
	})
}

// Volume returns the stored level of one category.
func (s *System) Volume(c mixer.Category) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.levels.Category(c)
}

// MasterVolume returns the stored master level.
func (s *System) MasterVolume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.levels.Master()
}

// PauseAll pauses every playing channel.
func (s *System) PauseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pool.PauseAll()
}

// ResumeAll resumes every paused channel.
func (s *System) ResumeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pool.ResumeAll()
}

// StopAll stops every busy channel at once and drops all active fades.
func (s *System) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fader.Reset()
	s.pool.StopAll()
	s.music.Clear()
}

// StopAllFaded ramps every busy channel down over fadeTime seconds.
func (s *System) StopAllFaded(fadeTime float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fadeTime <= 0 {
		fadeTime = s.fadeTime
	}
	s.pool.ForEach(func(ch *mixer.Channel) {
		if ch.Busy() {
			s.fader.FadeOut(ch, fadeTime)
		}
	})
	s.music.Clear()
}

// CurrentMusic returns the name of the current music track, if one is set.
func (s *System) CurrentMusic() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snd, ok := s.music.Current()
	if !ok {
		return "", false
	}
	return snd.Name, true
}

// Active returns the number of busy channels.
func (s *System) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	s.pool.ForEach(func(ch *mixer.Channel) {
		if ch.Busy() {
			n++
		}
	})
	return n
}

// Channels returns the fixed pool capacity.
func (s *System) Channels() int {
	return s.pool.Cap()
}

// Update advances the mixer by dt seconds: active fades tick forward and
// channels whose playback ended naturally return to the pool. Call it once
// per frame from the main loop.
func (s *System) Update(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fader.Tick(dt)

	s.pool.ForEach(func(ch *mixer.Channel) {
		if ch.Finished() {
			s.fader.Cancel(ch)
			ch.Stop()
		}
	})
}

// nopPlayer is the silent backend used when Config.NewPlayer is nil. It has
// no clock, so playback never ends naturally; channels free up on explicit
// stops only.
type nopPlayer struct {
	playing bool
}

func (p *nopPlayer) Start(*mixer.Clip, bool) { p.playing = true }
func (p *nopPlayer) Pause()                  {}
func (p *nopPlayer) Resume()                 {}
func (p *nopPlayer) Stop()                   { p.playing = false }
func (p *nopPlayer) SetVolume(float64)       {}
func (p *nopPlayer) SetPitch(float64)        {}
func (p *nopPlayer) Playing() bool           { return p.playing }
