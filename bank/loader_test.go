// SPDX-License-Identifier: EPL-2.0

package bank

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/ik5/sfxmix/mixer"
)

// captureRegistrar records registered sounds and rejects duplicate names.
type captureRegistrar struct {
	sounds map[string]*mixer.Sound
}

func newCaptureRegistrar() *captureRegistrar {
	return &captureRegistrar{sounds: make(map[string]*mixer.Sound)}
}

func (c *captureRegistrar) Register(snd *mixer.Sound) error {
	if _, ok := c.sounds[snd.Name]; ok {
		return fmt.Errorf("adding %q: %w", snd.Name, mixer.ErrDuplicateSound)
	}
	c.sounds[snd.Name] = snd
	return nil
}

func memOpen(name string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(name)), nil
}

func testLoader() *Loader {
	formats := NewRegistry()
	formats.Register("wav", stubDecoder{clip: &mixer.Clip{SampleRate: 44100, Channels: 1}})
	formats.Register("ogg", stubDecoder{clip: &mixer.Clip{SampleRate: 48000, Channels: 2}})

	return &Loader{Formats: formats, Open: memOpen}
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	const src = `
sounds:
  - name: explosion
    file: explosion.wav
    category: sfx
    volume: 0.8
  - name: menu-theme
    file: menu.ogg
    category: music
    loop: true
    priority: high
`

	dst := newCaptureRegistrar()
	n, err := testLoader().Load(strings.NewReader(src), dst)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if n != 2 {
		t.Fatalf("Load() = %d sounds, want 2", n)
	}

	boom := dst.sounds["explosion"]
	if boom == nil {
		t.Fatal("explosion not registered")
	}
	if boom.Category != mixer.SFX {
		t.Errorf("explosion category = %v, want SFX", boom.Category)
	}
	if boom.Volume() != 0.8 {
		t.Errorf("explosion volume = %v, want 0.8", boom.Volume())
	}
	if boom.Priority != mixer.PriorityMedium {
		t.Errorf("explosion priority = %v, want medium", boom.Priority)
	}

	theme := dst.sounds["menu-theme"]
	if theme == nil {
		t.Fatal("menu-theme not registered")
	}
	if theme.Category != mixer.Music || !theme.Loop {
		t.Errorf("menu-theme = category %v loop %v, want Music looping", theme.Category, theme.Loop)
	}
	if theme.Priority != mixer.PriorityHigh {
		t.Errorf("menu-theme priority = %v, want high", theme.Priority)
	}
	if theme.Clip.SampleRate != 48000 {
		t.Errorf("menu-theme sample rate = %d, want 48000", theme.Clip.SampleRate)
	}
}

func TestLoader_EntryDefaults(t *testing.T) {
	t.Parallel()

	const src = `
sounds:
  - name: blip
    file: blip.wav
`

	dst := newCaptureRegistrar()
	if _, err := testLoader().Load(strings.NewReader(src), dst); err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	blip := dst.sounds["blip"]
	if blip.Category != mixer.SFX {
		t.Errorf("category = %v, want SFX default", blip.Category)
	}
	if blip.Volume() != 1 {
		t.Errorf("volume = %v, want 1 default", blip.Volume())
	}
	if blip.Pitch() != 1 {
		t.Errorf("pitch = %v, want 1 default", blip.Pitch())
	}
}

func TestLoader_DuplicatesSkipped(t *testing.T) {
	t.Parallel()

	const src = `
sounds:
  - name: blip
    file: blip.wav
  - name: blip
    file: other.wav
`

	dst := newCaptureRegistrar()
	n, err := testLoader().Load(strings.NewReader(src), dst)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for duplicate name", err)
	}
	if n != 1 {
		t.Errorf("Load() = %d sounds, want 1", n)
	}
}

func TestLoader_NoDecoder(t *testing.T) {
	t.Parallel()

	const src = `
sounds:
  - name: chant
    file: chant.flac
`

	_, err := testLoader().Load(strings.NewReader(src), newCaptureRegistrar())
	if !errors.Is(err, ErrNoDecoder) {
		t.Errorf("Load() error = %v, want ErrNoDecoder", err)
	}
}

func TestLoader_DecodeFailureAborts(t *testing.T) {
	t.Parallel()

	broken := errors.New("truncated stream")
	l := testLoader()
	l.Formats.Register("wav", stubDecoder{err: broken})

	const src = `
sounds:
  - name: blip
    file: blip.wav
  - name: later
    file: later.ogg
`

	dst := newCaptureRegistrar()
	n, err := l.Load(strings.NewReader(src), dst)
	if !errors.Is(err, broken) {
		t.Errorf("Load() error = %v, want wrapped decode error", err)
	}
	if n != 0 {
		t.Errorf("Load() = %d sounds, want 0 before the failure", n)
	}
	if len(dst.sounds) != 0 {
		t.Errorf("registered %d sounds after failed load, want 0", len(dst.sounds))
	}
}

func TestLoader_UnknownCategory(t *testing.T) {
	t.Parallel()

	const src = `
sounds:
  - name: blip
    file: blip.wav
    category: dialogue
`

	_, err := testLoader().Load(strings.NewReader(src), newCaptureRegistrar())
	if !errors.Is(err, mixer.ErrUnknownCategory) {
		t.Errorf("Load() error = %v, want ErrUnknownCategory", err)
	}
}

func TestLoader_DirPrefix(t *testing.T) {
	t.Parallel()

	var opened []string
	l := testLoader()
	l.Dir = "assets/audio"
	l.Open = func(name string) (io.ReadCloser, error) {
		opened = append(opened, name)
		return memOpen(name)
	}

	const src = `
sounds:
  - name: blip
    file: blip.wav
`

	if _, err := l.Load(strings.NewReader(src), newCaptureRegistrar()); err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if len(opened) != 1 || opened[0] != "assets/audio/blip.wav" {
		t.Errorf("opened %v, want [assets/audio/blip.wav]", opened)
	}
}
