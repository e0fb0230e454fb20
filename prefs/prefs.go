// SPDX-License-Identifier: EPL-2.0

package prefs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/sfxmix/mixer"
)

// Settings holds the user-facing volume levels, all in [0, 1].
type Settings struct {
	Master  float64 `yaml:"master"`
	Music   float64 `yaml:"music"`
	SFX     float64 `yaml:"sfx"`
	UI      float64 `yaml:"ui"`
	Ambient float64 `yaml:"ambient"`
	Voice   float64 `yaml:"voice"`
}

// Default returns settings with every level at full volume.
func Default() Settings {
	return Settings{Master: 1, Music: 1, SFX: 1, UI: 1, Ambient: 1, Voice: 1}
}

// Category returns the stored level for c, or 1 for a category these
// settings do not track.
func (s Settings) Category(c mixer.Category) float64 {
	switch c {
	case mixer.Music:
		return s.Music
	case mixer.SFX:
		return s.SFX
	case mixer.UI:
		return s.UI
	case mixer.Ambient:
		return s.Ambient
	case mixer.Voice:
		return s.Voice
	}
	return 1
}

// Apply pushes every level into sys.
func (s Settings) Apply(sys Volumes) {
	sys.SetMasterVolume(s.Master)
	sys.SetVolume(mixer.Music, s.Music)
	sys.SetVolume(mixer.SFX, s.SFX)
	sys.SetVolume(mixer.UI, s.UI)
	sys.SetVolume(mixer.Ambient, s.Ambient)
	sys.SetVolume(mixer.Voice, s.Voice)
}

// Volumes is the part of sfxmix.System that preferences feed into.
type Volumes interface {
	SetMasterVolume(v float64)
	SetVolume(c mixer.Category, v float64)
}

// Load reads YAML settings from r. Levels the document omits stay at the
// full-volume default; stored values are clamped to [0, 1].
func Load(r io.Reader) (Settings, error) {
	raw := make(map[string]float64)
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return Default(), fmt.Errorf("parsing volume settings: %w", err)
	}

	s := Default()
	read := func(key string, dst *float64) {
		if v, ok := raw[key]; ok {
			*dst = clamp01(v)
		}
	}
	read("master", &s.Master)
	read("music", &s.Music)
	read("sfx", &s.SFX)
	read("ui", &s.UI)
	read("ambient", &s.Ambient)
	read("voice", &s.Voice)

	return s, nil
}

// Save writes s to w as YAML.
func Save(w io.Writer, s Settings) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("writing volume settings: %w", err)
	}
	return enc.Close()
}

// LoadFile reads settings from path. A missing file is not an error, the
// defaults come back instead.
func LoadFile(path string) (Settings, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("opening volume settings: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// SaveFile writes settings to path, replacing any existing file.
func SaveFile(path string, s Settings) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating volume settings file: %w", err)
	}

	if err := Save(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
