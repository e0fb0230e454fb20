// SPDX-License-Identifier: EPL-2.0

package bank

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/sfxmix/mixer"
)

// Registrar receives the sounds a loader produces. sfxmix.System satisfies
// this interface.
type Registrar interface {
	Register(snd *mixer.Sound) error
}

// Loader decodes the files a manifest names and registers the resulting
// sounds. The zero value is not usable; Formats must carry at least one
// decoder.
type Loader struct {
	// Formats resolves file extensions to decoders.
	Formats *Registry

	// Dir is prepended to every manifest file path.
	Dir string

	// Open overrides how files are opened. Defaults to os.Open.
	Open func(name string) (io.ReadCloser, error)
}

// Load parses a manifest from r and registers every sound it names with
// dst. Duplicate names are skipped, first registration wins; any other
// failure aborts the load. Returns the number of sounds registered.
func (l *Loader) Load(r io.Reader, dst Registrar) (int, error) {
	m, err := ParseManifest(r)
	if err != nil {
		return 0, err
	}

	return l.LoadManifest(m, dst)
}

// LoadFile is Load reading the manifest from path.
func (l *Loader) LoadFile(path string, dst Registrar) (int, error) {
	f, err := l.open(path)
	if err != nil {
		return 0, fmt.Errorf("opening bank manifest: %w", err)
	}
	defer f.Close()

	return l.Load(f, dst)
}

// LoadManifest registers every sound in m with dst.
func (l *Loader) LoadManifest(m *Manifest, dst Registrar) (int, error) {
	loaded := 0
	for _, e := range m.Sounds {
		snd, err := l.buildSound(e)
		if err != nil {
			return loaded, err
		}

		if err := dst.Register(snd); err != nil {
			if errors.Is(err, mixer.ErrDuplicateSound) {
				continue
			}
			return loaded, fmt.Errorf("registering sound %q: %w", e.Name, err)
		}
		loaded++
	}

	return loaded, nil
}

func (l *Loader) buildSound(e Entry) (*mixer.Sound, error) {
	category := mixer.SFX
	if e.Category != "" {
		c, err := mixer.ParseCategory(e.Category)
		if err != nil {
			return nil, fmt.Errorf("sound %q: %w", e.Name, err)
		}
		category = c
	}

	priority, err := mixer.ParsePriority(e.Priority)
	if err != nil {
		return nil, fmt.Errorf("sound %q: %w", e.Name, err)
	}

	clip, err := l.decodeFile(e.File)
	if err != nil {
		return nil, fmt.Errorf("sound %q: %w", e.Name, err)
	}

	snd := mixer.NewSound(e.Name, clip, category)
	snd.Loop = e.Loop
	snd.Priority = priority
	snd.SetSpatialBlend(e.Spatial)
	// Zero means unset in the manifest, keep the descriptor defaults.
	if e.Volume > 0 {
		snd.SetVolume(e.Volume)
	}
	if e.Pitch != 0 {
		snd.SetPitch(e.Pitch)
	}

	return snd, nil
}

func (l *Loader) decodeFile(name string) (*mixer.Clip, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	dec, ok := l.Formats.Get(format)
	if !ok {
		return nil, fmt.Errorf("file %q (format %q): %w", name, format, ErrNoDecoder)
	}

	f, err := l.open(filepath.Join(l.Dir, name))
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", name, err)
	}
	defer f.Close()

	clip, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", name, err)
	}
	return clip, nil
}

func (l *Loader) open(name string) (io.ReadCloser, error) {
	if l.Open != nil {
		return l.Open(name)
	}
	return os.Open(name)
}
