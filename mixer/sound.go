// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"strings"
	"sync"
)

// Category groups sounds for volume scaling purposes. Each category has its
// own level in Levels, independent of the master level.
type Category int

const (
	Music Category = iota
	SFX
	UI
	Ambient
	Voice

	categoryCount
)

func (c Category) String() string {
	switch c {
	case Music:
		return "music"
	case SFX:
		return "sfx"
	case UI:
		return "ui"
	case Ambient:
		return "ambient"
	case Voice:
		return "voice"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// ParseCategory maps a category name (case-insensitive) to its Category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "music":
		return Music, nil
	case "sfx":
		return SFX, nil
	case "ui":
		return UI, nil
	case "ambient":
		return Ambient, nil
	case "voice":
		return Voice, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Priority ranks a sound for channel allocation. The pool currently does not
// preempt busy channels, so priority is carried on the channel but a High
// request against a full pool still fails like a Low one.
type Priority int

const (
	PriorityLow    Priority = 0
	PriorityMedium Priority = 128
	PriorityHigh   Priority = 256
)

// ParsePriority maps a priority name (case-insensitive) to its Priority.
// The empty string maps to PriorityMedium.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "medium":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	case "high":
		return PriorityHigh, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPriority, s)
}

const (
	minPitch = -3.0
	maxPitch = 3.0
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampPitch(v float64) float64 {
	if v < minPitch {
		return minPitch
	}
	if v > maxPitch {
		return maxPitch
	}
	return v
}

// Sound is the descriptor for a registered sound: a clip reference plus the
// playback parameters authored for it. Volume, pitch and spatial blend are
// clamped on every write, so a Sound read from the registry always satisfies
// its documented ranges. Sounds are never mutated for per-call overrides;
// see System.PlayWith.
type Sound struct {
	Name     string
	Clip     *Clip
	Category Category
	Loop     bool
	Priority Priority

	volume  float64 // [0, 1]
	pitch   float64 // [-3, 3]
	spatial float64 // [0, 1]; 0 = fully 2D, 1 = fully positional
}

// NewSound creates a descriptor with volume 1, pitch 1 and spatial blend 0.
func NewSound(name string, clip *Clip, category Category) *Sound {
	return &Sound{
		Name:     name,
		Clip:     clip,
		Category: category,
		Priority: PriorityMedium,
		volume:   1,
		pitch:    1,
	}
}

func (s *Sound) Volume() float64       { return s.volume }
func (s *Sound) Pitch() float64        { return s.pitch }
func (s *Sound) SpatialBlend() float64 { return s.spatial }

// SetVolume stores v clamped to [0, 1].
func (s *Sound) SetVolume(v float64) { s.volume = clamp01(v) }

// SetPitch stores p clamped to [-3, 3].
func (s *Sound) SetPitch(p float64) { s.pitch = clampPitch(p) }

// SetSpatialBlend stores b clamped to [0, 1].
func (s *Sound) SetSpatialBlend(b float64) { s.spatial = clamp01(b) }

// Registry maps sound names to descriptors. It is immutable in spirit after
// asset loading, but registration itself is concurrent-safe.
type Registry struct {
	sounds map[string]*Sound

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		sounds: make(map[string]*Sound),
		mtx:    &sync.Mutex{},
	}
}

// Add registers s under its name. The first registration of a name wins:
// adding a second sound with the same name keeps the existing entry and
// returns ErrDuplicateSound. Callers treat this as a warning, not a failure.
func (r *Registry) Add(s *Sound) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.sounds[s.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSound, s.Name)
	}
	r.sounds[s.Name] = s

	return nil
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (*Sound, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s, ok := r.sounds[name]
	return s, ok
}

// Len returns the number of registered sounds.
func (r *Registry) Len() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return len(r.sounds)
}
