// SPDX-License-Identifier: EPL-2.0

package bank

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Entry describes a single sound inside a manifest. Only Name and File are
// required; everything else picks up the descriptor defaults when omitted.
type Entry struct {
	Name     string  `yaml:"name"`
	File     string  `yaml:"file"`
	Category string  `yaml:"category"`
	Volume   float64 `yaml:"volume"`
	Pitch    float64 `yaml:"pitch"`
	Spatial  float64 `yaml:"spatial"`
	Loop     bool    `yaml:"loop"`
	Priority string  `yaml:"priority"`
}

// Manifest lists the sounds that make up a bank.
type Manifest struct {
	Sounds []Entry `yaml:"sounds"`
}

// ParseManifest reads a YAML manifest and validates that every entry names
// both a sound and a file.
func ParseManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("parsing bank manifest: %w", err)
	}

	for i, e := range m.Sounds {
		if e.Name == "" {
			return nil, fmt.Errorf("manifest entry %d: %w", i, ErrMissingName)
		}
		if e.File == "" {
			return nil, fmt.Errorf("manifest entry %q: %w", e.Name, ErrMissingFile)
		}
	}

	return &m, nil
}
