// SPDX-License-Identifier: EPL-2.0

// Package prefs persists user volume settings as YAML.
//
// Settings cover the master level plus one level per sound category. A
// document may omit any of them; omitted levels default to full volume, and
// values outside [0, 1] are clamped on load:
//
//	master: 0.8
//	music: 0.5
//	sfx: 1.0
//
// Loaded settings are pushed into a running system with Apply:
//
//	s, err := prefs.LoadFile("volumes.yaml")
//	if err != nil { ... }
//	s.Apply(sys)
package prefs
