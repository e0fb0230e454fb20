// SPDX-License-Identifier: EPL-2.0

// Package sfxmix maps logical sound names to playback channels for games
// and other interactive applications.
//
// The package keeps a registry of named sounds, a bounded pool of playback
// channels, per-category and master volume levels, and time-driven fades,
// and composes them behind a single System facade. It does not decode or
// synthesize audio; it orchestrates playback of clips decoded ahead of time
// (see the formats and bank subpackages).
//
// # Quick Start
//
// Build a System, register sounds, and drive it from the frame loop:
//
//	sys := sfxmix.New(sfxmix.Config{NewPlayer: driver.NewPlayer})
//
//	snd := mixer.NewSound("explosion", clip, mixer.SFX)
//	snd.SetVolume(0.8)
//	sys.Register(snd)
//
//	sys.Play("explosion")
//
//	// once per frame:
//	sys.Update(dt)
//
// A System is constructed explicitly and passed to whoever needs it; the
// application root owns its lifecycle. There is no package-level instance.
//
// # Volume Model
//
// Every playing channel's volume is the product of the sound's own volume,
// its category level and the master level. SetVolume and SetMasterVolume
// re-apply that product to every bound channel immediately:
//
//	sys.SetVolume(mixer.SFX, 0.5)
//	sys.SetMasterVolume(0.8)
//
// # Fades and Music
//
// Play requests may ramp in, stop requests may ramp out:
//
//	sys.PlayWith("theme", sfxmix.PlayOptions{FadeIn: true, FadeTime: 2})
//	sys.StopFaded("theme", 1)
//
// Sounds in the Music category are routed through a transition desk: at most
// one track is the current music, and playing a new track cross-fades the
// old one out while the new one starts.
//
// # Per-Call Overrides
//
// PlayOptions carries one-shot volume and pitch scaling. The scales are
// combined with the descriptor locally, for that playback only; the shared
// descriptor is never mutated, so concurrent plays of the same sound cannot
// observe each other's overrides.
//
// # Degradation
//
// Playback failures are deliberately non-fatal. An unregistered name or an
// exhausted pool logs a warning, returns a sentinel error
// (mixer.ErrSoundNotFound, mixer.ErrNoFreeChannel) and drops the request;
// the host application keeps running with a missed sound.
//
// # Concurrency
//
// All System methods are safe to call from any goroutine; state is
// serialized internally. Update is expected to be called from the main
// frame loop with the elapsed time in seconds.
package sfxmix
