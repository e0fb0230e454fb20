// SPDX-License-Identifier: EPL-2.0

// Package mixer provides the core playback-orchestration primitives.
//
// This package contains the building blocks the sfxmix System is assembled
// from:
//   - Sound descriptors and the name Registry
//   - Channel and the fixed-size Pool
//   - Levels for volume composition
//   - Fader for time-driven volume ramps
//   - MusicDesk for music track cross-fades
//
// # Sounds and Clips
//
// A Clip is a decoded PCM buffer; a Sound pairs a clip with authored
// playback parameters:
//
//	snd := mixer.NewSound("explosion", clip, mixer.SFX)
//	snd.SetVolume(0.8)
//	registry.Add(snd)
//
// Volume is clamped to [0, 1], pitch to [-3, 3] and spatial blend to [0, 1]
// on every write. Registration is first-wins: a second Add under the same
// name returns ErrDuplicateSound and leaves the original in place.
//
// # Channels and the Pool
//
// The Pool holds a fixed number of channels (DefaultChannels when
// unspecified) and never grows:
//
//	pool := mixer.NewPool(20, newPlayer)
//	ch, err := pool.Acquire()
//	if errors.Is(err, mixer.ErrNoFreeChannel) {
//	    // request dropped, nothing preempted
//	}
//
// Acquire scans channels in pool order and returns the first idle one. Busy
// channels are never preempted, regardless of the priority of the request.
//
// # Volume Composition
//
// The playback volume of a channel is always the product of three factors:
//
//	effective = base × category level × master level
//
// Levels stores the category and master factors. Changing either one must be
// followed by Apply, which pushes the recomputed product to every bound
// channel; nothing is cached between frames.
//
// # Fades
//
// The Fader ramps channel volumes over time. It is advanced externally, once
// per frame:
//
//	fader.FadeIn(ch, target, 1.5)
//	ch.Start()
//	// each frame:
//	fader.Tick(dt)
//
// A fade-in climbs from silence to its target; a fade-out descends from the
// captured current volume and stops the channel on completion, restoring the
// captured value. Durations of zero or less are instantaneous transitions
// rather than a division by zero. At most one fade runs per channel.
//
// # Music Transitions
//
// MusicDesk remembers the single current music track. Playing a new track
// fades the old track's channel out while the new one starts (optionally
// ramped in); the two fades overlap, producing a cross-fade.
//
// # Error Handling
//
// All failures during normal playback are non-fatal sentinels
// (ErrSoundNotFound, ErrNoFreeChannel, ErrDuplicateSound). The intended
// degradation is a missed sound, never a crash of the host application.
package mixer
