// SPDX-License-Identifier: EPL-2.0

// Package otodriver plays clips through the operating system audio device
// using github.com/hajimehoshi/oto/v2.
//
// The device runs at a fixed 44.1 kHz stereo float32 layout. Clips at other
// sample rates, mono clips, and pitch-shifted playback are all handled by a
// single linear-interpolation resampling pass on the way out.
//
// A Driver plugs into sfxmix.Config as the player factory:
//
//	drv, err := otodriver.New()
//	if err != nil { ... }
//	sys := sfxmix.New(sfxmix.Config{NewPlayer: drv.NewPlayer})
//
// The device initializes asynchronously. Play requests issued before it is
// ready produce no sound and free their channel on the next update.
package otodriver
