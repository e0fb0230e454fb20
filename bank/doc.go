// SPDX-License-Identifier: EPL-2.0

// Package bank loads sound descriptors from YAML manifests.
//
// # Manifests
//
// A manifest lists sounds by name, file and playback defaults:
//
//	sounds:
//	  - name: explosion
//	    file: sfx/explosion.wav
//	    category: sfx
//	    volume: 0.8
//	  - name: menu-theme
//	    file: music/menu.ogg
//	    category: music
//	    loop: true
//
// # Decoders
//
// Files are matched to decoders by extension through a Registry. The
// packages under formats/ provide ready-made decoders for WAV, MP3, Ogg
// Vorbis and AIFF:
//
//	formats := bank.NewRegistry()
//	formats.Register("wav", wav.Decoder{})
//	formats.Register("ogg", vorbis.Decoder{})
//
// # Loading
//
// A Loader decodes every file a manifest names and hands the resulting
// sounds to a Registrar, usually an sfxmix.System. Duplicate names are
// skipped so a bank can be loaded on top of an already populated system;
// decode failures abort the load.
package bank
