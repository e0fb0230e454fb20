// SPDX-License-Identifier: EPL-2.0

// Package vorbis loads Ogg Vorbis files as playback clips.
//
// Decoding is delegated to github.com/jfreymuth/oggvorbis, which already
// produces float32 samples, so clips come back at the file's native sample
// rate and channel count with no conversion step.
package vorbis
