// SPDX-License-Identifier: EPL-2.0

// Package aiff loads AIFF files as playback clips.
//
// This package uses github.com/go-audio/aiff to decode AIFF files into
// mixer.Clip values:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("chime.aiff")
//	clip, err := decoder.Decode(file)
//
// Only 16-bit PCM AIFF files are supported.
package aiff
