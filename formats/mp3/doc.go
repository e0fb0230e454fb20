// SPDX-License-Identifier: EPL-2.0

// Package mp3 loads MP3 files as playback clips.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files into
// mixer.Clip values:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("theme.mp3")
//	clip, err := decoder.Decode(file)
//
// go-mp3 outputs 16-bit stereo regardless of the source channel layout, so
// decoded clips always have two channels.
package mp3
