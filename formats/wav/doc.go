// SPDX-License-Identifier: EPL-2.0

// Package wav loads WAV files as playback clips.
//
// It uses the github.com/go-audio library for robust WAV file handling,
// decoding the whole file into a mixer.Clip:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("explosion.wav")
//	clip, err := decoder.Decode(file)
//
// The clip keeps the file's native sample rate and channel count; rate
// adaptation happens at playback time in the output driver. 8, 16, 24 and
// 32 bit PCM files are supported.
package wav
