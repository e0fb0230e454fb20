// SPDX-License-Identifier: EPL-2.0

// Package events connects game events to sound playback.
//
// A Hub maps event names to handlers. Game code publishes events; audio
// code subscribes sounds to them, so gameplay never talks to the mixer
// directly:
//
//	hub := events.NewHub()
//	off := events.BindSound(hub, sys, "player.hit", "grunt")
//	hub.Publish("player.hit")
//	off()
//
// Every subscription returns its own unsubscribe function, so tearing down
// a scene is symmetric with setting it up.
package events
