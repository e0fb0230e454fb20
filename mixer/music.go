// SPDX-License-Identifier: EPL-2.0

package mixer

// MusicDesk tracks which sound is the current music track and sequences the
// cross-fade when it is replaced. The reference is an association, not
// ownership: the desk never holds a channel, it looks the track's channel up
// in the pool at transition time.
type MusicDesk struct {
	current *Sound
}

func NewMusicDesk() *MusicDesk {
	return &MusicDesk{}
}

// Current returns the sound designated as now-playing music, if any.
func (m *MusicDesk) Current() (*Sound, bool) {
	return m.current, m.current != nil
}

// Clear drops the current-track reference without touching any channel.
func (m *MusicDesk) Clear() {
	m.current = nil
}

// Play makes s the current music track on the already bound channel ch.
// If a previous current track is still bound to some other channel, that
// channel gets a fade-out over fadeTime; the new track does not wait for it.
// The incoming track starts at target volume, either immediately or ramped
// up over fadeTime.
//
// Requesting the track that is already current goes through the same path:
// the old channel fades out and the track restarts on ch.
func (m *MusicDesk) Play(s *Sound, ch *Channel, pool *Pool, fader *Fader, fadeInStart bool, fadeTime, target float64) {
	if m.current != nil {
		if prev, ok := pool.boundExcept(m.current, ch); ok {
			fader.FadeOut(prev, fadeTime)
		}
	}
	m.current = s

	if fadeInStart {
		fader.FadeIn(ch, target, fadeTime)
	} else {
		ch.SetVolume(target)
	}
	ch.Start()
}
