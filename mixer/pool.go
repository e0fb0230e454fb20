// SPDX-License-Identifier: EPL-2.0

package mixer

// DefaultChannels is the pool capacity used when none is given.
const DefaultChannels = 20

// Pool is the fixed-size collection of playback channels. It never grows:
// when every channel is busy, Acquire fails and the play request is dropped.
//
// Selection is a deterministic linear scan in pool order; the first idle
// channel wins. There is no priority-based preemption of busy channels, so
// high-priority requests fail under exhaustion exactly like low-priority
// ones. That is a known limitation, kept deliberately.
type Pool struct {
	channels []*Channel
}

// NewPool builds a pool of capacity channels, each backed by a player from
// newPlayer. A capacity of zero or less falls back to DefaultChannels.
func NewPool(capacity int, newPlayer func() Player) *Pool {
	if capacity <= 0 {
		capacity = DefaultChannels
	}
	channels := make([]*Channel, capacity)
	for i := range channels {
		channels[i] = newChannel(i, newPlayer())
	}
	return &Pool{channels: channels}
}

// Cap returns the fixed channel count.
func (p *Pool) Cap() int { return len(p.channels) }

// Acquire returns the first idle channel, or ErrNoFreeChannel when the pool
// is exhausted. It never blocks.
func (p *Pool) Acquire() (*Channel, error) {
	for _, ch := range p.channels {
		if !ch.Busy() {
			return ch, nil
		}
	}
	return nil, ErrNoFreeChannel
}

// Bound returns the first channel currently bound to s.
func (p *Pool) Bound(s *Sound) (*Channel, bool) {
	return p.boundExcept(s, nil)
}

func (p *Pool) boundExcept(s *Sound, skip *Channel) (*Channel, bool) {
	if s == nil {
		return nil, false
	}
	for _, ch := range p.channels {
		if ch == skip {
			continue
		}
		if ch.Busy() && ch.Sound() == s {
			return ch, true
		}
	}
	return nil, false
}

// ForEach calls fn for every channel in pool order.
func (p *Pool) ForEach(fn func(*Channel)) {
	for _, ch := range p.channels {
		fn(ch)
	}
}

// PauseAll pauses every playing channel. Idle and already paused channels
// are left alone.
func (p *Pool) PauseAll() {
	for _, ch := range p.channels {
		ch.Pause()
	}
}

// ResumeAll resumes every paused channel.
func (p *Pool) ResumeAll() {
	for _, ch := range p.channels {
		ch.Resume()
	}
}

// StopAll stops every busy channel, returning the whole pool to idle.
func (p *Pool) StopAll() {
	for _, ch := range p.channels {
		ch.Stop()
	}
}
