// SPDX-License-Identifier: EPL-2.0

package mixer

// Levels holds the master volume and one volume per category, each clamped
// to [0, 1]. The effective volume of a playing sound is the product of its
// own (possibly scaled) volume, its category level and the master level.
//
// Levels does not cache effective volumes: whenever a level changes, the
// owner must re-run Apply over the pool so every bound channel picks up the
// new product immediately.
type Levels struct {
	master   float64
	category [categoryCount]float64
}

// NewLevels returns levels with master and every category at full volume.
func NewLevels() *Levels {
	l := &Levels{master: 1}
	for i := range l.category {
		l.category[i] = 1
	}
	return l
}

// Master returns the master level.
func (l *Levels) Master() float64 { return l.master }

// Category returns the level for c.
func (l *Levels) Category(c Category) float64 {
	if c < 0 || c >= categoryCount {
		return 1
	}
	return l.category[c]
}

// SetMaster stores v clamped to [0, 1].
func (l *Levels) SetMaster(v float64) { l.master = clamp01(v) }

// SetCategory stores v clamped to [0, 1] for c.
func (l *Levels) SetCategory(c Category, v float64) {
	if c < 0 || c >= categoryCount {
		return
	}
	l.category[c] = clamp01(v)
}

// Effective computes the playback volume for a sound at its authored volume.
func (l *Levels) Effective(s *Sound) float64 {
	return l.EffectiveBase(s.Volume(), s.Category)
}

// EffectiveBase computes the playback volume for an arbitrary base volume in
// category c. Used when a per-call volume scale replaces the authored value.
func (l *Levels) EffectiveBase(base float64, c Category) float64 {
	return clamp01(base) * l.Category(c) * l.master
}

// Apply recomputes and sets the volume of every bound channel in the pool
// from the channel's base volume and the current levels.
func (l *Levels) Apply(p *Pool) {
	p.ForEach(func(ch *Channel) {
		s := ch.Sound()
		if s == nil {
			return
		}
		ch.SetVolume(l.EffectiveBase(ch.BaseVolume(), s.Category))
	})
}
