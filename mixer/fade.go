// SPDX-License-Identifier: EPL-2.0

package mixer

type fadeDirection int

const (
	fadeIn fadeDirection = iota
	fadeOut
)

// fadeJob ramps one channel's volume over a duration. Jobs are advanced by
// Fader.Tick and carry no shared state; at most one job exists per channel.
type fadeJob struct {
	ch       *Channel
	dir      fadeDirection
	duration float64

	target float64 // fade-in destination volume
	start  float64 // volume captured when a fade-out began
	vol    float64 // current ramp position
}

// Fader owns the active fade jobs and advances them once per frame. It is
// not safe for concurrent use; the owning System serializes access.
type Fader struct {
	jobs map[*Channel]*fadeJob
}

func NewFader() *Fader {
	return &Fader{jobs: make(map[*Channel]*fadeJob)}
}

// Active reports whether ch has a fade in progress.
func (f *Fader) Active(ch *Channel) bool {
	_, ok := f.jobs[ch]
	return ok
}

// Len returns the number of fades in progress.
func (f *Fader) Len() int { return len(f.jobs) }

// FadeIn ramps ch from silence up to target over duration seconds. The
// channel volume is set to zero immediately; the caller starts playback.
// A duration of zero or less is an instantaneous transition: the volume
// jumps straight to target and no job is created.
//
// Starting a fade replaces any fade already running on the channel.
func (f *Fader) FadeIn(ch *Channel, target, duration float64) {
	target = clamp01(target)
	if duration <= 0 {
		delete(f.jobs, ch)
		ch.SetVolume(target)
		return
	}
	ch.SetVolume(0)
	f.jobs[ch] = &fadeJob{
		ch:       ch,
		dir:      fadeIn,
		duration: duration,
		target:   target,
	}
}

// FadeOut ramps ch from its current volume down to silence over duration
// seconds, then stops the channel and restores the captured pre-fade volume
// so the channel value is reusable. A duration of zero or less stops the
// channel immediately.
func (f *Fader) FadeOut(ch *Channel, duration float64) {
	start := ch.Volume()
	if duration <= 0 {
		delete(f.jobs, ch)
		ch.Stop()
		ch.SetVolume(start)
		return
	}
	f.jobs[ch] = &fadeJob{
		ch:       ch,
		dir:      fadeOut,
		duration: duration,
		start:    start,
		vol:      start,
	}
}

// Retarget points an active fade at a newly computed effective volume, so a
// master or category level change mid-fade does not leave the ramp heading
// for a stale destination. A fade-in continues from its current ramp
// position toward target; a fade-out keeps ramping to silence but restores
// target when it stops. Channels without a fade are untouched.
func (f *Fader) Retarget(ch *Channel, target float64) {
	job, ok := f.jobs[ch]
	if !ok {
		return
	}
	target = clamp01(target)
	switch job.dir {
	case fadeIn:
		job.target = target
	case fadeOut:
		job.start = target
	}
	// The ramp never sits above the new destination.
	if job.vol > target {
		job.vol = target
	}
	ch.SetVolume(job.vol)
}

// Cancel drops the fade running on ch, if any, leaving the channel at
// whatever volume the fade last wrote.
func (f *Fader) Cancel(ch *Channel) {
	delete(f.jobs, ch)
}

// Reset drops every active fade.
func (f *Fader) Reset() {
	clear(f.jobs)
}

// Tick advances every active fade by dt seconds. Completed fade-ins clamp to
// their target; completed fade-outs stop their channel and restore its
// pre-fade volume. Jobs on separate channels are independent, so map order
// does not matter.
func (f *Fader) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	for ch, job := range f.jobs {
		switch job.dir {
		case fadeIn:
			job.vol += job.target * dt / job.duration
			if job.vol >= job.target {
				ch.SetVolume(job.target)
				delete(f.jobs, ch)
				continue
			}
			ch.SetVolume(job.vol)

		case fadeOut:
			job.vol -= job.start * dt / job.duration
			if job.vol <= 0 {
				delete(f.jobs, ch)
				ch.Stop()
				ch.SetVolume(job.start)
				continue
			}
			ch.SetVolume(job.vol)
		}
	}
}
