package mixer

import (
	"math"
	"testing"
)

func TestFader_FadeInReachesTarget(t *testing.T) {
	t.Parallel()

	pool, _ := testPool(1)
	f := NewFader()
	s := NewSound("s", testClip(), Music)

	ch := startOn(t, pool, s)
	f.FadeIn(ch, 0.8, 2.0)

	if ch.Volume() != 0 {
		t.Fatalf("volume = %v at fade-in start, want 0", ch.Volume())
	}

	// Tick a fixed step until the duration is consumed.
	for iter := 0; iter < 20; iter++ {
		f.Tick(0.1)
	}

	if got := ch.Volume(); math.Abs(got-0.8) > 1e-6 {
		t.Errorf("volume = %v after full fade-in, want 0.8", got)
	}

	// One more nudge absorbs float drift; the fade must now be complete
	// and clamped to the exact target.
	f.Tick(0.01)
	if got := ch.Volume(); got != 0.8 {
		t.Errorf("volume = %v after completion, want exactly 0.8", got)
	}
	if f.Active(ch) {
		t.Error("fade still active after reaching target")
	}
	if ch.State() != Playing {
		t.Errorf("channel state = %v after fade-in, want Playing", ch.State())
	}
}

func TestFader_FadeInClampsOvershoot(t *testing.T) {
	t.Parallel()

	pool, _ := testPool(1)
	f := NewFader()
	s := NewSound("s", testClip(), Music)

	ch := startOn(t, pool, s)
	f.FadeIn(ch, 0.6, 1.0)

	// One huge delta overshoots the target in a single tick.
	f.Tick(10)

	if got := ch.Volume(); got != 0.6 {
		t.Errorf("volume = %v after overshooting tick, want clamped 0.6", got)
	}
	if f.Active(ch) {
		t.Error("fade still active after overshoot completion")
	}
}

func TestFader_FadeOutStopsAndRestores(t *testing.T) {
	t.Parallel()

	pool, deck := testPool(1)
	f := NewFader()
	s := NewSound("s", testClip(), Music)

	ch := startOn(t, pool, s)
	ch.SetVolume(0.9)

	f.FadeOut(ch, 1.0)
	for iter := 0; iter < 10; iter++ {
		f.Tick(0.1)
	}
	f.Tick(0.1) // push past zero

	if ch.Busy() {
		t.Error("channel still busy after fade-out completed")
	}
	if deck.players[0].stops != 1 {
		t.Errorf("player Stop calls = %d, want 1", deck.players[0].stops)
	}
	if got := ch.Volume(); got != 0.9 {
		t.Errorf("volume = %v after fade-out, want restored 0.9", got)
	}
	if f.Active(ch) {
		t.Error("fade still active after completion")
	}
}

func TestFader_ZeroDurationIsInstant(t *testing.T) {
	t.Parallel()

	pool, _ := testPool(2)
	f := NewFader()
	s := NewSound("s", testClip(), Music)

	in := startOn(t, pool, s)
	f.FadeIn(in, 0.7, 0)
	if got := in.Volume(); got != 0.7 {
		t.Errorf("zero-duration fade-in left volume %v, want 0.7", got)
	}
	if f.Len() != 0 {
		t.Error("zero-duration fade-in created a job")
	}

	out := startOn(t, pool, s)
	out.SetVolume(0.5)
	f.FadeOut(out, -1)
	if out.Busy() {
		t.Error("negative-duration fade-out did not stop the channel")
	}
	if got := out.Volume(); got != 0.5 {
		t.Errorf("volume = %v after instant fade-out, want restored 0.5", got)
	}
}

func TestFader_RetargetFadeIn(t *testing.T) {
	t.Parallel()

	pool, _ := testPool(1)
	f := NewFader()
	s := NewSound("s", testClip(), Music)

	ch := startOn(t, pool, s)
	f.FadeIn(ch, 0.4, 1.0)
	f.Tick(0.5)

	// Halfway up, the destination moves: the ramp continues from where it
	// is toward the new target.
	f.Retarget(ch, 0.8)
	if got := ch.Volume(); math.Abs(got-0.2) > 1e-6 {
		t.Fatalf("volume = %v right after retarget, want unchanged 0.2", got)
	}

	f.Tick(0.5)
	if got := ch.Volume(); math.Abs(got-0.6) > 1e-6 {
		t.Errorf("volume = %v mid-ramp after retarget, want 0.6", got)
	}

	f.Tick(0.5)
	if got := ch.Volume(); got != 0.8 {
		t.Errorf("volume = %v after completion, want exactly 0.8", got)
	}
	if f.Active(ch) {
		t.Error("fade still active after reaching retargeted volume")
	}
}

func TestFader_RetargetFadeInBelowRamp(t *testing.T) {
	t.Parallel()

	pool, _ := testPool(1)
	f := NewFader()
	s := NewSound("s", testClip(), Music)

	ch := startOn(t, pool, s)
	f.FadeIn(ch, 1.0, 1.0)
	f.Tick(0.6)

	// The new destination sits below the current ramp position, so the
	// volume drops to it immediately and the next tick completes.
	f.Retarget(ch, 0.3)
	if got := ch.Volume(); got != 0.3 {
		t.Fatalf("volume = %v right after retarget, want clamped 0.3", got)
	}

	f.Tick(0.1)
	if got := ch.Volume(); got != 0.3 {
		t.Errorf("volume = %v after completion, want 0.3", got)
	}
	if f.Active(ch) {
		t.Error("fade still active after clamping to lower target")
	}
}

func TestFader_RetargetFadeOutRestoresNewVolume(t *testing.T) {
	t.Parallel()

	pool, deck := testPool(1)
	f := NewFader()
	s := NewSound("s", testClip(), Music)

	ch := startOn(t, pool, s)
	ch.SetVolume(1)
	f.FadeOut(ch, 1.0)
	f.Tick(0.5)

	f.Retarget(ch, 0.25)
	if got := ch.Volume(); got != 0.25 {
		t.Fatalf("volume = %v right after retarget, want clamped 0.25", got)
	}

	for iter := 0; iter < 2; iter++ {
		f.Tick(0.5)
	}
	f.Tick(0.5) // past zero

	if ch.Busy() {
		t.Error("channel still busy after retargeted fade-out completed")
	}
	if deck.players[0].stops != 1 {
		t.Errorf("player Stop calls = %d, want 1", deck.players[0].stops)
	}
	if got := ch.Volume(); got != 0.25 {
		t.Errorf("volume = %v after fade-out, want restored 0.25", got)
	}
}

func TestFader_RetargetWithoutFadeIsNoOp(t *testing.T) {
	t.Parallel()

	pool, _ := testPool(1)
	f := NewFader()
	s := NewSound("s", testClip(), SFX)

	ch := startOn(t, pool, s)
	ch.SetVolume(0.7)

	f.Retarget(ch, 0.1)

	if got := ch.Volume(); got != 0.7 {
		t.Errorf("volume = %v after retarget without a fade, want 0.7", got)
	}
	if f.Len() != 0 {
		t.Error("retarget created a job")
	}
}

func TestFader_CancelLeavesVolume(t *testing.T) {
	t.Parallel()

	pool, _ := testPool(1)
	f := NewFader()
	s := NewSound("s", testClip(), SFX)

	ch := startOn(t, pool, s)
	ch.SetVolume(0.8)
	f.FadeOut(ch, 1.0)
	f.Tick(0.25)

	mid := ch.Volume()
	f.Cancel(ch)
	f.Tick(1.0)

	if ch.Volume() != mid {
		t.Errorf("volume changed after Cancel: %v -> %v", mid, ch.Volume())
	}
	if !ch.Busy() {
		t.Error("Cancel stopped the channel")
	}
}

func TestFader_ReplacesExistingJob(t *testing.T) {
	t.Parallel()

	pool, _ := testPool(1)
	f := NewFader()
	s := NewSound("s", testClip(), Music)

	ch := startOn(t, pool, s)
	ch.SetVolume(1)
	f.FadeOut(ch, 10)
	f.FadeIn(ch, 0.5, 1)

	if f.Len() != 1 {
		t.Fatalf("Len() = %d with two fades on one channel, want 1", f.Len())
	}

	f.Tick(2) // would not finish the 10s fade-out, finishes the fade-in
	if got := ch.Volume(); got != 0.5 {
		t.Errorf("volume = %v, want 0.5 from the replacing fade-in", got)
	}
	if !ch.Busy() {
		t.Error("replaced fade-out still stopped the channel")
	}
}

func TestFader_ConcurrentFadesAreIndependent(t *testing.T) {
	t.Parallel()

	pool, _ := testPool(2)
	f := NewFader()
	s := NewSound("s", testClip(), SFX)

	up := startOn(t, pool, s)
	down := startOn(t, pool, s)
	down.SetVolume(1)

	f.FadeIn(up, 1.0, 1.0)
	f.FadeOut(down, 1.0)

	f.Tick(0.5)

	if got := up.Volume(); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("fade-in volume = %v at half duration, want 0.5", got)
	}
	if got := down.Volume(); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("fade-out volume = %v at half duration, want 0.5", got)
	}
}

func TestFader_TickIgnoresNonPositiveDelta(t *testing.T) {
	t.Parallel()

	pool, _ := testPool(1)
	f := NewFader()
	s := NewSound("s", testClip(), Music)

	ch := startOn(t, pool, s)
	f.FadeIn(ch, 1, 1)

	f.Tick(0)
	f.Tick(-1)

	if got := ch.Volume(); got != 0 {
		t.Errorf("volume = %v after zero/negative ticks, want 0", got)
	}
	if !f.Active(ch) {
		t.Error("fade completed without time passing")
	}
}

func BenchmarkFader_Tick(b *testing.B) {
	pool, _ := testPool(DefaultChannels)
	f := NewFader()
	s := NewSound("s", testClip(), SFX)

	pool.ForEach(func(ch *Channel) {
		ch.Bind(s, 1, 1)
		ch.Start()
		f.FadeIn(ch, 1, 1e12) // never completes during the benchmark
	})

	b.ResetTimer()
	b.ReportAllocs()

	for iter := 0; iter < b.N; iter++ {
		f.Tick(1.0 / 60.0)
	}
}
