package mixer

// fakePlayer is a test Player that records everything forwarded to it.
type fakePlayer struct {
	clip   *Clip
	loop   bool
	volume float64
	pitch  float64

	playing bool
	paused  bool

	starts  int
	stops   int
	pauses  int
	resumes int

	volumes []float64 // every SetVolume in call order
}

func newFakePlayer() *fakePlayer {
	return &fakePlayer{pitch: 1}
}

func (f *fakePlayer) Start(clip *Clip, loop bool) {
	f.clip = clip
	f.loop = loop
	f.playing = true
	f.paused = false
	f.starts++
}

func (f *fakePlayer) Pause() {
	f.paused = true
	f.pauses++
}

func (f *fakePlayer) Resume() {
	f.paused = false
	f.resumes++
}

func (f *fakePlayer) Stop() {
	f.playing = false
	f.paused = false
	f.stops++
}

func (f *fakePlayer) SetVolume(v float64) {
	f.volume = v
	f.volumes = append(f.volumes, v)
}

func (f *fakePlayer) SetPitch(p float64) { f.pitch = p }

func (f *fakePlayer) Playing() bool { return f.playing && !f.paused }

// finish simulates the backend running out of audio.
func (f *fakePlayer) finish() { f.playing = false }

// fakeDeck hands out fake players and keeps them reachable for assertions.
type fakeDeck struct {
	players []*fakePlayer
}

func (d *fakeDeck) newPlayer() Player {
	p := newFakePlayer()
	d.players = append(d.players, p)
	return p
}

// testClip returns a tiny mono clip usable wherever a buffer is needed.
func testClip() *Clip {
	return &Clip{
		Data:       make([]float32, 441),
		SampleRate: 44100,
		Channels:   1,
	}
}

func testPool(capacity int) (*Pool, *fakeDeck) {
	deck := &fakeDeck{}
	return NewPool(capacity, deck.newPlayer), deck
}
