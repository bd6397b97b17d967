package quill

// fakeSource is an in-memory AudioSource that records what was done to it.
type fakeSource struct {
	volume  float64
	pitch   float64
	playing bool
	loop    bool

	volumeWrites int
	plays        int
	pauses       int
	stops        int
}

func newFakeSource(volume float64) *fakeSource {
	return &fakeSource{volume: volume, pitch: 1}
}

func (f *fakeSource) SetVolume(v float64) { f.volume = v; f.volumeWrites++ }
func (f *fakeSource) SetPitch(v float64)  { f.pitch = v }
func (f *fakeSource) Volume() float64     { return f.volume }
func (f *fakeSource) Play()               { f.playing = true; f.plays++ }
func (f *fakeSource) Pause()              { f.playing = false; f.pauses++ }
func (f *fakeSource) Stop()               { f.playing = false; f.stops++ }
func (f *fakeSource) IsPlaying() bool     { return f.playing }
func (f *fakeSource) SetLoop(loop bool)   { f.loop = loop }

// recordingSink collects emitted effects.
type recordingSink struct {
	effects []Effect
}

func (r *recordingSink) EmitEffect(e Effect) { r.effects = append(r.effects, e) }

// advanceN runs n ticks of dt seconds.
func advanceN(s *Scheduler, n int, dt float32) {
	for i := 0; i < n; i++ {
		s.Advance(dt)
	}
}
