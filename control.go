package quill

import "strconv"

// AudioControl plays, loops, pauses, stops or re-levels an AudioSource,
// optionally fading the volume through a Scheduler. Starting playback stops
// every other source in the bank that shares the source's tag.
type AudioControl struct {
	Control AudioControlType
	Source  AudioSource

	// Name labels the source in Summary.
	Name string

	// StartVolume is the fade origin for ControlChangeVolume.
	StartVolume float64
	// EndVolume is the volume the fade reaches, or the volume set directly
	// when FadeDuration is zero.
	EndVolume float64
	// FadeDuration in seconds. Zero or less means no fade.
	FadeDuration float32

	// WaitUntilFinished makes Done report false until the fade has finished,
	// or for ControlPlayOnce until the source stops playing.
	WaitUntilFinished bool

	finished     bool
	waitPlayback bool
}

// NewAudioControl creates a control with both volumes at 1 and no fade.
func NewAudioControl(control AudioControlType, name string, src AudioSource) *AudioControl {
	return &AudioControl{
		Control:     control,
		Source:      src,
		Name:        name,
		StartVolume: 1,
		EndVolume:   1,
	}
}

// Execute performs the control. bank may be nil, in which case no other
// sources are stopped.
func (c *AudioControl) Execute(s *Scheduler, bank *AudioBank) {
	c.finished = false
	c.waitPlayback = false
	if c.Source == nil {
		c.finished = true
		return
	}

	if c.FadeDuration <= 0 {
		c.Source.SetVolume(c.EndVolume)
	}

	switch c.Control {
	case ControlPlayOnce:
		c.stopSameTag(s, bank)
		c.playOnce(s)
	case ControlPlayLoop:
		c.stopSameTag(s, bank)
		c.playLoop(s)
	case ControlPauseLoop:
		c.pauseLoop(s)
	case ControlStopLoop:
		c.stopLoop(s, c.Source)
	case ControlChangeVolume:
		c.changeVolume(s)
	}

	if !c.WaitUntilFinished {
		c.finished = true
	}
}

// Done reports whether the control has finished. Without WaitUntilFinished
// it is true as soon as Execute returns.
func (c *AudioControl) Done() bool {
	if c.finished {
		return true
	}
	if c.waitPlayback {
		return !c.Source.IsPlaying()
	}
	return false
}

func (c *AudioControl) stopSameTag(s *Scheduler, bank *AudioBank) {
	if bank == nil {
		return
	}
	for _, other := range bank.Tagged(bank.Tag(c.Source)) {
		if other != c.Source {
			c.stopLoop(s, other)
		}
	}
}

func (c *AudioControl) playOnce(s *Scheduler) {
	if c.FadeDuration > 0 {
		s.TweenVolume(TweenArgs{
			Target:   c.Source,
			Base:     c.Source.Volume(),
			To:       c.EndVolume,
			Duration: c.FadeDuration,
		})
	}
	c.Source.SetLoop(false)
	c.Source.Play()
	if c.WaitUntilFinished {
		c.waitPlayback = true
	}
}

func (c *AudioControl) playLoop(s *Scheduler) {
	c.Source.SetLoop(true)
	if c.FadeDuration <= 0 {
		c.Source.Play()
		c.finished = true
		return
	}
	c.fade(s, c.Source, 0, c.EndVolume, func() {
		c.finished = true
	})
	c.Source.Play()
}

func (c *AudioControl) pauseLoop(s *Scheduler) {
	if c.FadeDuration <= 0 {
		c.Source.Pause()
		c.finished = true
		return
	}
	src := c.Source
	c.fade(s, src, src.Volume(), 0, func() {
		src.Pause()
		c.finished = true
	})
}

func (c *AudioControl) stopLoop(s *Scheduler, src AudioSource) {
	own := src == c.Source
	if c.FadeDuration <= 0 {
		src.Stop()
		if own {
			c.finished = true
		}
		return
	}
	c.fade(s, src, src.Volume(), 0, func() {
		src.Stop()
		if own {
			c.finished = true
		}
	})
}

func (c *AudioControl) changeVolume(s *Scheduler) {
	c.fade(s, c.Source, c.StartVolume, c.EndVolume, func() {
		c.finished = true
	})
}

// fade tweens src's volume and runs then on completion. If the scheduler
// refuses the request, the end volume is applied and then runs at once.
func (c *AudioControl) fade(s *Scheduler, src AudioSource, from, to float64, then func()) {
	ok := s.TweenVolume(TweenArgs{
		Target:     src,
		Base:       from,
		To:         to,
		Duration:   c.FadeDuration,
		OnComplete: func(TweenArgs) { then() },
	})
	if !ok {
		src.SetVolume(to)
		then()
	}
}

// Summary describes the control in one line, e.g.
// `PlayLoop "music" Fade in volume to 0.8 over 2 seconds.`
func (c *AudioControl) Summary() string {
	if c.Source == nil {
		return "Error: No sound clip selected"
	}
	fadeType := ""
	if c.FadeDuration > 0 {
		end := strconv.FormatFloat(c.EndVolume, 'g', -1, 64)
		switch c.Control {
		case ControlStopLoop:
			fadeType = " Fade out"
		case ControlChangeVolume:
			fadeType = " to " + end
		default:
			fadeType = " Fade in volume to " + end
		}
		fadeType += " over " + strconv.FormatFloat(float64(c.FadeDuration), 'g', -1, 32) + " seconds."
	}
	return c.Control.String() + " \"" + c.Name + "\"" + fadeType
}
