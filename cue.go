package quill

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// cueStep is a single action in a cue script.
type cueStep struct {
	Action string   `yaml:"action"`
	Source string   `yaml:"source,omitempty"`
	Text   string   `yaml:"text,omitempty"`
	Volume *float64 `yaml:"volume,omitempty"`
	From   *float64 `yaml:"from,omitempty"`
	Pitch  float64  `yaml:"pitch,omitempty"`
	Fade   float32  `yaml:"fade,omitempty"`
	Wait   bool     `yaml:"wait,omitempty"`
	Frames int      `yaml:"frames,omitempty"`
}

// cueScript is the top-level structure of a cue script.
type cueScript struct {
	Steps []cueStep `yaml:"steps"`
}

var cueControls = map[string]AudioControlType{
	"playonce": ControlPlayOnce,
	"playloop": ControlPlayLoop,
	"pause":    ControlPauseLoop,
	"stop":     ControlStopLoop,
	"volume":   ControlChangeVolume,
}

// waiter is anything a cue step can block on.
type waiter interface {
	Done() bool
}

type doneFlag bool

func (f *doneFlag) Done() bool { return bool(*f) }

// CueRunner plays a scripted sequence of audio controls, tweens, dialogue
// lines and waits, one step per frame. Attach it to a Dispatcher and call
// Step once per tick before advancing the scheduler.
type CueRunner struct {
	steps     []cueStep
	cursor    int
	waitCount int
	pending   waiter
	done      bool

	disp *Dispatcher

	// OnText receives the non-effect tokens of every "say" step.
	OnText func(tokens []Token)
}

// LoadCueScript parses a YAML (or JSON) cue script:
//
//	steps:
//	  - action: playloop
//	    source: music
//	    volume: 0.8
//	    fade: 2
//	  - action: say
//	    text: "Hello {audio=blip}there{w=0.5}"
//	  - action: wait
//	    frames: 60
//	  - action: stop
//	    source: music
//	    fade: 1
//	    wait: true
func LoadCueScript(data []byte) (*CueRunner, error) {
	var script cueScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("quill: parse cue script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("quill: parse cue script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "say", "wait", "pitch", "cancel":
		default:
			if _, ok := cueControls[st.Action]; !ok {
				return nil, fmt.Errorf("quill: parse cue script: step %d: unknown action %q", i, st.Action)
			}
		}
		if st.Action != "say" && st.Action != "wait" && st.Source == "" {
			return nil, fmt.Errorf("quill: parse cue script: step %d: %s needs a source", i, st.Action)
		}
	}
	return &CueRunner{steps: script.Steps}, nil
}

// Attach sets the dispatcher whose scheduler and bank the steps act on.
func (r *CueRunner) Attach(d *Dispatcher) {
	r.disp = d
}

// Done reports whether all steps have run and nothing is still pending.
func (r *CueRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame.
func (r *CueRunner) Step() {
	if r.done {
		return
	}
	if r.pending != nil {
		if !r.pending.Done() {
			return
		}
		r.pending = nil
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.checkDone()
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	r.run(st)
	r.checkDone()
}

func (r *CueRunner) checkDone() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.pending == nil {
		r.done = true
	}
}

func (r *CueRunner) run(st cueStep) {
	switch st.Action {
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
		return
	case "say":
		tokens := Tokenize(st.Text)
		if r.disp != nil {
			tokens = r.disp.DispatchAll(tokens)
		}
		if r.OnText != nil {
			r.OnText(tokens)
		}
		return
	}

	if r.disp == nil || r.disp.Bank == nil || r.disp.Scheduler == nil {
		logf().Warn("quill: cue runner has no dispatcher attached", "action", st.Action)
		return
	}
	src, ok := r.disp.Bank.Get(st.Source)
	if !ok {
		logf().Warn("quill: cue names an unknown source", "action", st.Action, "source", st.Source)
		return
	}

	switch st.Action {
	case "cancel":
		r.disp.Scheduler.Cancel(src, TweenVolume)
		r.disp.Scheduler.Cancel(src, TweenPitch)
	case "pitch":
		from := 1.0
		if st.From != nil {
			from = *st.From
		}
		flag := new(doneFlag)
		ok := r.disp.Scheduler.TweenPitch(TweenArgs{
			Target:     src,
			Base:       from,
			To:         st.Pitch,
			Duration:   st.Fade,
			OnComplete: func(TweenArgs) { *flag = true },
		})
		if st.Wait && ok {
			r.pending = flag
		}
	default:
		c := NewAudioControl(cueControls[st.Action], st.Source, src)
		if st.Volume != nil {
			c.EndVolume = *st.Volume
		}
		if st.From != nil {
			c.StartVolume = *st.From
		}
		c.FadeDuration = st.Fade
		c.WaitUntilFinished = st.Wait
		c.Execute(r.disp.Scheduler, r.disp.Bank)
		if !c.Done() {
			r.pending = c
		}
	}
}
