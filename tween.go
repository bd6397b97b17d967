package quill

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenTarget is anything whose volume and pitch a Scheduler can animate.
// The interface value itself is the target's identity, so implementations
// must be comparable; pointer receivers are the usual choice.
type TweenTarget interface {
	SetVolume(v float64)
	SetPitch(v float64)
}

// TweenArgs describes one interpolation request.
type TweenArgs struct {
	Target TweenTarget

	// Base is the value written at the start, To the value reached at the end.
	Base, To float64

	// Duration in seconds. Zero or negative completes on the first tick.
	Duration float32

	// Ease shapes the curve. Nil means ease.Linear.
	Ease ease.TweenFunc

	// OnComplete runs once, after To has been written, unless the tween is
	// cancelled or replaced first.
	OnComplete func(args TweenArgs)
}

type taskState uint8

const (
	taskRunning taskState = iota
	taskCompleted
	taskCancelled
)

// tweenTask is one interpolation advanced by the Scheduler each tick.
type tweenTask struct {
	kind  TweenKind
	args  TweenArgs
	tween *gween.Tween
	state taskState
}

func newTweenTask(kind TweenKind, args TweenArgs) *tweenTask {
	fn := args.Ease
	if fn == nil {
		fn = ease.Linear
	}
	t := &tweenTask{kind: kind, args: args}
	if args.Duration > 0 {
		t.tween = gween.New(float32(args.Base), float32(args.To), args.Duration, fn)
	}
	return t
}

// step advances the task by dt seconds and writes the new value. It reports
// whether the task has reached its end, in which case the exact To value
// has been written.
func (t *tweenTask) step(dt float32) bool {
	if t.tween == nil {
		t.kind.apply(t.args.Target, t.args.To)
		return true
	}
	val, finished := t.tween.Update(dt)
	if finished {
		t.kind.apply(t.args.Target, t.args.To)
		return true
	}
	t.kind.apply(t.args.Target, float64(val))
	return false
}
