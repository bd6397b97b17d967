package quill

import "github.com/hajimehoshi/ebiten/v2"

// Scheduler runs volume and pitch tweens, keeping at most one running tween
// per (target, kind) pair. A new request for a key stops the previous one
// without calling its OnComplete.
//
// A Scheduler is owned by the game loop. All methods, including the
// OnComplete callbacks it invokes, run on the goroutine that calls Update or
// Advance.
type Scheduler struct {
	// AutoRegister makes every operation register an unknown target first.
	// When false, Cancel and Tween on an unregistered target only log a
	// warning.
	AutoRegister bool

	reg   registry
	tasks []*tweenTask
	debug bool
}

// NewScheduler creates an empty scheduler with AutoRegister enabled.
func NewScheduler() *Scheduler {
	return &Scheduler{
		AutoRegister: true,
		reg:          newRegistry(),
	}
}

// SetDebug enables per-tick stats on the package logger.
func (s *Scheduler) SetDebug(on bool) {
	s.debug = on
}

// Register makes t known to the scheduler. Registering twice is harmless.
func (s *Scheduler) Register(t TweenTarget) {
	s.reg.register(t)
}

// Unregister forgets t. A tween already running on t is not stopped; it
// keeps writing until it completes, but can no longer be cancelled through
// this scheduler.
func (s *Scheduler) Unregister(t TweenTarget) {
	s.reg.unregister(t)
}

// IsRegistered reports whether t is known to the scheduler.
func (s *Scheduler) IsRegistered(t TweenTarget) bool {
	return s.reg.isRegistered(t)
}

// ensure registers t when AutoRegister is on and reports whether t may be
// operated on.
func (s *Scheduler) ensure(t TweenTarget, op string, kind TweenKind) bool {
	if s.AutoRegister {
		s.reg.register(t)
		return true
	}
	if !s.reg.isRegistered(t) {
		logf().Warn("quill: target not registered with the tween scheduler",
			"op", op, "kind", kind.String(), "autoRegister", s.AutoRegister)
		return false
	}
	return true
}

// Cancel stops the tween running on (t, kind), if any. Its OnComplete is not
// called and it writes nothing further.
func (s *Scheduler) Cancel(t TweenTarget, kind TweenKind) {
	if !kind.valid() {
		return
	}
	if !s.ensure(t, "cancel", kind) {
		return
	}
	s.cancel(t, kind)
}

func (s *Scheduler) cancel(t TweenTarget, kind TweenKind) {
	task := s.reg.owner(t, kind)
	if task == nil {
		return
	}
	task.state = taskCancelled
	s.reg.install(t, kind, nil)
}

// Tween starts a tween of the given kind, replacing any tween already
// running on the same target and kind. The first write happens on the next
// Update or Advance. It returns false when the target is unregistered and
// AutoRegister is off or kind is not a known TweenKind.
func (s *Scheduler) Tween(kind TweenKind, args TweenArgs) bool {
	if args.Target == nil {
		logf().Warn("quill: tween request without a target", "kind", kind.String())
		return false
	}
	if !kind.valid() {
		logf().Warn("quill: unknown tween kind", "kind", int(kind))
		return false
	}
	if !s.ensure(args.Target, "tween", kind) {
		return false
	}
	s.cancel(args.Target, kind)
	task := newTweenTask(kind, args)
	s.reg.install(args.Target, kind, task)
	s.tasks = append(s.tasks, task)
	return true
}

// TweenVolume is shorthand for Tween(TweenVolume, args).
func (s *Scheduler) TweenVolume(args TweenArgs) bool {
	return s.Tween(TweenVolume, args)
}

// TweenPitch is shorthand for Tween(TweenPitch, args).
func (s *Scheduler) TweenPitch(args TweenArgs) bool {
	return s.Tween(TweenPitch, args)
}

// Active reports whether a tween currently owns (t, kind).
func (s *Scheduler) Active(t TweenTarget, kind TweenKind) bool {
	if !kind.valid() {
		return false
	}
	return s.reg.owner(t, kind) != nil
}

// Len returns the number of running tweens, including ones whose target has
// been unregistered.
func (s *Scheduler) Len() int {
	n := 0
	for _, task := range s.tasks {
		if task.state == taskRunning {
			n++
		}
	}
	return n
}

// Update advances all tweens by one tick at the game's current TPS.
func (s *Scheduler) Update() {
	s.Advance(float32(1.0 / float64(ebiten.TPS())))
}

// Advance advances all tweens by dt seconds. Tweens run in the order they
// were requested. Tweens requested from an OnComplete callback during this
// call start on the next one.
func (s *Scheduler) Advance(dt float32) {
	var stats tickStats
	n := len(s.tasks)
	for i := 0; i < n; i++ {
		task := s.tasks[i]
		if task.state != taskRunning {
			continue
		}
		stats.stepped++
		if !task.step(dt) {
			continue
		}
		task.state = taskCompleted
		stats.completed++
		s.reg.release(task.args.Target, task.kind, task)
		if task.args.OnComplete != nil {
			task.args.OnComplete(task.args)
		}
	}
	stats.cancelled = s.compact()
	stats.active = len(s.tasks)
	s.debugLog(stats)
}

// compact drops finished and cancelled tasks, keeping request order. It
// returns how many cancelled tasks were dropped.
func (s *Scheduler) compact() int {
	cancelled := 0
	live := s.tasks[:0]
	for _, task := range s.tasks {
		switch task.state {
		case taskRunning:
			live = append(live, task)
		case taskCancelled:
			cancelled++
		}
	}
	clear(s.tasks[len(live):])
	s.tasks = live
	return cancelled
}
