package quill

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenVolumeReachesTarget(t *testing.T) {
	s := NewScheduler()
	src := newFakeSource(1)

	calls := 0
	s.TweenVolume(TweenArgs{
		Target: src, Base: 1, To: 0, Duration: 1,
		OnComplete: func(TweenArgs) { calls++ },
	})

	// Exact halves avoid float32 accumulation drift.
	s.Advance(0.5)
	if math.Abs(src.volume-0.5) > 0.01 {
		t.Errorf("volume = %f, want ~0.5 at halfway", src.volume)
	}
	if calls != 0 {
		t.Fatal("OnComplete fired before completion")
	}

	s.Advance(0.5)
	if src.volume != 0 {
		t.Errorf("volume = %f, want exactly 0", src.volume)
	}
	if calls != 1 {
		t.Fatalf("OnComplete fired %d times, want 1", calls)
	}

	s.Advance(0.5)
	if calls != 1 {
		t.Fatalf("OnComplete fired again after completion (%d)", calls)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after completion, want 0", s.Len())
	}
	if s.Active(src, TweenVolume) {
		t.Error("key still active after completion")
	}
}

func TestTweenPitchWritesPitchOnly(t *testing.T) {
	s := NewScheduler()
	src := newFakeSource(0.7)

	s.TweenPitch(TweenArgs{Target: src, Base: 1, To: 2, Duration: 0.5})
	s.Advance(0.25)
	if math.Abs(src.pitch-1.5) > 0.01 {
		t.Errorf("pitch = %f, want ~1.5", src.pitch)
	}
	s.Advance(0.25)
	if src.pitch != 2 {
		t.Errorf("pitch = %f, want 2", src.pitch)
	}
	if src.volume != 0.7 || src.volumeWrites != 0 {
		t.Error("pitch tween touched volume")
	}
}

func TestTweenStartsOnNextTick(t *testing.T) {
	s := NewScheduler()
	src := newFakeSource(1)

	s.TweenVolume(TweenArgs{Target: src, Base: 0, To: 1, Duration: 1})
	if src.volumeWrites != 0 {
		t.Fatal("tween wrote before the first tick")
	}
	if !s.Active(src, TweenVolume) {
		t.Fatal("expected key to be active right after the request")
	}
	s.Advance(0.25)
	if src.volumeWrites != 1 {
		t.Errorf("volume writes = %d, want 1 per tick", src.volumeWrites)
	}
}

func TestTweenZeroDurationCompletesOnFirstTick(t *testing.T) {
	s := NewScheduler()
	src := newFakeSource(1)

	done := false
	s.TweenVolume(TweenArgs{
		Target: src, Base: 1, To: 0.3, Duration: 0,
		OnComplete: func(TweenArgs) { done = true },
	})
	s.Advance(0)
	if !done {
		t.Fatal("zero-duration tween did not complete on its first tick")
	}
	if src.volume != 0.3 {
		t.Errorf("volume = %f, want 0.3", src.volume)
	}
}

func TestTweenNegativeDurationCompletes(t *testing.T) {
	s := NewScheduler()
	src := newFakeSource(1)
	done := false
	s.TweenVolume(TweenArgs{Target: src, Base: 1, To: 0, Duration: -2, OnComplete: func(TweenArgs) { done = true }})
	s.Advance(1.0 / 60)
	if !done || src.volume != 0 {
		t.Errorf("done = %v, volume = %f", done, src.volume)
	}
}

func TestTweenReplaceSuppressesFirstCallback(t *testing.T) {
	s := NewScheduler()
	src := newFakeSource(1)

	var fired []string
	s.TweenVolume(TweenArgs{
		Target: src, Base: 1, To: 0, Duration: 1,
		OnComplete: func(TweenArgs) { fired = append(fired, "A") },
	})
	s.Advance(0.25)

	s.TweenVolume(TweenArgs{
		Target: src, Base: 0.5, To: 1, Duration: 0.5,
		OnComplete: func(TweenArgs) { fired = append(fired, "B") },
	})
	s.Advance(0.25)
	if len(fired) != 0 {
		t.Fatalf("callbacks fired early: %v", fired)
	}
	if math.Abs(src.volume-0.75) > 0.01 {
		t.Errorf("volume = %f, want ~0.75 (B only)", src.volume)
	}

	advanceN(s, 8, 0.25)
	if len(fired) != 1 || fired[0] != "B" {
		t.Fatalf("fired = %v, want [B]", fired)
	}
	if src.volume != 1 {
		t.Errorf("volume = %f, want 1", src.volume)
	}
}

func TestTweenReplaceBeforeFirstTick(t *testing.T) {
	s := NewScheduler()
	src := newFakeSource(1)

	aFired := false
	s.TweenVolume(TweenArgs{Target: src, Base: 0, To: 1, Duration: 0, OnComplete: func(TweenArgs) { aFired = true }})
	s.TweenVolume(TweenArgs{Target: src, Base: 0, To: 0.2, Duration: 0})
	s.Advance(0.1)
	if aFired {
		t.Error("replaced tween's callback fired")
	}
	if src.volume != 0.2 || src.volumeWrites != 1 {
		t.Errorf("volume = %f after %d writes, want 0.2 after 1", src.volume, src.volumeWrites)
	}
}

func TestCancelStopsWritesAndCallback(t *testing.T) {
	s := NewScheduler()
	src := newFakeSource(1)

	fired := false
	s.TweenVolume(TweenArgs{Target: src, Base: 1, To: 0, Duration: 1, OnComplete: func(TweenArgs) { fired = true }})
	s.Advance(0.5)
	writes := src.volumeWrites
	vol := src.volume

	s.Cancel(src, TweenVolume)
	if s.Active(src, TweenVolume) {
		t.Error("key still active after Cancel")
	}
	advanceN(s, 4, 0.5)

	if fired {
		t.Error("OnComplete fired after Cancel")
	}
	if src.volumeWrites != writes || src.volume != vol {
		t.Error("cancelled tween kept writing")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestCancelOtherKindLeavesTweenRunning(t *testing.T) {
	s := NewScheduler()
	src := newFakeSource(1)
	s.TweenVolume(TweenArgs{Target: src, Base: 1, To: 0, Duration: 1})
	s.Cancel(src, TweenPitch)
	if !s.Active(src, TweenVolume) {
		t.Error("cancelling pitch stopped the volume tween")
	}
}

func TestCancelWithoutTweenIsNoop(t *testing.T) {
	s := NewScheduler()
	src := newFakeSource(1)
	s.Cancel(src, TweenVolume)
	if !s.IsRegistered(src) {
		t.Error("Cancel with AutoRegister should register the target")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	s := NewScheduler()
	a := newFakeSource(0)
	b := newFakeSource(0)

	var order []string
	s.TweenVolume(TweenArgs{Target: a, Base: 0, To: 1, Duration: 0.5, OnComplete: func(TweenArgs) { order = append(order, "a-vol") }})
	s.TweenPitch(TweenArgs{Target: a, Base: 1, To: 2, Duration: 0.5, OnComplete: func(TweenArgs) { order = append(order, "a-pitch") }})
	s.TweenVolume(TweenArgs{Target: b, Base: 0, To: 1, Duration: 0.25, OnComplete: func(TweenArgs) { order = append(order, "b-vol") }})

	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	advanceN(s, 2, 0.25)

	if len(order) != 3 || order[0] != "b-vol" {
		t.Fatalf("completion order = %v", order)
	}
	if a.volume != 1 || a.pitch != 2 || b.volume != 1 {
		t.Errorf("a=(%f,%f) b=%f", a.volume, a.pitch, b.volume)
	}
}

func TestOnCompleteCanRequestSameKey(t *testing.T) {
	s := NewScheduler()
	src := newFakeSource(0)

	secondDone := false
	s.TweenVolume(TweenArgs{
		Target: src, Base: 0, To: 1, Duration: 0.5,
		OnComplete: func(TweenArgs) {
			s.TweenVolume(TweenArgs{
				Target: src, Base: 1, To: 0, Duration: 0.5,
				OnComplete: func(TweenArgs) { secondDone = true },
			})
		},
	})

	s.Advance(0.5)
	if src.volume != 1 {
		t.Fatalf("volume = %f, want 1 after the first tween", src.volume)
	}
	if !s.Active(src, TweenVolume) {
		t.Fatal("chained tween should own the key")
	}
	// The chained tween starts on the following tick.
	if src.volumeWrites != 1 {
		t.Errorf("writes = %d, chained tween ran in the same tick", src.volumeWrites)
	}
	s.Advance(0.5)
	if !secondDone || src.volume != 0 {
		t.Errorf("secondDone = %v, volume = %f", secondDone, src.volume)
	}
}

func TestOnCompleteCanCancelLaterTween(t *testing.T) {
	s := NewScheduler()
	a := newFakeSource(0)
	b := newFakeSource(0)

	s.TweenVolume(TweenArgs{Target: a, Base: 0, To: 1, Duration: 0, OnComplete: func(TweenArgs) { s.Cancel(b, TweenVolume) }})
	s.TweenVolume(TweenArgs{Target: b, Base: 0, To: 1, Duration: 1})
	s.Advance(0.5)
	if b.volumeWrites != 0 {
		t.Error("tween cancelled earlier in the tick still wrote")
	}
}

func TestOnCompleteReceivesArgs(t *testing.T) {
	s := NewScheduler()
	src := newFakeSource(0)
	var got TweenArgs
	s.TweenVolume(TweenArgs{Target: src, Base: 0, To: 0.4, Duration: 0, OnComplete: func(a TweenArgs) { got = a }})
	s.Advance(0.1)
	if got.Target != src || got.To != 0.4 {
		t.Errorf("OnComplete args = %+v", got)
	}
}

func TestRegisterIdempotent(t *testing.T) {
	s := NewScheduler()
	src := newFakeSource(1)

	s.TweenVolume(TweenArgs{Target: src, Base: 1, To: 0, Duration: 1})
	s.Register(src)
	if !s.Active(src, TweenVolume) {
		t.Error("re-registering cleared the running tween")
	}
}

func TestUnregisterLeavesRunningTween(t *testing.T) {
	s := NewScheduler()
	src := newFakeSource(1)

	done := false
	s.TweenVolume(TweenArgs{Target: src, Base: 1, To: 0, Duration: 1, OnComplete: func(TweenArgs) { done = true }})
	s.Advance(0.5)
	s.Unregister(src)

	if s.IsRegistered(src) {
		t.Fatal("still registered after Unregister")
	}
	if s.Active(src, TweenVolume) {
		t.Error("unregistered key still reports active")
	}
	s.Advance(0.5)
	if !done || src.volume != 0 {
		t.Errorf("orphaned tween did not complete: done=%v volume=%f", done, src.volume)
	}
	if s.IsRegistered(src) {
		t.Error("completion re-registered the target")
	}
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestCancelUnregisteredWithoutAutoRegister(t *testing.T) {
	logs := captureLogs(t)
	s := NewScheduler()
	s.AutoRegister = false
	src := newFakeSource(1)

	s.Register(src)
	s.Unregister(src)
	s.Cancel(src, TweenVolume)

	if s.IsRegistered(src) {
		t.Error("Cancel registered the target with AutoRegister off")
	}
	if !strings.Contains(logs.String(), "not registered") {
		t.Errorf("expected a warning, got %q", logs.String())
	}
}

func TestTweenUnregisteredWithoutAutoRegister(t *testing.T) {
	logs := captureLogs(t)
	s := NewScheduler()
	s.AutoRegister = false
	src := newFakeSource(1)

	if s.TweenVolume(TweenArgs{Target: src, Base: 1, To: 0, Duration: 0}) {
		t.Error("Tween accepted an unregistered target")
	}
	s.Advance(0.1)
	if src.volumeWrites != 0 || s.Len() != 0 {
		t.Error("refused tween ran anyway")
	}
	if !strings.Contains(logs.String(), "level=WARN") {
		t.Errorf("expected a warning, got %q", logs.String())
	}

	s.Register(src)
	if !s.TweenVolume(TweenArgs{Target: src, Base: 1, To: 0, Duration: 0}) {
		t.Error("Tween refused a registered target")
	}
}

func TestTweenNilTarget(t *testing.T) {
	captureLogs(t)
	s := NewScheduler()
	if s.TweenVolume(TweenArgs{Duration: 1}) {
		t.Error("Tween accepted a nil target")
	}
}

func TestUnknownTweenKindIsRejected(t *testing.T) {
	logs := captureLogs(t)
	s := NewScheduler()
	src := newFakeSource(0)
	bad := tweenKindCount

	if s.Tween(bad, TweenArgs{Target: src, To: 1, Duration: 1}) {
		t.Error("Tween with an unknown kind should return false")
	}
	if !strings.Contains(logs.String(), "unknown tween kind") {
		t.Errorf("expected a warning, got %q", logs.String())
	}
	s.Cancel(src, bad)
	if s.Active(src, bad) {
		t.Error("Active reported an unknown kind as running")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
	s.Advance(1)
	if src.volumeWrites != 0 {
		t.Error("rejected tween wrote to the target")
	}
}

func TestTweenEaseFunction(t *testing.T) {
	s := NewScheduler()
	lin := newFakeSource(0)
	cub := newFakeSource(0)

	s.TweenVolume(TweenArgs{Target: lin, Base: 0, To: 100, Duration: 1})
	s.TweenVolume(TweenArgs{Target: cub, Base: 0, To: 100, Duration: 1, Ease: ease.OutCubic})
	s.Advance(0.5)

	if math.Abs(lin.volume-cub.volume) < 1.0 {
		t.Errorf("easing should change the curve: linear=%f cubic=%f", lin.volume, cub.volume)
	}
}

func TestValueReachesTargetAfterDuration(t *testing.T) {
	s := NewScheduler()
	src := newFakeSource(0)
	fired := 0
	s.TweenVolume(TweenArgs{Target: src, Base: 0.2, To: 0.9, Duration: 1, OnComplete: func(TweenArgs) { fired++ }})

	for i := 0; i < 3; i++ {
		s.Advance(0.25)
		if fired != 0 {
			t.Fatalf("fired after %d quarter ticks", i+1)
		}
		if src.volume < 0.2 || src.volume > 0.9 {
			t.Fatalf("volume %f out of range", src.volume)
		}
	}
	s.Advance(0.25)
	if fired != 1 || src.volume != 0.9 {
		t.Errorf("fired = %d, volume = %f", fired, src.volume)
	}
}

func TestDebugLogsTickStats(t *testing.T) {
	logs := captureLogs(t)
	s := NewScheduler()
	s.SetDebug(true)
	src := newFakeSource(0)
	s.TweenVolume(TweenArgs{Target: src, Base: 0, To: 1, Duration: 0})
	s.Advance(0.1)
	out := logs.String()
	if !strings.Contains(out, "completed=1") || !strings.Contains(out, "active=0") {
		t.Errorf("debug output = %q", out)
	}
}

func TestAdvanceZeroAlloc(t *testing.T) {
	s := NewScheduler()
	src := newFakeSource(0)
	s.TweenVolume(TweenArgs{Target: src, Base: 0, To: 1, Duration: 1000})
	s.Advance(0.01)

	result := testing.AllocsPerRun(100, func() {
		s.Advance(0.001)
	})
	if result > 0 {
		t.Errorf("Advance allocated %f times per run, want 0", result)
	}
}
