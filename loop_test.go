package easel

import (
	"slices"
	"testing"
	"time"
)

func TestStartAnimationDeltas(t *testing.T) {
	r, _, sched, clock := newTestRenderer()
	var dts []time.Duration
	r.StartAnimation(func(dt time.Duration) { dts = append(dts, dt) })

	clock.Advance(frame)
	sched.RunFrame()
	clock.Advance(2 * frame)
	sched.RunFrame()

	want := []time.Duration{frame, 2 * frame}
	if !slices.Equal(dts, want) {
		t.Errorf("dts = %v, want %v", dts, want)
	}
}

func TestStartAnimationTwiceKeepsOnePendingFrame(t *testing.T) {
	r, _, sched, _ := newTestRenderer()
	starts := 0
	r.On(EventAnimationStart, func(Event) { starts++ })

	r.StartAnimation(nil)
	r.StartAnimation(nil)
	if sched.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", sched.Pending())
	}
	if starts != 1 {
		t.Errorf("start events = %d, want 1", starts)
	}
}

func TestStopAnimationCancelsNextFrame(t *testing.T) {
	r, s, sched, _ := newTestRenderer()
	calls := 0
	ends := 0
	r.On(EventAnimationEnd, func(Event) { ends++ })
	r.StartAnimation(func(time.Duration) { calls++ })

	r.StopAnimation()
	sched.RunFrame()
	if calls != 0 {
		t.Errorf("callback ran %d times after stop", calls)
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", sched.Pending())
	}
	if got := s.ctx.calls(); len(got) != 0 {
		t.Errorf("rendered after stop: %v", got)
	}

	r.StopAnimation()
	if ends != 1 {
		t.Errorf("end events = %d, want 1", ends)
	}
	if r.IsAnimating() {
		t.Error("IsAnimating = true after stop")
	}
}

func TestStopInsideCallbackFinishesFrame(t *testing.T) {
	r, s, sched, _ := newTestRenderer()
	frames := 0
	r.On(EventAnimationFrame, func(Event) { frames++ })
	r.StartAnimation(func(time.Duration) { r.StopAnimation() })

	sched.RunFrame()
	if frames != 1 {
		t.Errorf("frame events = %d, want 1", frames)
	}
	if got := only(s.ctx.calls(), "clear"); len(got) != 1 {
		t.Errorf("renders = %d, want 1", len(got))
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending = %d, want 0 after stop", sched.Pending())
	}
}

func TestRestartInsideCallbackSchedulesOnce(t *testing.T) {
	r, _, sched, _ := newTestRenderer()
	restarted := false
	var cb func(time.Duration)
	cb = func(time.Duration) {
		if !restarted {
			restarted = true
			r.StopAnimation()
			r.StartAnimation(cb)
		}
	}
	r.StartAnimation(cb)
	sched.RunFrame()

	if !r.IsAnimating() {
		t.Error("loop not running after restart")
	}
	if sched.Pending() != 1 {
		t.Errorf("Pending = %d, want exactly 1", sched.Pending())
	}
}

func TestAnimationFrameEvent(t *testing.T) {
	r, _, sched, clock := newTestRenderer()
	var got FrameEvent
	r.On(EventAnimationFrame, func(ev Event) { got = ev.Payload.(FrameEvent) })
	clock.Advance(time.Second)
	r.StartAnimation(nil)
	clock.Advance(frame)
	sched.RunFrame()

	want := FrameEvent{Delta: frame, Time: time.Second + frame}
	if got != want {
		t.Errorf("FrameEvent = %+v, want %+v", got, want)
	}
}

func TestAnimationRendersEveryFrame(t *testing.T) {
	r, s, sched, clock := newTestRenderer()
	r.Add(rect(0, 0, 1, 1))
	r.StartAnimation(nil)
	for range 3 {
		clock.Advance(frame)
		sched.RunFrame()
	}
	if n := len(only(s.ctx.calls(), "fill@")); n != 3 {
		t.Errorf("fills = %d, want 3", n)
	}
}
