package easel

import "time"

// FrameEvent is the payload of EventAnimationFrame.
type FrameEvent struct {
	Delta time.Duration // time since the previous frame, or since start
	Time  time.Duration // frame timestamp on the scheduler clock
}

// StartAnimation starts the animation loop. On every frame the renderer
// consumes one queued synthetic pointer event, calls fn with the time elapsed
// since the previous frame, renders, and emits EventAnimationFrame. fn may be
// nil. Calling StartAnimation while the loop runs does nothing.
func (r *Renderer) StartAnimation(fn func(dt time.Duration)) {
	if r.running {
		return
	}
	r.running = true
	r.frameFn = fn
	r.loopGen++
	r.lastTime = r.scheduler.Now()
	r.scheduleTick()
	r.emit(EventAnimationStart, nil)
}

// StopAnimation cancels the pending frame and emits EventAnimationEnd.
// A frame already executing runs to completion. Calling StopAnimation while
// idle does nothing.
func (r *Renderer) StopAnimation() {
	if !r.running {
		return
	}
	r.running = false
	if r.token != 0 {
		r.scheduler.Cancel(r.token)
		r.token = 0
	}
	r.frameFn = nil
	r.emit(EventAnimationEnd, nil)
}

// IsAnimating reports whether the animation loop is running.
func (r *Renderer) IsAnimating() bool { return r.running }

func (r *Renderer) scheduleTick() {
	gen := r.loopGen
	r.token = r.scheduler.Schedule(func(ts time.Duration) {
		r.tick(gen, ts)
	})
}

// tick runs one frame. gen ties the callback to the loop run that scheduled
// it, so a stop and restart from inside fn leaves exactly one pending frame.
func (r *Renderer) tick(gen uint64, ts time.Duration) {
	if !r.running || gen != r.loopGen {
		return
	}
	r.token = 0

	dt := ts - r.lastTime
	r.lastTime = ts

	if r.scriptRunner != nil {
		r.scriptRunner.step(r)
	}
	r.ProcessInjected()
	if fn := r.frameFn; fn != nil {
		fn(dt)
	}
	if err := r.Render(); err != nil {
		Logger().Error("easel: render failed", "err", err)
	}
	r.emit(EventAnimationFrame, FrameEvent{Delta: dt, Time: ts})

	if r.running && gen == r.loopGen {
		r.scheduleTick()
	}
}
