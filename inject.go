package easel

// syntheticPointerEvent is one queued pointer sample.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at (x, y). Queued samples are consumed
// one per animation frame, or one per ProcessInjected call.
func (r *Renderer) InjectPress(x, y float64) {
	r.injectQueue = append(r.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move to (x, y) with the button held down. Use
// it between InjectPress and InjectRelease to simulate a drag.
func (r *Renderer) InjectMove(x, y float64) {
	r.injectQueue = append(r.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectHover queues a pointer move to (x, y) with the button up.
func (r *Renderer) InjectHover(x, y float64) {
	r.injectQueue = append(r.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectRelease queues a pointer release at (x, y).
func (r *Renderer) InjectRelease(x, y float64) {
	r.injectQueue = append(r.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at (x, y). Consumes two
// frames.
func (r *Renderer) InjectClick(x, y float64) {
	r.InjectPress(x, y)
	r.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 linearly
// interpolated moves, and a release at (toX, toY). The sequence consumes
// frames frames; fewer than 2 counts as 2.
func (r *Renderer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	r.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		r.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	r.InjectRelease(toX, toY)
}

// PendingInjected returns the number of queued synthetic samples.
func (r *Renderer) PendingInjected() int { return len(r.injectQueue) }

// ProcessInjected pops one queued sample and feeds it through
// ProcessPointer. It reports whether a sample was consumed.
func (r *Renderer) ProcessInjected() bool {
	if len(r.injectQueue) == 0 {
		return false
	}
	evt := r.injectQueue[0]
	copy(r.injectQueue, r.injectQueue[1:])
	r.injectQueue = r.injectQueue[:len(r.injectQueue)-1]

	r.ProcessPointer(evt.x, evt.y, evt.pressed)
	return true
}
