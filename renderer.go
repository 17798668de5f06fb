package easel

import (
	"fmt"
	"slices"
	"time"
)

// Renderer owns a Surface and the top-level nodes drawn onto it. It redraws
// the whole scene on every Render, runs the animation loop, and maps pointer
// positions to the topmost shape beneath them.
//
// Renderer embeds an Emitter. Besides the structural events it shares with
// Layer it emits the render, animation, resize and pointer events.
//
// A Renderer and everything added to it belong to one goroutine: the one
// driving its FrameScheduler.
type Renderer struct {
	Emitter

	surface   Surface
	ctx       Context
	nodes     []Node
	scheduler FrameScheduler
	ids       IDAllocator
	debug     bool

	// Animation loop.
	running  bool
	token    FrameToken
	lastTime time.Duration
	loopGen  uint64
	frameFn  func(dt time.Duration)

	// Pointer input.
	pointer      pointerState
	dragDeadZone float64
	injectQueue  []syntheticPointerEvent
	scriptRunner *ScriptRunner

	screenshotQueue []string
	screenshotDir   string
}

// NewRenderer creates a renderer drawing onto surface. It fails with an
// error wrapping ErrResourceUnavailable when surface is nil or cannot
// provide a drawing context.
func NewRenderer(surface Surface, opts ...RendererOption) (*Renderer, error) {
	if surface == nil {
		return nil, fmt.Errorf("easel: new renderer: nil surface: %w", ErrResourceUnavailable)
	}
	ctx, err := surface.Context()
	if err != nil {
		return nil, fmt.Errorf("easel: new renderer: %w", err)
	}
	if ctx == nil {
		return nil, fmt.Errorf("easel: new renderer: nil context: %w", ErrResourceUnavailable)
	}

	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.scheduler == nil {
		o.scheduler = NewLoopScheduler(nil)
	}

	r := &Renderer{
		surface:       surface,
		ctx:           ctx,
		scheduler:     o.scheduler,
		ids:           o.ids,
		dragDeadZone:  o.dragDeadZone,
		screenshotDir: o.screenshotDir,
	}
	r.SetDebugMode(o.debug)
	return r, nil
}

// SetDebugMode enables or disables debug mode. In debug mode every Render
// logs frame stats at debug level and suspicious geometry is reported at
// warn level through Logger.
func (r *Renderer) SetDebugMode(enabled bool) {
	if enabled == r.debug {
		return
	}
	r.debug = enabled
	if enabled {
		debugRenderers.Add(1)
	} else {
		debugRenderers.Add(-1)
	}
}

// Surface returns the surface the renderer draws onto.
func (r *Renderer) Surface() Surface { return r.surface }

// Scheduler returns the frame scheduler driving the animation loop.
func (r *Renderer) Scheduler() FrameScheduler { return r.scheduler }

// Add appends n on top of the scene and emits EventShapeAdded.
// It panics if n is nil.
func (r *Renderer) Add(n Node) {
	if isNilNode(n) {
		panic("easel: cannot add nil node")
	}
	r.nodes = append(r.nodes, n)
	if r.debug {
		debugCheckNode(n)
	}
	r.emit(EventShapeAdded, NodeEvent{Node: n})
}

// Remove detaches the first occurrence of n and emits EventShapeRemoved.
// Removing a node that was never added does nothing.
func (r *Renderer) Remove(n Node) {
	var ok bool
	r.nodes, ok = removeNode(r.nodes, n)
	if !ok {
		return
	}
	r.emit(EventShapeRemoved, NodeEvent{Node: n})
}

// Clear removes every node, clears the surface and emits EventClear.
func (r *Renderer) Clear() {
	clear(r.nodes)
	r.nodes = r.nodes[:0]
	r.surface.Clear()
	r.emit(EventClear, nil)
}

// Nodes returns a copy of the top-level nodes in paint order.
func (r *Renderer) Nodes() []Node { return slices.Clone(r.nodes) }

// Len returns the number of top-level nodes.
func (r *Renderer) Len() int { return len(r.nodes) }

// NewLayer creates a layer, allocating its ID from the renderer's
// IDAllocator when opts names neither an ID nor an allocator. The layer is
// not added to the scene.
func (r *Renderer) NewLayer(opts LayerOptions) *Layer {
	if opts.IDs == nil {
		opts.IDs = r.ids
	}
	return NewLayer(opts)
}

// Render clears the surface and draws every node in insertion order,
// bracketed by EventBeforeRender and EventAfterRender. A node that fails to
// draw does not stop the rest; the failures are joined and returned.
func (r *Renderer) Render() error {
	r.emit(EventBeforeRender, nil)

	var stats renderStats
	var t0 time.Time
	if r.debug {
		t0 = time.Now()
	}

	r.surface.Clear()

	if r.debug {
		stats.clearTime = time.Since(t0)
		t0 = time.Now()
	}

	err := drawNodes(r.ctx, r.nodes)

	if r.debug {
		stats.drawTime = time.Since(t0)
		stats.nodes = len(r.nodes)
		stats.shapes, _ = countShapes(r.nodes)
		if err != nil {
			stats.failures = len(unwrapJoined(err))
		}
		r.debugLog(stats)
	}

	r.flushScreenshots()
	r.emit(EventAfterRender, nil)
	return err
}

// HitTest returns the topmost visible shape containing (x, y), searching
// into layers, or nil.
func (r *Renderer) HitTest(x, y float64) Shape {
	return hitTestNodes(r.nodes, x, y)
}

// Dimensions returns the surface size in pixels.
func (r *Renderer) Dimensions() (width, height int) {
	return r.surface.Dimensions()
}

// SetDimensions resizes the surface and emits EventCanvasResize.
func (r *Renderer) SetDimensions(width, height int) error {
	if err := r.surface.SetDimensions(width, height); err != nil {
		return fmt.Errorf("easel: resize to %dx%d: %w", width, height, err)
	}
	ctx, err := r.surface.Context()
	if err != nil {
		return fmt.Errorf("easel: resize to %dx%d: %w", width, height, err)
	}
	r.ctx = ctx
	r.emit(EventCanvasResize, SizeEvent{Width: float64(width), Height: float64(height)})
	return nil
}

func unwrapJoined(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
