package easel

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	clock := &easel.ManualClock{}
//	r, err := easel.NewRenderer(surface,
//	    easel.WithScheduler(easel.NewLoopScheduler(clock.Now)),
//	    easel.WithIDAllocator(&easel.SequentialIDs{Prefix: "layer"}),
//	)
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	scheduler     FrameScheduler
	ids           IDAllocator
	debug         bool
	dragDeadZone  float64
	screenshotDir string
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		scheduler:     nil, // a LoopScheduler on the monotonic clock
		ids:           nil, // random base-36 ids
		dragDeadZone:  defaultDragDeadZone,
		screenshotDir: "screenshots",
	}
}

// WithScheduler sets the frame scheduler driving the animation loop.
func WithScheduler(s FrameScheduler) RendererOption {
	return func(o *rendererOptions) {
		o.scheduler = s
	}
}

// WithIDAllocator sets the allocator Renderer.NewLayer uses for layers
// created without an explicit ID.
func WithIDAllocator(ids IDAllocator) RendererOption {
	return func(o *rendererOptions) {
		o.ids = ids
	}
}

// WithDebug enables debug mode at creation; see Renderer.SetDebugMode.
func WithDebug(enabled bool) RendererOption {
	return func(o *rendererOptions) {
		o.debug = enabled
	}
}

// WithDragDeadZone sets how far, in pixels, a pressed pointer must travel
// before a drag starts. The default is 4.
func WithDragDeadZone(pixels float64) RendererOption {
	return func(o *rendererOptions) {
		o.dragDeadZone = pixels
	}
}

// WithScreenshotDir sets the directory Renderer.Screenshot writes to. The
// default is "screenshots" in the working directory.
func WithScreenshotDir(dir string) RendererOption {
	return func(o *rendererOptions) {
		o.screenshotDir = dir
	}
}
