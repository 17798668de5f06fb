// Package easel is an immediate-mode 2D scene graph drawn onto a raster
// surface.
//
// Easel models shapes with a position, rotation, scale and style, groups
// them into layers, redraws the whole scene every frame, and answers "which
// shape is under this point" for pointer interaction. Surfaces are provided
// for [Ebitengine] windows and for headless rendering with [gg].
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window, a
// surface and an animation loop for you:
//
//	easel.Run(easel.RunConfig{Title: "My Scene", Width: 640, Height: 480},
//		func(r *easel.Renderer) error {
//			r.Add(easel.NewRectangle(easel.RectangleOptions{
//				ShapeOptions: easel.ShapeOptions{X: 320, Y: 240,
//					Style: easel.Style{Fill: easel.Ptr(easel.MustParseColor("tomato"))}},
//				Width: 120, Height: 80, CornerRadius: 12,
//			}))
//			return nil
//		})
//
// For headless rendering create a [GGSurface] and call [Renderer.Render]
// yourself:
//
//	surface, _ := easel.NewGGSurface(256, 256)
//	r, _ := easel.NewRenderer(surface)
//	// ... add nodes ...
//	r.Render()
//	surface.SavePNG("out.png")
//
// # Scene graph
//
// Every element is a [Node]: a [Shape] ([*Rectangle] or [*Circle]) or a
// [*Layer]. Nodes paint in insertion order, so the last one added is on top.
// A layer offsets and fades its children; layers nest.
//
// A shape draws by translating to its position, rotating, then scaling,
// and hit tests by inverting exactly that transform. [Shape.Bounds] ignores
// rotation.
//
// # Events
//
// [Layer] and [Renderer] embed an [Emitter]. Layers announce structural and
// state changes; the renderer also announces renders, animation frames,
// resizes and pointer activity. Listeners run synchronously over a snapshot
// of the listener list, and a panicking listener does not stop the others.
//
// # Animation
//
// [Renderer.StartAnimation] runs a callback once per frame through a
// [FrameScheduler], then redraws. [TweenGroup] values (via [gween]) animate
// shape and layer properties from inside that callback.
//
// # Logging
//
// Easel is silent by default. Install a [log/slog] logger with [SetLogger];
// [Renderer.SetDebugMode] adds per-frame stats and geometry warnings.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/gogpu/gg
// [gween]: https://github.com/tanema/gween
package easel
