package easel

import "errors"

// ErrResourceUnavailable is returned, wrapped, when a drawing surface or its
// 2D context cannot be obtained. It is fatal at construction.
var ErrResourceUnavailable = errors.New("easel: drawing resource unavailable")

// Context is the stateful 2D drawing context shapes draw into. It mirrors the
// HTML canvas model: Save and Restore bracket every change to the transform,
// global alpha, colors, line width and shadow.
//
// Path coordinates are in the current user space; implementations transform
// them by the current matrix when they are added, so a Restore after building
// a path does not move it.
type Context interface {
	Save()
	Restore()

	Translate(x, y float64)
	Rotate(angle float64)
	Scale(sx, sy float64)

	GlobalAlpha() float64
	SetGlobalAlpha(alpha float64)
	SetFillColor(c Color)
	SetStrokeColor(c Color)
	SetLineWidth(w float64)
	SetShadow(c Color, blur, offsetX, offsetY float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// ArcTo appends a circular arc of the given radius tangent to the lines
	// (current point → x1,y1) and (x1,y1 → x2,y2), preceded by a straight
	// segment to the first tangent point.
	ArcTo(x1, y1, x2, y2, radius float64)
	Rect(x, y, w, h float64)
	ClosePath()

	Fill() error
	Stroke() error
}

// Surface is the raster target a Renderer draws onto.
type Surface interface {
	// Context returns the surface's drawing context. It fails with an error
	// wrapping ErrResourceUnavailable when no context can be produced.
	Context() (Context, error)
	// Clear resets every pixel to transparent.
	Clear()
	Dimensions() (width, height int)
	SetDimensions(width, height int) error
}
