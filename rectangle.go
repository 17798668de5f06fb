package easel

import "math"

// RectangleOptions configures NewRectangle. Width and Height are required
// and not validated.
type RectangleOptions struct {
	ShapeOptions
	Width        float64
	Height       float64
	CornerRadius float64
}

// Rectangle is a box centered on its origin, with local extents
// [-Width/2, Width/2] × [-Height/2, Height/2] and optional rounded corners.
type Rectangle struct {
	shapeBase
	width        float64
	height       float64
	cornerRadius float64
}

// NewRectangle creates a rectangle from opts.
func NewRectangle(opts RectangleOptions) *Rectangle {
	return &Rectangle{
		shapeBase:    newShapeBase(opts.ShapeOptions),
		width:        opts.Width,
		height:       opts.Height,
		cornerRadius: opts.CornerRadius,
	}
}

// Kind returns ShapeRectangle.
func (r *Rectangle) Kind() ShapeKind { return ShapeRectangle }

// Size returns the unscaled width and height.
func (r *Rectangle) Size() Size { return Size{r.width, r.height} }

// SetSize sets the unscaled width and height.
func (r *Rectangle) SetSize(width, height float64) {
	r.width = width
	r.height = height
}

// CornerRadius returns the radius as set, before clamping.
func (r *Rectangle) CornerRadius() float64 { return r.cornerRadius }

// SetCornerRadius sets the corner radius. It is clamped at draw time, never
// here.
func (r *Rectangle) SetCornerRadius(radius float64) { r.cornerRadius = radius }

// EffectiveCornerRadius is the radius actually drawn:
// min(CornerRadius, Width/2, Height/2), or 0 for a non-positive radius.
func (r *Rectangle) EffectiveCornerRadius() float64 {
	if r.cornerRadius <= 0 {
		return 0
	}
	return math.Min(r.cornerRadius, math.Min(r.width/2, r.height/2))
}

// Draw paints the rectangle, then fills and/or strokes it per its style.
func (r *Rectangle) Draw(ctx Context) error {
	return drawShape(ctx, ShapeRectangle, &r.shapeBase, r.path)
}

func (r *Rectangle) path(ctx Context) {
	x, y := -r.width/2, -r.height/2
	w, h := r.width, r.height

	rad := r.EffectiveCornerRadius()
	if rad <= 0 {
		ctx.Rect(x, y, w, h)
		return
	}

	// Clockwise from the top edge.
	ctx.MoveTo(x+rad, y)
	ctx.LineTo(x+w-rad, y)
	ctx.ArcTo(x+w, y, x+w, y+rad, rad)
	ctx.LineTo(x+w, y+h-rad)
	ctx.ArcTo(x+w, y+h, x+w-rad, y+h, rad)
	ctx.LineTo(x+rad, y+h)
	ctx.ArcTo(x, y+h, x, y+h-rad, rad)
	ctx.LineTo(x, y+rad)
	ctx.ArcTo(x, y, x+rad, y, rad)
	ctx.ClosePath()
}

// ContainsPoint reports whether (x, y) lies in the rectangle. All four edges
// are inclusive. Rounded corners are not cut out.
func (r *Rectangle) ContainsPoint(x, y float64) bool {
	lx, ly := r.pose.ToLocal(x, y)
	hw, hh := r.width/2, r.height/2
	return lx >= -hw && lx <= hw && ly >= -hh && ly <= hh
}

// HitTest returns r when it contains (x, y).
func (r *Rectangle) HitTest(x, y float64) Shape {
	if r.ContainsPoint(x, y) {
		return r
	}
	return nil
}

// Bounds returns the scaled box around the position, ignoring rotation.
func (r *Rectangle) Bounds() Rect {
	w := r.width * r.pose.ScaleX
	h := r.height * r.pose.ScaleY
	return Rect{
		X:      r.pose.X - w/2,
		Y:      r.pose.Y - h/2,
		Width:  w,
		Height: h,
	}
}
