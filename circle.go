package easel

// CircleOptions configures NewCircle.
type CircleOptions struct {
	ShapeOptions
	Radius float64
}

// Circle is a disc centered on its origin. Under a non-uniform scale it
// draws and hit-tests as an ellipse.
type Circle struct {
	shapeBase
	radius float64
}

// NewCircle creates a circle from opts.
func NewCircle(opts CircleOptions) *Circle {
	return &Circle{shapeBase: newShapeBase(opts.ShapeOptions), radius: opts.Radius}
}

// Kind returns ShapeCircle.
func (c *Circle) Kind() ShapeKind { return ShapeCircle }

// Radius returns the unscaled radius.
func (c *Circle) Radius() float64 { return c.radius }

// SetRadius sets the unscaled radius.
func (c *Circle) SetRadius(r float64) { c.radius = r }

// Draw paints the circle as four quarter arcs, then fills and/or strokes it.
func (c *Circle) Draw(ctx Context) error {
	return drawShape(ctx, ShapeCircle, &c.shapeBase, c.path)
}

func (c *Circle) path(ctx Context) {
	r := c.radius
	ctx.MoveTo(r, 0)
	ctx.ArcTo(r, r, 0, r, r)
	ctx.ArcTo(-r, r, -r, 0, r)
	ctx.ArcTo(-r, -r, 0, -r, r)
	ctx.ArcTo(r, -r, r, 0, r)
	ctx.ClosePath()
}

// ContainsPoint reports whether (x, y) lies in the closed disc.
func (c *Circle) ContainsPoint(x, y float64) bool {
	lx, ly := c.pose.ToLocal(x, y)
	return lx*lx+ly*ly <= c.radius*c.radius
}

// HitTest returns c when it contains (x, y).
func (c *Circle) HitTest(x, y float64) Shape {
	if c.ContainsPoint(x, y) {
		return c
	}
	return nil
}

// Bounds returns the scaled box around the position, ignoring rotation.
func (c *Circle) Bounds() Rect {
	w := 2 * c.radius * c.pose.ScaleX
	h := 2 * c.radius * c.pose.ScaleY
	return Rect{X: c.pose.X - w/2, Y: c.pose.Y - h/2, Width: w, Height: h}
}
