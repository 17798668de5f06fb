package easel

import (
	"math"

	"github.com/gogpu/gg"
)

// drawState is the part of the canvas state bracketed by Save and Restore.
type drawState struct {
	m          gg.Matrix // user space → device space
	alpha      float64
	fill       Color
	stroke     Color
	lineWidth  float64
	shadow     Color
	shadowBlur float64
	shadowX    float64
	shadowY    float64
}

func defaultDrawState() drawState {
	return drawState{
		m:         gg.Identity(),
		alpha:     1,
		fill:      ColorBlack,
		stroke:    ColorBlack,
		lineWidth: 1,
	}
}

// canvasCore holds the state stack and the device-space path shared by the
// built-in Context implementations. Backends embed it and implement only
// Fill and Stroke from the recorded path.
type canvasCore struct {
	state drawState
	stack []drawState
	path  *gg.Path // device space
}

func newCanvasCore() canvasCore {
	return canvasCore{state: defaultDrawState(), path: gg.NewPath()}
}

// reset restores the default state and drops the path and stack.
func (c *canvasCore) reset() {
	c.state = defaultDrawState()
	c.stack = c.stack[:0]
	c.BeginPath()
}

func (c *canvasCore) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the last saved state. An unbalanced Restore is a no-op.
func (c *canvasCore) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *canvasCore) Translate(x, y float64) {
	c.state.m = c.state.m.Multiply(gg.Translate(x, y))
}

func (c *canvasCore) Rotate(angle float64) {
	c.state.m = c.state.m.Multiply(gg.Rotate(angle))
}

func (c *canvasCore) Scale(sx, sy float64) {
	c.state.m = c.state.m.Multiply(gg.Scale(sx, sy))
}

func (c *canvasCore) GlobalAlpha() float64         { return c.state.alpha }
func (c *canvasCore) SetGlobalAlpha(alpha float64) { c.state.alpha = alpha }
func (c *canvasCore) SetFillColor(col Color)       { c.state.fill = col }
func (c *canvasCore) SetStrokeColor(col Color)     { c.state.stroke = col }
func (c *canvasCore) SetLineWidth(w float64)       { c.state.lineWidth = w }

func (c *canvasCore) SetShadow(col Color, blur, offsetX, offsetY float64) {
	c.state.shadow = col
	c.state.shadowBlur = blur
	c.state.shadowX = offsetX
	c.state.shadowY = offsetY
}

func (c *canvasCore) BeginPath() {
	if c.path == nil {
		c.path = gg.NewPath()
		return
	}
	c.path.Clear()
}

func (c *canvasCore) device(x, y float64) gg.Point {
	return c.state.m.TransformPoint(gg.Pt(x, y))
}

func (c *canvasCore) MoveTo(x, y float64) {
	p := c.device(x, y)
	c.path.MoveTo(p.X, p.Y)
}

// LineTo behaves as MoveTo when the path has no current point.
func (c *canvasCore) LineTo(x, y float64) {
	if !c.path.HasCurrentPoint() {
		c.MoveTo(x, y)
		return
	}
	p := c.device(x, y)
	c.path.LineTo(p.X, p.Y)
}

func (c *canvasCore) ArcTo(x1, y1, x2, y2, radius float64) {
	if !c.path.HasCurrentPoint() {
		c.MoveTo(x1, y1)
		return
	}
	u := c.state.m.Invert().TransformPoint(c.path.CurrentPoint())

	t1, c1, c2, t2, ok := arcToCubic(Vec2{u.X, u.Y}, Vec2{x1, y1}, Vec2{x2, y2}, radius)
	if !ok {
		c.LineTo(x1, y1)
		return
	}
	c.LineTo(t1.X, t1.Y)
	d1, d2, de := c.device(c1.X, c1.Y), c.device(c2.X, c2.Y), c.device(t2.X, t2.Y)
	c.path.CubicTo(d1.X, d1.Y, d2.X, d2.Y, de.X, de.Y)
}

func (c *canvasCore) Rect(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

func (c *canvasCore) ClosePath() {
	if !c.path.HasCurrentPoint() {
		return
	}
	c.path.Close()
}

// empty reports whether there is nothing to paint.
func (c *canvasCore) empty() bool {
	return c.path.NumVerbs() == 0
}

// devicePath returns the recorded path offset by (dx, dy).
func (c *canvasCore) devicePath(dx, dy float64) *gg.Path {
	if dx == 0 && dy == 0 {
		return c.path
	}
	return c.path.Transform(gg.Translate(dx, dy))
}

// effective returns col with the global alpha applied.
func (c *canvasCore) effective(col Color) Color {
	return col.WithAlpha(c.state.alpha)
}

// hasShadow reports whether fills and strokes should cast a shadow.
func (c *canvasCore) hasShadow() bool {
	s := c.state
	return s.shadow.A > 0 && (s.shadowBlur > 0 || s.shadowX != 0 || s.shadowY != 0)
}

// deviceLineWidth is the line width scaled by the current transform. Non-uniform
// scales use the geometric mean of the axis scales.
func (c *canvasCore) deviceLineWidth() float64 {
	m := c.state.m
	sx := math.Hypot(m.A, m.D)
	sy := math.Hypot(m.B, m.E)
	return c.state.lineWidth * math.Sqrt(sx*sy)
}

// arcToCubic computes the canvas arcTo corner for current point p0, corner p1
// and direction point p2: the two tangent points and the control points of a
// single cubic Bézier approximating the arc between them. ok is false when
// the corner is degenerate (zero radius, coincident or collinear points), in
// which case callers draw a straight line to p1.
func arcToCubic(p0, p1, p2 Vec2, r float64) (t1, c1, c2, t2 Vec2, ok bool) {
	if r <= 0 || math.IsNaN(r) {
		return
	}
	v1x, v1y := p0.X-p1.X, p0.Y-p1.Y
	v2x, v2y := p2.X-p1.X, p2.Y-p1.Y
	l1, l2 := math.Hypot(v1x, v1y), math.Hypot(v2x, v2y)
	if l1 == 0 || l2 == 0 {
		return
	}
	v1x, v1y = v1x/l1, v1y/l1
	v2x, v2y = v2x/l2, v2y/l2

	if cross := v1x*v2y - v1y*v2x; math.Abs(cross) < 1e-12 {
		return
	}
	dot := math.Max(-1, math.Min(1, v1x*v2x+v1y*v2y))
	theta := math.Acos(dot)

	d := r / math.Tan(theta/2)
	t1 = Vec2{p1.X + v1x*d, p1.Y + v1y*d}
	t2 = Vec2{p1.X + v2x*d, p1.Y + v2y*d}

	// The arc sweeps π-θ.
	k := 4.0 / 3.0 * math.Tan((math.Pi-theta)/4) * r
	c1 = Vec2{t1.X - v1x*k, t1.Y - v1y*k}
	c2 = Vec2{t2.X - v2x*k, t2.Y - v2y*k}
	return t1, c1, c2, t2, true
}
