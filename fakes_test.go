package easel

import (
	"fmt"
	"strings"
	"time"
)

// recordingContext is a Context that logs every call as a short string such
// as "translate(10,20)" while keeping real canvas state underneath.
type recordingContext struct {
	canvasCore
	log *[]string

	fillErr   error
	strokeErr error
	saves     int // Save calls minus Restore calls
}

func newRecordingContext() *recordingContext {
	log := []string{}
	return &recordingContext{canvasCore: newCanvasCore(), log: &log}
}

func (c *recordingContext) record(format string, args ...any) {
	*c.log = append(*c.log, fmt.Sprintf(format, args...))
}

// calls returns the log and resets it.
func (c *recordingContext) calls() []string {
	out := *c.log
	*c.log = []string{}
	return out
}

func (c *recordingContext) Save() {
	c.saves++
	c.record("save")
	c.canvasCore.Save()
}

func (c *recordingContext) Restore() {
	c.saves--
	c.record("restore")
	c.canvasCore.Restore()
}

func (c *recordingContext) Translate(x, y float64) {
	c.record("translate(%g,%g)", x, y)
	c.canvasCore.Translate(x, y)
}

func (c *recordingContext) Rotate(a float64) {
	c.record("rotate(%g)", a)
	c.canvasCore.Rotate(a)
}

func (c *recordingContext) Scale(sx, sy float64) {
	c.record("scale(%g,%g)", sx, sy)
	c.canvasCore.Scale(sx, sy)
}

func (c *recordingContext) SetGlobalAlpha(a float64) {
	c.record("alpha(%g)", a)
	c.canvasCore.SetGlobalAlpha(a)
}

func (c *recordingContext) SetFillColor(col Color) {
	c.record("fillColor(%g,%g,%g,%g)", col.R, col.G, col.B, col.A)
	c.canvasCore.SetFillColor(col)
}

func (c *recordingContext) SetStrokeColor(col Color) {
	c.record("strokeColor(%g,%g,%g,%g)", col.R, col.G, col.B, col.A)
	c.canvasCore.SetStrokeColor(col)
}

func (c *recordingContext) SetLineWidth(w float64) {
	c.record("lineWidth(%g)", w)
	c.canvasCore.SetLineWidth(w)
}

func (c *recordingContext) SetShadow(col Color, blur, dx, dy float64) {
	c.record("shadow(%g,%g,%g)", blur, dx, dy)
	c.canvasCore.SetShadow(col, blur, dx, dy)
}

func (c *recordingContext) BeginPath() {
	c.record("beginPath")
	c.canvasCore.BeginPath()
}

func (c *recordingContext) MoveTo(x, y float64) {
	c.record("moveTo(%g,%g)", x, y)
	c.canvasCore.MoveTo(x, y)
}

func (c *recordingContext) LineTo(x, y float64) {
	c.record("lineTo(%g,%g)", x, y)
	c.canvasCore.LineTo(x, y)
}

func (c *recordingContext) ArcTo(x1, y1, x2, y2, r float64) {
	c.record("arcTo(%g,%g,%g,%g,%g)", x1, y1, x2, y2, r)
	c.canvasCore.ArcTo(x1, y1, x2, y2, r)
}

func (c *recordingContext) Rect(x, y, w, h float64) {
	c.record("rect(%g,%g,%g,%g)", x, y, w, h)
	c.canvasCore.Rect(x, y, w, h)
}

func (c *recordingContext) ClosePath() {
	c.record("closePath")
	c.canvasCore.ClosePath()
}

func (c *recordingContext) Fill() error {
	c.record("fill@%g", c.state.alpha)
	return c.fillErr
}

func (c *recordingContext) Stroke() error {
	c.record("stroke@%g", c.state.alpha)
	return c.strokeErr
}

// fakeSurface hands out a recordingContext and logs clears into the same log.
type fakeSurface struct {
	ctx    *recordingContext
	ctxErr error
	w, h   int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{ctx: newRecordingContext(), w: 300, h: 150}
}

func (s *fakeSurface) Context() (Context, error) {
	if s.ctxErr != nil {
		return nil, s.ctxErr
	}
	return s.ctx, nil
}

func (s *fakeSurface) Clear() { s.ctx.record("clear") }

func (s *fakeSurface) Dimensions() (int, int) { return s.w, s.h }

func (s *fakeSurface) SetDimensions(w, h int) error {
	s.w, s.h = w, h
	return nil
}

// only returns the entries of log with one of the given prefixes.
func only(log []string, prefixes ...string) []string {
	var out []string
	for _, e := range log {
		for _, p := range prefixes {
			if strings.HasPrefix(e, p) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// newTestRenderer returns a renderer on a fake surface driven by a manual
// clock.
func newTestRenderer(opts ...RendererOption) (*Renderer, *fakeSurface, *LoopScheduler, *ManualClock) {
	surface := newFakeSurface()
	clock := &ManualClock{}
	sched := NewLoopScheduler(clock.Now)
	r, err := NewRenderer(surface, append([]RendererOption{WithScheduler(sched)}, opts...)...)
	if err != nil {
		panic(err)
	}
	return r, surface, sched, clock
}

func rect(x, y, w, h float64) *Rectangle {
	return NewRectangle(RectangleOptions{
		ShapeOptions: ShapeOptions{X: x, Y: y, Style: Style{Fill: Ptr(ColorBlack)}},
		Width:        w,
		Height:       h,
	})
}

const frame = 16 * time.Millisecond
