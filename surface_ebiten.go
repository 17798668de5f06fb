package easel

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface is a Surface backed by an offscreen ebiten image. The Game
// runner blits it to the screen every frame.
type EbitenSurface struct {
	img *ebiten.Image
	ctx *ebitenContext
}

// NewEbitenSurface creates a width x height offscreen surface. Non-positive
// dimensions fail with an error wrapping ErrResourceUnavailable.
func NewEbitenSurface(width, height int) (*EbitenSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("easel: ebiten surface %dx%d: %w", width, height, ErrResourceUnavailable)
	}
	img := ebiten.NewImage(width, height)
	return &EbitenSurface{
		img: img,
		ctx: &ebitenContext{canvasCore: newCanvasCore(), dst: img},
	}, nil
}

// Context returns the surface's drawing context.
func (s *EbitenSurface) Context() (Context, error) {
	if s.img == nil {
		return nil, fmt.Errorf("easel: ebiten surface: %w: %w", errSurfaceClosed, ErrResourceUnavailable)
	}
	return s.ctx, nil
}

// Clear resets every pixel to transparent.
func (s *EbitenSurface) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
}

// Dimensions returns the surface size in pixels.
func (s *EbitenSurface) Dimensions() (width, height int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// SetDimensions replaces the backing image with one of the new size and
// resets the context state.
func (s *EbitenSurface) SetDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("easel: ebiten surface %dx%d: %w", width, height, ErrResourceUnavailable)
	}
	if s.img != nil {
		if w, h := s.Dimensions(); w == width && h == height {
			return nil
		}
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(width, height)
	s.ctx.dst = s.img
	s.ctx.reset()
	return nil
}

// Image returns the backing image. It is replaced by SetDimensions.
func (s *EbitenSurface) Image() *ebiten.Image { return s.img }

// Close deallocates the backing image.
func (s *EbitenSurface) Close() error {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	return nil
}

var whiteSubImage *ebiten.Image

// solidSource returns a white sub-image for DrawTriangles. Sampling the
// center of a 3x3 white image keeps edge texels out of anti-aliased fills.
func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

type ebitenContext struct {
	canvasCore
	dst *ebiten.Image

	vs []ebiten.Vertex
	is []uint16
}

func (c *ebitenContext) Fill() error {
	return c.draw(false)
}

func (c *ebitenContext) Stroke() error {
	return c.draw(true)
}

func (c *ebitenContext) draw(stroke bool) error {
	if c.dst == nil {
		return fmt.Errorf("easel: ebiten context: %w", ErrResourceUnavailable)
	}
	if c.empty() {
		return nil
	}
	col := c.state.fill
	if stroke {
		col = c.state.stroke
	}
	if c.hasShadow() {
		c.drawPath(stroke, c.state.shadow, c.state.shadowX, c.state.shadowY)
	}
	c.drawPath(stroke, col, 0, 0)
	return nil
}

func (c *ebitenContext) drawPath(stroke bool, col Color, dx, dy float64) {
	var path vector.Path
	c.devicePath(dx, dy).Iterate(func(verb gg.PathVerb, p []float64) {
		switch verb {
		case gg.MoveTo:
			path.MoveTo(float32(p[0]), float32(p[1]))
		case gg.LineTo:
			path.LineTo(float32(p[0]), float32(p[1]))
		case gg.QuadTo:
			path.QuadTo(float32(p[0]), float32(p[1]), float32(p[2]), float32(p[3]))
		case gg.CubicTo:
			path.CubicTo(float32(p[0]), float32(p[1]), float32(p[2]), float32(p[3]), float32(p[4]), float32(p[5]))
		case gg.Close:
			path.Close()
		}
	})

	if stroke {
		c.vs, c.is = path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
			Width:    float32(c.deviceLineWidth()),
			LineJoin: vector.LineJoinMiter,
		})
	} else {
		c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	}

	col = c.effective(col)
	for i := range c.vs {
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = float32(col.R)
		c.vs[i].ColorG = float32(col.G)
		c.vs[i].ColorB = float32(col.B)
		c.vs[i].ColorA = float32(col.A)
	}

	opts := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	if !stroke {
		opts.FillRule = ebiten.FillRuleNonZero
	}
	c.dst.DrawTriangles(c.vs, c.is, solidSource(), opts)
}
