package easel

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

// GGSurface is a headless Surface backed by a gg software raster context.
// Use it for server-side rendering, screenshots and tests.
type GGSurface struct {
	dc  *gg.Context
	ctx *ggContext
}

// NewGGSurface creates a width x height surface. Non-positive dimensions fail
// with an error wrapping ErrResourceUnavailable.
func NewGGSurface(width, height int) (*GGSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("easel: gg surface %dx%d: %w", width, height, ErrResourceUnavailable)
	}
	dc := gg.NewContext(width, height)
	return &GGSurface{
		dc:  dc,
		ctx: &ggContext{canvasCore: newCanvasCore(), dc: dc},
	}, nil
}

var errSurfaceClosed = errors.New("surface closed")

// Context returns the surface's drawing context. It fails once the surface
// is closed.
func (s *GGSurface) Context() (Context, error) {
	if s.dc == nil {
		return nil, fmt.Errorf("easel: gg surface: %w: %w", errSurfaceClosed, ErrResourceUnavailable)
	}
	return s.ctx, nil
}

// Clear resets every pixel to transparent.
func (s *GGSurface) Clear() {
	if s.dc != nil {
		s.dc.Clear()
	}
}

// Dimensions returns the surface size in pixels.
func (s *GGSurface) Dimensions() (width, height int) {
	if s.dc == nil {
		return 0, 0
	}
	return s.dc.Width(), s.dc.Height()
}

// SetDimensions resizes the surface, discarding its pixels, and resets the
// context state.
func (s *GGSurface) SetDimensions(width, height int) error {
	if s.dc == nil {
		return fmt.Errorf("easel: gg surface: %w: %w", errSurfaceClosed, ErrResourceUnavailable)
	}
	if err := s.dc.Resize(width, height); err != nil {
		return fmt.Errorf("easel: gg surface: %w", err)
	}
	s.ctx.reset()
	return nil
}

// Image returns a copy of the surface pixels.
func (s *GGSurface) Image() image.Image {
	if s.dc == nil {
		return image.NewRGBA(image.Rectangle{})
	}
	if err := s.dc.FlushGPU(); err != nil {
		Logger().Error("easel: gg surface: flush before read back", "err", err)
	}
	return s.dc.Image()
}

// SavePNG writes the surface to a PNG file.
func (s *GGSurface) SavePNG(path string) error {
	if s.dc == nil {
		return fmt.Errorf("easel: save png: %w", errSurfaceClosed)
	}
	return s.dc.SavePNG(path)
}

// Close releases the gg context. The surface is unusable afterwards.
func (s *GGSurface) Close() error {
	if s.dc == nil {
		return nil
	}
	err := s.dc.Close()
	s.dc = nil
	return err
}

// ggContext tracks canvas state itself and hands gg device-space paths
// through FillPath and StrokePath; gg's own matrix stays at the identity.
type ggContext struct {
	canvasCore
	dc *gg.Context
}

func (c *ggContext) Fill() error {
	if c.empty() {
		return nil
	}
	if c.hasShadow() {
		if err := c.paint(c.state.shadow, c.state.shadowX, c.state.shadowY, c.dc.FillPath); err != nil {
			return fmt.Errorf("shadow: %w", err)
		}
	}
	return c.paint(c.state.fill, 0, 0, c.dc.FillPath)
}

func (c *ggContext) Stroke() error {
	if c.empty() {
		return nil
	}
	c.dc.SetLineWidth(c.deviceLineWidth())
	if c.hasShadow() {
		if err := c.paint(c.state.shadow, c.state.shadowX, c.state.shadowY, c.dc.StrokePath); err != nil {
			return fmt.Errorf("shadow: %w", err)
		}
	}
	return c.paint(c.state.stroke, 0, 0, c.dc.StrokePath)
}

// paint rasterizes the path offset by (dx, dy) with op in col.
func (c *ggContext) paint(col Color, dx, dy float64, op func(*gg.Path) error) error {
	col = c.effective(col)
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	return op(c.devicePath(dx, dy))
}
