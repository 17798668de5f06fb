package easel

import (
	"errors"
	"image"
	"path/filepath"
	"strings"
	"testing"
)

func newGG(t *testing.T, w, h int) *GGSurface {
	t.Helper()
	s, err := NewGGSurface(w, h)
	if err != nil {
		t.Fatalf("NewGGSurface: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func alphaAt(img image.Image, x, y int) uint8 {
	_, _, _, a := img.At(x, y).RGBA()
	return uint8(a >> 8)
}

func TestNewGGSurfaceInvalidSize(t *testing.T) {
	for _, sz := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		_, err := NewGGSurface(sz[0], sz[1])
		if !errors.Is(err, ErrResourceUnavailable) {
			t.Errorf("NewGGSurface(%d, %d) err = %v, want ErrResourceUnavailable", sz[0], sz[1], err)
		}
	}
}

func TestGGSurfaceFillsCenteredRectangle(t *testing.T) {
	s := newGG(t, 20, 20)
	r, err := NewRenderer(s)
	if err != nil {
		t.Fatal(err)
	}
	r.Add(NewRectangle(RectangleOptions{
		ShapeOptions: ShapeOptions{X: 10, Y: 10, Style: Style{Fill: Ptr(Color{1, 0, 0, 1})}},
		Width:        10,
		Height:       10,
	}))
	if err := r.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	img := s.Image()
	if a := alphaAt(img, 10, 10); a != 255 {
		t.Errorf("center alpha = %d, want 255", a)
	}
	if a := alphaAt(img, 1, 1); a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	if cr, cg, _, _ := img.At(10, 10).RGBA(); cr>>8 != 255 || cg>>8 != 0 {
		t.Errorf("center color = (%d, %d), want red", cr>>8, cg>>8)
	}
}

func TestGGSurfaceMultipliesAlpha(t *testing.T) {
	s := newGG(t, 20, 20)
	r, err := NewRenderer(s)
	if err != nil {
		t.Fatal(err)
	}
	l := r.NewLayer(LayerOptions{Opacity: Ptr(0.5)})
	l.Add(NewRectangle(RectangleOptions{
		ShapeOptions: ShapeOptions{X: 10, Y: 10, Style: Style{Fill: Ptr(Color{0, 0, 1, 0.5})}},
		Width:        20,
		Height:       20,
	}))
	r.Add(l)
	if err := r.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	a := int(alphaAt(s.Image(), 10, 10))
	if a < 60 || a > 68 {
		t.Errorf("alpha = %d, want ~64", a)
	}
}

func TestGGSurfaceClearBetweenFrames(t *testing.T) {
	s := newGG(t, 20, 20)
	r, err := NewRenderer(s)
	if err != nil {
		t.Fatal(err)
	}
	sq := NewRectangle(RectangleOptions{
		ShapeOptions: ShapeOptions{X: 5, Y: 5, Style: Style{Fill: Ptr(ColorBlack)}},
		Width:        4,
		Height:       4,
	})
	r.Add(sq)
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}
	sq.SetPosition(15, 15)
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}

	img := s.Image()
	if a := alphaAt(img, 5, 5); a != 0 {
		t.Errorf("old position alpha = %d, want 0", a)
	}
	if a := alphaAt(img, 15, 15); a != 255 {
		t.Errorf("new position alpha = %d, want 255", a)
	}
}

func TestGGSurfaceSetDimensions(t *testing.T) {
	s := newGG(t, 20, 20)
	if err := s.SetDimensions(40, 30); err != nil {
		t.Fatalf("SetDimensions: %v", err)
	}
	if w, h := s.Dimensions(); w != 40 || h != 30 {
		t.Errorf("Dimensions = %dx%d, want 40x30", w, h)
	}
	if b := s.Image().Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("image bounds = %v", b)
	}
	if err := s.SetDimensions(0, 10); err == nil {
		t.Error("SetDimensions(0, 10) succeeded")
	}
}

func TestGGSurfaceClosed(t *testing.T) {
	s, err := NewGGSurface(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if _, err := s.Context(); !errors.Is(err, ErrResourceUnavailable) {
		t.Errorf("Context err = %v, want ErrResourceUnavailable", err)
	}
	if _, err := NewRenderer(s); !errors.Is(err, ErrResourceUnavailable) {
		t.Errorf("NewRenderer err = %v, want ErrResourceUnavailable", err)
	}
	if w, h := s.Dimensions(); w != 0 || h != 0 {
		t.Errorf("Dimensions = %dx%d after Close", w, h)
	}
	if err := s.SavePNG(filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Error("SavePNG succeeded after Close")
	}
}

func TestGGSurfaceStrokeAndShadow(t *testing.T) {
	s := newGG(t, 40, 40)
	r, err := NewRenderer(s)
	if err != nil {
		t.Fatal(err)
	}
	r.Add(NewRectangle(RectangleOptions{
		ShapeOptions: ShapeOptions{X: 15, Y: 15, Style: Style{
			Fill:          Ptr(ColorBlack),
			Stroke:        Ptr(ColorWhite),
			StrokeWidth:   2,
			ShadowColor:   Ptr(ColorBlack),
			ShadowOffsetX: 10,
			ShadowOffsetY: 10,
		}},
		Width:        10,
		Height:       10,
		CornerRadius: 3,
	}))
	if err := r.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	// Shadow lands 10px down-right of the shape.
	if a := alphaAt(s.Image(), 25, 25); a != 255 {
		t.Errorf("shadow alpha = %d, want 255", a)
	}
}

func TestGGSurfaceImageReadBackLogsNoError(t *testing.T) {
	buf := captureLogs(t)
	s := newGG(t, 8, 8)
	r, err := NewRenderer(s)
	if err != nil {
		t.Fatal(err)
	}
	r.Add(rect(4, 4, 4, 4))
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}
	if a := alphaAt(s.Image(), 4, 4); a != 255 {
		t.Errorf("alpha = %d, want 255", a)
	}
	if strings.Contains(buf.String(), "level=ERROR") {
		t.Errorf("unexpected error log:\n%s", buf.String())
	}
}
