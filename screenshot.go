package easel

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Snapshotter is implemented by surfaces whose pixels can be read back.
// GGSurface and EbitenSurface both are.
type Snapshotter interface {
	Snapshot() (image.Image, error)
}

// Snapshot returns a copy of the surface pixels.
func (s *GGSurface) Snapshot() (image.Image, error) {
	if s.dc == nil {
		return nil, fmt.Errorf("easel: snapshot: %w", errSurfaceClosed)
	}
	if err := s.dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("easel: snapshot: %w", err)
	}
	return s.dc.Image(), nil
}

// Snapshot reads the surface pixels back as straight-alpha NRGBA. It must
// be called while the ebiten game loop is running.
func (s *EbitenSurface) Snapshot() (image.Image, error) {
	if s.img == nil {
		return nil, fmt.Errorf("easel: snapshot: %w", errSurfaceClosed)
	}
	b := s.img.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, 4*w*h)
	s.img.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, bl, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			bl = uint8(min(int(bl)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = bl
		img.Pix[i+3] = a
	}
	return img, nil
}

var errNoSnapshot = errors.New("surface cannot be read back")

// Screenshot queues a labeled screenshot, captured at the end of the next
// Render. The PNG is written to the screenshot directory (see
// WithScreenshotDir) with a timestamped file name.
func (r *Renderer) Screenshot(label string) {
	r.screenshotQueue = append(r.screenshotQueue, label)
}

// flushScreenshots writes one PNG per queued label. Failures are logged.
func (r *Renderer) flushScreenshots() {
	if len(r.screenshotQueue) == 0 {
		return
	}
	defer func() { r.screenshotQueue = r.screenshotQueue[:0] }()

	snap, ok := r.surface.(Snapshotter)
	if !ok {
		Logger().Error("easel: screenshot", "err", errNoSnapshot)
		return
	}
	img, err := snap.Snapshot()
	if err != nil {
		Logger().Error("easel: screenshot", "err", err)
		return
	}
	if err := os.MkdirAll(r.screenshotDir, 0o755); err != nil {
		Logger().Error("easel: screenshot", "dir", r.screenshotDir, "err", err)
		return
	}

	stamp := time.Now().Format("20060102_150405")
	for _, label := range r.screenshotQueue {
		path := filepath.Join(r.screenshotDir, stamp+"_"+sanitizeLabel(label)+".png")
		if err := writePNG(path, img); err != nil {
			Logger().Error("easel: screenshot", "err", err)
			continue
		}
		Logger().Debug("easel: screenshot saved", "path", path)
	}
}

// writePNG encodes img to a PNG file at path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
