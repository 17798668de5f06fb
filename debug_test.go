package easel

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"
)

// captureLogs routes the package logger into a buffer for the rest of the
// test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() {
		SetLogger(nil)
		debugRenderers.Store(0)
	})
	return &buf
}

func TestDebugMode_FrameStats(t *testing.T) {
	buf := captureLogs(t)
	r, _, _, _ := newTestRenderer(WithDebug(true))
	l := NewLayer(LayerOptions{ID: "l"})
	l.Add(rect(0, 0, 1, 1))
	r.Add(l)
	r.Add(rect(0, 0, 1, 1))

	if err := r.Render(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "easel: frame") {
		t.Fatalf("no frame stats logged:\n%s", out)
	}
	if !strings.Contains(out, "nodes=2") || !strings.Contains(out, "shapes=2") {
		t.Errorf("frame stats missing counts:\n%s", out)
	}
}

func TestDebugMode_OffLogsNothing(t *testing.T) {
	buf := captureLogs(t)
	r, _, _, _ := newTestRenderer()
	r.Add(NewRectangle(RectangleOptions{Width: -1}))
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output:\n%s", buf.String())
	}
}

func TestDebugMode_WarnsOnDegenerateShapes(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  string
	}{
		{"negative width", NewRectangle(RectangleOptions{Width: -5, Height: 1}), "invalid rectangle size"},
		{"NaN radius", NewCircle(CircleOptions{Radius: math.NaN()}), "invalid circle radius"},
		{"NaN position", NewCircle(CircleOptions{ShapeOptions: ShapeOptions{X: math.NaN()}, Radius: 1}), "degenerate shape transform"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			r, _, _, _ := newTestRenderer(WithDebug(true))
			r.Add(tt.shape)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("log missing %q:\n%s", tt.want, buf.String())
			}
		})
	}
}

func TestDebugMode_WarnsOnZeroScale(t *testing.T) {
	buf := captureLogs(t)
	newTestRenderer(WithDebug(true))
	c := NewCircle(CircleOptions{Radius: 1})
	c.SetScale(0, 1)
	if !strings.Contains(buf.String(), "degenerate shape transform") {
		t.Errorf("no warning for zero scale:\n%s", buf.String())
	}
}

func TestDebugMode_LayerNestingDepth(t *testing.T) {
	buf := captureLogs(t)
	r, _, _, _ := newTestRenderer(WithDebug(true))

	root := NewLayer(LayerOptions{ID: "root"})
	cur := root
	for range debugMaxTreeDepth + 1 {
		next := NewLayer(LayerOptions{})
		cur.Add(next)
		cur = next
	}
	r.Add(root)
	if !strings.Contains(buf.String(), "layer nesting too deep") {
		t.Errorf("no depth warning:\n%s", buf.String())
	}
}

func TestDebugMode_ChildCount(t *testing.T) {
	buf := captureLogs(t)
	newTestRenderer(WithDebug(true))
	l := NewLayer(LayerOptions{ID: "crowded"})
	for range debugMaxChildCount + 1 {
		l.Add(rect(0, 0, 1, 1))
	}
	if strings.Count(buf.String(), "layer has many children") != 1 {
		t.Errorf("want exactly one child count warning:\n%s", buf.String())
	}
}

func TestCountShapes(t *testing.T) {
	inner := NewLayer(LayerOptions{})
	inner.Add(rect(0, 0, 1, 1))
	inner.Add(NewCircle(CircleOptions{Radius: 1}))
	outer := NewLayer(LayerOptions{})
	outer.Add(inner)
	outer.Add(rect(0, 0, 1, 1))

	shapes, depth := countShapes([]Node{outer, rect(0, 0, 1, 1)})
	if shapes != 4 {
		t.Errorf("shapes = %d, want 4", shapes)
	}
	if depth != 2 {
		t.Errorf("depth = %d, want 2", depth)
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	captureLogs(t)
	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestDebugMode_IndependentRenderers(t *testing.T) {
	buf := captureLogs(t)
	a, _, _, _ := newTestRenderer(WithDebug(true))
	b, _, _, _ := newTestRenderer(WithDebug(true))

	b.SetDebugMode(false)
	b.SetDebugMode(false) // repeated calls do not unbalance the count
	if !debugEnabled() {
		t.Fatal("disabling one renderer turned off checks for the other")
	}

	l := NewLayer(LayerOptions{ID: "l"})
	a.Add(l)
	l.Add(NewRectangle(RectangleOptions{Width: -1}))
	if !strings.Contains(buf.String(), "invalid rectangle size") {
		t.Errorf("no warning while a renderer is still in debug mode:\n%s", buf.String())
	}

	a.SetDebugMode(false)
	if debugEnabled() {
		t.Error("checks still enabled with no renderer in debug mode")
	}
}

func TestDebugMode_RendererAddUsesOwnFlag(t *testing.T) {
	buf := captureLogs(t)
	newTestRenderer(WithDebug(true))
	quiet, _, _, _ := newTestRenderer()

	quiet.Add(NewCircle(CircleOptions{Radius: -1}))
	if strings.Contains(buf.String(), "invalid circle radius") {
		t.Errorf("renderer without debug mode checked its node:\n%s", buf.String())
	}
}
