package easel

import (
	"math"
	"sync/atomic"
	"time"
)

// debugRenderers counts renderers in debug mode. Shapes and layers hold no
// Renderer pointer, so their checks run while any renderer has debug on;
// turning it off on one renderer leaves the others' checks in place.
var debugRenderers atomic.Int32

// debugEnabled reports whether shape and layer checks should run.
func debugEnabled() bool {
	return debugRenderers.Load() > 0
}

// renderStats holds per-frame timing and draw metrics. Only collected when
// the renderer is in debug mode.
type renderStats struct {
	clearTime time.Duration
	drawTime  time.Duration
	nodes     int
	shapes    int
	failures  int
}

// debugLog reports the frame stats at debug level.
func (r *Renderer) debugLog(stats renderStats) {
	if !r.debug {
		return
	}
	Logger().Debug("easel: frame",
		"clear", stats.clearTime,
		"draw", stats.drawTime,
		"total", stats.clearTime+stats.drawTime,
		"nodes", stats.nodes,
		"shapes", stats.shapes,
		"failures", stats.failures,
	)
}

// countShapes returns the number of shapes in nodes, including those nested
// in layers, and the deepest layer nesting.
func countShapes(nodes []Node) (shapes, depth int) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *Layer:
			s, d := countShapes(v.nodes)
			shapes += s
			depth = max(depth, d+1)
		case Shape:
			shapes++
		}
	}
	return shapes, depth
}

// debugCheckPose warns about a pose that cannot be hit-tested or that will
// draw as NaN.
func debugCheckPose(p Pose) {
	if p.degenerate() {
		Logger().Warn("easel: degenerate shape transform",
			"x", p.X, "y", p.Y, "rotation", p.Rotation,
			"scaleX", p.ScaleX, "scaleY", p.ScaleY)
	}
}

// debugCheckShape warns about geometry that draws nothing sensible: negative
// or NaN sizes, and a degenerate pose.
func debugCheckShape(s Shape) {
	bad := func(v float64) bool { return v < 0 || math.IsNaN(v) }
	switch v := s.(type) {
	case *Rectangle:
		if bad(v.width) || bad(v.height) || bad(v.cornerRadius) {
			Logger().Warn("easel: invalid rectangle size",
				"width", v.width, "height", v.height, "cornerRadius", v.cornerRadius)
		}
	case *Circle:
		if bad(v.radius) {
			Logger().Warn("easel: invalid circle radius", "radius", v.radius)
		}
	}
	debugCheckPose(s.Pose())
}

// debugCheckNode runs the checks that apply to a node being added.
func debugCheckNode(n Node) {
	if s, ok := n.(Shape); ok {
		debugCheckShape(s)
		return
	}
	debugCheckTreeDepth(n)
}

// debugCheckTreeDepth warns if layers nest deeper than the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n Node) {
	l, ok := n.(*Layer)
	if !ok {
		return
	}
	if d := l.depth(); d > debugMaxTreeDepth {
		Logger().Warn("easel: layer nesting too deep",
			"layer", l.id, "depth", d, "threshold", debugMaxTreeDepth)
	}
}

// debugCheckChildCount warns if a layer has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(id string, n int) {
	if n > debugMaxChildCount {
		Logger().Warn("easel: layer has many children",
			"layer", id, "children", n, "threshold", debugMaxChildCount)
	}
}
