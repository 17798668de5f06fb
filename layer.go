package easel

import (
	"errors"
	"slices"
)

// LayerOptions configures NewLayer. Nil pointer fields take their defaults:
// visible, fully opaque.
type LayerOptions struct {
	// ID names the layer. When empty, IDs allocates one, or a random
	// base-36 id is used when IDs is nil too.
	ID      string
	Visible *bool
	Opacity *float64 // clamped to [0, 1]
	X, Y    float64
	Width   float64
	Height  float64
	IDs     IDAllocator
}

// Layer is an ordered group of nodes drawn under a shared offset and opacity.
// Children paint in insertion order, so the last child is on top; hit testing
// scans them in the reverse order. Width and Height are informational and do
// not clip.
//
// Layer embeds an Emitter and announces every change to its contents and
// state; see the Event constants for names and payloads.
type Layer struct {
	Emitter

	id      string
	visible bool
	opacity float64
	x, y    float64
	width   float64
	height  float64
	nodes   []Node
}

// NewLayer creates an empty layer from opts.
func NewLayer(opts LayerOptions) *Layer {
	l := &Layer{
		id:      opts.ID,
		visible: true,
		opacity: 1,
		x:       opts.X,
		y:       opts.Y,
		width:   opts.Width,
		height:  opts.Height,
	}
	if l.id == "" {
		if opts.IDs != nil {
			l.id = opts.IDs.NextID()
		} else {
			l.id = randomID()
		}
	}
	if opts.Visible != nil {
		l.visible = *opts.Visible
	}
	if opts.Opacity != nil {
		l.opacity = clamp01(*opts.Opacity)
	}
	return l
}

func (*Layer) node() {}

// ID returns the layer's identifier.
func (l *Layer) ID() string { return l.id }

// Visible reports whether the layer draws and takes hits.
func (l *Layer) Visible() bool { return l.visible }

// Opacity returns the layer opacity in [0, 1].
func (l *Layer) Opacity() float64 { return l.opacity }

// Position returns the layer offset.
func (l *Layer) Position() Vec2 { return Vec2{l.x, l.y} }

// Size returns the informational layer size.
func (l *Layer) Size() Size { return Size{l.width, l.height} }

// Nodes returns a copy of the children in paint order.
func (l *Layer) Nodes() []Node { return slices.Clone(l.nodes) }

// Len returns the number of direct children.
func (l *Layer) Len() int { return len(l.nodes) }

// Add appends n on top of the layer's children and emits EventShapeAdded.
// It panics if n is nil or if adding it would place the layer inside itself.
func (l *Layer) Add(n Node) {
	if isNilNode(n) {
		panic("easel: cannot add nil node")
	}
	if child, ok := n.(*Layer); ok && (child == l || child.contains(l)) {
		panic("easel: cannot add a layer to itself or its descendants")
	}
	l.nodes = append(l.nodes, n)
	if debugEnabled() {
		debugCheckNode(n)
		debugCheckChildCount(l.id, len(l.nodes))
	}
	l.emit(EventShapeAdded, NodeEvent{Node: n})
}

// Remove detaches the first occurrence of n and emits EventShapeRemoved.
// Removing a node that is not a child does nothing and emits nothing.
func (l *Layer) Remove(n Node) {
	var ok bool
	l.nodes, ok = removeNode(l.nodes, n)
	if ok {
		l.emit(EventShapeRemoved, NodeEvent{Node: n})
	}
}

// Clear drops every child and emits EventClear.
func (l *Layer) Clear() {
	clear(l.nodes)
	l.nodes = l.nodes[:0]
	l.emit(EventClear, nil)
}

// SetVisible shows or hides the layer and emits EventVisibilityChange.
func (l *Layer) SetVisible(v bool) {
	l.visible = v
	l.emit(EventVisibilityChange, VisibilityEvent{Visible: v})
}

// SetOpacity sets the opacity, clamped to [0, 1], and emits
// EventOpacityChange with the clamped value.
func (l *Layer) SetOpacity(o float64) {
	l.opacity = clamp01(o)
	l.emit(EventOpacityChange, OpacityEvent{Opacity: l.opacity})
}

// SetPosition sets the layer offset and emits EventPositionChange.
func (l *Layer) SetPosition(x, y float64) {
	l.x, l.y = x, y
	l.emit(EventPositionChange, PositionEvent{X: x, Y: y})
}

// SetSize sets the informational size and emits EventSizeChange.
func (l *Layer) SetSize(width, height float64) {
	l.width, l.height = width, height
	l.emit(EventSizeChange, SizeEvent{Width: width, Height: height})
}

// Draw paints the children under the layer offset, with the layer opacity
// multiplied into the inherited alpha. A hidden layer draws nothing. A child
// that fails does not stop its siblings; all failures are joined.
func (l *Layer) Draw(ctx Context) error {
	if !l.visible {
		return nil
	}
	ctx.Save()
	defer ctx.Restore()

	ctx.Translate(l.x, l.y)
	ctx.SetGlobalAlpha(ctx.GlobalAlpha() * l.opacity)

	return drawNodes(ctx, l.nodes)
}

// HitTest returns the topmost shape under the parent-frame point (x, y),
// searching nested layers, or nil. A hidden layer never hits.
func (l *Layer) HitTest(x, y float64) Shape {
	if !l.visible {
		return nil
	}
	return hitTestNodes(l.nodes, x-l.x, y-l.y)
}

// contains reports whether target is a descendant of l.
func (l *Layer) contains(target *Layer) bool {
	for _, n := range l.nodes {
		child, ok := n.(*Layer)
		if !ok {
			continue
		}
		if child == target || child.contains(target) {
			return true
		}
	}
	return false
}

// depth returns the deepest nesting of layers below l, counting l.
func (l *Layer) depth() int {
	d := 0
	for _, n := range l.nodes {
		if child, ok := n.(*Layer); ok {
			d = max(d, child.depth())
		}
	}
	return d + 1
}

// drawNodes draws nodes in order and joins their errors.
func drawNodes(ctx Context, nodes []Node) error {
	var errs []error
	for _, n := range nodes {
		if err := n.Draw(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// hitTestNodes scans nodes from topmost to bottommost.
func hitTestNodes(nodes []Node, x, y float64) Shape {
	for i := len(nodes) - 1; i >= 0; i-- {
		if s := nodes[i].HitTest(x, y); s != nil {
			return s
		}
	}
	return nil
}

// removeNode removes the first occurrence of n, reporting whether it was found.
func removeNode(nodes []Node, n Node) ([]Node, bool) {
	i := slices.Index(nodes, n)
	if i < 0 {
		return nodes, false
	}
	return slices.Delete(nodes, i, i+1), true
}

// isNilNode catches both a nil interface and a typed nil pointer.
func isNilNode(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Layer:
		return v == nil
	case *Rectangle:
		return v == nil
	case *Circle:
		return v == nil
	}
	return false
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	case v != v: // NaN
		return 0
	}
	return v
}
