package easel

import "fmt"

// Node is an element of the scene graph: a Shape or a *Layer. The set is
// closed; Node cannot be implemented outside this package.
type Node interface {
	// Draw paints the node onto ctx. The context state is left as it was
	// found, whether or not Draw returns an error.
	Draw(ctx Context) error
	// HitTest returns the topmost shape within the node that contains the
	// parent-frame point (x, y), or nil.
	HitTest(x, y float64) Shape

	node()
}

// Shape is a drawable primitive with a pose and a style. Implementations are
// *Rectangle and *Circle; use Kind for exhaustive switches.
type Shape interface {
	Node

	Kind() ShapeKind
	// ContainsPoint reports whether the parent-frame point (x, y) lies in
	// the shape, inverting exactly the transform Draw applies.
	ContainsPoint(x, y float64) bool
	// Bounds is the axis-aligned box in the parent frame. Rotation is
	// ignored: a rotated shape's true extent is larger.
	Bounds() Rect

	Pose() Pose
	Position() Vec2
	SetPosition(x, y float64)
	SetRotation(angle float64)
	SetScale(sx, sy float64)
	Style() Style
	// SetStyle merges patch into the current style (see Style.Merge).
	SetStyle(patch Style)
	// ReplaceStyle swaps the whole style, allowing fields to be unset.
	ReplaceStyle(s Style)
}

// ShapeOptions are the construction options shared by every shape.
// A zero ScaleX or ScaleY means 1; set a zero scale with SetScale.
type ShapeOptions struct {
	X, Y     float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
	Style    Style
}

// shapeBase carries the pose and style common to every shape.
type shapeBase struct {
	pose  Pose
	style Style
}

func newShapeBase(o ShapeOptions) shapeBase {
	p := Pose{X: o.X, Y: o.Y, Rotation: o.Rotation, ScaleX: o.ScaleX, ScaleY: o.ScaleY}
	if p.ScaleX == 0 {
		p.ScaleX = 1
	}
	if p.ScaleY == 0 {
		p.ScaleY = 1
	}
	return shapeBase{pose: p, style: o.Style}
}

func (*shapeBase) node() {}

// Pose returns the shape's placement.
func (b *shapeBase) Pose() Pose { return b.pose }

// Position returns the shape's origin in the parent frame.
func (b *shapeBase) Position() Vec2 { return Vec2{b.pose.X, b.pose.Y} }

// SetPosition moves the shape's origin.
func (b *shapeBase) SetPosition(x, y float64) {
	b.pose.X = x
	b.pose.Y = y
}

// SetRotation sets the rotation in radians about the shape's origin.
func (b *shapeBase) SetRotation(angle float64) {
	b.pose.Rotation = angle
}

// SetScale sets the scale factors. Zero is accepted; the shape then draws
// degenerate and is never hit.
func (b *shapeBase) SetScale(sx, sy float64) {
	b.pose.ScaleX = sx
	b.pose.ScaleY = sy
	if debugEnabled() {
		debugCheckPose(b.pose)
	}
}

// Style returns the current style.
func (b *shapeBase) Style() Style { return b.style }

// SetStyle merges patch into the current style.
func (b *shapeBase) SetStyle(patch Style) { b.style = b.style.Merge(patch) }

// ReplaceStyle replaces the current style.
func (b *shapeBase) ReplaceStyle(s Style) { b.style = s }

// drawShape runs the draw pipeline shared by all shapes: save, transform,
// style, geometry, fill, stroke, restore. Restore runs even when a step
// fails or panics.
func drawShape(ctx Context, kind ShapeKind, b *shapeBase, geometry func(Context)) error {
	ctx.Save()
	defer ctx.Restore()

	b.pose.apply(ctx)
	b.style.apply(ctx)

	ctx.BeginPath()
	geometry(ctx)

	if b.style.Fill != nil {
		if err := ctx.Fill(); err != nil {
			return fmt.Errorf("easel: fill %s: %w", kind, err)
		}
	}
	if b.style.Stroke != nil {
		if err := ctx.Stroke(); err != nil {
			return fmt.Errorf("easel: stroke %s: %w", kind, err)
		}
	}
	return nil
}
