package easel

import "math"

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

func translateAffine(x, y float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, x, y}
}

func rotateAffine(angle float64) [6]float64 {
	sin, cos := math.Sincos(angle)
	return [6]float64{cos, sin, -sin, cos, 0, 0}
}

func scaleAffine(sx, sy float64) [6]float64 {
	return [6]float64{sx, 0, 0, sy, 0, 0}
}

// Pose is a shape's placement in its parent's frame. Local geometry is
// mapped to the parent by scale, then rotation about the local origin, then
// translation; Draw applies the same steps to the context in the reverse
// call order (translate, rotate, scale).
type Pose struct {
	X, Y     float64
	Rotation float64 // radians
	ScaleX   float64
	ScaleY   float64
}

// defaultPose is the identity placement.
var defaultPose = Pose{ScaleX: 1, ScaleY: 1}

// apply pushes the pose onto ctx: translate, rotate, scale. Rotation and
// scale are skipped when they are the identity.
//
// Keep in lock-step with ToLocal.
func (p Pose) apply(ctx Context) {
	ctx.Translate(p.X, p.Y)
	if p.Rotation != 0 {
		ctx.Rotate(p.Rotation)
	}
	if p.ScaleX != 1 || p.ScaleY != 1 {
		ctx.Scale(p.ScaleX, p.ScaleY)
	}
}

// ToLocal maps a parent-frame point into the pose's local frame: subtract
// the position, rotate by -Rotation, divide by the scale.
//
// Keep in lock-step with apply. A zero scale component yields ±Inf or NaN,
// which fails every containment comparison.
func (p Pose) ToLocal(x, y float64) (lx, ly float64) {
	lx = x - p.X
	ly = y - p.Y
	if p.Rotation != 0 {
		sin, cos := math.Sincos(-p.Rotation)
		lx, ly = lx*cos-ly*sin, lx*sin+ly*cos
	}
	return lx / p.ScaleX, ly / p.ScaleY
}

// ToParent maps a local point into the parent frame (the forward transform).
func (p Pose) ToParent(lx, ly float64) (x, y float64) {
	return transformPoint(p.Matrix(), lx, ly)
}

// Matrix returns the pose as an affine matrix, [a, b, c, d, tx, ty].
func (p Pose) Matrix() [6]float64 {
	m := translateAffine(p.X, p.Y)
	m = multiplyAffine(m, rotateAffine(p.Rotation))
	return multiplyAffine(m, scaleAffine(p.ScaleX, p.ScaleY))
}

// degenerate reports whether the pose cannot be inverted.
func (p Pose) degenerate() bool {
	return p.ScaleX == 0 || p.ScaleY == 0 ||
		math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Rotation) ||
		math.IsNaN(p.ScaleX) || math.IsNaN(p.ScaleY)
}
