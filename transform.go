package pentoface

import "math"

// Affine is a 2D affine matrix laid out as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// IdentityAffine is the identity matrix.
var IdentityAffine = Affine{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the node's
// transform properties.
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Rotate -> Translate(X, Y)
func computeLocalTransform(n *Node) Affine {
	sx := n.ScaleX
	sy := n.ScaleY

	sin, cos := math.Sincos(n.Rotation)

	preTx := -n.PivotX * sx
	preTy := -n.PivotY * sy

	return Affine{
		cos * sx,
		sin * sx,
		-sin * sy,
		cos * sy,
		cos*preTx - sin*preTy + n.X,
		sin*preTx + cos*preTy + n.Y,
	}
}

// Mul multiplies two affine matrices: result = p * c.
func (p Affine) Mul(c Affine) Affine {
	return Affine{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// Invert computes the inverse matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func (m Affine) Invert() Affine {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityAffine
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms the point (x, y).
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// updateWorldTransform recomputes a node's worldTransform and worldAlpha.
// parentRecomputed indicates whether the parent was recomputed this frame,
// which forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parentTransform Affine, parentAlpha float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = parentTransform.Mul(computeLocalTransform(n))
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, n.worldAlpha, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.transformDirty = true
}

// SetRotation sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// SetAlpha sets the node's alpha and marks it dirty.
func (n *Node) SetAlpha(a float64) {
	n.Alpha = a
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// LocalTransform returns the node's matrix relative to its parent.
func (n *Node) LocalTransform() Affine {
	return computeLocalTransform(n)
}

// WorldTransform returns the world matrix computed by the last
// Scene.UpdateTransforms.
func (n *Node) WorldTransform() Affine {
	return n.worldTransform
}

// WorldAlpha returns the product of this node's and its ancestors' alpha
// as of the last Scene.UpdateTransforms.
func (n *Node) WorldAlpha() float64 {
	return n.worldAlpha
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return n.worldTransform.Invert().Apply(wx, wy)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return n.worldTransform.Apply(lx, ly)
}
