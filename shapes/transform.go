package shapes

import "raytracer/math"

// Transform wraps a child shape with a pivoted affine transform. Rays
// are transformed into the child's object space by the inverse matrix;
// returned normals are transformed back by the inverse-transpose and
// renormalized.
type Transform struct {
	Child   Shape
	Pivot   math.Vec3
	Matrix  math.Mat4
	Inverse math.Mat4

	invTranspose math.Mat4
}

func NewTransform(child Shape, pivot math.Vec3, matrix math.Mat4) *Transform {
	inv := matrix.Inverse()
	return &Transform{
		Child:        child,
		Pivot:        pivot,
		Matrix:       matrix,
		Inverse:      inv,
		invTranspose: inv.Transpose(),
	}
}

func (t *Transform) Intersect(ray math.Line, info bool) (Hit, bool) {
	localOrigin := transformPoint(t.Inverse, ray.Origin.Sub(t.Pivot)).Add(t.Pivot)
	localDir := transformVec(t.Inverse, ray.Direction)
	localRay := math.NewLine(localOrigin, localDir)

	h, ok := t.Child.Intersect(localRay, info)
	if !ok {
		return Hit{}, false
	}
	if !info {
		return h, true
	}

	h.NormalMin = transformVec(t.invTranspose, h.NormalMin).Normalize()
	h.NormalMax = transformVec(t.invTranspose, h.NormalMax).Normalize()
	return h, true
}

func transformPoint(m math.Mat4, p math.Vec3) math.Vec3 {
	return m.MulVec3(p)
}

func transformVec(m math.Mat4, v math.Vec3) math.Vec3 {
	v4 := v.ToVec4(0)
	r := m.MulVec(v4)
	return math.Vec3{X: r.X, Y: r.Y, Z: r.Z}
}
