package math

// Plane is a half-space boundary: the set of points p with
// Normal.Dot(p) == Offset. Points with Normal.Dot(p) < Offset lie
// inside the half-space; Polyhedron intersects a ray against a list of
// these and keeps the interval where it is inside every one.
type Plane struct {
	Normal Vec3
	Offset float32
}

func NewPlane(normal Vec3, offset float32) Plane {
	return Plane{Normal: normal.Normalize(), Offset: offset}
}

// PlaneFromPointNormal builds a plane passing through point with the
// given outward normal.
func PlaneFromPointNormal(point, normal Vec3) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, Offset: n.Dot(point)}
}

// Intersect finds the parameter t at which line crosses the plane. ok is
// false when the line is parallel to the plane.
func (p Plane) Intersect(l Line) (t float32, ok bool) {
	denom := p.Normal.Dot(l.Direction)
	if denom == 0 {
		return 0, false
	}
	return (p.Offset - p.Normal.Dot(l.Origin)) / denom, true
}

// SignedDistance returns how far point lies outside the half-space
// (positive outside, negative inside).
func (p Plane) SignedDistance(point Vec3) float32 {
	return p.Normal.Dot(point) - p.Offset
}
