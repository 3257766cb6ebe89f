package shapes

import (
	"raytracer/material"
	"raytracer/math"
	"raytracer/pigment"
)

// Polyhedron is a convex solid defined by a set of half-space planes
// whose normals point outward (away from the solid's interior), the
// math.Plane convention.
type Polyhedron struct {
	Leaf
	Planes []math.Plane
}

func NewPolyhedron(planes []math.Plane, tex pigment.Texture, mat material.Material) *Polyhedron {
	return &Polyhedron{Leaf: Leaf{Pigment: tex, Material: mat}, Planes: planes}
}

func (p *Polyhedron) Intersect(ray math.Line, info bool) (Hit, bool) {
	enter, exit := float32(-inf), float32(inf)
	var enterPlane, exitPlane *math.Plane

	for i := range p.Planes {
		plane := &p.Planes[i]
		denom := plane.Normal.Dot(ray.Direction)
		if denom == 0 {
			continue
		}
		t, _ := plane.Intersect(ray)
		if denom < 0 {
			if t > enter {
				enter = t
				enterPlane = plane
			}
		} else {
			if t < exit {
				exit = t
				exitPlane = plane
			}
		}
	}

	if enterPlane == nil && exitPlane == nil {
		return Hit{}, false
	}
	if enter > exit {
		return Hit{}, false
	}

	h := Hit{TMin: enter, TMax: exit}
	if !info {
		return h, true
	}

	if enterPlane != nil {
		h.NormalMin = enterPlane.Normal
	}
	if exitPlane != nil {
		h.NormalMax = exitPlane.Normal
	}
	h.InsideMin = p.containsStrict(ray.Origin)
	h.InsideMax = h.InsideMin

	uMin, vMin := planarUV(h.NormalMin, ray.At(enter))
	uMax, vMax := planarUV(h.NormalMax, ray.At(exit))
	h.ColorMin = constAt(p.Pigment, uMin, vMin)
	h.ColorMax = constAt(p.Pigment, uMax, vMax)
	h.MaterialMin = p.Material
	h.MaterialMax = p.Material
	return h, true
}

func (p *Polyhedron) containsStrict(point math.Vec3) bool {
	for i := range p.Planes {
		if p.Planes[i].SignedDistance(point) > 0 {
			return false
		}
	}
	return true
}

// planarUV derives a face-local UV from a world point and its face
// normal by projecting onto the two axes most perpendicular to the
// normal.
func planarUV(n, point math.Vec3) (u, v float32) {
	right := n.Perpendicular()
	up := n.Cross(right).Normalize()
	return point.Dot(right), point.Dot(up)
}
