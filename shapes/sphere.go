package shapes

import (
	stdmath "math"

	"raytracer/material"
	"raytracer/math"
	"raytracer/pigment"
)

// Sphere is the analytic primitive `||O+tD-C||^2 = r^2`.
type Sphere struct {
	Leaf
	Center math.Vec3
	Radius float32
}

func NewSphere(center math.Vec3, radius float32, tex pigment.Texture, mat material.Material) *Sphere {
	return &Sphere{Leaf: Leaf{Pigment: tex, Material: mat}, Center: center, Radius: radius}
}

func (s *Sphere) Intersect(ray math.Line, info bool) (Hit, bool) {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return Hit{}, false
	}

	sq := float32(stdmath.Sqrt(float64(disc)))
	tMin := (-b - sq) / (2 * a)
	tMax := (-b + sq) / (2 * a)
	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}

	h := Hit{TMin: tMin, TMax: tMax}
	if !info {
		return h, true
	}

	pMin := ray.At(tMin)
	pMax := ray.At(tMax)
	h.NormalMin = pMin.Sub(s.Center).Mul(1 / s.Radius)
	h.NormalMax = pMax.Sub(s.Center).Mul(1 / s.Radius)
	h.InsideMin = oc.LengthSqr() < s.Radius*s.Radius
	h.InsideMax = h.InsideMin

	uMin, vMin := sphereUV(h.NormalMin)
	uMax, vMax := sphereUV(h.NormalMax)
	h.ColorMin = constAt(s.Pigment, uMin, vMin)
	h.ColorMax = constAt(s.Pigment, uMax, vMax)
	h.MaterialMin = s.Material
	h.MaterialMax = s.Material
	return h, true
}

// sphereUV maps a unit normal to spherical (u,v) coordinates.
func sphereUV(n math.Vec3) (u, v float32) {
	theta := float32(stdmath.Acos(float64(-n.Y)))
	phi := float32(stdmath.Atan2(float64(-n.Z), float64(n.X))) + pi
	return phi / (2 * pi), theta / pi
}

const pi = float32(stdmath.Pi)

// constAt evaluates a texture at a fixed UV and wraps the result back
// into a pigment.Solid so Hit.ColorMin/Max carry a ready-to-sample
// texture without re-deriving UVs downstream.
func constAt(t pigment.Texture, u, v float32) pigment.Texture {
	return pigment.NewSolid(t.At(u, v))
}
