package shapes

import (
	"raytracer/material"
	"raytracer/math"
	"raytracer/pigment"
)

// Box is an axis-aligned bounding box intersected by the slab method.
type Box struct {
	Leaf
	Min, Max math.Vec3
}

func NewBox(min, max math.Vec3, tex pigment.Texture, mat material.Material) *Box {
	return &Box{Leaf: Leaf{Pigment: tex, Material: mat}, Min: min, Max: max}
}

type boxAxis int

const (
	axisX boxAxis = iota
	axisY
	axisZ
)

func (b *Box) Intersect(ray math.Line, info bool) (Hit, bool) {
	tMin, tMax := float32(-inf), float32(inf)
	var axisMin, axisMax boxAxis
	var signMin, signMax float32 = 1, 1

	axes := [3]struct {
		o, d, lo, hi float32
		axis         boxAxis
	}{
		{ray.Origin.X, ray.Direction.X, b.Min.X, b.Max.X, axisX},
		{ray.Origin.Y, ray.Direction.Y, b.Min.Y, b.Max.Y, axisY},
		{ray.Origin.Z, ray.Direction.Z, b.Min.Z, b.Max.Z, axisZ},
	}

	for _, a := range axes {
		if a.d == 0 {
			if a.o < a.lo || a.o > a.hi {
				return Hit{}, false
			}
			continue
		}
		t0 := (a.lo - a.o) / a.d
		t1 := (a.hi - a.o) / a.d
		sign0, sign1 := float32(-1), float32(1)
		if t0 > t1 {
			t0, t1 = t1, t0
			sign0, sign1 = 1, -1
		}
		if t0 > tMin {
			tMin = t0
			axisMin = a.axis
			signMin = sign0
		}
		if t1 < tMax {
			tMax = t1
			axisMax = a.axis
			signMax = sign1
		}
	}

	if tMin > tMax {
		return Hit{}, false
	}

	h := Hit{TMin: tMin, TMax: tMax}
	if !info {
		return h, true
	}

	h.NormalMin = axisNormal(axisMin, signMin)
	h.NormalMax = axisNormal(axisMax, signMax)
	h.InsideMin = pointInside(ray.Origin, b.Min, b.Max)
	h.InsideMax = h.InsideMin

	uMin, vMin := boxUV(axisMin, ray.At(tMin), b.Min, b.Max)
	uMax, vMax := boxUV(axisMax, ray.At(tMax), b.Min, b.Max)
	h.ColorMin = constAt(b.Pigment, uMin, vMin)
	h.ColorMax = constAt(b.Pigment, uMax, vMax)
	h.MaterialMin = b.Material
	h.MaterialMax = b.Material
	return h, true
}

const inf = 1e30

func axisNormal(axis boxAxis, sign float32) math.Vec3 {
	switch axis {
	case axisX:
		return math.Vec3{X: sign, Y: 0, Z: 0}
	case axisY:
		return math.Vec3{X: 0, Y: sign, Z: 0}
	default:
		return math.Vec3{X: 0, Y: 0, Z: sign}
	}
}

func pointInside(p, min, max math.Vec3) bool {
	return p.X > min.X && p.X < max.X && p.Y > min.Y && p.Y < max.Y && p.Z > min.Z && p.Z < max.Z
}

// boxUV derives a face-local (u,v) in [0,1) for whichever axis produced
// the boundary.
func boxUV(axis boxAxis, p, min, max math.Vec3) (u, v float32) {
	switch axis {
	case axisX:
		return frac01(p.Y, min.Y, max.Y), frac01(p.Z, min.Z, max.Z)
	case axisY:
		return frac01(p.X, min.X, max.X), frac01(p.Z, min.Z, max.Z)
	default:
		return frac01(p.X, min.X, max.X), frac01(p.Y, min.Y, max.Y)
	}
}

func frac01(v, lo, hi float32) float32 {
	if hi == lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}
