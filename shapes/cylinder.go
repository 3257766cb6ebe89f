package shapes

import (
	stdmath "math"

	"raytracer/material"
	"raytracer/math"
	"raytracer/pigment"
)

type cylBound int

const (
	boundSide cylBound = iota
	boundBottom
	boundTop
	boundNone
)

// Cylinder is a finite cylinder from Bottom to Top with flat end caps.
type Cylinder struct {
	Leaf
	Bottom, Top math.Vec3
	Radius      float32

	axis, xAxis, yAxis math.Vec3
	height             float32
}

func NewCylinder(bottom, top math.Vec3, radius float32, tex pigment.Texture, mat material.Material) *Cylinder {
	c := &Cylinder{Leaf: Leaf{Pigment: tex, Material: mat}, Bottom: bottom, Top: top, Radius: radius}
	axisVec := top.Sub(bottom)
	c.height = axisVec.Length()
	c.axis = axisVec.Normalize()
	c.xAxis = c.axis.Perpendicular()
	c.yAxis = c.axis.Cross(c.xAxis).Normalize()
	return c
}

// toLocal expresses a world point relative to Bottom in the
// (xAxis, yAxis, axis) frame.
func (c *Cylinder) toLocal(p math.Vec3) math.Vec3 {
	rel := p.Sub(c.Bottom)
	return math.Vec3{X: rel.Dot(c.xAxis), Y: rel.Dot(c.yAxis), Z: rel.Dot(c.axis)}
}

func (c *Cylinder) toLocalDir(d math.Vec3) math.Vec3 {
	return math.Vec3{X: d.Dot(c.xAxis), Y: d.Dot(c.yAxis), Z: d.Dot(c.axis)}
}

func (c *Cylinder) Intersect(ray math.Line, info bool) (Hit, bool) {
	o := c.toLocal(ray.Origin)
	d := c.toLocalDir(ray.Direction)

	sideIn, sideOut := float32(-inf), float32(inf)
	sideInBound, sideOutBound := boundNone, boundNone

	a := d.X*d.X + d.Y*d.Y
	if a > 1e-12 {
		b := 2 * (o.X*d.X + o.Y*d.Y)
		cc := o.X*o.X + o.Y*o.Y - c.Radius*c.Radius
		disc := b*b - 4*a*cc
		if disc < 0 {
			return Hit{}, false
		}
		sq := float32(stdmath.Sqrt(float64(disc)))
		sideIn = (-b - sq) / (2 * a)
		sideOut = (-b + sq) / (2 * a)
		sideInBound, sideOutBound = boundSide, boundSide
	} else {
		if o.X*o.X+o.Y*o.Y > c.Radius*c.Radius {
			return Hit{}, false
		}
	}

	zIn, zOut := float32(-inf), float32(inf)
	zInBound, zOutBound := boundNone, boundNone
	if d.Z == 0 {
		if o.Z < 0 || o.Z > c.height {
			return Hit{}, false
		}
	} else {
		t0 := (0 - o.Z) / d.Z
		t1 := (c.height - o.Z) / d.Z
		b0, b1 := boundBottom, boundTop
		if t0 > t1 {
			t0, t1 = t1, t0
			b0, b1 = boundTop, boundBottom
		}
		zIn, zOut = t0, t1
		zInBound, zOutBound = b0, b1
	}

	tMin, tMax := sideIn, sideOut
	minBound, maxBound := sideInBound, sideOutBound
	if zIn > tMin {
		tMin, minBound = zIn, zInBound
	}
	if zOut < tMax {
		tMax, maxBound = zOut, zOutBound
	}

	if tMin > tMax {
		return Hit{}, false
	}

	h := Hit{TMin: tMin, TMax: tMax}
	if !info {
		return h, true
	}

	h.NormalMin = c.boundNormal(minBound, o.Add(d.Mul(tMin)))
	h.NormalMax = c.boundNormal(maxBound, o.Add(d.Mul(tMax)))
	h.InsideMin = o.X*o.X+o.Y*o.Y < c.Radius*c.Radius && o.Z > 0 && o.Z < c.height
	h.InsideMax = h.InsideMin

	uMin, vMin := c.boundUV(minBound, o.Add(d.Mul(tMin)))
	uMax, vMax := c.boundUV(maxBound, o.Add(d.Mul(tMax)))
	h.ColorMin = constAt(c.Pigment, uMin, vMin)
	h.ColorMax = constAt(c.Pigment, uMax, vMax)
	h.MaterialMin = c.Material
	h.MaterialMax = c.Material
	return h, true
}

func (c *Cylinder) boundNormal(bound cylBound, local math.Vec3) math.Vec3 {
	switch bound {
	case boundBottom:
		return c.axis.Negate()
	case boundTop:
		return c.axis
	default:
		return c.xAxis.Mul(local.X / c.Radius).Add(c.yAxis.Mul(local.Y / c.Radius))
	}
}

func (c *Cylinder) boundUV(bound cylBound, local math.Vec3) (u, v float32) {
	switch bound {
	case boundBottom, boundTop:
		return (local.X/c.Radius + 1) / 2, (local.Y/c.Radius + 1) / 2
	default:
		theta := float32(stdmath.Atan2(float64(local.Y), float64(local.X)))
		return (theta + pi) / (2 * pi), local.Z / c.height
	}
}
