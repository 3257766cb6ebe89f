// Package light models point light sources with quadratic attenuation.
package light

import (
	"raytracer/core"
	"raytracer/math"
)

// Light is a point light source. Attenuation at distance r is
// 1/(Kc + r*Kl + r*r*Kq).
type Light struct {
	Position math.Vec3
	Color    core.Color
	Kc       float32
	Kl       float32
	Kq       float32

	// Area is the side length of the light's tangent-plane footprint.
	// The tracer does not read it; area sampling is set for all lights
	// at once by the render configuration's light deviations.
	Area float32
}

func New(position math.Vec3, color core.Color, kc, kl, kq float32) Light {
	return Light{Position: position, Color: color, Kc: kc, Kl: kl, Kq: kq}
}

// Attenuation returns the scalar falloff for a given distance.
func (l Light) Attenuation(distance float32) float32 {
	denom := l.Kc + distance*l.Kl + distance*distance*l.Kq
	if denom <= 0 {
		return 0
	}
	return 1 / denom
}

// TangentBasis returns an orthonormal (right, up) pair spanning the
// plane perpendicular to the direction from hit to the light, used to
// place area-sampling deviations.
func TangentBasis(toLight math.Vec3) (right, up math.Vec3) {
	dir := toLight.Normalize()
	up = dir.Perpendicular()
	right = dir.Cross(up).Normalize()
	return right, up
}
