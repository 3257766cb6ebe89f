package scene

import (
	"raytracer/core"
	"raytracer/light"
	"raytracer/material"
	"raytracer/math"
	"raytracer/pigment"
	"raytracer/shapes"
)

// Demo builds a small in-code scene (a sphere with a cylindrical hole
// carved through it) so the binary is exercisable without an external
// scene file, mirroring the sphere-minus-cylinder fixture the upstream
// demo driver builds by hand.
func Demo() *Scene {
	s := New()
	s.Ambient = core.Color{R: 0.15, G: 0.15, B: 0.15, A: 1}

	sphere := shapes.NewSphere(math.Vec3Zero, 2, pigment.NewSolid(core.ColorRed), material.Default)
	hole := shapes.NewCylinder(math.NewVec3(0, -3, 0), math.NewVec3(0, 3, 0), 1, pigment.NewSolid(core.ColorRed), material.Default)
	s.AddShape(shapes.NewCSG(shapes.Subtraction, sphere, hole))

	floor := shapes.NewBox(math.NewVec3(-20, -4, -20), math.NewVec3(20, -3, 20),
		pigment.NewChecker(core.ColorWhite, core.ColorBlack, 1, 1), material.Bumped)
	s.AddShape(floor)

	s.AddLight(light.New(math.NewVec3(5, 8, 5), core.ColorWhite, 1, 0.05, 0.01))

	return s
}
