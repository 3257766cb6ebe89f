package shapes

import (
	stdmath "math"
	"testing"

	"raytracer/core"
	"raytracer/material"
	"raytracer/math"
	"raytracer/pigment"
)

func checkHitInvariants(t *testing.T, name string, h Hit) {
	t.Helper()
	if h.TMin > h.TMax {
		t.Errorf("%s: expected TMin <= TMax, got %v > %v", name, h.TMin, h.TMax)
	}
	if nl := h.NormalMin.Length(); nl != 0 && stdmath.Abs(float64(nl-1)) > 1e-6 {
		t.Errorf("%s: NormalMin not unit length: %v", name, nl)
	}
	if nl := h.NormalMax.Length(); nl != 0 && stdmath.Abs(float64(nl-1)) > 1e-6 {
		t.Errorf("%s: NormalMax not unit length: %v", name, nl)
	}
}

func TestSphereIntersectInvariants(t *testing.T) {
	s := NewSphere(math.Vec3Zero, 1, pigment.NewSolid(core.ColorRed), material.Default)
	ray := math.NewLine(math.NewVec3(0, 0, 5), math.NewVec3(0, 0, -1))

	h, ok := s.Intersect(ray, true)
	if !ok {
		t.Fatal("expected a hit through the sphere's center")
	}
	checkHitInvariants(t, "Sphere", h)

	if stdmath.Abs(float64(h.TMin-4)) > 1e-4 {
		t.Errorf("expected TMin=4, got %v", h.TMin)
	}
	if stdmath.Abs(float64(h.TMax-6)) > 1e-4 {
		t.Errorf("expected TMax=6, got %v", h.TMax)
	}

	miss := math.NewLine(math.NewVec3(5, 5, 5), math.NewVec3(0, 0, -1))
	if _, ok := s.Intersect(miss, true); ok {
		t.Error("expected a miss for a ray that does not cross the sphere")
	}
}

func TestBoxIntersectInvariants(t *testing.T) {
	b := NewBox(math.NewVec3(-1, -1, -1), math.NewVec3(1, 1, 1), pigment.NewSolid(core.ColorRed), material.Default)
	ray := math.NewLine(math.NewVec3(0, 0, 5), math.NewVec3(0, 0, -1))

	h, ok := b.Intersect(ray, true)
	if !ok {
		t.Fatal("expected a hit through the box")
	}
	checkHitInvariants(t, "Box", h)

	expected := math.NewVec3(0, 0, 1)
	if h.NormalMin != expected {
		t.Errorf("expected entry normal %v, got %v", expected, h.NormalMin)
	}
}

func TestCylinderIntersectInvariants(t *testing.T) {
	c := NewCylinder(math.NewVec3(0, -1, 0), math.NewVec3(0, 1, 0), 1, pigment.NewSolid(core.ColorRed), material.Default)
	ray := math.NewLine(math.NewVec3(0, 0, 5), math.NewVec3(0, 0, -1))

	h, ok := c.Intersect(ray, true)
	if !ok {
		t.Fatal("expected a hit through the cylinder side")
	}
	checkHitInvariants(t, "Cylinder", h)
}

func TestCSGUnionDisjoint(t *testing.T) {
	left := NewSphere(math.NewVec3(-5, 0, 0), 1, pigment.NewSolid(core.ColorRed), material.Default)
	right := NewSphere(math.NewVec3(5, 0, 0), 1, pigment.NewSolid(core.ColorRed), material.Default)
	u := NewCSG(Union, left, right)

	ray := math.NewLine(math.NewVec3(-5, 0, 5), math.NewVec3(0, 0, -1))
	h, ok := u.Intersect(ray, true)
	if !ok {
		t.Fatal("expected a hit on the near sphere")
	}
	checkHitInvariants(t, "CSG Union", h)
}

func TestCSGSubtraction(t *testing.T) {
	a := NewSphere(math.Vec3Zero, 2, pigment.NewSolid(core.ColorRed), material.Default)
	b := NewCylinder(math.NewVec3(0, -3, 0), math.NewVec3(0, 3, 0), 1, pigment.NewSolid(core.ColorRed), material.Default)
	sub := NewCSG(Subtraction, a, b)

	ray := math.NewLine(math.NewVec3(0, 0, 5), math.NewVec3(0, 0, -1))
	h, ok := sub.Intersect(ray, true)
	if !ok {
		t.Fatal("expected a hit on the carved sphere")
	}
	checkHitInvariants(t, "CSG Subtraction", h)

	if h.TMin != 3 {
		t.Errorf("expected the ray to hit the sphere's own near surface first, got TMin=%v", h.TMin)
	}
}
