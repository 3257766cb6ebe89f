package camera

import (
	stdmath "math"
	"testing"

	"raytracer/math"
)

func TestNewBuildsOrthonormalBasis(t *testing.T) {
	c := New(math.NewVec3(0, 0, 5), math.Vec3Zero, math.Vec3Up, 90, false)

	if stdmath.Abs(float64(c.Forward.Length()-1)) > 1e-5 {
		t.Errorf("Forward not unit length: %v", c.Forward.Length())
	}
	if stdmath.Abs(float64(c.Right.Length()-1)) > 1e-5 {
		t.Errorf("Right not unit length: %v", c.Right.Length())
	}
	if stdmath.Abs(float64(c.Up.Length()-1)) > 1e-5 {
		t.Errorf("Up not unit length: %v", c.Up.Length())
	}
	if stdmath.Abs(float64(c.Forward.Dot(c.Right))) > 1e-5 {
		t.Errorf("Forward/Right not orthogonal: dot=%v", c.Forward.Dot(c.Right))
	}
	if stdmath.Abs(float64(c.Forward.Dot(c.Up))) > 1e-5 {
		t.Errorf("Forward/Up not orthogonal: dot=%v", c.Forward.Dot(c.Up))
	}
}

func TestPrimaryRayCenterPixelPointsForward(t *testing.T) {
	pos := math.NewVec3(0, 0, 5)
	c := New(pos, math.Vec3Zero, math.Vec3Up, 60, false)

	ray := c.PrimaryRay(128, 128, 256, 256, 0, 0)
	if ray.Origin != pos {
		t.Errorf("perspective ray should originate at the camera position, got %v", ray.Origin)
	}

	diff := ray.Direction.Sub(c.Forward)
	if diff.Length() > 1e-4 {
		t.Errorf("center pixel ray should point along Forward, got %v vs %v", ray.Direction, c.Forward)
	}
}

func TestPrimaryRayOrthogonalParallel(t *testing.T) {
	pos := math.NewVec3(0, 0, 5)
	c := New(pos, math.Vec3Zero, math.Vec3Up, 60, true)

	r1 := c.PrimaryRay(0, 128, 256, 256, 0.5, 0.5)
	r2 := c.PrimaryRay(255, 128, 256, 256, 0.5, 0.5)

	if r1.Direction.Sub(r2.Direction).Length() > 1e-5 {
		t.Errorf("orthogonal rays across the image should share direction: %v vs %v", r1.Direction, r2.Direction)
	}
	if r1.Origin == r2.Origin {
		t.Error("orthogonal rays at different pixels should originate at different points")
	}
}
