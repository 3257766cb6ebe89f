// Package camera builds the orthonormal view basis and casts primary
// rays through image pixels.
package camera

import (
	stdmath "math"

	"raytracer/math"
)

// Camera holds the orthonormal basis derived once per render from
// position, look-at target, up vector, and vertical field of view.
type Camera struct {
	Position math.Vec3
	Forward  math.Vec3
	Right    math.Vec3
	Up       math.Vec3

	scale       float32
	Orthogonal  bool
}

// New builds the camera basis: forward = normalize(L-E), right =
// normalize(forward x U), up = right x forward. fovDegrees is the
// vertical field of view.
func New(position, lookAt, up math.Vec3, fovDegrees float32, orthogonal bool) *Camera {
	forward := lookAt.Sub(position).Normalize()
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward)

	fovRad := float32(fovDegrees) * pi / 180
	scale := float32(stdmath.Tan(float64(fovRad / 2)))

	return &Camera{
		Position:   position,
		Forward:    forward,
		Right:      right,
		Up:         trueUp,
		scale:      scale,
		Orthogonal: orthogonal,
	}
}

const pi = float32(stdmath.Pi)

// PrimaryRay casts a ray through pixel (x,y) of a width x height image,
// jittered by the sub-pixel deviation (dx,dy) in [0,1)^2.
func (c *Camera) PrimaryRay(x, y, width, height int, dx, dy float32) math.Line {
	aspect := float32(width) / float32(height)

	sx := (2*(float32(x)+dx)/float32(width) - 1) * aspect * c.scale
	sy := (1 - 2*(float32(y)+dy)/float32(height)) * c.scale

	p := c.Position.Add(c.Forward).Add(c.Right.Mul(sx)).Add(c.Up.Mul(sy))

	if c.Orthogonal {
		return math.NewLine(p, c.Forward.Normalize())
	}
	return math.NewLine(c.Position, p.Sub(c.Position).Normalize())
}
