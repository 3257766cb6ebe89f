// Package shapes implements the geometric primitives, CSG composition,
// and affine transform wrapper that make up the ray-surface
// intersection engine.
package shapes

import (
	"raytracer/material"
	"raytracer/math"
	"raytracer/pigment"
)

// Hit carries both boundary crossings of a ray through a solid: the
// entry (Min) and exit (Max) intersection. Normals point outward from
// the solid's interior; Inside reports whether the ray's origin already
// lay inside the half-space that produced that boundary.
type Hit struct {
	TMin, TMax         float32
	NormalMin, NormalMax math.Vec3
	InsideMin, InsideMax bool
	ColorMin, ColorMax   pigment.Texture
	MaterialMin, MaterialMax material.Material
}

// Shape is the uniform intersection contract every primitive, CSG node,
// and transform wrapper implements. info selects between a cheap
// any-hit scan (false, used by shadow rays and the nearest-hit survey)
// and a full info fetch (true, normals/pigment/material populated) on
// the eventual winner.
type Shape interface {
	Intersect(ray math.Line, info bool) (Hit, bool)
}

// Leaf bundles the reusable bits every primitive leaf shape needs: the
// pigment and material bound to its surface. CSG and Transform nodes
// don't embed this — they delegate color/material lookup to children.
type Leaf struct {
	Pigment  pigment.Texture
	Material material.Material
}
