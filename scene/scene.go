// Package scene holds the frozen, parser-populated entity set a render
// pass reads from: shapes, lights, and the ambient color. Nothing in
// this package mutates once a render begins.
package scene

import (
	"raytracer/core"
	"raytracer/light"
	"raytracer/shapes"
)

// Scene is the immutable-during-render entity set produced by the
// parser and consumed by the tracer.
type Scene struct {
	Shapes  []shapes.Shape
	Lights  []light.Light
	Ambient core.Color
}

func New() *Scene {
	return &Scene{Ambient: core.Color{R: 0.1, G: 0.1, B: 0.1, A: 1}}
}

func (s *Scene) AddShape(shape shapes.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

func (s *Scene) AddLight(l light.Light) {
	s.Lights = append(s.Lights, l)
}
