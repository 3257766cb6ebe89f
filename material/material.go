// Package material holds the per-surface scalar coefficient bundle used
// by the tracer's shading equation.
package material

import "raytracer/math"

// Material is the Phong-style coefficient bundle bound to a shape's
// surface. All scalars are non-negative; IOR is >= 1 in practice.
type Material struct {
	Ambient   float32
	Diffuse   float32
	Specular  float32
	Alpha     float32 // Phong exponent
	Reflect   float32
	Transmit  float32
	IOR       float32
	Bump      math.Vec3 // normal perturbation, zero unless bump-mapped
}

func New(ambient, diffuse, specular, alpha, reflect, transmit, ior float32) Material {
	return Material{
		Ambient:  ambient,
		Diffuse:  diffuse,
		Specular: specular,
		Alpha:    alpha,
		Reflect:  reflect,
		Transmit: transmit,
		IOR:      ior,
	}
}

// Default is a flat matte surface with no reflectivity or transmission.
var Default = Material{Ambient: 0.1, Diffuse: 0.8, Specular: 0.2, Alpha: 16, IOR: 1}

// Mirror is a near-perfect specular reflector.
var Mirror = Material{Ambient: 0.05, Diffuse: 0.05, Specular: 0.9, Alpha: 64, Reflect: 0.9, IOR: 1}

// Glass is a transparent refractive surface.
var Glass = Material{Ambient: 0.05, Diffuse: 0.05, Specular: 0.5, Alpha: 96, Reflect: 0.1, Transmit: 0.9, IOR: 1.5}

// Matte is a purely diffuse, non-reflective, non-transmissive surface.
var Matte = Material{Ambient: 0.1, Diffuse: 0.9, Specular: 0, Alpha: 1, IOR: 1}

// Bumped is Default with a fixed normal perturbation, standing in for a
// bump-mapped surface until a bump-texture wire format exists.
var Bumped = Material{Ambient: 0.1, Diffuse: 0.8, Specular: 0.2, Alpha: 16, IOR: 1, Bump: math.NewVec3(0, 0.15, 0)}
