// Package tracer implements the nearest-hit search and the recursive
// Whitted-style shading loop: ambient + Phong diffuse/specular, shadow
// rays, reflection, and refraction.
package tracer

import (
	stdmath "math"

	"raytracer/core"
	"raytracer/material"
	"raytracer/math"
	"raytracer/pigment"
	"raytracer/sampling"
	"raytracer/scene"
	"raytracer/shapes"
)

// epsilon biases secondary ray origins off the surface to suppress
// self-intersection, and rejects near-grazing hits as misses.
const epsilon = 1e-4

// Config bundles the deviation sets and recursion budget a render pass
// is configured with; it is read-only once a render starts.
type Config struct {
	Scene        *scene.Scene
	Fallback     core.Color
	Depth        int
	LightDevs    []sampling.Deviation
	ReflectDevs  []sampling.Deviation
	TransmitDevs []sampling.Deviation
	Stats        *Stats
}

// Trace is the public entry point: casts ray into the scene and
// returns the accumulated shaded color, recursing up to depth.
func Trace(ray math.Line, cfg *Config, depth int) core.Color {
	cfg.Stats.addTrace()

	_, shape, useMin, ok := nearestHit(cfg.Scene, ray, false)
	if !ok {
		return cfg.Fallback
	}
	full, _ := shape.Intersect(ray, true)

	var t float32
	var normal math.Vec3
	if useMin {
		t, normal = full.TMin, full.NormalMin
	} else {
		t, normal = full.TMax, full.NormalMax
	}

	point := ray.At(t)
	m := pickMaterial(full, useMin)
	n := normal.Add(m.Bump).Normalize()
	tex := pickTexture(full, useMin)
	surfaceColor := tex.At(0, 0)
	inside := pickInside(full, useMin)

	result := core.Color{}

	if m.Reflect > epsilon && depth > 0 {
		result = result.Add(shadeReflect(ray, point, n, m, cfg, depth).Scale(m.Reflect))
	}
	if m.Transmit > epsilon && depth > 0 {
		result = result.Add(shadeTransmit(ray, point, n, m, inside, cfg, depth).Scale(m.Transmit))
	}

	ambientTerm := cfg.Scene.Ambient.Mul(surfaceColor).Scale(m.Ambient)
	result = result.Add(ambientTerm)

	if m.Diffuse > epsilon || m.Specular > epsilon {
		result = result.Add(directLighting(ray, point, n, m, surfaceColor, cfg))
	}

	return result
}

// nearestHit performs the cheap any-hit scan across every shape in the
// scene and returns the shape whose smaller positive t is minimal,
// along with whether that winning t is the shape's entry (TMin) or
// exit (TMax).
func nearestHit(s *scene.Scene, ray math.Line, info bool) (shapes.Hit, shapes.Shape, bool, bool) {
	var winner shapes.Shape
	var winnerHit shapes.Hit
	useMin := true
	best := float32(stdmath.MaxFloat32)
	found := false

	for _, shp := range s.Shapes {
		h, ok := shp.Intersect(ray, info)
		if !ok {
			continue
		}
		var t float32
		var min bool
		switch {
		case h.TMin > epsilon:
			t, min = h.TMin, true
		case h.TMax > epsilon:
			t, min = h.TMax, false
		default:
			continue
		}
		if t < best {
			best = t
			winner = shp
			winnerHit = h
			useMin = min
			found = true
		}
	}
	return winnerHit, winner, useMin, found
}

// anyHit is the shadow-ray query: true if the ray strikes any shape at
// a t strictly between epsilon and maxT.
func anyHit(s *scene.Scene, ray math.Line, maxT float32) bool {
	for _, shp := range s.Shapes {
		h, ok := shp.Intersect(ray, false)
		if !ok {
			continue
		}
		if h.TMin > epsilon && h.TMin < maxT {
			return true
		}
		if h.TMax > epsilon && h.TMax < maxT {
			return true
		}
	}
	return false
}

func pickMaterial(h shapes.Hit, useMin bool) material.Material {
	if useMin {
		return h.MaterialMin
	}
	return h.MaterialMax
}

func pickTexture(h shapes.Hit, useMin bool) pigment.Texture {
	if useMin {
		return h.ColorMin
	}
	return h.ColorMax
}

func pickInside(h shapes.Hit, useMin bool) bool {
	if useMin {
		return h.InsideMin
	}
	return h.InsideMax
}
