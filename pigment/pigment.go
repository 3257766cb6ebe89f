// Package pigment implements 2D color lookup by UV coordinate: solid
// colors, procedural functions, and bitmap-backed textures.
package pigment

import "raytracer/core"

// Texture is anything that can be sampled by a UV coordinate in [0,1)^2
// (before tiling). Implementations apply their own tiling periods.
type Texture interface {
	At(u, v float32) core.Color
}

// Solid is a constant-color texture.
type Solid struct {
	Color core.Color
}

func NewSolid(c core.Color) Solid {
	return Solid{Color: c}
}

func (s Solid) At(u, v float32) core.Color {
	return s.Color
}

// tile folds a coordinate into [0, period) the way a repeating texture
// pattern does; period <= 0 disables tiling (coordinate passes through).
func tile(x, period float32) float32 {
	if period <= 0 {
		return x
	}
	m := x - period*float32(int(x/period))
	if m < 0 {
		m += period
	}
	return m
}
