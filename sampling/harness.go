// Package sampling generates the deviation sets that drive distributed
// sampling: sub-pixel anti-aliasing offsets, area-light tangent-plane
// offsets, and weighted cone offsets for reflection/transmission.
package sampling

import (
	stdmath "math"

	"cogentcore.org/core/base/randx"
)

// Deviation is a 2D offset paired with a sampling weight.
type Deviation struct {
	X, Y   float32
	Weight float32
}

// PixelMode selects the sub-pixel anti-aliasing strategy.
type PixelMode int

const (
	PixelCenter PixelMode = iota
	PixelGrid
	PixelPoisson
)

// Harness is a pure generator: identical parameters and seed always
// produce identical deviation sets, satisfying the sampling contract
// that randomness (where present) is deterministic.
type Harness struct {
	rng randx.Rand
}

// New builds a Harness seeded deterministically; the same seed always
// drives the same Poisson-disk sequence.
func New(seed int64) *Harness {
	return &Harness{rng: randx.NewSysRand(seed)}
}

// PixelDeviations returns the sub-pixel (dx,dy) jitter set for the
// given mode. n is the grid dimension for PixelGrid (n*n samples);
// poissonRadius is the minimum-distance radius (as a fraction of 1.0)
// for PixelPoisson. Each mode ignores the other's parameter.
func (h *Harness) PixelDeviations(mode PixelMode, n int, poissonRadius float32) []Deviation {
	switch mode {
	case PixelGrid:
		return gridDeviations(n)
	case PixelPoisson:
		return h.poissonDeviations(poissonRadius)
	default:
		return []Deviation{{X: 0.5, Y: 0.5, Weight: 1}}
	}
}

func gridDeviations(n int) []Deviation {
	if n < 1 {
		n = 1
	}
	devs := make([]Deviation, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			devs = append(devs, Deviation{
				X:      (float32(i) + 0.5) / float32(n),
				Y:      (float32(j) + 0.5) / float32(n),
				Weight: 1,
			})
		}
	}
	return devs
}

// poissonDeviations implements Bridson's dart-throwing algorithm over
// the unit square with minimum separation radius.
func (h *Harness) poissonDeviations(radius float32) []Deviation {
	if radius <= 0 {
		radius = 0.1
	}
	const maxAttempts = 30
	cellSize := radius / float32(stdmath.Sqrt2)
	gridW := int(1/cellSize) + 1
	grid := make([]int, gridW*gridW)
	for i := range grid {
		grid[i] = -1
	}

	var points []Deviation
	var active []int

	first := Deviation{X: h.rng.Float32(), Y: h.rng.Float32(), Weight: 1}
	points = append(points, first)
	active = append(active, 0)
	grid[cellIndex(first, cellSize, gridW)] = 0

	for len(active) > 0 {
		idx := h.rng.Intn(len(active))
		p := points[active[idx]]
		found := false

		for k := 0; k < maxAttempts; k++ {
			angle := h.rng.Float32() * 2 * pi
			dist := radius * (1 + h.rng.Float32())
			cand := Deviation{
				X: p.X + dist*float32(stdmath.Cos(float64(angle))),
				Y: p.Y + dist*float32(stdmath.Sin(float64(angle))),
			}
			if cand.X < 0 || cand.X >= 1 || cand.Y < 0 || cand.Y >= 1 {
				continue
			}
			if farEnough(cand, points, grid, cellSize, gridW, radius) {
				cand.Weight = 1
				points = append(points, cand)
				grid[cellIndex(cand, cellSize, gridW)] = len(points) - 1
				active = append(active, len(points)-1)
				found = true
				break
			}
		}
		if !found {
			active = append(active[:idx], active[idx+1:]...)
		}
	}
	return points
}

const pi = float32(stdmath.Pi)

func cellIndex(d Deviation, cellSize float32, gridW int) int {
	cx := int(d.X / cellSize)
	cy := int(d.Y / cellSize)
	return cy*gridW + cx
}

func farEnough(cand Deviation, points []Deviation, grid []int, cellSize float32, gridW int, radius float32) bool {
	cx := int(cand.X / cellSize)
	cy := int(cand.Y / cellSize)
	for y := cy - 2; y <= cy+2; y++ {
		for x := cx - 2; x <= cx+2; x++ {
			if x < 0 || y < 0 || x >= gridW || y >= gridW {
				continue
			}
			idx := grid[y*gridW+x]
			if idx < 0 {
				continue
			}
			other := points[idx]
			dx := cand.X - other.X
			dy := cand.Y - other.Y
			if dx*dx+dy*dy < radius*radius {
				return false
			}
		}
	}
	return true
}

// LightDeviations returns (0,0) plus an n*n uniform grid centered on
// zero with spacing s/n, where s is the light's area side length.
func LightDeviations(n int, areaSide float32) []Deviation {
	devs := []Deviation{{X: 0, Y: 0, Weight: 1}}
	if n <= 0 || areaSide <= 0 {
		return devs
	}
	spacing := areaSide / float32(n)
	half := float32(n-1) / 2
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			devs = append(devs, Deviation{
				X:      (float32(i) - half) * spacing,
				Y:      (float32(j) - half) * spacing,
				Weight: 1,
			})
		}
	}
	return devs
}

// ConeDeviations returns the (offset, weight) pairs used for cone
// sampling of reflection/transmission directions: an n*n grid on side
// 1.0 with weight = sqrt(2) - ||offset||, largest at the center and
// smallest at the grid corners (no offset is long enough for the weight
// to reach zero). The zero-offset center is always included with weight
// sqrt(2).
func ConeDeviations(n int) []Deviation {
	sqrt2 := float32(stdmath.Sqrt2)
	devs := []Deviation{{X: 0, Y: 0, Weight: sqrt2}}
	if n <= 0 {
		return devs
	}
	half := float32(n-1) / 2
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := (float32(i) - half) / float32(n)
			y := (float32(j) - half) / float32(n)
			if x == 0 && y == 0 {
				continue
			}
			length := float32(stdmath.Sqrt(float64(x*x + y*y)))
			w := sqrt2 - length
			if w < 0 {
				w = 0
			}
			devs = append(devs, Deviation{X: x, Y: y, Weight: w})
		}
	}
	return devs
}
