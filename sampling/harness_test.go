package sampling

import (
	stdmath "math"
	"testing"
)

func TestPixelDeviationsCenterIsSingleFullWeight(t *testing.T) {
	h := New(1)
	devs := h.PixelDeviations(PixelCenter, 1, 0)
	if len(devs) != 1 {
		t.Fatalf("PixelCenter: expected 1 deviation, got %d", len(devs))
	}
	if devs[0].X != 0.5 || devs[0].Y != 0.5 || devs[0].Weight != 1 {
		t.Errorf("PixelCenter: expected (0.5,0.5,w=1), got %+v", devs[0])
	}
}

func TestPixelDeviationsGridCount(t *testing.T) {
	h := New(1)
	devs := h.PixelDeviations(PixelGrid, 3, 0)
	if len(devs) != 9 {
		t.Fatalf("3x3 grid: expected 9 deviations, got %d", len(devs))
	}
	for _, d := range devs {
		if d.X < 0 || d.X > 1 || d.Y < 0 || d.Y > 1 {
			t.Errorf("grid deviation out of [0,1]^2: %+v", d)
		}
	}
}

func TestPixelDeviationsPoissonMinDistance(t *testing.T) {
	h := New(1)
	radius := float32(0.15)
	devs := h.PixelDeviations(PixelPoisson, 0, radius)
	if len(devs) < 2 {
		t.Fatalf("expected at least 2 Poisson samples, got %d", len(devs))
	}
	for i := range devs {
		for j := range devs {
			if i == j {
				continue
			}
			dx := devs[i].X - devs[j].X
			dy := devs[i].Y - devs[j].Y
			d := stdmath.Sqrt(float64(dx*dx + dy*dy))
			if d < float64(radius)-1e-4 {
				t.Errorf("Poisson samples %d,%d closer than radius %v: %v", i, j, radius, d)
			}
		}
	}
}

func TestHarnessIsDeterministic(t *testing.T) {
	a := New(99).PixelDeviations(PixelPoisson, 0, 0.2)
	b := New(99).PixelDeviations(PixelPoisson, 0, 0.2)
	if len(a) != len(b) {
		t.Fatalf("same seed produced different sample counts: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different deviation at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestLightDeviationsAlwaysIncludesCenter(t *testing.T) {
	devs := LightDeviations(2, 1.0)
	if devs[0].X != 0 || devs[0].Y != 0 {
		t.Errorf("expected center deviation first, got %+v", devs[0])
	}
	if len(devs) != 1+2*2 {
		t.Errorf("expected 1+n*n deviations, got %d", len(devs))
	}
}

func TestConeDeviationsWeightFormula(t *testing.T) {
	devs := ConeDeviations(4)
	sqrt2 := float32(stdmath.Sqrt2)
	if devs[0].Weight != sqrt2 {
		t.Errorf("center weight: expected sqrt(2), got %v", devs[0].Weight)
	}
	for _, d := range devs[1:] {
		length := float32(stdmath.Sqrt(float64(d.X*d.X + d.Y*d.Y)))
		want := sqrt2 - length
		if want < 0 {
			want = 0
		}
		if stdmath.Abs(float64(d.Weight-want)) > 1e-5 {
			t.Errorf("weight formula mismatch at %+v: got %v want %v", d, d.Weight, want)
		}
	}
}
