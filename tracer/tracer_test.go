package tracer

import (
	"testing"

	"raytracer/camera"
	"raytracer/core"
	"raytracer/light"
	"raytracer/material"
	"raytracer/math"
	"raytracer/pigment"
	"raytracer/sampling"
	"raytracer/scene"
	"raytracer/shapes"
)

func emptyConfig() *Config {
	return &Config{
		Scene:    scene.New(),
		Fallback: core.Color{R: 0.2, G: 0.2, B: 0.2, A: 1},
		Depth:    5,
		Stats:    &Stats{},
	}
}

func TestTraceMissReturnsFallback(t *testing.T) {
	cfg := emptyConfig()
	ray := math.NewLine(math.NewVec3(0, 0, 5), math.NewVec3(0, 0, -1))

	got := Trace(ray, cfg, cfg.Depth)
	if got != cfg.Fallback {
		t.Errorf("expected exact fallback color on a miss, got %v want %v", got, cfg.Fallback)
	}
}

func TestTraceDepthZeroSkipsReflectTransmit(t *testing.T) {
	s := scene.New()
	s.Ambient = core.ColorBlack
	s.AddShape(shapes.NewSphere(math.Vec3Zero, 1,
		pigment.NewSolid(core.ColorWhite), material.Mirror))

	cfg := &Config{Scene: s, Fallback: core.ColorBlack, Depth: 0, Stats: &Stats{}}
	ray := math.NewLine(math.NewVec3(0, 0, 5), math.NewVec3(0, 0, -1))

	// At depth 0 the recursive reflect/transmit terms must not fire;
	// with zero scene ambient and zero lights, every other term is also
	// zero, so the result must be exactly black.
	got := Trace(ray, cfg, cfg.Depth)
	if got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("expected no reflect/transmit contribution at depth 0, got %v", got)
	}
}

func TestBumpPerturbsShading(t *testing.T) {
	flat := scene.New()
	flat.AddShape(shapes.NewSphere(math.Vec3Zero, 1, pigment.NewSolid(core.ColorWhite), material.Default))
	flat.AddLight(light.New(math.NewVec3(3, 3, 3), core.ColorWhite, 1, 0, 0))

	bumped := scene.New()
	bumped.AddShape(shapes.NewSphere(math.Vec3Zero, 1, pigment.NewSolid(core.ColorWhite), material.Bumped))
	bumped.AddLight(light.New(math.NewVec3(3, 3, 3), core.ColorWhite, 1, 0, 0))

	ray := math.NewLine(math.NewVec3(0, 0, 5), math.NewVec3(0, 0, -1))

	flatColor := Trace(ray, &Config{Scene: flat, Fallback: core.ColorBlack, Depth: 1, Stats: &Stats{}}, 1)
	bumpedColor := Trace(ray, &Config{Scene: bumped, Fallback: core.ColorBlack, Depth: 1, Stats: &Stats{}}, 1)

	if flatColor == bumpedColor {
		t.Errorf("expected material.Bump to perturb the shading normal and change the result, got identical colors %v", flatColor)
	}
}

func TestDirectLightingIncreasesWithAttenuation(t *testing.T) {
	s := scene.New()
	s.AddShape(shapes.NewSphere(math.Vec3Zero, 1,
		pigment.NewSolid(core.ColorWhite), material.Default))

	near := light.New(math.NewVec3(0, 0, 3), core.ColorWhite, 1, 0, 0.05)
	far := light.New(math.NewVec3(0, 0, 30), core.ColorWhite, 1, 0, 0.05)

	ray := math.NewLine(math.NewVec3(0, 0, 5), math.NewVec3(0, 0, -1))
	hit := math.NewVec3(0, 0, 1)
	normal := math.NewVec3(0, 0, 1)

	s.Lights = []light.Light{near}
	cfgNear := &Config{Scene: s, Stats: &Stats{}}
	nearColor := directLighting(ray, hit, normal, material.Default, core.ColorWhite, cfgNear)

	s.Lights = []light.Light{far}
	cfgFar := &Config{Scene: s, Stats: &Stats{}}
	farColor := directLighting(ray, hit, normal, material.Default, core.ColorWhite, cfgFar)

	if nearColor.R <= farColor.R {
		t.Errorf("expected a closer light to contribute more: near=%v far=%v", nearColor.R, farColor.R)
	}
}

func TestRenderIsDeterministicAcrossCalls(t *testing.T) {
	s := scene.Demo()
	cam := camera.New(math.NewVec3(0, 0, 10), math.Vec3Zero, math.Vec3Up, 60, false)
	harness := sampling.New(1)

	cfg := &Config{
		Scene:        s,
		Fallback:     core.Color{B: 0.3, A: 1},
		Depth:        3,
		LightDevs:    sampling.LightDeviations(1, 0),
		ReflectDevs:  sampling.ConeDeviations(1),
		TransmitDevs: sampling.ConeDeviations(1),
		Stats:        &Stats{},
	}
	devs := harness.PixelDeviations(sampling.PixelCenter, 1, 0)

	a := Render(cam, cfg, 24, 24, devs)
	b := Render(cam, cfg, 24, 24, devs)

	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("pixel (%d,%d) differs between identical renders: %v vs %v", x, y, a.At(x, y), b.At(x, y))
			}
		}
	}
}
