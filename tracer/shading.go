package tracer

import (
	stdmath "math"

	"raytracer/core"
	"raytracer/light"
	"raytracer/material"
	"raytracer/math"
	"raytracer/sampling"
)

// shadeReflect casts the weighted reflection cone and returns the
// accumulated, normalized (by total weight) contribution. The caller
// scales the result by material.Reflect.
func shadeReflect(ray math.Line, hit, n math.Vec3, m material.Material, cfg *Config, depth int) core.Color {
	r := ray.Direction.Sub(n.Mul(2 * n.Dot(ray.Direction))).Normalize()
	up := r.Perpendicular()
	right := r.Cross(up)
	anchor := hit.Add(r.Mul(5))

	devs := cfg.ReflectDevs
	if len(devs) == 0 {
		devs = []sampling.Deviation{{Weight: float32(stdmath.Sqrt2)}}
	}

	sum := core.Color{}
	var totalWeight float32
	for _, d := range devs {
		target := anchor.Add(right.Mul(d.X)).Add(up.Mul(d.Y))
		dir := target.Sub(hit).Normalize()
		origin := hit.Add(dir.Mul(epsilon))
		sum = sum.Add(Trace(math.NewLine(origin, dir), cfg, depth-1).Scale(d.Weight))
		totalWeight += d.Weight
	}
	if totalWeight == 0 {
		return core.Color{}
	}
	return sum.Scale(1 / totalWeight)
}

// shadeTransmit casts the weighted transmission cone through Snell's
// law refraction. The caller scales the result by material.Transmit.
func shadeTransmit(ray math.Line, hit, n math.Vec3, m material.Material, entering bool, cfg *Config, depth int) core.Color {
	eta := m.IOR
	if !entering {
		eta = 1 / m.IOR
	}
	c1 := n.Dot(ray.Direction.Negate())
	k := 1 - eta*eta*(1-c1*c1)
	if k < 0 {
		return core.Color{}
	}
	sqrtK := float32(stdmath.Sqrt(float64(k)))
	t := n.Mul(eta*c1 - sqrtK).Sub(ray.Direction.Negate().Mul(eta)).Normalize()

	up := t.Perpendicular()
	right := t.Cross(up)
	anchor := hit.Add(t.Mul(5))

	devs := cfg.TransmitDevs
	if len(devs) == 0 {
		devs = []sampling.Deviation{{Weight: float32(stdmath.Sqrt2)}}
	}

	sum := core.Color{}
	var totalWeight float32
	for _, d := range devs {
		target := anchor.Add(right.Mul(d.X)).Add(up.Mul(d.Y))
		dir := target.Sub(hit).Normalize()
		origin := hit.Add(dir.Mul(epsilon))
		sum = sum.Add(Trace(math.NewLine(origin, dir), cfg, depth-1).Scale(d.Weight))
		totalWeight += d.Weight
	}
	if totalWeight == 0 {
		return core.Color{}
	}
	return sum.Scale(1 / totalWeight)
}

// directLighting accumulates the diffuse + specular contribution of
// every light, each sampled over its area-light deviation set and
// tested for occlusion with a shadow ray.
func directLighting(ray math.Line, hit, n math.Vec3, m material.Material, surfaceColor core.Color, cfg *Config) core.Color {
	result := core.Color{}
	for _, l := range cfg.Scene.Lights {
		toLight := l.Position.Sub(hit)
		d := toLight.Length()
		if d == 0 {
			continue
		}
		right, up := light.TangentBasis(toLight)

		devs := cfg.LightDevs
		if len(devs) == 0 {
			devs = []sampling.Deviation{{}}
		}

		accum := core.Color{}
		for _, dev := range devs {
			samplePos := l.Position.Add(right.Mul(dev.X)).Add(up.Mul(dev.Y))
			omega := samplePos.Sub(hit).Normalize()

			shadowOrigin := hit.Add(omega.Mul(epsilon))
			if anyHit(cfg.Scene, math.NewLine(shadowOrigin, omega), d) {
				continue
			}

			atten := l.Attenuation(d)
			diffuse := float32(0)
			if ndotw := n.Dot(omega); ndotw > 0 {
				diffuse = ndotw * m.Diffuse
			}

			halfVec := omega.Sub(ray.Direction).Mul(0.5).Normalize()
			specular := float32(0)
			if ndoth := n.Dot(halfVec); ndoth > 0 {
				specular = float32(stdmath.Pow(float64(ndoth), float64(m.Alpha))) * m.Specular
			}

			contribution := surfaceColor.Mul(l.Color).Scale(diffuse * atten).Add(l.Color.Scale(specular * atten))
			accum = accum.Add(contribution)
		}
		if len(devs) > 0 {
			accum = accum.Scale(1 / float32(len(devs)))
		}
		result = result.Add(accum)
	}
	return result
}
