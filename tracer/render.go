package tracer

import (
	"runtime"
	"sync"

	"raytracer/camera"
	"raytracer/core"
	"raytracer/framebuf"
	"raytracer/sampling"
)

// Render drives the full data-parallel pixel sweep described in the
// concurrency design: one goroutine per runtime.NumCPU(), rows fed
// over a channel, a WaitGroup barrier at the end. Each pixel is
// written exactly once by exactly one worker; no scene data is ever
// mutated by a worker.
func Render(cam *camera.Camera, cfg *Config, width, height int, pixelDevs []sampling.Deviation) *framebuf.Framebuffer {
	fb := framebuf.New(width, height)

	rows := make(chan int, height)
	var wg sync.WaitGroup

	workers := runtime.NumCPU()
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				renderRow(fb, cam, cfg, width, height, y, pixelDevs)
			}
		}()
	}

	for y := 0; y < height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	return fb
}

func renderRow(fb *framebuf.Framebuffer, cam *camera.Camera, cfg *Config, width, height, y int, pixelDevs []sampling.Deviation) {
	devs := pixelDevs
	if len(devs) == 0 {
		devs = []sampling.Deviation{{X: 0.5, Y: 0.5, Weight: 1}}
	}

	for x := 0; x < width; x++ {
		sum := core.Color{}
		var totalWeight float32
		for _, d := range devs {
			cfg.Stats.addSample()
			ray := cam.PrimaryRay(x, y, width, height, d.X, d.Y)
			w := d.Weight
			if w == 0 {
				w = 1
			}
			sum = sum.Add(Trace(ray, cfg, cfg.Depth).Scale(w))
			totalWeight += w
		}
		if totalWeight > 0 {
			sum = sum.Scale(1 / totalWeight)
		}
		fb.Set(x, y, sum.Clamp01())
	}
}
