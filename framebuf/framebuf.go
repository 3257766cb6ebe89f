// Package framebuf holds the rendered pixel buffer and encodes it to
// PNG or PPM.
package framebuf

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"raytracer/core"
)

// Framebuffer is a top-down row-major pixel buffer. Each pixel is
// written exactly once by exactly one render worker.
type Framebuffer struct {
	Width, Height int
	pixels        []core.Color
}

func New(width, height int) *Framebuffer {
	return &Framebuffer{Width: width, Height: height, pixels: make([]core.Color, width*height)}
}

func (f *Framebuffer) Set(x, y int, c core.Color) {
	f.pixels[y*f.Width+x] = c
}

func (f *Framebuffer) At(x, y int) core.Color {
	return f.pixels[y*f.Width+x]
}

// WritePNG encodes the framebuffer as an 8-bit PNG, matching the
// teacher's own image/png usage for texture round-tripping.
func (f *Framebuffer) WritePNG(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("framebuf: create %q: %w", path, err)
	}
	defer file.Close()

	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := f.At(x, y).RGB8()
			img.Set(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("framebuf: encode png %q: %w", path, err)
	}
	return nil
}

// WritePPM encodes the framebuffer as an ASCII PPM (P3) file: a
// "P3\n{w} {h}\n255\n" header followed by per-pixel "R G B " triples.
func (f *Framebuffer) WritePPM(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("framebuf: create %q: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", f.Width, f.Height); err != nil {
		return fmt.Errorf("framebuf: write ppm header %q: %w", path, err)
	}
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := f.At(x, y).RGB8()
			if _, err := fmt.Fprintf(w, "%d %d %d ", r, g, b); err != nil {
				return fmt.Errorf("framebuf: write ppm pixel %q: %w", path, err)
			}
		}
		if _, err := w.WriteString("\n"); err != nil {
			return fmt.Errorf("framebuf: write ppm row %q: %w", path, err)
		}
	}
	return w.Flush()
}

// DecodePNG reads back a PNG encoded by WritePNG, used by the
// idempotent-encode test.
func DecodePNG(r io.Reader) (*Framebuffer, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("framebuf: decode png: %w", err)
	}
	bounds := img.Bounds()
	fb := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			fb.Set(x, y, core.Color{R: float32(r) / 0xffff, G: float32(g) / 0xffff, B: float32(b) / 0xffff, A: 1})
		}
	}
	return fb, nil
}
