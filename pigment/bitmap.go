package pigment

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/deepteams/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"

	"raytracer/core"
	"raytracer/math"
)

// canonicalSize is the resolution bitmap textures are Lanczos-resampled
// to before UV sampling, so lookups are a flat O(1) array index
// regardless of the source asset's native resolution.
const canonicalSize = 512

// Bitmap is an RGB image sampled by UV with tiling periods (Sx, Sy).
type Bitmap struct {
	Width, Height int
	Pixels        []core.Color
	Sx, Sy        float32
}

// LoadBitmap decodes an image file (PNG, JPEG, WebP, or BMP — dispatched
// by image.Decode's registered format sniffing) and resamples it to a
// canonical resolution with a Lanczos filter.
func LoadBitmap(path string, sx, sy float32) (*Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pigment: open bitmap %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("pigment: decode bitmap %q: %w", path, err)
	}

	resized := imaging.Resize(img, canonicalSize, canonicalSize, imaging.Lanczos)
	bounds := resized.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	pixels := make([]core.Color, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := resized.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*w+x] = core.Color{
				R: float32(r) / 0xffff,
				G: float32(g) / 0xffff,
				B: float32(b) / 0xffff,
				A: float32(a) / 0xffff,
			}
		}
	}

	return &Bitmap{Width: w, Height: h, Pixels: pixels, Sx: sx, Sy: sy}, nil
}

func (b *Bitmap) At(u, v float32) core.Color {
	u = tile(u, b.Sx) / b.Sx
	v = tile(v, b.Sy) / b.Sy
	x := int(u * float32(b.Width))
	y := int(v * float32(b.Height))
	if x >= b.Width {
		x = b.Width - 1
	}
	if y >= b.Height {
		y = b.Height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return b.Pixels[y*b.Width+x]
}

// TexMap projects a Bitmap onto a parametric UV patch defined by two
// corner vectors P0, P1 in the shape's local frame, rather than the
// shape's own natural UV parameterization.
type TexMap struct {
	Bitmap *Bitmap
	P0, P1 math.Vec4
}

func NewTexMap(bmp *Bitmap, p0, p1 math.Vec4) TexMap {
	return TexMap{Bitmap: bmp, P0: p0, P1: p1}
}

// Project maps a local-frame point to the (u,v) of the patch spanned by
// P0..P1, then samples the underlying bitmap.
func (t TexMap) Project(point math.Vec3) core.Color {
	dx := t.P1.X - t.P0.X
	dy := t.P1.Y - t.P0.Y
	var u, v float32
	if dx != 0 {
		u = (point.X - t.P0.X) / dx
	}
	if dy != 0 {
		v = (point.Y - t.P0.Y) / dy
	}
	return t.Bitmap.At(u, v)
}
