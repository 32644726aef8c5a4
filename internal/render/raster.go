package render

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"math"

	"github.com/woozymasta/checkcoord/internal/geo"

	"github.com/chai2010/webp"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/vector"
)

// Raster draws the set: regions are filled and outlined, lines are stroked,
// and every vertex gets a square marker.
func Raster(set *geo.CoordinateSet, opts Options) *image.RGBA {
	size := opts.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	pts := project(set, size, opts.Padding)
	z := vector.NewRasterizer(size, size)

	if set.Kind() == geo.Region {
		z.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			z.LineTo(p.X, p.Y)
		}
		z.ClosePath()
		z.Draw(img, img.Bounds(), image.NewUniform(opts.Fill), image.Point{})
	}

	if set.Kind() != geo.Spot {
		z.Reset(size, size)
		for i := 0; i+1 < len(pts); i++ {
			segment(z, pts[i], pts[i+1], opts.StrokeWidth/2)
		}
		if set.Kind() == geo.Region {
			segment(z, pts[len(pts)-1], pts[0], opts.StrokeWidth/2)
		}
		z.Draw(img, img.Bounds(), image.NewUniform(opts.Stroke), image.Point{})
	}

	z.Reset(size, size)
	half := max(opts.StrokeWidth, 2)
	for _, p := range pts {
		square(z, p, half)
	}
	z.Draw(img, img.Bounds(), image.NewUniform(opts.Stroke), image.Point{})

	return img
}

// segment adds a quad of half-width hw around a-b.
func segment(z *vector.Rasterizer, a, b vec, hw float32) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}

	nx, ny := -dy/length*hw, dx/length*hw

	z.MoveTo(a.X+nx, a.Y+ny)
	z.LineTo(b.X+nx, b.Y+ny)
	z.LineTo(b.X-nx, b.Y-ny)
	z.LineTo(a.X-nx, a.Y-ny)
	z.ClosePath()
}

// square adds an axis aligned square of half-size h centered on p.
func square(z *vector.Rasterizer, p vec, h float32) {
	z.MoveTo(p.X-h, p.Y-h)
	z.LineTo(p.X+h, p.Y-h)
	z.LineTo(p.X+h, p.Y+h)
	z.LineTo(p.X-h, p.Y+h)
	z.ClosePath()
}

// WriteWebP rasterizes the set and encodes it as WebP.
func WriteWebP(w io.Writer, set *geo.CoordinateSet, opts Options) error {
	img := Raster(set, opts)

	if err := webp.Encode(w, img, &webp.Options{Lossless: opts.Lossless, Quality: opts.Quality}); err != nil {
		return fmt.Errorf("encode webp: %w", err)
	}

	log.Debug().
		Str("type", set.Kind().String()).
		Int("size", opts.Size).
		Bool("lossless", opts.Lossless).
		Msg("WebP preview encoded")

	return nil
}
