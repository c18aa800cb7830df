package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// MinPixelsPerModule is the smallest module size that keeps module edges
// crisp enough to scan.
const MinPixelsPerModule = 2

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.NRGBA{A: 0xff}
)

// PixelsPerModule returns the integer module size for a grid of modules
// modules per side with a quiet zone of quiet modules drawn into size pixels,
// and the total number of modules per side including the border.
func PixelsPerModule(modules, size, quiet int) (ppm, total int) {
	total = modules + 2*quiet
	if total <= 0 || size <= 0 {
		return 0, total
	}
	return size / total, total
}

// Rasterize draws g onto a new opaque white canvas with black modules and a
// quiet zone of quiet modules on every side.
//
// The canvas side is ppm*total, which can be a few pixels short of size:
// module edges stay on whole pixels and are never anti-aliased.
func Rasterize(g Grid, size, quiet int) (*image.NRGBA, error) {
	if g == nil || g.Size() == 0 {
		return nil, ErrEmptyGrid
	}
	if quiet < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuietZone, quiet)
	}
	n := g.Size()
	ppm, total := PixelsPerModule(n, size, quiet)
	if ppm < MinPixelsPerModule {
		return nil, fmt.Errorf("%w: size %d over %d modules gives %d px per module, need %d",
			ErrSizeTooSmall, size, total, ppm, MinPixelsPerModule)
	}

	side := ppm * total
	img := imaging.New(side, side, white)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !g.Dark(x, y) {
				continue
			}
			px := (x + quiet) * ppm
			py := (y + quiet) * ppm
			DrawRect(img, image.Rect(px, py, px+ppm, py+ppm), black)
		}
	}
	return img, nil
}
