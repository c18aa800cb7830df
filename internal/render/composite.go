package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// BlendOver composites src over dst ("source over") on non-premultiplied
// 8-bit colors. A fully transparent src returns dst and a fully opaque src
// returns src, both exactly.
func BlendOver(dst, src color.NRGBA) color.NRGBA {
	switch src.A {
	case 0:
		return dst
	case 0xff:
		return src
	}
	sa := uint32(src.A)
	da := uint32(dst.A)
	// Output alpha scaled by 255: sa*255 + da*(255-sa).
	outA := sa*0xff + da*(0xff-sa)
	if outA == 0 {
		return color.NRGBA{}
	}
	ch := func(s, d uint8) uint8 {
		num := uint32(s)*sa*0xff + uint32(d)*da*(0xff-sa)
		return uint8((num + outA/2) / outA)
	}
	return color.NRGBA{
		R: ch(src.R, dst.R),
		G: ch(src.G, dst.G),
		B: ch(src.B, dst.B),
		A: uint8((outA + 0x7f) / 0xff),
	}
}

// DrawRect fills r with c, replacing the pixels underneath. The rectangle is
// clipped to the image bounds; a rectangle fully outside is a no-op.
func DrawRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Canon().Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := img.PixOffset(r.Min.X, y)
		row := img.Pix[i : i+4*r.Dx()]
		for j := 0; j < len(row); j += 4 {
			row[j+0] = c.R
			row[j+1] = c.G
			row[j+2] = c.B
			row[j+3] = c.A
		}
	}
}

// ResizeFit scales img down with a Lanczos filter so that it fits inside a
// maxW x maxH box, preserving its aspect ratio. The long axis (relative to
// the box) is set to the box side and the other is floored. Images already
// inside the box are copied unchanged, never upscaled.
func ResizeFit(img image.Image, maxW, maxH int) *image.NRGBA {
	w, h := FitSize(img.Bounds().Dx(), img.Bounds().Dy(), maxW, maxH)
	if w == img.Bounds().Dx() && h == img.Bounds().Dy() {
		return imaging.Clone(img)
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// FitSize returns the dimensions ResizeFit produces for a w x h source.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 || maxW <= 0 || maxH <= 0 {
		return w, h
	}
	if w <= maxW && h <= maxH {
		return w, h
	}
	// Integer cross-multiplication keeps exact ratios like 400x200 -> 203x101.
	if w*maxH >= h*maxW {
		return maxW, max(h*maxW/w, 1)
	}
	return max(w*maxH/h, 1), maxH
}
