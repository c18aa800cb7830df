package render

import (
	"image"
	"math"
)

// Placement describes where a logo lands on the base image.
type Placement struct {
	Logo  image.Rectangle // resized logo rectangle
	Plate image.Rectangle // plate rectangle; empty when no plate is drawn
	Box   int             // side of the square box the logo was fitted into
}

// LogoPlacement computes the centred logo and plate rectangles for a base of
// baseW x baseH pixels and a logo of logoW x logoH pixels, without drawing.
func LogoPlacement(baseW, baseH, logoW, logoH int, scale float64, plate bool, pad float64) Placement {
	box := int(math.Round(float64(baseW) * scale))
	lw, lh := FitSize(logoW, logoH, box, box)
	x0 := (baseW - lw) / 2
	y0 := (baseH - lh) / 2
	p := Placement{
		Logo: image.Rect(x0, y0, x0+lw, y0+lh),
		Box:  box,
	}
	if plate {
		padPx := int(math.Round(float64(max(lw, lh)) * pad))
		p.Plate = p.Logo.Inset(-padPx)
	}
	return p
}

// OverlayLogo resizes logo to fit a square box of scale*width pixels, and
// composites it at the centre of base with alpha blending. With plate set, an
// opaque white square grown by pad*max(logo side) on every side is drawn
// first so that no module is partially covered at the logo edges.
//
// base is modified in place.
func OverlayLogo(base *image.NRGBA, logo image.Image, scale float64, plate bool, pad float64) error {
	if err := ValidateScale(scale); err != nil {
		return err
	}
	if pad < 0 {
		return ErrInvalidPad
	}
	if logo == nil || logo.Bounds().Empty() {
		return ErrNoLogo
	}

	bw, bh := base.Bounds().Dx(), base.Bounds().Dy()
	pl := LogoPlacement(bw, bh, logo.Bounds().Dx(), logo.Bounds().Dy(), scale, plate, pad)
	resized := ResizeFit(logo, pl.Box, pl.Box)

	if plate {
		DrawRect(base, pl.Plate.Add(base.Bounds().Min), white)
	}

	off := pl.Logo.Min.Add(base.Bounds().Min)
	rb := resized.Bounds()
	for y := 0; y < rb.Dy(); y++ {
		for x := 0; x < rb.Dx(); x++ {
			dx, dy := off.X+x, off.Y+y
			if !(image.Point{dx, dy}).In(base.Bounds()) {
				continue
			}
			src := resized.NRGBAAt(rb.Min.X+x, rb.Min.Y+y)
			base.SetNRGBA(dx, dy, BlendOver(base.NRGBAAt(dx, dy), src))
		}
	}
	return nil
}
