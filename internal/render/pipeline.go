package render

import (
	"fmt"
	"image"
)

// Input carries the collaborator-provided data for one Compose call.
type Input struct {
	Grid     Grid        // required
	Logo     image.Image // optional centre logo
	Text     string      // optional band text; see Params.BandText
	Typeface Typeface    // required when Text is not empty
}

// CheckGrid reports whether g can be drawn at p.Size with p.QuietZone. It
// allocates nothing, so callers can run it before decoding a logo.
func (p Params) CheckGrid(g Grid) error {
	if g == nil || g.Size() == 0 {
		return ErrEmptyGrid
	}
	if ppm, total := PixelsPerModule(g.Size(), p.Size, p.QuietZone); ppm < MinPixelsPerModule {
		return fmt.Errorf("%w: size %d over %d modules gives %d px per module",
			ErrSizeTooSmall, p.Size, total, ppm)
	}
	return nil
}

// Compose runs the whole pipeline: rasterize the grid, overlay the logo if
// one is given, and append the text band if text is given. All checks run
// before the first buffer is allocated. The returned image is owned by the
// caller.
func Compose(in Input, p Params) (*image.NRGBA, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := p.CheckGrid(in.Grid); err != nil {
		return nil, err
	}
	if in.Logo != nil && in.Logo.Bounds().Empty() {
		return nil, ErrNoLogo
	}
	if in.Text != "" && in.Typeface == nil {
		return nil, ErrNoTypeface
	}

	img, err := Rasterize(in.Grid, p.Size, p.QuietZone)
	if err != nil {
		return nil, err
	}
	if in.Logo != nil {
		if err := OverlayLogo(img, in.Logo, p.LogoScale, p.LogoPlate, p.LogoPad); err != nil {
			return nil, fmt.Errorf("overlay logo: %w", err)
		}
	}
	if in.Text != "" {
		if img, err = AppendTextBand(img, in.Text, in.Typeface); err != nil {
			return nil, fmt.Errorf("append text band: %w", err)
		}
	}
	return img, nil
}
