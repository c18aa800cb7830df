package render

import "fmt"

// Logo scale bounds, as a fraction of the QR image width.
const (
	MinLogoScale = 0.05
	MaxLogoScale = 0.35
)

// Params is the validated rendering configuration handed to Compose.
type Params struct {
	Size      int     // requested side of the QR image in pixels
	QuietZone int     // border in modules
	LogoScale float64 // logo box side as a fraction of the QR width
	LogoPlate bool    // draw a white plate behind the logo
	LogoPad   float64 // plate padding as a fraction of the logo's long side
	ShowURL   bool    // render the encoded URL below the code
	AltText   string  // render this text below the code instead of the URL
}

// DefaultParams returns the defaults of the command-line tool.
func DefaultParams() Params {
	return Params{
		Size:      1024,
		QuietZone: 4,
		LogoScale: 0.20,
		LogoPlate: true,
		LogoPad:   0.18,
	}
}

// Validate checks the parameters that do not depend on the module grid.
// The pixels-per-module bound is checked by Rasterize once the grid is known.
func (p Params) Validate() error {
	if p.QuietZone < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuietZone, p.QuietZone)
	}
	if err := ValidateScale(p.LogoScale); err != nil {
		return err
	}
	if p.LogoPad < 0 {
		return fmt.Errorf("%w: %g", ErrInvalidPad, p.LogoPad)
	}
	return nil
}

// ValidateScale rejects logo scales outside [MinLogoScale, MaxLogoScale].
func ValidateScale(scale float64) error {
	if !(scale >= MinLogoScale && scale <= MaxLogoScale) {
		return fmt.Errorf("%w: %g (want %g..%g for scan reliability)",
			ErrInvalidScale, scale, MinLogoScale, MaxLogoScale)
	}
	return nil
}

// BandText returns the text to render below the code for the given URL, or
// "" when no band is wanted. AltText wins over ShowURL.
func (p Params) BandText(url string) string {
	switch {
	case p.AltText != "":
		return p.AltText
	case p.ShowURL:
		return url
	default:
		return ""
	}
}
