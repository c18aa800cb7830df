package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Text band sizing.
const (
	BandRatio      = 0.18 // band height as a fraction of the base height
	MinBandHeight  = 120  // px
	StartFontRatio = 0.35 // starting font size as a fraction of the band height
	MinStartFont   = 18.0 // px
	MinFontSize    = 14.0 // px; text that still does not fit overflows
	ShrinkFactor   = 0.92
	MarginRatio    = 0.06 // horizontal margin as a fraction of the width
	MinMargin      = 24   // px
)

// Typeface is a font resource that hands out faces at a pixel size. It is
// loaded once and shared read-only; each face is used by one caller and
// closed after use.
type Typeface interface {
	NewFace(px float64) (font.Face, error)
}

// BandHeight returns the height of the text band for a base of height h.
func BandHeight(h int) int {
	return max(int(math.Round(float64(h)*BandRatio)), MinBandHeight)
}

// TextMargin returns the horizontal margin for a band of width w.
func TextMargin(w int) int {
	return max(int(math.Round(float64(w)*MarginRatio)), MinMargin)
}

// MeasureText returns the advance width of text in pixels, kerning included.
func MeasureText(face font.Face, text string) float64 {
	var adv fixed.Int26_6
	prev := rune(-1)
	for _, r := range text {
		if prev >= 0 {
			adv += face.Kern(prev, r)
		}
		if a, ok := face.GlyphAdvance(r); ok {
			adv += a
		}
		prev = r
	}
	return fixedToFloat(adv)
}

// FitFontSize starts at start px and shrinks by ShrinkFactor until text
// measures at most maxWidth or the size reaches MinFontSize.
// The size never drops below MinFontSize.
func FitFontSize(tf Typeface, text string, maxWidth, start float64) (float64, error) {
	px := math.Max(start, MinFontSize)
	for {
		w, err := measureAt(tf, text, px)
		if err != nil {
			return 0, err
		}
		if w <= maxWidth || px <= MinFontSize {
			return px, nil
		}
		px = math.Max(px*ShrinkFactor, MinFontSize)
	}
}

func measureAt(tf Typeface, text string, px float64) (float64, error) {
	face, err := tf.NewFace(px)
	if err != nil {
		return 0, fmt.Errorf("font face at %.2fpx: %w", px, err)
	}
	defer face.Close()
	return MeasureText(face, text), nil
}

// AppendTextBand returns a new image: base on top, and below it a white band
// with text drawn in black on a single line, centred both ways. The font size
// is fitted to the band width (see FitFontSize); base is not modified.
func AppendTextBand(base *image.NRGBA, text string, tf Typeface) (*image.NRGBA, error) {
	if tf == nil {
		return nil, ErrNoTypeface
	}
	bw, bh := base.Bounds().Dx(), base.Bounds().Dy()
	band := BandHeight(bh)
	margin := TextMargin(bw)
	maxW := float64(max(bw-2*margin, 0))
	start := math.Max(math.Round(float64(band)*StartFontRatio), MinStartFont)

	px, err := FitFontSize(tf, text, maxW, start)
	if err != nil {
		return nil, err
	}
	face, err := tf.NewFace(px)
	if err != nil {
		return nil, fmt.Errorf("font face at %.2fpx: %w", px, err)
	}
	defer face.Close()

	out := imaging.New(bw, bh+band, white)
	copyRows(out, base)

	m := face.Metrics()
	ascent, descent := fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
	centerY := float64(bh) + float64(band)/2
	baseline := centerY + (ascent-descent)/2

	textW := MeasureText(face, text)
	x := math.Max((float64(bw)-textW)/2, float64(margin))

	DrawText(out, face, text, x, baseline, black)
	return out, nil
}

// DrawText rasterizes text glyph by glyph with its baseline at (x, y) and
// blends the anti-aliased coverage of each glyph onto img in color c.
func DrawText(img *image.NRGBA, face font.Face, text string, x, y float64, c color.NRGBA) {
	dot := fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)}
	bounds := img.Bounds()
	prev := rune(-1)
	for _, r := range text {
		if prev >= 0 {
			dot.X += face.Kern(prev, r)
		}
		prev = r
		dr, mask, mp, adv, ok := face.Glyph(dot, r)
		if !ok {
			continue
		}
		for py := dr.Min.Y; py < dr.Max.Y; py++ {
			for px := dr.Min.X; px < dr.Max.X; px++ {
				if !(image.Point{px, py}).In(bounds) {
					continue
				}
				_, _, _, a := mask.At(mp.X+px-dr.Min.X, mp.Y+py-dr.Min.Y).RGBA()
				if a == 0 {
					continue
				}
				src := c
				src.A = uint8(uint32(c.A) * (a >> 8) / 0xff)
				img.SetNRGBA(px, py, BlendOver(img.NRGBAAt(px, py), src))
			}
		}
		dot.X += adv
	}
}

// copyRows copies src into the top-left corner of dst byte for byte.
func copyRows(dst, src *image.NRGBA) {
	sb := src.Bounds()
	w := min(sb.Dx(), dst.Bounds().Dx())
	h := min(sb.Dy(), dst.Bounds().Dy())
	for y := 0; y < h; y++ {
		si := src.PixOffset(sb.Min.X, sb.Min.Y+y)
		di := dst.PixOffset(dst.Bounds().Min.X, dst.Bounds().Min.Y+y)
		copy(dst.Pix[di:di+4*w], src.Pix[si:si+4*w])
	}
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

func floatToFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }
