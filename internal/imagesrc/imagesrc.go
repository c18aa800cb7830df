// Package imagesrc decodes logo images.
//
// Raster formats are PNG, JPEG, GIF, WebP, BMP and TIFF, up to MaxPixels.
// SVG documents are rasterized with oksvg at their view box size, scaled so
// that the long side stays within [DefaultSVGSide, MaxSVGSide].
package imagesrc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/cristianadrielbraun/qrbrand/internal/render"
)

// MaxSVGSide bounds the raster size of an SVG logo. Logos are downscaled to
// at most 35% of the QR width afterwards, so this only needs to cover the
// largest QR sizes.
const MaxSVGSide = 2048

// DefaultSVGSide is used when an SVG has no usable view box, and as the
// minimum long side for small ones.
const DefaultSVGSide = 512

// MaxPixels bounds the pixel count of a raster logo. Headers are checked
// before any pixel buffer is allocated.
const MaxPixels = 4096 * 4096

var (
	ErrEmptyInput = errors.New("empty image data")
	ErrTooLarge   = errors.New("image dimensions too large")
)

// Decode reads an image from r, detecting SVG by content.
func Decode(r io.Reader) (image.Image, string, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(512)
	if len(head) == 0 {
		return nil, "", errors.Join(render.ErrDecodeFailure, ErrEmptyInput)
	}
	if IsSVG(head) {
		img, err := DecodeSVG(br)
		return img, "svg", err
	}
	// The header bytes read by DecodeConfig are replayed for Decode.
	var header bytes.Buffer
	cfg, _, err := image.DecodeConfig(io.TeeReader(br, &header))
	if err != nil {
		return nil, "", errors.Join(render.ErrDecodeFailure, fmt.Errorf("decode image header: %w", err))
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, "", errors.Join(render.ErrDecodeFailure,
			fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, cfg.Width, cfg.Height, MaxPixels))
	}
	img, format, err := image.Decode(io.MultiReader(&header, br))
	if err != nil {
		return nil, "", errors.Join(render.ErrDecodeFailure, fmt.Errorf("decode image: %w", err))
	}
	return img, format, nil
}

// DecodeFile opens and decodes the image at path.
func DecodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", errors.Join(render.ErrDecodeFailure, fmt.Errorf("open logo image %s: %w", path, err))
	}
	defer f.Close()
	img, format, err := Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("logo image %s: %w", path, err)
	}
	return img, format, nil
}

// IsSVG reports whether head looks like the start of an SVG document.
func IsSVG(head []byte) bool {
	s := bytes.TrimLeft(head, " \t\r\n\xef\xbb\xbf")
	if bytes.HasPrefix(s, []byte("<svg")) {
		return true
	}
	if bytes.HasPrefix(s, []byte("<?xml")) || bytes.HasPrefix(s, []byte("<!--")) || bytes.HasPrefix(s, []byte("<!DOCTYPE")) {
		return bytes.Contains(head, []byte("<svg"))
	}
	return false
}

// DecodeSVG rasterizes an SVG document onto a transparent canvas.
func DecodeSVG(r io.Reader) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(r, oksvg.WarnErrorMode)
	if err != nil {
		return nil, errors.Join(render.ErrDecodeFailure, fmt.Errorf("parse svg: %w", err))
	}
	w, h := svgSize(icon.ViewBox.W, icon.ViewBox.H)
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}

func svgSize(vw, vh float64) (int, int) {
	if !(vw > 0 && vh > 0) {
		return DefaultSVGSide, DefaultSVGSide
	}
	long := math.Max(vw, vh)
	var k float64
	switch {
	case long > MaxSVGSide:
		k = MaxSVGSide / long
	case long < DefaultSVGSide:
		k = DefaultSVGSide / long
	default:
		k = 1
	}
	vw, vh = vw*k, vh*k
	return max(int(math.Round(vw)), 1), max(int(math.Round(vh)), 1)
}
