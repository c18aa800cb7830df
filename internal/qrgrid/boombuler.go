package qrgrid

import (
	"github.com/boombuler/barcode/qr"

	"github.com/cristianadrielbraun/qrbrand/internal/render"
)

type boombulerEncoder struct{}

func (boombulerEncoder) Name() string { return Boombuler }

func (boombulerEncoder) Encode(content string) (render.Grid, error) {
	if err := checkContent(content); err != nil {
		return nil, err
	}
	code, err := qr.Encode(content, qr.H, qr.Auto)
	if err != nil {
		return nil, encodeErr(Boombuler, err)
	}
	// Unscaled codes are one pixel per module with no border.
	b := code.Bounds()
	bm := make(render.Bitmap, b.Dy())
	for y := range bm {
		bm[y] = make([]bool, b.Dx())
		for x := range bm[y] {
			r, _, _, _ := code.At(b.Min.X+x, b.Min.Y+y).RGBA()
			bm[y][x] = r < 0x8000
		}
	}
	return bm, nil
}
