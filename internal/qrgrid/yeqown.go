package qrgrid

import (
	"github.com/yeqown/go-qrcode/v2"

	"github.com/cristianadrielbraun/qrbrand/internal/render"
)

type yeqownEncoder struct{}

func (yeqownEncoder) Name() string { return Yeqown }

func (yeqownEncoder) Encode(content string) (render.Grid, error) {
	if err := checkContent(content); err != nil {
		return nil, err
	}
	qrc, err := qrcode.NewWith(content,
		qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest))
	if err != nil {
		return nil, encodeErr(Yeqown, err)
	}
	var w matrixWriter
	if err := qrc.Save(&w); err != nil {
		return nil, encodeErr(Yeqown, err)
	}
	return w.bitmap, nil
}

// matrixWriter implements qrcode.Writer and keeps the module matrix instead
// of drawing an image.
type matrixWriter struct {
	bitmap render.Bitmap
}

func (w *matrixWriter) Write(mat qrcode.Matrix) error {
	n := mat.Width()
	w.bitmap = make(render.Bitmap, mat.Height())
	for y := range w.bitmap {
		w.bitmap[y] = make([]bool, n)
	}
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		w.bitmap[y][x] = v.IsSet()
	})
	return nil
}

func (w *matrixWriter) Close() error { return nil }
