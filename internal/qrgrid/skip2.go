package qrgrid

import (
	skipqrcode "github.com/skip2/go-qrcode"

	"github.com/cristianadrielbraun/qrbrand/internal/render"
)

type skip2Encoder struct{}

func (skip2Encoder) Name() string { return Skip2 }

func (skip2Encoder) Encode(content string) (render.Grid, error) {
	if err := checkContent(content); err != nil {
		return nil, err
	}
	q, err := skipqrcode.New(content, skipqrcode.Highest)
	if err != nil {
		return nil, encodeErr(Skip2, err)
	}
	// The quiet zone is drawn by render.Rasterize.
	q.DisableBorder = true
	return render.Bitmap(q.Bitmap()), nil
}
