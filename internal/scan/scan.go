// Package scan reads QR codes back from finished images to check that a logo
// or text band has not made them unreadable.
package scan

import (
	"errors"
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

var ErrMismatch = errors.New("decoded QR content does not match")

// Decode returns the text of the QR code found in img.
func Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("creating bitmap: %w", err)
	}
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	result, err := qrcode.NewQRCodeReader().Decode(bmp, hints)
	if err != nil {
		return "", fmt.Errorf("no QR code found in image: %w", err)
	}
	return result.GetText(), nil
}

// Verify decodes img and checks that it carries want.
func Verify(img image.Image, want string) error {
	got, err := Decode(img)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: got %q, want %q", ErrMismatch, got, want)
	}
	return nil
}
