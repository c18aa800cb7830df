package render

import "errors"

// Error kinds surfaced by the composition pipeline.
var (
	// ErrSizeTooSmall is returned when the requested canvas yields fewer than
	// two pixels per module.
	ErrSizeTooSmall = errors.New("requested size too small for QR module count")
	// ErrInvalidScale is returned when the logo scale is outside [MinLogoScale, MaxLogoScale].
	ErrInvalidScale = errors.New("logo scale out of range")
	// ErrDecodeFailure wraps failures reported by the image and font decoders.
	ErrDecodeFailure = errors.New("decode failure")

	ErrInvalidPad       = errors.New("logo pad must not be negative")
	ErrInvalidQuietZone = errors.New("quiet zone must not be negative")
	ErrEmptyGrid        = errors.New("QR module count is zero")
	ErrNoTypeface       = errors.New("text band requested without a typeface")
	ErrNoLogo           = errors.New("logo image is nil or empty")
)
