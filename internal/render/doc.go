// Package render composes branded QR code images.
//
// The pipeline has three stages, each handing its buffer to the next:
//
//	img, err := render.Rasterize(grid, 1024, 4)       // crisp modules, quiet zone
//	err = render.OverlayLogo(img, logo, 0.2, true, 0.18) // optional, in place
//	img, err = render.AppendTextBand(img, url, face)     // optional, new buffer
//
// Compose runs all three after validating the parameters up front.
//
// The module grid, decoded logo and font are supplied by the caller; this
// package does no I/O.
package render
