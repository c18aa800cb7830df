package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrbrand/internal/imagesrc"
	"github.com/cristianadrielbraun/qrbrand/internal/link"
	"github.com/cristianadrielbraun/qrbrand/internal/logger"
	"github.com/cristianadrielbraun/qrbrand/internal/qrgrid"
	"github.com/cristianadrielbraun/qrbrand/internal/render"
	"github.com/cristianadrielbraun/qrbrand/internal/scan"
	"github.com/cristianadrielbraun/qrbrand/web/components"
)

// Request errors.
var (
	ErrBadParam     = errors.New("invalid parameter")
	ErrConflict     = errors.New("showUrl and altText cannot be used together")
	ErrSizeTooLarge = errors.New("size exceeds the maximum")
	ErrLogoTooLarge = errors.New("logo file is too large")
)

// QRCodeHandler renders a branded QR code PNG.
//
// GET reads everything from the query string. POST accepts a multipart form
// with the same fields plus an optional "logo" file (PNG, JPEG, GIF, WebP,
// BMP, TIFF or SVG). Fields: url, size, quiet, logoScale, logoPlate, logoPad,
// showUrl, altText, verify.
func (h *Handler) QRCodeHandler(c *gin.Context) {
	start := time.Now()

	normalizedURL, err := link.Normalize(field(c, "url"))
	if err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}

	p, err := h.parseParams(c)
	if err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}
	// Fail before encoding anything or reading the upload.
	if err := p.Validate(); err != nil {
		h.fail(c, statusFor(err), err)
		return
	}

	grid, err := h.encoder.Encode(normalizedURL)
	if err != nil {
		h.fail(c, statusFor(err), err)
		return
	}
	if err := p.CheckGrid(grid); err != nil {
		h.fail(c, statusFor(err), err)
		return
	}

	logo, err := h.readLogo(c)
	if err != nil {
		h.fail(c, statusFor(err), err)
		return
	}

	img, err := render.Compose(render.Input{
		Grid:     grid,
		Logo:     logo,
		Text:     p.BandText(normalizedURL),
		Typeface: h.typeface,
	}, p)
	if err != nil {
		h.fail(c, statusFor(err), err)
		return
	}

	if verify, _ := parseBool(field(c, "verify"), h.cfg.Verify); verify {
		h.verify(c, img, normalizedURL)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		h.fail(c, http.StatusInternalServerError, fmt.Errorf("encode png: %w", err))
		return
	}

	b := img.Bounds()
	h.log.Debug("qr rendered",
		slog.String("url", normalizedURL),
		slog.String("encoder", h.encoder.Name()),
		slog.Int("modules", grid.Size()),
		slog.Int("width", b.Dx()),
		slog.Int("height", b.Dy()),
		slog.Bool("logo", logo != nil),
		logger.Elapsed(start),
	)

	c.Header("Cache-Control", "public, max-age=3600")
	c.Header("X-QR-Debug", fmt.Sprintf("size=%dx%d;modules=%d;encoder=%s", b.Dx(), b.Dy(), grid.Size(), h.encoder.Name()))
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (h *Handler) verify(c *gin.Context, img image.Image, want string) {
	if err := scan.Verify(img, want); err != nil {
		h.log.Warn("qr verification failed", slog.String("url", want), logger.Error(err))
		c.Header("X-QR-Verified", "false")
		return
	}
	c.Header("X-QR-Verified", "true")
}

// parseParams overlays request fields on the configured defaults.
func (h *Handler) parseParams(c *gin.Context) (render.Params, error) {
	p := h.cfg.Params()
	var err error
	if p.Size, err = parseInt(c, "size", p.Size); err != nil {
		return p, err
	}
	if h.cfg.MaxSize > 0 && p.Size > h.cfg.MaxSize {
		return p, fmt.Errorf("%w: %d > %d", ErrSizeTooLarge, p.Size, h.cfg.MaxSize)
	}
	if p.QuietZone, err = parseInt(c, "quiet", p.QuietZone); err != nil {
		return p, err
	}
	if p.LogoScale, err = parseFloat(c, "logoScale", p.LogoScale); err != nil {
		return p, err
	}
	if p.LogoPad, err = parseFloat(c, "logoPad", p.LogoPad); err != nil {
		return p, err
	}
	if p.LogoPlate, err = parseBool(field(c, "logoPlate"), p.LogoPlate); err != nil {
		return p, fmt.Errorf("%w logoPlate: %v", ErrBadParam, err)
	}
	if p.ShowURL, err = parseBool(field(c, "showUrl"), false); err != nil {
		return p, fmt.Errorf("%w showUrl: %v", ErrBadParam, err)
	}
	p.AltText = strings.TrimSpace(field(c, "altText"))
	if p.ShowURL && p.AltText != "" {
		return p, ErrConflict
	}
	return p, nil
}

// readLogo decodes the optional "logo" upload. It returns nil when the
// request carries no logo.
func (h *Handler) readLogo(c *gin.Context) (image.Image, error) {
	if c.Request.Method != http.MethodPost || !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil, nil
	}
	fh, err := c.FormFile("logo")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w logo: %v", ErrBadParam, err)
	}
	if h.cfg.MaxLogoBytes > 0 && fh.Size > h.cfg.MaxLogoBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrLogoTooLarge, fh.Size)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded logo: %w", err)
	}
	defer f.Close()
	img, format, err := imagesrc.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("logo %s: %w", fh.Filename, err)
	}
	h.log.Debug("logo decoded",
		slog.String("filename", fh.Filename),
		slog.String("format", format),
		slog.Int("width", img.Bounds().Dx()),
		slog.Int("height", img.Bounds().Dy()),
	)
	return img, nil
}

// fail writes the error as JSON, or as an HTML toast fragment for HTMX
// requests from the home page.
func (h *Handler) fail(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	if c.GetHeader("HX-Request") == "true" {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(status)
		_ = components.Toast(components.ToastProps{
			Title:       "Could not generate QR code",
			Description: err.Error(),
			Variant:     components.VariantError,
		}).Render(c.Request.Context(), c.Writer)
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// statusFor maps pipeline errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, render.ErrDecodeFailure):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrLogoTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, render.ErrSizeTooSmall),
		errors.Is(err, render.ErrInvalidScale),
		errors.Is(err, render.ErrInvalidPad),
		errors.Is(err, render.ErrInvalidQuietZone),
		errors.Is(err, render.ErrNoLogo),
		errors.Is(err, qrgrid.ErrEncode),
		errors.Is(err, qrgrid.ErrEmptyContent),
		errors.Is(err, ErrBadParam):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// field returns a form value, falling back to the query string.
func field(c *gin.Context, name string) string {
	if v, ok := c.GetPostForm(name); ok {
		return v
	}
	return c.Query(name)
}

func parseInt(c *gin.Context, name string, def int) (int, error) {
	v := strings.TrimSpace(field(c, name))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%w %s: %q is not an integer", ErrBadParam, name, v)
	}
	return n, nil
}

func parseFloat(c *gin.Context, name string, def float64) (float64, error) {
	v := strings.TrimSpace(field(c, name))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("%w %s: %q is not a number", ErrBadParam, name, v)
	}
	return f, nil
}

// parseBool accepts strconv booleans plus the "on"/"off" values sent by
// HTML checkboxes.
func parseBool(v string, def bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "":
		return def, nil
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return strconv.ParseBool(v)
}
