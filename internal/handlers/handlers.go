package handlers

import (
	"log/slog"

	"github.com/cristianadrielbraun/qrbrand/internal/config"
	"github.com/cristianadrielbraun/qrbrand/internal/qrgrid"
	"github.com/cristianadrielbraun/qrbrand/internal/render"
)

// Handler holds the dependencies shared by the HTTP handlers. The typeface
// is parsed once at startup and shared read-only by all requests.
type Handler struct {
	cfg      config.App
	log      *slog.Logger
	encoder  qrgrid.Encoder
	typeface render.Typeface
}

// New returns a new Handler instance.
func New(cfg config.App, log *slog.Logger, enc qrgrid.Encoder, tf render.Typeface) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{cfg: cfg, log: log, encoder: enc, typeface: tf}
}
