package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrbrand/web/components"
	"github.com/cristianadrielbraun/qrbrand/web/pages"
)

// Home renders the generator page pre-filled with the configured defaults.
func (h *Handler) Home(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	_ = pages.HomePage(components.FormDefaults{
		URL:       c.Query("url"),
		Size:      h.cfg.Size,
		MaxSize:   h.cfg.MaxSize,
		QuietZone: h.cfg.QuietZone,
		LogoScale: h.cfg.LogoScale,
		LogoPlate: h.cfg.LogoPlate,
		LogoPad:   h.cfg.LogoPad,
		Verify:    h.cfg.Verify,
	}).Render(c.Request.Context(), c.Writer)
}
