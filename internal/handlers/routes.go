package handlers

import "github.com/gin-gonic/gin"

// Router builds the gin engine with logging, recovery and all routes.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(h.log))
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = h.cfg.MaxLogoBytes + 1<<20

	api := r.Group("/api")
	{
		api.GET("/qr", h.QRCodeHandler)
		api.POST("/qr", h.QRCodeHandler)
		api.POST("/htmx/toast", h.GenericToast)
	}

	r.GET("/", h.Home)
	return r
}
