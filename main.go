package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrbrand/internal/config"
	"github.com/cristianadrielbraun/qrbrand/internal/handlers"
	"github.com/cristianadrielbraun/qrbrand/internal/logger"
	"github.com/cristianadrielbraun/qrbrand/internal/qrgrid"
	"github.com/cristianadrielbraun/qrbrand/internal/typeface"
)

func main() {
	var cfg config.App
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithService("qrbrand", cfg.Env),
	)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	tf, err := typeface.Load(cfg.FontPath)
	if err != nil {
		log.Error("load font", slog.String("path", cfg.FontPath), logger.Error(err))
		os.Exit(1)
	}
	enc, err := qrgrid.New(cfg.Encoder)
	if err != nil {
		log.Error("select encoder", logger.Error(err))
		os.Exit(1)
	}

	r := handlers.New(cfg, log, enc, tf).Router()

	addr := cfg.Addr()
	log.Info("qrbrand listening",
		slog.String("addr", addr),
		slog.String("encoder", enc.Name()),
		slog.String("font", tf.Name()),
	)
	if err := r.Run(addr); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
