package config

import (
	"github.com/cristianadrielbraun/qrbrand/internal/render"
)

// App is the configuration shared by the web service and the CLI.
// Rendering fields are defaults; flags and request fields override them.
type App struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Port      string `env:"PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	Encoder  string `env:"QR_ENCODER" envDefault:"yeqown"`
	FontPath string `env:"QR_FONT_PATH"`

	Size      int     `env:"QR_SIZE" envDefault:"1024"`
	QuietZone int     `env:"QR_QUIET" envDefault:"4"`
	LogoScale float64 `env:"QR_LOGO_SCALE" envDefault:"0.20"`
	LogoPlate bool    `env:"QR_LOGO_PLATE" envDefault:"true"`
	LogoPad   float64 `env:"QR_LOGO_PAD" envDefault:"0.18"`

	MaxSize      int   `env:"QR_MAX_SIZE" envDefault:"4096"`
	MaxLogoBytes int64 `env:"QR_MAX_LOGO_BYTES" envDefault:"5242880"`
	Verify       bool  `env:"QR_VERIFY" envDefault:"false"`
}

// Params returns the rendering defaults.
func (a App) Params() render.Params {
	return render.Params{
		Size:      a.Size,
		QuietZone: a.QuietZone,
		LogoScale: a.LogoScale,
		LogoPlate: a.LogoPlate,
		LogoPad:   a.LogoPad,
	}
}

// Addr returns the listen address for the web service.
func (a App) Addr() string {
	if a.Port == "" {
		return ":8080"
	}
	return ":" + a.Port
}
