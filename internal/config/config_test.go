package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrbrand/internal/config"
	"github.com/cristianadrielbraun/qrbrand/internal/render"
)

// Tests in this file change the process environment and must not run in
// parallel.

func TestLoadDefaults(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	var cfg config.App
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "yeqown", cfg.Encoder)
	assert.Equal(t, render.DefaultParams(), cfg.Params())
	assert.Equal(t, 4096, cfg.MaxSize)
	assert.Equal(t, int64(5<<20), cfg.MaxLogoBytes)
	assert.False(t, cfg.Verify)
}

func TestLoadFromEnv(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)
	t.Setenv("PORT", "9000")
	t.Setenv("QR_SIZE", "512")
	t.Setenv("QR_LOGO_SCALE", "0.3")
	t.Setenv("QR_LOGO_PLATE", "false")
	t.Setenv("QR_ENCODER", "skip2")

	var cfg config.App
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "skip2", cfg.Encoder)
	p := cfg.Params()
	assert.Equal(t, 512, p.Size)
	assert.Equal(t, 0.3, p.LogoScale)
	assert.False(t, p.LogoPlate)
}

func TestLoadIsCached(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	var first config.App
	require.NoError(t, config.Load(&first))

	t.Setenv("QR_SIZE", "256")
	var cached config.App
	require.NoError(t, config.Load(&cached))
	assert.Equal(t, first.Size, cached.Size)

	var fresh config.App
	require.NoError(t, config.ForceReload(&fresh))
	assert.Equal(t, 256, fresh.Size)
}

func TestLoadErrors(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	assert.ErrorIs(t, config.Load[config.App](nil), config.ErrNilPointer)

	t.Setenv("QR_SIZE", "big")
	var cfg config.App
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)
	t.Setenv("QR_QUIET", "")
	require.NoError(t, os.Unsetenv("QR_QUIET"))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("QR_QUIET=2\n"), 0o600))
	require.NoError(t, config.LoadEnv(path))

	var cfg config.App
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 2, cfg.QuietZone)
}
