package typeface_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/cristianadrielbraun/qrbrand/internal/render"
	"github.com/cristianadrielbraun/qrbrand/internal/typeface"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	a, err := typeface.Default()
	require.NoError(t, err)
	b, err := typeface.Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, "goregular", a.Name())

	face, err := a.NewFace(32)
	require.NoError(t, err)
	defer face.Close()
	m := face.Metrics()
	assert.Positive(t, m.Ascent.Ceil())
	assert.Positive(t, m.Descent.Ceil())
	assert.InDelta(t, 32, m.Height.Ceil(), 10)
}

func TestNewFaceSizeScales(t *testing.T) {
	t.Parallel()

	f, err := typeface.Default()
	require.NoError(t, err)

	small, err := f.NewFace(14)
	require.NoError(t, err)
	defer small.Close()
	large, err := f.NewFace(28)
	require.NoError(t, err)
	defer large.Close()

	ws := render.MeasureText(small, "example")
	wl := render.MeasureText(large, "example")
	assert.InDelta(t, 2*ws, wl, 2)

	_, err = f.NewFace(0)
	assert.ErrorIs(t, err, typeface.ErrInvalidSize)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses the bundled font", func(t *testing.T) {
		t.Parallel()
		f, err := typeface.Load("")
		require.NoError(t, err)
		assert.Equal(t, "goregular", f.Name())
	})

	t.Run("font file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "font.ttf")
		require.NoError(t, os.WriteFile(path, goregular.TTF, 0o600))
		f, err := typeface.Load(path)
		require.NoError(t, err)
		assert.Equal(t, path, f.Name())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := typeface.Load(filepath.Join(t.TempDir(), "nope.ttf"))
		assert.Error(t, err)
	})

	t.Run("not a font", func(t *testing.T) {
		t.Parallel()
		_, err := typeface.Parse("junk", []byte("definitely not a font"))
		assert.ErrorIs(t, err, render.ErrDecodeFailure)
	})
}
