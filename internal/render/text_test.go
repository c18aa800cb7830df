package render_test

import (
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"

	"github.com/cristianadrielbraun/qrbrand/internal/render"
	"github.com/cristianadrielbraun/qrbrand/internal/typeface"
)

func defaultTypeface(t *testing.T) render.Typeface {
	t.Helper()
	tf, err := typeface.Default()
	require.NoError(t, err)
	return tf
}

// countingTypeface records the sizes faces were requested at.
type countingTypeface struct {
	render.Typeface
	sizes []float64
}

func (c *countingTypeface) NewFace(px float64) (font.Face, error) {
	c.sizes = append(c.sizes, px)
	return c.Typeface.NewFace(px)
}

type brokenTypeface struct{}

func (brokenTypeface) NewFace(float64) (font.Face, error) { return nil, errors.New("broken") }

func TestBandHeightAndMargin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 183, render.BandHeight(1015))
	assert.Equal(t, 120, render.BandHeight(300))
	assert.Equal(t, 61, render.TextMargin(1015))
	assert.Equal(t, 24, render.TextMargin(100))
}

func TestFitFontSize(t *testing.T) {
	t.Parallel()

	t.Run("short text keeps start size", func(t *testing.T) {
		t.Parallel()
		tf := &countingTypeface{Typeface: defaultTypeface(t)}
		px, err := render.FitFontSize(tf, "hi", 893, 64)
		require.NoError(t, err)
		assert.Equal(t, 64.0, px)
		assert.Equal(t, []float64{64}, tf.sizes)
	})

	t.Run("shrinks until it fits", func(t *testing.T) {
		t.Parallel()
		tf := defaultTypeface(t)
		text := "https://example.com/a/fairly/long/path?with=query"
		px, err := render.FitFontSize(tf, text, 500, 64)
		require.NoError(t, err)
		assert.Less(t, px, 64.0)
		assert.GreaterOrEqual(t, px, render.MinFontSize)

		face, err := tf.NewFace(px)
		require.NoError(t, err)
		defer face.Close()
		assert.LessOrEqual(t, render.MeasureText(face, text), 500.0)

		// One step larger would not have fit.
		if px/render.ShrinkFactor <= 64 {
			bigger, err := tf.NewFace(px / render.ShrinkFactor)
			require.NoError(t, err)
			defer bigger.Close()
			assert.Greater(t, render.MeasureText(bigger, text), 500.0)
		}
	})

	t.Run("stops at the minimum size", func(t *testing.T) {
		t.Parallel()
		tf := &countingTypeface{Typeface: defaultTypeface(t)}
		px, err := render.FitFontSize(tf, strings.Repeat("W", 500), 100, 64)
		require.NoError(t, err)
		assert.Equal(t, render.MinFontSize, px)
		assert.Equal(t, render.MinFontSize, tf.sizes[len(tf.sizes)-1])
		for _, s := range tf.sizes {
			assert.GreaterOrEqual(t, s, render.MinFontSize)
		}
	})

	t.Run("size sequence shrinks by a fixed factor down to the floor", func(t *testing.T) {
		t.Parallel()
		tf := &countingTypeface{Typeface: defaultTypeface(t)}
		px, err := render.FitFontSize(tf, strings.Repeat("W", 500), 100, 64)
		require.NoError(t, err)
		assert.Equal(t, render.MinFontSize, px)

		// 64 * 0.92^18 = 14.27 is the last size above the floor.
		require.Len(t, tf.sizes, 20)
		assert.Equal(t, 64.0, tf.sizes[0])
		assert.InDelta(t, 58.88, tf.sizes[1], 1e-9)
		assert.InDelta(t, 54.1696, tf.sizes[2], 1e-9)
		assert.InDelta(t, 49.836032, tf.sizes[3], 1e-9)
		assert.InDelta(t, 14.2679, tf.sizes[18], 1e-3)
		assert.Equal(t, render.MinFontSize, tf.sizes[19])
		for i := 1; i < 19; i++ {
			assert.InDelta(t, tf.sizes[i-1]*render.ShrinkFactor, tf.sizes[i], 1e-9, "step %d", i)
		}
	})

	t.Run("start size below the floor is raised", func(t *testing.T) {
		t.Parallel()
		tf := &countingTypeface{Typeface: defaultTypeface(t)}
		px, err := render.FitFontSize(tf, "x", 1000, 10)
		require.NoError(t, err)
		assert.Equal(t, render.MinFontSize, px)
		assert.Equal(t, []float64{render.MinFontSize}, tf.sizes)
	})

	t.Run("face errors propagate", func(t *testing.T) {
		t.Parallel()
		_, err := render.FitFontSize(brokenTypeface{}, "x", 100, 20)
		assert.Error(t, err)
	})
}

func TestAppendTextBand(t *testing.T) {
	t.Parallel()

	t.Run("adds a white band with dark text", func(t *testing.T) {
		t.Parallel()
		base := blackCanvas(1015)
		out, err := render.AppendTextBand(base, "https://example.com", defaultTypeface(t))
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 1015, 1015+183), out.Bounds())

		// Base rows are copied unchanged.
		assert.Equal(t, opaqueBlack, out.NRGBAAt(0, 0))
		assert.Equal(t, opaqueBlack, out.NRGBAAt(1014, 1014))

		// Band edges are white and some text pixels are dark.
		assert.Equal(t, opaqueWhite, out.NRGBAAt(0, 1015))
		assert.Equal(t, opaqueWhite, out.NRGBAAt(1014, out.Bounds().Max.Y-1))
		dark := 0
		minX, maxX := out.Bounds().Dx(), 0
		for y := 1015; y < out.Bounds().Max.Y; y++ {
			for x := 0; x < out.Bounds().Dx(); x++ {
				if out.NRGBAAt(x, y).R < 128 {
					dark++
					minX, maxX = min(minX, x), max(maxX, x)
				}
			}
		}
		assert.Positive(t, dark)
		// Roughly centred horizontally.
		assert.InDelta(t, 1015-maxX, minX, 20)
		assert.GreaterOrEqual(t, minX, render.TextMargin(1015)-2)
	})

	t.Run("base is not modified", func(t *testing.T) {
		t.Parallel()
		base := blackCanvas(300)
		before := append([]uint8(nil), base.Pix...)
		_, err := render.AppendTextBand(base, "caption", defaultTypeface(t))
		require.NoError(t, err)
		assert.Equal(t, before, base.Pix)
	})

	t.Run("overflowing text starts at the margin", func(t *testing.T) {
		t.Parallel()
		out, err := render.AppendTextBand(blackCanvas(200), strings.Repeat("W", 200), defaultTypeface(t))
		require.NoError(t, err)
		assert.Equal(t, 200+120, out.Bounds().Dy())
		for y := 200; y < out.Bounds().Max.Y; y++ {
			for x := 0; x < render.TextMargin(200)-2; x++ {
				require.Equal(t, opaqueWhite, out.NRGBAAt(x, y), "pixel %d,%d", x, y)
			}
		}
	})

	t.Run("needs a typeface", func(t *testing.T) {
		t.Parallel()
		_, err := render.AppendTextBand(blackCanvas(100), "x", nil)
		assert.ErrorIs(t, err, render.ErrNoTypeface)
	})
}
