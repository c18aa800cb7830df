// Package typeface provides the font resource used for the text band.
//
// The bundled font is Go Regular (golang.org/x/image/font/gofont). A TTF or
// OTF file can be used instead. Parsed fonts are immutable and safe to share;
// faces are not, so every caller gets its own.
package typeface

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/cristianadrielbraun/qrbrand/internal/render"
)

// DPI of 72 makes the face size equal to pixels.
const dpi = 72

var ErrInvalidSize = errors.New("font size must be positive")

// Font is a parsed OpenType font.
type Font struct {
	name string
	f    *opentype.Font
}

var (
	bundledOnce sync.Once
	bundled     *Font
	bundledErr  error
)

// Default returns the bundled font, parsing it on first use.
func Default() (*Font, error) {
	bundledOnce.Do(func() {
		bundled, bundledErr = Parse("goregular", goregular.TTF)
	})
	return bundled, bundledErr
}

// Parse parses TTF/OTF data. name is only used in error messages.
func Parse(name string, data []byte) (*Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Join(render.ErrDecodeFailure, fmt.Errorf("parse font %s: %w", name, err))
	}
	return &Font{name: name, f: f}, nil
}

// Load reads and parses a font file. An empty path returns the bundled font.
func Load(path string) (*Font, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return Parse(path, data)
}

// Name returns the font's origin: "goregular" or the file path.
func (f *Font) Name() string { return f.name }

// NewFace returns an unhinted face at px pixels. The caller closes it.
func (f *Font) NewFace(px float64) (font.Face, error) {
	if px <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSize, px)
	}
	face, err := opentype.NewFace(f.f, &opentype.FaceOptions{
		Size:    px,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("new face %s: %w", f.name, err)
	}
	return face, nil
}
