// Package qrgrid turns text into QR module grids using third-party encoders.
//
// Every backend encodes at its highest error correction level (H, about 30%
// of codewords recoverable), which leaves room for a centre logo.
package qrgrid

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cristianadrielbraun/qrbrand/internal/render"
)

var (
	ErrEmptyContent   = errors.New("content cannot be empty")
	ErrUnknownEncoder = errors.New("unknown QR encoder")
	ErrEncode         = errors.New("failed to build QR code")
)

// Encoder produces a module grid without a quiet zone.
type Encoder interface {
	Encode(content string) (render.Grid, error)
	Name() string
}

// Backend names.
const (
	Yeqown    = "yeqown"
	Skip2     = "skip2"
	Boombuler = "boombuler"
)

// DefaultEncoder is used when no backend is configured.
const DefaultEncoder = Yeqown

var encoders = map[string]Encoder{
	Yeqown:    yeqownEncoder{},
	Skip2:     skip2Encoder{},
	Boombuler: boombulerEncoder{},
}

// New returns the encoder registered under name. An empty name selects
// DefaultEncoder.
func New(name string) (Encoder, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultEncoder
	}
	e, ok := encoders[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownEncoder, name, strings.Join(Names(), ", "))
	}
	return e, nil
}

// Names lists the registered backends in sorted order.
func Names() []string {
	names := make([]string, 0, len(encoders))
	for n := range encoders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Encode encodes content with the default encoder.
func Encode(content string) (render.Grid, error) {
	return encoders[DefaultEncoder].Encode(content)
}

func checkContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	return nil
}

func encodeErr(backend string, err error) error {
	return errors.Join(ErrEncode, fmt.Errorf("%s: %w", backend, err))
}
