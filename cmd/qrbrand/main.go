// Command qrbrand writes a branded QR code PNG: a high error correction
// code with an optional centre logo and an optional caption below it.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	"github.com/cristianadrielbraun/qrbrand/internal/config"
	"github.com/cristianadrielbraun/qrbrand/internal/imagesrc"
	"github.com/cristianadrielbraun/qrbrand/internal/link"
	"github.com/cristianadrielbraun/qrbrand/internal/logger"
	"github.com/cristianadrielbraun/qrbrand/internal/qrgrid"
	"github.com/cristianadrielbraun/qrbrand/internal/render"
	"github.com/cristianadrielbraun/qrbrand/internal/scan"
	"github.com/cristianadrielbraun/qrbrand/internal/typeface"
)

var (
	errUsage    = errors.New("usage")
	errHelp     = errors.New("help")
	errTerminal = errors.New("refusing to write PNG data to a terminal")
)

type options struct {
	url       string
	image     string
	out       string
	size      int
	quiet     int
	logoScale float64
	logoPlate bool
	logoPad   float64
	showURL   bool
	altText   string
	font      string
	encoder   string
	verify    bool
	verbose   bool
	logLevel  string
	help      bool
}

func main() {
	err := run(os.Args, os.Stdout, os.Stderr)
	switch {
	case err == nil, errors.Is(err, errHelp):
	case errors.Is(err, errUsage):
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// stdoutIsTerminal is replaced in tests.
var stdoutIsTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// defaults reads the QR_* environment so flags only override what is given.
func defaults() (options, error) {
	var cfg config.App
	if err := config.Load(&cfg); err != nil {
		return options{}, err
	}
	return options{
		out:       "qrcode.png",
		size:      cfg.Size,
		quiet:     cfg.QuietZone,
		logoScale: cfg.LogoScale,
		logoPlate: cfg.LogoPlate,
		logoPad:   cfg.LogoPad,
		font:      cfg.FontPath,
		encoder:   cfg.Encoder,
		verify:    cfg.Verify,
		logLevel:  cfg.LogLevel,
	}, nil
}

func parse(args []string, stderr io.Writer) (options, error) {
	o, err := defaults()
	if err != nil {
		return o, err
	}
	set := getopt.New()
	set.SetParameters("")
	set.FlagLong(&o.url, "url", 'u', "URL to encode, including the scheme", "url")
	set.FlagLong(&o.image, "image", 'i', "logo image (PNG, JPEG, GIF, WebP, BMP, TIFF or SVG)", "file")
	set.FlagLong(&o.out, "out", 'o', `output PNG file, or "-" for standard output`, "file")
	set.FlagLong(&o.size, "size", 0, "QR image side in pixels", "px")
	set.FlagLong(&o.quiet, "quiet", 0, "quiet zone in modules", "modules")
	set.FlagLong(&o.logoScale, "logo-scale", 0, fmt.Sprintf("logo box as a fraction of the QR width (%g..%g)", render.MinLogoScale, render.MaxLogoScale), "fraction")
	set.FlagLong(&o.logoPlate, "logo-plate", 0, "draw a white plate behind the logo; --logo-plate=false disables it")
	set.FlagLong(&o.logoPad, "logo-pad", 0, "plate padding as a fraction of the logo's long side", "fraction")
	set.FlagLong(&o.showURL, "show-url", 's', "print the URL below the code")
	set.FlagLong(&o.altText, "alt-text", 'a', "print this text below the code instead of the URL", "text")
	set.FlagLong(&o.font, "font", 0, "TrueType or OpenType font for the caption", "file")
	set.FlagLong(&o.encoder, "encoder", 0, fmt.Sprintf("QR encoder: %v", qrgrid.Names()), "name")
	set.FlagLong(&o.verify, "verify", 0, "decode the result and check it matches the URL")
	set.FlagLong(&o.verbose, "verbose", 'v', "log progress to standard error")
	set.FlagLong(&o.help, "help", 'h', "show this help")

	if err := set.Getopt(args, nil); err != nil {
		fmt.Fprintln(stderr, err)
		set.PrintUsage(stderr)
		return o, errUsage
	}
	if o.help {
		set.PrintUsage(stderr)
		return o, errHelp
	}
	if len(set.Args()) > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", set.Args())
		set.PrintUsage(stderr)
		return o, errUsage
	}
	if o.url == "" {
		fmt.Fprintln(stderr, "--url is required")
		set.PrintUsage(stderr)
		return o, errUsage
	}
	if o.showURL && o.altText != "" {
		fmt.Fprintln(stderr, "--show-url and --alt-text cannot be used together")
		return o, errUsage
	}
	return o, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	start := time.Now()
	o, err := parse(args, stderr)
	if err != nil {
		return err
	}

	// Quiet by default; LOG_LEVEL can lower it and --verbose wins.
	opts := []logger.Option{logger.WithOutput(stderr), logger.WithLevel(slog.LevelWarn)}
	if o.logLevel != "" && o.logLevel != "info" {
		opts = append(opts, logger.WithLevelName(o.logLevel))
	}
	if o.verbose {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	}
	log := logger.New(opts...)

	url, err := link.Validate(o.url)
	if err != nil {
		return err
	}
	p := render.Params{
		Size:      o.size,
		QuietZone: o.quiet,
		LogoScale: o.logoScale,
		LogoPlate: o.logoPlate,
		LogoPad:   o.logoPad,
		ShowURL:   o.showURL,
		AltText:   o.altText,
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if o.out == "-" && stdoutIsTerminal(stdout) {
		return errTerminal
	}

	enc, err := qrgrid.New(o.encoder)
	if err != nil {
		return err
	}
	in := render.Input{Text: p.BandText(url)}
	if in.Grid, err = enc.Encode(url); err != nil {
		return err
	}
	if err := p.CheckGrid(in.Grid); err != nil {
		return err
	}
	log.Debug("encoded", slog.String("encoder", enc.Name()), slog.Int("modules", in.Grid.Size()))

	if in.Text != "" {
		tf, err := typeface.Load(o.font)
		if err != nil {
			return err
		}
		in.Typeface = tf
		log.Debug("font loaded", slog.String("font", tf.Name()))
	}
	if o.image != "" {
		logo, format, err := imagesrc.DecodeFile(o.image)
		if err != nil {
			return err
		}
		in.Logo = logo
		log.Debug("logo decoded", slog.String("path", o.image), slog.String("format", format))
	}

	img, err := render.Compose(in, p)
	if err != nil {
		return err
	}
	if o.verify {
		if err := scan.Verify(img, url); err != nil {
			return err
		}
		log.Debug("verified", slog.String("url", url))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if o.out == "-" {
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
	} else if err := os.WriteFile(o.out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write png: %w", err)
	}

	b := img.Bounds()
	log.Debug("done", slog.Int("width", b.Dx()), slog.Int("height", b.Dy()), logger.Elapsed(start))
	if o.out != "-" {
		fmt.Fprintln(stderr, "Wrote", o.out)
	}
	return nil
}
