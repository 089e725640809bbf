package main

import (
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	wkhtmltopdf "github.com/kasparsaleksejevs/go-wkhtmltopdf"
	"github.com/kasparsaleksejevs/go-wkhtmltopdf/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrMissingURL = errors.New("usage: wkpdf [flags] <url> [output.pdf]")
	ErrWritePDF   = errors.New("failed to write PDF")
)

// pdfRenderer is the slice of wkhtmltopdf.Converter the CLI depends on.
type pdfRenderer interface {
	RenderToBytes(url string, opts *wkhtmltopdf.Options) ([]byte, error)
	RenderToFile(url, outputPath string, opts *wkhtmltopdf.Options) error
	ExecutablePath() (string, error)
}

// run parses arguments, merges config-file and flag settings, and performs
// the render. newRenderer receives the explicit executable path ("" means
// discover) so tests can substitute a fake.
func run(args []string, env *Environment, newRenderer func(executable string) pdfRenderer) error {
	f := &cliFlags{}
	fs := newFlagSet(f)
	fs.SetOutput(env.Stderr)

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrMissingURL, err)
	}

	if f.version {
		fmt.Fprintln(env.Stdout, "wkpdf", Version)
		return nil
	}

	cfg := config.DefaultConfig()
	if f.configName != "" {
		loaded, err := config.LoadConfig(f.configName)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	executable := cfg.Executable
	if f.executable != "" {
		executable = f.executable
	}
	renderer := newRenderer(executable)

	if f.where {
		path, err := renderer.ExecutablePath()
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Stdout, path)
		return nil
	}

	positional := fs.Args()
	if len(positional) < 1 {
		return ErrMissingURL
	}
	url := positional[0]

	output := f.output
	if output == "" && len(positional) > 1 {
		output = positional[1]
	}

	opts := buildOptions(cfg, fs, f)

	if f.verbose {
		fmt.Fprintf(env.Stderr, "Rendering %s\n", url)
	}

	if output == "" || output == "-" {
		pdf, err := renderer.RenderToBytes(url, opts)
		if err != nil {
			return err
		}
		if _, err := env.Stdout.Write(pdf); err != nil {
			return fmt.Errorf("%w: %v", ErrWritePDF, err)
		}
		return nil
	}

	if err := renderer.RenderToFile(url, output, opts); err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", output)
	return nil
}

// buildOptions merges settings by precedence: library defaults, then the
// config file, then flags the user explicitly changed.
func buildOptions(cfg *config.Config, fs *flag.FlagSet, f *cliFlags) *wkhtmltopdf.Options {
	opts := wkhtmltopdf.NewOptions()

	// Config file layer.
	opts.Username = cfg.Auth.Username
	opts.Password = cfg.Auth.Password
	if cfg.Page.BottomMargin != nil {
		opts.BottomMargin = *cfg.Page.BottomMargin
	}
	if cfg.Page.LeftMargin != nil {
		opts.LeftMargin = *cfg.Page.LeftMargin
	}
	if cfg.Page.RightMargin != nil {
		opts.RightMargin = *cfg.Page.RightMargin
	}
	if cfg.Page.TopMargin != nil {
		opts.TopMargin = *cfg.Page.TopMargin
	}
	if cfg.Page.Orientation != "" {
		opts.Orientation = normalizeOrientation(cfg.Page.Orientation)
	}
	if cfg.Page.PrintMediaType != nil {
		opts.UsePrintMediaType = *cfg.Page.PrintMediaType
	}
	if cfg.Page.DisableSmartShrinking != nil {
		opts.DisableSmartShrinking = *cfg.Page.DisableSmartShrinking
	}
	if cfg.Page.JavascriptDelay != nil {
		opts.JavascriptDelay = *cfg.Page.JavascriptDelay
	}

	// Flag layer: only explicitly changed flags override.
	if fs.Changed("username") {
		opts.Username = f.username
	}
	if fs.Changed("password") {
		opts.Password = f.password
	}
	if fs.Changed("margin-bottom") {
		opts.BottomMargin = f.bottomMargin
	}
	if fs.Changed("margin-left") {
		opts.LeftMargin = f.leftMargin
	}
	if fs.Changed("margin-right") {
		opts.RightMargin = f.rightMargin
	}
	if fs.Changed("margin-top") {
		opts.TopMargin = f.topMargin
	}
	if fs.Changed("orientation") {
		opts.Orientation = normalizeOrientation(f.orientation)
	}
	if fs.Changed("print-media-type") {
		opts.UsePrintMediaType = f.printMediaType
	}
	if fs.Changed("disable-smart-shrinking") {
		opts.DisableSmartShrinking = f.disableShrink
	}
	if fs.Changed("javascript-delay") {
		opts.JavascriptDelay = f.javascriptDelay
	}

	return opts
}

// normalizeOrientation maps case-insensitive user input onto the symbolic
// names the tool expects. Unknown values fall back to portrait; the config
// layer has already validated its own input.
func normalizeOrientation(s string) wkhtmltopdf.Orientation {
	if strings.EqualFold(s, string(wkhtmltopdf.OrientationLandscape)) {
		return wkhtmltopdf.OrientationLandscape
	}
	return wkhtmltopdf.OrientationPortrait
}
