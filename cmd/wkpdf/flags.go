package main

import (
	flag "github.com/spf13/pflag"

	wkhtmltopdf "github.com/kasparsaleksejevs/go-wkhtmltopdf"
)

// cliFlags holds every wkpdf flag.
type cliFlags struct {
	// Program behavior.
	output     string
	configName string
	executable string
	where      bool
	verbose    bool
	version    bool

	// Render settings, mirroring wkhtmltopdf.Options.
	username        string
	password        string
	bottomMargin    int
	leftMargin      int
	rightMargin     int
	topMargin       int
	orientation     string
	printMediaType  bool
	disableShrink   bool
	javascriptDelay int
}

// newFlagSet registers all wkpdf flags onto a fresh FlagSet. Render-setting
// defaults match the library's documented defaults, so only flags the user
// actually changed override the config file (detected via FlagSet.Changed).
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("wkpdf", flag.ContinueOnError)

	fs.StringVarP(&f.output, "output", "o", "", "output file (empty or - writes the PDF to stdout)")
	fs.StringVarP(&f.configName, "config", "c", "", "settings file name or path")
	fs.StringVar(&f.executable, "executable", "", "explicit wkhtmltopdf path (skips discovery)")
	fs.BoolVar(&f.where, "where", false, "print the resolved wkhtmltopdf path and exit")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.StringVar(&f.username, "username", "", "HTTP authentication user name")
	fs.StringVar(&f.password, "password", "", "HTTP authentication password")
	fs.IntVarP(&f.bottomMargin, "margin-bottom", "B", wkhtmltopdf.DefaultMargin, "bottom margin in mm")
	fs.IntVarP(&f.leftMargin, "margin-left", "L", wkhtmltopdf.DefaultMargin, "left margin in mm")
	fs.IntVarP(&f.rightMargin, "margin-right", "R", wkhtmltopdf.DefaultMargin, "right margin in mm")
	fs.IntVarP(&f.topMargin, "margin-top", "T", wkhtmltopdf.DefaultMargin, "top margin in mm")
	fs.StringVar(&f.orientation, "orientation", string(wkhtmltopdf.OrientationPortrait), "page orientation (Portrait or Landscape)")
	fs.BoolVar(&f.printMediaType, "print-media-type", false, "use print media type instead of screen")
	fs.BoolVar(&f.disableShrink, "disable-smart-shrinking", false, "disable intelligent pixel/dpi shrinking")
	fs.IntVar(&f.javascriptDelay, "javascript-delay", wkhtmltopdf.DefaultJavascriptDelay, "milliseconds to wait for javascript")

	return fs
}
