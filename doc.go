// Package wkhtmltopdf converts web pages to PDF by driving the wkhtmltopdf
// executable as a subprocess.
//
// # Quick Start
//
// Create a converter and render a URL:
//
//	conv := wkhtmltopdf.New()
//
//	pdf, err := conv.RenderToBytes("https://example.com", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.pdf", pdf, 0644)
//
// Or let the tool write the file itself:
//
//	err := conv.RenderToFile("https://example.com", "output.pdf", nil)
//
// # Options
//
// Render settings are passed per call. Only fields that differ from their
// documented defaults are encoded as command-line switches, so a nil or
// all-default Options adds no switches at all:
//
//	opts := wkhtmltopdf.NewOptions()
//	opts.Orientation = wkhtmltopdf.OrientationLandscape
//	opts.BottomMargin = 5
//	pdf, err := conv.RenderToBytes("https://example.com", opts)
//
// # Locating the Executable
//
// The converter searches a fixed list of locations on first use (the running
// program's own directory, a wkhtmltopdf subdirectory next to it, the
// machine-wide Program Files roots, and finally PATH) and memoizes the
// result. An explicit path always wins over discovery:
//
//	conv := wkhtmltopdf.New(
//	    wkhtmltopdf.WithExecutablePath("/opt/wkhtmltopdf/bin/wkhtmltopdf"),
//	)
//
// # Limitations
//
// Each render call blocks until the child process exits; no timeout is
// enforced by this layer. Callers needing bounded latency must wrap the call
// with their own timeout and kill mechanism. A run is judged by its captured
// output, not its exit status: when rendering to bytes, an empty stdout is
// reported as ErrRenderFailed carrying whatever the tool wrote to stderr.
package wkhtmltopdf
