package wkhtmltopdf

import "strconv"

// Orientation selects the page orientation passed to wkhtmltopdf.
type Orientation string

// Supported page orientations. The symbolic names are forwarded to the tool
// exactly as declared.
const (
	OrientationPortrait  Orientation = "Portrait"
	OrientationLandscape Orientation = "Landscape"
)

// Documented defaults. They mirror what the wkhtmltopdf binary applies when
// the corresponding switch is absent, so an all-default Options encodes to
// no switches at all.
const (
	DefaultMargin          = 10  // mm, all four sides
	DefaultJavascriptDelay = 200 // milliseconds
)

// Options configures a single render call.
//
// An Options value is pure data: it never touches the filesystem or process
// state, and two values with identical fields encode to identical switch
// sequences. No validation happens at this layer; out-of-range values (for
// example negative margins) are forwarded verbatim and left for the
// executable to reject.
type Options struct {
	Username              string      // HTTP auth user name (empty = none)
	Password              string      // HTTP auth password (empty = none)
	BottomMargin          int         // mm
	LeftMargin            int         // mm
	RightMargin           int         // mm
	TopMargin             int         // mm
	Orientation           Orientation // OrientationPortrait or OrientationLandscape
	UsePrintMediaType     bool        // apply print media type instead of screen
	DisableSmartShrinking bool        // disable intelligent pixel/dpi shrinking
	JavascriptDelay       int         // milliseconds to wait for javascript
}

// NewOptions returns an Options with every field at its documented default.
func NewOptions() *Options {
	return &Options{
		BottomMargin:    DefaultMargin,
		LeftMargin:      DefaultMargin,
		RightMargin:     DefaultMargin,
		TopMargin:       DefaultMargin,
		Orientation:     OrientationPortrait,
		JavascriptDelay: DefaultJavascriptDelay,
	}
}

// Args encodes o into wkhtmltopdf command-line switches, comparing each
// field against a fresh default instance and emitting a switch only when the
// field differs. Flag and value are separate argv tokens so values reach the
// tool verbatim, with no shell quoting or escaping involved.
//
// The order is fixed: username, password, the four margins (bottom, left,
// right, top), orientation, print media type, smart shrinking, javascript
// delay. Repeated calls on equal Options yield identical sequences. A nil
// Options encodes to the empty sequence.
func (o *Options) Args() []string {
	if o == nil {
		return nil
	}

	def := NewOptions()
	args := make([]string, 0, 16)

	if o.Username != def.Username {
		args = append(args, "--username", o.Username)
	}
	if o.Password != def.Password {
		args = append(args, "--password", o.Password)
	}
	if o.BottomMargin != def.BottomMargin {
		args = append(args, "-B", strconv.Itoa(o.BottomMargin))
	}
	if o.LeftMargin != def.LeftMargin {
		args = append(args, "-L", strconv.Itoa(o.LeftMargin))
	}
	if o.RightMargin != def.RightMargin {
		args = append(args, "-R", strconv.Itoa(o.RightMargin))
	}
	if o.TopMargin != def.TopMargin {
		args = append(args, "-T", strconv.Itoa(o.TopMargin))
	}
	if o.Orientation != def.Orientation {
		args = append(args, "--orientation", string(o.Orientation))
	}
	if o.UsePrintMediaType != def.UsePrintMediaType {
		if o.UsePrintMediaType {
			args = append(args, "--print-media-type")
		} else {
			args = append(args, "--no-print-media-type")
		}
	}
	if o.DisableSmartShrinking != def.DisableSmartShrinking {
		if o.DisableSmartShrinking {
			args = append(args, "--disable-smart-shrinking")
		} else {
			args = append(args, "--enable-smart-shrinking")
		}
	}
	if o.JavascriptDelay != def.JavascriptDelay {
		args = append(args, "--javascript-delay", strconv.Itoa(o.JavascriptDelay))
	}

	return args
}
