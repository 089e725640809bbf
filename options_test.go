package wkhtmltopdf

import (
	"reflect"
	"testing"
)

func TestOptionsArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options *Options
		want    []string
	}{
		{
			name:    "nil options encode to nothing",
			options: nil,
			want:    nil,
		},
		{
			name:    "all defaults encode to nothing",
			options: NewOptions(),
			want:    []string{},
		},
		{
			name: "single bottom margin",
			options: func() *Options {
				o := NewOptions()
				o.BottomMargin = 5
				return o
			}(),
			want: []string{"-B", "5"},
		},
		{
			name: "landscape orientation",
			options: func() *Options {
				o := NewOptions()
				o.Orientation = OrientationLandscape
				return o
			}(),
			want: []string{"--orientation", "Landscape"},
		},
		{
			name: "negative margin forwarded verbatim",
			options: func() *Options {
				o := NewOptions()
				o.TopMargin = -3
				return o
			}(),
			want: []string{"-T", "-3"},
		},
		{
			name: "credentials pass through without quoting",
			options: func() *Options {
				o := NewOptions()
				o.Username = `bob "the builder"`
				o.Password = "p@ss word"
				return o
			}(),
			want: []string{"--username", `bob "the builder"`, "--password", "p@ss word"},
		},
		{
			name: "boolean switches emit positive form",
			options: func() *Options {
				o := NewOptions()
				o.UsePrintMediaType = true
				o.DisableSmartShrinking = true
				return o
			}(),
			want: []string{"--print-media-type", "--disable-smart-shrinking"},
		},
		{
			name: "javascript delay",
			options: func() *Options {
				o := NewOptions()
				o.JavascriptDelay = 1500
				return o
			}(),
			want: []string{"--javascript-delay", "1500"},
		},
		{
			name: "margin set back to default is suppressed",
			options: func() *Options {
				o := NewOptions()
				o.BottomMargin = DefaultMargin
				return o
			}(),
			want: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.options.Args()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Args() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestOptionsArgs_FixedOrder verifies that switches appear in the declared
// field order no matter how many fields differ from default.
func TestOptionsArgs_FixedOrder(t *testing.T) {
	t.Parallel()

	o := NewOptions()
	// Set fields in reverse of the expected emission order.
	o.JavascriptDelay = 0
	o.DisableSmartShrinking = true
	o.UsePrintMediaType = true
	o.Orientation = OrientationLandscape
	o.TopMargin = 4
	o.RightMargin = 3
	o.LeftMargin = 2
	o.BottomMargin = 1
	o.Password = "secret"
	o.Username = "bob"

	want := []string{
		"--username", "bob",
		"--password", "secret",
		"-B", "1",
		"-L", "2",
		"-R", "3",
		"-T", "4",
		"--orientation", "Landscape",
		"--print-media-type",
		"--disable-smart-shrinking",
		"--javascript-delay", "0",
	}

	if got := o.Args(); !reflect.DeepEqual(got, want) {
		t.Errorf("Args() = %q, want %q", got, want)
	}
}

// TestOptionsArgs_Deterministic verifies that repeated encodes of the same
// value, and encodes of an equal value, yield identical sequences.
func TestOptionsArgs_Deterministic(t *testing.T) {
	t.Parallel()

	a := NewOptions()
	a.BottomMargin = 7
	a.Orientation = OrientationLandscape

	b := NewOptions()
	b.Orientation = OrientationLandscape
	b.BottomMargin = 7

	first := a.Args()
	second := a.Args()
	other := b.Args()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated encode differs: %q vs %q", first, second)
	}
	if !reflect.DeepEqual(first, other) {
		t.Errorf("equal options encode differently: %q vs %q", first, other)
	}
}
