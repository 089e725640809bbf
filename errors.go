package wkhtmltopdf

import "errors"

// Sentinel errors for render operations.
var (
	ErrEmptyURL           = errors.New("url cannot be empty")
	ErrInvalidOutputPath  = errors.New("invalid output path")
	ErrExecutableNotFound = errors.New("unable to locate the wkhtmltopdf executable; specify the path explicitly")
	ErrRenderFailed       = errors.New("wkhtmltopdf produced no output")
)
