package main

import (
	"errors"
	"os"

	wkhtmltopdf "github.com/kasparsaleksejevs/go-wkhtmltopdf"
	"github.com/kasparsaleksejevs/go-wkhtmltopdf/internal/config"
)

// Exit codes for the wkpdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or arguments
	ExitIO      = 3 // File not found, permission denied
	ExitRender  = 4 // Locator or subprocess errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Render errors (exit 4)
	if errors.Is(err, wkhtmltopdf.ErrExecutableNotFound) ||
		errors.Is(err, wkhtmltopdf.ErrRenderFailed) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, ErrWritePDF) {
		return ExitIO
	}

	// Usage errors (exit 2)
	if errors.Is(err, ErrMissingURL) ||
		errors.Is(err, wkhtmltopdf.ErrEmptyURL) ||
		errors.Is(err, wkhtmltopdf.ErrInvalidOutputPath) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigTooLarge) ||
		errors.Is(err, config.ErrInvalidOrientation) {
		return ExitUsage
	}

	return ExitGeneral
}
