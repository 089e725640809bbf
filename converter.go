package wkhtmltopdf

import (
	"errors"
	"fmt"
	"os/exec"
	"sync"
)

// Fixed argument-vector pieces. The quiet flag keeps progress chatter off
// the streams; the stdout target tells the tool to write the document to
// standard output.
const (
	quietFlag    = "-q"
	stdoutTarget = "-"
)

// Converter renders URLs to PDF by invoking the wkhtmltopdf executable.
//
// A Converter is safe for concurrent use: each call owns its own subprocess
// and buffers, and the memoized executable path is the only shared state.
// Construct with New; the zero value has no runner.
type Converter struct {
	runner commandRunner

	mu       sync.Mutex
	override string // explicit path, authoritative when set
	resolved string // memoized discovery result
}

// Option configures a Converter.
type Option func(*Converter)

// WithExecutablePath sets an explicit wkhtmltopdf path, bypassing discovery
// entirely. The path is used verbatim for process launches and is never
// checked for existence; a wrong path surfaces as a failed launch.
func WithExecutablePath(path string) Option {
	return func(c *Converter) { c.override = path }
}

// New creates a Converter with default configuration.
func New(opts ...Option) *Converter {
	c := &Converter{runner: execRunner{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetExecutablePath replaces the executable override at runtime. An empty
// path clears both the override and the memoized discovery result, so the
// next render searches again.
func (c *Converter) SetExecutablePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.override = path
	c.resolved = ""
}

// ExecutablePath resolves the wkhtmltopdf path that render calls will use:
// the override when set, otherwise the discovery result, searching on first
// use and memoizing for the lifetime of the Converter.
func (c *Converter) ExecutablePath() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.override != "" {
		return c.override, nil
	}
	if c.resolved != "" {
		return c.resolved, nil
	}

	path, err := lookupExecutable()
	if err != nil {
		return "", err
	}
	c.resolved = path
	return path, nil
}

// RenderToBytes renders url and returns the produced PDF.
// A nil opts means all defaults.
//
// The run is judged by its output: an empty stdout is reported as
// ErrRenderFailed carrying the captured stderr text (possibly empty), while
// a non-empty stdout is returned unmodified regardless of stderr content or
// the process's exit status.
func (c *Converter) RenderToBytes(url string, opts *Options) ([]byte, error) {
	return c.render(url, stdoutTarget, opts)
}

// RenderToFile renders url into outputPath. The tool writes the file
// itself; this layer never touches it. A nil opts means all defaults.
func (c *Converter) RenderToFile(url, outputPath string, opts *Options) error {
	if outputPath == "" || outputPath == stdoutTarget {
		return fmt.Errorf("%w: %q", ErrInvalidOutputPath, outputPath)
	}
	_, err := c.render(url, outputPath, opts)
	return err
}

// render resolves the executable, builds the argument vector
// "-q [switches...] <url> <destination>", and runs the subprocess.
func (c *Converter) render(url, destination string, opts *Options) ([]byte, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}

	path, err := c.ExecutablePath()
	if err != nil {
		return nil, err
	}

	args := append([]string{quietFlag}, opts.Args()...)
	args = append(args, url, destination)

	stdout, stderrText, runErr := c.runner.Run(path, args...)

	if destination != stdoutTarget {
		// The document went to a file, so stdout carries nothing on
		// success. Only a launch failure counts as an error here; the
		// exit status is not consulted.
		var exitErr *exec.ExitError
		if runErr != nil && !errors.As(runErr, &exitErr) {
			return nil, fmt.Errorf("%w: %v", ErrRenderFailed, runErr)
		}
		return nil, nil
	}

	if len(stdout) == 0 {
		if stderrText != "" {
			return nil, fmt.Errorf("%w: %s", ErrRenderFailed, stderrText)
		}
		if runErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrRenderFailed, runErr)
		}
		return nil, ErrRenderFailed
	}

	return stdout, nil
}
