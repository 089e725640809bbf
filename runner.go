package wkhtmltopdf

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"strings"
)

// commandRunner abstracts subprocess execution to enable testing without
// spawning real processes.
type commandRunner interface {
	Run(path string, args ...string) (stdout []byte, stderr string, err error)
}

// execRunner implements commandRunner using os/exec. The argument vector is
// handed to the OS as-is; no shell ever interprets it.
type execRunner struct{}

// Run launches path with args, using the executable's own directory as the
// working directory, and drains stdout and stderr completely before the
// child is reaped. exec.Cmd copies both streams through pipes while the
// process runs, so a chatty child cannot deadlock against a full pipe
// buffer.
//
// The returned err reflects launch failures and the exit status; callers
// applying the output-based success heuristic may ignore exit-status errors.
func (execRunner) Run(path string, args ...string) ([]byte, string, error) {
	cmd := exec.Command(path, args...)
	cmd.Dir = filepath.Dir(path)

	var stdout bytes.Buffer
	var stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.String(), err
}
