package wkhtmltopdf

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/kasparsaleksejevs/go-wkhtmltopdf/internal/fileutil"
)

// File and directory names the locator searches for.
const (
	executableName = "wkhtmltopdf"
	toolDirName    = "wkhtmltopdf"
)

// Environment overrides for the machine-wide installation roots. Windows
// populates these itself; elsewhere they may be set explicitly.
const (
	envProgramFiles64 = "ProgramW6432"
	envProgramFiles86 = "ProgramFiles(x86)"
	envProgramFiles   = "ProgramFiles"
)

// Fallback installation roots probed when the environment overrides are
// unset.
var defaultInstallRoots = []string{
	`C:\Program Files`,
	`C:\Program Files (x86)`,
}

// lookupExecutable probes the fixed candidate list and returns the first
// existing file. Search order: the running program's own directory, a
// wkhtmltopdf subdirectory next to it, each installation root under
// <root>/wkhtmltopdf/bin, and finally PATH. The first match wins; no later
// candidate is probed.
//
// Failure is a configuration error, not a transient fault: the caller must
// install the tool or supply an explicit path.
func lookupExecutable() (string, error) {
	candidates := candidatePaths()
	for _, candidate := range candidates {
		if fileutil.FileExists(candidate) {
			return candidate, nil
		}
	}

	if path, err := exec.LookPath(executableName); err == nil {
		return path, nil
	}

	return "", fmt.Errorf("%w: tried %s", ErrExecutableNotFound, strings.Join(candidates, ", "))
}

// candidatePaths builds the ordered candidate list for the current host.
func candidatePaths() []string {
	file := executableFile()
	var candidates []string

	if self, err := os.Executable(); err == nil {
		dir := filepath.Dir(self)
		candidates = append(candidates,
			filepath.Join(dir, file),
			filepath.Join(dir, toolDirName, file),
		)
	}

	for _, root := range installRoots() {
		candidates = append(candidates, filepath.Join(root, toolDirName, "bin", file))
	}

	return candidates
}

// installRoots returns the machine-wide installation roots in probe order:
// environment overrides first (64-bit, then 32-bit, then the generic one),
// then the standard locations.
func installRoots() []string {
	var roots []string
	for _, env := range []string{envProgramFiles64, envProgramFiles86, envProgramFiles} {
		if root := os.Getenv(env); root != "" {
			roots = append(roots, root)
		}
	}
	return append(roots, defaultInstallRoots...)
}

// executableFile returns the platform-specific file name of the tool.
func executableFile() string {
	if runtime.GOOS == "windows" {
		return executableName + ".exe"
	}
	return executableName
}
