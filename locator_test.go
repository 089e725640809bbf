package wkhtmltopdf

// Notes:
// - The program-directory candidates (steps probing the test binary's own
//   directory) are covered indirectly: no fixture is ever planted there, so
//   the search must fall through them to the roots under test.
// - Tests below set environment variables and therefore do not run in
//   parallel.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// plantExecutable creates <root>/wkhtmltopdf/bin/<file> and returns its path.
func plantExecutable(t *testing.T, root string) string {
	t.Helper()
	dir := filepath.Join(root, toolDirName, "bin")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating fixture dir: %v", err)
	}
	path := filepath.Join(dir, executableFile())
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil { // #nosec G306 -- fixture must be executable
		t.Fatalf("creating fixture: %v", err)
	}
	return path
}

// clearSearchEnv empties every environment knob the locator consults so a
// developer machine with a real wkhtmltopdf cannot leak into the test.
func clearSearchEnv(t *testing.T) {
	t.Helper()
	t.Setenv(envProgramFiles64, "")
	t.Setenv(envProgramFiles86, "")
	t.Setenv(envProgramFiles, "")
	t.Setenv("PATH", t.TempDir())
}

func TestLookupExecutable_ProgramFilesOverride(t *testing.T) {
	clearSearchEnv(t)

	root := t.TempDir()
	want := plantExecutable(t, root)
	t.Setenv(envProgramFiles64, root)

	got, err := lookupExecutable()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("lookupExecutable() = %q, want %q", got, want)
	}
}

// TestLookupExecutable_SearchOrder plants the tool under both the 64-bit
// and the 32-bit roots and verifies the 64-bit candidate wins.
func TestLookupExecutable_SearchOrder(t *testing.T) {
	clearSearchEnv(t)

	root64 := t.TempDir()
	root86 := t.TempDir()
	want := plantExecutable(t, root64)
	plantExecutable(t, root86)
	t.Setenv(envProgramFiles64, root64)
	t.Setenv(envProgramFiles86, root86)

	got, err := lookupExecutable()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("lookupExecutable() = %q, want %q", got, want)
	}
}

func TestLookupExecutable_PathFallback(t *testing.T) {
	clearSearchEnv(t)

	binDir := t.TempDir()
	want := filepath.Join(binDir, executableFile())
	if err := os.WriteFile(want, []byte("#!/bin/sh\n"), 0o755); err != nil { // #nosec G306 -- fixture must be executable
		t.Fatalf("creating fixture: %v", err)
	}
	t.Setenv("PATH", binDir)

	got, err := lookupExecutable()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("lookupExecutable() = %q, want %q", got, want)
	}
}

func TestLookupExecutable_NotFound(t *testing.T) {
	clearSearchEnv(t)

	_, err := lookupExecutable()
	if !errors.Is(err, ErrExecutableNotFound) {
		t.Fatalf("expected ErrExecutableNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "specify the path explicitly") {
		t.Errorf("error should tell the user what to do, got %q", err)
	}
	if !strings.Contains(err.Error(), "tried") {
		t.Errorf("error should list tried candidates, got %q", err)
	}
}

// TestCandidatePaths_RootOrder verifies the probe order of the machine-wide
// roots: 64-bit override, 32-bit override, generic override, then the
// standard locations.
func TestCandidatePaths_RootOrder(t *testing.T) {
	t.Setenv(envProgramFiles64, "/env64")
	t.Setenv(envProgramFiles86, "/env86")
	t.Setenv(envProgramFiles, "/envgeneric")

	candidates := candidatePaths()

	var rootCandidates []string
	for _, c := range candidates {
		for _, root := range []string{"/env64", "/env86", "/envgeneric"} {
			if strings.HasPrefix(c, filepath.FromSlash(root)+string(filepath.Separator)) {
				rootCandidates = append(rootCandidates, root)
			}
		}
	}

	want := []string{"/env64", "/env86", "/envgeneric"}
	if strings.Join(rootCandidates, ",") != strings.Join(want, ",") {
		t.Errorf("root probe order = %v, want %v", rootCandidates, want)
	}
}
