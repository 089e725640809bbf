// Package fileutil provides small file and path helpers.
package fileutil

import (
	"os"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// a bare name. A string containing path separators (/, \) is treated as a
// path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
