// Package pathutil provides home-directory aware path helpers.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Collapse replaces the user's home directory prefix with ~ for display.
// Returns the path unchanged if it is not under the home directory or the
// home directory cannot be determined.
func Collapse(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + path[len(home):]
	}
	return path
}

// Expand expands a leading ~ to the user's home directory.
// Paths without a ~ prefix are returned unchanged.
func Expand(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
