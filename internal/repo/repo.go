// Package repo resolves the repository root that touchstamp writes into.
package repo

import (
	"fmt"
	"os"
	"path/filepath"
)

// MarkerDir is the directory whose presence marks a repository root.
const MarkerDir = ".git"

// FindRoot walks up from start looking for a directory that contains
// MarkerDir. If none is found, the absolute form of start is returned.
func FindRoot(start string) (string, error) {
	if start == "" {
		start = "."
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", start, err)
	}

	dir := abs
	for {
		if _, err := os.Stat(filepath.Join(dir, MarkerDir)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		dir = parent
	}
}

// Resolve joins path onto root unless path is already absolute.
func Resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

// Rel returns path relative to root for display. If that is not possible
// the path is returned unchanged.
func Rel(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
