// Package fsutil provides file system utility functions.
package fsutil

import (
	"os"
	"path/filepath"
)

// IsFile reports whether path exists and is a regular file (or a symlink to one).
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FindFirst returns the first of names that exists as a file directly inside
// dir, joined onto dir. The boolean is false when none exists.
func FindFirst(dir string, names ...string) (string, bool) {
	for _, name := range names {
		candidate := filepath.Join(dir, name)
		if IsFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// FindAll returns every one of names that exists as a file inside dir, in
// the order given.
func FindAll(dir string, names ...string) []string {
	var found []string
	for _, name := range names {
		candidate := filepath.Join(dir, name)
		if IsFile(candidate) {
			found = append(found, candidate)
		}
	}
	return found
}
