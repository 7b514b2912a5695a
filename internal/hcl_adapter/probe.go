package hcl_adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/specialistvlad/depgrid/internal/config"
	"github.com/specialistvlad/depgrid/internal/fsutil"
)

// presetFiles are looked up when a preset reference names a directory.
var presetFiles = []string{"jest-preset.json", "jest-preset.hcl"}

// extensions are tried, in order, for a path that does not exist as given.
var extensions = []string{".json", ".hcl"}

// probe maps a requested path onto the file that holds the document: the
// path itself when it is a file, a preset file inside it when it is a
// directory, or the path with a known extension appended.
func probe(path string) (string, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		if file, ok := fsutil.FindFirst(path, presetFiles...); ok {
			return file, nil
		}
		return "", fmt.Errorf("no preset file in directory %s: %w", path, config.ErrNotFound)
	case err == nil:
		return path, nil
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("error accessing %s: %w", path, err)
	}

	for _, ext := range extensions {
		if fsutil.IsFile(path + ext) {
			return path + ext, nil
		}
	}
	return "", fmt.Errorf("%s: %w", path, config.ErrNotFound)
}
