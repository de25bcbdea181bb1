package path

import (
	"os"
	"path/filepath"
)

// Canonicalize returns the absolute form of path with every symlink resolved.
// On macOS this also folds /var/folders/... into /private/var/folders/...,
// which otherwise name the same directory.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// Components splits path into its named elements. Volume names, the root,
// empty and "." elements are dropped; ".." is kept.
func Components(path string) []string {
	path = path[len(filepath.VolumeName(path)):]

	var parts []string
	start := 0
	for i := 0; i <= len(path); i++ {
		if i < len(path) && !os.IsPathSeparator(path[i]) {
			continue
		}
		part := path[start:i]
		if part != "" && part != "." {
			parts = append(parts, part)
		}
		start = i + 1
	}
	return parts
}
