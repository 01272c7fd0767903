package depub

import (
	"fmt"
	"path/filepath"
)

// validateFiles cleans and de-duplicates paths, keeping their first-seen order,
// and checks that each names an existing regular file.
func (d *realDepub) validateFiles(files []string) ([]string, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	seen := make(map[string]bool, len(files))
	paths := make([]string, 0, len(files))
	for _, file := range files {
		path := filepath.Clean(file)
		if seen[path] {
			continue
		}
		seen[path] = true

		exists, err := d.deps.FS.Exists(path)
		if err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", path, err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}

		isDir, err := d.deps.FS.IsDir(path)
		if err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", path, err)
		}
		if isDir {
			return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
		}

		paths = append(paths, path)
	}

	return paths, nil
}
