package fs

import (
	"fmt"
	"os"
)

// FileMode returns the permission bits of a regular file.
func (f *realFS) FileMode(path string) (os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}

	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	return info.Mode().Perm(), nil
}
