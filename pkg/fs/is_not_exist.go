package fs

import (
	"errors"
	"io/fs"
)

// IsNotExist checks if an error indicates that a file or directory doesn't exist.
func (f *realFS) IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
