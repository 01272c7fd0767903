// Package fs provides the file system operations depub needs on its targets.
package fs

import "errors"

// Error definitions for fs package.
var (
	// ErrNotRegularFile is returned when a target path is a directory or device.
	ErrNotRegularFile = errors.New("not a regular file")
)
