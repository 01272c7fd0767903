// Package search implements the greedy, oracle-guided demotion of annotations.
package search

import "errors"

// Error definitions for search package.
var (
	// ErrReadFile is returned when a target cannot be loaded.
	ErrReadFile = errors.New("failed to read file")
	// ErrWriteCandidate is returned when a candidate cannot be written for the oracle.
	ErrWriteCandidate = errors.New("failed to write candidate")
	// ErrRestore is returned when the committed content cannot be written back.
	ErrRestore = errors.New("failed to restore committed content")
)
