// Package depub drives the demotion search over a set of files until a fixpoint.
package depub

import "errors"

// Error definitions for depub package.
var (
	// Input errors.
	ErrNoFiles       = errors.New("no input files")
	ErrFileNotFound  = errors.New("file not found")
	ErrIsDirectory   = errors.New("path is a directory")
	ErrInvalidRounds = errors.New("max rounds cannot be negative")

	// Convergence errors.
	ErrMaxRoundsReached = errors.New("maximum number of rounds reached before fixpoint")
)
