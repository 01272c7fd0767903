// Package cli turns command-line options into a configured depub run.
package cli

import "errors"

// Error definitions for cli package.
var (
	// ErrUsage marks errors caused by malformed invocations.
	ErrUsage = errors.New("invalid usage")
	// ErrNoInputFiles is returned when neither the config nor the arguments name a file.
	ErrNoInputFiles = errors.New("at least one file is required")
)
