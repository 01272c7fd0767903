// Package oracle provides the pass/fail check run against every candidate.
package oracle

import "errors"

// Error definitions for oracle package.
var (
	// ErrEmptyCommand is returned when no check command is configured.
	ErrEmptyCommand = errors.New("oracle command cannot be empty")
)
