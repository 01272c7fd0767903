// Package visibility provides the visibility levels depub can demote between.
package visibility

import "errors"

// Error definitions for visibility package.
var (
	// ErrUnsupportedQualifier is returned for a parenthesized qualifier other than crate or super.
	ErrUnsupportedQualifier = errors.New("unsupported visibility qualifier")
)
