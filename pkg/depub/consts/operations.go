// Package consts provides the operation names hooks are registered for.
package consts

// Operation names.
const (
	// Run covers the whole convergence loop.
	Run = "run"
	// Round covers one pass over every input file.
	Round = "round"
	// File covers one pass over a single file.
	File = "file"
	// Probe covers the search over one occurrence.
	Probe = "probe"
	// Trial covers one oracle invocation on a candidate.
	Trial = "trial"
)
