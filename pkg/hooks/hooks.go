// Package hooks provides a middleware system for depub operations.
package hooks

import (
	"github.com/lerenn/depub/pkg/scanner"
	"github.com/lerenn/depub/pkg/visibility"
)

// HookContext provides context for hook execution.
// Fields not relevant to OperationName are left at their zero value.
type HookContext struct {
	OperationName string

	// Round is the 1-based round number.
	Round int

	// File is the path of the file being processed.
	File string

	// Occurrence is the annotation being probed or tried.
	Occurrence scanner.Occurrence

	// From and To are the levels of a trial.
	From visibility.Level
	To   visibility.Level

	// Accepted is the oracle verdict of a trial.
	Accepted bool

	// Changed counts occurrences demoted in the file (file), the round (round)
	// or the whole run (run).
	Changed int

	// Rounds is the number of rounds executed (run).
	Rounds int

	Error error
}

// Hook defines the interface for all hooks.
type Hook interface {
	Name() string
	Priority() int
}

// PreHook executes before an operation.
type PreHook interface {
	Hook
	PreExecute(ctx *HookContext) error
}

// PostHook executes after an operation.
type PostHook interface {
	Hook
	PostExecute(ctx *HookContext) error
}

// ErrorHook executes when an operation fails.
type ErrorHook interface {
	Hook
	OnError(ctx *HookContext) error
}
