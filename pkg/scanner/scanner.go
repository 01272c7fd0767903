// Package scanner locates visibility annotations in a text buffer.
package scanner

import "regexp"

// annotationPattern matches the keyword, an optional parenthesized qualifier and
// the horizontal whitespace that follows. It never crosses a line break.
var annotationPattern = regexp.MustCompile(`pub\b(?:[ \t]*\([ \t]*([^()\n]*?)[ \t]*\))?[ \t]*`)

// Scanner finds visibility annotations.
type Scanner interface {
	// Next returns the first occurrence starting at or after from.
	// The boolean is false when no further annotation exists.
	Next(buf string, from int) (Occurrence, bool)
}

type realScanner struct {
	pattern *regexp.Regexp
}

// NewScanner creates a new Scanner instance.
func NewScanner() Scanner {
	return &realScanner{
		pattern: annotationPattern,
	}
}
