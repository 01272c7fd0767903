// Package mutator rewrites a single visibility annotation in a buffer.
package mutator

import (
	"strings"

	"github.com/lerenn/depub/pkg/scanner"
	"github.com/lerenn/depub/pkg/visibility"
)

// Apply returns a copy of buf where occ is replaced by the rendering of target.
func Apply(buf string, occ scanner.Occurrence, target visibility.Level) string {
	rendering := target.Render(occ.Spaced)

	var b strings.Builder
	b.Grow(len(buf) - occ.Len() + len(rendering))
	b.WriteString(buf[:occ.Start])
	b.WriteString(rendering)
	b.WriteString(buf[occ.End:])

	return b.String()
}

// Span returns occ as it appears in the buffer produced by Apply with target.
func Span(occ scanner.Occurrence, target visibility.Level) scanner.Occurrence {
	occ.End = occ.Start + len(target.Render(occ.Spaced))
	occ.Level = target
	occ.Supported = true

	switch target {
	case visibility.Crate:
		occ.Qualifier = visibility.QualifierCrate
	case visibility.Super:
		occ.Qualifier = visibility.QualifierSuper
	default:
		occ.Qualifier = ""
	}

	return occ
}
