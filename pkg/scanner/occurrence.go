package scanner

import "github.com/lerenn/depub/pkg/visibility"

// Occurrence is one annotation found in a buffer, covering buf[Start:End].
type Occurrence struct {
	Start int
	End   int

	// Level is the parsed level. It is meaningless when Supported is false.
	Level visibility.Level

	// Qualifier is the text captured inside the parentheses, if any.
	Qualifier string

	// Supported is false for qualifiers outside the lattice. Such occurrences
	// must be skipped verbatim.
	Supported bool

	// Spaced is true when the annotation is followed by horizontal whitespace
	// inside the span, false when it ends at a line break or a token.
	Spaced bool
}

// Len returns the byte length of the occurrence.
func (o Occurrence) Len() int {
	return o.End - o.Start
}
