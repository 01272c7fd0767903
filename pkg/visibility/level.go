package visibility

import "fmt"

// Level is a visibility level, ordered from most to least permissive.
type Level int

const (
	// Public is the bare keyword without qualifier.
	Public Level = iota
	// Crate is visible through the whole crate.
	Crate
	// Super is visible to the parent module.
	Super
	// Private has no annotation at all.
	Private
)

// Qualifier spellings recognized inside the parentheses.
const (
	QualifierCrate = "crate"
	QualifierSuper = "super"
)

// keywords are the canonical spellings. Private has none. Public is never a
// demotion target but shares the table with String.
var keywords = map[Level]string{
	Public: "pub",
	Crate:  "pub(" + QualifierCrate + ")",
	Super:  "pub(" + QualifierSuper + ")",
}

// Render returns the canonical text spliced into a buffer for the level.
// spaced appends the separator to the next token; it is false when the
// replaced annotation ended at a line break. Private renders as "".
func (l Level) Render(spaced bool) string {
	keyword, ok := keywords[l]
	if !ok {
		return ""
	}
	if spaced {
		return keyword + " "
	}
	return keyword
}

// Demote returns the next strictly more restrictive level.
// The boolean is false when l is already the least permissive level.
func (l Level) Demote() (Level, bool) {
	if l >= Private || l < Public {
		return l, false
	}
	return l + 1, true
}

// MorePermissiveThan reports whether l grants wider access than other.
func (l Level) MorePermissiveThan(other Level) bool {
	return l < other
}

// String returns a human readable name of the level.
func (l Level) String() string {
	if keyword, ok := keywords[l]; ok {
		return keyword
	}
	if l == Private {
		return "private"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}
