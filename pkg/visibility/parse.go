package visibility

import "fmt"

// Parse returns the level of an annotation.
// hasQualifier is false for a bare keyword, in which case qualifier is ignored.
func Parse(qualifier string, hasQualifier bool) (Level, error) {
	if !hasQualifier {
		return Public, nil
	}

	switch qualifier {
	case QualifierCrate:
		return Crate, nil
	case QualifierSuper:
		return Super, nil
	default:
		return Public, fmt.Errorf("%w: %q", ErrUnsupportedQualifier, qualifier)
	}
}
