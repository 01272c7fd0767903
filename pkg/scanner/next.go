package scanner

import "github.com/lerenn/depub/pkg/visibility"

// Next returns the first occurrence starting at or after from.
func (s *realScanner) Next(buf string, from int) (Occurrence, bool) {
	if from < 0 {
		from = 0
	}

	for from < len(buf) {
		loc := s.pattern.FindStringSubmatchIndex(buf[from:])
		if loc == nil {
			return Occurrence{}, false
		}

		start := from + loc[0]

		// Part of a longer identifier such as "republish".
		if start > 0 && isIdentByte(buf[start-1]) {
			from = start + 1
			continue
		}

		end := from + loc[1]
		occ := Occurrence{
			Start:     start,
			End:       end,
			Supported: true,
			Spaced:    buf[end-1] == ' ' || buf[end-1] == '\t',
		}

		hasQualifier := loc[2] >= 0
		if hasQualifier {
			occ.Qualifier = buf[from+loc[2] : from+loc[3]]
		}

		level, err := visibility.Parse(occ.Qualifier, hasQualifier)
		if err != nil {
			occ.Supported = false
		}
		occ.Level = level

		return occ, true
	}

	return Occurrence{}, false
}

func isIdentByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
