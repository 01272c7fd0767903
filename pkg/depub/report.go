package depub

// FileReport is the outcome of one file in one round.
type FileReport struct {
	Path string
	// Changed counts occurrences demoted at least once.
	Changed int
}

// RoundReport is the outcome of one round.
type RoundReport struct {
	Number int
	Files  []FileReport
	// Changed is true if any file changed during the round.
	Changed bool
}

// Report is the outcome of a whole run.
type Report struct {
	Rounds       []RoundReport
	TotalChanged int
}

// ChangedCount returns the sum of the file counts of the round.
func (r RoundReport) ChangedCount() int {
	total := 0
	for _, f := range r.Files {
		total += f.Changed
	}
	return total
}

// Converged reports whether the last round reached the fixpoint.
func (r Report) Converged() bool {
	return len(r.Rounds) > 0 && !r.Rounds[len(r.Rounds)-1].Changed
}
