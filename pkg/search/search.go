package search

import (
	"context"

	"github.com/lerenn/depub/pkg/fs"
	"github.com/lerenn/depub/pkg/hooks"
	"github.com/lerenn/depub/pkg/logger"
	"github.com/lerenn/depub/pkg/oracle"
	"github.com/lerenn/depub/pkg/scanner"
	"github.com/lerenn/depub/pkg/visibility"
)

// Result is the outcome of the search over one occurrence.
type Result struct {
	// Changed is true if at least one demotion was committed.
	Changed bool
	// Final is the committed level of the occurrence.
	Final visibility.Level
	// Next is the offset in the committed buffer where scanning resumes.
	Next int
	// Trials is the number of oracle invocations.
	Trials int
}

// Driver demotes annotations one at a time.
type Driver interface {
	// DemoteOccurrence walks occ down the lattice until the oracle rejects a level.
	DemoteOccurrence(ctx context.Context, state *FileState, occ scanner.Occurrence) (Result, error)

	// DemoteFile runs DemoteOccurrence over a fresh scan of the whole buffer
	// and returns how many occurrences were demoted.
	DemoteFile(ctx context.Context, state *FileState) (int, error)
}

// NewDriverParams contains parameters for creating a new Driver instance.
type NewDriverParams struct {
	FS          fs.FS
	Oracle      oracle.Oracle
	Scanner     scanner.Scanner
	HookManager hooks.HookManagerInterface
	Logger      logger.Logger
}

type realDriver struct {
	fs          fs.FS
	oracle      oracle.Oracle
	scanner     scanner.Scanner
	hookManager hooks.HookManagerInterface
	logger      logger.Logger
}

// NewDriver creates a new Driver instance.
func NewDriver(params NewDriverParams) Driver {
	sc := params.Scanner
	if sc == nil {
		sc = scanner.NewScanner()
	}

	hm := params.HookManager
	if hm == nil {
		hm = hooks.NewHookManager()
	}

	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	return &realDriver{
		fs:          params.FS,
		oracle:      params.Oracle,
		scanner:     sc,
		hookManager: hm,
		logger:      log,
	}
}
