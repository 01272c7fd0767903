package search

import (
	"context"

	"github.com/lerenn/depub/pkg/depub/consts"
	"github.com/lerenn/depub/pkg/hooks"
)

// DemoteFile runs DemoteOccurrence over a fresh scan of the whole buffer.
// Scanning resumes at the end of each committed occurrence, so text shifted
// by an accepted edit is neither skipped nor visited twice.
func (d *realDriver) DemoteFile(ctx context.Context, state *FileState) (int, error) {
	changed := 0
	cursor := 0

	for {
		occ, ok := d.scanner.Next(state.Buffer, cursor)
		if !ok {
			return changed, nil
		}

		if err := d.hookManager.ExecutePreHooks(consts.Probe, &hooks.HookContext{
			File:       state.Path,
			Occurrence: occ,
		}); err != nil {
			return changed, err
		}

		res, err := d.DemoteOccurrence(ctx, state, occ)
		if res.Changed {
			changed++
		}
		if err != nil {
			return changed, err
		}

		cursor = res.Next
	}
}
