package search

import (
	"context"
	"fmt"

	"github.com/lerenn/depub/pkg/depub/consts"
	"github.com/lerenn/depub/pkg/hooks"
	"github.com/lerenn/depub/pkg/mutator"
	"github.com/lerenn/depub/pkg/scanner"
	"github.com/lerenn/depub/pkg/visibility"
)

// DemoteOccurrence walks occ down the lattice until the oracle rejects a level.
// The file on disk equals state.Buffer whenever this method returns.
func (d *realDriver) DemoteOccurrence(
	ctx context.Context,
	state *FileState,
	occ scanner.Occurrence,
) (Result, error) {
	res := Result{Final: occ.Level, Next: occ.End}

	if !occ.Supported {
		d.logger.Logf("%s@%d: skipping unsupported qualifier %q", state.Path, occ.Start, occ.Qualifier)
		return res, nil
	}

	committed := occ
	level := occ.Level
	for {
		next, ok := level.Demote()
		if !ok {
			break
		}

		if err := ctx.Err(); err != nil {
			return finish(res, committed), err
		}

		accepted, err := d.try(ctx, state, committed, next)
		res.Trials++
		if accepted {
			committed = mutator.Span(committed, next)
			res.Changed = true
			level = next
		}
		if err != nil {
			return finish(res, committed), err
		}
		if accepted {
			continue
		}

		if err := ctx.Err(); err != nil {
			return finish(res, committed), err
		}

		// pub(super) is rejected at the crate root even where private would
		// compile, so its failure does not end the descent.
		if next == visibility.Super {
			level = next
			continue
		}

		break
	}

	return finish(res, committed), nil
}

// try writes the candidate, runs the oracle, then commits or restores.
func (d *realDriver) try(
	ctx context.Context,
	state *FileState,
	committed scanner.Occurrence,
	target visibility.Level,
) (bool, error) {
	candidate := mutator.Apply(state.Buffer, committed, target)

	if err := state.write(d.fs, candidate); err != nil {
		return false, fmt.Errorf("%w %s: %w", ErrWriteCandidate, state.Path, err)
	}

	accepted := d.oracle.Check(ctx)
	if accepted {
		state.Buffer = candidate
	} else if err := state.write(d.fs, state.Buffer); err != nil {
		return false, fmt.Errorf("%w %s: %w", ErrRestore, state.Path, err)
	}

	if err := d.hookManager.ExecutePostHooks(consts.Trial, &hooks.HookContext{
		File:       state.Path,
		Occurrence: committed,
		From:       committed.Level,
		To:         target,
		Accepted:   accepted,
	}); err != nil {
		return accepted, err
	}

	return accepted, nil
}

func finish(res Result, committed scanner.Occurrence) Result {
	res.Final = committed.Level
	res.Next = committed.End
	return res
}
