package depub

import (
	"context"
	"fmt"

	"github.com/lerenn/depub/pkg/depub/consts"
	"github.com/lerenn/depub/pkg/hooks"
	"github.com/lerenn/depub/pkg/search"
)

// Run demotes every annotation of files, in rounds, until a round demotes nothing.
func (d *realDepub) Run(ctx context.Context, files []string) (Report, error) {
	var report Report

	paths, err := d.validateFiles(files)
	if err != nil {
		return report, err
	}

	runCtx := &hooks.HookContext{}
	err = d.executeWithHooks(consts.Run, runCtx, func() error {
		for round := 1; ; round++ {
			if d.maxRounds > 0 && round > d.maxRounds {
				return fmt.Errorf("%w (%d)", ErrMaxRoundsReached, d.maxRounds)
			}

			rr, err := d.runRound(ctx, round, paths)
			report.Rounds = append(report.Rounds, rr)
			report.TotalChanged += rr.ChangedCount()
			runCtx.Rounds = round
			runCtx.Changed = report.TotalChanged
			if err != nil {
				return err
			}

			if !rr.Changed {
				return nil
			}
		}
	})

	return report, err
}

// runRound processes every file once. Occurrences are rescanned from scratch.
func (d *realDepub) runRound(ctx context.Context, round int, paths []string) (RoundReport, error) {
	rr := RoundReport{Number: round}

	roundCtx := &hooks.HookContext{Round: round}
	err := d.executeWithHooks(consts.Round, roundCtx, func() error {
		for _, path := range paths {
			changed, err := d.runFile(ctx, round, path)
			rr.Files = append(rr.Files, FileReport{Path: path, Changed: changed})
			if changed > 0 {
				rr.Changed = true
			}
			roundCtx.Changed = rr.ChangedCount()
			if err != nil {
				return err
			}
		}
		return nil
	})

	return rr, err
}

// runFile loads path, demotes its annotations and persists the committed buffer.
func (d *realDepub) runFile(ctx context.Context, round int, path string) (int, error) {
	changed := 0

	fileCtx := &hooks.HookContext{Round: round, File: path}
	err := d.executeWithHooks(consts.File, fileCtx, func() error {
		state, err := search.LoadFile(d.deps.FS, path)
		if err != nil {
			return err
		}

		changed, err = d.driver.DemoteFile(ctx, state)
		fileCtx.Changed = changed
		if err != nil {
			return err
		}

		return state.Persist(d.deps.FS)
	})

	return changed, err
}
