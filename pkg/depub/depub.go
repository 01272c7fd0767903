package depub

import (
	"context"
	"fmt"

	"github.com/lerenn/depub/pkg/dependencies"
	"github.com/lerenn/depub/pkg/hooks"
	"github.com/lerenn/depub/pkg/search"
)

// Depub minimizes the visibility annotations of a set of files.
type Depub interface {
	// Run demotes every annotation of files, in rounds, until a round
	// demotes nothing.
	Run(ctx context.Context, files []string) (Report, error)
}

// NewDepubParams contains parameters for creating a new Depub instance.
type NewDepubParams struct {
	Dependencies *dependencies.Dependencies
	// MaxRounds bounds the number of rounds. Zero means unlimited.
	MaxRounds int
}

type realDepub struct {
	deps      *dependencies.Dependencies
	driver    search.Driver
	maxRounds int
}

// NewDepub creates a new Depub instance.
func NewDepub(params NewDepubParams) (Depub, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	if err := deps.Validate(); err != nil {
		return nil, err
	}

	if params.MaxRounds < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRounds, params.MaxRounds)
	}

	return &realDepub{
		deps: deps,
		driver: deps.DriverProvider(search.NewDriverParams{
			FS:          deps.FS,
			Oracle:      deps.Oracle,
			Scanner:     deps.Scanner,
			HookManager: deps.HookManager,
			Logger:      deps.Logger,
		}),
		maxRounds: params.MaxRounds,
	}, nil
}

// executeWithHooks executes an operation with pre and post hooks.
// Error hooks replace post hooks when the operation fails.
func (d *realDepub) executeWithHooks(operationName string, ctx *hooks.HookContext, operation func() error) error {
	if err := d.deps.HookManager.ExecutePreHooks(operationName, ctx); err != nil {
		return err
	}

	resultErr := operation()
	ctx.Error = resultErr

	if resultErr != nil {
		if hookErr := d.deps.HookManager.ExecuteErrorHooks(operationName, ctx); hookErr != nil {
			d.deps.Logger.Logf("Warning: %v", hookErr)
		}
		return resultErr
	}

	return d.deps.HookManager.ExecutePostHooks(operationName, ctx)
}
