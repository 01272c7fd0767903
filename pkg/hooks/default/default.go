// Package defaulthooks provides default hook implementations for depub.
package defaulthooks

import (
	"io"

	"github.com/lerenn/depub/pkg/hooks"
	"github.com/lerenn/depub/pkg/hooks/progress"
	"github.com/lerenn/depub/pkg/logger"
)

// NewDefaultHooksManagerParams contains parameters for the default hooks manager.
type NewDefaultHooksManagerParams struct {
	// Out receives the progress output. Nil or Quiet disables it.
	Out     io.Writer
	Colored bool
	Quiet   bool
	// Logger receives per-trial logs. Nil disables them.
	Logger logger.Logger
}

// NewDefaultHooksManager creates a hooks manager with progress output and trial logging.
func NewDefaultHooksManager(params NewDefaultHooksManagerParams) (hooks.HookManagerInterface, error) {
	hm := hooks.NewHookManager()

	if params.Logger != nil {
		if err := hooks.NewLoggingHook(params.Logger).RegisterForOperations(hm); err != nil {
			return nil, err
		}
	}

	if !params.Quiet && params.Out != nil {
		if err := progress.NewHook(params.Out, params.Colored).RegisterForOperations(hm); err != nil {
			return nil, err
		}
	}

	return hm, nil
}
