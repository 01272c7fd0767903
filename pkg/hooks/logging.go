package hooks

import (
	"github.com/lerenn/depub/pkg/depub/consts"
	"github.com/lerenn/depub/pkg/logger"
)

// LoggingHook logs rounds, files and every oracle trial.
type LoggingHook struct {
	logger logger.Logger
}

// NewLoggingHook creates a new LoggingHook instance.
func NewLoggingHook(logger logger.Logger) *LoggingHook {
	return &LoggingHook{
		logger: logger,
	}
}

// RegisterForOperations registers the hook on the manager.
func (h *LoggingHook) RegisterForOperations(hm HookManagerInterface) error {
	for _, op := range []string{consts.Round, consts.File} {
		if err := hm.RegisterPreHook(op, h); err != nil {
			return err
		}
	}

	for _, op := range []string{consts.Trial, consts.File, consts.Run} {
		if err := hm.RegisterPostHook(op, h); err != nil {
			return err
		}
	}

	return hm.RegisterErrorHook(consts.Run, h)
}

// Name returns the hook name.
func (h *LoggingHook) Name() string {
	return "logging"
}

// Priority returns the hook priority (lower numbers execute first).
func (h *LoggingHook) Priority() int {
	return 100
}

// PreExecute logs the start of a round or file.
func (h *LoggingHook) PreExecute(ctx *HookContext) error {
	switch ctx.OperationName {
	case consts.Round:
		h.logger.Logf("Starting round %d", ctx.Round)
	case consts.File:
		h.logger.Logf("Scanning %s (round %d)", ctx.File, ctx.Round)
	}
	return nil
}

// PostExecute logs trial verdicts and totals.
func (h *LoggingHook) PostExecute(ctx *HookContext) error {
	switch ctx.OperationName {
	case consts.Trial:
		verdict := "rejected"
		if ctx.Accepted {
			verdict = "accepted"
		}
		h.logger.Logf("%s@%d: %s -> %s %s", ctx.File, ctx.Occurrence.Start, ctx.From, ctx.To, verdict)
	case consts.File:
		h.logger.Logf("Finished %s: %d annotation(s) demoted", ctx.File, ctx.Changed)
	case consts.Run:
		h.logger.Logf("Fixpoint reached after %d round(s), %d demotion(s)", ctx.Rounds, ctx.Changed)
	}
	return nil
}

// OnError logs the failure of a run.
func (h *LoggingHook) OnError(ctx *HookContext) error {
	h.logger.Logf("Run failed after %d round(s): %v", ctx.Rounds, ctx.Error)
	return nil
}
