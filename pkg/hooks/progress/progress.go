// Package progress provides the terminal progress output of depub.
package progress

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/lerenn/depub/pkg/depub/consts"
	"github.com/lerenn/depub/pkg/hooks"
)

// Hook prints round banners, one dot per probed occurrence and the
// changed-count of every file.
type Hook struct {
	out    io.Writer
	banner *color.Color
	count  *color.Color
	idle   *color.Color
	// midLine is true while a file line has been started but not terminated.
	midLine bool
}

// NewHook creates a progress hook writing to out.
func NewHook(out io.Writer, colored bool) *Hook {
	h := &Hook{
		out:    out,
		banner: color.New(color.FgCyan, color.Bold),
		count:  color.New(color.FgGreen, color.Bold),
		idle:   color.New(color.Faint),
	}

	for _, c := range []*color.Color{h.banner, h.count, h.idle} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return h
}

// RegisterForOperations registers the hook on the manager.
func (h *Hook) RegisterForOperations(hm hooks.HookManagerInterface) error {
	for _, op := range []string{consts.Round, consts.File, consts.Probe} {
		if err := hm.RegisterPreHook(op, h); err != nil {
			return err
		}
	}

	for _, op := range []string{consts.File, consts.Run} {
		if err := hm.RegisterPostHook(op, h); err != nil {
			return err
		}
	}

	return hm.RegisterErrorHook(consts.File, h)
}

// Name returns the hook name.
func (h *Hook) Name() string {
	return "progress"
}

// Priority returns the hook priority (lower numbers execute first).
func (h *Hook) Priority() int {
	return 200
}

// PreExecute prints the round banner, the file name or a probe marker.
func (h *Hook) PreExecute(ctx *hooks.HookContext) error {
	var err error
	switch ctx.OperationName {
	case consts.Round:
		_, err = h.banner.Fprintf(h.out, "Round %d\n", ctx.Round)
	case consts.File:
		h.midLine = true
		_, err = fmt.Fprintf(h.out, "%s: ", ctx.File)
	case consts.Probe:
		_, err = fmt.Fprint(h.out, ".")
	}
	return err
}

// PostExecute terminates a file line with its count, or prints the summary.
func (h *Hook) PostExecute(ctx *hooks.HookContext) error {
	switch ctx.OperationName {
	case consts.File:
		h.midLine = false
		c := h.idle
		if ctx.Changed > 0 {
			c = h.count
		}
		if _, err := fmt.Fprint(h.out, " "); err != nil {
			return err
		}
		_, err := c.Fprintf(h.out, "%d\n", ctx.Changed)
		return err
	case consts.Run:
		_, err := fmt.Fprintf(h.out, "Fixpoint reached after %d round(s): %d annotation(s) demoted\n",
			ctx.Rounds, ctx.Changed)
		return err
	}
	return nil
}

// OnError terminates a pending file line so the error starts on its own line.
func (h *Hook) OnError(_ *hooks.HookContext) error {
	if !h.midLine {
		return nil
	}
	h.midLine = false
	_, err := fmt.Fprintln(h.out)
	return err
}
