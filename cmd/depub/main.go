// Package main provides the command-line interface for depub.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/lerenn/depub/cmd/depub/internal/cli"
)

// Exit codes.
const (
	exitOK          = 0
	exitUsage       = 1
	exitFailure     = 2
	exitInterrupted = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes depub with args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	helpShown := false
	rootCmd := createRootCmd(stdout, stderr, &helpShown)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	switch {
	case err == nil && helpShown:
		return exitUsage
	case err == nil:
		return exitOK
	case errors.Is(err, cli.ErrUsage):
		fmt.Fprintf(stderr, "Error: %v\n\n%s", err, rootCmd.UsageString())
		return exitUsage
	case ctx.Err() != nil && errors.Is(err, context.Canceled):
		fmt.Fprintln(stderr, "Interrupted")
		return exitInterrupted
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
}
