package oracle

import (
	"context"
	"os/exec"
	"strings"

	"github.com/lerenn/depub/pkg/logger"
)

// DefaultShell is the interpreter used to run the check command.
const DefaultShell = "sh"

// NewShellOracleParams contains parameters for creating a shell oracle.
type NewShellOracleParams struct {
	// Command is passed verbatim to the shell with -c.
	Command string
	// Dir is the working directory of the command. Empty means the current one.
	Dir string
	// Shell overrides DefaultShell.
	Shell  string
	Logger logger.Logger
}

type shellOracle struct {
	command string
	dir     string
	shell   string
	logger  logger.Logger
}

// NewShellOracle creates an Oracle that runs a command line through the shell.
func NewShellOracle(params NewShellOracleParams) (Oracle, error) {
	if strings.TrimSpace(params.Command) == "" {
		return nil, ErrEmptyCommand
	}

	shell := params.Shell
	if shell == "" {
		shell = DefaultShell
	}

	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	return &shellOracle{
		command: params.Command,
		dir:     params.Dir,
		shell:   shell,
		logger:  log,
	}, nil
}

// Check runs the command with stdout and stderr discarded.
// It passes only when the command exits with status zero; a command that
// cannot be started counts as a failure.
func (o *shellOracle) Check(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, o.shell, "-c", o.command)
	cmd.Dir = o.dir

	if err := cmd.Run(); err != nil {
		o.logger.Logf("Oracle rejected candidate: %v", err)
		return false
	}

	return true
}
