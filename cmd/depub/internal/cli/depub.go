package cli

import (
	"io"

	"github.com/fatih/color"
	"github.com/lerenn/depub/pkg/config"
	"github.com/lerenn/depub/pkg/dependencies"
	"github.com/lerenn/depub/pkg/depub"
	defaulthooks "github.com/lerenn/depub/pkg/hooks/default"
	"github.com/lerenn/depub/pkg/logger"
	"github.com/lerenn/depub/pkg/oracle"
)

// NewDepubParams contains parameters for building a depub instance from a config.
type NewDepubParams struct {
	Config *config.Config
	// Stdout receives the progress output.
	Stdout io.Writer
	// Dependencies overrides the defaults. Its oracle, logger and hook manager are replaced.
	Dependencies *dependencies.Dependencies
}

// NewDepub wires the oracle, logger and hooks described by the config.
// The returned function flushes the logger and must be called once the run ends.
func NewDepub(params NewDepubParams) (depub.Depub, func(), error) {
	cfg := params.Config

	log, flush, err := newLogger(cfg.Verbose)
	if err != nil {
		return nil, nil, err
	}

	o, err := oracle.NewShellOracle(oracle.NewShellOracleParams{
		Command: cfg.Command,
		Logger:  log,
	})
	if err != nil {
		flush()
		return nil, nil, err
	}

	var trialLogger logger.Logger
	if cfg.Verbose {
		trialLogger = log
	}

	hm, err := defaulthooks.NewDefaultHooksManager(defaulthooks.NewDefaultHooksManagerParams{
		Out:     params.Stdout,
		Colored: cfg.Color && !color.NoColor,
		Quiet:   cfg.Quiet,
		Logger:  trialLogger,
	})
	if err != nil {
		flush()
		return nil, nil, err
	}

	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	d, err := depub.NewDepub(depub.NewDepubParams{
		Dependencies: deps.WithOracle(o).WithLogger(log).WithHookManager(hm),
		MaxRounds:    cfg.MaxRounds,
	})
	if err != nil {
		flush()
		return nil, nil, err
	}

	return d, flush, nil
}

func newLogger(verbose bool) (logger.Logger, func(), error) {
	if !verbose {
		return logger.NewNoopLogger(), func() {}, nil
	}

	zl, err := logger.NewZapLogger(true)
	if err != nil {
		return nil, nil, err
	}

	// Sync reports EINVAL for stderr on some platforms.
	return zl, func() { _ = zl.Sync() }, nil
}
