package cli

import (
	"errors"
	"fmt"

	"github.com/lerenn/depub/pkg/config"
)

// Flag names shared with the root command.
const (
	FlagCommand   = "command"
	FlagConfig    = "config"
	FlagMaxRounds = "max-rounds"
	FlagVerbose   = "verbose"
	FlagQuiet     = "quiet"
	FlagNoColor   = "no-color"
)

// Options holds the raw command-line values.
type Options struct {
	Command    string
	ConfigPath string
	MaxRounds  int
	Verbose    bool
	Quiet      bool
	NoColor    bool
	Files      []string
}

// Resolve merges the config file (if any) with the options and returns the
// validated configuration and the input files. changed reports whether a flag
// was set explicitly, in which case it overrides the file.
func Resolve(manager config.Manager, opts Options, changed func(flag string) bool) (*config.Config, []string, error) {
	cfg, err := load(manager, opts.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	if changed(FlagCommand) {
		cfg.Command = opts.Command
	}
	if changed(FlagMaxRounds) {
		cfg.MaxRounds = opts.MaxRounds
	}
	if changed(FlagVerbose) {
		cfg.Verbose = opts.Verbose
	}
	if changed(FlagQuiet) {
		cfg.Quiet = opts.Quiet
	}
	if changed(FlagNoColor) {
		cfg.Color = !opts.NoColor
	}

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrCommandEmpty) || changed(FlagMaxRounds) {
			return nil, nil, fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil, nil, err
	}

	files, err := manager.ResolveFiles(cfg.Files)
	if err != nil {
		return nil, nil, err
	}
	files = append(files, opts.Files...)

	if len(files) == 0 {
		return nil, nil, fmt.Errorf("%w: %w", ErrUsage, ErrNoInputFiles)
	}

	return cfg, files, nil
}

func load(manager config.Manager, path string) (*config.Config, error) {
	if path == "" {
		return manager.DefaultConfig()
	}
	return manager.LoadConfig(path)
}
