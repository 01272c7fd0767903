// Package dependencies provides a centralized dependency container for depub.
// Related dependencies are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/lerenn/depub/pkg/fs"
	"github.com/lerenn/depub/pkg/hooks"
	"github.com/lerenn/depub/pkg/logger"
	"github.com/lerenn/depub/pkg/oracle"
	"github.com/lerenn/depub/pkg/scanner"
	"github.com/lerenn/depub/pkg/search"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing             = errors.New("fs dependency is required but not set")
	ErrOracleMissing         = errors.New("oracle dependency is required but not set")
	ErrScannerMissing        = errors.New("scanner dependency is required but not set")
	ErrLoggerMissing         = errors.New("logger dependency is required but not set")
	ErrHookManagerMissing    = errors.New("hook manager dependency is required but not set")
	ErrDriverProviderMissing = errors.New("driver provider dependency is required but not set")
)

// DriverProvider builds the search driver from the other dependencies.
type DriverProvider func(params search.NewDriverParams) search.Driver

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS             fs.FS
	Oracle         oracle.Oracle
	Scanner        scanner.Scanner
	Logger         logger.Logger
	HookManager    hooks.HookManagerInterface
	DriverProvider DriverProvider
}

// New creates a new Dependencies instance with sensible defaults.
// The oracle is intentionally left nil: it always comes from the user.
func New() *Dependencies {
	return &Dependencies{
		FS:             fs.NewFS(),
		Scanner:        scanner.NewScanner(),
		Logger:         logger.NewNoopLogger(),
		HookManager:    hooks.NewHookManager(),
		DriverProvider: search.NewDriver,
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithOracle sets the oracle and returns the instance for chaining.
func (d *Dependencies) WithOracle(o oracle.Oracle) *Dependencies {
	d.Oracle = o
	return d
}

// WithScanner sets the scanner and returns the instance for chaining.
func (d *Dependencies) WithScanner(s scanner.Scanner) *Dependencies {
	d.Scanner = s
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithHookManager sets the hook manager and returns the instance for chaining.
func (d *Dependencies) WithHookManager(hm hooks.HookManagerInterface) *Dependencies {
	d.HookManager = hm
	return d
}

// WithDriverProvider sets the driver provider and returns the instance for chaining.
func (d *Dependencies) WithDriverProvider(dp DriverProvider) *Dependencies {
	d.DriverProvider = dp
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	missing bool
	err     error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS == nil, ErrFSMissing},
		{d.Oracle == nil, ErrOracleMissing},
		{d.Scanner == nil, ErrScannerMissing},
		{d.Logger == nil, ErrLoggerMissing},
		{d.HookManager == nil, ErrHookManagerMissing},
		{d.DriverProvider == nil, ErrDriverProviderMissing},
	}

	for _, check := range checks {
		if check.missing {
			return check.err
		}
	}
	return nil
}
