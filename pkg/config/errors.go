package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileParse    = errors.New("failed to parse config file")
	ErrDefaultConfig      = errors.New("invalid embedded default config")

	// Configuration validation errors.
	ErrCommandEmpty     = errors.New("command cannot be empty")
	ErrInvalidMaxRounds = errors.New("max_rounds cannot be negative")

	// File resolution errors.
	ErrNoFilesMatched = errors.New("pattern matched no files")
)
