package config

import (
	"fmt"
)

// LoadConfig loads configuration from the specified file path.
// Keys absent from the file keep their default value.
func (c *realManager) LoadConfig(configPath string) (*Config, error) {
	path, err := c.fs.ExpandPath(configPath)
	if err != nil {
		return nil, err
	}

	exists, err := c.fs.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
	}

	data, err := c.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := defaultConfig()
	if err != nil {
		return nil, err
	}

	if err := parse(data, config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	// The command may still come from the command line.
	if err := config.validateLimits(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// DefaultConfig returns the default configuration.
func (c *realManager) DefaultConfig() (*Config, error) {
	return defaultConfig()
}

// ResolveFiles expands ~ and glob patterns, keeping pattern order.
// Every pattern must match at least one file.
func (c *realManager) ResolveFiles(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		expanded, err := c.fs.ExpandPath(pattern)
		if err != nil {
			return nil, err
		}

		matches, err := c.fs.Glob(expanded)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoFilesMatched, pattern)
		}

		files = append(files, matches...)
	}
	return files, nil
}
