package config

import (
	"fmt"

	"github.com/lerenn/depub/configs"
	"github.com/lerenn/depub/pkg/fs"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Command   string   `yaml:"command"`
	Files     []string `yaml:"files"`
	MaxRounds int      `yaml:"max_rounds"`
	Verbose   bool     `yaml:"verbose"`
	Quiet     bool     `yaml:"quiet"`
	Color     bool     `yaml:"color"`
}

// Manager interface provides configuration management functionality.
type Manager interface {
	LoadConfig(configPath string) (*Config, error)
	DefaultConfig() (*Config, error)
	ResolveFiles(patterns []string) ([]string, error)
}

type realManager struct {
	fs fs.FS
}

// NewManager creates a new Manager instance.
func NewManager(fsys fs.FS) Manager {
	if fsys == nil {
		fsys = fs.NewFS()
	}
	return &realManager{fs: fsys}
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Command == "" {
		return ErrCommandEmpty
	}
	return c.validateLimits()
}

func (c *Config) validateLimits() error {
	if c.MaxRounds < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxRounds, c.MaxRounds)
	}
	return nil
}

func parse(data []byte, into *Config) error {
	return yaml.Unmarshal(data, into)
}

// defaultConfig parses the embedded defaults.
func defaultConfig() (*Config, error) {
	var config Config
	if err := parse(configs.DefaultConfigYAML, &config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDefaultConfig, err)
	}
	return &config, nil
}
