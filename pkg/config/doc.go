// Package config provides configuration management functionality for depub.
package config
