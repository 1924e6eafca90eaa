// Package config loads settings for the spiders command line tool.
package config

import (
	"fmt"
	"strings"
)

// Config is the full set of tool settings.
type Config struct {
	Log     LogConfig     `koanf:"log"`
	Console ConsoleConfig `koanf:"console"`
	Output  OutputConfig  `koanf:"output"`
	Grid    GridConfig    `koanf:"grid"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ConsoleConfig controls the interactive session.
type ConsoleConfig struct {
	Clear bool `koanf:"clear"`
	Grid  bool `koanf:"grid"`
	Color bool `koanf:"color"`
}

type OutputConfig struct {
	Format string `koanf:"format"`
}

type GridConfig struct {
	MaxSize int `koanf:"max_size"`
}

// Default returns the settings used when nothing else is configured.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		Console: ConsoleConfig{
			Clear: true,
			Color: true,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Grid: GridConfig{
			MaxSize: 40,
		},
	}
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validLogFmt  = []string{"console", "json"}
	validOutputs = []string{"text", "json"}
)

// Validate checks enumerated fields and limits.
func (c *Config) Validate() error {
	if !oneOf(c.Log.Level, validLevels) {
		return fmt.Errorf("log.level must be one of %s, got %q", strings.Join(validLevels, "|"), c.Log.Level)
	}
	if !oneOf(c.Log.Format, validLogFmt) {
		return fmt.Errorf("log.format must be one of %s, got %q", strings.Join(validLogFmt, "|"), c.Log.Format)
	}
	if !oneOf(c.Output.Format, validOutputs) {
		return fmt.Errorf("output.format must be one of %s, got %q", strings.Join(validOutputs, "|"), c.Output.Format)
	}
	if c.Grid.MaxSize < 1 {
		return fmt.Errorf("grid.max_size must be positive, got %d", c.Grid.MaxSize)
	}
	return nil
}

func oneOf(v string, set []string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
