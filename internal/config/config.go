// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all contactbook configuration.
type Config struct {
	Birthdays Birthdays `yaml:"birthdays"`
	Shell     Shell     `yaml:"shell"`
	Log       Log       `yaml:"log"`
}

// Birthdays holds upcoming-birthday query settings.
type Birthdays struct {
	WindowDays    int  `yaml:"window_days"`    // Days after today to look ahead
	ShiftWeekends bool `yaml:"shift_weekends"` // Move Sat/Sun to Monday
}

// Shell holds interactive shell settings.
type Shell struct {
	Prompt string `yaml:"prompt"`
	NoTUI  bool   `yaml:"no_tui"` // Force the plain line shell
}

// Log holds logger settings.
type Log struct {
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
	File  string `yaml:"file"`  // Empty disables logging
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Birthdays: Birthdays{
			WindowDays:    7,
			ShiftWeekends: true,
		},
		Shell: Shell{
			Prompt: "Enter a command: ",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Birthdays.WindowDays < 0 {
		return fmt.Errorf("config: birthdays.window_days must be non-negative, got %d", c.Birthdays.WindowDays)
	}
	if c.Birthdays.WindowDays > 366 {
		return fmt.Errorf("config: birthdays.window_days must be at most 366, got %d", c.Birthdays.WindowDays)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("config: log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: CONTACTS_WINDOW_DAYS, CONTACTS_NO_TUI,
// CONTACTS_LOG_LEVEL, CONTACTS_LOG_FILE.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("CONTACTS_WINDOW_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid CONTACTS_WINDOW_DAYS %q: %w", v, err)
		}
		c.Birthdays.WindowDays = n
	}
	if v := os.Getenv("CONTACTS_NO_TUI"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid CONTACTS_NO_TUI %q: %w", v, err)
		}
		c.Shell.NoTUI = b
	}
	if v := os.Getenv("CONTACTS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("CONTACTS_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Birthdays *rawBirthdays `yaml:"birthdays"`
	Shell     *rawShell     `yaml:"shell"`
	Log       *rawLog       `yaml:"log"`
}

type rawBirthdays struct {
	WindowDays    *int  `yaml:"window_days"`
	ShiftWeekends *bool `yaml:"shift_weekends"`
}

type rawShell struct {
	Prompt *string `yaml:"prompt"`
	NoTUI  *bool   `yaml:"no_tui"`
}

type rawLog struct {
	Level *string `yaml:"level"`
	File  *string `yaml:"file"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Birthdays != nil {
		if layer.Birthdays.WindowDays != nil {
			c.Birthdays.WindowDays = *layer.Birthdays.WindowDays
		}
		if layer.Birthdays.ShiftWeekends != nil {
			c.Birthdays.ShiftWeekends = *layer.Birthdays.ShiftWeekends
		}
	}
	if layer.Shell != nil {
		if layer.Shell.Prompt != nil {
			c.Shell.Prompt = *layer.Shell.Prompt
		}
		if layer.Shell.NoTUI != nil {
			c.Shell.NoTUI = *layer.Shell.NoTUI
		}
	}
	if layer.Log != nil {
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
		if layer.Log.File != nil {
			c.Log.File = *layer.Log.File
		}
	}
}
