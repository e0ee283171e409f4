package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile = "journal.yaml"
	defaultTimezone   = "Local"
	configPathEnv     = "JOURNAL_CONFIG"
	rootEnv           = "JOURNAL_ROOT"
	logLevelEnv       = "JOURNAL_LOG_LEVEL"
)

// Config holds the project layout and the ambient CLI settings.
type Config struct {
	Root       string         `yaml:"root"`
	Index      string         `yaml:"index"`
	EntriesDir string         `yaml:"entriesDir"`
	Timezone   string         `yaml:"timezone"`
	Logging    LoggingConfig  `yaml:"logging"`
	Output     OutputConfig   `yaml:"output"`
	location   *time.Location `yaml:"-"`
}

// LoggingConfig controls the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// OutputConfig controls terminal colors: auto, always or never.
type OutputConfig struct {
	Colors string `yaml:"colors"`
}

// Location resolves the timezone used to date new entries.
func (c Config) Location() *time.Location {
	if c.location != nil {
		return c.location
	}
	return time.Local
}

// Load reads YAML configuration and applies environment overrides.
// An explicit path (argument or JOURNAL_CONFIG) must exist; the default
// journal.yaml in the working directory is optional.
func Load(path string) (Config, error) {
	cfg := defaultConfig()

	required := true
	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path == "" {
		path = defaultConfigFile
		required = false
	}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !required:
	case err != nil:
		return Config{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	default:
		var fileCfg Config
		if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
			return Config{}, fmt.Errorf("config: cannot parse %s: %w", path, err)
		}
		cfg = mergeConfig(cfg, fileCfg)
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezone()

	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(rootEnv); v != "" {
		c.Root = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func (c *Config) bindTimezone() {
	tz := c.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("config: unknown timezone %s, reverting to %s", tz, defaultTimezone)
		loc = time.Local
	}
	c.location = loc
}

func mergeConfig(base, override Config) Config {
	if override.Root != "" {
		base.Root = override.Root
	}
	if override.Index != "" {
		base.Index = override.Index
	}
	if override.EntriesDir != "" {
		base.EntriesDir = override.EntriesDir
	}
	if override.Timezone != "" {
		base.Timezone = override.Timezone
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Output.Colors != "" {
		base.Output.Colors = override.Output.Colors
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Root:       ".",
		Index:      "index.html",
		EntriesDir: "entries",
		Timezone:   defaultTimezone,
		Logging:    LoggingConfig{Level: "info"},
		Output:     OutputConfig{Colors: "auto"},
		location:   time.Local,
	}
}
