// Package config loads the optional tocbuilder configuration file. All
// values have working defaults; command-line flags override file values at
// the CLI layer.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the persisted configuration shape.
type Config struct {
	// Toc is the path to the persisted TOC description. Empty means TOC
	// injection is disabled for the run (deliberate opt-out).
	Toc string `yaml:"toc"`

	// SplitChar infers word boundaries in titles derived from filenames.
	SplitChar string `yaml:"split_char"`

	// SkipText lists path substrings excluded from tree generation.
	SkipText []string `yaml:"skip_text"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		SplitChar: "_",
		Logging:   LoggingConfig{Level: "info"},
	}
}

// Load reads a configuration file. Environment variables referenced as
// ${VAR} in the file are expanded; a .env/.env.local file beside the
// process, when present, is loaded first without overriding existing
// process environment.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.SplitChar == "" {
		cfg.SplitChar = "_"
	}
	return cfg, nil
}

// LoadOrDefault reads a configuration file when it exists and falls back to
// defaults otherwise. The configuration file is optional.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// LogLevel maps the configured level name onto a slog level. Unknown names
// fall back to info.
func (c *Config) LogLevel() slog.Level {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadEnvFiles loads the first available .env file. godotenv never
// overrides variables already set in the process environment.
func loadEnvFiles() {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err == nil {
			return
		}
	}
}
