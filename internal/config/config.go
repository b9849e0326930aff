// Package config loads resub settings from a TOML file.
//
// Values come from Default, then the config file when one exists, then
// environment overrides. Command-line flags are applied last by the cli
// package. Always call Validate before using a loaded Config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/ojji/Resub/internal/charset"
)

const (
	EnvConfigPath    = "RESUB_CONFIG"
	EnvInputEncoding = "RESUB_INPUT_ENCODING"
)

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config holds every setting the CLI reads from disk.
type Config struct {
	InputEncoding      string  `toml:"input_encoding"`
	FlushTrailingBlock bool    `toml:"flush_trailing_block"`
	Logging            Logging `toml:"logging"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		InputEncoding: charset.Default,
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultPath returns the config file location used when none is given.
func DefaultPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return expandPath(p)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "resub", "config.toml"), nil
}

// Load reads the config at path, or at DefaultPath when path is empty. It
// returns the resolved path and whether a file was found there. A missing
// file is not an error.
func Load(path string) (*Config, string, bool, error) {
	resolved := path
	var err error
	if strings.TrimSpace(resolved) == "" {
		resolved, err = DefaultPath()
	} else {
		resolved, err = expandPath(resolved)
	}
	if err != nil {
		return nil, "", false, err
	}

	cfg := Default()
	exists := true
	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		exists = false
	case err != nil:
		return nil, resolved, false, fmt.Errorf("read config %s: %w", resolved, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, resolved, true, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	}

	cfg.applyEnv()
	cfg.normalize()
	return &cfg, resolved, exists, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvInputEncoding)); v != "" {
		c.InputEncoding = v
	}
}

func (c *Config) normalize() {
	c.InputEncoding = strings.TrimSpace(c.InputEncoding)
	if c.InputEncoding == "" {
		c.InputEncoding = charset.Default
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if _, err := charset.Lookup(c.InputEncoding); err != nil {
		return fmt.Errorf("input_encoding: %w", err)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}

// Encode renders c as TOML.
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Clean(path), nil
}
