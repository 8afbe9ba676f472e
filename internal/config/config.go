// Package config loads notesweep settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/taigrr/notesweep/internal/uri"
	"gopkg.in/yaml.v3"
)

// DefaultAddr is the address of a notes server started with its framework defaults.
const DefaultAddr = "http://localhost:5000"

// Config holds the resolved client settings.
type Config struct {
	Addr            string            `yaml:"addr"`
	Cookie          string            `yaml:"cookie"`
	Headers         map[string]string `yaml:"headers"`
	OmitContentType bool              `yaml:"omit_content_type"`
	Debug           bool              `yaml:"debug"`
}

// DefaultPath returns $XDG_CONFIG_HOME/notesweep/config.yaml (or the platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "notesweep", "config.yaml"), nil
}

// Load reads the config file at path, then applies environment overrides.
// An empty path means DefaultPath, which is allowed to be missing.
func Load(path string) (Config, error) {
	cfg := Config{Addr: DefaultAddr}

	explicit := path != ""
	if !explicit {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if v := os.Getenv("NOTESWEEP_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("NOTESWEEP_COOKIE"); v != "" {
		cfg.Cookie = v
	}
	if v := os.Getenv("NOTESWEEP_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid NOTESWEEP_DEBUG %q: %w", v, err)
		}
		cfg.Debug = debug
	}

	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}

	return cfg, nil
}

// Validate normalizes Addr and reports whether it can be used as a base URL.
func (c *Config) Validate() error {
	addr, err := uri.NormalizeBase(c.Addr)
	if err != nil {
		return err
	}
	c.Addr = addr
	return nil
}
