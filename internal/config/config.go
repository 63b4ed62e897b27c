// Package config resolves tool configuration from defaults, an optional
// YAML file, and SWAY_SESSION_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/swaykit/sway-session/internal/sway"
)

// EnvPrefix is the environment variable prefix. Variables map onto
// config keys by dropping the prefix and lowering underscores to dots:
// SWAY_SESSION_HISTORY_KEEP overrides history.keep.
const EnvPrefix = "SWAY_SESSION_"

// Config is the resolved tool configuration.
type Config struct {
	File    string  `koanf:"file"`    // state file path; empty means the cache default
	Swaymsg string  `koanf:"swaymsg"` // binary for the subprocess transport
	History History `koanf:"history"`
	Log     Log     `koanf:"log"`
}

// History controls the snapshot archive.
type History struct {
	Enabled bool          `koanf:"enabled"` // archive a copy on every save
	Dir     string        `koanf:"dir"`     // archive directory; empty means the cache default
	Keep    time.Duration `koanf:"keep"`    // retention window for pruning
}

// Log controls diagnostics.
type Log struct {
	Level string `koanf:"level"`
}

func defaults() map[string]any {
	return map[string]any{
		"file":    "",
		"swaymsg": sway.DefaultBinary,
		"history": map[string]any{
			"enabled": false,
			"dir":     "",
			"keep":    "168h",
		},
		"log": map[string]any{
			"level": "info",
		},
	}
}

// DefaultFilePath returns the default config file location,
// <user config dir>/sway-session/config.yaml.
func DefaultFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "sway-session", "config.yaml"), nil
}

// Load resolves the configuration. path names the config file; empty
// means the default location. A missing file at the default location is
// fine, a missing file the caller asked for by name is an error, and a
// malformed file is always an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(mapProvider(defaults()), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	explicit := path != ""
	if !explicit {
		if def, err := DefaultFilePath(); err == nil {
			path = def
		}
	}
	if path != "" {
		err := k.Load(file.Provider(path), yaml.Parser())
		if err != nil && (explicit || !errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func envTransform(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "_", ".")
}

// mapProvider feeds the nested defaults map to koanf. Map providers only
// implement Read; koanf never asks them for bytes.
type mapProvider map[string]any

func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("config: map provider has no byte form")
}

func (m mapProvider) Read() (map[string]any, error) {
	return m, nil
}
