package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/autoframe/pkg/autolayout"
	"github.com/matzehuels/autoframe/pkg/errors"
)

// Environment variables read by the CLI.
const (
	envConfig   = "AUTOFRAME_CONFIG"
	envAddr     = "AUTOFRAME_ADDR"
	envRedisURL = "AUTOFRAME_REDIS_URL"
)

// =============================================================================
// Config File
// =============================================================================

// Config is the contents of config.toml.
//
//	[defaults]
//	item_spacing = 8
//	padding_top = 16
//
//	[server]
//	addr = "127.0.0.1:7420"
//	session_ttl = "30m"
//	redis_url = "redis://localhost:6379/0"
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Server   ServerConfig   `toml:"server"`
}

// DefaultsConfig holds values used when neither a flag nor a message sets
// them. Unset keys keep the estimated value.
type DefaultsConfig struct {
	ItemSpacing   *int `toml:"item_spacing"`
	PaddingTop    *int `toml:"padding_top"`
	PaddingRight  *int `toml:"padding_right"`
	PaddingBottom *int `toml:"padding_bottom"`
	PaddingLeft   *int `toml:"padding_left"`
}

// Overrides converts the defaults into pipeline overrides.
func (d DefaultsConfig) Overrides() autolayout.Overrides {
	o := autolayout.Overrides{ItemSpacing: d.ItemSpacing}
	pad := autolayout.PaddingOverride{
		Top:    d.PaddingTop,
		Right:  d.PaddingRight,
		Bottom: d.PaddingBottom,
		Left:   d.PaddingLeft,
	}
	if !pad.IsZero() {
		o.Padding = &pad
	}
	return o
}

// ServerConfig configures the serve command. An empty RedisURL keeps
// sessions in process.
type ServerConfig struct {
	Addr       string `toml:"addr"`
	SessionTTL string `toml:"session_ttl"`
	RedisURL   string `toml:"redis_url"`
}

// TTL parses SessionTTL. Zero means the server default.
func (s ServerConfig) TTL() (time.Duration, error) {
	if s.SessionTTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.SessionTTL)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidOptions, err, "invalid session_ttl %q", s.SessionTTL)
	}
	return d, nil
}

// =============================================================================
// Loading
// =============================================================================

// loadConfig reads the config file. An explicit path (flag or AUTOFRAME_CONFIG)
// must exist; the default location is optional.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = os.Getenv(envConfig)
		explicit = path != ""
	}
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return applyEnv(cfg), nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
			}
			return applyEnv(cfg), nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if _, err := cfg.Server.TTL(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if addr := os.Getenv(envAddr); addr != "" {
		cfg.Server.Addr = addr
	}
	if url := os.Getenv(envRedisURL); url != "" {
		cfg.Server.RedisURL = url
	}
	return cfg
}

// configDir returns the config directory using XDG standard (~/.config/autoframe/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
