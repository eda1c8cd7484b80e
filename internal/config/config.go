package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	gerrors "github.com/codeesasi/Ai-Media-Guardian/internal/errors"
)

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.guardianrc, $XDG_CONFIG_HOME/guardian/config.toml, ~/.config/guardian/config.toml
func Load() (*Config, error) {
	cfg := &Config{}

	path := findConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", gerrors.ErrInvalidConfig, path, err)
		}
	}

	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	cfg.Library.Root = ExpandPath(cfg.Library.Root)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", gerrors.ErrConfigNotFound, path)
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", gerrors.ErrInvalidConfig, path, err)
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	cfg.Library.Root = ExpandPath(cfg.Library.Root)
	return cfg, nil
}

// DefaultPath returns where 'config init' writes a new file.
func DefaultPath() string {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".", "guardian.toml")
		}
		xdgConfig = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfig, "guardian", "config.toml")
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, ".guardianrc"),
		DefaultPath(),
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// ExpandPath resolves a leading ~ and environment variables.
func ExpandPath(path string) string {
	trimmed := os.ExpandEnv(strings.TrimSpace(path))
	if trimmed == "" {
		return trimmed
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return trimmed
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return trimmed
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Player
	if v := os.Getenv("GUARDIAN_PLAYER_PATH"); v != "" {
		cfg.Player.Path = v
	}
	if v := os.Getenv("GUARDIAN_PLAYER_HOST"); v != "" {
		cfg.Player.Host = v
	}
	if v := os.Getenv("GUARDIAN_PLAYER_PORT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Player.Port = i
		}
	}
	if v := os.Getenv("GUARDIAN_PLAYER_PASSWORD"); v != "" {
		cfg.Player.Password = v
	}
	if v := os.Getenv("GUARDIAN_PLAYER_STARTUP_WAIT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Player.StartupWait = i
		}
	}

	// RC
	if v := os.Getenv("GUARDIAN_RC_ADDRESS"); v != "" {
		cfg.RC.Address = v
	}

	// Library
	if v := os.Getenv("GUARDIAN_LIBRARY_ROOT"); v != "" {
		cfg.Library.Root = v
	}
	if v := os.Getenv("GUARDIAN_LIBRARY_EXTENSIONS"); v != "" {
		cfg.Library.Extensions = splitList(v)
	}

	// Log
	if v := os.Getenv("GUARDIAN_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("GUARDIAN_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// StartupDelay is how long Start waits after launching VLC.
func (c PlayerConfig) StartupDelay() time.Duration {
	return time.Duration(c.StartupWait) * time.Second
}

// Timeout is the fixed deadline for a single http command.
func (c PlayerConfig) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// StatusURL is the query-command endpoint of the http interface.
func (c PlayerConfig) StatusURL() string {
	return fmt.Sprintf("http://%s:%d/requests/status.json", c.Host, c.Port)
}

// WebURL is the root of VLC's browser interface.
func (c PlayerConfig) WebURL() string {
	return fmt.Sprintf("http://%s:%d/", c.Host, c.Port)
}

// ReadTimeout bounds a single rc socket exchange.
func (c RCConfig) ReadTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Millisecond
}
