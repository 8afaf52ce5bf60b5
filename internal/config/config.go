// Package config handles the XDG configuration directory and config.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "tasksync"

	// ConfigFile is the optional settings filename inside the config directory.
	ConfigFile = "config.toml"

	// LogFile receives terminal-host logs when debugging.
	LogFile = "tui.log"

	// DefaultBaseURL is where the original server listens.
	DefaultBaseURL = "http://localhost:5000"

	// DefaultListen is the web host address.
	DefaultListen = "127.0.0.1:8080"

	// Environment overrides.
	EnvBaseURL = "TASKSYNC_BASE_URL"
	EnvToken   = "TASKSYNC_TOKEN"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `toml:"-"`

	// BaseURL is the root of the task API; requests go to BaseURL + "/api/tasks".
	BaseURL string `toml:"base_url"`

	// Token, when set, is sent as a bearer token on every request.
	Token string `toml:"token"`

	// Listen is the web host address.
	Listen string `toml:"listen"`

	// RequestTimeout bounds each store call. Zero means no deadline.
	RequestTimeout Duration `toml:"request_timeout"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// Debug enables debug logging.
	Debug bool `toml:"-"`

	// Quiet suppresses informational output.
	Quiet bool `toml:"-"`
}

// Duration is a time.Duration written as a string such as "5s" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	if v < 0 {
		return fmt.Errorf("invalid duration %q: must not be negative", text)
	}
	d.Duration = v
	return nil
}

// Default returns the built-in settings for dir.
func Default(dir string) *Config {
	return &Config{
		Dir:      dir,
		BaseURL:  DefaultBaseURL,
		Listen:   DefaultListen,
		LogLevel: "info",
	}
}

// New creates a Config with the default or specified config directory,
// then applies config.toml (if present) and environment overrides.
// If configDir is empty, uses XDG_CONFIG_HOME/tasksync or $HOME/.config/tasksync.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := Default(dir)

	if err := cfg.load(); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path to config.toml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// LogPath returns the path to the terminal-host log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, LogFile)
}

// HasFile checks if config.toml exists.
func (c *Config) HasFile() bool {
	_, err := os.Stat(c.FilePath())
	return err == nil
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// Validate checks the settings a gateway needs.
func (c *Config) Validate() error {
	base := strings.TrimSpace(c.BaseURL)
	if base == "" {
		return errors.New("base_url is empty")
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		return fmt.Errorf("base_url must start with http:// or https://: %s", base)
	}
	c.BaseURL = strings.TrimRight(base, "/")
	return nil
}

func (c *Config) load() error {
	data, err := os.ReadFile(c.FilePath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", ConfigFile, err)
	}
	if _, err := toml.Decode(string(data), c); err != nil {
		return fmt.Errorf("parse %s: %w", ConfigFile, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		c.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvToken)); v != "" {
		c.Token = v
	}
}
