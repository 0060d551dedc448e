// Package config handles mcpi configuration and paths.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/d2verb/mcpi/internal/connection"
	"github.com/d2verb/mcpi/internal/logging"
)

// Defaults for a local game.
const (
	DefaultHost = "localhost"
	DefaultPort = 4711
)

// Environment variables that override the target address.
const (
	EnvHost = "JRP_API_HOST"
	EnvPort = "JRP_API_PORT"
)

// Paths holds common paths used by mcpi.
type Paths struct {
	Home   string
	Config string
	Logs   string
	Log    string
}

// GetPaths returns the paths for the current user.
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return pathsUnder(filepath.Join(home, ".mcpi")), nil
}

func pathsUnder(mcpiHome string) *Paths {
	logsDir := filepath.Join(mcpiHome, "logs")
	return &Paths{
		Home:   mcpiHome,
		Config: filepath.Join(mcpiHome, "config.yaml"),
		Logs:   logsDir,
		Log:    filepath.Join(logsDir, "mcpi.log"),
	}
}

// EnsureDirectories creates the required directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Home, p.Logs} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// Duration is a time.Duration written as "10s" in YAML.
type Duration time.Duration

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	// Path is the log file; "~/" is expanded. Empty uses Paths.Log.
	Path       string `yaml:"path,omitempty"`
	Level      string `yaml:"level,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
	MaxAgeDays int    `yaml:"max_age_days,omitempty"`
}

// Config is the user configuration, usually read from ~/.mcpi/config.yaml.
type Config struct {
	Host           string    `yaml:"host"`
	Port           int       `yaml:"port"`
	Player         string    `yaml:"player,omitempty"`
	ConnectTimeout Duration  `yaml:"connect_timeout"`
	ReadTimeout    Duration  `yaml:"read_timeout"`
	Debug          bool      `yaml:"debug,omitempty"`
	Log            LogConfig `yaml:"log,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Host:           DefaultHost,
		Port:           DefaultPort,
		ConnectTimeout: Duration(connection.DefaultConnectTimeout),
		ReadTimeout:    Duration(connection.DefaultReadTimeout),
		Log:            LogConfig{Level: "info"},
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ApplyEnv overrides the host and port from EnvHost and EnvPort. A port that
// is not an integer is ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if host, ok := lookup(EnvHost); ok {
		c.Host = host
	}
	if raw, ok := lookup(EnvPort); ok {
		if port, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			c.Port = port
		}
	}
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.Host == "" {
		result = multierror.Append(result, errors.New("host must not be empty"))
	}
	if c.Port < 1 || c.Port > 65535 {
		result = multierror.Append(result, fmt.Errorf("port %d out of range 1-65535", c.Port))
	}
	if c.ConnectTimeout <= 0 {
		result = multierror.Append(result, errors.New("connect_timeout must be positive"))
	}
	if c.ReadTimeout <= 0 {
		result = multierror.Append(result, errors.New("read_timeout must be positive"))
	}
	if _, err := c.LogLevel(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// LogLevel parses Log.Level. Debug forces the debug level.
func (c Config) LogLevel() (slog.Level, error) {
	if c.Debug {
		return slog.LevelDebug, nil
	}
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return level, nil
}

// LogFile returns the rotation settings for the log file, falling back to
// the default log path under paths.
func (c Config) LogFile(paths *Paths) (logging.Config, error) {
	path := paths.Log
	if c.Log.Path != "" {
		expanded, err := expandHome(c.Log.Path)
		if err != nil {
			return logging.Config{}, err
		}
		path = expanded
	}

	lc := logging.DefaultConfig(path)
	if c.Log.MaxSizeMB > 0 {
		lc.MaxSizeMB = c.Log.MaxSizeMB
	}
	if c.Log.MaxBackups > 0 {
		lc.MaxBackups = c.Log.MaxBackups
	}
	if c.Log.MaxAgeDays > 0 {
		lc.MaxAgeDays = c.Log.MaxAgeDays
	}
	return lc, nil
}

// Address returns host:port.
func (c Config) Address() string {
	return c.Connection().Address()
}

// Connection converts the file settings into connection settings.
func (c Config) Connection() connection.Config {
	return connection.Config{
		Host:           c.Host,
		Port:           c.Port,
		ConnectTimeout: time.Duration(c.ConnectTimeout),
		ReadTimeout:    time.Duration(c.ReadTimeout),
		Debug:          c.Debug,
	}
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand home dir: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
