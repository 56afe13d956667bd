// internal/config/config.go
//
// This package handles configuration and the .requestdesk directory.
// The directory only holds settings and logs; requests themselves live in
// memory and are never written here.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DeskDir is the name of the directory created in the working directory
	DeskDir = ".requestdesk"

	// DefaultTimestampLayout mirrors an en-US locale date-time string.
	DefaultTimestampLayout = "1/2/2006, 3:04:05 PM"

	defaultLogLevel = "info"
)

const defaultConfigYAML = `# requestdesk configuration
version: 1

display:
  # Go reference-time layout used for the clock and the Request Date column.
  timestamp_layout: "1/2/2006, 3:04:05 PM"
  # Open the session journal panel on start (toggle with ctrl+l).
  show_journal: false

logging:
  # debug | info | warn | error
  level: info
`

// DisplayConfig controls how values are rendered.
type DisplayConfig struct {
	TimestampLayout string `yaml:"timestamp_layout"`
	ShowJournal     bool   `yaml:"show_journal"`
}

// LoggingConfig controls the structured log file.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// FileConfig models .requestdesk/config.yaml.
type FileConfig struct {
	Version int           `yaml:"version"`
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
}

// Config holds the runtime configuration.
type Config struct {
	// WorkDir is the directory requestdesk was started from
	WorkDir string

	// DeskDir is WorkDir/.requestdesk
	DeskDir string

	// Path is the config file that was (or would have been) read
	Path string

	File FileConfig
}

// InitDeskDir creates the .requestdesk directory with its logs folder and
// writes a default config.yaml when none exists.
//
// Structure created:
// .requestdesk/
// ├── config.yaml
// └── logs/
func InitDeskDir(workDir string) error {
	deskDir := filepath.Join(workDir, DeskDir)
	if err := os.MkdirAll(filepath.Join(deskDir, "logs"), 0o755); err != nil {
		return err
	}
	return ensureConfigFile(filepath.Join(deskDir, "config.yaml"))
}

// NewConfig loads configuration for workDir. An empty path means
// .requestdesk/config.yaml; a missing file yields the defaults.
func NewConfig(workDir, path string) (*Config, error) {
	cfg := &Config{
		WorkDir: workDir,
		DeskDir: filepath.Join(workDir, DeskDir),
		File:    defaultFileConfig(),
	}
	cfg.Path = strings.TrimSpace(path)
	if cfg.Path == "" {
		cfg.Path = filepath.Join(cfg.DeskDir, "config.yaml")
	} else if !filepath.IsAbs(cfg.Path) {
		cfg.Path = filepath.Join(workDir, cfg.Path)
	}

	if err := cfg.load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.DeskDir, "logs")
}

// JournalPath returns the session journal file.
func (c *Config) JournalPath() string {
	return filepath.Join(c.LogsDir(), "journal.log")
}

// LogPath returns the default structured log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.LogsDir(), "requestdesk.log")
}

// TimestampLayout returns the layout for clock and date rendering.
func (c *Config) TimestampLayout() string {
	return c.File.Display.TimestampLayout
}

// ShowJournal reports whether the journal panel starts open.
func (c *Config) ShowJournal() bool {
	return c.File.Display.ShowJournal
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	level, _ := parseLevel(c.File.Logging.Level)
	return level
}

func (c *Config) load() error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", c.Path, err)
	}

	var parsed FileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", c.Path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.File = parsed
	return nil
}

func defaultFileConfig() FileConfig {
	return FileConfig{
		Version: 1,
		Display: DisplayConfig{TimestampLayout: DefaultTimestampLayout},
		Logging: LoggingConfig{Level: defaultLogLevel},
	}
}

func (fc *FileConfig) applyDefaults() {
	if fc.Version == 0 {
		fc.Version = 1
	}
}

func (fc *FileConfig) normalize() {
	fc.Display.TimestampLayout = strings.TrimSpace(fc.Display.TimestampLayout)
	if fc.Display.TimestampLayout == "" {
		fc.Display.TimestampLayout = DefaultTimestampLayout
	}
	fc.Logging.Level = strings.ToLower(strings.TrimSpace(fc.Logging.Level))
	if fc.Logging.Level == "" {
		fc.Logging.Level = defaultLogLevel
	}
}

func (fc *FileConfig) validate() error {
	if fc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if _, err := parseLevel(fc.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	// A layout with no reference-time fields renders as a constant string.
	probe := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
	if probe.Format(fc.Display.TimestampLayout) == fc.Display.TimestampLayout {
		return fmt.Errorf("display.timestamp_layout %q contains no time fields", fc.Display.TimestampLayout)
	}
	return nil
}

func parseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown level %q", value)
	}
}

func ensureConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0644)
}
