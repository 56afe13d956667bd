package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewConfigDefaultsWhenMissing(t *testing.T) {
	workDir := t.TempDir()
	c, err := NewConfig(workDir, "")
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if c.File.Version != 1 {
		t.Fatalf("expected default version == 1, got %d", c.File.Version)
	}
	if c.TimestampLayout() != DefaultTimestampLayout {
		t.Fatalf("expected default layout, got %q", c.TimestampLayout())
	}
	if c.LogLevel() != slog.LevelInfo {
		t.Fatalf("expected info level, got %v", c.LogLevel())
	}
	if c.Path != filepath.Join(workDir, DeskDir, "config.yaml") {
		t.Fatalf("unexpected config path %s", c.Path)
	}
}

func TestInitDeskDirWritesParsableDefault(t *testing.T) {
	workDir := t.TempDir()
	if err := InitDeskDir(workDir); err != nil {
		t.Fatalf("InitDeskDir: %v", err)
	}
	if info, err := os.Stat(filepath.Join(workDir, DeskDir, "logs")); err != nil || !info.IsDir() {
		t.Fatalf("expected logs directory, err=%v", err)
	}
	c, err := NewConfig(workDir, "")
	if err != nil {
		t.Fatalf("default config should parse: %v", err)
	}
	if c.TimestampLayout() != DefaultTimestampLayout || c.ShowJournal() {
		t.Fatalf("unexpected defaults: %+v", c.File)
	}

	// A second init must not clobber user edits.
	custom := []byte("version: 1\ndisplay:\n  show_journal: true\n")
	if err := os.WriteFile(c.Path, custom, 0644); err != nil {
		t.Fatal(err)
	}
	if err := InitDeskDir(workDir); err != nil {
		t.Fatalf("InitDeskDir (second run): %v", err)
	}
	data, err := os.ReadFile(c.Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(custom) {
		t.Fatalf("config was overwritten: %q", data)
	}
}

func TestNewConfigParsesYaml(t *testing.T) {
	workDir := t.TempDir()
	configYAML := strings.TrimSpace(`
version: 1
display:
  timestamp_layout: " 2006-01-02 15:04 "
  show_journal: true
logging:
  level: DEBUG
`)
	path := filepath.Join(workDir, "desk.yaml")
	if err := os.WriteFile(path, []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := NewConfig(workDir, "desk.yaml")
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if c.Path != path {
		t.Fatalf("relative path not resolved: %s", c.Path)
	}
	if c.TimestampLayout() != "2006-01-02 15:04" {
		t.Fatalf("layout not normalized: %q", c.TimestampLayout())
	}
	if !c.ShowJournal() {
		t.Fatalf("expected show_journal true")
	}
	if c.LogLevel() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", c.LogLevel())
	}
}

func TestNewConfigValidation(t *testing.T) {
	cases := map[string]string{
		"bad level":   "version: 1\nlogging:\n  level: chatty\n",
		"bad layout":  "version: 1\ndisplay:\n  timestamp_layout: \"today\"\n",
		"bad yaml":    "version: [1\n",
		"bad version": "version: -2\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			workDir := t.TempDir()
			path := filepath.Join(workDir, "config.yaml")
			if err := os.WriteFile(path, []byte(body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := NewConfig(workDir, path); err == nil {
				t.Fatalf("expected validation error but got none")
			}
		})
	}
}
