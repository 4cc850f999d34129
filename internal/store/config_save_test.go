package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("TODOFORM_CONFIG_DIR", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DataDir != "" || cfg.Format != "" || cfg.TUI.Glyphs != "" {
		t.Fatalf("expected zero config; got %+v", cfg)
	}
}

func TestSaveConfig_RoundTripTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TODOFORM_CONFIG_DIR", dir)

	cfg := &Config{}
	for k, v := range map[string]string{
		"data_dir":   "/tmp/form-data",
		"log_level":  "DEBUG",
		"format":     "yaml",
		"tui.glyphs": "ascii",
	} {
		if err := cfg.Set(k, v); err != nil {
			t.Fatalf("Set(%s): %v", k, err)
		}
	}
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	if err != nil {
		t.Fatalf("read config.toml: %v", err)
	}
	if !strings.Contains(string(raw), `data_dir = "/tmp/form-data"`) || !strings.Contains(string(raw), "[tui]") {
		t.Fatalf("unexpected toml:\n%s", raw)
	}

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.DataDir != "/tmp/form-data" || got.LogLevel != "debug" || got.Format != "yaml" || got.TUI.Glyphs != "ascii" {
		t.Fatalf("unexpected config after round trip: %+v", got)
	}
}

func TestLoadConfig_MalformedIsAnError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TODOFORM_CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("data_dir = [unterminated"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestConfigSet_RejectsUnknownAndInvalid(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	if err := cfg.Set("colour", "red"); err == nil {
		t.Fatalf("expected unknown key error")
	}
	if err := cfg.Set("format", "xml"); err == nil {
		t.Fatalf("expected invalid format error")
	}
	if err := cfg.Set("tui.glyphs", "emoji"); err == nil {
		t.Fatalf("expected invalid glyphs error")
	}
}

func TestResolveDir_Precedence(t *testing.T) {
	cfgDir := t.TempDir()
	t.Setenv("TODOFORM_CONFIG_DIR", cfgDir)

	if got, _ := ResolveDir("/explicit", &Config{DataDir: "/from-config"}); got != "/explicit" {
		t.Fatalf("explicit dir should win; got %q", got)
	}
	if got, _ := ResolveDir("", &Config{DataDir: "/from-config"}); got != "/from-config" {
		t.Fatalf("config data_dir should be used; got %q", got)
	}

	// Discovery from a project-local .todoform dir.
	root := t.TempDir()
	local := filepath.Join(root, ".todoform")
	if err := os.MkdirAll(filepath.Join(root, "a", "b"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.MkdirAll(local, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if found, ok := DiscoverDir(filepath.Join(root, "a", "b")); !ok || found != local {
		t.Fatalf("expected discovery of %s; got %q ok=%v", local, found, ok)
	}
}
