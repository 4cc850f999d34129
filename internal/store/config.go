package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const configFileName = "config.toml"

// Config is the user-level configuration (~/.todoform/config.toml).
type Config struct {
	// DataDir overrides where the form store lives.
	DataDir string `toml:"data_dir,omitempty" json:"dataDir,omitempty" yaml:"dataDir,omitempty"`

	// LogLevel is one of debug|info|warn|error (default: warn).
	LogLevel string `toml:"log_level,omitempty" json:"logLevel,omitempty" yaml:"logLevel,omitempty"`

	// LogFile receives logs while the TUI owns the terminal. Empty disables TUI logging.
	LogFile string `toml:"log_file,omitempty" json:"logFile,omitempty" yaml:"logFile,omitempty"`

	// Format is the default CLI output format (json|edn|yaml).
	Format string `toml:"format,omitempty" json:"format,omitempty" yaml:"format,omitempty"`

	TUI TUIConfig `toml:"tui" json:"tui" yaml:"tui"`
}

type TUIConfig struct {
	// Glyphs selects the glyph set ("unicode" or "ascii").
	Glyphs string `toml:"glyphs,omitempty" json:"glyphs,omitempty" yaml:"glyphs,omitempty"`
}

// ConfigKeys lists the keys accepted by Config.Set, in display order.
var ConfigKeys = []string{"data_dir", "log_level", "log_file", "format", "tui.glyphs"}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.todoform).
	if v := strings.TrimSpace(os.Getenv("TODOFORM_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, localDirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// LoadConfig reads the config file. A missing file yields the zero Config.
func LoadConfig() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &cfg, nil
}

func SaveConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("nil config")
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	return atomicWriteFile(dir, "config.toml.*.tmp", path, buf.Bytes(), 0o600)
}

// Set updates one config key by its TOML name.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch strings.TrimSpace(key) {
	case "data_dir":
		c.DataDir = value
	case "log_level":
		switch strings.ToLower(value) {
		case "", "debug", "info", "warn", "error":
			c.LogLevel = strings.ToLower(value)
		default:
			return fmt.Errorf("invalid log_level %q (want debug|info|warn|error)", value)
		}
	case "log_file":
		c.LogFile = value
	case "format":
		switch value {
		case "", "json", "edn", "yaml":
			c.Format = value
		default:
			return fmt.Errorf("invalid format %q (want json|edn|yaml)", value)
		}
	case "tui.glyphs":
		switch strings.ToLower(value) {
		case "", "unicode", "ascii":
			c.TUI.Glyphs = strings.ToLower(value)
		default:
			return fmt.Errorf("invalid tui.glyphs %q (want unicode|ascii)", value)
		}
	default:
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(ConfigKeys, ", "))
	}
	return nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
