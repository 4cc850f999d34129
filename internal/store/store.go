package store

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	localDirName   = ".todoform"
	sqliteFileName = "form.sqlite"
)

// Store is the on-disk key-value store for form snapshots. All state lives in a
// single SQLite file under Dir.
type Store struct {
	Dir string
}

// DiscoverDir walks up from start looking for a project-local .todoform dir.
func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, localDirName)
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// ResolveDir picks the data directory:
// 1) explicit (flag/env)
// 2) data_dir from config
// 3) a .todoform dir found above cwd
// 4) <config dir>/data
func ResolveDir(explicit string, cfg *Config) (string, error) {
	if v := strings.TrimSpace(explicit); v != "" {
		return v, nil
	}
	if cfg != nil && strings.TrimSpace(cfg.DataDir) != "" {
		return expandHome(strings.TrimSpace(cfg.DataDir))
	}
	if cwd, err := os.Getwd(); err == nil {
		if found, ok := DiscoverDir(cwd); ok {
			return found, nil
		}
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "data"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, sqliteFileName)
}

// Path is the SQLite file backing this store.
func (s Store) Path() string { return s.sqlitePath() }

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
