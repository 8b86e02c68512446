package settings

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/rileyhilliard/statboard/internal/errors"
	"gopkg.in/yaml.v3"
)

// Store persists settings. Load returns (nil, nil) when nothing has been
// saved yet so callers can tell a first run from a saved default.
type Store interface {
	Load() (*Settings, error)
	Save(*Settings) error
}

// FileStore keeps settings as YAML in a single file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the file and merges it over Defaults, so keys missing from the
// file keep their default values.
func (s *FileStore) Load() (*Settings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapWithCode(err, errors.ErrSettings,
			"Cannot read settings file "+s.path,
			"Check file permissions")
	}

	loaded := Defaults()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSettings,
			"Settings file is not valid YAML: "+s.path,
			"Fix the file or run 'statboard settings reset'")
	}
	return &loaded, nil
}

// Save writes settings atomically via a temp file and rename.
func (s *FileStore) Save(st *Settings) error {
	data, err := yaml.Marshal(st)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrSettings, "Cannot encode settings", "")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrSettings,
			"Cannot create settings directory "+dir,
			"Check directory permissions or set settings_file in your config")
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.yaml")
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrSettings,
			"Cannot write settings to "+dir,
			"Check directory permissions")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.WrapWithCode(err, errors.ErrSettings, "Cannot write settings file", "")
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapWithCode(err, errors.ErrSettings, "Cannot write settings file", "")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.WrapWithCode(err, errors.ErrSettings,
			"Cannot replace settings file "+s.path,
			"Check file permissions")
	}
	return nil
}

// MemoryStore keeps settings in memory. Useful for tests and --no-save runs.
type MemoryStore struct {
	mu      sync.Mutex
	saved   *Settings
	saves   int
	SaveErr error
}

// NewMemoryStore creates a store, optionally pre-seeded.
func NewMemoryStore(initial *Settings) *MemoryStore {
	m := &MemoryStore{}
	if initial != nil {
		cp := *initial
		m.saved = &cp
	}
	return m
}

func (m *MemoryStore) Load() (*Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saved == nil {
		return nil, nil
	}
	cp := *m.saved
	return &cp, nil
}

func (m *MemoryStore) Save(s *Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	cp := *s
	m.saved = &cp
	m.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
