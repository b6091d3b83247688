package vault

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry is one protected file in the registry, keyed by its original path.
type Entry struct {
	ID            string    `json:"id"`
	EncryptedPath string    `json:"encryptedPath"`
	PasswordHash  string    `json:"passwordHash"`
	OriginalSize  int64     `json:"originalSize"`
	ProtectedAt   time.Time `json:"protectedAt"`
}

type Registry struct {
	Version int               `json:"version"`
	Entries map[string]*Entry `json:"entries"`
}

func NewRegistry() *Registry {
	return &Registry{Version: 1, Entries: map[string]*Entry{}}
}

func DefaultRegistryPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(dir) == "" {
		return "", errors.New("cannot determine user config dir")
	}
	return filepath.Join(dir, "fileguard", "protected.json"), nil
}

func LoadRegistry(path string) (*Registry, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("missing registry path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg Registry
	if err := json.Unmarshal(b, &reg); err != nil {
		return nil, err
	}
	if reg.Entries == nil {
		reg.Entries = map[string]*Entry{}
	}
	return &reg, nil
}

// EnsureRegistry loads the registry, creating an empty one when the file does
// not exist yet.
func EnsureRegistry(path string) (*Registry, error) {
	reg, err := LoadRegistry(path)
	if err == nil {
		return reg, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return NewRegistry(), nil
	}
	return nil, err
}

func SaveRegistryAtomic(path string, reg *Registry) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("missing registry path")
	}
	if reg == nil {
		return errors.New("missing registry")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return err
	}
	payload = append(payload, '\n')
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
