// Package vault password-protects files. A protected file is replaced on
// disk by a sealed copy (<path>.protected) and tracked in a JSON registry so
// it can be opened, restored, or discarded later.
//
// The sealed format is an index-mixed XOR keystream over a PBKDF2 key. It
// deters casual inspection; it is not a substitute for real encryption.
package vault

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrNotProtected     = errors.New("file is not protected")
	ErrAlreadyProtected = errors.New("file is already protected")
	ErrWrongPassword    = errors.New("incorrect password")
)

// Vault reads and writes one registry file. The zero value is not usable;
// RegistryPath must be set.
type Vault struct {
	RegistryPath string
}

// Status is a registry entry joined with its on-disk state, for listings.
type Status struct {
	Path            string `json:"path"`
	EncryptedPath   string `json:"encryptedPath"`
	OriginalSize    int64  `json:"originalSize"`
	ProtectedAt     string `json:"protectedAt"`
	EncryptedExists bool   `json:"encryptedExists"`
}

// Lock seals path with password, records it, and removes the original.
func (v Vault) Lock(path, password string) (*Entry, error) {
	path = filepath.Clean(path)
	reg, err := EnsureRegistry(v.RegistryPath)
	if err != nil {
		return nil, err
	}
	if _, exists := reg.Entries[path]; exists {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyProtected, path)
	}
	plain, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	sealed, err := Seal(password, plain)
	if err != nil {
		return nil, err
	}
	sealedPath := path + SealedExt
	if err := os.WriteFile(sealedPath, sealed, 0o600); err != nil {
		return nil, fmt.Errorf("write sealed file: %w", err)
	}
	entry := &Entry{
		ID:            uuid.NewString(),
		EncryptedPath: sealedPath,
		PasswordHash:  HashPassword(password),
		OriginalSize:  int64(len(plain)),
		ProtectedAt:   time.Now().UTC(),
	}
	reg.Entries[path] = entry
	if err := SaveRegistryAtomic(v.RegistryPath, reg); err != nil {
		// Keep the original in place if the registry cannot be updated.
		_ = os.Remove(sealedPath)
		return nil, err
	}
	if err := os.Remove(path); err != nil {
		return nil, fmt.Errorf("remove original: %w", err)
	}
	log.Debug().Str("path", path).Str("sealed", sealedPath).Int64("size", entry.OriginalSize).Msg("vault: locked")
	return entry, nil
}

// Open decrypts to <path>.temp and keeps the entry, for temporary access.
// It returns the path of the decrypted copy.
func (v Vault) Open(path, password string) (string, error) {
	path = filepath.Clean(path)
	_, entry, err := v.verified(path, password)
	if err != nil {
		return "", err
	}
	plain, err := v.unsealEntry(entry, password)
	if err != nil {
		return "", err
	}
	out := path + TempSuffix
	if err := os.WriteFile(out, plain, 0o600); err != nil {
		return "", fmt.Errorf("write temporary copy: %w", err)
	}
	log.Debug().Str("path", path).Str("out", out).Msg("vault: opened")
	return out, nil
}

// Restore decrypts back to the original path and forgets the entry.
func (v Vault) Restore(path, password string) error {
	path = filepath.Clean(path)
	reg, entry, err := v.verified(path, password)
	if err != nil {
		return err
	}
	plain, err := v.unsealEntry(entry, password)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, plain, 0o600); err != nil {
		return fmt.Errorf("restore file: %w", err)
	}
	if err := os.Remove(entry.EncryptedPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove sealed file: %w", err)
	}
	delete(reg.Entries, path)
	if err := SaveRegistryAtomic(v.RegistryPath, reg); err != nil {
		return err
	}
	log.Debug().Str("path", path).Msg("vault: restored")
	return nil
}

// Remove deletes the sealed file and the entry without decrypting.
func (v Vault) Remove(path, password string) error {
	path = filepath.Clean(path)
	reg, entry, err := v.verified(path, password)
	if err != nil {
		return err
	}
	if err := os.Remove(entry.EncryptedPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove sealed file: %w", err)
	}
	delete(reg.Entries, path)
	if err := SaveRegistryAtomic(v.RegistryPath, reg); err != nil {
		return err
	}
	log.Debug().Str("path", path).Msg("vault: removed")
	return nil
}

// List returns the registry joined with on-disk existence, sorted by the
// caller if needed (map order is not stable).
func (v Vault) List() ([]Status, error) {
	reg, err := EnsureRegistry(v.RegistryPath)
	if err != nil {
		return nil, err
	}
	out := make([]Status, 0, len(reg.Entries))
	for path, entry := range reg.Entries {
		_, statErr := os.Stat(entry.EncryptedPath)
		out = append(out, Status{
			Path:            path,
			EncryptedPath:   entry.EncryptedPath,
			OriginalSize:    entry.OriginalSize,
			ProtectedAt:     entry.ProtectedAt.Format(time.RFC3339),
			EncryptedExists: statErr == nil,
		})
	}
	return out, nil
}

func (v Vault) verified(path, password string) (*Registry, *Entry, error) {
	reg, err := EnsureRegistry(v.RegistryPath)
	if err != nil {
		return nil, nil, err
	}
	entry, ok := reg.Entries[path]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotProtected, path)
	}
	if HashPassword(password) != entry.PasswordHash {
		return nil, nil, ErrWrongPassword
	}
	return reg, entry, nil
}

func (v Vault) unsealEntry(entry *Entry, password string) ([]byte, error) {
	sealed, err := os.ReadFile(entry.EncryptedPath)
	if err != nil {
		return nil, fmt.Errorf("read sealed file: %w", err)
	}
	return Unseal(password, sealed)
}
