// Package obfuscate XORs files against a password-derived keystream. An
// obfuscated file replaces its original with a .obf sibling; the transform is
// self-inverse, so deobfuscation is the same XOR. This hides content from a
// casual directory listing, nothing more.
package obfuscate

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	// Ext marks obfuscated files.
	Ext = ".obf"
	// fallbackExt is appended when deobfuscating a file that lacks Ext.
	fallbackExt = ".deobf"

	keystreamLen = 256
)

var ErrEmptyPassword = errors.New("password cannot be empty")

// Keystream derives the XOR keystream: the SHA-256 digest of the password,
// repeated out to 256 bytes.
func Keystream(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, 0, keystreamLen)
	for len(out) < keystreamLen {
		out = append(out, sum[:]...)
	}
	return out[:keystreamLen]
}

func apply(data, key []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}
	return out
}

// File obfuscates a single file, writes <path>.obf, and removes the original
// only after the obfuscated copy is on disk. Returns the output path.
func File(path, password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	out := path + Ext
	if err := os.WriteFile(out, apply(data, Keystream(password)), 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	if err := os.Remove(path); err != nil {
		return "", fmt.Errorf("remove original %s: %w", path, err)
	}
	log.Debug().Str("path", path).Str("out", out).Msg("obfuscate: file")
	return out, nil
}

// Restore deobfuscates a single file and removes the obfuscated copy on
// success. A file without the .obf extension gets .deobf appended instead of
// guessing an original name.
func Restore(path, password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	out := path + fallbackExt
	if strings.HasSuffix(path, Ext) {
		out = strings.TrimSuffix(path, Ext)
	} else {
		log.Warn().Str("path", path).Msgf("obfuscate: input lacks %s extension, writing %s", Ext, out)
	}
	if err := os.WriteFile(out, apply(data, Keystream(password)), 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	if err := os.Remove(path); err != nil {
		return "", fmt.Errorf("remove obfuscated %s: %w", path, err)
	}
	log.Debug().Str("path", path).Str("out", out).Msg("obfuscate: restore")
	return out, nil
}

// TreeResult summarizes a recursive run. Total counts every regular file
// seen, including ones skipped because of their extension.
type TreeResult struct {
	Succeeded int `json:"succeeded"`
	Total     int `json:"total"`
	Failed    int `json:"failed"`
}

// Tree obfuscates every regular file under root, skipping files that are
// already .obf. Per-file failures are logged and counted, not fatal.
func Tree(root, password string) (TreeResult, error) {
	return walkTree(root, password, false)
}

// RestoreTree deobfuscates every .obf file under root.
func RestoreTree(root, password string) (TreeResult, error) {
	return walkTree(root, password, true)
}

func walkTree(root, password string, restore bool) (TreeResult, error) {
	var res TreeResult
	if password == "" {
		return res, ErrEmptyPassword
	}
	info, err := os.Stat(root)
	if err != nil {
		return res, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return res, fmt.Errorf("%s is not a directory", root)
	}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		res.Total++
		isObf := strings.HasSuffix(path, Ext)
		if restore != isObf {
			return nil
		}
		var opErr error
		if restore {
			_, opErr = Restore(path, password)
		} else {
			_, opErr = File(path, password)
		}
		if opErr != nil {
			res.Failed++
			log.Warn().Err(opErr).Str("path", path).Msg("obfuscate: skipping file")
			return nil
		}
		res.Succeeded++
		return nil
	})
	return res, err
}
