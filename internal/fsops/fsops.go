// Package fsops inspects and deletes filesystem paths for the rm tool.
package fsops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

var ErrNotExist = errors.New("path does not exist")

// Target describes what a delete would remove, shown to the user before any
// confirmation.
type Target struct {
	Path      string `json:"path"`
	IsDir     bool   `json:"isDir"`
	Size      int64  `json:"size,omitempty"`
	FileCount int    `json:"fileCount,omitempty"`
}

// Inspect stats path. For directories the contained regular-file count is
// approximate: unreadable subtrees are skipped rather than failing the
// preview.
func Inspect(path string) (*Target, error) {
	if path == "" {
		return nil, errors.New("missing path")
	}
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotExist, path)
	}
	if err != nil {
		return nil, err
	}
	t := &Target{Path: path, IsDir: info.IsDir()}
	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("%s is neither a regular file nor a directory", path)
		}
		t.Size = info.Size()
		return t, nil
	}
	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return fs.SkipDir
		}
		if d.Type().IsRegular() {
			t.FileCount++
		}
		return nil
	})
	return t, nil
}

// Delete removes a file, or a directory with everything under it.
func Delete(path string) error {
	t, err := Inspect(path)
	if err != nil {
		return err
	}
	if t.IsDir {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return fmt.Errorf("permission denied: cannot delete %s", path)
		}
		return err
	}
	log.Debug().Str("path", path).Bool("dir", t.IsDir).Msg("fsops: deleted")
	return nil
}
