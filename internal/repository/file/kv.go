// Package file provides the default snapshot backend: one JSON file per key
// under a data directory. Writes go through a temp file, fsync and rename so
// a crash mid-write never leaves a truncated value behind.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mbrell/centsible/centsible-backend/internal/domain"
)

// KV stores each key as <dir>/<key>.json.
type KV struct {
	dir string
}

// New creates the data directory if needed and returns a file-backed KV.
func New(dir string) (*KV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &KV{dir: dir}, nil
}

// Get reads the file for key. A missing file maps to domain.ErrKeyNotFound.
func (s *KV) Get(_ context.Context, key string) ([]byte, error) {
	value, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

// Put writes every pair via temp file + rename. The rename is atomic per
// key; cross-key atomicity on a crash between renames is best-effort, which
// the snapshot codec tolerates by falling back per collection on load.
func (s *KV) Put(_ context.Context, pairs map[string][]byte) error {
	for key, value := range pairs {
		if err := s.writeFile(key, value); err != nil {
			return err
		}
	}
	return nil
}

func (s *KV) writeFile(key string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", key, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; files are not held open between operations.
func (s *KV) Close() error {
	return nil
}

func (s *KV) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
