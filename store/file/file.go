// Package file is a filesystem-backed document store. One document per
// file, named by a digest of the key. Writes go through a temp file plus
// rename, so readers never observe a half-written document. TTLs are not
// supported; documents live until deleted.
package file

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ayvens/hoard/internal/util"
	st "github.com/ayvens/hoard/store"
)

type Store struct {
	dir string
}

var _ st.Store = (*Store)(nil)

// New creates dir (and parents) if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte, _ int64, _ time.Duration) (bool, error) {
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return false, err
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return false, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return false, err
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return false, err
	}
	return true, nil
}

func (s *Store) Del(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *Store) Close(_ context.Context) error { return nil }

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, util.FileName(key))
}
