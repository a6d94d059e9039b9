package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"storefront/internal/ports/output"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Compile-time check to ensure SnapshotStorage implements output.SnapshotStorage
var _ output.SnapshotStorage = (*SnapshotStorage)(nil)

const snapshotExt = ".json"

// keyReplacer maps storage keys onto file names that are safe on every platform
var keyReplacer = strings.NewReplacer(":", "_", "/", "_", "\\", "_", "..", "_")

// SnapshotStorage struct - Output adapter writing one JSON file per cart
type SnapshotStorage struct {
	fs  afero.Fs
	dir string
}

// NewSnapshotStorage creates the directory if needed and returns a storage rooted at dir
func NewSnapshotStorage(fs afero.Fs, dir string) (*SnapshotStorage, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
	}
	logrus.Infof("Cart snapshots are stored in %s", dir)
	return &SnapshotStorage{
		fs:  fs,
		dir: dir,
	}, nil
}

func (s *SnapshotStorage) path(key string) string {
	return filepath.Join(s.dir, keyReplacer.Replace(key)+snapshotExt)
}

// Get reads the snapshot file. A missing file returns (nil, nil).
func (s *SnapshotStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, s.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set writes the snapshot to a temp file and renames it over the previous one,
// so readers never observe a half written file.
func (s *SnapshotStorage) Set(ctx context.Context, key string, value []byte) error {
	target := s.path(key)
	tmp := target + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, value, 0o644); err != nil {
		return err
	}
	if err := s.fs.Rename(tmp, target); err != nil {
		_ = s.fs.Remove(tmp)
		return err
	}
	return nil
}

// Delete removes the snapshot file. A missing file is not an error.
func (s *SnapshotStorage) Delete(ctx context.Context, key string) error {
	err := s.fs.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
