package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/platform/obs"
	"pickup-route-service/internal/ports"
	"regexp"
)

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// FileStore keeps one snapshot file per key under Dir.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

// Path returns the file used for key.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.Dir, unsafeKeyChars.ReplaceAllString(key, "_")+".json")
}

func (s *FileStore) Load(ctx context.Context, key string) (_ *domain.RouteSet, err error) {
	defer obs.Time(ctx, "snapshot.file.Load")(&err)

	path := s.Path(key)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load snapshot %q: %w", key, ports.ErrSnapshotNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %q: %w", path, err)
	}
	defer f.Close()

	rs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %q: %w", path, err)
	}
	return rs, nil
}

// Save writes to a temporary file and renames it into place, so a reader
// never sees a half-written snapshot.
func (s *FileStore) Save(ctx context.Context, key string, rs *domain.RouteSet) (err error) {
	defer obs.Time(ctx, "snapshot.file.Save")(&err)

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("save snapshot: create dir %q: %w", s.Dir, err)
	}

	path := s.Path(key)
	tmp, err := os.CreateTemp(s.Dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("save snapshot: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, rs); err != nil {
		tmp.Close()
		return fmt.Errorf("save snapshot: write %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save snapshot: close %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save snapshot: rename to %q: %w", path, err)
	}

	return nil
}
