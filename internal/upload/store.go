package upload

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store persists uploads for the lifetime of a single request.
type Store struct {
	dir string
}

// NewStore creates the upload directory if it does not exist.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string { return s.dir }

// Save writes data under a collision-free name derived from the declared
// filename and returns the path plus a cleanup func. Callers defer the
// cleanup so the file is removed on every exit path.
func (s *Store) Save(filename string, data []byte) (string, func(), error) {
	name := uuid.NewString() + "_" + filepath.Base(filename)
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", nil, fmt.Errorf("write upload: %w", err)
	}
	cleanup := func() {
		_ = os.Remove(path)
	}
	return path, cleanup, nil
}
