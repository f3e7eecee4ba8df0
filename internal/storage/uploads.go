package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UploadStore manages report images on local disk. A stored file is owned by
// exactly one report row, and the report controller is the only writer.
type UploadStore struct {
	dir string
}

func NewUploadStore(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadStore{dir: dir}, nil
}

// Dir returns the directory served statically under /uploads.
func (s *UploadStore) Dir() string { return s.dir }

// NewFileName returns a unique stored name for an uploaded image, keeping the
// original extension. Only common image extensions are accepted.
func (s *UploadStore) NewFileName(original string) (string, error) {
	ext := strings.ToLower(filepath.Ext(original))
	switch ext {
	case ".jpg", ".jpeg", ".png":
	default:
		return "", fmt.Errorf("unsupported image type %q", ext)
	}
	return uuid.New().String() + ext, nil
}

// Path resolves a stored name to its on-disk location. Base strips any path
// components a client may have smuggled into the name.
func (s *UploadStore) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}

// Remove deletes a stored image. Best effort: a missing file is not an error
// and failures are logged, never propagated, so the record deletion that
// preceded it stands.
func (s *UploadStore) Remove(name string) {
	if name == "" {
		return
	}
	if err := os.Remove(s.Path(name)); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).WithField("image", name).Warn("could not remove uploaded image")
	}
}
