package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"rentdesk/server/config"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Store keeps uploaded objects (documents, avatars) on local disk and
// hands back public URLs. The directory is served by the HTTP layer
// under /uploads.
type Store struct {
	dir     string
	baseURL string
	maxSize int64
	logger  *logrus.Logger
}

// StoredObject describes a saved upload.
type StoredObject struct {
	Key      string
	URL      string
	Name     string
	Size     int64
	MimeType string
}

func NewStore(cfg *config.Config, logger *logrus.Logger) (*Store, error) {
	if err := os.MkdirAll(cfg.Storage.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &Store{
		dir:     cfg.Storage.Dir,
		baseURL: strings.TrimRight(cfg.Storage.PublicBaseURL, "/"),
		maxSize: cfg.Storage.MaxUploadMB * 1024 * 1024,
		logger:  logger,
	}, nil
}

// Dir returns the directory backing the store, for the static file route.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes a multipart upload to disk under a generated key and
// returns its metadata. The original filename survives only in the
// metadata; the object key is a UUID plus the original extension.
func (s *Store) Save(header *multipart.FileHeader) (*StoredObject, error) {
	if s.maxSize > 0 && header.Size > s.maxSize {
		return nil, fmt.Errorf("file exceeds the %d byte upload limit", s.maxSize)
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	key := uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
	path := filepath.Join(s.dir, key)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create object file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to write object file: %w", err)
	}

	return &StoredObject{
		Key:      key,
		URL:      s.baseURL + "/" + key,
		Name:     filepath.Base(header.Filename),
		Size:     size,
		MimeType: header.Header.Get("Content-Type"),
	}, nil
}

// Remove deletes a stored object. Missing objects are not an error; the
// metadata row is the source of truth and removal is best effort.
func (s *Store) Remove(key string) {
	if key == "" {
		return
	}
	if err := os.Remove(filepath.Join(s.dir, key)); err != nil && !os.IsNotExist(err) {
		s.logger.WithError(err).WithField("key", key).Warn("Failed to remove stored object")
	}
}
