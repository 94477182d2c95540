package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"perflog-analytics/internal/models"
	"perflog-analytics/internal/shared/filestorages"
)

var (
	ErrUploadAlreadyExists = errors.New("upload already exists")
)

// UploadStore keeps the raw log behind an archived result. Uploads are content addressed, so
// Put is create-if-not-exists: a second Put for the same digest returns ErrUploadAlreadyExists
// and leaves the first copy untouched.
//
//go:generate mockgen -source=upload_store.go -destination=./mocks/upload_store_mock.go -package=mocks
type UploadStore interface {
	Put(ctx context.Context, kind models.LogKind, digest string, raw []byte) error
}

type uploadStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewUploadStore(fileStorage filestorages.FileStorage) UploadStore {
	return &uploadStore{fileStorage: fileStorage, dir: "uploads"}
}

func (s *uploadStore) Put(ctx context.Context, kind models.LogKind, digest string, raw []byte) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	key := fmt.Sprintf("%s/%s.log", s.dir, kind.CacheKey(digest))

	_, err := s.fileStorage.Put(ctx, key, bytes.NewReader(raw), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrUploadAlreadyExists
		}
		return fmt.Errorf("failed to put upload: %w", err)
	}
	return nil
}
