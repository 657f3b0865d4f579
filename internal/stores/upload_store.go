package stores

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"trade-analytics/internal/shared/filestorages"
)

const (
	uploadsDir           = "uploads"
	fallbackUploadName   = "upload.log"
	maxUploadFileNameLen = 128
)

var (
	ErrUploadAlreadyExists = errors.New("upload already exists")
	ErrUploadNotFound      = errors.New("upload not found")
	ErrInvalidRunID        = errors.New("invalid run id")
)

// UploadStore keeps raw uploaded files under uploads/<runID>/<name>. Put never overwrites, so a
// run id is bound to exactly one upload.
//
//go:generate mockgen -source=upload_store.go -destination=./mocks/upload_store_mock.go -package=mocks
type UploadStore interface {
	// Put stores r and returns the storage key of the upload.
	Put(ctx context.Context, runID string, fileName string, r io.Reader) (string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// DeleteRun removes the upload stored for one run.
	DeleteRun(ctx context.Context, runID string) error
	DeleteAll(ctx context.Context) error
}

type uploadStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewUploadStore(fileStorage filestorages.FileStorage) UploadStore {
	return &uploadStore{fileStorage: fileStorage, dir: uploadsDir}
}

func (s *uploadStore) Put(ctx context.Context, runID string, fileName string, r io.Reader) (string, error) {
	key := path.Join(s.dir, runID, SanitizeFileName(fileName))

	_, err := s.fileStorage.Put(ctx, key, r, filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return "", ErrUploadAlreadyExists
		}
		return "", fmt.Errorf("failed to put upload: %w", err)
	}
	return key, nil
}

func (s *uploadStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	return readCloser, nil
}

func (s *uploadStore) DeleteRun(ctx context.Context, runID string) error {
	if !validSegment(runID) {
		return ErrInvalidRunID
	}
	if err := s.fileStorage.DeleteAll(ctx, path.Join(s.dir, runID)); err != nil {
		return fmt.Errorf("failed to delete upload of run %s: %w", runID, err)
	}
	return nil
}

func (s *uploadStore) DeleteAll(ctx context.Context) error {
	if err := s.fileStorage.DeleteAll(ctx, s.dir); err != nil {
		return fmt.Errorf("failed to delete uploads: %w", err)
	}
	return nil
}

// SanitizeFileName reduces a client supplied file name to a safe single path segment made of
// ASCII letters, digits, dot, dash and underscore.
func SanitizeFileName(name string) string {
	// clients may send windows paths
	name = name[strings.LastIndexAny(name, `/\`)+1:]

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
		if b.Len() >= maxUploadFileNameLen {
			break
		}
	}

	sanitized := strings.TrimLeft(b.String(), "._")
	if sanitized == "" {
		return fallbackUploadName
	}
	return sanitized
}
