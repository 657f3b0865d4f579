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

const artifactsDir = "artifacts"

var (
	ErrArtifactNotFound    = errors.New("artifact not found")
	ErrInvalidArtifactName = errors.New("invalid artifact name")
)

// ArtifactStore keeps the generated files of each run under artifacts/<runID>/<name>.
//
//go:generate mockgen -source=artifact_store.go -destination=./mocks/artifact_store_mock.go -package=mocks
type ArtifactStore interface {
	// Put writes or replaces one artifact.
	Put(ctx context.Context, runID string, name string, r io.Reader) error
	Get(ctx context.Context, runID string, name string) (io.ReadCloser, error)
	// List returns the artifact names of a run, sorted.
	List(ctx context.Context, runID string) ([]string, error)
	// DeleteRun removes every artifact of one run.
	DeleteRun(ctx context.Context, runID string) error
	DeleteAll(ctx context.Context) error
}

type artifactStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewArtifactStore(fileStorage filestorages.FileStorage) ArtifactStore {
	return &artifactStore{fileStorage: fileStorage, dir: artifactsDir}
}

func (s *artifactStore) Put(ctx context.Context, runID string, name string, r io.Reader) error {
	key, err := s.getKey(runID, name)
	if err != nil {
		return err
	}
	if _, err := s.fileStorage.Put(ctx, key, r, filestorages.PutOptions{AllowOverwrite: true}); err != nil {
		return fmt.Errorf("failed to put artifact %s: %w", name, err)
	}
	return nil
}

func (s *artifactStore) Get(ctx context.Context, runID string, name string) (io.ReadCloser, error) {
	key, err := s.getKey(runID, name)
	if err != nil {
		return nil, err
	}
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrArtifactNotFound
		}
		return nil, fmt.Errorf("failed to get artifact %s: %w", name, err)
	}
	return readCloser, nil
}

func (s *artifactStore) List(ctx context.Context, runID string) ([]string, error) {
	if !validSegment(runID) {
		return nil, ErrInvalidArtifactName
	}
	prefix := path.Join(s.dir, runID)
	keys, err := s.fileStorage.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}

	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, strings.TrimPrefix(key, prefix+"/"))
	}
	return names, nil
}

func (s *artifactStore) DeleteRun(ctx context.Context, runID string) error {
	if !validSegment(runID) {
		return ErrInvalidArtifactName
	}
	if err := s.fileStorage.DeleteAll(ctx, path.Join(s.dir, runID)); err != nil {
		return fmt.Errorf("failed to delete artifacts of run %s: %w", runID, err)
	}
	return nil
}

func (s *artifactStore) DeleteAll(ctx context.Context) error {
	if err := s.fileStorage.DeleteAll(ctx, s.dir); err != nil {
		return fmt.Errorf("failed to delete artifacts: %w", err)
	}
	return nil
}

func (s *artifactStore) getKey(runID string, name string) (string, error) {
	if !validSegment(runID) || !validSegment(name) {
		return "", ErrInvalidArtifactName
	}
	return path.Join(s.dir, runID, name), nil
}

// validSegment reports whether part is usable as a single key segment.
func validSegment(part string) bool {
	return part != "" && part != "." && part != ".." && !strings.ContainsAny(part, `/\`)
}
