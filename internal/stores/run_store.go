package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"trade-analytics/internal/models"
	"trade-analytics/internal/shared/filestorages"
)

var ErrRunNotFound = errors.New("processing run not found")

// RunStore persists the manifest of the current processing run so it survives a restart.
//
//go:generate mockgen -source=run_store.go -destination=./mocks/run_store_mock.go -package=mocks
type RunStore interface {
	Save(ctx context.Context, run *models.ProcessingRun) error
	Load(ctx context.Context) (*models.ProcessingRun, error)
	Delete(ctx context.Context) error
}

type runStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewRunStore(fileStorage filestorages.FileStorage) RunStore {
	return &runStore{fileStorage: fileStorage, dir: "runs"}
}

func (s *runStore) Save(ctx context.Context, run *models.ProcessingRun) error {
	jsonData, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal processing run: %w", err)
	}
	reader := bytes.NewReader(jsonData)
	_, err = s.fileStorage.Put(ctx, s.getKey(), reader, filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put processing run: %w", err)
	}
	return nil
}

func (s *runStore) Load(ctx context.Context) (*models.ProcessingRun, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey())
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to get processing run: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read processing run: %w", err)
	}
	var run models.ProcessingRun
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal processing run: %w", err)
	}
	return &run, nil
}

func (s *runStore) Delete(ctx context.Context) error {
	if err := s.fileStorage.DeleteAll(ctx, s.dir); err != nil {
		return fmt.Errorf("failed to delete processing run: %w", err)
	}
	return nil
}

func (s *runStore) getKey() string {
	return s.dir + "/current.json"
}
