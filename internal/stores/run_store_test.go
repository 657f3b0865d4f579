package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"trade-analytics/internal/models"
	"trade-analytics/internal/shared/filestorages"
	"trade-analytics/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRunStore_Save(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewRunStore(mockFileStorage)
	ctx := context.Background()

	run := &models.ProcessingRun{
		RunID:      "01JB7Z",
		FileName:   "orders.log",
		UploadedAt: time.Date(2025, 12, 28, 18, 3, 0, 0, time.UTC),
		Stats:      models.IngestStats{LinesRead: 3, RecordsParsed: 3},
		Artifacts:  []models.Artifact{{Name: "report.json", Kind: models.ArtifactReport}},
	}
	expectedJSON, _ := json.Marshal(run)

	mockFileStorage.EXPECT().
		Put(ctx, "runs/current.json", gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, expectedJSON, data)
			return &filestorages.PutResult{FileKey: key}, nil
		})

	assert.NoError(t, store.Save(ctx, run))
}

func TestRunStore_Save_PutError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewRunStore(mockFileStorage)

	mockFileStorage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	err := store.Save(context.Background(), &models.ProcessingRun{RunID: "01JB7Z"})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestRunStore_Load(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewRunStore(mockFileStorage)
	ctx := context.Background()

	stored := models.ProcessingRun{RunID: "01JB7Z", FileName: "orders.log", Stats: models.IngestStats{LinesSkipped: 2}}
	data, _ := json.Marshal(stored)
	mockFileStorage.EXPECT().
		Get(ctx, "runs/current.json").
		Return(io.NopCloser(bytes.NewReader(data)), nil)

	run, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "01JB7Z", run.RunID)
	assert.Equal(t, int64(2), run.Stats.LinesSkipped)
}

func TestRunStore_Load_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    io.ReadCloser
		getErr  error
		wantErr error
	}{
		{name: "not found", getErr: filestorages.ErrFileNotFound, wantErr: ErrRunNotFound},
		{name: "storage failure", getErr: assert.AnError, wantErr: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFileStorage := mocks.NewMockFileStorage(ctrl)
			store := NewRunStore(mockFileStorage)

			mockFileStorage.EXPECT().Get(gomock.Any(), "runs/current.json").Return(tt.body, tt.getErr)

			run, err := store.Load(context.Background())
			assert.Nil(t, run)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRunStore_Load_InvalidJSON(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewRunStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Get(gomock.Any(), "runs/current.json").
		Return(io.NopCloser(bytes.NewReader([]byte("{not json"))), nil)

	run, err := store.Load(context.Background())
	assert.Nil(t, run)
	assert.ErrorContains(t, err, "failed to unmarshal processing run")
}

func TestRunStore_Delete(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewRunStore(mockFileStorage)

	mockFileStorage.EXPECT().DeleteAll(gomock.Any(), "runs").Return(nil)
	assert.NoError(t, store.Delete(context.Background()))
}
