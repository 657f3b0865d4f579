package emitters_test

import (
	"context"
	"testing"

	"trade-analytics/internal/emitters"
	emittermocks "trade-analytics/internal/emitters/mocks"
	"trade-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCompositeEmitter_MergesSortedArtifacts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := emittermocks.NewMockEmitter(ctrl)
	second := emittermocks.NewMockEmitter(ctrl)
	run := &models.ProcessingRun{RunID: "run1"}
	table := models.NewEventTable(nil)

	first.EXPECT().Name().Return("first").AnyTimes()
	second.EXPECT().Name().Return("second").AnyTimes()
	first.EXPECT().Emit(gomock.Any(), run, table).
		Return([]models.Artifact{{Name: "report.json"}, {Name: "01_entries_per_hour.html"}}, nil)
	second.EXPECT().Emit(gomock.Any(), run, table).
		Return([]models.Artifact{{Name: "aggregates.xlsx"}}, nil)

	artifacts, err := emitters.NewCompositeEmitter(first, second).Emit(context.Background(), run, table)
	require.NoError(t, err)

	names := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"01_entries_per_hour.html", "aggregates.xlsx", "report.json"}, names)
}

func TestCompositeEmitter_PropagatesFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ok := emittermocks.NewMockEmitter(ctrl)
	failing := emittermocks.NewMockEmitter(ctrl)

	ok.EXPECT().Name().Return("ok").AnyTimes()
	failing.EXPECT().Name().Return("failing").AnyTimes()
	ok.EXPECT().Emit(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Artifact{{Name: "a"}}, nil)
	failing.EXPECT().Emit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	artifacts, err := emitters.NewCompositeEmitter(ok, failing).Emit(context.Background(), &models.ProcessingRun{RunID: "run1"}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "failing emitter")
	assert.Nil(t, artifacts)
}

func TestContentTypeOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text/html; charset=utf-8", emitters.ContentTypeOf("01_entries_per_hour.html"))
	assert.Equal(t, "application/json", emitters.ContentTypeOf("report.json"))
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", emitters.ContentTypeOf("aggregates.xlsx"))
	assert.Equal(t, "application/vnd.apache.parquet", emitters.ContentTypeOf("events.parquet"))
	assert.Equal(t, "application/octet-stream", emitters.ContentTypeOf("notes"))
}
