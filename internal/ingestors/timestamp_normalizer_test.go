package ingestors

import (
	"math"
	"testing"
	"time"

	"trade-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectTimestampUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  int64
		want TimestampUnit
	}{
		{raw: 0, want: UnitSeconds},
		{raw: -5, want: UnitSeconds},
		{raw: 1700000000, want: UnitSeconds},
		{raw: 1_000_000_000_000, want: UnitSeconds},
		{raw: 1_000_000_000_001, want: UnitMilliseconds},
		{raw: 1700000000123, want: UnitMilliseconds},
		{raw: 1_000_000_000_000_000, want: UnitMilliseconds},
		{raw: 1_000_000_000_000_001, want: UnitMicroseconds},
		{raw: 1_000_000_000_000_000_000, want: UnitMicroseconds},
		{raw: 1_000_000_000_000_000_001, want: UnitNanoseconds},
		{raw: math.MaxInt64, want: UnitNanoseconds},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DetectTimestampUnit(tt.raw), "raw=%d", tt.raw)
		})
	}
}

func TestNormalizeTimestamp(t *testing.T) {
	t.Parallel()

	// 1700000000 + 315532800 = 2015532800 -> 2033-11-13T22:13:20Z
	base := time.Date(2033, 11, 14, 3, 43, 20, 0, models.IST)

	tests := []struct {
		name string
		raw  int64
		want time.Time
	}{
		{name: "seconds", raw: 1700000000, want: base},
		{name: "milliseconds", raw: 1700000000123, want: base.Add(123 * time.Millisecond)},
		{name: "microseconds", raw: 1700000000123456, want: base.Add(123456 * time.Microsecond)},
		{name: "nanoseconds", raw: 1700000000123456789, want: base.Add(123456789 * time.Nanosecond)},
		{name: "zero is the correction itself", raw: 0, want: time.Unix(epochCorrectionSeconds, 0)},
		{name: "negative seconds", raw: -315532800, want: time.Unix(0, 0)},
		{name: "just above ms threshold", raw: 1_000_000_000_001, want: time.Unix(0, (1_000_000_000_001+epochCorrectionSeconds*1_000)*1_000_000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NormalizeTimestamp(tt.raw)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
			assert.Equal(t, models.IST, got.Location())
		})
	}
}

func TestNormalizeTimestamp_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := NormalizeTimestamp(1700000000)
	require.NoError(t, err)
	second, err := NormalizeTimestamp(1700000000)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalizeTimestamp_Overflow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  int64
	}{
		{name: "seconds band boundary", raw: 1_000_000_000_000},
		{name: "milliseconds band boundary", raw: 1_000_000_000_000_000},
		{name: "microseconds band boundary", raw: 1_000_000_000_000_000_000},
		{name: "max int64", raw: math.MaxInt64},
		{name: "ns correction overflows", raw: math.MaxInt64 - epochCorrectionSeconds*1_000_000_000 + 1},
		{name: "very negative seconds", raw: math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NormalizeTimestamp(tt.raw)
			assert.ErrorIs(t, err, ErrNormalizationOverflow)
		})
	}
}

func TestNormalizeTimestamp_LargestNanosecondValue(t *testing.T) {
	t.Parallel()

	raw := int64(math.MaxInt64 - epochCorrectionSeconds*1_000_000_000)
	got, err := NormalizeTimestamp(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got.UnixNano())
}
