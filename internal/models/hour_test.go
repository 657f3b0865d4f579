package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHourStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "mid hour in IST",
			input:    time.Date(2033, 11, 14, 3, 43, 20, 0, IST),
			expected: time.Date(2033, 11, 14, 3, 0, 0, 0, IST),
		},
		{
			name:     "UTC input lands on IST hour",
			input:    time.Date(2033, 11, 13, 22, 13, 20, 0, time.UTC),
			expected: time.Date(2033, 11, 14, 3, 0, 0, 0, IST),
		},
		{
			name:     "exact hour boundary",
			input:    time.Date(2033, 11, 14, 4, 0, 0, 0, IST),
			expected: time.Date(2033, 11, 14, 4, 0, 0, 0, IST),
		},
		{
			name:     "sub-second precision dropped",
			input:    time.Date(2033, 11, 14, 3, 59, 59, 999999999, IST),
			expected: time.Date(2033, 11, 14, 3, 0, 0, 0, IST),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := HourStart(tt.input)
			assert.True(t, tt.expected.Equal(got), "want %s got %s", tt.expected, got)
			assert.Equal(t, IST, got.Location())
		})
	}
}

func TestHourStart_NotAbsoluteTruncate(t *testing.T) {
	t.Parallel()

	in := time.Date(2033, 11, 14, 3, 43, 20, 0, IST)
	// absolute truncation would give 03:30 IST
	assert.False(t, in.Truncate(time.Hour).Equal(HourStart(in)))
	assert.Equal(t, 0, HourStart(in).Minute())
}

func TestFormatHourAndBucketID(t *testing.T) {
	t.Parallel()

	hour := time.Date(2033, 11, 13, 21, 30, 0, 0, time.UTC)
	assert.Equal(t, "2033-11-14 03:00", FormatHour(hour))
	assert.Equal(t, "20331114T03", HourBucketID(hour))
}
