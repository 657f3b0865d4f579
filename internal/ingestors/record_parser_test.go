package ingestors

import (
	"testing"
	"time"

	"trade-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordParser_Parse(t *testing.T) {
	t.Parallel()

	parser := NewRecordParser()
	base := time.Date(2033, 11, 14, 3, 43, 20, 0, models.IST)

	tests := []struct {
		name string
		line string
		want models.EventRecord
	}{
		{
			name: "minimal eight fields",
			line: "T,AAA,x,x,x,x,1700000000,10",
			want: models.EventRecord{Action: "T", Token: "AAA", Timestamp: base, Quantity: 10},
		},
		{
			name: "quantity taken from last field",
			line: "N,BBB,x,x,x,x,1700000000,999,not-a-number,2.5",
			want: models.EventRecord{Action: "N", Token: "BBB", Timestamp: base, Quantity: 2.5},
		},
		{
			name: "fields are trimmed",
			line: "  M , CcC ,,,,, 1700000000123 ,,  -4.25 \r\n",
			want: models.EventRecord{Action: "M", Token: "CcC", Timestamp: base.Add(123 * time.Millisecond), Quantity: -4.25},
		},
		{
			name: "empty ignored fields",
			line: "T,AAA,,,,,1700000000,,10",
			want: models.EventRecord{Action: "T", Token: "AAA", Timestamp: base, Quantity: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parser.Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Action, got.Action)
			assert.Equal(t, tt.want.Token, got.Token)
			assert.Equal(t, tt.want.Quantity, got.Quantity)
			assert.True(t, tt.want.Timestamp.Equal(got.Timestamp), "want %s got %s", tt.want.Timestamp, got.Timestamp)
		})
	}
}

func TestRecordParser_Parse_Malformed(t *testing.T) {
	t.Parallel()

	parser := NewRecordParser()

	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{name: "empty line", line: "", wantErr: ErrTooFewFields},
		{name: "whitespace only", line: "   \t", wantErr: ErrTooFewFields},
		{name: "seven fields", line: "T,AAA,x,x,x,x,1700000000", wantErr: ErrTooFewFields},
		{name: "timestamp not integer", line: "T,AAA,x,x,x,x,17e8,10", wantErr: ErrUnparseableField},
		{name: "timestamp empty", line: "T,AAA,x,x,x,x,,10", wantErr: ErrUnparseableField},
		{name: "timestamp out of int64", line: "T,AAA,x,x,x,x,99999999999999999999,10", wantErr: ErrUnparseableField},
		{name: "quantity not numeric", line: "T,AAA,x,x,x,x,1700000000,ten", wantErr: ErrUnparseableField},
		{name: "quantity NaN", line: "T,AAA,x,x,x,x,1700000000,NaN", wantErr: ErrUnparseableField},
		{name: "quantity Inf", line: "T,AAA,x,x,x,x,1700000000,+Inf", wantErr: ErrUnparseableField},
		{name: "timestamp overflows after correction", line: "T,AAA,x,x,x,x,1000000000000,10", wantErr: ErrNormalizationOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parser.Parse(tt.line)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedLine)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, models.EventRecord{}, got)
		})
	}
}
