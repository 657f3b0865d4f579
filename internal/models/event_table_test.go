package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRow(action, token string, ts time.Time, qty float64) EventRow {
	return EventRow{
		EventRecord: EventRecord{Action: action, Token: token, Timestamp: ts, Quantity: qty},
		Hour:        HourStart(ts),
	}
}

func sampleTable() *EventTable {
	h3 := time.Date(2033, 11, 14, 3, 10, 0, 0, IST)
	h4 := time.Date(2033, 11, 14, 4, 10, 0, 0, IST)
	return NewEventTable([]EventRow{
		newRow("T", "BBB", h4, 5),
		newRow("N", "AAA", h3, 10),
		newRow("M", "BBB", h3.Add(time.Minute), 2.5),
		newRow("T", "AAA", h4.Add(time.Minute), 1),
	})
}

func TestEventTable_AllKeepsArrivalOrder(t *testing.T) {
	t.Parallel()

	table := sampleTable()
	var tokens []string
	for i, row := range table.All() {
		assert.Equal(t, table.Row(i), row)
		tokens = append(tokens, row.Token)
	}
	assert.Equal(t, []string{"BBB", "AAA", "BBB", "AAA"}, tokens)
	assert.Equal(t, 4, table.Len())
}

func TestEventTable_IsolatedFromInput(t *testing.T) {
	t.Parallel()

	rows := []EventRow{newRow("T", "AAA", time.Date(2033, 1, 1, 0, 0, 0, 0, IST), 1)}
	table := NewEventTable(rows)
	rows[0].Token = "ZZZ"

	assert.Equal(t, "AAA", table.Row(0).Token)
}

func TestEventTable_Hours(t *testing.T) {
	t.Parallel()

	hours := sampleTable().Hours()
	require.Len(t, hours, 2)
	assert.True(t, hours[0].Before(hours[1]))
	assert.Equal(t, 3, hours[0].Hour())
	assert.Equal(t, 4, hours[1].Hour())
}

func TestGroupBy(t *testing.T) {
	t.Parallel()

	table := sampleTable()

	t.Run("by token keeps first-seen order", func(t *testing.T) {
		t.Parallel()
		groups := GroupBy(table, ByToken, CountRows)
		assert.Equal(t, []string{"BBB", "AAA"}, groups.Keys)
		assert.Equal(t, 2.0, groups.Get("BBB"))
		assert.Equal(t, 2.0, groups.Get("AAA"))
		assert.Zero(t, groups.Get("CCC"))
	})

	t.Run("by hour sums quantity", func(t *testing.T) {
		t.Parallel()
		groups := GroupBy(table, ByHour, SumQuantity)
		require.Len(t, groups.Keys, 2)
		assert.Equal(t, 6.0, groups.Get(groups.Keys[0]))
		assert.Equal(t, 12.5, groups.Get(groups.Keys[1]))
	})

	t.Run("by hour and token", func(t *testing.T) {
		t.Parallel()
		groups := GroupBy(table, ByHourToken, CountRows)
		assert.Len(t, groups.Keys, 4)
		key := HourToken{Hour: time.Date(2033, 11, 14, 3, 0, 0, 0, IST), Token: "BBB"}
		assert.Equal(t, 1.0, groups.Get(key))
	})
}

func TestEventTable_Empty(t *testing.T) {
	t.Parallel()

	var nilTable *EventTable
	assert.True(t, nilTable.IsEmpty())
	assert.Empty(t, nilTable.Hours())

	groups := GroupBy(NewEventTable(nil), ByToken, CountRows)
	assert.Empty(t, groups.Keys)
	assert.Empty(t, groups.Values)
}
