package models

import (
	"iter"
	"slices"
	"time"
)

// EventTable is the ordered, read-only set of rows of one processing run.
// Rows keep arrival order; a table is never modified after it is built.
type EventTable struct {
	rows []EventRow
}

// NewEventTable takes a private copy of rows.
func NewEventTable(rows []EventRow) *EventTable {
	return &EventTable{rows: slices.Clone(rows)}
}

func (t *EventTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

func (t *EventTable) IsEmpty() bool {
	return t.Len() == 0
}

// Row returns the i-th row in arrival order.
func (t *EventTable) Row(i int) EventRow {
	return t.rows[i]
}

// All iterates rows in arrival order.
func (t *EventTable) All() iter.Seq2[int, EventRow] {
	return func(yield func(int, EventRow) bool) {
		if t == nil {
			return
		}
		for i, row := range t.rows {
			if !yield(i, row) {
				return
			}
		}
	}
}

// Hours returns every distinct hour bucket, ascending.
func (t *EventTable) Hours() []time.Time {
	groups := GroupBy(t, ByHour, func(acc struct{}, _ EventRow) struct{} { return acc })
	hours := slices.Clone(groups.Keys)
	slices.SortFunc(hours, func(a, b time.Time) int { return a.Compare(b) })
	return hours
}

// Groups is the result of GroupBy: keys in first-seen order and one accumulated value per key.
type Groups[K comparable, V any] struct {
	Keys   []K
	Values map[K]V
}

// Get returns the accumulated value for key, or the zero value.
func (g Groups[K, V]) Get(key K) V {
	return g.Values[key]
}

// HourToken is the composite key of an (hour, token) group.
type HourToken struct {
	Hour  time.Time
	Token string
}

// ByHour keys a row by its hour bucket.
func ByHour(row EventRow) time.Time { return row.Hour }

// ByToken keys a row by its instrument token.
func ByToken(row EventRow) string { return row.Token }

// ByHourToken keys a row by hour bucket and token.
func ByHourToken(row EventRow) HourToken { return HourToken{Hour: row.Hour, Token: row.Token} }

// GroupBy folds the rows of t into one value per key, visiting rows in arrival order.
func GroupBy[K comparable, V any](t *EventTable, key func(EventRow) K, fold func(V, EventRow) V) Groups[K, V] {
	groups := Groups[K, V]{Values: make(map[K]V)}
	for _, row := range t.All() {
		k := key(row)
		acc, seen := groups.Values[k]
		if !seen {
			groups.Keys = append(groups.Keys, k)
		}
		groups.Values[k] = fold(acc, row)
	}
	return groups
}

// CountRows is a GroupBy fold counting rows.
func CountRows(acc float64, _ EventRow) float64 { return acc + 1 }

// SumQuantity is a GroupBy fold summing quantities.
func SumQuantity(acc float64, row EventRow) float64 { return acc + row.Quantity }
