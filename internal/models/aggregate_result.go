package models

import "time"

// OthersLabel names the synthetic entry a breakdown collapses minor tokens into.
const OthersLabel = "Others"

// HourlyPoint is one (hour, value) point of a series.
type HourlyPoint struct {
	Hour  time.Time `json:"hour"`
	Value float64   `json:"value"`
}

// HourlySeries is ordered ascending by hour.
type HourlySeries []HourlyPoint

func (s HourlySeries) Total() float64 {
	var total float64
	for _, p := range s {
		total += p.Value
	}
	return total
}

// TokenSeries holds one token's values aligned to HourlyMatrix.Hours.
type TokenSeries struct {
	Token  string    `json:"token"`
	Total  float64   `json:"total"`
	Values []float64 `json:"values"`
}

// NonZeroPoints counts hours where the token has a non-zero value.
func (s TokenSeries) NonZeroPoints() int {
	n := 0
	for _, v := range s.Values {
		if v != 0 {
			n++
		}
	}
	return n
}

// HourlyMatrix is an hours axis plus one zero-filled series per token, ranked.
type HourlyMatrix struct {
	Hours  []time.Time   `json:"hours"`
	Series []TokenSeries `json:"series"`
}

// MatrixCell is one flattened (hour, token, value) cell.
type MatrixCell struct {
	Hour  time.Time `json:"hour"`
	Token string    `json:"token"`
	Value float64   `json:"value"`
}

func (m HourlyMatrix) IsEmpty() bool {
	return len(m.Series) == 0
}

// Cells flattens the matrix hour-major, tokens in rank order.
func (m HourlyMatrix) Cells() []MatrixCell {
	cells := make([]MatrixCell, 0, len(m.Hours)*len(m.Series))
	for i, hour := range m.Hours {
		for _, series := range m.Series {
			cells = append(cells, MatrixCell{Hour: hour, Token: series.Token, Value: series.Values[i]})
		}
	}
	return cells
}

// BreakdownEntry is one ranked slice of a share breakdown.
type BreakdownEntry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Breakdown ranks tokens by value with minor tokens folded into a trailing Others entry.
type Breakdown struct {
	Entries        []BreakdownEntry `json:"entries"`
	Total          float64          `json:"total"`
	DistinctTokens int              `json:"distinctTokens"`
}

func (b Breakdown) IsEmpty() bool {
	return len(b.Entries) == 0
}
