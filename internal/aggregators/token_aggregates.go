package aggregators

import (
	"cmp"
	"slices"

	"trade-analytics/internal/models"

	"github.com/shopspring/decimal"
)

// Fold accumulates one row into a per-group value; models.CountRows and models.SumQuantity are the two in use.
type Fold = func(acc float64, row models.EventRow) float64

// rankedTokens orders tokens by their folded total, largest first. Ties keep first-seen order.
func rankedTokens(groups models.Groups[string, float64]) []string {
	tokens := slices.Clone(groups.Keys)
	slices.SortStableFunc(tokens, func(a, b string) int {
		return cmp.Compare(groups.Get(b), groups.Get(a))
	})
	return tokens
}

// TopTokens picks the n tokens with the largest folded total and lays out their per-hour values
// against every hour in the table, zero-filling hours where a token has no rows.
func TopTokens(table *models.EventTable, n int, fold Fold) models.HourlyMatrix {
	totals := models.GroupBy(table, models.ByToken, fold)
	if len(totals.Keys) == 0 || n <= 0 {
		return models.HourlyMatrix{}
	}

	top := rankedTokens(totals)
	if len(top) > n {
		top = top[:n]
	}

	cells := models.GroupBy(table, models.ByHourToken, fold)
	hours := table.Hours()

	matrix := models.HourlyMatrix{
		Hours:  hours,
		Series: make([]models.TokenSeries, 0, len(top)),
	}
	for _, token := range top {
		values := make([]float64, len(hours))
		for i, hour := range hours {
			values[i] = cells.Get(models.HourToken{Hour: hour, Token: token})
		}
		matrix.Series = append(matrix.Series, models.TokenSeries{
			Token:  token,
			Total:  totals.Get(token),
			Values: values,
		})
	}
	return matrix
}

// ShareBreakdown ranks every token by its folded total. Tokens whose share of the overall total
// is below threshold are folded into one trailing Others entry, which is left out when it sums
// to zero. Shares are compared in decimal so a token sitting exactly on the threshold is kept.
// Total is the float sum of the emitted entries in order, so summing Entries reproduces it.
func ShareBreakdown(table *models.EventTable, threshold decimal.Decimal, fold Fold) models.Breakdown {
	totals := models.GroupBy(table, models.ByToken, fold)
	breakdown := models.Breakdown{DistinctTokens: len(totals.Keys)}

	total := decimal.Zero
	for _, token := range totals.Keys {
		total = total.Add(decimal.NewFromFloat(totals.Get(token)))
	}
	if total.IsZero() {
		return breakdown
	}

	cutoff := total.Mul(threshold)
	others := decimal.Zero
	for _, token := range rankedTokens(totals) {
		value := totals.Get(token)
		if decimal.NewFromFloat(value).GreaterThanOrEqual(cutoff) {
			breakdown.Entries = append(breakdown.Entries, models.BreakdownEntry{Label: token, Value: value})
			continue
		}
		others = others.Add(decimal.NewFromFloat(value))
	}
	if !others.IsZero() {
		breakdown.Entries = append(breakdown.Entries, models.BreakdownEntry{
			Label: models.OthersLabel,
			Value: others.InexactFloat64(),
		})
	}
	for _, entry := range breakdown.Entries {
		breakdown.Total += entry.Value
	}
	return breakdown
}
