package aggregators

import (
	"slices"
	"time"

	"trade-analytics/internal/models"
)

const (
	actionTrade = "T"
)

// followUpActions are the actions that complete a trade pattern when they directly follow a trade.
var followUpActions = map[string]struct{}{
	"N": {},
	"M": {},
}

// EntriesPerHour counts rows per hour bucket, ascending by hour.
func EntriesPerHour(table *models.EventTable) models.HourlySeries {
	return hourlySeries(models.GroupBy(table, models.ByHour, models.CountRows))
}

// QuantityPerHour sums quantities per hour bucket, ascending by hour.
func QuantityPerHour(table *models.EventTable) models.HourlySeries {
	return hourlySeries(models.GroupBy(table, models.ByHour, models.SumQuantity))
}

// TradePattern counts, per hour, adjacent row pairs where a trade is immediately followed by an
// N or M action. The occurrence belongs to the hour of the trade. Only hours with at least one
// occurrence are present, so a table without the pattern yields an empty series.
func TradePattern(table *models.EventTable) models.HourlySeries {
	groups := models.Groups[time.Time, float64]{Values: make(map[time.Time]float64)}
	for i := 0; i+1 < table.Len(); i++ {
		current, next := table.Row(i), table.Row(i+1)
		if current.Action != actionTrade {
			continue
		}
		if _, ok := followUpActions[next.Action]; !ok {
			continue
		}
		if _, seen := groups.Values[current.Hour]; !seen {
			groups.Keys = append(groups.Keys, current.Hour)
		}
		groups.Values[current.Hour]++
	}
	return hourlySeries(groups)
}

func hourlySeries(groups models.Groups[time.Time, float64]) models.HourlySeries {
	if len(groups.Keys) == 0 {
		return models.HourlySeries{}
	}
	hours := slices.Clone(groups.Keys)
	slices.SortFunc(hours, func(a, b time.Time) int { return a.Compare(b) })

	series := make(models.HourlySeries, 0, len(hours))
	for _, hour := range hours {
		series = append(series, models.HourlyPoint{Hour: hour, Value: groups.Get(hour)})
	}
	return series
}
