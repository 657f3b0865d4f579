package models

// Report is the full battery of aggregates computed from one EventTable.
//
// Example JSON (trimmed):
//
//	{
//	  "entriesPerHour": [{"hour": "2033-11-14T03:00:00+05:30", "value": 2}],
//	  "tradePattern": [],
//	  "countShare": {
//	    "entries": [{"label": "AAA", "value": 2}, {"label": "Others", "value": 1}],
//	    "total": 3,
//	    "distinctTokens": 2
//	  }
//	}
type Report struct {
	EntriesPerHour      HourlySeries `json:"entriesPerHour"`
	QuantityPerHour     HourlySeries `json:"quantityPerHour"`
	TradePattern        HourlySeries `json:"tradePattern"`
	TopTokensByCount    HourlyMatrix `json:"topTokensByCount"`
	TopTokensByQuantity HourlyMatrix `json:"topTokensByQuantity"`
	CountShare          Breakdown    `json:"countShare"`
	QuantityShare       Breakdown    `json:"quantityShare"`
}

// IsEmpty reports whether the report was built from a table without rows.
func (r *Report) IsEmpty() bool {
	return r == nil || len(r.EntriesPerHour) == 0
}
