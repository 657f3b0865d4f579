package ingestors

import (
	"errors"
	"math"
	"time"

	"trade-analytics/internal/models"
)

// epochCorrectionSeconds is the fixed shift the upstream feed needs to land on the real
// calendar (1980-01-01 minus 1970-01-01).
const epochCorrectionSeconds int64 = 315532800

var ErrNormalizationOverflow = errors.New("timestamp outside representable range")

type TimestampUnit int

const (
	UnitSeconds TimestampUnit = iota
	UnitMilliseconds
	UnitMicroseconds
	UnitNanoseconds
)

func (u TimestampUnit) String() string {
	switch u {
	case UnitNanoseconds:
		return "ns"
	case UnitMicroseconds:
		return "us"
	case UnitMilliseconds:
		return "ms"
	default:
		return "s"
	}
}

// perSecond is how many raw units make one second.
func (u TimestampUnit) perSecond() int64 {
	switch u {
	case UnitNanoseconds:
		return 1_000_000_000
	case UnitMicroseconds:
		return 1_000_000
	case UnitMilliseconds:
		return 1_000
	default:
		return 1
	}
}

// DetectTimestampUnit picks the unit of raw by magnitude. Thresholds are exclusive, so a
// value exactly on a boundary belongs to the coarser unit.
func DetectTimestampUnit(raw int64) TimestampUnit {
	switch {
	case raw > 1e18:
		return UnitNanoseconds
	case raw > 1e15:
		return UnitMicroseconds
	case raw > 1e12:
		return UnitMilliseconds
	default:
		return UnitSeconds
	}
}

// NormalizeTimestamp converts a raw epoch value of unknown unit into a corrected instant in IST.
// The correction is added in the raw unit, then the value is scaled to nanoseconds using
// integer arithmetic only. Results that do not fit an int64 nanosecond count are rejected.
func NormalizeTimestamp(raw int64) (time.Time, error) {
	unit := DetectTimestampUnit(raw)
	perSecond := unit.perSecond()

	offset := epochCorrectionSeconds * perSecond
	if raw > math.MaxInt64-offset {
		return time.Time{}, ErrNormalizationOverflow
	}
	shifted := raw + offset

	scale := int64(time.Second) / perSecond
	if shifted > math.MaxInt64/scale || shifted < math.MinInt64/scale {
		return time.Time{}, ErrNormalizationOverflow
	}

	return time.Unix(0, shifted*scale).In(models.IST), nil
}
