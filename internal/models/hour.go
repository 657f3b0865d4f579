package models

import (
	"fmt"
	"time"
)

// IST is the fixed UTC+05:30 zone every normalized timestamp is expressed in.
var IST = time.FixedZone("IST", 5*3600+30*60)

const hourLabelLayout = "2006-01-02 15:00"

// HourStart truncates t to the start of its clock hour in IST.
// time.Truncate works on absolute time and would land on :30 for this zone.
func HourStart(t time.Time) time.Time {
	local := t.In(IST)
	return time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), 0, 0, 0, IST)
}

// FormatHour renders an hour bucket as a chart axis label.
func FormatHour(hour time.Time) string {
	return hour.In(IST).Format(hourLabelLayout)
}

// HourBucketID is a short stable id for an hour bucket, used in sheet cells and file names.
func HourBucketID(hour time.Time) string {
	local := hour.In(IST)
	return fmt.Sprintf("%04d%02d%02dT%02d", local.Year(), local.Month(), local.Day(), local.Hour())
}
