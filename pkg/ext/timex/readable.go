package timex

import (
	"strconv"
	"time"
)

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
	month  = 30 * day
)

// span is the breakdown of an elapsed time into its calendar-free parts.
// Seconds, Minutes and Hours are the remainders within the next larger unit,
// Days is the whole number of elapsed days.
type span struct {
	Total   int64
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// breakdown counts the whole seconds from t to now on the unix clock, which
// is not bounded by the time.Duration range.
func breakdown(t, now time.Time) span {
	secs := now.Unix() - t.Unix()
	if now.Nanosecond() < t.Nanosecond() {
		secs--
	}
	if secs < 0 {
		secs = 0
	}
	return span{
		Total:   secs,
		Days:    secs / day,
		Hours:   secs / hour % 24,
		Minutes: secs / minute % 60,
		Seconds: secs % 60,
	}
}

// ReadableTime describes how long ago t was, relative to the current UTC instant.
func ReadableTime(t time.Time) string {
	return ReadableTimeAt(t, time.Now().UTC())
}

// ReadableTimeAt describes how long before now t was. The first matching
// bucket wins; timestamps after now are treated as zero elapsed time.
func ReadableTimeAt(t, now time.Time) string {
	ts := breakdown(t, now)
	delta := ts.Total

	switch {
	case delta < minute:
		if ts.Seconds == 1 {
			return "one second ago"
		}
		return plural(ts.Seconds, "seconds")
	case delta < 2*minute:
		return "a minute ago"
	case delta < 45*minute:
		return plural(ts.Minutes, "minutes")
	case delta < 90*minute:
		return "an hour ago"
	case delta < day:
		return plural(ts.Hours, "hours")
	case delta < 2*day:
		return "yesterday"
	case delta < month:
		return plural(ts.Days, "days")
	case delta < 12*month:
		months := ts.Days / 30
		if months <= 1 {
			return "one month ago"
		}
		return plural(months, "months")
	}

	years := ts.Days / 365
	if years <= 1 {
		return "one year ago"
	}
	return plural(years, "years")
}

func plural(n int64, unit string) string {
	return strconv.FormatInt(n, 10) + " " + unit + " ago"
}
