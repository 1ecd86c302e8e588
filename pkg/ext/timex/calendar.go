package timex

import "time"

// Between reports whether v lies within [start, end].
func Between(v, start, end time.Time) bool {
	return !v.Before(start) && !v.After(end)
}

func IsWeekend(v time.Time) bool {
	day := v.Weekday()
	return day == time.Saturday || day == time.Sunday
}

func IsWorkingDay(v time.Time) bool {
	return !IsWeekend(v)
}
