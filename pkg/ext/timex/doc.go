// Package timex extends time.Time with small calendar predicates and a
// human-readable relative-time formatter.
//
// - Between: inclusive range membership
// - IsWorkingDay/IsWeekend: Saturday and Sunday form the weekend
// - ReadableTime/ReadableTimeAt: "5 minutes ago", "yesterday", "4 months ago"
//
// Thresholds and wording are fixed; there is no phrase catalog.
package timex
