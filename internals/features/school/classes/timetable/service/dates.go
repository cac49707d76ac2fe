// file: internals/features/school/classes/timetable/service/dates.go
package service

import "time"

// isoWeekday maps time.Weekday (Sunday=0) to the ISO numbering used by
// time-blocks (Monday=1 .. Sunday=7).
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MatchingDates lists every date between start and end (inclusive)
// that falls on the given ISO weekday, in ascending order. An end
// before start yields nothing.
func MatchingDates(start, end time.Time, weekday int) []time.Time {
	var out []time.Time
	start, end = dateOnly(start), dateOnly(end)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if isoWeekday(d) == weekday {
			out = append(out, d)
		}
	}
	return out
}
