package service

import "time"

// DayStart normalizes an instant to local midnight; this is the dedup key
// for daily check-ins.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Monday midnight of the week containing t.
func WeekStart(t time.Time) time.Time {
	day := DayStart(t)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

// WeekWindow returns the inclusive day window a weekly summary covers:
// weekStart 00:00:00 through weekStart+6 days 23:59:59.
func WeekWindow(weekStart time.Time) (time.Time, time.Time) {
	start := DayStart(weekStart)
	end := start.AddDate(0, 0, 6).Add(24*time.Hour - time.Second)
	return start, end
}
