package attendance

import "time"

// Workday boundaries. Arrival defaults to the workday start; departure
// defaults to the standard or intern end depending on the employee.
const (
	WorkStartHour   = 8
	WorkStartMinute = 30

	WorkEndHour   = 17
	WorkEndMinute = 30

	InternEndHour   = 16
	InternEndMinute = 30
)

// DateOnly truncates a timestamp to midnight of its calendar date,
// preserving the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AtTime places a clock time on the given date.
func AtTime(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

// DefaultArrival returns the workday start on the given date.
func DefaultArrival(date time.Time) time.Time {
	return AtTime(date, WorkStartHour, WorkStartMinute)
}

// DefaultDeparture returns the expected end of day on the given date,
// earlier for interns.
func DefaultDeparture(date time.Time, isIntern bool) time.Time {
	if isIntern {
		return AtTime(date, InternEndHour, InternEndMinute)
	}
	return AtTime(date, WorkEndHour, WorkEndMinute)
}

// ExpectedDailyHours is the per-day time quota: workday start to the
// standard or intern end.
func ExpectedDailyHours(isIntern bool) float64 {
	date := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	return DefaultDeparture(date, isIntern).Sub(DefaultArrival(date)).Hours()
}

// ParseTimeOfDay parses a "15:04" clock value onto the given date. An
// empty or unparseable value falls back to the provided default.
func ParseTimeOfDay(value string, date time.Time, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return fallback
	}
	return AtTime(date, parsed.Hour(), parsed.Minute())
}

// WeekStart returns the Monday of the week containing day.
func WeekStart(day time.Time) time.Time {
	day = DateOnly(day)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// WeekDays returns the seven dates of the week beginning at weekStart.
func WeekDays(weekStart time.Time) []time.Time {
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = DateOnly(weekStart).AddDate(0, 0, i)
	}
	return days
}

// IsWorkingDay reports whether the date is a weekday (Mon-Fri).
func IsWorkingDay(day time.Time) bool {
	wd := day.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// WorkingDaysBetween counts weekdays in the inclusive [start, end] range.
// An inverted range counts zero days.
func WorkingDaysBetween(start, end time.Time) int {
	start, end = DateOnly(start), DateOnly(end)
	count := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if IsWorkingDay(day) {
			count++
		}
	}
	return count
}

// ClipWindow narrows [start, end] to [employeeStart, today]. The boolean
// is false when the clipped window is empty.
func ClipWindow(start, end, employeeStart, today time.Time) (time.Time, time.Time, bool) {
	start, end = DateOnly(start), DateOnly(end)
	employeeStart, today = DateOnly(employeeStart), DateOnly(today)

	if start.Before(employeeStart) {
		start = employeeStart
	}
	if end.After(today) {
		end = today
	}
	if start.After(end) {
		return start, end, false
	}
	return start, end, true
}

// SameDate reports whether two timestamps fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}
