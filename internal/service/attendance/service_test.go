package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/naumur/presence-backend-go/internal/domain/attendance"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func presentDay(day time.Time, arrivalHour, departureHour int) attendance.AttendanceDay {
	arrival := time.Date(day.Year(), day.Month(), day.Day(), arrivalHour, 30, 0, 0, time.UTC)
	departure := time.Date(day.Year(), day.Month(), day.Day(), departureHour, 30, 0, 0, time.UTC)
	return attendance.AttendanceDay{Date: day, ArrivalTime: &arrival, DepartureTime: &departure}
}

func TestSummarizeWeekFullWeek(t *testing.T) {
	weekStart := date(2026, time.January, 5) // Monday
	weekEnd := weekStart.AddDate(0, 0, 6)
	employeeStart := date(2025, time.June, 1)
	today := date(2026, time.January, 30)

	records := []attendance.AttendanceDay{
		presentDay(date(2026, time.January, 5), 8, 17),
		presentDay(date(2026, time.January, 6), 8, 17),
		presentDay(date(2026, time.January, 7), 8, 17),
	}

	summary := summarizeWeek(records, weekStart, weekEnd, employeeStart, today, false)

	assert.Equal(t, 5, summary.ExpectedDays)
	assert.Equal(t, 3, summary.PresentDays)
	assert.Equal(t, 2, summary.AbsentDays)
	assert.Equal(t, 45.0, summary.ExpectedHours)
	assert.Equal(t, 27.0, summary.PresentHours)
	assert.Equal(t, 18.0, summary.AbsentHours)
}

func TestSummarizeWeekClippedToStartDate(t *testing.T) {
	// Employee starts mid-week: Mon/Tue are not expected.
	weekStart := date(2026, time.January, 5)
	weekEnd := weekStart.AddDate(0, 0, 6)
	employeeStart := date(2026, time.January, 7) // Wednesday
	today := date(2026, time.January, 30)

	summary := summarizeWeek(nil, weekStart, weekEnd, employeeStart, today, false)

	assert.Equal(t, 3, summary.ExpectedDays)
	assert.Equal(t, 3, summary.AbsentDays)
	assert.Equal(t, 0, summary.PresentDays)
}

func TestSummarizeWeekClippedToToday(t *testing.T) {
	// Mid-week today: Thu/Fri are not expected yet.
	weekStart := date(2026, time.January, 5)
	weekEnd := weekStart.AddDate(0, 0, 6)
	employeeStart := date(2025, time.June, 1)
	today := date(2026, time.January, 7) // Wednesday

	records := []attendance.AttendanceDay{
		presentDay(date(2026, time.January, 5), 8, 17),
	}

	summary := summarizeWeek(records, weekStart, weekEnd, employeeStart, today, false)

	assert.Equal(t, 3, summary.ExpectedDays)
	assert.Equal(t, 1, summary.PresentDays)
	assert.Equal(t, 2, summary.AbsentDays)
}

func TestSummarizeWeekIntern(t *testing.T) {
	weekStart := date(2026, time.January, 5)
	weekEnd := weekStart.AddDate(0, 0, 6)
	today := date(2026, time.January, 30)

	summary := summarizeWeek(nil, weekStart, weekEnd, date(2025, time.June, 1), today, true)

	assert.Equal(t, 5, summary.ExpectedDays)
	assert.Equal(t, 40.0, summary.ExpectedHours)
}

func TestSummarizeWeekEmptyWindow(t *testing.T) {
	// Week entirely before the employee existed.
	weekStart := date(2025, time.December, 1)
	weekEnd := weekStart.AddDate(0, 0, 6)

	summary := summarizeWeek(nil, weekStart, weekEnd, date(2026, time.January, 5), date(2026, time.January, 30), false)

	assert.Equal(t, attendance.WeekSummary{}, summary)
}

func TestSummarizeWeekOvertimeFloorsAbsentHours(t *testing.T) {
	weekStart := date(2026, time.January, 5)
	weekEnd := weekStart.AddDate(0, 0, 6)
	today := date(2026, time.January, 30)

	// Five 12-hour days beat the 45h quota; absent hours floor at zero.
	var records []attendance.AttendanceDay
	for i := 0; i < 5; i++ {
		records = append(records, presentDay(weekStart.AddDate(0, 0, i), 7, 19))
	}

	summary := summarizeWeek(records, weekStart, weekEnd, date(2025, time.June, 1), today, false)

	assert.Equal(t, 0, summary.AbsentDays)
	assert.Equal(t, 0.0, summary.AbsentHours)
	assert.Equal(t, 60.0, summary.PresentHours)
}
