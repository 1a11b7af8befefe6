package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/naumur/presence-backend-go/internal/domain/attendance"
	"github.com/naumur/presence-backend-go/internal/domain/report"
	"github.com/naumur/presence-backend-go/internal/domain/user"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func workedDay(userID string, day time.Time, hours int) attendance.AttendanceDay {
	arrival := time.Date(day.Year(), day.Month(), day.Day(), 8, 30, 0, 0, time.UTC)
	departure := arrival.Add(time.Duration(hours) * time.Hour)
	return attendance.AttendanceDay{UserID: userID, Date: day, ArrivalTime: &arrival, DepartureTime: &departure}
}

func TestSummarizeEmployee(t *testing.T) {
	emp := user.User{
		ID:             "u1",
		FullName:       "Aigerim S",
		StartDate:      date(2025, time.June, 1),
		DepartmentID:   strPtr("d1"),
		DepartmentName: strPtr("Engineering"),
	}

	days := []attendance.AttendanceDay{
		workedDay("u1", date(2026, time.January, 5), 9),
		workedDay("u1", date(2026, time.January, 6), 8),
	}

	summary := SummarizeEmployee(emp, days,
		date(2026, time.January, 5), date(2026, time.January, 9),
		date(2026, time.January, 30))

	assert.Equal(t, "u1", summary.UserID)
	assert.Equal(t, "Engineering", summary.DepartmentName)
	assert.Equal(t, 5, summary.ExpectedDays)
	assert.Equal(t, 2, summary.PresentDays)
	assert.Equal(t, 3, summary.AbsentDays)
	assert.Equal(t, 45.0, summary.ExpectedHours)
	assert.Equal(t, 17.0, summary.PresentHours)
	assert.Equal(t, 28.0, summary.AbsentHours)
}

func TestSummarizeEmployeeStartsMidWindow(t *testing.T) {
	// Window 2026-01-01..2026-01-10, employee starts Monday 2026-01-05:
	// only Jan 5-9 are expected working days.
	emp := user.User{ID: "u1", FullName: "Nursultan B", StartDate: date(2026, time.January, 5)}

	summary := SummarizeEmployee(emp, nil,
		date(2026, time.January, 1), date(2026, time.January, 10),
		date(2026, time.January, 30))

	assert.Equal(t, 5, summary.ExpectedDays)
	assert.Equal(t, 5, summary.AbsentDays)
}

func TestSummarizeEmployeeIntern(t *testing.T) {
	emp := user.User{ID: "u1", StartDate: date(2025, time.June, 1), IsIntern: true}

	summary := SummarizeEmployee(emp, nil,
		date(2026, time.January, 5), date(2026, time.January, 9),
		date(2026, time.January, 30))

	assert.Equal(t, 40.0, summary.ExpectedHours)
}

func TestSummarizeEmployeeEmptyWindow(t *testing.T) {
	emp := user.User{ID: "u1", StartDate: date(2026, time.February, 1)}

	summary := SummarizeEmployee(emp, nil,
		date(2026, time.January, 5), date(2026, time.January, 9),
		date(2026, time.January, 30))

	assert.Equal(t, 0, summary.ExpectedDays)
	assert.Equal(t, 0, summary.AbsentDays)
	assert.Equal(t, 0.0, summary.ExpectedHours)
}

func TestSummarizeDepartments(t *testing.T) {
	employees := []user.User{
		{ID: "u1", DepartmentID: strPtr("d1"), DepartmentName: strPtr("Engineering")},
		{ID: "u2", DepartmentID: strPtr("d1"), DepartmentName: strPtr("Engineering")},
		{ID: "u3"}, // no department
	}
	summaries := map[string]report.EmployeeSummary{
		"u1": {ExpectedDays: 5, PresentDays: 5},
		"u2": {ExpectedDays: 5, PresentDays: 3},
		"u3": {ExpectedDays: 0, PresentDays: 0},
	}

	departments := SummarizeDepartments(employees, summaries)

	assert.Len(t, departments, 2)
	assert.Equal(t, "Engineering", departments[0].Name)
	assert.Equal(t, 10, departments[0].Expected)
	assert.Equal(t, 8, departments[0].Present)
	assert.Equal(t, 80.0, departments[0].Rate)

	// No expected days: rate stays zero, no division by zero
	assert.Equal(t, "Unassigned", departments[1].Name)
	assert.Equal(t, 0.0, departments[1].Rate)
}
