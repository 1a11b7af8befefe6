package report

import (
	"time"

	"github.com/naumur/presence-backend-go/internal/domain/attendance"
	"github.com/naumur/presence-backend-go/internal/domain/report"
	"github.com/naumur/presence-backend-go/internal/domain/user"
)

// SummarizeEmployee aggregates one employee's records over [start, end]
// clipped to their start date and today. Days outside the clipped window
// count neither present nor absent.
func SummarizeEmployee(u user.User, days []attendance.AttendanceDay, start, end, today time.Time) report.EmployeeSummary {
	summary := report.EmployeeSummary{
		UserID: u.ID,
		Name:   u.DisplayName(),
	}
	if u.DepartmentName != nil {
		summary.DepartmentName = *u.DepartmentName
	}

	start, end, ok := attendance.ClipWindow(start, end, u.StartDate, today)
	if !ok {
		return summary
	}

	summary.ExpectedDays = attendance.WorkingDaysBetween(start, end)
	summary.ExpectedHours = float64(summary.ExpectedDays) * attendance.ExpectedDailyHours(u.IsIntern)

	for i := range days {
		date := attendance.DateOnly(days[i].Date)
		if date.Before(start) || date.After(end) {
			continue
		}
		if days[i].IsPresent() {
			summary.PresentDays++
			summary.PresentHours += days[i].WorkedHours()
		}
	}

	summary.AbsentDays = summary.ExpectedDays - summary.PresentDays
	if summary.AbsentDays < 0 {
		summary.AbsentDays = 0
	}
	summary.AbsentHours = summary.ExpectedHours - summary.PresentHours
	if summary.AbsentHours < 0 {
		summary.AbsentHours = 0
	}

	return summary
}

// SummarizeDepartments rolls employee summaries up per department. The
// rate is present/expected as a percentage, zero when nothing was
// expected in the window.
func SummarizeDepartments(employees []user.User, summaries map[string]report.EmployeeSummary) []report.DepartmentSummary {
	type bucket struct {
		id       string
		name     string
		expected int
		present  int
	}

	var order []string
	buckets := make(map[string]*bucket)

	for _, emp := range employees {
		id, name := "", "Unassigned"
		if emp.DepartmentID != nil {
			id = *emp.DepartmentID
			if emp.DepartmentName != nil {
				name = *emp.DepartmentName
			}
		}
		b, ok := buckets[id]
		if !ok {
			b = &bucket{id: id, name: name}
			buckets[id] = b
			order = append(order, id)
		}
		if s, ok := summaries[emp.ID]; ok {
			b.expected += s.ExpectedDays
			b.present += s.PresentDays
		}
	}

	result := make([]report.DepartmentSummary, 0, len(order))
	for _, id := range order {
		b := buckets[id]
		rate := 0.0
		if b.expected > 0 {
			rate = float64(b.present) / float64(b.expected) * 100
		}
		result = append(result, report.DepartmentSummary{
			DepartmentID: b.id,
			Name:         b.name,
			Expected:     b.expected,
			Present:      b.present,
			Rate:         rate,
		})
	}

	return result
}
