package report

import (
	"sort"
	"time"

	"github.com/naumur/presence-backend-go/internal/domain/attendance"
	"github.com/naumur/presence-backend-go/internal/domain/department"
	"github.com/naumur/presence-backend-go/internal/domain/report"
	"github.com/naumur/presence-backend-go/internal/domain/user"
)

const unassignedLabel = "Unassigned"

func clockString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}

func timestampString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02 15:04")
	return &s
}

// BuildWeekMatrix arranges employees-by-weekday attendance into
// department groups. Every given department gets a group even when it
// has no employees yet. Groups are ordered by department name with the
// "Unassigned" group always last; rows within a group by employee name.
func BuildWeekMatrix(weekStart time.Time, departments []department.Department, employees []user.User, days []attendance.AttendanceDay) report.WeekMatrix {
	weekStart = attendance.WeekStart(weekStart)
	weekDates := attendance.WeekDays(weekStart)

	dates := make([]string, len(weekDates))
	for i, d := range weekDates {
		dates[i] = d.Format("2006-01-02")
	}

	byUserDate := make(map[string]map[string]*attendance.AttendanceDay)
	for i := range days {
		d := &days[i]
		if byUserDate[d.UserID] == nil {
			byUserDate[d.UserID] = make(map[string]*attendance.AttendanceDay)
		}
		byUserDate[d.UserID][d.Date.Format("2006-01-02")] = d
	}

	groups := make(map[string]*report.MatrixGroup)
	for _, dept := range departments {
		groups[dept.Name] = &report.MatrixGroup{
			DepartmentID: dept.ID,
			Label:        dept.Name,
			Rows:         []report.MatrixRow{},
		}
	}

	for _, emp := range employees {
		label := unassignedLabel
		deptID := ""
		if emp.DepartmentID != nil && emp.DepartmentName != nil {
			label = *emp.DepartmentName
			deptID = *emp.DepartmentID
		}

		group, ok := groups[label]
		if !ok {
			group = &report.MatrixGroup{DepartmentID: deptID, Label: label}
			groups[label] = group
		}

		cells := make([]report.MatrixCell, 0, len(dates))
		for _, date := range dates {
			cell := report.MatrixCell{Date: date}
			if record := byUserDate[emp.ID][date]; record != nil {
				cell.Arrival = clockString(record.ArrivalTime)
				cell.Departure = clockString(record.DepartureTime)
				cell.VerifiedBy = record.VerifiedByName
				cell.VerifiedAt = timestampString(record.VerifiedAt)
				cell.IsVerified = record.IsVerified()
			}
			cells = append(cells, cell)
		}

		group.Rows = append(group.Rows, report.MatrixRow{
			UserID:       emp.ID,
			EmployeeName: emp.DisplayName(),
			Cells:        cells,
		})
	}

	labels := make([]string, 0, len(groups))
	for label := range groups {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if labels[i] == unassignedLabel {
			return false
		}
		if labels[j] == unassignedLabel {
			return true
		}
		return labels[i] < labels[j]
	})

	ordered := make([]report.MatrixGroup, 0, len(labels))
	for _, label := range labels {
		group := groups[label]
		sort.Slice(group.Rows, func(i, j int) bool {
			return group.Rows[i].EmployeeName < group.Rows[j].EmployeeName
		})
		ordered = append(ordered, *group)
	}

	return report.WeekMatrix{
		WeekStart: weekStart.Format("2006-01-02"),
		WeekEnd:   weekStart.AddDate(0, 0, 6).Format("2006-01-02"),
		Days:      dates,
		Groups:    ordered,
	}
}
