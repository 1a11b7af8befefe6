package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/naumur/presence-backend-go/internal/domain/attendance"
	"github.com/naumur/presence-backend-go/internal/domain/department"
	"github.com/naumur/presence-backend-go/internal/domain/user"
)

func TestBuildWeekMatrixGroupsAndOrder(t *testing.T) {
	weekStart := date(2026, time.January, 5)

	departments := []department.Department{
		{ID: "d1", Name: "Engineering"},
		{ID: "d2", Name: "Sales"},
	}
	employees := []user.User{
		{ID: "u3", FullName: "Zarina K"}, // unassigned
		{ID: "u1", FullName: "Bolat A", DepartmentID: strPtr("d2"), DepartmentName: strPtr("Sales")},
		{ID: "u2", FullName: "Aida T", DepartmentID: strPtr("d1"), DepartmentName: strPtr("Engineering")},
		{ID: "u4", FullName: "Aslan M", DepartmentID: strPtr("d1"), DepartmentName: strPtr("Engineering")},
	}

	days := []attendance.AttendanceDay{
		workedDay("u2", date(2026, time.January, 5), 9),
	}

	matrix := BuildWeekMatrix(weekStart, departments, employees, days)

	assert.Equal(t, "2026-01-05", matrix.WeekStart)
	assert.Equal(t, "2026-01-11", matrix.WeekEnd)
	assert.Len(t, matrix.Days, 7)

	// Departments alphabetical, Unassigned last
	assert.Len(t, matrix.Groups, 3)
	assert.Equal(t, "Engineering", matrix.Groups[0].Label)
	assert.Equal(t, "Sales", matrix.Groups[1].Label)
	assert.Equal(t, "Unassigned", matrix.Groups[2].Label)

	// Rows within a group ordered by name
	engineering := matrix.Groups[0]
	assert.Equal(t, "Aida T", engineering.Rows[0].EmployeeName)
	assert.Equal(t, "Aslan M", engineering.Rows[1].EmployeeName)

	// Every row carries a full week of cells
	for _, group := range matrix.Groups {
		for _, row := range group.Rows {
			assert.Len(t, row.Cells, 7)
		}
	}

	// Recorded day fills its cell; missing days stay empty
	monday := engineering.Rows[0].Cells[0]
	assert.NotNil(t, monday.Arrival)
	assert.Equal(t, "08:30", *monday.Arrival)
	assert.Nil(t, engineering.Rows[0].Cells[1].Arrival)
}

func TestBuildWeekMatrixNormalizesWeekStart(t *testing.T) {
	// A mid-week date snaps back to Monday.
	matrix := BuildWeekMatrix(date(2026, time.January, 7), nil, nil, nil)
	assert.Equal(t, "2026-01-05", matrix.WeekStart)
}

func TestBuildWeekMatrixKeepsEmptyDepartments(t *testing.T) {
	departments := []department.Department{
		{ID: "d1", Name: "Engineering"},
		{ID: "d2", Name: "Sales"},
	}
	employees := []user.User{
		{ID: "u1", FullName: "Aida T", DepartmentID: strPtr("d1"), DepartmentName: strPtr("Engineering")},
	}

	matrix := BuildWeekMatrix(date(2026, time.January, 5), departments, employees, nil)

	// Sales has no employees but still gets its group
	assert.Len(t, matrix.Groups, 2)
	assert.Equal(t, "Engineering", matrix.Groups[0].Label)
	assert.Equal(t, "Sales", matrix.Groups[1].Label)
	assert.Empty(t, matrix.Groups[1].Rows)

	// No unassigned employees, so no Unassigned group
	for _, group := range matrix.Groups {
		assert.NotEqual(t, "Unassigned", group.Label)
	}
}

func TestBuildWeekMatrixVerifiedCell(t *testing.T) {
	weekStart := date(2026, time.January, 5)
	verifiedAt := time.Date(2026, time.January, 5, 18, 0, 0, 0, time.UTC)

	day := workedDay("u1", weekStart, 9)
	day.VerifiedBy = strPtr("sup-id")
	day.VerifiedByName = strPtr("Supervisor S")
	day.VerifiedAt = &verifiedAt

	employees := []user.User{{ID: "u1", FullName: "Bolat A"}}
	matrix := BuildWeekMatrix(weekStart, nil, employees, []attendance.AttendanceDay{day})

	cell := matrix.Groups[0].Rows[0].Cells[0]
	assert.True(t, cell.IsVerified)
	assert.Equal(t, "Supervisor S", *cell.VerifiedBy)
	assert.Equal(t, "2026-01-05 18:00", *cell.VerifiedAt)
}
