package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/naumur/presence-backend-go/internal/domain/attendance"
	"github.com/naumur/presence-backend-go/internal/domain/department"
	"github.com/naumur/presence-backend-go/internal/domain/user"
)

func exportFixture() ([]department.Department, []user.User, []attendance.AttendanceDay) {
	departments := []department.Department{
		{ID: "d1", Name: "Engineering"},
	}
	employees := []user.User{
		{ID: "u1", FullName: "Aida T", DepartmentID: strPtr("d1"), DepartmentName: strPtr("Engineering")},
		{ID: "u2", FullName: "Zarina K"},
	}
	days := []attendance.AttendanceDay{
		workedDay("u1", date(2026, time.January, 5), 9),
	}
	return departments, employees, days
}

func TestWriteCSVLayout(t *testing.T) {
	departments, employees, days := exportFixture()
	matrix := BuildWeekMatrix(date(2026, time.January, 5), departments, employees, days)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, matrix))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// Header: 2 identity columns + 4 per weekday
	header := records[0]
	assert.Len(t, header, 2+7*4)
	assert.Equal(t, "Department", header[0])
	assert.Equal(t, "Employee", header[1])
	assert.Equal(t, "2026-01-05 Arrival", header[2])
	assert.Equal(t, "2026-01-05 Departure", header[3])
	assert.Equal(t, "2026-01-05 Verified By", header[4])
	assert.Equal(t, "2026-01-05 Verified At", header[5])
	assert.Equal(t, "2026-01-11 Arrival", header[2+6*4])

	// One row per employee, grouped rows flattened in group order
	require.Len(t, records, 3)
	assert.Equal(t, "Engineering", records[1][0])
	assert.Equal(t, "Aida T", records[1][1])
	assert.Equal(t, "08:30", records[1][2])
	assert.Equal(t, "17:30", records[1][3])

	assert.Equal(t, "Unassigned", records[2][0])
	assert.Equal(t, "Zarina K", records[2][1])
	assert.Equal(t, "", records[2][2])
}

func TestWriteXLSXSheetPerDepartment(t *testing.T) {
	departments, employees, days := exportFixture()
	matrix := BuildWeekMatrix(date(2026, time.January, 5), departments, employees, days)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, matrix))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	// One sheet per department group, the default sheet removed
	sheets := f.GetSheetList()
	require.Equal(t, []string{"Engineering", "Unassigned"}, sheets)

	rows, err := f.GetRows("Engineering")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Department", rows[0][0])
	assert.Equal(t, "Aida T", rows[1][1])
	assert.Equal(t, "08:30", rows[1][2])

	rows, err = f.GetRows("Unassigned")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Zarina K", rows[1][1])
}

func TestWriteXLSXCapsSheetNames(t *testing.T) {
	long := department.Department{ID: "d9", Name: "Department Of Extremely Long Administrative Names"}
	matrix := BuildWeekMatrix(date(2026, time.January, 5), []department.Department{long}, nil, nil)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, matrix))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 1)
	assert.Equal(t, long.Name[:31], sheets[0])
}
