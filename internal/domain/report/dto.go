package report

// EmployeeSummary is one employee's presence/absence aggregate over a
// clipped date window.
type EmployeeSummary struct {
	UserID         string  `json:"user_id"`
	Name           string  `json:"name"`
	DepartmentName string  `json:"department,omitempty"`
	ExpectedDays   int     `json:"expected_days"`
	PresentDays    int     `json:"present_days"`
	AbsentDays     int     `json:"absent_days"`
	ExpectedHours  float64 `json:"expected_hours"`
	PresentHours   float64 `json:"present_hours"`
	AbsentHours    float64 `json:"absent_hours"`
}

// EmployeeCard is the all-time aggregate shown on the admin dashboard,
// with derived online status.
type EmployeeCard struct {
	UserID       string  `json:"user_id"`
	Name         string  `json:"name"`
	StartDate    string  `json:"start_date"`
	Online       bool    `json:"online"`
	PresentHours float64 `json:"present_hours"`
	AbsentHours  float64 `json:"absent_hours"`
	AbsentDays   int     `json:"absent_days"`
}

// DepartmentSummary aggregates expected/present day counts across a
// department's members. Rate is present/expected as a percentage and is
// zero when nothing was expected.
type DepartmentSummary struct {
	DepartmentID string  `json:"department_id"`
	Name         string  `json:"name"`
	Expected     int     `json:"expected"`
	Present      int     `json:"present"`
	Rate         float64 `json:"rate"`
}

type DashboardResponse struct {
	StartDate   string              `json:"start_date"`
	EndDate     string              `json:"end_date"`
	Departments []DepartmentSummary `json:"departments"`
	Employees   []EmployeeSummary   `json:"employees"`
	Cards       []EmployeeCard      `json:"cards"`
}

// MatrixCell is one weekday of one employee in the week matrix.
type MatrixCell struct {
	Date       string  `json:"date"`
	Arrival    *string `json:"arrival"`
	Departure  *string `json:"departure"`
	VerifiedBy *string `json:"verified_by"`
	VerifiedAt *string `json:"verified_at"`
	IsVerified bool    `json:"is_verified"`
}

type MatrixRow struct {
	UserID       string       `json:"user_id"`
	EmployeeName string       `json:"employee_name"`
	Cells        []MatrixCell `json:"cells"`
}

// MatrixGroup is one department's rows. Employees without a department
// fall into the trailing "Unassigned" group.
type MatrixGroup struct {
	DepartmentID string      `json:"department_id,omitempty"`
	Label        string      `json:"label"`
	Rows         []MatrixRow `json:"rows"`
}

type WeekMatrix struct {
	WeekStart string        `json:"week_start"`
	WeekEnd   string        `json:"week_end"`
	Days      []string      `json:"days"`
	Groups    []MatrixGroup `json:"groups"`
}

// HistoryWeek is one selectable week in the history index.
type HistoryWeek struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

type HistoryResponse struct {
	StartDate  string        `json:"start_date"`
	EndDate    string        `json:"end_date"`
	Weeks      []HistoryWeek `json:"weeks"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
}
