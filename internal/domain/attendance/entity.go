package attendance

import "time"

// AttendanceDay is the single record of one employee's attendance on one
// calendar date. Rows are created lazily on first edit and never deleted;
// the unique (user_id, date) key makes concurrent lazy creation safe.
type AttendanceDay struct {
	ID            string
	UserID        string
	Date          time.Time
	ArrivalTime   *time.Time
	DepartureTime *time.Time
	VerifiedBy    *string
	VerifiedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO / Join
	UserName       *string
	DepartmentName *string
	VerifiedByName *string
}

// IsPresent reports whether an arrival has been recorded.
func (a *AttendanceDay) IsPresent() bool {
	return a.ArrivalTime != nil
}

// IsVerified reports whether a supervisor or admin has confirmed the day.
func (a *AttendanceDay) IsVerified() bool {
	return a.VerifiedBy != nil
}

// WorkedHours returns the span between arrival and departure in hours.
// Days with only an arrival contribute zero; negative spans are floored
// at zero.
func (a *AttendanceDay) WorkedHours() float64 {
	if a.ArrivalTime == nil || a.DepartureTime == nil {
		return 0
	}
	hours := a.DepartureTime.Sub(*a.ArrivalTime).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}
