package attendance

import "errors"

// Attendance domain errors
var (
	// Lifecycle rejections
	ErrBeforeStartDate          = errors.New("day is before the employee start date")
	ErrFutureDate               = errors.New("day is in the future")
	ErrNotToday                 = errors.New("only today can be submitted")
	ErrDepartureRequiresArrival = errors.New("departure requires an arrival time")

	// State conflicts: the field is already set and the actor may not
	// overwrite it. Surfaced as a warning, not a failure.
	ErrArrivalAlreadySet   = errors.New("arrival already recorded, ask a supervisor or admin to edit")
	ErrDepartureAlreadySet = errors.New("departure already recorded, ask a supervisor or admin to edit")

	// Verification
	ErrCheckInRequired = errors.New("check in before verifying attendance")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
