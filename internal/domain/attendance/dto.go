package attendance

import (
	"github.com/naumur/presence-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// SaveDayRequest edits one day's arrival/departure fields. UserID targets
// another employee (elevated actors only); empty means self. Times are
// "HH:MM" clock values; blank or malformed values fall back to the
// workday defaults.
type SaveDayRequest struct {
	UserID        string `json:"user_id,omitempty"`
	Date          string `json:"date"`
	SetArrival    bool   `json:"set_arrival"`
	ArrivalTime   string `json:"arrival_time,omitempty"`
	SetDeparture  bool   `json:"set_departure"`
	DepartureTime string `json:"departure_time,omitempty"`
}

func (r *SaveDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !r.SetArrival && !r.SetDeparture {
		errs = append(errs, validator.ValidationError{
			Field:   "set_arrival",
			Message: "select arrival or departure to save",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SaveDayResponse reports the outcome of a day edit. Warnings carry
// state-conflict messages for fields that were skipped without mutation.
type SaveDayResponse struct {
	Changed  int          `json:"changed"`
	Message  string       `json:"message"`
	Warnings []string     `json:"warnings,omitempty"`
	Day      *DayResponse `json:"day,omitempty"`
}

// DayResponse is the wire form of one attendance day.
type DayResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	Date           string  `json:"date"`
	ArrivalTime    *string `json:"arrival_time"`
	DepartureTime  *string `json:"departure_time"`
	VerifiedBy     *string `json:"verified_by,omitempty"`
	VerifiedByName *string `json:"verified_by_name,omitempty"`
	VerifiedAt     *string `json:"verified_at,omitempty"`
}

// WeekDayView is one row of the employee week view with edit flags
// precomputed from the lifecycle policy.
type WeekDayView struct {
	Date             string       `json:"date"`
	Record           *DayResponse `json:"record,omitempty"`
	CanEditArrival   bool         `json:"can_edit_arrival"`
	CanEditDeparture bool         `json:"can_edit_departure"`
	IsFuture         bool         `json:"is_future"`
	IsBeforeStart    bool         `json:"is_before_start"`
	IsLocked         bool         `json:"is_locked"`
}

// WeekSummary aggregates the viewed week clipped to the employee's start
// date and today.
type WeekSummary struct {
	PresentDays   int     `json:"present_days"`
	AbsentDays    int     `json:"absent_days"`
	ExpectedDays  int     `json:"expected_days"`
	PresentHours  float64 `json:"present_hours"`
	AbsentHours   float64 `json:"absent_hours"`
	ExpectedHours float64 `json:"expected_hours"`
}

type WeekViewResponse struct {
	WeekStart      string        `json:"week_start"`
	WeekEnd        string        `json:"week_end"`
	PrevWeek       string        `json:"prev_week"`
	NextWeek       string        `json:"next_week"`
	UserID         string        `json:"user_id"`
	UserName       string        `json:"user_name"`
	IsSelfEmployee bool          `json:"is_self_employee"`
	Days           []WeekDayView `json:"days"`
	Summary        WeekSummary   `json:"summary"`
}

// VerifyRequest carries the batch of attendance day ids to verify.
type VerifyRequest struct {
	IDs []string `json:"ids"`
}

func (r *VerifyRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ids",
			Message: "at least one attendance id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// VerifyResponse reports how many rows were newly verified. Re-submitting
// an already-verified batch yields zero.
type VerifyResponse struct {
	Verified int64 `json:"verified"`
}

// PendingResponse lists today's unverified employee records once the
// supervisor has checked in.
type PendingResponse struct {
	Date          string        `json:"date"`
	NeedsCheckIn  bool          `json:"needs_check_in"`
	CheckedInAt   *string       `json:"checked_in_at,omitempty"`
	Pending       []DayResponse `json:"pending"`
	PendingCount  int           `json:"pending_count"`
	WeekStartDate string        `json:"current_week_start"`
}

type CheckInResponse struct {
	Date        string  `json:"date"`
	ArrivalTime *string `json:"arrival_time"`
	Message     string  `json:"message"`
}

type CheckOutResponse struct {
	Date          string  `json:"date"`
	DepartureTime *string `json:"departure_time"`
	Message       string  `json:"message"`
}
