package justification

import "time"

type Reason string

const (
	ReasonSick   Reason = "sick"
	ReasonFamily Reason = "family"
	ReasonTravel Reason = "travel"
	ReasonOther  Reason = "other"
)

// ValidReason reports whether the reason is one of the known values.
func ValidReason(r Reason) bool {
	switch r {
	case ReasonSick, ReasonFamily, ReasonTravel, ReasonOther:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// CanDecide reports whether the justification may still be approved or
// rejected. Decisions are one-way; there is no re-opening.
func (s Status) CanDecide() bool {
	return s == StatusPending
}

// Justification explains an employee's absence over a date range. Always
// created by a supervisor or admin on the employee's behalf.
type Justification struct {
	ID          string
	UserID      string
	CreatedBy   string
	StartDate   time.Time
	EndDate     time.Time
	Reason      Reason
	OtherReason *string
	ReceiptPath *string
	Status      Status
	DecidedBy   *string
	DecidedAt   *time.Time
	CreatedAt   time.Time

	// DTO / Join
	UserName      *string
	CreatedByName *string
}
