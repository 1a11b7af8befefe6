package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for the attendance lifecycle
type AttendanceService interface {
	// GetWeek builds the week view for an employee: seven days with edit
	// flags plus presence/absence summary clipped to the start date.
	GetWeek(ctx context.Context, actorID, targetUserID string, weekStart time.Time) (WeekViewResponse, error)

	// SaveDay applies one day's arrival/departure edits under the
	// lifecycle policy. Skipped fields produce warnings, not errors.
	SaveDay(ctx context.Context, actorID string, req SaveDayRequest) (SaveDayResponse, error)

	// CheckIn records the actor's own arrival for today at the current
	// time. A second check-in the same day is a no-op.
	CheckIn(ctx context.Context, actorID string) (CheckInResponse, error)

	// CheckOut records the actor's own departure for today.
	CheckOut(ctx context.Context, actorID string) (CheckOutResponse, error)

	// PendingVerification lists today's unverified employee records. The
	// listing is gated on the supervisor having checked in first.
	PendingVerification(ctx context.Context, actorID string) (PendingResponse, error)

	// VerifyBatch marks the given attendance days verified by the actor.
	// Already-verified ids are silently excluded; the count reflects only
	// newly verified rows.
	VerifyBatch(ctx context.Context, actorID string, req VerifyRequest) (VerifyResponse, error)
}
