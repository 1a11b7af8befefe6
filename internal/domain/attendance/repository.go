package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance days.
type AttendanceRepository interface {
	// GetByUserAndDate retrieves the record for one employee on one date.
	// Returns nil when no row exists yet.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*AttendanceDay, error)

	// Upsert inserts the (user, date) row or merges the provided times
	// into the existing one. Non-nil arrival/departure values replace the
	// stored ones; nil values leave them untouched. Fields are never
	// cleared.
	Upsert(ctx context.Context, day AttendanceDay) (AttendanceDay, error)

	// ListByUserAndRange returns an employee's records with date in the
	// inclusive [start, end] range, ordered by date.
	ListByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]AttendanceDay, error)

	// ListByRange returns all employees' records in the range with user
	// and verifier names joined, ordered by department, employee, date.
	ListByRange(ctx context.Context, start, end time.Time) ([]AttendanceDay, error)

	// ListPendingVerification returns employee records on the given date
	// with an arrival recorded and no verifier yet.
	ListPendingVerification(ctx context.Context, date time.Time) ([]AttendanceDay, error)

	// VerifyBatch stamps verified_by/verified_at on the given ids in one
	// conditional update, skipping rows already verified or lacking an
	// arrival. Returns the number of rows newly verified.
	VerifyBatch(ctx context.Context, ids []string, verifierID string, at time.Time) (int64, error)

	// CountPresentInRange counts rows with an arrival recorded for the
	// given users within [start, end].
	CountPresentInRange(ctx context.Context, userIDs []string, start, end time.Time) (int, error)
}
