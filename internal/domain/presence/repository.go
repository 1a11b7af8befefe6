package presence

import (
	"context"
	"time"
)

// PresenceRepository persists session rows and per-day login state.
type PresenceRepository interface {
	// RecordLogin upserts today's daily login row: first_login_at is set
	// only when absent, the rest always advances.
	RecordLogin(ctx context.Context, userID string, date time.Time, at time.Time, ip string) error

	// Touch advances last_seen_at/last_ip and marks the row online.
	// Creates the row when the user's first event of the day is not a
	// login (e.g. a session spanning midnight).
	Touch(ctx context.Context, userID string, date time.Time, seenAt time.Time, ip string) error

	// SetOffline clears the online flag for the user's row on the date.
	SetOffline(ctx context.Context, userID string, date time.Time) error

	// ListByDate returns all daily login rows for a date with user names
	// joined.
	ListByDate(ctx context.Context, date time.Time) ([]DailyLogin, error)

	// CreateSession records a new login session.
	CreateSession(ctx context.Context, s Session) (Session, error)

	// TouchSession advances an active session's last_seen_at and ip.
	TouchSession(ctx context.Context, sessionKey string, seenAt time.Time, ip string) error

	// CloseSession deactivates the session and stamps logout_at.
	CloseSession(ctx context.Context, userID, sessionKey string, at time.Time) error
}
