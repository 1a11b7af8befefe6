package presence

import (
	"context"
)

// PresenceService exposes derived online status and the activity
// heartbeat consumed by the HTTP middleware.
type PresenceService interface {
	// Heartbeat notes activity for the user's session and daily login
	// row. Throttled internally; cheap to call on every request.
	Heartbeat(ctx context.Context, userID, sessionKey, ip string)

	// OnlineToday lists today's daily logins with TTL-derived status.
	OnlineToday(ctx context.Context) (OnlineResponse, error)

	// OnlineMap returns user id -> derived online flag for today, used
	// by the admin dashboard cards.
	OnlineMap(ctx context.Context) (map[string]bool, error)
}
