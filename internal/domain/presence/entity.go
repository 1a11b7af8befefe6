package presence

import "time"

// DailyLogin is one row per (user, date) of derived login state, updated
// by login/logout events and the activity heartbeat. Never user-editable.
type DailyLogin struct {
	ID           string
	UserID       string
	Date         time.Time
	FirstLoginAt *time.Time
	LastLoginAt  *time.Time
	LastSeenAt   *time.Time
	LastIP       string
	Online       bool

	// DTO / Join
	UserName *string
}

// IsOnline derives the effective online status. The stored flag alone is
// not trusted: a missed logout would leave it stale, so the row also has
// to have been seen within the TTL.
func (d *DailyLogin) IsOnline(now time.Time, ttl time.Duration) bool {
	if !d.Online || d.LastSeenAt == nil {
		return false
	}
	return now.Sub(*d.LastSeenAt) <= ttl
}

// Session is one login session. A user may hold several concurrently.
type Session struct {
	ID         string
	UserID     string
	SessionKey string
	IPAddress  string
	UserAgent  string
	LoginAt    time.Time
	LastSeenAt *time.Time
	LogoutAt   *time.Time
	IsActive   bool
}
