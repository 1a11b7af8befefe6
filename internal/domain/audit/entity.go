package audit

import "time"

// Event types recorded in the system log.
const (
	EventLogin         = "login"
	EventAccount       = "account"
	EventLogout        = "logout"
	EventAttendance    = "attendance"
	EventVerify        = "verify"
	EventExport        = "export"
	EventBackup        = "backup"
	EventJustification = "justification"
)

// Entry is one append-only audit record. Entries are never mutated after
// creation.
type Entry struct {
	ID        string
	EventType string
	Message   string
	UserID    *string
	IPAddress string
	Meta      map[string]interface{}
	CreatedAt time.Time

	// DTO / Join
	UserName *string
}
