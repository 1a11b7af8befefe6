package audit

import "context"

// ListFilter narrows the audit trail listing.
type ListFilter struct {
	EventType string
	Page      int
	Limit     int
}

// AuditRepository persists the append-only system log.
type AuditRepository interface {
	// Append inserts one entry. The log is never updated or deleted.
	Append(ctx context.Context, e Entry) error

	// List returns entries newest first with the total count.
	List(ctx context.Context, filter ListFilter) ([]Entry, int64, error)
}
