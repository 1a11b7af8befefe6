package audit

import (
	"context"
	"log/slog"

	"github.com/naumur/presence-backend-go/internal/domain/audit"
)

// Recorder writes audit entries. Failures are logged, never propagated:
// the audit trail must not break the operation it describes.
type Recorder struct {
	repo audit.AuditRepository
}

func NewRecorder(repo audit.AuditRepository) *Recorder {
	return &Recorder{repo: repo}
}

func (r *Recorder) Record(ctx context.Context, e audit.Entry) {
	if err := r.repo.Append(ctx, e); err != nil {
		slog.Error("Failed to append audit entry",
			"event_type", e.EventType,
			"message", e.Message,
			"error", err,
		)
	}
}

// List exposes the trail for the admin log viewer.
func (r *Recorder) List(ctx context.Context, filter audit.ListFilter) ([]audit.Entry, int64, error) {
	return r.repo.List(ctx, filter)
}
