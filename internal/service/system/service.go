package system

import (
	"context"
	"fmt"
	"time"

	"github.com/naumur/presence-backend-go/internal/domain/audit"
	"github.com/naumur/presence-backend-go/internal/pkg/backup"
	"github.com/naumur/presence-backend-go/internal/pkg/cron"
	auditsvc "github.com/naumur/presence-backend-go/internal/service/audit"
)

// SystemService runs database backups, on demand and on schedule.
type SystemService struct {
	runner   *backup.Runner
	recorder *auditsvc.Recorder
}

func NewSystemService(runner *backup.Runner, recorder *auditsvc.Recorder) *SystemService {
	return &SystemService{runner: runner, recorder: recorder}
}

// RunBackup dumps the database and records the outcome. actorID is nil
// for scheduled runs.
func (s *SystemService) RunBackup(ctx context.Context, actorID *string) (string, error) {
	path, err := s.runner.Run(ctx)
	if err != nil {
		s.recorder.Record(ctx, audit.Entry{
			EventType: audit.EventBackup,
			Message:   fmt.Sprintf("backup failed: %v", err),
			UserID:    actorID,
		})
		return "", err
	}

	s.recorder.Record(ctx, audit.Entry{
		EventType: audit.EventBackup,
		Message:   fmt.Sprintf("backup written to %s", path),
		UserID:    actorID,
		Meta:      map[string]interface{}{"path": path},
	})

	return path, nil
}

// RegisterJobs wires the scheduled backup onto the cron scheduler.
func (s *SystemService) RegisterJobs(scheduler *cron.Scheduler, interval time.Duration) {
	scheduler.AddJob("database_backup", interval, func(ctx context.Context) error {
		_, err := s.RunBackup(ctx, nil)
		return err
	})
}
