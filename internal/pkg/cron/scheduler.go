package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a named function the scheduler runs on a fixed interval.
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

// Scheduler runs each registered job in its own goroutine until Stop is
// called. Jobs wait one full interval before their first run.
type Scheduler struct {
	mu     sync.Mutex
	jobs   []Job
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	s.jobs = append(s.jobs, Job{Name: name, Interval: interval, Fn: fn})
	s.mu.Unlock()

	slog.Info("Cron job registered", "name", name, "interval", interval)
}

func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	s.cancel = cancel
	for _, job := range s.jobs {
		s.wg.Add(1)
		go func(job Job) {
			defer s.wg.Done()
			s.run(ctx, job)
		}(job)
	}
	count := len(s.jobs)
	s.mu.Unlock()

	slog.Info("Cron scheduler started", "job_count", count)
}

// Stop cancels all jobs and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context, job Job) {
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Cron job stopping", "name", job.Name)
			return
		case <-ticker.C:
			start := time.Now()
			if err := job.Fn(ctx); err != nil {
				slog.Error("Cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
			} else {
				slog.Debug("Cron job completed", "name", job.Name, "duration", time.Since(start))
			}
		}
	}
}
