package presence

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/naumur/presence-backend-go/internal/domain/presence"
)

type PresenceServiceImpl struct {
	presenceRepo      presence.PresenceRepository
	heartbeatInterval time.Duration
	onlineTTL         time.Duration
	now               func() time.Time

	mu       sync.Mutex
	lastBeat map[string]time.Time
}

func NewPresenceService(presenceRepo presence.PresenceRepository, heartbeatInterval, onlineTTL time.Duration) presence.PresenceService {
	return &PresenceServiceImpl{
		presenceRepo:      presenceRepo,
		heartbeatInterval: heartbeatInterval,
		onlineTTL:         onlineTTL,
		now:               time.Now,
		lastBeat:          make(map[string]time.Time),
	}
}

// Heartbeat implements presence.PresenceService. Writes are throttled to
// one per user per interval so the middleware can call this on every
// authenticated request. Failures are logged, never surfaced: presence
// tracking must not break the request it rides on.
func (s *PresenceServiceImpl) Heartbeat(ctx context.Context, userID, sessionKey, ip string) {
	now := s.now()

	s.mu.Lock()
	if last, ok := s.lastBeat[userID]; ok && now.Sub(last) < s.heartbeatInterval {
		s.mu.Unlock()
		return
	}
	s.lastBeat[userID] = now
	s.mu.Unlock()

	if err := s.presenceRepo.Touch(ctx, userID, now, now, ip); err != nil {
		slog.Error("Failed to touch daily login", "user_id", userID, "error", err)
	}
	if sessionKey != "" {
		if err := s.presenceRepo.TouchSession(ctx, sessionKey, now, ip); err != nil {
			slog.Error("Failed to touch session", "user_id", userID, "error", err)
		}
	}
}

// OnlineToday implements presence.PresenceService.
func (s *PresenceServiceImpl) OnlineToday(ctx context.Context) (presence.OnlineResponse, error) {
	now := s.now()

	logins, err := s.presenceRepo.ListByDate(ctx, now)
	if err != nil {
		return presence.OnlineResponse{}, fmt.Errorf("failed to list daily logins: %w", err)
	}

	response := presence.OnlineResponse{
		Date:  now.Format("2006-01-02"),
		Users: []presence.OnlineUser{},
	}
	for i := range logins {
		l := &logins[i]
		u := presence.OnlineUser{
			UserID: l.UserID,
			LastIP: l.LastIP,
			Online: l.IsOnline(now, s.onlineTTL),
		}
		if l.UserName != nil {
			u.UserName = *l.UserName
		}
		if l.LastSeenAt != nil {
			seen := l.LastSeenAt.Format(time.RFC3339)
			u.LastSeenAt = &seen
		}
		response.Users = append(response.Users, u)
	}

	return response, nil
}

// OnlineMap implements presence.PresenceService.
func (s *PresenceServiceImpl) OnlineMap(ctx context.Context) (map[string]bool, error) {
	now := s.now()

	logins, err := s.presenceRepo.ListByDate(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily logins: %w", err)
	}

	online := make(map[string]bool, len(logins))
	for i := range logins {
		online[logins[i].UserID] = logins[i].IsOnline(now, s.onlineTTL)
	}
	return online, nil
}
