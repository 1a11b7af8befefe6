package presence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naumur/presence-backend-go/internal/domain/presence"
)

type fakePresenceRepo struct {
	touches        int
	sessionTouches int
	logins         []presence.DailyLogin
}

func (f *fakePresenceRepo) RecordLogin(ctx context.Context, userID string, date, at time.Time, ip string) error {
	return nil
}

func (f *fakePresenceRepo) Touch(ctx context.Context, userID string, date, seenAt time.Time, ip string) error {
	f.touches++
	return nil
}

func (f *fakePresenceRepo) SetOffline(ctx context.Context, userID string, date time.Time) error {
	return nil
}

func (f *fakePresenceRepo) ListByDate(ctx context.Context, date time.Time) ([]presence.DailyLogin, error) {
	return f.logins, nil
}

func (f *fakePresenceRepo) CreateSession(ctx context.Context, s presence.Session) (presence.Session, error) {
	return s, nil
}

func (f *fakePresenceRepo) TouchSession(ctx context.Context, sessionKey string, seenAt time.Time, ip string) error {
	f.sessionTouches++
	return nil
}

func (f *fakePresenceRepo) CloseSession(ctx context.Context, userID, sessionKey string, at time.Time) error {
	return nil
}

func TestHeartbeatThrottlesWrites(t *testing.T) {
	repo := &fakePresenceRepo{}
	svc := NewPresenceService(repo, time.Minute, 5*time.Minute).(*PresenceServiceImpl)

	current := time.Date(2026, time.January, 7, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return current }

	ctx := context.Background()
	svc.Heartbeat(ctx, "u1", "sess-1", "10.0.0.1")
	svc.Heartbeat(ctx, "u1", "sess-1", "10.0.0.1")
	svc.Heartbeat(ctx, "u1", "sess-1", "10.0.0.1")
	assert.Equal(t, 1, repo.touches)
	assert.Equal(t, 1, repo.sessionTouches)

	// A different user is not throttled by the first
	svc.Heartbeat(ctx, "u2", "sess-2", "10.0.0.2")
	assert.Equal(t, 2, repo.touches)

	// After the interval the same user writes again
	current = current.Add(61 * time.Second)
	svc.Heartbeat(ctx, "u1", "sess-1", "10.0.0.1")
	assert.Equal(t, 3, repo.touches)
}

func TestOnlineTodayDerivesStatus(t *testing.T) {
	now := time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-time.Minute)
	stale := now.Add(-time.Hour)
	name1, name2 := "Aida T", "Bolat A"

	repo := &fakePresenceRepo{logins: []presence.DailyLogin{
		{UserID: "u1", UserName: &name1, Online: true, LastSeenAt: &recent, LastIP: "10.0.0.1"},
		{UserID: "u2", UserName: &name2, Online: true, LastSeenAt: &stale},
	}}
	svc := NewPresenceService(repo, time.Minute, 5*time.Minute).(*PresenceServiceImpl)
	svc.now = func() time.Time { return now }

	result, err := svc.OnlineToday(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Users, 2)
	assert.Equal(t, "Aida T", result.Users[0].UserName)
	assert.True(t, result.Users[0].Online)
	assert.False(t, result.Users[1].Online)

	online, err := svc.OnlineMap(context.Background())
	require.NoError(t, err)
	assert.True(t, online["u1"])
	assert.False(t, online["u2"])
}
