package postgresql

import (
	"context"
	"time"

	"github.com/naumur/presence-backend-go/internal/domain/presence"
	"github.com/naumur/presence-backend-go/internal/pkg/database"
)

type presenceRepositoryImpl struct {
	db *database.DB
}

func NewPresenceRepository(db *database.DB) presence.PresenceRepository {
	return &presenceRepositoryImpl{db: db}
}

// RecordLogin implements presence.PresenceRepository. first_login_at is
// written once per day; every later login only advances the rest.
func (r *presenceRepositoryImpl) RecordLogin(ctx context.Context, userID string, date time.Time, at time.Time, ip string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_daily_logins (user_id, date, first_login_at, last_login_at, last_seen_at, last_ip, online)
		VALUES ($1, $2, $3, $3, $3, $4, TRUE)
		ON CONFLICT (user_id, date) DO UPDATE SET
			first_login_at = COALESCE(user_daily_logins.first_login_at, EXCLUDED.first_login_at),
			last_login_at  = EXCLUDED.last_login_at,
			last_seen_at   = EXCLUDED.last_seen_at,
			last_ip        = EXCLUDED.last_ip,
			online         = TRUE
	`

	_, err := q.Exec(ctx, query, userID, date, at, ip)
	return err
}

// Touch implements presence.PresenceRepository. Inserts the row when a
// session spans midnight and the day's first event is a heartbeat.
func (r *presenceRepositoryImpl) Touch(ctx context.Context, userID string, date time.Time, seenAt time.Time, ip string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_daily_logins (user_id, date, last_seen_at, last_ip, online)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT (user_id, date) DO UPDATE SET
			last_seen_at = EXCLUDED.last_seen_at,
			last_ip      = EXCLUDED.last_ip,
			online       = TRUE
	`

	_, err := q.Exec(ctx, query, userID, date, seenAt, ip)
	return err
}

// SetOffline implements presence.PresenceRepository.
func (r *presenceRepositoryImpl) SetOffline(ctx context.Context, userID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE user_daily_logins SET online = FALSE WHERE user_id = $1 AND date = $2`,
		userID, date,
	)
	return err
}

// ListByDate implements presence.PresenceRepository.
func (r *presenceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]presence.DailyLogin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.user_id, l.date, l.first_login_at, l.last_login_at, l.last_seen_at, l.last_ip, l.online,
		       u.full_name
		FROM user_daily_logins l
		JOIN users u ON u.id = l.user_id
		WHERE l.date = $1
		ORDER BY u.full_name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logins []presence.DailyLogin
	for rows.Next() {
		var l presence.DailyLogin
		if err := rows.Scan(
			&l.ID,
			&l.UserID,
			&l.Date,
			&l.FirstLoginAt,
			&l.LastLoginAt,
			&l.LastSeenAt,
			&l.LastIP,
			&l.Online,
			&l.UserName,
		); err != nil {
			return nil, err
		}
		logins = append(logins, l)
	}

	return logins, rows.Err()
}

// CreateSession implements presence.PresenceRepository.
func (r *presenceRepositoryImpl) CreateSession(ctx context.Context, s presence.Session) (presence.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_sessions (user_id, session_key, ip_address, user_agent, login_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, session_key, ip_address, user_agent, login_at, last_seen_at, logout_at, is_active
	`

	var created presence.Session
	err := q.QueryRow(ctx, query, s.UserID, s.SessionKey, s.IPAddress, s.UserAgent, s.LoginAt).Scan(
		&created.ID,
		&created.UserID,
		&created.SessionKey,
		&created.IPAddress,
		&created.UserAgent,
		&created.LoginAt,
		&created.LastSeenAt,
		&created.LogoutAt,
		&created.IsActive,
	)
	if err != nil {
		return presence.Session{}, err
	}

	return created, nil
}

// TouchSession implements presence.PresenceRepository.
func (r *presenceRepositoryImpl) TouchSession(ctx context.Context, sessionKey string, seenAt time.Time, ip string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE user_sessions SET last_seen_at = $1, ip_address = $2 WHERE session_key = $3 AND is_active = TRUE`,
		seenAt, ip, sessionKey,
	)
	return err
}

// CloseSession implements presence.PresenceRepository.
func (r *presenceRepositoryImpl) CloseSession(ctx context.Context, userID, sessionKey string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE user_sessions SET is_active = FALSE, logout_at = $1 WHERE user_id = $2 AND session_key = $3 AND is_active = TRUE`,
		at, userID, sessionKey,
	)
	return err
}
