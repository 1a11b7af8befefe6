package postgresql

import (
	"context"
	"time"

	"github.com/naumur/presence-backend-go/internal/domain/attendance"
	"github.com/naumur/presence-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.AttendanceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, arrival_time, departure_time, verified_by, verified_at, created_at, updated_at
		FROM attendance_days
		WHERE user_id = $1 AND date = $2
	`

	rows, err := q.Query(ctx, query, userID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var day attendance.AttendanceDay
	if err := rows.Scan(
		&day.ID,
		&day.UserID,
		&day.Date,
		&day.ArrivalTime,
		&day.DepartureTime,
		&day.VerifiedBy,
		&day.VerifiedAt,
		&day.CreatedAt,
		&day.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &day, rows.Err()
}

// Upsert implements attendance.AttendanceRepository. COALESCE keeps the
// stored time when the incoming value is NULL, so a departure edit never
// wipes the arrival and vice versa.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, day attendance.AttendanceDay) (attendance.AttendanceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_days (user_id, date, arrival_time, departure_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, date) DO UPDATE SET
			arrival_time   = COALESCE(EXCLUDED.arrival_time, attendance_days.arrival_time),
			departure_time = COALESCE(EXCLUDED.departure_time, attendance_days.departure_time),
			updated_at     = NOW()
		RETURNING id, user_id, date, arrival_time, departure_time, verified_by, verified_at, created_at, updated_at
	`

	var saved attendance.AttendanceDay
	err := q.QueryRow(ctx, query, day.UserID, day.Date, day.ArrivalTime, day.DepartureTime).Scan(
		&saved.ID,
		&saved.UserID,
		&saved.Date,
		&saved.ArrivalTime,
		&saved.DepartureTime,
		&saved.VerifiedBy,
		&saved.VerifiedAt,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return attendance.AttendanceDay{}, err
	}

	return saved, nil
}

// ListByUserAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]attendance.AttendanceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, arrival_time, departure_time, verified_by, verified_at, created_at, updated_at
		FROM attendance_days
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []attendance.AttendanceDay
	for rows.Next() {
		var day attendance.AttendanceDay
		if err := rows.Scan(
			&day.ID,
			&day.UserID,
			&day.Date,
			&day.ArrivalTime,
			&day.DepartureTime,
			&day.VerifiedBy,
			&day.VerifiedAt,
			&day.CreatedAt,
			&day.UpdatedAt,
		); err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return days, rows.Err()
}

// ListByRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByRange(ctx context.Context, start, end time.Time) ([]attendance.AttendanceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, a.date, a.arrival_time, a.departure_time, a.verified_by, a.verified_at,
		       a.created_at, a.updated_at, u.full_name, d.name, v.full_name
		FROM attendance_days a
		JOIN users u ON u.id = a.user_id
		LEFT JOIN departments d ON d.id = u.department_id
		LEFT JOIN users v ON v.id = a.verified_by
		WHERE a.date BETWEEN $1 AND $2 AND u.is_active = TRUE
		ORDER BY d.name NULLS LAST, u.full_name, a.date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []attendance.AttendanceDay
	for rows.Next() {
		var day attendance.AttendanceDay
		if err := rows.Scan(
			&day.ID,
			&day.UserID,
			&day.Date,
			&day.ArrivalTime,
			&day.DepartureTime,
			&day.VerifiedBy,
			&day.VerifiedAt,
			&day.CreatedAt,
			&day.UpdatedAt,
			&day.UserName,
			&day.DepartmentName,
			&day.VerifiedByName,
		); err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return days, rows.Err()
}

// ListPendingVerification implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListPendingVerification(ctx context.Context, date time.Time) ([]attendance.AttendanceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, a.date, a.arrival_time, a.departure_time, a.verified_by, a.verified_at,
		       a.created_at, a.updated_at, u.full_name, d.name
		FROM attendance_days a
		JOIN users u ON u.id = a.user_id
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE a.date = $1 AND a.arrival_time IS NOT NULL AND a.verified_by IS NULL
		  AND u.is_active = TRUE AND u.role = 'employee'
		ORDER BY d.name NULLS LAST, u.full_name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []attendance.AttendanceDay
	for rows.Next() {
		var day attendance.AttendanceDay
		if err := rows.Scan(
			&day.ID,
			&day.UserID,
			&day.Date,
			&day.ArrivalTime,
			&day.DepartureTime,
			&day.VerifiedBy,
			&day.VerifiedAt,
			&day.CreatedAt,
			&day.UpdatedAt,
			&day.UserName,
			&day.DepartmentName,
		); err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return days, rows.Err()
}

// VerifyBatch implements attendance.AttendanceRepository. The WHERE
// clause makes the batch idempotent: re-sent ids that are already
// verified, or rows without an arrival, are skipped without error.
func (r *attendanceRepositoryImpl) VerifyBatch(ctx context.Context, ids []string, verifierID string, at time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_days
		SET verified_by = $1, verified_at = $2, updated_at = NOW()
		WHERE id = ANY($3) AND verified_by IS NULL AND arrival_time IS NOT NULL
	`

	tag, err := q.Exec(ctx, query, verifierID, at, ids)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

// CountPresentInRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountPresentInRange(ctx context.Context, userIDs []string, start, end time.Time) (int, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendance_days
		WHERE user_id = ANY($1) AND date BETWEEN $2 AND $3 AND arrival_time IS NOT NULL
	`

	var count int
	if err := q.QueryRow(ctx, query, userIDs, start, end).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
