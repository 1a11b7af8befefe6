package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/naumur/presence-backend-go/internal/domain/justification"
	"github.com/naumur/presence-backend-go/internal/pkg/database"
)

type justificationRepositoryImpl struct {
	db *database.DB
}

func NewJustificationRepository(db *database.DB) justification.JustificationRepository {
	return &justificationRepositoryImpl{db: db}
}

const justificationColumns = `j.id, j.user_id, j.created_by, j.start_date, j.end_date, j.reason,
	j.other_reason, j.receipt_path, j.status, j.decided_by, j.decided_at, j.created_at,
	u.full_name, c.full_name`

func scanJustification(row pgx.Row) (justification.Justification, error) {
	var j justification.Justification
	err := row.Scan(
		&j.ID,
		&j.UserID,
		&j.CreatedBy,
		&j.StartDate,
		&j.EndDate,
		&j.Reason,
		&j.OtherReason,
		&j.ReceiptPath,
		&j.Status,
		&j.DecidedBy,
		&j.DecidedAt,
		&j.CreatedAt,
		&j.UserName,
		&j.CreatedByName,
	)
	return j, err
}

// Create implements justification.JustificationRepository.
func (r *justificationRepositoryImpl) Create(ctx context.Context, j justification.Justification) (justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO absence_justifications (user_id, created_by, start_date, end_date, reason, other_reason, receipt_path)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING *
		)
		SELECT ` + justificationColumns + `
		FROM inserted j
		JOIN users u ON u.id = j.user_id
		JOIN users c ON c.id = j.created_by
	`

	created, err := scanJustification(q.QueryRow(ctx, query,
		j.UserID, j.CreatedBy, j.StartDate, j.EndDate, j.Reason, j.OtherReason, j.ReceiptPath,
	))
	if err != nil {
		return justification.Justification{}, err
	}

	return created, nil
}

// GetByID implements justification.JustificationRepository.
func (r *justificationRepositoryImpl) GetByID(ctx context.Context, id string) (justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + justificationColumns + `
		FROM absence_justifications j
		JOIN users u ON u.id = j.user_id
		JOIN users c ON c.id = j.created_by
		WHERE j.id = $1
	`

	found, err := scanJustification(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return justification.Justification{}, justification.ErrJustificationNotFound
		}
		return justification.Justification{}, err
	}

	return found, nil
}

// Decide implements justification.JustificationRepository. The status
// guard in the WHERE clause makes decisions one-way.
func (r *justificationRepositoryImpl) Decide(ctx context.Context, id string, status justification.Status, decidedBy string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE absence_justifications SET status = $1, decided_by = $2, decided_at = $3 WHERE id = $4 AND status = 'pending'`,
		status, decidedBy, at, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM absence_justifications WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return justification.ErrJustificationNotFound
		}
		return justification.ErrAlreadyProcessed
	}
	return nil
}

// List implements justification.JustificationRepository.
func (r *justificationRepositoryImpl) List(ctx context.Context, filter justification.ListFilter) ([]justification.Justification, int64, error) {
	q := GetQuerier(ctx, r.db)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	countQuery := `
		SELECT COUNT(*)
		FROM absence_justifications j
		WHERE ($1 = '' OR j.user_id::text = $1) AND ($2 = '' OR j.status = $2)
	`
	var total int64
	if err := q.QueryRow(ctx, countQuery, filter.UserID, string(filter.Status)).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + justificationColumns + `
		FROM absence_justifications j
		JOIN users u ON u.id = j.user_id
		JOIN users c ON c.id = j.created_by
		WHERE ($1 = '' OR j.user_id::text = $1) AND ($2 = '' OR j.status = $2)
		ORDER BY j.created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := q.Query(ctx, query, filter.UserID, string(filter.Status), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var justifications []justification.Justification
	for rows.Next() {
		j, err := scanJustification(rows)
		if err != nil {
			return nil, 0, err
		}
		justifications = append(justifications, j)
	}

	return justifications, total, rows.Err()
}
