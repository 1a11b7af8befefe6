package postgresql

import (
	"context"
	"encoding/json"

	"github.com/naumur/presence-backend-go/internal/domain/audit"
	"github.com/naumur/presence-backend-go/internal/pkg/database"
)

type auditRepositoryImpl struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepositoryImpl{db: db}
}

// Append implements audit.AuditRepository.
func (r *auditRepositoryImpl) Append(ctx context.Context, e audit.Entry) error {
	q := GetQuerier(ctx, r.db)

	var meta []byte
	if e.Meta != nil {
		var err error
		meta, err = json.Marshal(e.Meta)
		if err != nil {
			return err
		}
	}

	_, err := q.Exec(ctx,
		`INSERT INTO system_logs (event_type, message, user_id, ip_address, meta) VALUES ($1, $2, $3, $4, $5)`,
		e.EventType, e.Message, e.UserID, e.IPAddress, meta,
	)
	return err
}

// List implements audit.AuditRepository.
func (r *auditRepositoryImpl) List(ctx context.Context, filter audit.ListFilter) ([]audit.Entry, int64, error) {
	q := GetQuerier(ctx, r.db)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 50
	}
	offset := (page - 1) * limit

	countQuery := `SELECT COUNT(*) FROM system_logs WHERE ($1 = '' OR event_type = $1)`
	var total int64
	if err := q.QueryRow(ctx, countQuery, filter.EventType).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT l.id, l.event_type, l.message, l.user_id, l.ip_address, l.meta, l.created_at, u.full_name
		FROM system_logs l
		LEFT JOIN users u ON u.id = l.user_id
		WHERE ($1 = '' OR l.event_type = $1)
		ORDER BY l.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, filter.EventType, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var e audit.Entry
		var meta []byte
		if err := rows.Scan(
			&e.ID,
			&e.EventType,
			&e.Message,
			&e.UserID,
			&e.IPAddress,
			&meta,
			&e.CreatedAt,
			&e.UserName,
		); err != nil {
			return nil, 0, err
		}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &e.Meta); err != nil {
				return nil, 0, err
			}
		}
		entries = append(entries, e)
	}

	return entries, total, rows.Err()
}
