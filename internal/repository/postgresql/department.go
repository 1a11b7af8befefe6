package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/naumur/presence-backend-go/internal/domain/department"
	"github.com/naumur/presence-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (code, name)
		VALUES ($1, $2)
		RETURNING id, code, name, is_active, created_at
	`

	var created department.Department
	err := q.QueryRow(ctx, query, d.Code, d.Name).Scan(
		&created.ID,
		&created.Code,
		&created.Name,
		&created.IsActive,
		&created.CreatedAt,
	)
	if err != nil {
		return department.Department{}, err
	}

	return created, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, code, name, is_active, created_at FROM departments WHERE id = $1`

	var found department.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Code,
		&found.Name,
		&found.IsActive,
		&found.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, err
	}

	return found, nil
}

// ExistsByCode implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) ExistsByCode(ctx context.Context, code string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM departments WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, code, name, is_active, created_at FROM departments`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.Code, &d.Name, &d.IsActive, &d.CreatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}

	return departments, rows.Err()
}

// Deactivate implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE departments SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}
