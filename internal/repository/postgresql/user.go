package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/naumur/presence-backend-go/internal/domain/user"
	"github.com/naumur/presence-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `u.id, u.username, u.password_hash, u.full_name, u.role, u.department_id,
	u.is_intern, u.start_date, u.profile_image_path, u.is_active, u.created_at, u.updated_at,
	d.name AS department_name`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.FullName,
		&u.Role,
		&u.DepartmentID,
		&u.IsIntern,
		&u.StartDate,
		&u.ProfileImagePath,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.DepartmentName,
	)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO users (username, password_hash, full_name, role, department_id, is_intern, start_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING *
		)
		SELECT ` + userColumns + `
		FROM inserted u
		LEFT JOIN departments d ON d.id = u.department_id
	`

	created, err := scanUser(q.QueryRow(ctx, query,
		newUser.Username,
		newUser.PasswordHash,
		newUser.FullName,
		newUser.Role,
		newUser.DepartmentID,
		newUser.IsIntern,
		newUser.StartDate,
	))
	if err != nil {
		return user.User{}, err
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE u.id = $1
	`

	found, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE u.username = $1
	`

	found, err := scanUser(q.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

// ExistsByUsername implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// ListEmployees implements user.UserRepository.
func (r *userRepositoryImpl) ListEmployees(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE u.is_active = TRUE AND u.role = 'employee'
		ORDER BY d.name NULLS LAST, u.full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// ListEmployeesByDepartment implements user.UserRepository.
func (r *userRepositoryImpl) ListEmployeesByDepartment(ctx context.Context, departmentID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE u.is_active = TRUE AND u.role = 'employee' AND u.department_id = $1
		ORDER BY u.full_name
	`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// UpdateProfileImage implements user.UserRepository.
func (r *userRepositoryImpl) UpdateProfileImage(ctx context.Context, id string, path string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET profile_image_path = $1, updated_at = NOW() WHERE id = $2`, path, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
