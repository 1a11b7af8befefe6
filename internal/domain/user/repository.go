package user

import "context"

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	// Create creates a new user account
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id string) (User, error)

	// GetByUsername retrieves a user by unique username
	GetByUsername(ctx context.Context, username string) (User, error)

	// ExistsByUsername reports whether the username is taken
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ListEmployees returns active employee accounts ordered by
	// department name then full name
	ListEmployees(ctx context.Context) ([]User, error)

	// ListEmployeesByDepartment returns active employees of one department
	ListEmployeesByDepartment(ctx context.Context, departmentID string) ([]User, error)

	// UpdateProfileImage persists the stored profile image path
	UpdateProfileImage(ctx context.Context, id string, path string) error
}
