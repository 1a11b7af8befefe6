package department

import "context"

// DepartmentRepository defines data access methods for departments.
type DepartmentRepository interface {
	Create(ctx context.Context, d Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// List returns departments ordered by name. When activeOnly is set,
	// deactivated departments are excluded.
	List(ctx context.Context, activeOnly bool) ([]Department, error)

	// Deactivate soft-disables a department; member users keep their
	// reference until reassigned.
	Deactivate(ctx context.Context, id string) error
}
