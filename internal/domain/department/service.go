package department

import "context"

// DepartmentService defines business logic for departments
type DepartmentService interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	List(ctx context.Context, activeOnly bool) (ListResponse, error)
	Deactivate(ctx context.Context, id string) error
}
