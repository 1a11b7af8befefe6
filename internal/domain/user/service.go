package user

import (
	"context"
	"mime/multipart"
)

// EmployeeService defines business logic for the employee directory
type EmployeeService interface {
	// CreateEmployee registers an employee account with a hashed
	// credential. Rejects duplicate usernames.
	CreateEmployee(ctx context.Context, actorID string, req CreateEmployeeRequest) (EmployeeResponse, error)

	// ListEmployees returns active employees ordered by department then
	// name.
	ListEmployees(ctx context.Context) (ListEmployeesResponse, error)

	// GetEmployee fetches one user by id.
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// UploadProfileImage stores the image and records its path on the
	// account. Users may replace their own image; elevated roles may
	// replace anyone's.
	UploadProfileImage(ctx context.Context, actorID, targetID string, file multipart.File, header *multipart.FileHeader) (EmployeeResponse, error)
}
