package department

import (
	"context"
	"fmt"
	"strings"

	"github.com/naumur/presence-backend-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{departmentRepo: departmentRepo}
}

func toResponse(d department.Department) department.Response {
	return department.Response{
		ID:       d.ID,
		Code:     d.Code,
		Name:     d.Name,
		IsActive: d.IsActive,
	}
}

// Create implements department.DepartmentService.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateRequest) (department.Response, error) {
	if err := req.Validate(); err != nil {
		return department.Response{}, err
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	exists, err := s.departmentRepo.ExistsByCode(ctx, code)
	if err != nil {
		return department.Response{}, fmt.Errorf("failed to check department code: %w", err)
	}
	if exists {
		return department.Response{}, department.ErrCodeExists
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Code: code,
		Name: strings.TrimSpace(req.Name),
	})
	if err != nil {
		return department.Response{}, fmt.Errorf("failed to create department: %w", err)
	}

	return toResponse(created), nil
}

// List implements department.DepartmentService.
func (s *DepartmentServiceImpl) List(ctx context.Context, activeOnly bool) (department.ListResponse, error) {
	departments, err := s.departmentRepo.List(ctx, activeOnly)
	if err != nil {
		return department.ListResponse{}, fmt.Errorf("failed to list departments: %w", err)
	}

	response := department.ListResponse{Departments: []department.Response{}}
	for _, d := range departments {
		response.Departments = append(response.Departments, toResponse(d))
	}
	return response, nil
}

// Deactivate implements department.DepartmentService.
func (s *DepartmentServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.departmentRepo.Deactivate(ctx, id)
}
