package employee

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/naumur/presence-backend-go/internal/domain/audit"
	"github.com/naumur/presence-backend-go/internal/domain/department"
	"github.com/naumur/presence-backend-go/internal/domain/user"
	"github.com/naumur/presence-backend-go/internal/pkg/storage"
	auditsvc "github.com/naumur/presence-backend-go/internal/service/audit"
)

type EmployeeServiceImpl struct {
	userRepo       user.UserRepository
	departmentRepo department.DepartmentRepository
	files          storage.FileStorage
	recorder       *auditsvc.Recorder
	now            func() time.Time
}

func NewEmployeeService(
	userRepo user.UserRepository,
	departmentRepo department.DepartmentRepository,
	files storage.FileStorage,
	recorder *auditsvc.Recorder,
) user.EmployeeService {
	return &EmployeeServiceImpl{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		files:          files,
		recorder:       recorder,
		now:            time.Now,
	}
}

func toEmployeeResponse(u user.User) user.EmployeeResponse {
	return user.EmployeeResponse{
		ID:              u.ID,
		Username:        u.Username,
		FullName:        u.FullName,
		Role:            string(u.Role),
		DepartmentID:    u.DepartmentID,
		DepartmentName:  u.DepartmentName,
		IsIntern:        u.IsIntern,
		StartDate:       u.StartDate.Format("2006-01-02"),
		ProfileImageURL: u.ProfileImagePath,
	}
}

// CreateEmployee implements user.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, actorID string, req user.CreateEmployeeRequest) (user.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return user.EmployeeResponse{}, err
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return user.EmployeeResponse{}, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return user.EmployeeResponse{}, user.ErrUsernameExists
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return user.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	startDate := s.now()
	if req.StartDate != "" {
		startDate, _ = time.Parse("2006-01-02", req.StartDate)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         user.RoleEmployee,
		DepartmentID: &req.DepartmentID,
		IsIntern:     req.IsIntern,
		StartDate:    startDate,
	})
	if err != nil {
		return user.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		EventType: audit.EventAccount,
		Message:   fmt.Sprintf("employee %s created", created.Username),
		UserID:    &actorID,
		Meta:      map[string]interface{}{"employee_id": created.ID},
	})

	return toEmployeeResponse(created), nil
}

// ListEmployees implements user.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) (user.ListEmployeesResponse, error) {
	employees, err := s.userRepo.ListEmployees(ctx)
	if err != nil {
		return user.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	response := user.ListEmployeesResponse{Employees: []user.EmployeeResponse{}}
	for _, emp := range employees {
		response.Employees = append(response.Employees, toEmployeeResponse(emp))
	}
	return response, nil
}

// GetEmployee implements user.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (user.EmployeeResponse, error) {
	found, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.EmployeeResponse{}, err
	}
	return toEmployeeResponse(found), nil
}

// UploadProfileImage implements user.EmployeeService.
func (s *EmployeeServiceImpl) UploadProfileImage(ctx context.Context, actorID, targetID string, file multipart.File, header *multipart.FileHeader) (user.EmployeeResponse, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return user.EmployeeResponse{}, fmt.Errorf("failed to get actor: %w", err)
	}
	if targetID == "" {
		targetID = actorID
	}
	if targetID != actorID && !actor.IsElevated() {
		return user.EmployeeResponse{}, user.ErrSupervisorAccessRequired
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return user.EmployeeResponse{}, err
	}

	ext := filepath.Ext(header.Filename)
	path := fmt.Sprintf("profiles/%s/avatar%s", target.ID, ext)
	stored, err := s.files.Save(ctx, path, file)
	if err != nil {
		return user.EmployeeResponse{}, fmt.Errorf("failed to store profile image: %w", err)
	}

	if err := s.userRepo.UpdateProfileImage(ctx, target.ID, stored); err != nil {
		return user.EmployeeResponse{}, fmt.Errorf("failed to update profile image: %w", err)
	}

	target.ProfileImagePath = &stored
	return toEmployeeResponse(target), nil
}
