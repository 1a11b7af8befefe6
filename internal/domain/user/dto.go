package user

import (
	"github.com/naumur/presence-backend-go/internal/pkg/validator"
)

// CreateEmployeeRequest creates an employee account. StartDate defaults
// to today when omitted.
type CreateEmployeeRequest struct {
	FullName        string `json:"full_name"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	DepartmentID    string `json:"department_id"`
	IsIntern        bool   `json:"is_intern"`
	StartDate       string `json:"start_date,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters of letters, digits, '.', '_' or '-'",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if r.Password != r.ConfirmPassword {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_password",
			Message: "passwords do not match",
		})
	}

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}

	if r.StartDate != "" {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID              string  `json:"id"`
	Username        string  `json:"username"`
	FullName        string  `json:"full_name"`
	Role            string  `json:"role"`
	DepartmentID    *string `json:"department_id,omitempty"`
	DepartmentName  *string `json:"department_name,omitempty"`
	IsIntern        bool    `json:"is_intern"`
	StartDate       string  `json:"start_date"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
}

type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}
