package department

import (
	"github.com/naumur/presence-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	} else if len(r.Code) > 10 {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be at most 10 characters",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type ListResponse struct {
	Departments []Response `json:"departments"`
}
