package justification

import (
	"mime/multipart"

	"github.com/naumur/presence-backend-go/internal/pkg/validator"
)

// CreateRequest creates a justification on behalf of an employee. The
// receipt file is optional multipart content.
type CreateRequest struct {
	UserID      string                `json:"user_id"`
	StartDate   string                `json:"start_date"`
	EndDate     string                `json:"end_date"`
	Reason      string                `json:"reason"`
	OtherReason string                `json:"other_reason,omitempty"`
	File        multipart.File        `json:"-"`
	FileHeader  *multipart.FileHeader `json:"-"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end date must be after start date",
		})
	}

	if !ValidReason(Reason(r.Reason)) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must be one of sick, family, travel, other",
		})
	} else if Reason(r.Reason) == ReasonOther && validator.IsEmpty(r.OtherReason) {
		errs = append(errs, validator.ValidationError{
			Field:   "other_reason",
			Message: "please describe the reason",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	UserName      string  `json:"user_name,omitempty"`
	CreatedBy     string  `json:"created_by"`
	CreatedByName string  `json:"created_by_name,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Reason        string  `json:"reason"`
	OtherReason   *string `json:"other_reason,omitempty"`
	ReceiptPath   *string `json:"receipt_path,omitempty"`
	Status        string  `json:"status"`
	DecidedBy     *string `json:"decided_by,omitempty"`
	DecidedAt     *string `json:"decided_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type ListResponse struct {
	Justifications []Response `json:"justifications"`
	Total          int64      `json:"total"`
}
