package response

import (
	"errors"
	"net/http"

	"github.com/naumur/presence-backend-go/internal/domain/attendance"
	"github.com/naumur/presence-backend-go/internal/domain/auth"
	"github.com/naumur/presence-backend-go/internal/domain/department"
	"github.com/naumur/presence-backend-go/internal/domain/justification"
	"github.com/naumur/presence-backend-go/internal/domain/report"
	"github.com/naumur/presence-backend-go/internal/domain/user"
	"github.com/naumur/presence-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountDisabled):
		Forbidden(w, "Account is disabled")
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrSupervisorAccessRequired):
		Forbidden(w, err.Error())

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrCodeExists):
		Conflict(w, "Department code already exists")

	// Attendance lifecycle errors
	case errors.Is(err, attendance.ErrBeforeStartDate),
		errors.Is(err, attendance.ErrFutureDate),
		errors.Is(err, attendance.ErrNotToday),
		errors.Is(err, attendance.ErrDepartureRequiresArrival):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrArrivalAlreadySet),
		errors.Is(err, attendance.ErrDepartureAlreadySet):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrCheckInRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Justification domain errors
	case errors.Is(err, justification.ErrJustificationNotFound):
		NotFound(w, "Justification not found")
	case errors.Is(err, justification.ErrAlreadyProcessed):
		Conflict(w, "Justification already processed")

	// Report domain errors
	case errors.Is(err, report.ErrUnsupportedFormat),
		errors.Is(err, report.ErrInvalidWeekStart):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
