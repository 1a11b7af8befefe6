package auth

import (
	"github.com/naumur/presence-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	// RememberMe selects the long refresh-token expiry instead of the
	// short session expiry.
	RememberMe bool `json:"remember_me"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SessionTrackingRequest carries client metadata recorded with the
// session and the audit log.
type SessionTrackingRequest struct {
	IPAddress string
	UserAgent string
}

type LoginResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresAt  int64  `json:"access_token_expires_at"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresAt int64  `json:"refresh_token_expires_at"`
	UserID                string `json:"user_id"`
	Username              string `json:"username"`
	FullName              string `json:"full_name"`
	Role                  string `json:"role"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
