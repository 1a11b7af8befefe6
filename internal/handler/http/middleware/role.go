package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/naumur/presence-backend-go/internal/domain/user"
	"github.com/naumur/presence-backend-go/internal/handler/http/response"
)

func roleFromClaims(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return user.Role(roleStr), true
}

// RequireAdmin requires the admin role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromClaims(r)
		if !ok || role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireElevated requires the supervisor or admin role
func RequireElevated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromClaims(r)
		if !ok || !user.Elevated(role) {
			response.HandleError(w, user.ErrSupervisorAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
