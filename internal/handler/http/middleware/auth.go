package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/naumur/presence-backend-go/internal/domain/auth"
	"github.com/naumur/presence-backend-go/internal/handler/http/response"
	"github.com/naumur/presence-backend-go/internal/pkg/jwt"
)

// AuthRequired rejects requests without a valid access token or with a
// revoked one.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if raw := jwtauth.TokenFromHeader(r); raw != "" && jwtService.IsTokenRevoked(raw) {
				response.HandleError(w, auth.ErrTokenRevoked)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// Claims returns the user_id and session_key from the verified token.
func Claims(r *http.Request) (userID, sessionKey string) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", ""
	}
	userID, _ = claims["user_id"].(string)
	sessionKey, _ = claims["session_key"].(string)
	return userID, sessionKey
}
