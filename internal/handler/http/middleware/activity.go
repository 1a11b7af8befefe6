package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/naumur/presence-backend-go/internal/domain/presence"
)

// ClientIP extracts the caller's address, honoring proxy forwarding
// headers before falling back to the socket address.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.IndexByte(fwd, ','); idx >= 0 {
			fwd = fwd[:idx]
		}
		return strings.TrimSpace(fwd)
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ActivityTracker feeds every authenticated request into the presence
// heartbeat. Must run after the token verifier.
func ActivityTracker(presenceSvc presence.PresenceService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID, sessionKey := Claims(r); userID != "" {
				presenceSvc.Heartbeat(r.Context(), userID, sessionKey, ClientIP(r))
			}
			next.ServeHTTP(w, r)
		})
	}
}
