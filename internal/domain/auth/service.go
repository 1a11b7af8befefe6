package auth

import "context"

// AuthService defines login/logout lifecycle. Login and logout emit the
// session/presence events the tracker derives state from.
type AuthService interface {
	// Login verifies the credential, issues a token pair and records the
	// session, the daily login row and the audit entry.
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (LoginResponse, error)

	// Logout closes the session, marks today's daily login offline,
	// revokes the token and records the audit entry.
	Logout(ctx context.Context, userID, sessionKey, token string, session SessionTrackingRequest) error

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, req RefreshRequest) (LoginResponse, error)
}
