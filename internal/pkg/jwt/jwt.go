package jwt

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/naumur/presence-backend-go/internal/domain/user"
)

type Service interface {
	// GenerateAccessToken issues the short-lived token carried on every
	// request. The session key ties the token to a user_sessions row.
	GenerateAccessToken(userID string, username string, role user.Role, sessionKey string) (token string, expiresAt int64, err error)

	// GenerateRefreshToken issues the renewal token. rememberMe selects
	// the long expiry; otherwise the short session expiry applies.
	GenerateRefreshToken(userID string, sessionKey string, rememberMe bool) (token string, expiresAt int64, err error)

	// DecodeRefreshToken validates a refresh token and returns its user
	// id and session key.
	DecodeRefreshToken(tokenString string) (userID, sessionKey string, err error)

	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	sessionExpirationTime      string
	tokenAuth                  *jwtauth.JWTAuth
	revokedTokens              map[string]int64
	mu                         sync.RWMutex
}

func NewJWTService(secretKey, accessExpiration, refreshExpiration, sessionExpiration string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessExpiration,
		refreshTokenExpirationTime: refreshExpiration,
		sessionExpirationTime:      sessionExpiration,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:              make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID string, username string, role user.Role, sessionKey string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":     userID,
		"username":    username,
		"role":        string(role),
		"session_key": sessionKey,
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(userID string, sessionKey string, rememberMe bool) (token string, expiresAt int64, err error) {
	expiration := j.sessionExpirationTime
	if rememberMe {
		expiration = j.refreshTokenExpirationTime
	}
	expDuration, err := time.ParseDuration(expiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id":     userID,
		"session_key": sessionKey,
		"exp":         expiresAt,
		"type":        "refresh",
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) DecodeRefreshToken(tokenString string) (userID, sessionKey string, err error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return "", "", jwt.ErrInvalidJWT()
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}
	userID, ok = userIDVal.(string)
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}

	sessionVal, ok := token.Get("session_key")
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}
	sessionKey, ok = sessionVal.(string)
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}

	return userID, sessionKey, nil
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}
