package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/naumur/presence-backend-go/internal/domain/audit"
	"github.com/naumur/presence-backend-go/internal/domain/auth"
	"github.com/naumur/presence-backend-go/internal/domain/presence"
	"github.com/naumur/presence-backend-go/internal/domain/user"
	"github.com/naumur/presence-backend-go/internal/pkg/database"
	"github.com/naumur/presence-backend-go/internal/pkg/jwt"
	"github.com/naumur/presence-backend-go/internal/repository/postgresql"
	auditsvc "github.com/naumur/presence-backend-go/internal/service/audit"
)

type AuthServiceImpl struct {
	db           *database.DB
	userRepo     user.UserRepository
	presenceRepo presence.PresenceRepository
	jwtService   jwt.Service
	recorder     *auditsvc.Recorder
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	presenceRepo presence.PresenceRepository,
	jwtService jwt.Service,
	recorder *auditsvc.Recorder,
) auth.AuthService {
	return &AuthServiceImpl{
		db:           db,
		userRepo:     userRepo,
		presenceRepo: presenceRepo,
		jwtService:   jwtService,
		recorder:     recorder,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, session auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	userData, err := a.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !userData.IsActive {
		return auth.LoginResponse{}, auth.ErrAccountDisabled
	}

	sessionKey := uuid.NewString()
	now := time.Now()

	var response auth.LoginResponse
	response.AccessToken, response.AccessTokenExpiresAt, err = a.jwtService.GenerateAccessToken(userData.ID, userData.Username, userData.Role, sessionKey)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	response.RefreshToken, response.RefreshTokenExpiresAt, err = a.jwtService.GenerateRefreshToken(userData.ID, sessionKey, req.RememberMe)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		if _, err := a.presenceRepo.CreateSession(txCtx, presence.Session{
			UserID:     userData.ID,
			SessionKey: sessionKey,
			IPAddress:  session.IPAddress,
			UserAgent:  session.UserAgent,
			LoginAt:    now,
		}); err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}

		if err := a.presenceRepo.RecordLogin(txCtx, userData.ID, now, now, session.IPAddress); err != nil {
			return fmt.Errorf("failed to record daily login: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.LoginResponse{}, err
	}

	a.recorder.Record(ctx, audit.Entry{
		EventType: audit.EventLogin,
		Message:   fmt.Sprintf("%s logged in", userData.DisplayName()),
		UserID:    &userData.ID,
		IPAddress: session.IPAddress,
		Meta:      map[string]interface{}{"user_agent": session.UserAgent},
	})

	response.UserID = userData.ID
	response.Username = userData.Username
	response.FullName = userData.FullName
	response.Role = string(userData.Role)

	return response, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, userID, sessionKey, token string, session auth.SessionTrackingRequest) error {
	now := time.Now()

	err := postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		if err := a.presenceRepo.CloseSession(txCtx, userID, sessionKey, now); err != nil {
			return fmt.Errorf("failed to close session: %w", err)
		}
		if err := a.presenceRepo.SetOffline(txCtx, userID, now); err != nil {
			return fmt.Errorf("failed to mark daily login offline: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.jwtService.RevokeToken(token)

	a.recorder.Record(ctx, audit.Entry{
		EventType: audit.EventLogout,
		Message:   "user logged out",
		UserID:    &userID,
		IPAddress: session.IPAddress,
	})

	return nil
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.LoginResponse, error) {
	if a.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.LoginResponse{}, auth.ErrTokenRevoked
	}

	userID, sessionKey, err := a.jwtService.DecodeRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.LoginResponse{}, auth.ErrInvalidToken
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !userData.IsActive {
		return auth.LoginResponse{}, auth.ErrAccountDisabled
	}

	var response auth.LoginResponse
	response.AccessToken, response.AccessTokenExpiresAt, err = a.jwtService.GenerateAccessToken(userData.ID, userData.Username, userData.Role, sessionKey)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	response.RefreshToken = req.RefreshToken
	response.UserID = userData.ID
	response.Username = userData.Username
	response.FullName = userData.FullName
	response.Role = string(userData.Role)

	return response, nil
}
