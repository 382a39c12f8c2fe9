package service

import (
	"context"
	"crypto/subtle"

	"github.com/vitrina-app/vitrina-backend/internal/app/model"
	"github.com/vitrina-app/vitrina-backend/pkg/logger"
	"github.com/vitrina-app/vitrina-backend/pkg/util"
)

// SessionRevoker tracks logged-out admin sessions. Tokens never expire,
// so revocation is the only way a session ends.
type SessionRevoker interface {
	Revoke(ctx context.Context, sessionID string) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

type AuthService interface {
	// Login compares the password against the stored admin password and,
	// on a match, mints a session token. A wrong password is a plain
	// boolean failure, not an error. When settings are unavailable the
	// comparison falls back to the hard-coded default password.
	Login(ctx context.Context, password string) (string, bool)

	// Logout revokes the token's session unconditionally; an invalid
	// token is simply ignored.
	Logout(ctx context.Context, token string)
}

type authService struct {
	settingsService SettingsService
	revoker         SessionRevoker
	secret          string
}

func NewAuthService(settingsService SettingsService, revoker SessionRevoker, secret string) AuthService {
	return &authService{
		settingsService: settingsService,
		revoker:         revoker,
		secret:          secret,
	}
}

func (s *authService) Login(ctx context.Context, password string) (string, bool) {
	// GetSettings is total; on an unreachable store it already yields
	// the defaults, whose adminPassword is the fallback value.
	settings := s.settingsService.GetSettings(ctx)

	expected := settings.AdminPassword
	if expected == "" {
		expected = model.DefaultAdminPassword
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(expected)) != 1 {
		logger.Warn("Admin login rejected: wrong password", nil)
		return "", false
	}

	token, sessionID, err := util.GenerateSessionToken(s.secret)
	if err != nil {
		logger.Error("Failed to mint session token", err, nil)
		return "", false
	}

	logger.Info("Admin logged in", map[string]interface{}{
		"session_id": sessionID,
	})
	return token, true
}

func (s *authService) Logout(ctx context.Context, token string) {
	claims, err := util.ValidateSessionToken(token, s.secret)
	if err != nil {
		logger.Debug("Logout with invalid token ignored", nil)
		return
	}

	if err := s.revoker.Revoke(ctx, claims.SessionID); err != nil {
		logger.Error("Failed to revoke session", err, map[string]interface{}{
			"session_id": claims.SessionID,
		})
		return
	}

	logger.Info("Admin logged out", map[string]interface{}{
		"session_id": claims.SessionID,
	})
}
