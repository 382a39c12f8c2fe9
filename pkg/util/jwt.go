package util

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims is the payload of an admin session token.
type SessionClaims struct {
	SessionID string `json:"sid"`
	Admin     bool   `json:"adm"`
	jwt.RegisteredClaims
}

// GenerateSessionToken mints a signed admin session token. Tokens carry
// no expiry; a session ends only by explicit revocation on logout.
func GenerateSessionToken(secret string) (string, string, error) {
	sessionID := uuid.New().String()

	claims := SessionClaims{
		SessionID: sessionID,
		Admin:     true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}

	return signed, sessionID, nil
}

// ValidateSessionToken verifies the signature and returns the claims.
func ValidateSessionToken(tokenString, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || !claims.Admin {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
