package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/norbert15/CostTracker2Backend/internal/apperrors"
)

var (
	ErrInvalidToken = fmt.Errorf("%w: token is invalid", apperrors.ErrAuthenticationFailed)
	ErrExpiredToken = fmt.Errorf("%w: token is expired", apperrors.ErrAuthenticationFailed)
)

const defaultTokenTTL = 24 * time.Hour

// TokenManager signs a subject (username) into an opaque bearer token and
// verifies it back. The signing secret is injected at startup and shared by
// Generate and Verify; the manager itself is stateless.
type TokenManager struct {
	secret string
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: secret}
}

func (m *TokenManager) Generate(subject string, duration time.Duration) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   subject,
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// Verify checks the signature and expiry and returns the subject.
// Malformed, tampered and expired tokens are all authentication failures.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
