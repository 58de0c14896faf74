package auth

import (
	"crypto/subtle"
	"errors"
	"log"

	"github.com/norbert15/CostTracker2Backend/internal/apperrors"
)

// CredentialStore is the user lookup the login flow needs.
type CredentialStore interface {
	FindPasswordHashByUsername(username string) (string, error)
}

type Service interface {
	Login(username, password string) (string, error)
}

type service struct {
	store  CredentialStore
	hasher *Hasher
	tokens *TokenManager
}

func NewService(store CredentialStore, hasher *Hasher, tokens *TokenManager) Service {
	return &service{
		store:  store,
		hasher: hasher,
		tokens: tokens,
	}
}

// Login authenticates raw credentials and mints a bearer token on success.
// An unknown username and a wrong password both fail the same way, so the
// response does not reveal whether the account exists.
func (s *service) Login(username, password string) (string, error) {
	storedHash, err := s.store.FindPasswordHashByUsername(username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrAuthenticationFailed
		}
		log.Printf("login: user lookup failed: %v", err)
		return "", apperrors.ErrInternal
	}

	submittedHash := s.hasher.Hash(password)
	if subtle.ConstantTimeCompare([]byte(submittedHash), []byte(storedHash)) != 1 {
		return "", apperrors.ErrAuthenticationFailed
	}

	token, err := s.tokens.Generate(username, defaultTokenTTL)
	if err != nil {
		log.Printf("login: token generation failed: %v", err)
		return "", apperrors.ErrInternal
	}

	return token, nil
}
