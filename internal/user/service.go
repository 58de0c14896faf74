package user

import (
	"context"
	"log"

	"github.com/norbert15/CostTracker2Backend/internal/apperrors"
	"github.com/norbert15/CostTracker2Backend/internal/auth"
	"github.com/norbert15/CostTracker2Backend/internal/identity"
)

type Service interface {
	Register(dto *RegistrationRequest) (*User, error)
	ActiveUser(ctx context.Context) (*User, error)
	UpdateProfile(ctx context.Context, dto *ProfileUpdateRequest) (*User, error)
	ChangePassword(ctx context.Context, dto *PasswordChangeRequest) error
}

type service struct {
	repo      Repository
	validator *Validator
	resolver  identity.Resolver
	hasher    *auth.Hasher
}

func NewService(repo Repository, resolver identity.Resolver, hasher *auth.Hasher) Service {
	return &service{
		repo:      repo,
		validator: NewValidator(repo),
		resolver:  resolver,
		hasher:    hasher,
	}
}

// Register creates a new account. Uniqueness is pre-checked by the validator,
// but a concurrent registration can still hit the database constraint; the
// repository surfaces that as a conflict instead of a validation failure.
func (s *service) Register(dto *RegistrationRequest) (*User, error) {
	if err := s.validator.ValidateRegistration(dto); err != nil {
		return nil, err
	}

	newUser := &User{
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Email:        dto.Email,
		Username:     dto.Username,
		PasswordHash: s.hasher.Hash(dto.Password),
	}

	if err := s.repo.Create(newUser); err != nil {
		log.Printf("register: could not create user: %v", err)
		return nil, err
	}

	log.Printf("register: user %q created", newUser.Username)
	return newUser, nil
}

func (s *service) ActiveUser(ctx context.Context) (*User, error) {
	principal, err := s.resolver.CurrentPrincipal(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(principal.ID)
}

func (s *service) UpdateProfile(ctx context.Context, dto *ProfileUpdateRequest) (*User, error) {
	active, err := s.ActiveUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.ValidateProfileUpdate(active, dto); err != nil {
		return nil, err
	}

	active.FirstName = dto.FirstName
	active.LastName = dto.LastName
	active.Email = dto.Email
	active.Username = dto.Username

	if err := s.repo.Update(active); err != nil {
		log.Printf("update profile: could not save user %d: %v", active.ID, err)
		return nil, err
	}

	return active, nil
}

func (s *service) ChangePassword(ctx context.Context, dto *PasswordChangeRequest) error {
	active, err := s.ActiveUser(ctx)
	if err != nil {
		return err
	}

	if dto == nil {
		return apperrors.NewValidationError(passwordRequiredFields...)
	}

	oldHash := s.hasher.Hash(dto.OldPassword)
	newHash := s.hasher.Hash(dto.NewPassword)
	confirmHash := s.hasher.Hash(dto.ConfirmNewPassword)

	if err := s.validator.ValidatePasswordChange(active, oldHash, newHash, confirmHash); err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(active.ID, newHash); err != nil {
		log.Printf("change password: could not save user %d: %v", active.ID, err)
		return err
	}

	log.Printf("change password: password updated for user %d", active.ID)
	return nil
}
