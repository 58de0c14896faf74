package category

import (
	"context"
	"log"

	"github.com/norbert15/CostTracker2Backend/internal/identity"
)

type Service interface {
	ListForActiveUser(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, dto *Request) (*Category, error)
	Update(ctx context.Context, id int64, dto *Request) (*Category, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo      Repository
	validator *Validator
	resolver  identity.Resolver
}

func NewService(repo Repository, resolver identity.Resolver) Service {
	return &service{
		repo:      repo,
		validator: NewValidator(repo),
		resolver:  resolver,
	}
}

// ListForActiveUser returns the caller's categories merged with the shared
// defaults.
func (s *service) ListForActiveUser(ctx context.Context) ([]Category, error) {
	principal, err := s.resolver.CurrentPrincipal(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.FindAllByOwner(principal.ID)
}

func (s *service) Create(ctx context.Context, dto *Request) (*Category, error) {
	principal, err := s.resolver.CurrentPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.ValidateRequest(dto); err != nil {
		return nil, err
	}

	created := &Category{
		UserID: principal.ID,
		Name:   dto.Name,
		Color:  dto.Color,
		Icon:   dto.Icon,
		Type:   dto.Type,
	}

	if err := s.repo.Create(created); err != nil {
		log.Printf("category create: could not save %q: %v", dto.Name, err)
		return nil, err
	}

	log.Printf("category create: %q saved with id %d", created.Name, created.ID)
	return created, nil
}

// Update edits the caller's own category. The target is resolved by id and
// owner, so another user's category surfaces as not found rather than being
// silently editable.
func (s *service) Update(ctx context.Context, id int64, dto *Request) (*Category, error) {
	principal, err := s.resolver.CurrentPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.EnsureNotDefault(id); err != nil {
		return nil, err
	}

	if err := s.validator.ValidateRequest(dto); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByIDAndOwner(id, principal.ID)
	if err != nil {
		return nil, err
	}

	existing.Name = dto.Name
	existing.Color = dto.Color
	existing.Icon = dto.Icon
	existing.Type = dto.Type

	if err := s.repo.Update(existing); err != nil {
		log.Printf("category update: could not save %d: %v", id, err)
		return nil, err
	}

	return existing, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	principal, err := s.resolver.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.EnsureNotDefault(id); err != nil {
		return err
	}

	if _, err := s.repo.FindByIDAndOwner(id, principal.ID); err != nil {
		return err
	}

	if err := s.repo.DeleteByID(id); err != nil {
		log.Printf("category delete: could not delete %d: %v", id, err)
		return err
	}

	log.Printf("category delete: %d deleted", id)
	return nil
}
