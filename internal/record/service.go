package record

import (
	"context"
	"log"
	"time"

	"github.com/norbert15/CostTracker2Backend/internal/category"
	"github.com/norbert15/CostTracker2Backend/internal/identity"
)

type Service interface {
	Create(ctx context.Context, dto *CreateRequest) (*Record, error)
	ListByMonthAndType(ctx context.Context, month string, categoryType int64) ([]RecordsByCategory, error)
	ListByYearAndType(ctx context.Context, year, categoryType int64) ([]MonthlyTotal, error)
}

type service struct {
	repo       Repository
	categories category.Repository
	validator  *Validator
	resolver   identity.Resolver
	now        func() time.Time
}

func NewService(repo Repository, categories category.Repository, resolver identity.Resolver) Service {
	return &service{
		repo:       repo,
		categories: categories,
		validator:  NewValidator(categories),
		resolver:   resolver,
		now:        time.Now,
	}
}

func (s *service) Create(ctx context.Context, dto *CreateRequest) (*Record, error) {
	principal, err := s.resolver.CurrentPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.ValidateCreate(dto); err != nil {
		return nil, err
	}

	created := &Record{
		UserID:     principal.ID,
		CategoryID: dto.CategoryID,
		Value:      dto.Value,
		Comment:    dto.Comment,
		Month:      dto.Month,
		CreatedAt:  s.now().UTC(),
	}

	if err := s.repo.Create(created); err != nil {
		log.Printf("record create: could not save: %v", err)
		return nil, err
	}

	log.Printf("record create: record %d saved for user %d", created.ID, principal.ID)
	return created, nil
}

// ListByMonthAndType groups the caller's records of one month by the
// categories of the requested type, defaults included, with a per-category
// sum. Categories without records are returned with an empty group.
func (s *service) ListByMonthAndType(ctx context.Context, month string, categoryType int64) ([]RecordsByCategory, error) {
	if err := s.validator.ValidateMonthAndType(month, categoryType); err != nil {
		return nil, err
	}

	principal, err := s.resolver.CurrentPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	visibleCategories, err := s.categories.FindByTypeAndOwner(categoryType, principal.ID)
	if err != nil {
		return nil, err
	}

	groups := make([]RecordsByCategory, 0, len(visibleCategories))
	for _, c := range visibleCategories {
		records, err := s.repo.FindByOwnerAndMonthAndCategory(principal.ID, month, c.ID)
		if err != nil {
			return nil, err
		}

		var sum int64
		for _, rec := range records {
			sum += rec.Value
		}

		groups = append(groups, RecordsByCategory{
			Category: c,
			Records:  records,
			Sum:      sum,
		})
	}

	return groups, nil
}

func (s *service) ListByYearAndType(ctx context.Context, year, categoryType int64) ([]MonthlyTotal, error) {
	if err := s.validator.ValidateYear(year, s.now()); err != nil {
		return nil, err
	}

	principal, err := s.resolver.CurrentPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	return s.repo.SumByMonthAndType(principal.ID, categoryType, year)
}
