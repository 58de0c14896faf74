package category

import (
	"github.com/norbert15/CostTracker2Backend/internal/apperrors"
)

var requiredFields = []string{
	"name is required!",
	"color is required!",
	"icon is required!",
	"type is required!",
}

const (
	msgTypeRange       = "The category type must be 1 or 2!"
	msgDefaultReadOnly = "Default categories cannot be modified or deleted!"
)

// Validator holds the category business rules.
type Validator struct {
	repo Repository
}

func NewValidator(repo Repository) *Validator {
	return &Validator{repo: repo}
}

// ValidateRequest checks the payload rules for create and update. All field
// rules run and every violation is reported together.
func (v *Validator) ValidateRequest(dto *Request) error {
	if dto == nil {
		return apperrors.NewValidationError(requiredFields...)
	}

	var verr apperrors.ValidationError

	if dto.Name == "" {
		verr.Add("name is required!")
	}
	if dto.Color == "" {
		verr.Add("color is required!")
	}
	if dto.Icon == "" {
		verr.Add("icon is required!")
	}
	if dto.Type == 0 {
		verr.Add("type is required!")
	} else if dto.Type != TypeExpense && dto.Type != TypeIncome {
		verr.Add(msgTypeRange)
	}

	return verr.ErrOrNil()
}

// EnsureNotDefault fails when id belongs to a shared default category.
// The defaults are scanned rather than fetched by id so an unknown id falls
// through to the regular not-found handling of the operation.
func (v *Validator) EnsureNotDefault(id int64) error {
	defaults, err := v.repo.FindAllByOwner(DefaultOwnerID)
	if err != nil {
		return apperrors.ErrInternal
	}
	for _, c := range defaults {
		if c.ID == id {
			return apperrors.NewValidationError(msgDefaultReadOnly)
		}
	}
	return nil
}
