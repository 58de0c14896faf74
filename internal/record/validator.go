package record

import (
	"errors"
	"fmt"
	"time"

	"github.com/norbert15/CostTracker2Backend/internal/apperrors"
	"github.com/norbert15/CostTracker2Backend/internal/category"
)

var requiredFields = []string{
	"categoryId is required!",
	"value is required!",
	"month is required!",
}

const (
	msgValueZero    = "Value cannot be 0!"
	msgValueRange   = "The value must be between -1000000000 and 1000000000!"
	msgMonthSyntax  = "Month must match the yyyy-MM format!"
	msgMonthInvalid = "Month must be a valid calendar month!"
	msgTypeRange    = "The category type must be 1 or 2!"
)

// isMonthSyntaxValid checks the yyyy-MM shape: four digits, a dash, two
// digits. "2024-2" fails here, it must be zero padded.
func isMonthSyntaxValid(month string) bool {
	if len(month) != 7 || month[4] != '-' {
		return false
	}
	for i, ch := range month {
		if i == 4 {
			continue
		}
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// isMonthRealDate checks the month names a real calendar month, so
// "2024-13" fails here even though its syntax is fine.
func isMonthRealDate(month string) bool {
	_, err := time.Parse("2006-01", month)
	return err == nil
}

func yearPrefix(year int64) string {
	return fmt.Sprintf("%d-", year)
}

// Validator holds the record business rules. Category existence is checked
// against the category repository.
type Validator struct {
	categories category.Repository
}

func NewValidator(categories category.Repository) *Validator {
	return &Validator{categories: categories}
}

// ValidateCreate runs every rule and reports all violations together. The
// month syntax and calendar checks are independent rules; a month can fail
// both.
func (v *Validator) ValidateCreate(dto *CreateRequest) error {
	if dto == nil {
		return apperrors.NewValidationError(requiredFields...)
	}

	var verr apperrors.ValidationError

	if _, err := v.categories.FindByID(dto.CategoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			verr.Add(fmt.Sprintf("Category with id %d does not exist!", dto.CategoryID))
		} else {
			return apperrors.ErrInternal
		}
	}

	if dto.Value == 0 {
		verr.Add(msgValueZero)
	}
	if dto.Value > maxAbsValue || dto.Value < -maxAbsValue {
		verr.Add(msgValueRange)
	}

	if !isMonthSyntaxValid(dto.Month) {
		verr.Add(msgMonthSyntax)
	}
	if !isMonthRealDate(dto.Month) {
		verr.Add(msgMonthInvalid)
	}

	return verr.ErrOrNil()
}

// ValidateMonthAndType guards the month listing parameters.
func (v *Validator) ValidateMonthAndType(month string, categoryType int64) error {
	var verr apperrors.ValidationError

	if !isMonthSyntaxValid(month) {
		verr.Add(msgMonthSyntax)
	}
	if !isMonthRealDate(month) {
		verr.Add(msgMonthInvalid)
	}
	if categoryType != category.TypeExpense && categoryType != category.TypeIncome {
		verr.Add(msgTypeRange)
	}

	return verr.ErrOrNil()
}

// ValidateYear keeps period queries inside the supported range, from 2020 up
// to the current calendar year.
func (v *Validator) ValidateYear(year int64, now time.Time) error {
	currentYear := int64(now.UTC().Year())
	if year < minYear || year > currentYear {
		return apperrors.NewValidationError(fmt.Sprintf("The year must be between %d and %d!", minYear, currentYear))
	}
	return nil
}
