package user

import (
	"github.com/badoux/checkmail"

	"github.com/norbert15/CostTracker2Backend/internal/apperrors"
)

const (
	minUsernameLength  = 5
	maxUsernameLength  = 15
	minFirstNameLength = 3
	minLastNameLength  = 3
)

// A nil payload short-circuits to the static required-field list instead of
// evaluating individual rules.
var (
	registrationRequiredFields = []string{
		"firstName is required!",
		"lastName is required!",
		"email is required!",
		"username is required!",
		"password is required!",
		"confirmPassword is required!",
	}
	profileRequiredFields = []string{
		"firstName is required!",
		"lastName is required!",
		"email is required!",
		"username is required!",
	}
	passwordRequiredFields = []string{
		"oldPassword is required!",
		"newPassword is required!",
		"confirmNewPassword is required!",
	}
)

// Validator holds the user business rules. Every rule appends its own message
// and all applicable rules run before the aggregate is returned, so a caller
// sees every violation at once.
type Validator struct {
	repo Repository
}

func NewValidator(repo Repository) *Validator {
	return &Validator{repo: repo}
}

func isEmailFormatValid(email string) bool {
	return checkmail.ValidateFormat(email) == nil
}

func (v *Validator) usernameTaken(username string) bool {
	_, err := v.repo.FindByUsername(username)
	return err == nil
}

func (v *Validator) emailTaken(email string) bool {
	_, err := v.repo.FindByEmail(email)
	return err == nil
}

func (v *Validator) ValidateRegistration(dto *RegistrationRequest) error {
	if dto == nil {
		return apperrors.NewValidationError(registrationRequiredFields...)
	}

	var verr apperrors.ValidationError

	if dto.Email == "" {
		verr.Add("email is required!")
	} else if !isEmailFormatValid(dto.Email) {
		verr.Add("email format is invalid!")
	}

	if len(dto.Username) < minUsernameLength {
		verr.Add("The username must be at least 5 characters long!")
	}
	if len(dto.Username) > maxUsernameLength {
		verr.Add("The username must be at most 15 characters long!")
	}

	if v.usernameTaken(dto.Username) {
		verr.Add("The username is already taken!")
	}

	if v.emailTaken(dto.Email) {
		verr.Add("The email address is already taken!")
	}

	if dto.Password != dto.ConfirmPassword {
		verr.Add("The passwords do not match!")
	}

	return verr.ErrOrNil()
}

// ValidateProfileUpdate checks the update against the active user: the
// uniqueness rules only fire when the value belongs to a different user.
func (v *Validator) ValidateProfileUpdate(active *User, dto *ProfileUpdateRequest) error {
	if dto == nil {
		return apperrors.NewValidationError(profileRequiredFields...)
	}

	var verr apperrors.ValidationError

	if len(dto.Username) < minUsernameLength {
		verr.Add("The username must be at least 5 characters long!")
	}

	if dto.Username != active.Username && v.usernameTaken(dto.Username) {
		verr.Add("The username is already taken!")
	}

	if len(dto.FirstName) < minFirstNameLength {
		verr.Add("The first name must be at least 3 characters long!")
	}

	if len(dto.LastName) < minLastNameLength {
		verr.Add("The last name must be at least 3 characters long!")
	}

	if !isEmailFormatValid(dto.Email) {
		verr.Add("email format is invalid!")
	}

	if dto.Email != active.Email && v.emailTaken(dto.Email) {
		verr.Add("The email address is already taken!")
	}

	return verr.ErrOrNil()
}

// ValidatePasswordChange compares hashed values only. Both rules are
// evaluated; a wrong old password and a mismatched confirmation are reported
// together.
func (v *Validator) ValidatePasswordChange(active *User, oldHash, newHash, confirmHash string) error {
	var verr apperrors.ValidationError

	if oldHash != active.PasswordHash {
		verr.Add("The old password does not match the current password!")
	}

	if newHash != confirmHash {
		verr.Add("The passwords do not match!")
	}

	return verr.ErrOrNil()
}
