package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	usersErrors "github.com/ciaanhq/ciaan-api/users/errors"
	"github.com/ciaanhq/ciaan-api/users/models"
)

const (
	// MinNameLength and MaxNameLength bound first and last names
	MinNameLength = 3
	MaxNameLength = 20
	// MaxBioLength bounds the profile bio
	MaxBioLength = 500
)

// ValidateName checks a first or last name against the shared bounds
func ValidateName(field, name string) error {
	if n := utf8.RuneCountInString(name); n < MinNameLength || n > MaxNameLength {
		return fmt.Errorf("%w: %s must be between %d and %d characters",
			usersErrors.ErrInvalidUserData, field, MinNameLength, MaxNameLength)
	}
	return nil
}

// ValidateUpdateProfile checks an update payload. At least one field must
// be present; present fields are trimmed and bounded in place.
func ValidateUpdateProfile(req *models.UpdateProfileRequest) error {
	if req.FirstName == nil && req.Bio == nil {
		return fmt.Errorf("%w: at least one of firstName or bio is required", usersErrors.ErrInvalidUserData)
	}
	if req.FirstName != nil {
		firstName := strings.TrimSpace(*req.FirstName)
		if err := ValidateName("firstName", firstName); err != nil {
			return err
		}
		*req.FirstName = firstName
	}
	if req.Bio != nil {
		bio := strings.TrimSpace(*req.Bio)
		if utf8.RuneCountInString(bio) > MaxBioLength {
			return fmt.Errorf("%w: bio must be at most %d characters", usersErrors.ErrInvalidUserData, MaxBioLength)
		}
		*req.Bio = bio
	}
	return nil
}
