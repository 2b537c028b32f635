package validation

import (
	"fmt"
	"regexp"
	"strings"

	authErrors "github.com/ciaanhq/ciaan-api/auth/errors"
	authModels "github.com/ciaanhq/ciaan-api/auth/models"
	usersValidation "github.com/ciaanhq/ciaan-api/users/validation"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail trims and lowercases an email for storage and lookup
func NormalizeEmail(emailID string) string {
	return strings.ToLower(strings.TrimSpace(emailID))
}

// ValidateRegister checks a signup payload and normalizes it in place
func ValidateRegister(req *authModels.RegisterRequest) error {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.EmailID = NormalizeEmail(req.EmailID)

	if err := usersValidation.ValidateName("firstName", req.FirstName); err != nil {
		return fmt.Errorf("%w: %s", authErrors.ErrInvalidAuthData, err.Error())
	}
	if req.LastName != "" {
		if err := usersValidation.ValidateName("lastName", req.LastName); err != nil {
			return fmt.Errorf("%w: %s", authErrors.ErrInvalidAuthData, err.Error())
		}
	}
	if !emailPattern.MatchString(req.EmailID) {
		return fmt.Errorf("%w: emailId is not a valid email address", authErrors.ErrInvalidAuthData)
	}
	if req.Password == "" {
		return fmt.Errorf("%w: password is required", authErrors.ErrInvalidAuthData)
	}
	return nil
}

// ValidateLogin checks a login payload and normalizes the email in place
func ValidateLogin(req *authModels.LoginRequest) error {
	req.EmailID = NormalizeEmail(req.EmailID)

	if req.EmailID == "" {
		return fmt.Errorf("%w: emailId is required", authErrors.ErrInvalidAuthData)
	}
	if req.Password == "" {
		return fmt.Errorf("%w: password is required", authErrors.ErrInvalidAuthData)
	}
	return nil
}
