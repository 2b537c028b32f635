package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	usersErrors "github.com/ciaanhq/ciaan-api/users/errors"
)

// Auth service specific errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password is too weak")
	ErrInvalidAuthData    = errors.New("invalid auth data")
)

// Error codes
const (
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeWeakPassword       = "WEAK_PASSWORD"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// ErrorResponse is the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError maps auth service errors to HTTP responses.
// Registration surfaces user-store errors, so those pass through to the
// user mapping.
func HandleServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Code:    CodeInvalidCredentials,
			Message: "Invalid email or password",
			Details: err.Error(),
		})
	case errors.Is(err, ErrWeakPassword):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeWeakPassword,
			Message: "Password is too weak",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidAuthData):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeValidationFailed,
			Message: "Validation failed",
			Details: err.Error(),
		})
	case errors.Is(err, usersErrors.ErrEmailTaken), errors.Is(err, usersErrors.ErrUserNotFound):
		return usersErrors.HandleServiceError(c, err)
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    CodeInternalError,
			Message: "An unexpected error occurred",
			Details: err.Error(),
		})
	}
}

// HandleInvalidRequestError handles malformed request bodies with 400
func HandleInvalidRequestError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    "INVALID_REQUEST",
		Message: message,
		Details: message,
	})
}
