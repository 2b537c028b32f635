package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	postsErrors "github.com/ciaanhq/ciaan-api/posts/errors"
)

// Comment service specific errors
var (
	ErrCommentNotFound    = errors.New("comment not found")
	ErrInvalidCommentData = errors.New("invalid comment data")
)

// Error codes
const (
	CodeCommentNotFound  = "COMMENT_NOT_FOUND"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInternalError    = "INTERNAL_ERROR"
)

// ErrorResponse is the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError maps comment service errors to HTTP responses.
// Comment operations surface post lookups, so post errors pass through
// to the post mapping.
func HandleServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, postsErrors.ErrPostNotFound):
		return postsErrors.HandleServiceError(c, err)
	case errors.Is(err, ErrCommentNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeCommentNotFound,
			Message: "Comment not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidCommentData):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeValidationFailed,
			Message: "Validation failed",
			Details: err.Error(),
		})
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
