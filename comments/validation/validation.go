package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	commentsErrors "github.com/ciaanhq/ciaan-api/comments/errors"
	"github.com/ciaanhq/ciaan-api/comments/models"
)

// MaxContentLength bounds the comment body
const MaxContentLength = 500

// ValidateCreateComment checks a create payload and trims its content
// in place
func ValidateCreateComment(req *models.CreateCommentRequest) error {
	req.Content = strings.TrimSpace(req.Content)

	if req.Content == "" {
		return fmt.Errorf("%w: content is required", commentsErrors.ErrInvalidCommentData)
	}
	if utf8.RuneCountInString(req.Content) > MaxContentLength {
		return fmt.Errorf("%w: content must be at most %d characters", commentsErrors.ErrInvalidCommentData, MaxContentLength)
	}
	return nil
}
