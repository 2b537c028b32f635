package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	postsErrors "github.com/ciaanhq/ciaan-api/posts/errors"
	"github.com/ciaanhq/ciaan-api/posts/models"
)

const (
	// MaxTitleLength bounds the post title
	MaxTitleLength = 100
	// MaxContentLength bounds the post body
	MaxContentLength = 1000
)

// ValidateCreatePost checks a create payload and normalizes its fields
// in place (whitespace trimmed)
func ValidateCreatePost(req *models.CreatePostRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)

	if req.Title == "" {
		return fmt.Errorf("%w: title is required", postsErrors.ErrInvalidPostData)
	}
	if utf8.RuneCountInString(req.Title) > MaxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", postsErrors.ErrInvalidPostData, MaxTitleLength)
	}
	if req.Content == "" {
		return fmt.Errorf("%w: content is required", postsErrors.ErrInvalidPostData)
	}
	if utf8.RuneCountInString(req.Content) > MaxContentLength {
		return fmt.Errorf("%w: content must be at most %d characters", postsErrors.ErrInvalidPostData, MaxContentLength)
	}
	return nil
}

// ValidateUpdatePost checks an update payload. At least one field must be
// present; present fields are trimmed and bounded like on create.
func ValidateUpdatePost(req *models.UpdatePostRequest) error {
	if req.Title == nil && req.Content == nil {
		return fmt.Errorf("%w: at least one of title or content is required", postsErrors.ErrInvalidPostData)
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return fmt.Errorf("%w: title must not be empty", postsErrors.ErrInvalidPostData)
		}
		if utf8.RuneCountInString(title) > MaxTitleLength {
			return fmt.Errorf("%w: title must be at most %d characters", postsErrors.ErrInvalidPostData, MaxTitleLength)
		}
		*req.Title = title
	}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return fmt.Errorf("%w: content must not be empty", postsErrors.ErrInvalidPostData)
		}
		if utf8.RuneCountInString(content) > MaxContentLength {
			return fmt.Errorf("%w: content must be at most %d characters", postsErrors.ErrInvalidPostData, MaxContentLength)
		}
		*req.Content = content
	}
	return nil
}
