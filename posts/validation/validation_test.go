package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	postsErrors "github.com/ciaanhq/ciaan-api/posts/errors"
	"github.com/ciaanhq/ciaan-api/posts/models"
)

func TestValidateCreatePostCountsCharacters(t *testing.T) {
	// Each rune is multibyte, so the byte length is well over the cap.
	title := strings.Repeat("ü", MaxTitleLength)
	content := strings.Repeat("日", MaxContentLength)

	req := models.CreatePostRequest{Title: title, Content: content}
	assert.NoError(t, ValidateCreatePost(&req))

	req = models.CreatePostRequest{Title: title + "ü", Content: "body"}
	assert.ErrorIs(t, ValidateCreatePost(&req), postsErrors.ErrInvalidPostData)

	req = models.CreatePostRequest{Title: "title", Content: content + "日"}
	assert.ErrorIs(t, ValidateCreatePost(&req), postsErrors.ErrInvalidPostData)
}

func TestValidateUpdatePostCountsCharacters(t *testing.T) {
	okTitle := strings.Repeat("ü", MaxTitleLength)
	longTitle := okTitle + "ü"

	req := models.UpdatePostRequest{Title: &okTitle}
	assert.NoError(t, ValidateUpdatePost(&req))

	req = models.UpdatePostRequest{Title: &longTitle}
	assert.ErrorIs(t, ValidateUpdatePost(&req), postsErrors.ErrInvalidPostData)
}
