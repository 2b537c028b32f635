package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	usersErrors "github.com/ciaanhq/ciaan-api/users/errors"
	"github.com/ciaanhq/ciaan-api/users/models"
)

func TestValidateNameCountsCharacters(t *testing.T) {
	// Three runes, six bytes: within bounds by character count.
	assert.NoError(t, ValidateName("firstName", "üüü"))
	assert.NoError(t, ValidateName("firstName", strings.Repeat("ü", MaxNameLength)))

	assert.ErrorIs(t, ValidateName("firstName", "üü"), usersErrors.ErrInvalidUserData)
	assert.ErrorIs(t, ValidateName("firstName", strings.Repeat("ü", MaxNameLength+1)), usersErrors.ErrInvalidUserData)
}

func TestValidateUpdateProfileBioCountsCharacters(t *testing.T) {
	okBio := strings.Repeat("日", MaxBioLength)
	req := models.UpdateProfileRequest{Bio: &okBio}
	assert.NoError(t, ValidateUpdateProfile(&req))

	longBio := okBio + "日"
	req = models.UpdateProfileRequest{Bio: &longBio}
	assert.ErrorIs(t, ValidateUpdateProfile(&req), usersErrors.ErrInvalidUserData)
}
