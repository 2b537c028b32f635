package authjwt

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ciaanhq/ciaan-api/internal/types"
	"github.com/ciaanhq/ciaan-api/internal/utils"
)

const testSecret = "test-secret"

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(New(Config{Secret: testSecret}))
	app.Get("/protected", func(c *fiber.Ctx) error {
		user, ok := c.Locals(types.UserCtxName).(types.UserContext)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"emailId": user.EmailID})
	})
	return app
}

func mintToken(t *testing.T, secret string) string {
	t.Helper()
	userID := primitive.NewObjectID()
	token, _, err := utils.GenerateJWTToken([]byte(secret), map[string]string{
		"_id":       userID.Hex(),
		"firstName": "Asha",
		"emailId":   "asha@example.com",
	}, 1)
	require.NoError(t, err)
	return token
}

func TestMissingTokenRejected(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestBearerTokenAccepted(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(types.HeaderAuthorization, types.BearerPrefix+mintToken(t, testSecret))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCookieTokenAccepted(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: types.AccessTokenCookie, Value: mintToken(t, testSecret)})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestForgedTokenRejected(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(types.HeaderAuthorization, types.BearerPrefix+mintToken(t, "other-secret"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
