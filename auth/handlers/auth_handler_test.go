package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/ciaanhq/ciaan-api/auth/models"
	authServices "github.com/ciaanhq/ciaan-api/auth/services"
	"github.com/ciaanhq/ciaan-api/internal/cache"
	"github.com/ciaanhq/ciaan-api/internal/middleware/authjwt"
	"github.com/ciaanhq/ciaan-api/internal/types"
	usersErrors "github.com/ciaanhq/ciaan-api/users/errors"
	usersModels "github.com/ciaanhq/ciaan-api/users/models"
	"github.com/ciaanhq/ciaan-api/users/services/mocks"
)

const testSecret = "test-secret"

func newTestApp(userRepo *mocks.MockUserRepository) *fiber.App {
	sessions := cache.NewSessionStore(cache.NewMemoryCache(), "test:", time.Hour)
	service := authServices.NewAuthService(userRepo, sessions, []byte(testSecret), 24)
	handler := NewAuthHandler(service, []byte(testSecret), 24)

	gate := authjwt.New(authjwt.Config{Secret: testSecret})

	app := fiber.New()
	group := app.Group("/user")
	group.Post("/register", handler.Register)
	group.Post("/login", handler.Login)
	group.Post("/logout", gate, handler.Logout)
	group.Get("/check", gate, handler.Check)
	return app
}

func jsonRequest(method, target string, payload interface{}) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestRegisterEndpointSetsCookie(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*usersModels.User).ID = primitive.NewObjectID()
	}).Return(nil)
	app := newTestApp(userRepo)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/user/register", models.RegisterRequest{
		FirstName: "Asha",
		EmailID:   "asha@example.com",
		Password:  "correct horse battery staple",
	}))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	cookie := findCookie(resp, types.AccessTokenCookie)
	assert.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)

	var auth models.AuthResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&auth))
	assert.Equal(t, auth.Token, cookie.Value)
}

func TestLoginEndpointBadPasswordStatus(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("the real password"), bcrypt.MinCost)
	userRepo := new(mocks.MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(&usersModels.User{
		ID:       primitive.NewObjectID(),
		EmailID:  "asha@example.com",
		Password: hash,
	}, nil)
	app := newTestApp(userRepo)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/user/login", models.LoginRequest{
		EmailID:  "asha@example.com",
		Password: "a guess",
	}))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterEndpointDuplicateEmailStatus(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(usersErrors.ErrEmailTaken)
	app := newTestApp(userRepo)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/user/register", models.RegisterRequest{
		FirstName: "Asha",
		EmailID:   "asha@example.com",
		Password:  "correct horse battery staple",
	}))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCheckAndLogoutFlow(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*usersModels.User).ID = primitive.NewObjectID()
	}).Return(nil)
	app := newTestApp(userRepo)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/user/register", models.RegisterRequest{
		FirstName: "Asha",
		EmailID:   "asha@example.com",
		Password:  "correct horse battery staple",
	}))
	assert.NoError(t, err)

	var auth models.AuthResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&auth))

	check := httptest.NewRequest(http.MethodGet, "/user/check", nil)
	check.Header.Set(types.HeaderAuthorization, types.BearerPrefix+auth.Token)
	resp, err = app.Test(check)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	logout := httptest.NewRequest(http.MethodPost, "/user/logout", nil)
	logout.Header.Set(types.HeaderAuthorization, types.BearerPrefix+auth.Token)
	resp, err = app.Test(logout)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := findCookie(resp, types.AccessTokenCookie)
	assert.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)

	// Unauthenticated check is rejected
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/user/check", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
