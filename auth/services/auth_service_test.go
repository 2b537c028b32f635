package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	authErrors "github.com/ciaanhq/ciaan-api/auth/errors"
	"github.com/ciaanhq/ciaan-api/auth/models"
	"github.com/ciaanhq/ciaan-api/internal/cache"
	"github.com/ciaanhq/ciaan-api/internal/utils"
	usersErrors "github.com/ciaanhq/ciaan-api/users/errors"
	usersModels "github.com/ciaanhq/ciaan-api/users/models"
	"github.com/ciaanhq/ciaan-api/users/services/mocks"
)

var testSecret = []byte("test-secret")

func newTestService() (*AuthServiceImpl, *mocks.MockUserRepository, *cache.SessionStore) {
	userRepo := new(mocks.MockUserRepository)
	sessions := cache.NewSessionStore(cache.NewMemoryCache(), "test:", time.Hour)
	svc := NewAuthService(userRepo, sessions, testSecret, 24)
	return svc, userRepo, sessions
}

func TestRegister(t *testing.T) {
	svc, userRepo, _ := newTestService()

	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		user := args.Get(1).(*usersModels.User)
		user.ID = primitive.NewObjectID()
	}).Return(nil)

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		FirstName: "Asha",
		EmailID:   "Asha@Example.COM",
		Password:  "correct horse battery staple",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "asha@example.com", resp.User.EmailID)

	claims, err := utils.ValidateToken(testSecret, resp.Token)
	assert.NoError(t, err)
	claim := claims["claim"].(map[string]interface{})
	assert.Equal(t, "Asha", claim["firstName"])
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, userRepo, _ := newTestService()

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		FirstName: "Asha",
		EmailID:   "asha@example.com",
		Password:  "password",
	})

	assert.ErrorIs(t, err, authErrors.ErrWeakPassword)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newTestService()

	cases := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"short first name", models.RegisterRequest{FirstName: "Al", EmailID: "al@example.com", Password: "correct horse battery staple"}},
		{"bad email", models.RegisterRequest{FirstName: "Asha", EmailID: "not-an-email", Password: "correct horse battery staple"}},
		{"missing password", models.RegisterRequest{FirstName: "Asha", EmailID: "asha@example.com"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &tc.req)
			assert.ErrorIs(t, err, authErrors.ErrInvalidAuthData)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, userRepo, _ := newTestService()

	userRepo.On("Create", mock.Anything, mock.Anything).Return(usersErrors.ErrEmailTaken)

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		FirstName: "Asha",
		EmailID:   "asha@example.com",
		Password:  "correct horse battery staple",
	})
	assert.ErrorIs(t, err, usersErrors.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc, userRepo, _ := newTestService()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse battery staple"), bcrypt.MinCost)
	assert.NoError(t, err)

	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(&usersModels.User{
		ID:        primitive.NewObjectID(),
		FirstName: "Asha",
		EmailID:   "asha@example.com",
		Password:  hash,
	}, nil)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		EmailID:  " Asha@example.com ",
		Password: "correct horse battery staple",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, userRepo, _ := newTestService()
	hash, err := bcrypt.GenerateFromPassword([]byte("the real password"), bcrypt.MinCost)
	assert.NoError(t, err)

	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(&usersModels.User{
		ID:       primitive.NewObjectID(),
		EmailID:  "asha@example.com",
		Password: hash,
	}, nil)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		EmailID:  "asha@example.com",
		Password: "a guess",
	})
	assert.ErrorIs(t, err, authErrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, userRepo, _ := newTestService()

	userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, usersErrors.ErrUserNotFound)

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		EmailID:  "ghost@example.com",
		Password: "whatever",
	})
	// Presents the same error as a wrong password
	assert.ErrorIs(t, err, authErrors.ErrInvalidCredentials)
}
