package services

import (
	"context"
	"fmt"

	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"

	authErrors "github.com/ciaanhq/ciaan-api/auth/errors"
	"github.com/ciaanhq/ciaan-api/auth/models"
	"github.com/ciaanhq/ciaan-api/auth/validation"
	"github.com/ciaanhq/ciaan-api/internal/cache"
	"github.com/ciaanhq/ciaan-api/internal/pkg/log"
	"github.com/ciaanhq/ciaan-api/internal/types"
	"github.com/ciaanhq/ciaan-api/internal/utils"
	usersErrors "github.com/ciaanhq/ciaan-api/users/errors"
	usersModels "github.com/ciaanhq/ciaan-api/users/models"
	usersRepo "github.com/ciaanhq/ciaan-api/users/repository"
)

// minPasswordScore is the minimum zxcvbn score (0-4) accepted at signup
const minPasswordScore = 2

// AuthService defines the authentication operations
type AuthService interface {
	// Register creates a new account and signs it in
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)

	// Login authenticates an existing account
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	// Logout drops the session identified by the token's session ID
	Logout(ctx context.Context, sessionID string)
}

// AuthServiceImpl implements AuthService
type AuthServiceImpl struct {
	users       usersRepo.UserRepository
	sessions    *cache.SessionStore
	jwtSecret   []byte
	expireHours int64
}

var _ AuthService = (*AuthServiceImpl)(nil)

// NewAuthService creates an AuthService
func NewAuthService(users usersRepo.UserRepository, sessions *cache.SessionStore, jwtSecret []byte, expireHours int64) *AuthServiceImpl {
	return &AuthServiceImpl{
		users:       users,
		sessions:    sessions,
		jwtSecret:   jwtSecret,
		expireHours: expireHours,
	}
}

// Register creates a new account and signs it in
func (s *AuthServiceImpl) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if err := validation.ValidateRegister(req); err != nil {
		return nil, err
	}

	strength := zxcvbn.PasswordStrength(req.Password, []string{req.FirstName, req.LastName, req.EmailID})
	if strength.Score < minPasswordScore {
		return nil, fmt.Errorf("%w: score %d of minimum %d", authErrors.ErrWeakPassword, strength.Score, minPasswordScore)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &usersModels.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		EmailID:   req.EmailID,
		Password:  hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	log.InfoWithContext(ctx, "User %s registered as %s", user.ID.Hex(), user.EmailID)
	return s.signIn(ctx, user)
}

// Login authenticates an existing account. A missing account and a wrong
// password are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if err := validation.ValidateLogin(req); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, req.EmailID)
	if err != nil {
		if err == usersErrors.ErrUserNotFound {
			return nil, authErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(req.Password)); err != nil {
		return nil, authErrors.ErrInvalidCredentials
	}

	log.InfoWithContext(ctx, "User %s logged in", user.ID.Hex())
	return s.signIn(ctx, user)
}

// Logout drops the session identified by the token's session ID
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) {
	s.sessions.Remove(ctx, sessionID)
}

// signIn mints a token for the user and records the session
func (s *AuthServiceImpl) signIn(ctx context.Context, user *usersModels.User) (*models.AuthResponse, error) {
	claim := types.UserContext{
		UserID:    user.ID,
		FirstName: user.FirstName,
		EmailID:   user.EmailID,
	}

	token, sessionID, err := utils.GenerateJWTToken(s.jwtSecret, claim, s.expireHours)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.sessions.Put(ctx, sessionID, user.ID.Hex())

	return &models.AuthResponse{
		Token: token,
		User:  user.Summary(),
	}, nil
}
