package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	authErrors "github.com/ciaanhq/ciaan-api/auth/errors"
	"github.com/ciaanhq/ciaan-api/auth/models"
	"github.com/ciaanhq/ciaan-api/auth/services"
	"github.com/ciaanhq/ciaan-api/internal/types"
	"github.com/ciaanhq/ciaan-api/internal/utils"
)

// AuthHandler handles the authentication HTTP endpoints
type AuthHandler struct {
	service     services.AuthService
	jwtSecret   []byte
	expireHours int64
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(service services.AuthService, jwtSecret []byte, expireHours int64) *AuthHandler {
	return &AuthHandler{
		service:     service,
		jwtSecret:   jwtSecret,
		expireHours: expireHours,
	}
}

// Register handles POST /user/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return authErrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	resp, err := h.service.Register(c.UserContext(), &req)
	if err != nil {
		return authErrors.HandleServiceError(c, err)
	}

	h.setTokenCookie(c, resp.Token)
	return c.Status(http.StatusCreated).JSON(resp)
}

// Login handles POST /user/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return authErrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	resp, err := h.service.Login(c.UserContext(), &req)
	if err != nil {
		return authErrors.HandleServiceError(c, err)
	}

	h.setTokenCookie(c, resp.Token)
	return c.Status(http.StatusOK).JSON(resp)
}

// Logout handles POST /user/logout. It drops the server-side session for
// the presented token and clears the cookie; the token itself stays
// valid until expiry.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := extractToken(c); token != "" {
		if claims, err := utils.ValidateToken(h.jwtSecret, token); err == nil {
			if sessionID, ok := claims["jti"].(string); ok {
				h.service.Logout(c.UserContext(), sessionID)
			}
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     types.AccessTokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// Check handles GET /user/check and echoes the authenticated identity
func (h *AuthHandler) Check(c *fiber.Ctx) error {
	currentUser, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return authErrors.HandleInvalidRequestError(c, "Missing user context")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"user": fiber.Map{
			"_id":       currentUser.UserID.Hex(),
			"firstName": currentUser.FirstName,
			"emailId":   currentUser.EmailID,
		},
	})
}

func (h *AuthHandler) setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     types.AccessTokenCookie,
		Value:    token,
		Expires:  time.Now().Add(time.Duration(h.expireHours) * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func extractToken(c *fiber.Ctx) string {
	header := c.Get(types.HeaderAuthorization)
	if strings.HasPrefix(header, types.BearerPrefix) {
		return strings.TrimPrefix(header, types.BearerPrefix)
	}
	return c.Cookies(types.AccessTokenCookie)
}
