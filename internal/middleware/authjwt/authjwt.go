package authjwt

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ciaanhq/ciaan-api/internal/types"
	"github.com/ciaanhq/ciaan-api/internal/utils"
)

// Config defines the config for the JWT middleware.
type Config struct {
	// Secret is the HS256 signing secret.
	Secret string
	// UserCtxName is the Locals key the UserContext is stored under.
	UserCtxName string
}

// New creates the access-gate middleware. It accepts a bearer token from the
// Authorization header or the access_token cookie, verifies it, and injects
// the authenticated identity into Locals. The session cache is deliberately
// not consulted here.
func New(cfg Config) fiber.Handler {
	userCtxName := cfg.UserCtxName
	if userCtxName == "" {
		userCtxName = types.UserCtxName
	}

	return func(c *fiber.Ctx) error {
		var tokenString string

		// Authorization header first (API clients), then cookie (browsers).
		authHeader := c.Get(types.HeaderAuthorization)
		if strings.HasPrefix(authHeader, types.BearerPrefix) {
			tokenString = strings.TrimPrefix(authHeader, types.BearerPrefix)
		}
		if tokenString == "" {
			tokenString = c.Cookies(types.AccessTokenCookie)
		}
		if tokenString == "" {
			return unauthorized(c, "Missing or invalid JWT")
		}

		claims, err := utils.ValidateToken([]byte(cfg.Secret), tokenString)
		if err != nil {
			return unauthorized(c, "Invalid token")
		}

		user, err := userFromClaims(claims)
		if err != nil {
			return unauthorized(c, "Invalid token claim format")
		}

		c.Locals(userCtxName, *user)
		return c.Next()
	}
}

func userFromClaims(claims jwt.MapClaims) (*types.UserContext, error) {
	claimData, ok := claims["claim"].(map[string]interface{})
	if !ok {
		return nil, fiber.ErrUnauthorized
	}

	idHex, _ := claimData["_id"].(string)
	userID, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, err
	}

	firstName, _ := claimData["firstName"].(string)
	emailID, _ := claimData["emailId"].(string)

	return &types.UserContext{
		UserID:    userID,
		FirstName: firstName,
		EmailID:   emailID,
	}, nil
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"code":    "UNAUTHORIZED",
		"message": message,
	})
}
