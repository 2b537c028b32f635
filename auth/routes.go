package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ciaanhq/ciaan-api/auth/handlers"
)

// RegisterRoutes mounts the authentication endpoints. Register and login
// are public; logout and check require auth.
func RegisterRoutes(router fiber.Router, handler *handlers.AuthHandler, auth fiber.Handler) {
	group := router.Group("/user")

	group.Post("/register", handler.Register)
	group.Post("/login", handler.Login)
	group.Post("/logout", auth, handler.Logout)
	group.Get("/check", auth, handler.Check)
}
