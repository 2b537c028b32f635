package users

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ciaanhq/ciaan-api/users/handlers"
)

// RegisterRoutes mounts the profile endpoints. The profile read is
// public; the update requires auth.
func RegisterRoutes(router fiber.Router, handler *handlers.ProfileHandler, auth fiber.Handler) {
	group := router.Group("/users")

	group.Get("/profile/:userId", handler.GetProfile)
	group.Put("/profileupdate", auth, handler.UpdateProfile)
}
