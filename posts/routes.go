package posts

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ciaanhq/ciaan-api/posts/handlers"
)

// RegisterRoutes mounts the post endpoints. All of them require auth.
// The literal paths are registered before the :postId routes so they are
// never captured as IDs.
func RegisterRoutes(router fiber.Router, handler *handlers.PostHandler, auth fiber.Handler) {
	group := router.Group("/post", auth)

	group.Post("/create", handler.CreatePost)
	group.Get("/feed", handler.GetFeed)
	group.Put("/:postId", handler.UpdatePost)
	group.Delete("/:postId", handler.DeletePost)
	group.Post("/:postId/like", handler.ToggleLike)
}
