package comments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ciaanhq/ciaan-api/comments/handlers"
)

// RegisterRoutes mounts the comment endpoints under the post path. Both
// require auth.
func RegisterRoutes(router fiber.Router, handler *handlers.CommentHandler, auth fiber.Handler) {
	group := router.Group("/post", auth)

	group.Post("/:postId/comment", handler.CreateComment)
	group.Get("/:postId/comments", handler.ListComments)
}
