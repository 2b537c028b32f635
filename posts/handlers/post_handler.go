package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ciaanhq/ciaan-api/internal/pagination"
	"github.com/ciaanhq/ciaan-api/internal/types"
	postsErrors "github.com/ciaanhq/ciaan-api/posts/errors"
	"github.com/ciaanhq/ciaan-api/posts/models"
	"github.com/ciaanhq/ciaan-api/posts/services"
)

// PostHandler handles the post HTTP endpoints
type PostHandler struct {
	service services.PostService
}

// NewPostHandler creates a PostHandler
func NewPostHandler(service services.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// CreatePost handles POST /post/create
func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	currentUser, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return postsErrors.HandleInvalidRequestError(c, "Missing user context")
	}

	var req models.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return postsErrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	post, err := h.service.CreatePost(c.UserContext(), currentUser.UserID, &req)
	if err != nil {
		return postsErrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"post":    post,
		"message": "Post created successfully",
	})
}

// GetFeed handles GET /post/feed
func (h *PostHandler) GetFeed(c *fiber.Ctx) error {
	currentUser, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return postsErrors.HandleInvalidRequestError(c, "Missing user context")
	}

	params := pagination.Decode(queryValues(c), services.FeedDefaultLimit)

	feed, err := h.service.GetFeed(c.UserContext(), currentUser.UserID, params)
	if err != nil {
		return postsErrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(feed)
}

// UpdatePost handles PUT /post/:postId
func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	currentUser, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return postsErrors.HandleInvalidRequestError(c, "Missing user context")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return postsErrors.HandleServiceError(c, err)
	}

	var req models.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return postsErrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	post, err := h.service.UpdatePost(c.UserContext(), currentUser.UserID, postID, &req)
	if err != nil {
		return postsErrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"post":    post,
		"message": "Post updated successfully",
	})
}

// DeletePost handles DELETE /post/:postId
func (h *PostHandler) DeletePost(c *fiber.Ctx) error {
	currentUser, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return postsErrors.HandleInvalidRequestError(c, "Missing user context")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return postsErrors.HandleServiceError(c, err)
	}

	if err := h.service.DeletePost(c.UserContext(), currentUser.UserID, postID); err != nil {
		return postsErrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Post deleted successfully",
	})
}

// ToggleLike handles POST /post/:postId/like
func (h *PostHandler) ToggleLike(c *fiber.Ctx) error {
	currentUser, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return postsErrors.HandleInvalidRequestError(c, "Missing user context")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return postsErrors.HandleServiceError(c, err)
	}

	like, err := h.service.ToggleLike(c.UserContext(), currentUser.UserID, postID)
	if err != nil {
		return postsErrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(like)
}

// parsePostID reads the :postId route param. A malformed ID cannot name
// any post, so it maps to not-found.
func parsePostID(c *fiber.Ctx) (primitive.ObjectID, error) {
	postID, err := primitive.ObjectIDFromHex(c.Params("postId"))
	if err != nil {
		return primitive.NilObjectID, postsErrors.ErrPostNotFound
	}
	return postID, nil
}

func queryValues(c *fiber.Ctx) map[string][]string {
	values := map[string][]string{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		values[string(key)] = append(values[string(key)], string(value))
	})
	return values
}
