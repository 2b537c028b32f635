package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	commentsErrors "github.com/ciaanhq/ciaan-api/comments/errors"
	"github.com/ciaanhq/ciaan-api/comments/models"
	"github.com/ciaanhq/ciaan-api/comments/services"
	"github.com/ciaanhq/ciaan-api/internal/pagination"
	"github.com/ciaanhq/ciaan-api/internal/types"
	postsErrors "github.com/ciaanhq/ciaan-api/posts/errors"
)

// CommentHandler handles the comment HTTP endpoints
type CommentHandler struct {
	service services.CommentService
}

// NewCommentHandler creates a CommentHandler
func NewCommentHandler(service services.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// CreateComment handles POST /post/:postId/comment
func (h *CommentHandler) CreateComment(c *fiber.Ctx) error {
	currentUser, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return commentsErrors.HandleInvalidRequestError(c, "Missing user context")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return commentsErrors.HandleServiceError(c, err)
	}

	var req models.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return commentsErrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	comment, err := h.service.CreateComment(c.UserContext(), currentUser.UserID, postID, &req)
	if err != nil {
		return commentsErrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"comment": comment,
		"message": "Comment added successfully",
	})
}

// ListComments handles GET /post/:postId/comments
func (h *CommentHandler) ListComments(c *fiber.Ctx) error {
	postID, err := parsePostID(c)
	if err != nil {
		return commentsErrors.HandleServiceError(c, err)
	}

	params := pagination.Decode(queryValues(c), services.CommentsDefaultLimit)

	list, err := h.service.ListComments(c.UserContext(), postID, params)
	if err != nil {
		return commentsErrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(list)
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
