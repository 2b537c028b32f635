package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ciaanhq/ciaan-api/internal/types"
	usersErrors "github.com/ciaanhq/ciaan-api/users/errors"
	"github.com/ciaanhq/ciaan-api/users/models"
	"github.com/ciaanhq/ciaan-api/users/services"
)

// ProfileHandler handles the profile HTTP endpoints
type ProfileHandler struct {
	service services.ProfileService
}

// NewProfileHandler creates a ProfileHandler
func NewProfileHandler(service services.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetProfile handles GET /users/profile/:userId. The route is public;
// when a viewer is authenticated their like state is reflected on the
// returned posts.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return usersErrors.HandleServiceError(c, usersErrors.ErrUserNotFound)
	}

	viewer := primitive.NilObjectID
	if currentUser, ok := c.Locals(types.UserCtxName).(types.UserContext); ok {
		viewer = currentUser.UserID
	}

	profile, posts, err := h.service.GetProfile(c.UserContext(), viewer, userID)
	if err != nil {
		return usersErrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"user":  profile,
		"posts": posts,
	})
}

// UpdateProfile handles PUT /users/profileupdate
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	currentUser, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return usersErrors.HandleInvalidRequestError(c, "Missing user context")
	}

	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return usersErrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	profile, err := h.service.UpdateProfile(c.UserContext(), currentUser.UserID, &req)
	if err != nil {
		return usersErrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"user":    profile,
		"message": "Profile updated successfully",
	})
}
