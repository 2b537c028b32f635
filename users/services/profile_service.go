package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ciaanhq/ciaan-api/internal/pkg/log"
	postsModels "github.com/ciaanhq/ciaan-api/posts/models"
	postsRepo "github.com/ciaanhq/ciaan-api/posts/repository"
	"github.com/ciaanhq/ciaan-api/users/models"
	"github.com/ciaanhq/ciaan-api/users/repository"
	"github.com/ciaanhq/ciaan-api/users/validation"
)

// ProfileService defines the profile business operations
type ProfileService interface {
	// GetProfile returns a user's public profile with their posts
	// newest-first, isLiked computed for the viewer
	GetProfile(ctx context.Context, viewer, userID primitive.ObjectID) (*models.ProfileResponse, []postsModels.PostResponse, error)

	// UpdateProfile applies a partial update to the caller's own profile
	UpdateProfile(ctx context.Context, caller primitive.ObjectID, req *models.UpdateProfileRequest) (*models.ProfileResponse, error)
}

// ProfileServiceImpl implements ProfileService
type ProfileServiceImpl struct {
	users repository.UserRepository
	posts postsRepo.PostRepository
}

var _ ProfileService = (*ProfileServiceImpl)(nil)

// NewProfileService creates a ProfileService with its repository
// dependencies
func NewProfileService(users repository.UserRepository, posts postsRepo.PostRepository) *ProfileServiceImpl {
	return &ProfileServiceImpl{users: users, posts: posts}
}

// GetProfile returns a user's public profile with their posts
func (s *ProfileServiceImpl) GetProfile(ctx context.Context, viewer, userID primitive.ObjectID) (*models.ProfileResponse, []postsModels.PostResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	posts, err := s.posts.FindByAuthor(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	summary := user.Summary()
	responses := make([]postsModels.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, post.ToResponse(&summary, viewer))
	}

	return profileResponse(user), responses, nil
}

// UpdateProfile applies a partial update to the caller's own profile
func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, caller primitive.ObjectID, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	if err := validation.ValidateUpdateProfile(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["firstName"] = *req.FirstName
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}

	user, err := s.users.UpdateProfile(ctx, caller, updates)
	if err != nil {
		return nil, err
	}

	log.InfoWithContext(ctx, "Profile updated for user %s", caller.Hex())
	return profileResponse(user), nil
}

func profileResponse(user *models.User) *models.ProfileResponse {
	return &models.ProfileResponse{
		ID:        user.ID.Hex(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		EmailID:   user.EmailID,
		Bio:       user.Bio,
		CreatedAt: user.CreatedAt,
	}
}
