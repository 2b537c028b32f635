package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	commentsRepo "github.com/ciaanhq/ciaan-api/comments/repository"
	"github.com/ciaanhq/ciaan-api/internal/pagination"
	"github.com/ciaanhq/ciaan-api/internal/pkg/log"
	postsErrors "github.com/ciaanhq/ciaan-api/posts/errors"
	"github.com/ciaanhq/ciaan-api/posts/models"
	"github.com/ciaanhq/ciaan-api/posts/repository"
	"github.com/ciaanhq/ciaan-api/posts/validation"
	usersModels "github.com/ciaanhq/ciaan-api/users/models"
	usersRepo "github.com/ciaanhq/ciaan-api/users/repository"
)

// FeedDefaultLimit is the page size used when the feed request does not
// carry a valid limit
const FeedDefaultLimit = 10

// PostService defines the post business operations
type PostService interface {
	// CreatePost validates and stores a new post for the author
	CreatePost(ctx context.Context, author primitive.ObjectID, req *models.CreatePostRequest) (*models.PostResponse, error)

	// GetFeed returns the global feed page, newest-first, with authors
	// populated and isLiked computed for the viewer
	GetFeed(ctx context.Context, viewer primitive.ObjectID, params pagination.Params) (*models.FeedResponse, error)

	// UpdatePost applies a partial update to the caller's own post
	UpdatePost(ctx context.Context, caller, postID primitive.ObjectID, req *models.UpdatePostRequest) (*models.PostResponse, error)

	// DeletePost removes the caller's own post and all its comments
	DeletePost(ctx context.Context, caller, postID primitive.ObjectID) error

	// ToggleLike flips the caller's like on a post
	ToggleLike(ctx context.Context, caller, postID primitive.ObjectID) (*models.LikeResponse, error)
}

// PostServiceImpl implements PostService
type PostServiceImpl struct {
	posts    repository.PostRepository
	comments commentsRepo.CommentRepository
	users    usersRepo.UserRepository
}

var _ PostService = (*PostServiceImpl)(nil)

// NewPostService creates a PostService with its repository dependencies
func NewPostService(posts repository.PostRepository, comments commentsRepo.CommentRepository, users usersRepo.UserRepository) *PostServiceImpl {
	return &PostServiceImpl{
		posts:    posts,
		comments: comments,
		users:    users,
	}
}

// CreatePost validates and stores a new post for the author
func (s *PostServiceImpl) CreatePost(ctx context.Context, author primitive.ObjectID, req *models.CreatePostRequest) (*models.PostResponse, error) {
	if err := validation.ValidateCreatePost(req); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:   req.Title,
		Content: req.Content,
		Author:  author,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	log.InfoWithContext(ctx, "Post %s created by user %s", post.ID.Hex(), author.Hex())

	resp := post.ToResponse(s.authorSummary(ctx, author), author)
	return &resp, nil
}

// GetFeed returns the global feed page, newest-first
func (s *PostServiceImpl) GetFeed(ctx context.Context, viewer primitive.ObjectID, params pagination.Params) (*models.FeedResponse, error) {
	posts, err := s.posts.FindNewest(ctx, params.Skip(), int64(params.Limit))
	if err != nil {
		return nil, err
	}

	total, err := s.posts.Count(ctx)
	if err != nil {
		return nil, err
	}

	authors, err := s.loadAuthors(ctx, posts)
	if err != nil {
		return nil, err
	}

	responses := make([]models.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, post.ToResponse(authors[post.Author.Hex()], viewer))
	}

	return &models.FeedResponse{
		Posts: responses,
		Pagination: models.PostsPagination{
			Meta:       pagination.NewMeta(params, total),
			TotalPosts: total,
		},
	}, nil
}

// UpdatePost applies a partial update to the caller's own post
func (s *PostServiceImpl) UpdatePost(ctx context.Context, caller, postID primitive.ObjectID, req *models.UpdatePostRequest) (*models.PostResponse, error) {
	if err := validation.ValidateUpdatePost(req); err != nil {
		return nil, err
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Author != caller {
		return nil, fmt.Errorf("%w: post %s", postsErrors.ErrPostOwnershipRequired, postID.Hex())
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}

	updated, err := s.posts.UpdateFields(ctx, postID, updates)
	if err != nil {
		return nil, err
	}

	resp := updated.ToResponse(s.authorSummary(ctx, updated.Author), caller)
	return &resp, nil
}

// DeletePost removes the caller's own post and cascades to its comments.
// The comment sweep runs before the post removal so a failure leaves the
// post and its counters intact rather than orphaning comments.
func (s *PostServiceImpl) DeletePost(ctx context.Context, caller, postID primitive.ObjectID) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.Author != caller {
		return fmt.Errorf("%w: post %s", postsErrors.ErrPostOwnershipRequired, postID.Hex())
	}

	removed, err := s.comments.DeleteByPost(ctx, postID)
	if err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, postID); err != nil {
		return err
	}

	log.InfoWithContext(ctx, "Post %s deleted by user %s (%d comments removed)", postID.Hex(), caller.Hex(), removed)
	return nil
}

// ToggleLike flips the caller's like on a post
func (s *PostServiceImpl) ToggleLike(ctx context.Context, caller, postID primitive.ObjectID) (*models.LikeResponse, error) {
	likeCount, isLiked, err := s.posts.ToggleLike(ctx, postID, caller)
	if err != nil {
		return nil, err
	}

	return &models.LikeResponse{
		PostID:    postID.Hex(),
		LikeCount: likeCount,
		IsLiked:   isLiked,
	}, nil
}

// loadAuthors resolves the distinct authors of a post page in one query
func (s *PostServiceImpl) loadAuthors(ctx context.Context, posts []*models.Post) (map[string]*usersModels.AuthorSummary, error) {
	seen := map[string]bool{}
	ids := []primitive.ObjectID{}
	for _, post := range posts {
		hex := post.Author.Hex()
		if !seen[hex] {
			seen[hex] = true
			ids = append(ids, post.Author)
		}
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	authors := make(map[string]*usersModels.AuthorSummary, len(users))
	for hex, user := range users {
		summary := user.Summary()
		authors[hex] = &summary
	}
	return authors, nil
}

// authorSummary resolves a single author, logging instead of failing
// when the record does not resolve
func (s *PostServiceImpl) authorSummary(ctx context.Context, id primitive.ObjectID) *usersModels.AuthorSummary {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		log.WarnWithContext(ctx, "Could not resolve author %s: %s", id.Hex(), err.Error())
		return nil
	}
	summary := user.Summary()
	return &summary
}
