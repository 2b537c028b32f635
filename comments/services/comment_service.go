package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ciaanhq/ciaan-api/comments/models"
	"github.com/ciaanhq/ciaan-api/comments/repository"
	"github.com/ciaanhq/ciaan-api/comments/validation"
	"github.com/ciaanhq/ciaan-api/internal/pagination"
	"github.com/ciaanhq/ciaan-api/internal/pkg/log"
	postsRepo "github.com/ciaanhq/ciaan-api/posts/repository"
	usersModels "github.com/ciaanhq/ciaan-api/users/models"
	usersRepo "github.com/ciaanhq/ciaan-api/users/repository"
)

// CommentsDefaultLimit is the page size used when the comment-list
// request does not carry a valid limit
const CommentsDefaultLimit = 5

// CommentService defines the comment business operations
type CommentService interface {
	// CreateComment validates and stores a comment on an existing post,
	// moving the post's commentCount with it
	CreateComment(ctx context.Context, author, postID primitive.ObjectID, req *models.CreateCommentRequest) (*models.CommentResponse, error)

	// ListComments returns a post's comments newest-first with authors
	// populated. The post must exist.
	ListComments(ctx context.Context, postID primitive.ObjectID, params pagination.Params) (*models.CommentListResponse, error)
}

// CommentServiceImpl implements CommentService
type CommentServiceImpl struct {
	comments repository.CommentRepository
	posts    postsRepo.PostRepository
	users    usersRepo.UserRepository
}

var _ CommentService = (*CommentServiceImpl)(nil)

// NewCommentService creates a CommentService with its repository
// dependencies
func NewCommentService(comments repository.CommentRepository, posts postsRepo.PostRepository, users usersRepo.UserRepository) *CommentServiceImpl {
	return &CommentServiceImpl{
		comments: comments,
		posts:    posts,
		users:    users,
	}
}

// CreateComment validates and stores a comment on an existing post
func (s *CommentServiceImpl) CreateComment(ctx context.Context, author, postID primitive.ObjectID, req *models.CreateCommentRequest) (*models.CommentResponse, error) {
	if err := validation.ValidateCreateComment(req); err != nil {
		return nil, err
	}

	// Existence gate: commenting on a missing post is a not-found, never
	// a silent insert.
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Post:    postID,
		Author:  author,
		Content: req.Content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.posts.IncrementCommentCount(ctx, postID, 1); err != nil {
		// The comment is stored; a lost counter move is logged rather
		// than failing the request.
		log.WarnWithContext(ctx, "Comment %s stored but commentCount update failed on post %s: %s",
			comment.ID.Hex(), postID.Hex(), err.Error())
	}

	resp := comment.ToResponse(s.authorSummary(ctx, author))
	return &resp, nil
}

// ListComments returns a post's comments newest-first
func (s *CommentServiceImpl) ListComments(ctx context.Context, postID primitive.ObjectID, params pagination.Params) (*models.CommentListResponse, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.comments.FindByPost(ctx, postID, params.Skip(), int64(params.Limit))
	if err != nil {
		return nil, err
	}

	total, err := s.comments.CountByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	authors, err := s.loadAuthors(ctx, comments)
	if err != nil {
		return nil, err
	}

	responses := make([]models.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, comment.ToResponse(authors[comment.Author.Hex()]))
	}

	return &models.CommentListResponse{
		Comments: responses,
		Pagination: models.CommentsPagination{
			Meta:          pagination.NewMeta(params, total),
			TotalComments: total,
		},
	}, nil
}

// loadAuthors resolves the distinct authors of a comment page in one query
func (s *CommentServiceImpl) loadAuthors(ctx context.Context, comments []*models.Comment) (map[string]*usersModels.AuthorSummary, error) {
	seen := map[string]bool{}
	ids := []primitive.ObjectID{}
	for _, comment := range comments {
		hex := comment.Author.Hex()
		if !seen[hex] {
			seen[hex] = true
			ids = append(ids, comment.Author)
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

func (s *CommentServiceImpl) authorSummary(ctx context.Context, id primitive.ObjectID) *usersModels.AuthorSummary {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		log.WarnWithContext(ctx, "Could not resolve author %s: %s", id.Hex(), err.Error())
		return nil
	}
	summary := user.Summary()
	return &summary
}
