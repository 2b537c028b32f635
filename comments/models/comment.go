package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ciaanhq/ciaan-api/internal/pagination"
	usersModels "github.com/ciaanhq/ciaan-api/users/models"
)

// Comment represents an entry in the comments collection, always bound
// to an existing post at creation time.
type Comment struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Post      primitive.ObjectID `json:"post" bson:"post"`
	Author    primitive.ObjectID `json:"author" bson:"author"`
	Content   string             `json:"content" bson:"content"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateCommentRequest is the payload for commenting on a post
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// CommentResponse is the API shape of a comment with its author populated
type CommentResponse struct {
	ID        string                     `json:"_id"`
	PostID    string                     `json:"postId"`
	Author    *usersModels.AuthorSummary `json:"author,omitempty"`
	Content   string                     `json:"content"`
	CreatedAt time.Time                  `json:"createdAt"`
}

// ToResponse converts a comment to its API shape. The author summary may
// be nil when the author record no longer resolves.
func (c *Comment) ToResponse(author *usersModels.AuthorSummary) CommentResponse {
	return CommentResponse{
		ID:        c.ID.Hex(),
		PostID:    c.Post.Hex(),
		Author:    author,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

// CommentsPagination extends the shared pagination meta with the total
// number of comments on the post
type CommentsPagination struct {
	pagination.Meta
	TotalComments int64 `json:"totalComments"`
}

// CommentListResponse is the paginated comment-list envelope
type CommentListResponse struct {
	Comments   []CommentResponse  `json:"comments"`
	Pagination CommentsPagination `json:"pagination"`
}
