package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ciaanhq/ciaan-api/internal/pagination"
	usersModels "github.com/ciaanhq/ciaan-api/users/models"
)

// Post represents a feed entry in the posts collection. Counters are
// maintained by the store: likeCount moves with likedBy membership and
// commentCount moves with comment creation and cascade deletion.
type Post struct {
	ID           primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Title        string               `json:"title" bson:"title"`
	Content      string               `json:"content" bson:"content"`
	Author       primitive.ObjectID   `json:"author" bson:"author"`
	LikedBy      []primitive.ObjectID `json:"-" bson:"likedBy"`
	LikeCount    int64                `json:"likeCount" bson:"likeCount"`
	CommentCount int64                `json:"commentCount" bson:"commentCount"`
	CreatedAt    time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// LikedByUser reports whether the given user is in the post's like set
func (p *Post) LikedByUser(userID primitive.ObjectID) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// CreatePostRequest is the payload for creating a post
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePostRequest is the payload for updating a post. Nil fields are
// left untouched; at least one field must be present.
type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// PostResponse is the API shape of a post with its author populated
type PostResponse struct {
	ID           string                     `json:"_id"`
	Title        string                     `json:"title"`
	Content      string                     `json:"content"`
	Author       *usersModels.AuthorSummary `json:"author,omitempty"`
	LikeCount    int64                      `json:"likeCount"`
	CommentCount int64                      `json:"commentCount"`
	IsLiked      bool                       `json:"isLiked"`
	CreatedAt    time.Time                  `json:"createdAt"`
	UpdatedAt    time.Time                  `json:"updatedAt"`
}

// ToResponse converts a post to its API shape. The author summary may be
// nil when the author record no longer resolves.
func (p *Post) ToResponse(author *usersModels.AuthorSummary, viewer primitive.ObjectID) PostResponse {
	return PostResponse{
		ID:           p.ID.Hex(),
		Title:        p.Title,
		Content:      p.Content,
		Author:       author,
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
		IsLiked:      p.LikedByUser(viewer),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// LikeResponse is returned by the like toggle with the post's new state
type LikeResponse struct {
	PostID    string `json:"postId"`
	LikeCount int64  `json:"likeCount"`
	IsLiked   bool   `json:"isLiked"`
}

// PostsPagination extends the shared pagination meta with the total
// number of posts across all pages
type PostsPagination struct {
	pagination.Meta
	TotalPosts int64 `json:"totalPosts"`
}

// FeedResponse is the paginated feed envelope
type FeedResponse struct {
	Posts      []PostResponse  `json:"posts"`
	Pagination PostsPagination `json:"pagination"`
}
