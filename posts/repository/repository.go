// Copyright (c) 2026 Ciaan
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ciaanhq/ciaan-api/posts/models"
)

// PostRepository defines the post-store operations. Implementations
// return posts/errors sentinels for not-found cases.
type PostRepository interface {
	// Create inserts a new post and assigns its ID
	Create(ctx context.Context, post *models.Post) error

	// FindByID retrieves a post by its ID
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)

	// FindNewest retrieves posts ordered newest-first with skip/limit
	FindNewest(ctx context.Context, skip, limit int64) ([]*models.Post, error)

	// FindByAuthor retrieves an author's posts ordered newest-first
	FindByAuthor(ctx context.Context, author primitive.ObjectID) ([]*models.Post, error)

	// Count returns the total number of posts
	Count(ctx context.Context) (int64, error)

	// UpdateFields applies the given field updates to a post and returns
	// the updated record
	UpdateFields(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Post, error)

	// Delete removes a post
	Delete(ctx context.Context, id primitive.ObjectID) error

	// ToggleLike atomically flips the given user's membership in the
	// post's like set and moves likeCount with it. It returns the post's
	// resulting like count and whether the user now likes the post.
	ToggleLike(ctx context.Context, postID, userID primitive.ObjectID) (likeCount int64, isLiked bool, err error)

	// IncrementCommentCount moves a post's commentCount by delta
	IncrementCommentCount(ctx context.Context, postID primitive.ObjectID, delta int64) error
}
