// Copyright (c) 2026 Ciaan
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ciaanhq/ciaan-api/comments/models"
)

// CommentRepository defines the comment-store operations
type CommentRepository interface {
	// Create inserts a new comment and assigns its ID
	Create(ctx context.Context, comment *models.Comment) error

	// FindByPost retrieves a post's comments ordered newest-first with
	// skip/limit
	FindByPost(ctx context.Context, postID primitive.ObjectID, skip, limit int64) ([]*models.Comment, error)

	// CountByPost returns the number of comments on a post
	CountByPost(ctx context.Context, postID primitive.ObjectID) (int64, error)

	// DeleteByPost removes all comments on a post and returns how many
	// were removed
	DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error)
}
