// Copyright (c) 2026 Ciaan
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ciaanhq/ciaan-api/comments/models"
	"github.com/ciaanhq/ciaan-api/internal/database/mongodb"
)

// MongoCommentRepository implements CommentRepository over the comments
// collection
type MongoCommentRepository struct {
	client *mongodb.Client
}

var _ CommentRepository = (*MongoCommentRepository)(nil)

// NewMongoCommentRepository creates a comment repository backed by MongoDB
func NewMongoCommentRepository(client *mongodb.Client) *MongoCommentRepository {
	return &MongoCommentRepository{client: client}
}

func (r *MongoCommentRepository) collection() *mongo.Collection {
	return r.client.Collection(mongodb.CollectionComments)
}

// Create inserts a new comment and assigns its ID
func (r *MongoCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	result, err := r.collection().InsertOne(ctx, comment)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		comment.ID = id
	}
	return nil
}

// FindByPost retrieves a post's comments ordered newest-first with
// skip/limit
func (r *MongoCommentRepository) FindByPost(ctx context.Context, postID primitive.ObjectID, skip, limit int64) ([]*models.Comment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.collection().Find(ctx, bson.M{"post": postID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}
	defer cursor.Close(ctx)

	comments := []*models.Comment{}
	for cursor.Next(ctx) {
		var comment models.Comment
		if err := cursor.Decode(&comment); err != nil {
			return nil, fmt.Errorf("failed to decode comment: %w", err)
		}
		comments = append(comments, &comment)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("comment cursor error: %w", err)
	}
	return comments, nil
}

// CountByPost returns the number of comments on a post
func (r *MongoCommentRepository) CountByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	count, err := r.collection().CountDocuments(ctx, bson.M{"post": postID})
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}

// DeleteByPost removes all comments on a post
func (r *MongoCommentRepository) DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	result, err := r.collection().DeleteMany(ctx, bson.M{"post": postID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete comments: %w", err)
	}
	return result.DeletedCount, nil
}
