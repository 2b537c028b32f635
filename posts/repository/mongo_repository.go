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

	"github.com/ciaanhq/ciaan-api/internal/database/mongodb"
	postsErrors "github.com/ciaanhq/ciaan-api/posts/errors"
	"github.com/ciaanhq/ciaan-api/posts/models"
)

// toggleLikeRetries bounds the retry loop when concurrent toggles flip
// the like-set membership between the two conditional updates.
const toggleLikeRetries = 3

// MongoPostRepository implements PostRepository over the posts collection
type MongoPostRepository struct {
	client *mongodb.Client
}

var _ PostRepository = (*MongoPostRepository)(nil)

// NewMongoPostRepository creates a post repository backed by MongoDB
func NewMongoPostRepository(client *mongodb.Client) *MongoPostRepository {
	return &MongoPostRepository{client: client}
}

func (r *MongoPostRepository) collection() *mongo.Collection {
	return r.client.Collection(mongodb.CollectionPosts)
}

// Create inserts a new post and assigns its ID
func (r *MongoPostRepository) Create(ctx context.Context, post *models.Post) error {
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.LikedBy == nil {
		post.LikedBy = []primitive.ObjectID{}
	}

	result, err := r.collection().InsertOne(ctx, post)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		post.ID = id
	}
	return nil
}

// FindByID retrieves a post by its ID
func (r *MongoPostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, postsErrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return &post, nil
}

// FindNewest retrieves posts ordered newest-first with skip/limit
func (r *MongoPostRepository) FindNewest(ctx context.Context, skip, limit int64) ([]*models.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find posts: %w", err)
	}
	defer cursor.Close(ctx)

	return decodePosts(ctx, cursor)
}

// FindByAuthor retrieves an author's posts ordered newest-first
func (r *MongoPostRepository) FindByAuthor(ctx context.Context, author primitive.ObjectID) ([]*models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection().Find(ctx, bson.M{"author": author}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find posts by author: %w", err)
	}
	defer cursor.Close(ctx)

	return decodePosts(ctx, cursor)
}

// Count returns the total number of posts
func (r *MongoPostRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection().CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// UpdateFields applies the given field updates to a post and returns the
// updated record
func (r *MongoPostRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Post, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for field, value := range updates {
		set[field] = value
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, postsErrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return &post, nil
}

// Delete removes a post
func (r *MongoPostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if result.DeletedCount == 0 {
		return postsErrors.ErrPostNotFound
	}
	return nil
}

// ToggleLike flips the user's like atomically: each branch is a single
// document update conditioned on the current like-set membership, so the
// membership check and the counter move cannot interleave with another
// toggle on the same post.
func (r *MongoPostRepository) ToggleLike(ctx context.Context, postID, userID primitive.ObjectID) (int64, bool, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	for attempt := 0; attempt < toggleLikeRetries; attempt++ {
		// Add branch: matches only while the user is not in the like set
		var post models.Post
		err := r.collection().FindOneAndUpdate(ctx,
			bson.M{"_id": postID, "likedBy": bson.M{"$ne": userID}},
			bson.M{
				"$addToSet": bson.M{"likedBy": userID},
				"$inc":      bson.M{"likeCount": 1},
			},
			opts,
		).Decode(&post)
		if err == nil {
			return post.LikeCount, true, nil
		}
		if err != mongo.ErrNoDocuments {
			return 0, false, fmt.Errorf("failed to toggle like: %w", err)
		}

		// Remove branch: matches only while the user is in the like set
		err = r.collection().FindOneAndUpdate(ctx,
			bson.M{"_id": postID, "likedBy": userID},
			bson.M{
				"$pull": bson.M{"likedBy": userID},
				"$inc":  bson.M{"likeCount": -1},
			},
			opts,
		).Decode(&post)
		if err == nil {
			return post.LikeCount, false, nil
		}
		if err != mongo.ErrNoDocuments {
			return 0, false, fmt.Errorf("failed to toggle like: %w", err)
		}

		// Both branches missed: either the post is gone or a concurrent
		// toggle flipped membership between the two updates. Retry after
		// confirming the post still exists.
		if _, err := r.FindByID(ctx, postID); err != nil {
			return 0, false, err
		}
	}
	return 0, false, fmt.Errorf("failed to toggle like on post %s: retries exhausted", postID.Hex())
}

// IncrementCommentCount moves a post's commentCount by delta
func (r *MongoPostRepository) IncrementCommentCount(ctx context.Context, postID primitive.ObjectID, delta int64) error {
	result, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$inc": bson.M{"commentCount": delta}},
	)
	if err != nil {
		return fmt.Errorf("failed to update comment count: %w", err)
	}
	if result.MatchedCount == 0 {
		return postsErrors.ErrPostNotFound
	}
	return nil
}

func decodePosts(ctx context.Context, cursor *mongo.Cursor) ([]*models.Post, error) {
	posts := []*models.Post{}
	for cursor.Next(ctx) {
		var post models.Post
		if err := cursor.Decode(&post); err != nil {
			return nil, fmt.Errorf("failed to decode post: %w", err)
		}
		posts = append(posts, &post)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("post cursor error: %w", err)
	}
	return posts, nil
}
