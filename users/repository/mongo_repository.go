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
	usersErrors "github.com/ciaanhq/ciaan-api/users/errors"
	"github.com/ciaanhq/ciaan-api/users/models"
)

// MongoUserRepository implements UserRepository over the users collection
type MongoUserRepository struct {
	client *mongodb.Client
}

var _ UserRepository = (*MongoUserRepository)(nil)

// NewMongoUserRepository creates a user repository backed by MongoDB
func NewMongoUserRepository(client *mongodb.Client) *MongoUserRepository {
	return &MongoUserRepository{client: client}
}

func (r *MongoUserRepository) collection() *mongo.Collection {
	return r.client.Collection(mongodb.CollectionUsers)
}

// Create inserts a new user and assigns its ID
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.collection().InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", usersErrors.ErrEmailTaken, user.EmailID)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}

// FindByID retrieves a user by its ID
func (r *MongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, usersErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// FindByEmail retrieves a user by its lowercase-normalized email
func (r *MongoUserRepository) FindByEmail(ctx context.Context, emailID string) (*models.User, error) {
	var user models.User
	err := r.collection().FindOne(ctx, bson.M{"emailId": emailID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, usersErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

// FindByIDs retrieves the users for a set of IDs, keyed by hex ID
func (r *MongoUserRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[string]*models.User, error) {
	users := make(map[string]*models.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	cursor, err := r.collection().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users[user.ID.Hex()] = &user
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("user cursor error: %w", err)
	}
	return users, nil
}

// UpdateProfile applies field updates to a user and returns the updated record
func (r *MongoUserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for field, value := range updates {
		set[field] = value
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, usersErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}
