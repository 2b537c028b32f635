// Copyright (c) 2026 Ciaan
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ciaanhq/ciaan-api/users/models"
)

// UserRepository defines the identity-store operations. Implementations
// return users/errors sentinels for not-found and duplicate-email cases.
type UserRepository interface {
	// Create inserts a new user and assigns its ID
	Create(ctx context.Context, user *models.User) error

	// FindByID retrieves a user by its ID
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)

	// FindByEmail retrieves a user by its lowercase-normalized email
	FindByEmail(ctx context.Context, emailID string) (*models.User, error)

	// FindByIDs retrieves the users for a set of IDs, keyed by hex ID.
	// Missing IDs are simply absent from the result.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[string]*models.User, error)

	// UpdateProfile applies the given field updates to a user and returns
	// the updated record
	UpdateProfile(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.User, error)
}
