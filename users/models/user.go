package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents the identity entity in the users collection. The email is
// unique, lowercase-normalized and immutable after registration; the password
// holds a bcrypt hash and is never serialized.
type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	FirstName string             `json:"firstName" bson:"firstName"`
	LastName  string             `json:"lastName,omitempty" bson:"lastName,omitempty"`
	EmailID   string             `json:"emailId" bson:"emailId"`
	Password  []byte             `json:"-" bson:"password"`
	Bio       string             `json:"bio,omitempty" bson:"bio,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// AuthorSummary is the public identity shape attached to posts and comments.
// It never carries the password.
type AuthorSummary struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
	EmailID   string `json:"emailId"`
}

// Summary converts a user to its public author shape
func (u *User) Summary() AuthorSummary {
	return AuthorSummary{
		ID:        u.ID.Hex(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		EmailID:   u.EmailID,
	}
}

// UpdateProfileRequest is the payload for the profile-update path. Only
// firstName and bio are mutable here.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}

// ProfileResponse is the public profile shape returned by the profile read.
type ProfileResponse struct {
	ID        string    `json:"_id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName,omitempty"`
	EmailID   string    `json:"emailId"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
