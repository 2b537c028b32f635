package types

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HTTP header constants
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
)

// Authentication constants
const (
	BearerPrefix = "Bearer "

	// AccessTokenCookie is the cookie the access gate reads when no
	// Authorization header is present.
	AccessTokenCookie = "access_token"
)

// UserCtxName is the fiber Locals key the auth middleware stores the
// authenticated identity under.
const UserCtxName = "user"

// UserContext is the authenticated identity injected into every request by
// the auth middleware. Services trust it without re-verifying credentials.
type UserContext struct {
	UserID    primitive.ObjectID `json:"_id"`
	FirstName string             `json:"firstName"`
	EmailID   string             `json:"emailId"`
}
