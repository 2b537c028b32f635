package models

import (
	usersModels "github.com/ciaanhq/ciaan-api/users/models"
)

// RegisterRequest is the signup payload
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
	EmailID   string `json:"emailId"`
	Password  string `json:"password"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	EmailID  string `json:"emailId"`
	Password string `json:"password"`
}

// AuthResponse carries the signed token and the authenticated identity
type AuthResponse struct {
	Token string                    `json:"token"`
	User  usersModels.AuthorSummary `json:"user"`
}
