// Package types provides the entity records and request shapes shared by the careerpath service.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// User is a registered account. Password holds the bcrypt hash, never the plain text.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewUser is the insert shape for a User.
type NewUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PublicUser is a User without its password hash, used in API responses.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Public strips the password hash.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}
	return &PublicUser{ID: u.ID, Username: u.Username}
}

// RegisterRequest represents the request to create a new account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents the login/register response with user data and authentication token.
type LoginResponse struct {
	User  *PublicUser `json:"user"`
	Token string      `json:"token"`
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
