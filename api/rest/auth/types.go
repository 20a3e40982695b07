package auth

import (
	"context"

	"codeberg.org/savant/server/savant/users"
)

// persists and looks up accounts
type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash, plan string) (*users.User, error)
	FindByEmail(ctx context.Context, email string) (*users.User, error)
}

// contains data for creating a new account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// contains account credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// carries the issued token together with the account
type AuthResponse struct {
	Token string      `json:"token"`
	User  *users.User `json:"user"`
}
