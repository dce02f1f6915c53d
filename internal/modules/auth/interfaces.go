package auth

import (
	"context"

	"timebank/internal/timebank"
)

// API is the slice of the backend client this module calls.
type API interface {
	Register(ctx context.Context, req timebank.RegisterRequest) (*timebank.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*timebank.AuthResponse, error)
	Logout(ctx context.Context) error
}

// Authed derives an authenticated API from a backend token, so the token is
// an explicit value rather than ambient state.
type Authed func(token string) API
