package profile

import (
	"context"

	"timebank/internal/domain"
	"timebank/internal/timebank"
)

type API interface {
	Profile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, patch timebank.ProfileUpdate) (*domain.User, error)
}

type Authed func(token string) API
