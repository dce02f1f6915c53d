package services

import (
	"context"

	"timebank/internal/domain"
	"timebank/internal/timebank"
)

type API interface {
	ListServices(ctx context.Context, q timebank.ServiceQuery) ([]domain.Service, error)
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	CreateService(ctx context.Context, in timebank.ServiceInput) (*domain.Service, error)
	UpdateService(ctx context.Context, id int64, patch timebank.ServicePatch) (*domain.Service, error)
	DeleteService(ctx context.Context, id int64) error
}

// Authed derives an authenticated API from the session's backend token.
type Authed func(token string) API
