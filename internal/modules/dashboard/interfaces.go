package dashboard

import (
	"context"

	"timebank/internal/domain"
	"timebank/internal/pkg/session"
)

// The dashboard composes views owned by the other modules.

type ProfileReader interface {
	Get(ctx context.Context, sess *session.Session) (*domain.User, error)
}

type ServiceLister interface {
	Mine(ctx context.Context, sess *session.Session) ([]domain.Service, error)
}

type BookingLister interface {
	ListMine(ctx context.Context, sess *session.Session) ([]domain.Booking, error)
	History(ctx context.Context, sess *session.Session) ([]domain.Booking, error)
}
