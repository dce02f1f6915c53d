package bookings

import (
	"context"

	"timebank/internal/domain"
	"timebank/internal/timebank"
)

type API interface {
	ListBookings(ctx context.Context, q timebank.BookingQuery) ([]domain.Booking, error)
	CreateBooking(ctx context.Context, serviceID int64) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context, id int64) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id int64) (*domain.Booking, error)
	CompleteBooking(ctx context.Context, id int64, review *timebank.ReviewInput) (*domain.Booking, error)
	ReviewBooking(ctx context.Context, id int64, review timebank.ReviewInput) (*domain.Booking, error)
}

type Authed func(token string) API
