package bookings

import (
	"context"
	"sort"

	"timebank/internal/domain"
	"timebank/internal/pkg/session"
	"timebank/internal/timebank"
)

type Service struct {
	authed Authed
}

func NewService(authed Authed) *Service {
	return &Service{authed: authed}
}

// ListMine merges the two role-filtered backend queries (bookings where the
// member is the service owner, and where they are the customer), dropping
// duplicate ids, newest first. A booking of one's own service would
// otherwise appear twice.
func (s *Service) ListMine(ctx context.Context, sess *session.Session) ([]domain.Booking, error) {
	api := s.authed(sess.APIToken)

	asOwner, err := api.ListBookings(ctx, timebank.BookingQuery{OwnerID: sess.UserID})
	if err != nil {
		return nil, err
	}
	asCustomer, err := api.ListBookings(ctx, timebank.BookingQuery{CustomerID: sess.UserID})
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]bool, len(asOwner)+len(asCustomer))
	merged := make([]domain.Booking, 0, len(asOwner)+len(asCustomer))
	for _, b := range append(asOwner, asCustomer...) {
		if seen[b.ID] {
			continue
		}
		seen[b.ID] = true
		merged = append(merged, b)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].BookedAt.After(merged[j].BookedAt)
	})
	return merged, nil
}

// History is the terminal subset of the member's bookings.
func (s *Service) History(ctx context.Context, sess *session.Session) ([]domain.Booking, error) {
	all, err := s.ListMine(ctx, sess)
	if err != nil {
		return nil, err
	}

	history := make([]domain.Booking, 0, len(all))
	for _, b := range all {
		if b.Status.IsTerminal() {
			history = append(history, b)
		}
	}
	return history, nil
}

func (s *Service) Create(ctx context.Context, sess *session.Session, serviceID int64) (*domain.Booking, error) {
	return s.authed(sess.APIToken).CreateBooking(ctx, serviceID)
}

// The backend owns every transition rule (credit sufficiency, session
// availability, participant checks); these calls just request the labeled
// transition and return whatever status comes back.

func (s *Service) Confirm(ctx context.Context, sess *session.Session, id int64) (*domain.Booking, error) {
	return s.authed(sess.APIToken).ConfirmBooking(ctx, id)
}

func (s *Service) Cancel(ctx context.Context, sess *session.Session, id int64) (*domain.Booking, error) {
	return s.authed(sess.APIToken).CancelBooking(ctx, id)
}

func (s *Service) Complete(ctx context.Context, sess *session.Session, id int64, req CompleteBookingRequest) (*domain.Booking, error) {
	var review *timebank.ReviewInput
	if req.Rating != nil {
		review = &timebank.ReviewInput{Rating: *req.Rating, Review: req.Review}
	}
	return s.authed(sess.APIToken).CompleteBooking(ctx, id, review)
}

func (s *Service) Review(ctx context.Context, sess *session.Session, id int64, req ReviewRequest) (*domain.Booking, error) {
	return s.authed(sess.APIToken).ReviewBooking(ctx, id, timebank.ReviewInput{
		Rating: req.Rating,
		Review: req.Review,
	})
}
