package dashboard

import (
	"context"

	"timebank/internal/domain"
	"timebank/internal/pkg/session"
)

type Service struct {
	profiles ProfileReader
	services ServiceLister
	bookings BookingLister
}

func NewService(profiles ProfileReader, services ServiceLister, bookings BookingLister) *Service {
	return &Service{profiles: profiles, services: services, bookings: bookings}
}

// Load refetches the profile on every mount and fills in the active tab.
// Each call owns its own snapshot; nothing is reconciled between loads.
func (s *Service) Load(ctx context.Context, sess *session.Session, tab Tab) (*View, error) {
	user, err := s.profiles.Get(ctx, sess)
	if err != nil {
		return nil, err
	}

	view := &View{Tab: tab, Greeting: user.DisplayName(), User: *user}

	switch tab {
	case TabServices:
		view.Services, err = s.services.Mine(ctx, sess)
	case TabBookings:
		view.Bookings, err = s.bookings.ListMine(ctx, sess)
	case TabHistory:
		view.Bookings, err = s.bookings.History(ctx, sess)
	default:
		view.Stats, err = s.stats(ctx, sess, user)
	}
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *Service) stats(ctx context.Context, sess *session.Session, user *domain.User) (*Stats, error) {
	mine, err := s.services.Mine(ctx, sess)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListMine(ctx, sess)
	if err != nil {
		return nil, err
	}

	stats := &Stats{TimeCredits: user.TimeCredits}
	for _, svc := range mine {
		if svc.IsAvailable {
			stats.ActiveServices++
		}
	}
	for _, b := range bookings {
		if b.Status == domain.BookingPending {
			stats.PendingBookings++
		}
	}
	return stats, nil
}
