package dashboard

import "timebank/internal/domain"

type Tab string

const (
	TabOverview Tab = "overview"
	TabServices Tab = "services"
	TabBookings Tab = "bookings"
	TabHistory  Tab = "history"
)

// ParseTab falls back to the overview for anything unknown.
func ParseTab(s string) Tab {
	switch Tab(s) {
	case TabServices, TabBookings, TabHistory:
		return Tab(s)
	default:
		return TabOverview
	}
}

// View is the per-tab dashboard payload; only the active tab's collection is
// populated.
type View struct {
	Tab      Tab              `json:"tab"`
	Greeting string           `json:"greeting"`
	User     domain.User      `json:"user"`
	Stats    *Stats           `json:"stats,omitempty"`
	Services []domain.Service `json:"services,omitempty"`
	Bookings []domain.Booking `json:"bookings,omitempty"`
}

type Stats struct {
	TimeCredits     float64 `json:"time_credits"`
	ActiveServices  int     `json:"active_services"`
	PendingBookings int     `json:"pending_bookings"`
}
