package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// IsTerminal reports whether no further transition is possible.
// The transition rules themselves live in the backend; the gateway only
// requests transitions and reflects whatever status comes back.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCancelled || s == BookingCompleted
}

// Booking is a request by one member to consume a session of another
// member's service. Rating and review are set only at completion.
type Booking struct {
	ID                int64         `json:"id"`
	ServiceID         int64         `json:"service"`
	ServiceName       string        `json:"service_name"`
	Status            BookingStatus `json:"status"`
	BookedAt          time.Time     `json:"booked_at"`
	CompletedAt       *time.Time    `json:"completed_at,omitempty"`
	CustomerRating    *int          `json:"customer_rating,omitempty"`
	CustomerReview    *string       `json:"customer_review,omitempty"`
	OwnerEmail        string        `json:"owner_email"`
	OwnerFirstName    string        `json:"owner_first_name"`
	CustomerEmail     string        `json:"customer_email"`
	CustomerFirstName string        `json:"customer_first_name"`
}
