package bookings

type CreateBookingRequest struct {
	ServiceID int64 `json:"service_id"`
}

// ReviewRequest accompanies completion or a later review patch. Rating is
// required there; Review text is optional.
type ReviewRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review,omitempty"`
}

// CompleteBookingRequest optionally carries a review; a bare completion is
// allowed and the customer may rate later.
type CompleteBookingRequest struct {
	Rating *int   `json:"rating,omitempty"`
	Review string `json:"review,omitempty"`
}
