package timebank

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"timebank/internal/domain"
)

type BookingQuery struct {
	OwnerID    int64
	CustomerID int64
}

type ReviewInput struct {
	Rating int    `json:"customer_rating"`
	Review string `json:"customer_review,omitempty"`
}

func (c *Client) ListBookings(ctx context.Context, q BookingQuery) ([]domain.Booking, error) {
	params := url.Values{}
	if q.OwnerID != 0 {
		params.Set("owner_id", strconv.FormatInt(q.OwnerID, 10))
	}
	if q.CustomerID != 0 {
		params.Set("customer_id", strconv.FormatInt(q.CustomerID, 10))
	}
	path := "/bookings/"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var out []domain.Booking
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateBooking(ctx context.Context, serviceID int64) (*domain.Booking, error) {
	body := map[string]int64{"service": serviceID}
	var out domain.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Status transitions are sub-routes; the backend owns the state machine and
// rejects invalid transitions, the gateway just reflects the result.

func (c *Client) ConfirmBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return c.transition(ctx, id, "mark_confirmed", nil)
}

func (c *Client) CancelBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return c.transition(ctx, id, "mark_cancelled", nil)
}

// CompleteBooking marks the session done; review may be nil when the
// customer skips rating.
func (c *Client) CompleteBooking(ctx context.Context, id int64, review *ReviewInput) (*domain.Booking, error) {
	var body any
	if review != nil {
		body = review
	}
	return c.transition(ctx, id, "mark_completed", body)
}

// ReviewBooking adds a rating/review to an already-completed booking via the
// generic booking patch route.
func (c *Client) ReviewBooking(ctx context.Context, id int64, review ReviewInput) (*domain.Booking, error) {
	var out domain.Booking
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/bookings/%d/", id), review, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) transition(ctx context.Context, id int64, action string, body any) (*domain.Booking, error) {
	var out domain.Booking
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/bookings/%d/%s/", id, action), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
