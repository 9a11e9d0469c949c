package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"laundry-booking-client/internal/model"
)

// isoLayout matches the millisecond-precision UTC timestamps the original
// client submitted; the backend stores them verbatim.
const isoLayout = "2006-01-02T15:04:05.000Z"

type createBookingRequest struct {
	MachineID int64  `json:"machine_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type createBookingResponse struct {
	Message   string `json:"message"`
	BookingID int64  `json:"booking_id"`
}

type bookingsResponse struct {
	Bookings []model.Booking `json:"bookings"`
}

// CreateBooking reserves a machine for the interval [start, end). Both
// timestamps are submitted in UTC.
func (c *Client) CreateBooking(ctx context.Context, machineID int64, start, end time.Time) (int64, error) {
	req := createBookingRequest{
		MachineID: machineID,
		StartTime: start.UTC().Format(isoLayout),
		EndTime:   end.UTC().Format(isoLayout),
	}
	var resp createBookingResponse
	if err := c.do(ctx, http.MethodPost, "/bookings", true, req, &resp); err != nil {
		return 0, err
	}
	return resp.BookingID, nil
}

// UserBookings fetches the bookings belonging to one user.
func (c *Client) UserBookings(ctx context.Context, userID int64) ([]model.Booking, error) {
	var resp bookingsResponse
	path := fmt.Sprintf("/bookings/user/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Bookings, nil
}

// CancelBooking cancels one booking. The server enforces ownership and
// rejects cancellation of completed bookings.
func (c *Client) CancelBooking(ctx context.Context, bookingID int64) error {
	path := fmt.Sprintf("/bookings/%d", bookingID)
	return c.do(ctx, http.MethodDelete, path, true, nil, nil)
}
