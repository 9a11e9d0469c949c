package api

import (
	"context"
	"fmt"
	"net/http"

	"laundry-booking-client/internal/model"
)

type machinesResponse struct {
	Machines []model.Machine `json:"machines"`
}

type machineBookingsResponse struct {
	MachineName string          `json:"machine_name"`
	Bookings    []model.Booking `json:"bookings"`
}

// Machines fetches the public machine list.
func (c *Client) Machines(ctx context.Context) ([]model.Machine, error) {
	var resp machinesResponse
	if err := c.do(ctx, http.MethodGet, "/machines", false, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Machines, nil
}

// MachineBookings fetches the current bookings for one machine along with
// its display name.
func (c *Client) MachineBookings(ctx context.Context, machineID int64) (string, []model.Booking, error) {
	var resp machineBookingsResponse
	path := fmt.Sprintf("/machines/%d/bookings", machineID)
	if err := c.do(ctx, http.MethodGet, path, false, nil, &resp); err != nil {
		return "", nil, err
	}
	return resp.MachineName, resp.Bookings, nil
}
