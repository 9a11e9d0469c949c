package api

import (
	"context"
	"fmt"
	"net/http"

	"laundry-booking-client/internal/model"
)

type addMachineRequest struct {
	MachineName string `json:"machine_name"`
}

type addMachineResponse struct {
	Message   string `json:"message"`
	MachineID int64  `json:"machine_id"`
}

type updateStatusRequest struct {
	Status model.MachineStatus `json:"status"`
}

// AdminMachines fetches the machine list with the admin-only last-user join.
func (c *Client) AdminMachines(ctx context.Context) ([]model.Machine, error) {
	var resp machinesResponse
	if err := c.do(ctx, http.MethodGet, "/admin/machines", true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Machines, nil
}

// AddMachine registers a new machine. New machines start out available.
func (c *Client) AddMachine(ctx context.Context, name string) (int64, error) {
	var resp addMachineResponse
	if err := c.do(ctx, http.MethodPost, "/admin/machines", true, addMachineRequest{MachineName: name}, &resp); err != nil {
		return 0, err
	}
	return resp.MachineID, nil
}

// UpdateMachineStatus sets a machine to the given status. The API accepts
// any transition between valid states.
func (c *Client) UpdateMachineStatus(ctx context.Context, machineID int64, status model.MachineStatus) error {
	path := fmt.Sprintf("/admin/machines/%d/status", machineID)
	return c.do(ctx, http.MethodPut, path, true, updateStatusRequest{Status: status}, nil)
}

// AllBookings fetches every booking across all users.
func (c *Client) AllBookings(ctx context.Context) ([]model.Booking, error) {
	var resp bookingsResponse
	if err := c.do(ctx, http.MethodGet, "/admin/bookings", true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Bookings, nil
}
