package app

import (
	"context"
	"errors"
	"log"

	"github.com/patrickmn/go-cache"

	"laundry-booking-client/internal/api"
	"laundry-booking-client/internal/model"
)

// MachineList is the outcome of a catalog fetch. Fallback is set when the
// illustrative dataset was substituted for an unreachable backend.
type MachineList struct {
	Machines []model.Machine
	Fallback bool
}

// LoadMachines fetches the public machine list and caches the response.
// A transport failure substitutes the illustrative dataset so the catalog
// stays usable; a server-reported failure keeps the previous data and
// returns the error for the notification surface.
func (a *App) LoadMachines(ctx context.Context) (MachineList, error) {
	machines, err := a.api.Machines(ctx)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			log.Printf("failed to load machines: %v", err)
			return MachineList{Machines: a.CachedMachines()}, err
		}
		log.Printf("error loading machines, using demo data: %v", err)
		fb := fallbackMachines()
		a.cache.Set(cacheKeyMachines, fb, cache.DefaultExpiration)
		return MachineList{Machines: fb, Fallback: true}, nil
	}

	a.cache.Set(cacheKeyMachines, machines, cache.DefaultExpiration)
	return MachineList{Machines: machines}, nil
}

// CachedMachines returns the machine list from the last successful load.
func (a *App) CachedMachines() []model.Machine {
	if v, found := a.cache.Get(cacheKeyMachines); found {
		return v.([]model.Machine)
	}
	return nil
}

// MachineBookings fetches the current bookings for one machine's detail
// view. Failures surface as messages; there is no fallback here.
func (a *App) MachineBookings(ctx context.Context, machineID int64) (string, []model.Booking, error) {
	return a.api.MachineBookings(ctx, machineID)
}
