package app

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/patrickmn/go-cache"

	"laundry-booking-client/internal/api"
	"laundry-booking-client/internal/model"
)

// LoadAdminMachines fetches the machine list with admin detail. When the
// backend is unreachable it falls back to the public catalog's cached data
// (or the illustrative set), matching the public view's degraded mode.
func (a *App) LoadAdminMachines(ctx context.Context) (MachineList, error) {
	machines, err := a.api.AdminMachines(ctx)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			log.Printf("failed to load admin machines: %v", err)
			return MachineList{Machines: a.CachedAdminMachines()}, err
		}
		log.Printf("error loading admin machines, using catalog data: %v", err)
		fb := a.CachedMachines()
		if len(fb) == 0 {
			fb = fallbackMachines()
		}
		a.cache.Set(cacheKeyAdminMachines, fb, cache.DefaultExpiration)
		return MachineList{Machines: fb, Fallback: true}, nil
	}

	a.cache.Set(cacheKeyAdminMachines, machines, cache.DefaultExpiration)
	return MachineList{Machines: machines}, nil
}

// CachedAdminMachines returns the admin machine list from the last
// successful load.
func (a *App) CachedAdminMachines() []model.Machine {
	if v, found := a.cache.Get(cacheKeyAdminMachines); found {
		return v.([]model.Machine)
	}
	return nil
}

// UpdateMachineStatus sets a machine's status. Any transition between valid
// states is allowed. On success both the admin and public machine views are
// re-fetched to keep them consistent.
func (a *App) UpdateMachineStatus(ctx context.Context, machineID int64, status model.MachineStatus) error {
	if !model.ValidMachineStatus(status) {
		return ErrMissingFields
	}
	if err := a.api.UpdateMachineStatus(ctx, machineID, status); err != nil {
		return err
	}

	a.refreshMachineViews(ctx)
	return nil
}

// AddMachine registers a new machine and re-fetches both machine views.
func (a *App) AddMachine(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrMissingFields
	}
	if _, err := a.api.AddMachine(ctx, name); err != nil {
		return err
	}

	a.refreshMachineViews(ctx)
	return nil
}

// LoadAllBookings fetches every booking across all users, with the same
// illustrative fallback pattern as the user view.
func (a *App) LoadAllBookings(ctx context.Context) (BookingList, error) {
	bookings, err := a.api.AllBookings(ctx)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			log.Printf("failed to load all bookings: %v", err)
			return BookingList{Bookings: a.CachedAllBookings()}, err
		}
		log.Printf("error loading all bookings, using demo data: %v", err)
		fb := fallbackAllBookings()
		a.cache.Set(cacheKeyAllBookings, fb, cache.DefaultExpiration)
		return BookingList{Bookings: fb, Fallback: true}, nil
	}

	a.cache.Set(cacheKeyAllBookings, bookings, cache.DefaultExpiration)
	return BookingList{Bookings: bookings}, nil
}

// CachedAllBookings returns the admin booking list from the last successful
// load.
func (a *App) CachedAllBookings() []model.Booking {
	if v, found := a.cache.Get(cacheKeyAllBookings); found {
		return v.([]model.Booking)
	}
	return nil
}

// refreshMachineViews re-fetches the admin and public machine lists after a
// successful machine mutation.
func (a *App) refreshMachineViews(ctx context.Context) {
	if _, err := a.LoadAdminMachines(ctx); err != nil {
		log.Printf("post-update admin machines refresh failed: %v", err)
	}
	if _, err := a.LoadMachines(ctx); err != nil {
		log.Printf("post-update catalog refresh failed: %v", err)
	}
}
