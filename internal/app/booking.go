package app

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/patrickmn/go-cache"

	"laundry-booking-client/internal/api"
	"laundry-booking-client/internal/model"
)

// BookingInput is the typed form input for creating a booking. Duration is
// in hours and may be fractional down to half-hour granularity.
type BookingInput struct {
	MachineID     int64
	Start         time.Time
	DurationHours float64
}

// End computes the booking end time from start and duration.
func (in BookingInput) End() time.Time {
	return in.Start.Add(time.Duration(in.DurationHours * float64(time.Hour)))
}

// BookingList is the outcome of a bookings fetch.
type BookingList struct {
	Bookings []model.Booking
	Fallback bool
}

// CreateBooking reserves a machine for the given interval. On success both
// the user's booking list and the machine catalog are re-fetched, since a
// new booking may have flipped the machine to in_use.
func (a *App) CreateBooking(ctx context.Context, in BookingInput) error {
	if in.MachineID == 0 || in.Start.IsZero() || in.DurationHours <= 0 {
		return ErrMissingFields
	}
	if _, err := a.api.CreateBooking(ctx, in.MachineID, in.Start, in.End()); err != nil {
		return err
	}

	a.refreshAfterBookingChange(ctx)
	return nil
}

// LoadUserBookings fetches the current user's bookings, substituting one
// illustrative booking when the backend is unreachable so the view is never
// blank.
func (a *App) LoadUserBookings(ctx context.Context) (BookingList, error) {
	identity, ok := a.session.Identity()
	if !ok {
		return BookingList{}, nil
	}

	bookings, err := a.api.UserBookings(ctx, identity.ID)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			log.Printf("failed to load bookings: %v", err)
			return BookingList{Bookings: a.CachedUserBookings()}, err
		}
		log.Printf("error loading bookings, using demo data: %v", err)
		fb := fallbackUserBookings()
		a.cache.Set(cacheKeyUserBookings, fb, cache.DefaultExpiration)
		return BookingList{Bookings: fb, Fallback: true}, nil
	}

	a.cache.Set(cacheKeyUserBookings, bookings, cache.DefaultExpiration)
	return BookingList{Bookings: bookings}, nil
}

// CachedUserBookings returns the bookings from the last successful load.
func (a *App) CachedUserBookings() []model.Booking {
	if v, found := a.cache.Get(cacheKeyUserBookings); found {
		return v.([]model.Booking)
	}
	return nil
}

// CancelBooking cancels one booking. Interactive confirmation happens in
// the UI before this is called. On success the booking list and catalog are
// re-fetched; on failure nothing is mutated.
func (a *App) CancelBooking(ctx context.Context, bookingID int64) error {
	if err := a.api.CancelBooking(ctx, bookingID); err != nil {
		return err
	}

	a.refreshAfterBookingChange(ctx)
	return nil
}

// refreshAfterBookingChange re-fetches the views a booking mutation can
// invalidate. Fetch errors here are already logged and reflected by the
// individual loaders; the mutation itself succeeded.
func (a *App) refreshAfterBookingChange(ctx context.Context) {
	if _, err := a.LoadUserBookings(ctx); err != nil {
		log.Printf("post-booking bookings refresh failed: %v", err)
	}
	if _, err := a.LoadMachines(ctx); err != nil {
		log.Printf("post-booking catalog refresh failed: %v", err)
	}
}
