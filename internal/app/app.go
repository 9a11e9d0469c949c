// Package app implements the client's flow handlers: authentication, the
// machine catalog, the booking workflow and the admin console. Every user
// action in the terminal UI maps to one method here with typed input, so the
// flows stay decoupled from presentation.
package app

import (
	"context"
	"errors"

	"github.com/patrickmn/go-cache"

	"laundry-booking-client/config"
	"laundry-booking-client/internal/api"
	"laundry-booking-client/internal/model"
	"laundry-booking-client/internal/session"
)

// Cache keys for the last server responses.
const (
	cacheKeyMachines      = "machines"
	cacheKeyAdminMachines = "admin_machines"
	cacheKeyUserBookings  = "user_bookings"
	cacheKeyAllBookings   = "all_bookings"
)

// App wires the API client, session manager and response caches together.
// It runs on the UI's single logical thread; overlapping fetches are not
// deduplicated and the last response to land wins the cache slot.
type App struct {
	cfg     *config.Config
	api     *api.Client
	session *session.Manager
	cache   *cache.Cache
}

// New creates the application over an API client and session manager.
func New(cfg *config.Config, client *api.Client, sess *session.Manager) *App {
	return &App{
		cfg:     cfg,
		api:     client,
		session: sess,
		cache:   cache.New(cache.NoExpiration, 0),
	}
}

// Session exposes the session manager to the UI layer.
func (a *App) Session() *session.Manager {
	return a.session
}

// Logout clears the session and the stored bearer credential.
func (a *App) Logout() error {
	a.api.ClearBearer()
	a.cache.Flush()
	return a.session.Clear()
}

// RestoreOutcome describes the result of a session restore attempt.
type RestoreOutcome int

const (
	// RestoreNone means no persisted session was found.
	RestoreNone RestoreOutcome = iota
	// RestoreUser means a user session was restored.
	RestoreUser
	// RestoreAdmin means an administrator session was restored.
	RestoreAdmin
	// RestoreRejected means the server refused the stored credential and
	// the session was discarded.
	RestoreRejected
)

// RestoreSession loads a persisted session and re-validates it against the
// server before granting dashboard access. A definitive server rejection
// discards the session; a transport failure keeps it, so the degraded
// offline demo mode still works.
func (a *App) RestoreSession(ctx context.Context) (RestoreOutcome, error) {
	found, err := a.session.Restore()
	if err != nil || !found {
		return RestoreNone, err
	}

	a.api.SetBearer(a.session.Bearer())

	identity, _ := a.session.Identity()
	var probeErr error
	if a.session.IsAdmin() {
		_, probeErr = a.api.AllBookings(ctx)
	} else {
		_, probeErr = a.api.UserBookings(ctx, identity.ID)
	}

	var apiErr *api.Error
	if errors.As(probeErr, &apiErr) {
		// The server saw the credential and rejected it.
		a.api.ClearBearer()
		if err := a.session.Clear(); err != nil {
			return RestoreRejected, err
		}
		return RestoreRejected, nil
	}

	if a.session.IsAdmin() {
		return RestoreAdmin, nil
	}
	return RestoreUser, nil
}

// establish records a successful authentication and arms the API client
// with the session's bearer credential.
func (a *App) establish(result api.AuthResult, isAdmin bool) (model.Identity, error) {
	if err := a.session.Establish(result.Identity, isAdmin, result.Token); err != nil {
		return model.Identity{}, err
	}
	a.api.SetBearer(a.session.Bearer())
	return result.Identity, nil
}
