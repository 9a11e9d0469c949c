package app

import (
	"context"
	"strings"

	"laundry-booking-client/internal/auth"
	"laundry-booking-client/internal/model"
)

// Login exchanges a student id and password for a user session.
func (a *App) Login(ctx context.Context, studentID, password string) (model.Identity, error) {
	if studentID == "" || password == "" {
		return model.Identity{}, ErrMissingFields
	}
	result, err := a.api.Login(ctx, studentID, password)
	if err != nil {
		return model.Identity{}, err
	}
	return a.establish(result, false)
}

// RegisterInput is the typed form input for registration.
type RegisterInput struct {
	StudentID       string
	Username        string
	Password        string
	ConfirmPassword string
}

// Register creates an account. The password-confirmation check runs before
// any network call; on mismatch no request is issued. Success does not
// authenticate; the caller routes back to login.
func (a *App) Register(ctx context.Context, in RegisterInput) error {
	if in.StudentID == "" || in.Username == "" || in.Password == "" {
		return ErrMissingFields
	}
	if in.Password != in.ConfirmPassword {
		return ErrPasswordMismatch
	}
	_, err := a.api.Register(ctx, in.StudentID, in.Username, in.Password)
	return err
}

// AdminLogin exchanges an admin id and password for an administrator session.
func (a *App) AdminLogin(ctx context.Context, adminID, password string) (model.Identity, error) {
	if adminID == "" || password == "" {
		return model.Identity{}, ErrMissingFields
	}
	result, err := a.api.AdminLogin(ctx, adminID, password)
	if err != nil {
		return model.Identity{}, err
	}
	return a.establish(result, true)
}

// GoogleSignIn handles the federated flow end to end: decode the assertion,
// enforce the institutional domain, derive the local id, then try login and
// fall back to registration for first-time users. Assertion problems fail
// closed before any network call.
func (a *App) GoogleSignIn(ctx context.Context, credential string) (model.Identity, error) {
	gid, err := auth.DecodeAssertion(credential)
	if err != nil {
		return model.Identity{}, err
	}
	if err := auth.CheckDomain(gid.Email, a.cfg.Google.AllowedDomain); err != nil {
		return model.Identity{}, err
	}

	studentID := auth.DeriveStudentID(gid.Email)
	name := gid.Name
	if strings.TrimSpace(name) == "" {
		name = studentID
	}

	result, err := a.api.GoogleLogin(ctx, studentID, name, gid.Email)
	if err != nil {
		// No existing account (or any other rejection): try to register
		// the derived identity instead.
		result, err = a.api.GoogleRegister(ctx, studentID, name, gid.Email)
		if err != nil {
			return model.Identity{}, err
		}
	}
	return a.establish(result, false)
}
