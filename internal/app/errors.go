package app

import "errors"

// Client-side validation failures. These are caught before any network call
// and mapped to specific user-facing messages by the UI.
var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrMissingFields    = errors.New("all fields are required")
)
