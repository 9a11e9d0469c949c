package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundry-booking-client/internal/api"
	"laundry-booking-client/internal/app"
	"laundry-booking-client/internal/auth"
)

func TestFlash_NewerMessageSupersedesOldTimer(t *testing.T) {
	m := &Model{}

	cmd := m.showMessage("first", msgInfo)
	require.NotNil(t, cmd)
	firstGen := m.flash.gen

	cmd = m.showMessage("second", msgSuccess)
	require.NotNil(t, cmd)

	// The first message's timer fires after the second message replaced
	// it; the second message must survive.
	m.handleFlashExpired(flashExpiredMsg{gen: firstGen})
	assert.Equal(t, "second", m.flash.text)

	m.handleFlashExpired(flashExpiredMsg{gen: m.flash.gen})
	assert.Empty(t, m.flash.text)
}

func TestFlash_RenderEmptyWhenNoMessage(t *testing.T) {
	assert.Empty(t, flash{}.render())
	assert.NotEmpty(t, flash{text: "hi", kind: msgError}.render())
}

func TestErrorMessage(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		generic string
		want    string
	}{
		{
			name: "password mismatch",
			err:  app.ErrPasswordMismatch,
			want: "Passwords do not match!",
		},
		{
			name: "missing fields",
			err:  app.ErrMissingFields,
			want: "All fields are required",
		},
		{
			name: "malformed assertion",
			err:  fmt.Errorf("%w: bad segment", auth.ErrMalformedAssertion),
			want: "Google Sign-In configuration error. Please contact administrator.",
		},
		{
			name: "domain not allowed",
			err:  auth.ErrDomainNotAllowed,
			want: "Please use your institutional email address",
		},
		{
			name: "server message surfaced verbatim",
			err:  &api.Error{StatusCode: 400, Message: "Time slot conflicts with existing booking"},
			want: "Time slot conflicts with existing booking",
		},
		{
			name:    "server error without message",
			err:     &api.Error{StatusCode: 500},
			generic: "Booking failed",
			want:    "Booking failed",
		},
		{
			name: "transport failure",
			err:  errors.New("dial tcp: connection refused"),
			want: "Network error. Please try again.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errorMessage(tc.err, tc.generic))
		})
	}
}
