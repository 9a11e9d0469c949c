package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ServerErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Login(context.Background(), "21BCS001", "wrong")
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid credentials", apiErr.Error())
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Machines(context.Background())
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "server returned status 502", apiErr.Error())
}

func TestClient_TransportFailureIsNotAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	c := New(server.URL)
	_, err := c.Machines(context.Background())
	require.Error(t, err)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
}

func TestClient_BearerHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"bookings": []any{}})
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetBearer("42")
	_, err := c.UserBookings(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Bearer 42", gotAuth)

	c.ClearBearer()
	_, err = c.UserBookings(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_BearerNotSentOnPublicRoutes(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"machines": []any{}})
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetBearer("token")
	_, err := c.Machines(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_CreateBookingPayload(t *testing.T) {
	var got createBookingRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"message": "Booking created successfully", "booking_id": 7})
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetBearer("1")

	loc := time.FixedZone("IST", 5*3600+30*60)
	start := time.Date(2026, 9, 1, 15, 30, 0, 0, loc)

	id, err := c.CreateBooking(context.Background(), 3, start, start.Add(90*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, int64(3), got.MachineID)
	assert.Equal(t, "2026-09-01T10:00:00.000Z", got.StartTime)
	assert.Equal(t, "2026-09-01T11:30:00.000Z", got.EndTime)
}

func TestClient_LoginParsesIdentityAndToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Login successful",
			"token":   "signed.jwt.token",
			"user": map[string]any{
				"id":         5,
				"student_id": "21BCS001",
				"username":   "Asha",
				"email":      "21bcs001@lnmiit.ac.in",
				"role":       "user",
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	result, err := c.Login(context.Background(), "21BCS001", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.Identity.ID)
	assert.Equal(t, "Asha", result.Identity.Username)
	assert.Equal(t, "signed.jwt.token", result.Token)
}

func TestClient_ConcurrentBearerSwapAndRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"bookings": []any{}})
	}))
	defer server.Close()

	c := New(server.URL)

	// Requests read the bearer while an auth flow swaps it; run under -race.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			c.SetBearer("token")
			c.ClearBearer()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_, _ = c.UserBookings(context.Background(), 1)
		}
	}()
	wg.Wait()
}

func TestClient_CancelBookingUsesDelete(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]string{"message": "Booking cancelled successfully"})
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetBearer("1")
	require.NoError(t, c.CancelBooking(context.Background(), 12))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/bookings/12", gotPath)
}
