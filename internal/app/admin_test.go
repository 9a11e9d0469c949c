package app

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundry-booking-client/internal/model"
)

func TestUpdateMachineStatus_RejectsUnknownStatus(t *testing.T) {
	server, paths := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})
	a := newTestApp(t, server.URL)

	err := a.UpdateMachineStatus(context.Background(), 1, model.MachineStatus("exploded"))
	assert.ErrorIs(t, err, ErrMissingFields)
	assert.Empty(t, *paths)
}

func TestUpdateMachineStatus_RefreshesBothMachineViews(t *testing.T) {
	server, paths := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/machines/3/status":
			assert.Equal(t, http.MethodPut, r.Method)
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "broken", body["status"])
			json.NewEncoder(w).Encode(map[string]string{"message": "Machine status updated successfully"})
		case "/admin/machines":
			json.NewEncoder(w).Encode(map[string]any{"machines": []any{}})
		case "/machines":
			json.NewEncoder(w).Encode(map[string]any{"machines": []any{}})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})
	a := newTestApp(t, server.URL)

	require.NoError(t, a.UpdateMachineStatus(context.Background(), 3, model.StatusBroken))
	assert.Equal(t, []string{
		"PUT /admin/machines/3/status",
		"GET /admin/machines",
		"GET /machines",
	}, *paths)
}

func TestAddMachine_RejectsBlankName(t *testing.T) {
	server, paths := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})
	a := newTestApp(t, server.URL)

	err := a.AddMachine(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrMissingFields)
	assert.Empty(t, *paths)
}

func TestLoadAllBookings_FallbackDataset(t *testing.T) {
	server, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()
	a := newTestApp(t, server.URL)

	list, err := a.LoadAllBookings(context.Background())
	require.NoError(t, err)
	assert.True(t, list.Fallback)
	require.Len(t, list.Bookings, 1)
	assert.Equal(t, "John Doe", list.Bookings[0].Username)
	assert.Equal(t, "20BCS001", list.Bookings[0].StudentID)
}

func TestBookingInput_End(t *testing.T) {
	start := mustTime(t, "2026-09-01 10:00")
	in := BookingInput{MachineID: 1, Start: start, DurationHours: 1.5}
	assert.Equal(t, start.Add(90*time.Minute), in.End())
}
