package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"laundry-booking-client/internal/model"
)

func machineList(n int, status model.MachineStatus) []model.Machine {
	machines := make([]model.Machine, n)
	for i := range machines {
		machines[i] = model.Machine{
			ID:     int64(i + 1),
			Name:   fmt.Sprintf("Machine %d", i+1),
			Status: status,
		}
	}
	return machines
}

func TestLimitMachines(t *testing.T) {
	assert.Len(t, LimitMachines(machineList(12, model.StatusAvailable)), MaxMachines)
	assert.Len(t, LimitMachines(machineList(3, model.StatusAvailable)), 3)
	assert.Empty(t, LimitMachines(nil))
}

func TestSelectableMachines(t *testing.T) {
	machines := machineList(10, model.StatusAvailable)
	machines[1].Status = model.StatusInUse
	machines[4].Status = model.StatusBroken

	selectable := SelectableMachines(machines)

	// The cap applies before filtering, so machines 9 and 10 never appear
	// even though they are available.
	assert.Len(t, selectable, 6)
	for _, m := range selectable {
		assert.Equal(t, model.StatusAvailable, m.Status)
		assert.LessOrEqual(t, m.ID, int64(MaxMachines))
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "AVAILABLE", StatusLabel(model.StatusAvailable))
	assert.Equal(t, "IN USE", StatusLabel(model.StatusInUse))
	assert.Equal(t, "BROKEN", StatusLabel(model.StatusBroken))
}

func TestBookingStatusLabel(t *testing.T) {
	assert.Equal(t, "PENDING", BookingStatusLabel(model.BookingPending))
	assert.Equal(t, "CANCELLED", BookingStatusLabel(model.BookingCancelled))
}

func TestLastUsed(t *testing.T) {
	assert.Equal(t, "Never used", LastUsed(model.Machine{}))

	owner := int64(3)
	m := model.Machine{LastUsedBy: &owner, LastUsedTime: "not-a-timestamp"}
	assert.Equal(t, "Last used: not-a-timestamp", LastUsed(m))

	// Timestamp present but no recorded user still reads as never used.
	assert.Equal(t, "Never used", LastUsed(model.Machine{LastUsedTime: "2026-06-25T10:00:00.000Z"}))
}

func TestFormatTimestamp(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: "N/A"},
		{name: "unparseable shown verbatim", in: "yesterday", want: "yesterday"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatTimestamp(tc.in))
		})
	}

	// Parseable inputs come out in the display layout; the exact value
	// depends on the local zone, so only the shape is checked here.
	for _, in := range []string{
		"2026-06-25T10:00:00.000Z",
		"2026-06-25T10:00:00Z",
		"2026-06-25T10:00:00",
		"2026-06-25 10:00:00",
	} {
		got := FormatTimestamp(in)
		assert.NotEqual(t, in, got, "input %q should be reformatted", in)
		assert.Contains(t, got, "2026")
	}
}

func TestTimeRange(t *testing.T) {
	assert.Equal(t, "N/A - N/A", TimeRange("", ""))
}
