// Package view holds presentation helpers shared by the terminal screens:
// list truncation, status labels and timestamp rendering.
package view

import (
	"strings"
	"time"

	"laundry-booking-client/internal/model"
)

// MaxMachines caps every rendered machine list and machine-selection
// control, regardless of how many machines the server returns.
const MaxMachines = 8

// timestampLayouts covers the formats the backend is known to emit: the
// client's own millisecond ISO timestamps, RFC3339, and sqlite's default
// datetime rendering.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.000Z07:00",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// LimitMachines truncates machines to the first MaxMachines entries.
func LimitMachines(machines []model.Machine) []model.Machine {
	if len(machines) > MaxMachines {
		return machines[:MaxMachines]
	}
	return machines
}

// SelectableMachines returns the machines offered in the booking selection
// control: available ones, drawn from the capped list.
func SelectableMachines(machines []model.Machine) []model.Machine {
	limited := LimitMachines(machines)
	selectable := make([]model.Machine, 0, len(limited))
	for _, m := range limited {
		if m.Status == model.StatusAvailable {
			selectable = append(selectable, m)
		}
	}
	return selectable
}

// StatusLabel renders a machine status for display: underscores become
// spaces and the result is upper-cased, so "in_use" renders as "IN USE".
func StatusLabel(s model.MachineStatus) string {
	return strings.ToUpper(strings.ReplaceAll(string(s), "_", " "))
}

// BookingStatusLabel renders a booking status for display.
func BookingStatusLabel(s model.BookingStatus) string {
	return strings.ToUpper(string(s))
}

// LastUsed describes a machine's last use, or "Never used" when no
// timestamp is recorded.
func LastUsed(m model.Machine) string {
	if m.LastUsedBy == nil || m.LastUsedTime == "" {
		return "Never used"
	}
	return "Last used: " + FormatTimestamp(m.LastUsedTime)
}

// FormatTimestamp renders a server timestamp for display. Unparseable
// values are shown verbatim rather than dropped.
func FormatTimestamp(ts string) string {
	if ts == "" {
		return "N/A"
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Local().Format("Jan 2, 2006 15:04")
		}
	}
	return ts
}

// TimeRange renders a booking interval.
func TimeRange(start, end string) string {
	return FormatTimestamp(start) + " - " + FormatTimestamp(end)
}
