package model

// MachineStatus defines the recognized states of a washing machine.
type MachineStatus string

const (
	StatusAvailable MachineStatus = "available"
	StatusInUse     MachineStatus = "in_use"
	StatusBroken    MachineStatus = "broken"
)

// ValidMachineStatus reports whether s is one of the recognized states.
func ValidMachineStatus(s MachineStatus) bool {
	switch s {
	case StatusAvailable, StatusInUse, StatusBroken:
		return true
	}
	return false
}

// Machine represents a single bookable washing machine as returned by the
// API. Timestamps travel as strings; the server's format is not guaranteed
// beyond being parseable, so formatting is left to the view layer.
type Machine struct {
	ID             int64         `json:"id"`
	Name           string        `json:"machine_name"`
	Status         MachineStatus `json:"status"`
	LastUsedBy     *int64        `json:"last_used_by,omitempty"`
	LastUsedByName string        `json:"last_used_by_name,omitempty"`
	LastUsedTime   string        `json:"last_used_time,omitempty"`
}
