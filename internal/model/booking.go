package model

// BookingStatus defines the lifecycle states of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking represents one reservation of a machine for a time interval.
// User fields are only populated on the admin and per-machine listings.
type Booking struct {
	ID          int64         `json:"id"`
	MachineID   int64         `json:"machine_id,omitempty"`
	MachineName string        `json:"machine_name,omitempty"`
	Username    string        `json:"username,omitempty"`
	StudentID   string        `json:"student_id,omitempty"`
	StartTime   string        `json:"start_time"`
	EndTime     string        `json:"end_time"`
	Status      BookingStatus `json:"status"`
	CreatedAt   string        `json:"created_at,omitempty"`
}

// Cancellable reports whether the client may offer cancellation for this
// booking. Only pending bookings are cancellable from the UI.
func (b Booking) Cancellable() bool {
	return b.Status == BookingPending
}
