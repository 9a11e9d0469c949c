// Package stub implements an in-process development stand-in for the
// booking backend. It serves the same HTTP JSON API the client consumes,
// backed by a local database, so the client can be demoed without the real
// deployment. It is a dev aid, not the production server.
package stub

import "time"

// User is an account row. Administrators are users with the admin role,
// authenticated through the admin login endpoint.
type User struct {
	ID        int64  `gorm:"primaryKey"`
	StudentID string `gorm:"uniqueIndex;size:64;not null"`
	Username  string `gorm:"size:128;not null"`
	Password  string `gorm:"size:128;not null"` // hex sha256
	Email     string `gorm:"size:128"`
	Role      string `gorm:"size:16;not null;default:user"`
	CreatedAt time.Time
}

// WashingMachine is a machine row.
type WashingMachine struct {
	ID           int64  `gorm:"primaryKey"`
	MachineName  string `gorm:"size:128;not null"`
	Status       string `gorm:"size:16;not null;default:available"`
	LastUsedBy   *int64
	LastUsedTime *time.Time
	CreatedAt    time.Time
}

// Booking is a reservation row. Times are stored as the ISO strings the
// client submits; being fixed-format UTC they compare correctly as strings,
// which keeps the overlap check portable across drivers.
type Booking struct {
	ID        int64  `gorm:"primaryKey"`
	UserID    int64  `gorm:"index;not null"`
	MachineID int64  `gorm:"index;not null"`
	StartTime string `gorm:"size:32;not null"`
	EndTime   string `gorm:"size:32;not null"`
	Status    string `gorm:"size:16;not null;default:pending"`
	CreatedAt time.Time
}
