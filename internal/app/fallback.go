package app

import "laundry-booking-client/internal/model"

// Illustrative datasets substituted on transport failure so the interface
// never goes blank while the backend is unreachable. Deliberately static;
// this is demo resilience, not a retry mechanism.

func fallbackMachines() []model.Machine {
	return []model.Machine{
		{ID: 1, Name: "Machine 1", Status: model.StatusAvailable},
		{ID: 2, Name: "Machine 2", Status: model.StatusInUse},
		{ID: 3, Name: "Machine 3", Status: model.StatusAvailable},
		{ID: 4, Name: "Machine 4", Status: model.StatusBroken},
	}
}

func fallbackUserBookings() []model.Booking {
	return []model.Booking{
		{
			ID:          1,
			MachineName: "Machine 1",
			StartTime:   "2025-06-25T10:00:00",
			EndTime:     "2025-06-25T12:00:00",
			Status:      model.BookingConfirmed,
		},
	}
}

func fallbackAllBookings() []model.Booking {
	return []model.Booking{
		{
			ID:          1,
			Username:    "John Doe",
			StudentID:   "20BCS001",
			MachineName: "Machine 1",
			StartTime:   "2025-06-25T10:00:00",
			EndTime:     "2025-06-25T12:00:00",
			Status:      model.BookingConfirmed,
		},
	}
}
