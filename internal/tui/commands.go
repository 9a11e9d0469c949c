package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"laundry-booking-client/internal/app"
	"laundry-booking-client/internal/model"
)

// Async results delivered back into the update loop. Fetches are not
// deduplicated: overlapping commands run independently and the last result
// to arrive wins.

type restoredMsg struct {
	outcome app.RestoreOutcome
	err     error
}

type machinesLoadedMsg struct {
	list app.MachineList
	err  error
}

type adminMachinesLoadedMsg struct {
	list app.MachineList
	err  error
}

type userBookingsLoadedMsg struct {
	list app.BookingList
	err  error
}

type allBookingsLoadedMsg struct {
	list app.BookingList
	err  error
}

type machineBookingsLoadedMsg struct {
	machineName string
	bookings    []model.Booking
	err         error
}

type authDoneMsg struct {
	identity model.Identity
	admin    bool
	google   bool
	err      error
}

type registerDoneMsg struct{ err error }

type bookingDoneMsg struct{ err error }

type cancelDoneMsg struct{ err error }

type statusUpdatedMsg struct{ err error }

type machineAddedMsg struct{ err error }

type refreshTickMsg time.Time

func (m *Model) restoreSessionCmd() tea.Cmd {
	return func() tea.Msg {
		outcome, err := m.app.RestoreSession(context.Background())
		return restoredMsg{outcome: outcome, err: err}
	}
}

func (m *Model) loadMachinesCmd() tea.Cmd {
	return func() tea.Msg {
		list, err := m.app.LoadMachines(context.Background())
		return machinesLoadedMsg{list: list, err: err}
	}
}

func (m *Model) loadAdminMachinesCmd() tea.Cmd {
	return func() tea.Msg {
		list, err := m.app.LoadAdminMachines(context.Background())
		return adminMachinesLoadedMsg{list: list, err: err}
	}
}

func (m *Model) loadUserBookingsCmd() tea.Cmd {
	return func() tea.Msg {
		list, err := m.app.LoadUserBookings(context.Background())
		return userBookingsLoadedMsg{list: list, err: err}
	}
}

func (m *Model) loadAllBookingsCmd() tea.Cmd {
	return func() tea.Msg {
		list, err := m.app.LoadAllBookings(context.Background())
		return allBookingsLoadedMsg{list: list, err: err}
	}
}

func (m *Model) loadMachineBookingsCmd(machineID int64) tea.Cmd {
	return func() tea.Msg {
		name, bookings, err := m.app.MachineBookings(context.Background(), machineID)
		return machineBookingsLoadedMsg{machineName: name, bookings: bookings, err: err}
	}
}

func (m *Model) loginCmd(studentID, password string) tea.Cmd {
	return func() tea.Msg {
		identity, err := m.app.Login(context.Background(), studentID, password)
		return authDoneMsg{identity: identity, err: err}
	}
}

func (m *Model) registerCmd(in app.RegisterInput) tea.Cmd {
	return func() tea.Msg {
		return registerDoneMsg{err: m.app.Register(context.Background(), in)}
	}
}

func (m *Model) adminLoginCmd(adminID, password string) tea.Cmd {
	return func() tea.Msg {
		identity, err := m.app.AdminLogin(context.Background(), adminID, password)
		return authDoneMsg{identity: identity, admin: true, err: err}
	}
}

func (m *Model) googleSignInCmd(credential string) tea.Cmd {
	return func() tea.Msg {
		identity, err := m.app.GoogleSignIn(context.Background(), credential)
		return authDoneMsg{identity: identity, google: true, err: err}
	}
}

func (m *Model) createBookingCmd(in app.BookingInput) tea.Cmd {
	return func() tea.Msg {
		return bookingDoneMsg{err: m.app.CreateBooking(context.Background(), in)}
	}
}

func (m *Model) cancelBookingCmd(bookingID int64) tea.Cmd {
	return func() tea.Msg {
		return cancelDoneMsg{err: m.app.CancelBooking(context.Background(), bookingID)}
	}
}

func (m *Model) updateStatusCmd(machineID int64, status model.MachineStatus) tea.Cmd {
	return func() tea.Msg {
		return statusUpdatedMsg{err: m.app.UpdateMachineStatus(context.Background(), machineID, status)}
	}
}

func (m *Model) addMachineCmd(name string) tea.Cmd {
	return func() tea.Msg {
		return machineAddedMsg{err: m.app.AddMachine(context.Background(), name)}
	}
}

// refreshTickCmd arms the periodic refresh timer. The tick fires regardless
// of session state; the handler decides whether any fetches run.
func (m *Model) refreshTickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}
