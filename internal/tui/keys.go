package tui

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"laundry-booking-client/internal/app"
	"laundry-booking-client/internal/model"
	"laundry-booking-client/internal/view"
)

// startTimeLayout is the format users type booking start times in,
// interpreted in the local timezone.
const startTimeLayout = "2006-01-02 15:04"

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateAuthForm(msg, &m.loginForm, func() tea.Cmd {
			return m.loginCmd(m.loginForm.value(0), m.loginForm.value(1))
		})
	case screenRegister:
		return m.updateAuthForm(msg, &m.registerForm, func() tea.Cmd {
			return m.registerCmd(app.RegisterInput{
				StudentID:       m.registerForm.value(0),
				Username:        m.registerForm.value(1),
				Password:        m.registerForm.value(2),
				ConfirmPassword: m.registerForm.value(3),
			})
		})
	case screenAdminLogin:
		return m.updateAuthForm(msg, &m.adminForm, func() tea.Cmd {
			return m.adminLoginCmd(m.adminForm.value(0), m.adminForm.value(1))
		})
	case screenGoogle:
		return m.updateAuthForm(msg, &m.googleForm, func() tea.Cmd {
			return m.googleSignInCmd(m.googleForm.value(0))
		})
	case screenUser:
		return m.updateUser(msg)
	case screenBookingForm:
		return m.updateBookingForm(msg)
	case screenMachineDetail:
		if msg.String() == "esc" || msg.String() == "q" {
			m.screen = m.dashboardScreen()
		}
		return m, nil
	case screenConfirmCancel:
		return m.updateConfirmCancel(msg)
	case screenAdmin:
		return m.updateAdmin(msg)
	case screenAddMachine:
		return m.updateAuthForm(msg, &m.addMachineForm, func() tea.Cmd {
			return m.addMachineCmd(m.addMachineForm.value(0))
		})
	}
	return m, nil
}

func (m Model) dashboardScreen() screen {
	if m.app.Session().IsAdmin() {
		return screenAdmin
	}
	if m.app.Session().Active() {
		return screenUser
	}
	return screenWelcome
}

func (m Model) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "l":
		m.screen = screenLogin
	case "r":
		m.screen = screenRegister
	case "a":
		m.screen = screenAdminLogin
	case "g":
		m.screen = screenGoogle
	case "up", "k":
		if m.machineCursor > 0 {
			m.machineCursor--
		}
	case "down", "j":
		if m.machineCursor < len(view.LimitMachines(m.machines))-1 {
			m.machineCursor++
		}
	case "enter":
		if limited := view.LimitMachines(m.machines); len(limited) > 0 {
			return m, m.loadMachineBookingsCmd(limited[m.machineCursor].ID)
		}
	}
	return m, nil
}

// updateAuthForm drives any plain text-input form screen. Enter on the last
// field submits; esc returns to the previous screen.
func (m Model) updateAuthForm(msg tea.KeyMsg, f *form, submit func() tea.Cmd) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = m.dashboardScreen()
		return m, nil
	case "tab", "down":
		f.next()
		return m, nil
	case "shift+tab", "up":
		f.prev()
		return m, nil
	case "enter":
		if f.onLastField() {
			return m, submit()
		}
		f.next()
		return m, nil
	}
	return m, f.update(msg)
}

func (m Model) updateUser(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "n":
		m.booking = bookingForm{
			machines: view.SelectableMachines(m.machines),
			form: newForm(
				formField{label: "Start time", placeholder: time.Now().Format(startTimeLayout)},
				formField{label: "Duration (hours)", placeholder: "1.5"},
			),
		}
		m.screen = screenBookingForm
		return m, nil
	case "up", "k":
		if m.bookingCursor > 0 {
			m.bookingCursor--
		}
	case "down", "j":
		if m.bookingCursor < len(m.userBookings)-1 {
			m.bookingCursor++
		}
	case "c":
		// Cancellation is only offered for cancellable bookings, and
		// always goes through the confirmation screen.
		if m.bookingCursor < len(m.userBookings) {
			b := m.userBookings[m.bookingCursor]
			if b.Cancellable() {
				m.pendingCancelID = b.ID
				m.screen = screenConfirmCancel
			}
		}
	case "v":
		if limited := view.LimitMachines(m.machines); len(limited) > 0 {
			return m, m.loadMachineBookingsCmd(limited[m.machineCursor].ID)
		}
	case "left", "h":
		if m.machineCursor > 0 {
			m.machineCursor--
		}
	case "right", "l":
		if m.machineCursor < len(view.LimitMachines(m.machines))-1 {
			m.machineCursor++
		}
	case "R":
		return m, tea.Batch(m.loadMachinesCmd(), m.loadUserBookingsCmd())
	case "L":
		return m.logout()
	}
	return m, nil
}

func (m Model) updateBookingForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = screenUser
		return m, nil
	case "left":
		if m.booking.cursor > 0 {
			m.booking.cursor--
		}
		return m, nil
	case "right":
		if m.booking.cursor < len(m.booking.machines)-1 {
			m.booking.cursor++
		}
		return m, nil
	case "tab", "down":
		m.booking.form.next()
		return m, nil
	case "shift+tab", "up":
		m.booking.form.prev()
		return m, nil
	case "enter":
		if !m.booking.form.onLastField() {
			m.booking.form.next()
			return m, nil
		}
		return m.submitBooking()
	}
	return m, m.booking.form.update(msg)
}

func (m Model) submitBooking() (tea.Model, tea.Cmd) {
	if len(m.booking.machines) == 0 {
		return m, m.showMessage("No available machines to book", msgError)
	}

	start, err := time.ParseInLocation(startTimeLayout, m.booking.form.value(0), time.Local)
	if err != nil {
		return m, m.showMessage("Invalid start time, use YYYY-MM-DD HH:MM", msgError)
	}
	duration, err := strconv.ParseFloat(m.booking.form.value(1), 64)
	if err != nil || duration <= 0 {
		return m, m.showMessage("Invalid duration", msgError)
	}

	in := app.BookingInput{
		MachineID:     m.booking.machines[m.booking.cursor].ID,
		Start:         start,
		DurationHours: duration,
	}
	return m, m.createBookingCmd(in)
}

func (m Model) updateConfirmCancel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.pendingCancelID
		m.pendingCancelID = 0
		m.screen = screenUser
		return m, m.cancelBookingCmd(id)
	case "n", "N", "esc":
		m.pendingCancelID = 0
		m.screen = screenUser
	}
	return m, nil
}

func (m Model) updateAdmin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	limited := view.LimitMachines(m.adminMachines)
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.adminCursor > 0 {
			m.adminCursor--
		}
	case "down", "j":
		if m.adminCursor < len(limited)-1 {
			m.adminCursor++
		}
	case "a":
		if len(limited) > 0 {
			return m, m.updateStatusCmd(limited[m.adminCursor].ID, model.StatusAvailable)
		}
	case "u":
		if len(limited) > 0 {
			return m, m.updateStatusCmd(limited[m.adminCursor].ID, model.StatusInUse)
		}
	case "b":
		if len(limited) > 0 {
			return m, m.updateStatusCmd(limited[m.adminCursor].ID, model.StatusBroken)
		}
	case "n":
		m.screen = screenAddMachine
	case "R":
		return m, tea.Batch(m.loadAdminMachinesCmd(), m.loadMachinesCmd(), m.loadAllBookingsCmd())
	case "L":
		return m.logout()
	}
	return m, nil
}

func (m Model) logout() (tea.Model, tea.Cmd) {
	if err := m.app.Logout(); err != nil {
		return m, m.showMessage("Failed to clear session", msgError)
	}
	m.userBookings = nil
	m.adminMachines = nil
	m.allBookings = nil
	m.screen = screenWelcome
	return m, tea.Batch(
		m.showMessage("Logged out successfully!", msgInfo),
		m.loadMachinesCmd(),
	)
}
