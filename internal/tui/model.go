// Package tui renders the booking client as an interactive terminal
// program. All state transitions happen on bubbletea's single update loop:
// network calls run as commands and deliver their results back as messages,
// so handlers never block the interface.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"laundry-booking-client/config"
	"laundry-booking-client/internal/app"
	"laundry-booking-client/internal/model"
	"laundry-booking-client/internal/view"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenAdminLogin
	screenGoogle
	screenUser
	screenBookingForm
	screenMachineDetail
	screenConfirmCancel
	screenAdmin
	screenAddMachine
)

// Model is the root bubbletea model.
type Model struct {
	app             *app.App
	refreshInterval time.Duration

	screen screen
	flash  flash

	// Last-known data, synced from the app's response caches.
	machines      []model.Machine
	userBookings  []model.Booking
	adminMachines []model.Machine
	allBookings   []model.Booking

	loginForm      form
	registerForm   form
	adminForm      form
	googleForm     form
	addMachineForm form

	booking bookingForm

	machineCursor int
	bookingCursor int
	adminCursor   int

	pendingCancelID int64
	detailName      string
	detailBookings  []model.Booking
}

// bookingForm pairs the machine selection control with the time inputs.
// The selection is a snapshot of the available machines taken when the form
// opens, capped like every machine list.
type bookingForm struct {
	machines []model.Machine
	cursor   int
	form     form
}

// New creates the root model.
func New(a *app.App, cfg *config.Config) Model {
	return Model{
		app:             a,
		refreshInterval: cfg.Refresh.Interval,
		screen:          screenWelcome,
		loginForm: newForm(
			formField{label: "Student ID", placeholder: "20BCS001"},
			formField{label: "Password", secret: true},
		),
		registerForm: newForm(
			formField{label: "Student ID", placeholder: "20BCS001"},
			formField{label: "Username", placeholder: "Full name"},
			formField{label: "Password", secret: true},
			formField{label: "Confirm password", secret: true},
		),
		adminForm: newForm(
			formField{label: "Admin ID", placeholder: "admin"},
			formField{label: "Password", secret: true},
		),
		googleForm: newForm(
			formField{label: "Google ID token", placeholder: "paste the credential here"},
		),
		addMachineForm: newForm(
			formField{label: "Machine name", placeholder: "Machine 9"},
		),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.restoreSessionCmd(), m.loadMachinesCmd(), m.refreshTickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateKeys(msg)

	case flashExpiredMsg:
		m.handleFlashExpired(msg)
		return m, nil

	case refreshTickMsg:
		return m.handleRefreshTick()

	case restoredMsg:
		return m.handleRestored(msg)

	case machinesLoadedMsg:
		if msg.err == nil {
			m.machines = msg.list.Machines
			m.clampCursors()
		}
		return m, nil

	case adminMachinesLoadedMsg:
		if msg.err == nil {
			m.adminMachines = msg.list.Machines
			m.clampCursors()
		}
		return m, nil

	case userBookingsLoadedMsg:
		if msg.err == nil {
			m.userBookings = msg.list.Bookings
			m.clampCursors()
		}
		return m, nil

	case allBookingsLoadedMsg:
		if msg.err == nil {
			m.allBookings = msg.list.Bookings
		}
		return m, nil

	case machineBookingsLoadedMsg:
		if msg.err != nil {
			return m, m.showMessage(errorMessage(msg.err, "Failed to load machine bookings"), msgError)
		}
		m.detailName = msg.machineName
		m.detailBookings = msg.bookings
		m.screen = screenMachineDetail
		return m, nil

	case authDoneMsg:
		return m.handleAuthDone(msg)

	case registerDoneMsg:
		if msg.err != nil {
			return m, m.showMessage(errorMessage(msg.err, "Registration failed"), msgError)
		}
		m.registerForm.reset()
		m.screen = screenLogin
		return m, m.showMessage("Registration successful! Please login.", msgSuccess)

	case bookingDoneMsg:
		if msg.err != nil {
			return m, m.showMessage(errorMessage(msg.err, "Booking failed"), msgError)
		}
		m.booking.form.reset()
		m.screen = screenUser
		m.syncFromCaches()
		return m, m.showMessage("Booking created successfully!", msgSuccess)

	case cancelDoneMsg:
		if msg.err != nil {
			return m, m.showMessage(errorMessage(msg.err, "Failed to cancel booking"), msgError)
		}
		m.syncFromCaches()
		return m, m.showMessage("Booking cancelled successfully!", msgSuccess)

	case statusUpdatedMsg:
		if msg.err != nil {
			return m, m.showMessage(errorMessage(msg.err, "Failed to update machine status"), msgError)
		}
		m.syncFromCaches()
		return m, m.showMessage("Machine status updated successfully!", msgSuccess)

	case machineAddedMsg:
		if msg.err != nil {
			return m, m.showMessage(errorMessage(msg.err, "Failed to add machine"), msgError)
		}
		m.addMachineForm.reset()
		m.screen = screenAdmin
		m.syncFromCaches()
		return m, m.showMessage("Machine added successfully!", msgSuccess)
	}

	return m, nil
}

// handleRefreshTick re-runs the catalog fetch and the role-appropriate
// dashboard fetches while a session is active, then rearms the timer.
func (m Model) handleRefreshTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.refreshTickCmd()}
	if m.app.Session().Active() {
		cmds = append(cmds, m.loadMachinesCmd())
		if m.app.Session().IsAdmin() {
			cmds = append(cmds, m.loadAdminMachinesCmd(), m.loadAllBookingsCmd())
		} else {
			cmds = append(cmds, m.loadUserBookingsCmd())
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleRestored(msg restoredMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, m.showMessage("Failed to restore session", msgError)
	}
	switch msg.outcome {
	case app.RestoreAdmin:
		m.screen = screenAdmin
		return m, tea.Batch(m.loadAdminMachinesCmd(), m.loadAllBookingsCmd())
	case app.RestoreUser:
		m.screen = screenUser
		return m, m.loadUserBookingsCmd()
	case app.RestoreRejected:
		m.screen = screenWelcome
		return m, m.showMessage("Saved session was rejected. Please login again.", msgInfo)
	default:
		return m, nil
	}
}

func (m Model) handleAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		generic := "Login failed"
		if msg.admin {
			generic = "Admin login failed"
		} else if msg.google {
			generic = "Google Sign-In failed. Please try again."
		}
		return m, m.showMessage(errorMessage(msg.err, generic), msgError)
	}

	m.loginForm.reset()
	m.adminForm.reset()
	m.googleForm.reset()

	if msg.admin {
		m.screen = screenAdmin
		return m, tea.Batch(
			m.showMessage("Admin login successful!", msgSuccess),
			m.loadAdminMachinesCmd(),
			m.loadAllBookingsCmd(),
		)
	}

	m.screen = screenUser
	text := "Login successful!"
	if msg.google {
		text = "Google Sign-In successful!"
	}
	return m, tea.Batch(
		m.showMessage(text, msgSuccess),
		m.loadUserBookingsCmd(),
		m.loadMachinesCmd(),
	)
}

// syncFromCaches pulls the data the app re-fetched after a successful
// mutation into the rendered state.
func (m *Model) syncFromCaches() {
	if machines := m.app.CachedMachines(); machines != nil {
		m.machines = machines
	}
	if bookings := m.app.CachedUserBookings(); bookings != nil {
		m.userBookings = bookings
	}
	if machines := m.app.CachedAdminMachines(); machines != nil {
		m.adminMachines = machines
	}
	if bookings := m.app.CachedAllBookings(); bookings != nil {
		m.allBookings = bookings
	}
	m.clampCursors()
}

func (m *Model) clampCursors() {
	clamp := func(cursor, n int) int {
		if cursor >= n {
			cursor = n - 1
		}
		if cursor < 0 {
			cursor = 0
		}
		return cursor
	}
	m.machineCursor = clamp(m.machineCursor, len(view.LimitMachines(m.machines)))
	m.adminCursor = clamp(m.adminCursor, len(view.LimitMachines(m.adminMachines)))
	m.bookingCursor = clamp(m.bookingCursor, len(m.userBookings))
}
