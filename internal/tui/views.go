package tui

import (
	"fmt"
	"strings"

	"laundry-booking-client/internal/model"
	"laundry-booking-client/internal/view"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Hostel Washing Machine Booking"))
	b.WriteString("\n")
	if msg := m.flash.render(); msg != "" {
		b.WriteString(msg + "\n")
	}

	switch m.screen {
	case screenWelcome:
		b.WriteString(m.viewWelcome())
	case screenLogin:
		b.WriteString(m.viewForm("Login", m.loginForm))
	case screenRegister:
		b.WriteString(m.viewForm("Register", m.registerForm))
	case screenAdminLogin:
		b.WriteString(m.viewForm("Admin Login", m.adminForm))
	case screenGoogle:
		b.WriteString(m.viewForm("Google Sign-In", m.googleForm))
	case screenUser:
		b.WriteString(m.viewUserDashboard())
	case screenBookingForm:
		b.WriteString(m.viewBookingForm())
	case screenMachineDetail:
		b.WriteString(m.viewMachineDetail())
	case screenConfirmCancel:
		b.WriteString(m.viewConfirmCancel())
	case screenAdmin:
		b.WriteString(m.viewAdminDashboard())
	case screenAddMachine:
		b.WriteString(m.viewForm("Add Machine", m.addMachineForm))
	}
	return b.String()
}

func (m Model) viewWelcome() string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("Machine Availability") + "\n")
	b.WriteString(m.renderMachineList(m.machines, m.machineCursor))
	b.WriteString(footerStyle.Render("l login · r register · a admin · g google sign-in · enter view bookings · q quit"))
	return b.String()
}

func (m Model) viewForm(title string, f form) string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render(title) + "\n")
	b.WriteString(f.view())
	b.WriteString(footerStyle.Render("enter submit · tab next field · esc back"))
	return b.String()
}

func (m Model) viewUserDashboard() string {
	identity, _ := m.app.Session().Identity()

	var b strings.Builder
	b.WriteString(mutedStyle.Render("Welcome, "+identity.DisplayName()) + "\n")

	b.WriteString(sectionTitleStyle.Render("Machines") + "\n")
	b.WriteString(m.renderMachineRow(m.machines, m.machineCursor))

	b.WriteString(sectionTitleStyle.Render("Your Bookings") + "\n")
	if len(m.userBookings) == 0 {
		b.WriteString(mutedStyle.Render("  No bookings found.") + "\n")
	}
	for i, booking := range m.userBookings {
		style := cardStyle
		if i == m.bookingCursor {
			style = selectedCardStyle
		}
		line := fmt.Sprintf("%s\n%s\n%s",
			textStyle.Render(booking.MachineName),
			view.TimeRange(booking.StartTime, booking.EndTime),
			view.BookingStatusLabel(booking.Status),
		)
		if booking.Cancellable() {
			line += "\n" + mutedStyle.Render("press c to cancel")
		}
		b.WriteString(style.Render(line) + "\n")
	}

	b.WriteString(footerStyle.Render("n new booking · c cancel · v machine bookings · R refresh · L logout · q quit"))
	return b.String()
}

func (m Model) viewBookingForm() string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("New Booking") + "\n")

	if len(m.booking.machines) == 0 {
		b.WriteString(mutedStyle.Render("  No machines available right now.") + "\n")
	} else {
		b.WriteString("  " + mutedStyle.Render("Machine (←/→ to choose)") + "\n  ")
		for i, machine := range m.booking.machines {
			label := machine.Name
			if i == m.booking.cursor {
				label = "[" + label + "]"
			}
			b.WriteString(label + "  ")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.booking.form.view())
	b.WriteString(footerStyle.Render("enter submit · esc back"))
	return b.String()
}

func (m Model) viewMachineDetail() string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render(m.detailName+" - Current Bookings") + "\n")
	if len(m.detailBookings) == 0 {
		b.WriteString(mutedStyle.Render("  No current bookings for this machine.") + "\n")
	}
	for _, booking := range m.detailBookings {
		b.WriteString(cardStyle.Render(fmt.Sprintf(
			"Booking #%d  %s\nStudent: %s (%s)\nTime: %s\nBooked on: %s",
			booking.ID,
			view.BookingStatusLabel(booking.Status),
			booking.Username,
			booking.StudentID,
			view.TimeRange(booking.StartTime, booking.EndTime),
			view.FormatTimestamp(booking.CreatedAt),
		)) + "\n")
	}
	b.WriteString(footerStyle.Render("esc back"))
	return b.String()
}

func (m Model) viewConfirmCancel() string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("Cancel Booking") + "\n")
	b.WriteString("  Are you sure you want to cancel this booking?\n")
	b.WriteString(footerStyle.Render("y yes · n no"))
	return b.String()
}

func (m Model) viewAdminDashboard() string {
	var b strings.Builder
	b.WriteString(mutedStyle.Render("Admin Dashboard") + "\n")

	b.WriteString(sectionTitleStyle.Render("Machines") + "\n")
	limited := view.LimitMachines(m.adminMachines)
	for i, machine := range limited {
		style := cardStyle
		if i == m.adminCursor {
			style = selectedCardStyle
		}
		lastUser := ""
		if machine.LastUsedByName != "" {
			lastUser = "\n" + mutedStyle.Render("Last user: "+machine.LastUsedByName)
		}
		b.WriteString(style.Render(fmt.Sprintf("%s  %s%s",
			textStyle.Render(machine.Name),
			statusStyle(machine.Status).Render(view.StatusLabel(machine.Status)),
			lastUser,
		)) + "\n")
	}
	if len(limited) == 0 {
		b.WriteString(mutedStyle.Render("  No machines.") + "\n")
	}

	b.WriteString(sectionTitleStyle.Render("All Bookings") + "\n")
	if len(m.allBookings) == 0 {
		b.WriteString(mutedStyle.Render("  No bookings found.") + "\n")
	}
	for _, booking := range m.allBookings {
		b.WriteString(cardStyle.Render(fmt.Sprintf(
			"%s (%s)\n%s\n%s  %s",
			booking.Username,
			booking.StudentID,
			booking.MachineName,
			view.TimeRange(booking.StartTime, booking.EndTime),
			view.BookingStatusLabel(booking.Status),
		)) + "\n")
	}

	b.WriteString(footerStyle.Render("a available · u in use · b broken · n add machine · R refresh · L logout · q quit"))
	return b.String()
}

// renderMachineList renders machines as vertical cards, capped at the
// display limit.
func (m Model) renderMachineList(machines []model.Machine, cursor int) string {
	limited := view.LimitMachines(machines)
	if len(limited) == 0 {
		return mutedStyle.Render("  No machines.") + "\n"
	}

	var b strings.Builder
	for i, machine := range limited {
		style := cardStyle
		if i == cursor {
			style = selectedCardStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s  %s\n%s",
			textStyle.Render(machine.Name),
			statusStyle(machine.Status).Render(view.StatusLabel(machine.Status)),
			mutedStyle.Render(view.LastUsed(machine)),
		)) + "\n")
	}
	return b.String()
}

// renderMachineRow renders machines as one compact line per machine for the
// user dashboard.
func (m Model) renderMachineRow(machines []model.Machine, cursor int) string {
	limited := view.LimitMachines(machines)
	if len(limited) == 0 {
		return mutedStyle.Render("  No machines.") + "\n"
	}

	var b strings.Builder
	for i, machine := range limited {
		marker := "  "
		if i == cursor {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n",
			marker,
			textStyle.Render(machine.Name),
			statusStyle(machine.Status).Render(view.StatusLabel(machine.Status)),
		))
	}
	return b.String()
}
