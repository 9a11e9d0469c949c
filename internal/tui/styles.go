package tui

import (
	"github.com/charmbracelet/lipgloss"

	"laundry-booking-client/internal/model"
)

var (
	colPrimary = lipgloss.Color("#7D56F4")
	colSuccess = lipgloss.Color("#39FF14")
	colWarning = lipgloss.Color("#FFAD00")
	colError   = lipgloss.Color("#FF3131")
	colInfo    = lipgloss.Color("#00FFFF")
	colMuted   = lipgloss.Color("#888888")
	colText    = lipgloss.Color("#FFFFFF")

	headerStyle = lipgloss.NewStyle().
			Foreground(colPrimary).
			Bold(true).
			Padding(1, 1)

	sectionTitleStyle = lipgloss.NewStyle().
				Foreground(colInfo).
				Bold(true).
				MarginTop(1)

	cardStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colMuted).
			MarginLeft(2)

	selectedCardStyle = cardStyle.
				BorderForeground(colPrimary)

	mutedStyle = lipgloss.NewStyle().Foreground(colMuted)

	footerStyle = lipgloss.NewStyle().
			Foreground(colMuted).
			MarginTop(1).
			Faint(true)

	successMsgStyle = lipgloss.NewStyle().Foreground(colSuccess).Bold(true).Padding(0, 1)
	errorMsgStyle   = lipgloss.NewStyle().Foreground(colError).Bold(true).Padding(0, 1)
	infoMsgStyle    = lipgloss.NewStyle().Foreground(colInfo).Bold(true).Padding(0, 1)

	statusStyles = map[model.MachineStatus]lipgloss.Style{
		model.StatusAvailable: lipgloss.NewStyle().Foreground(colSuccess).Bold(true),
		model.StatusInUse:     lipgloss.NewStyle().Foreground(colWarning).Bold(true),
		model.StatusBroken:    lipgloss.NewStyle().Foreground(colError).Bold(true),
	}

	textStyle = lipgloss.NewStyle().Foreground(colText)
)

func statusStyle(s model.MachineStatus) lipgloss.Style {
	if style, ok := statusStyles[s]; ok {
		return style
	}
	return textStyle
}
