package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"laundry-booking-client/internal/api"
	"laundry-booking-client/internal/app"
	"laundry-booking-client/internal/auth"
)

// flashDuration is how long a message stays on screen before auto-dismissal.
const flashDuration = 5 * time.Second

type messageKind int

const (
	msgInfo messageKind = iota
	msgSuccess
	msgError
)

// flash is the notification surface: at most one transient message at a
// time. gen guards against a stale dismissal timer clearing a newer message.
type flash struct {
	text string
	kind messageKind
	gen  int
}

type flashExpiredMsg struct{ gen int }

// showMessage replaces the current message and arms its dismissal timer.
// A newer message supersedes the old one along with its timer.
func (m *Model) showMessage(text string, kind messageKind) tea.Cmd {
	m.flash = flash{text: text, kind: kind, gen: m.flash.gen + 1}
	gen := m.flash.gen
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{gen: gen}
	})
}

func (m *Model) handleFlashExpired(msg flashExpiredMsg) {
	if msg.gen == m.flash.gen {
		m.flash.text = ""
	}
}

func (m flash) render() string {
	if m.text == "" {
		return ""
	}
	switch m.kind {
	case msgSuccess:
		return successMsgStyle.Render(m.text)
	case msgError:
		return errorMsgStyle.Render(m.text)
	default:
		return infoMsgStyle.Render(m.text)
	}
}

// errorMessage maps a flow error to its user-facing text. Server-provided
// messages are surfaced verbatim when present; transport failures get the
// generic retry-free message.
func errorMessage(err error, generic string) string {
	var apiErr *api.Error
	switch {
	case errors.Is(err, app.ErrPasswordMismatch):
		return "Passwords do not match!"
	case errors.Is(err, app.ErrMissingFields):
		return "All fields are required"
	case errors.Is(err, auth.ErrNoAssertion), errors.Is(err, auth.ErrMalformedAssertion):
		return "Google Sign-In configuration error. Please contact administrator."
	case errors.Is(err, auth.ErrDomainNotAllowed):
		return "Please use your institutional email address"
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return generic
	default:
		return "Network error. Please try again."
	}
}
