package utils

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/tn5250go/tn5250"
)

// StatusLine renders an operator information area into the one-line
// status strip a 5250 emulator shows under the screen: system available,
// input inhibit cause, message wait, insert mode, and the cursor address.
type StatusLine struct {
	session *tn5250.Session

	normal  lipgloss.Style
	inhibit lipgloss.Style
	message lipgloss.Style
}

func NewStatusLine(session *tn5250.Session) *StatusLine {
	return &StatusLine{
		session: session,
		normal:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		inhibit: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		message: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// Render returns the styled status line for the session's current OIA
// state.
func (s *StatusLine) Render() string {
	oia := s.session.OIA()

	var parts []string

	if oia.InputInhibited() != tn5250.NotInhibited {
		text := oia.InhibitedText()
		if text == "" {
			text = oia.InputInhibited().String()
		}
		parts = append(parts, s.inhibit.Render("X "+text))
	} else if oia.IsKeyboardLocked() {
		parts = append(parts, s.inhibit.Render("X []"))
	} else {
		parts = append(parts, s.normal.Render("SA"))
	}

	if oia.IsMessageWait() {
		parts = append(parts, s.message.Render("MW"))
	}

	if oia.IsInsertMode() {
		parts = append(parts, s.normal.Render("IM"))
	}

	if oia.IsKeysBuffered() {
		parts = append(parts, s.normal.Render("KB"))
	}

	parts = append(parts, s.normal.Render(cursorAddress(s.session)))

	return strings.Join(parts, "  ")
}

func cursorAddress(session *tn5250.Session) string {
	return fmt.Sprintf("%02d/%03d", session.CursorRow()+1, session.CursorCol()+1)
}
