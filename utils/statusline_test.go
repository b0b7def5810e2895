package utils

import (
	"strings"
	"testing"

	"github.com/tn5250go/tn5250"
)

func newStatusSession(t *testing.T) *tn5250.Session {
	t.Helper()

	session, err := tn5250.NewSession(tn5250.SessionConfig{})
	if err != nil {
		t.Fatal(err)
	}

	return session
}

func TestStatusLineSystemAvailable(t *testing.T) {
	session := newStatusSession(t)
	status := NewStatusLine(session)

	line := status.Render()
	if !strings.Contains(line, "SA") {
		t.Errorf("idle session should show system available, got %q", line)
	}
	if !strings.Contains(line, "01/001") {
		t.Errorf("expected home cursor address, got %q", line)
	}
}

func TestStatusLineInhibited(t *testing.T) {
	session := newStatusSession(t)
	status := NewStatusLine(session)

	session.OIA().SetInputInhibitedText(tn5250.CommCheck, 0x08, "comm fault 8")

	line := status.Render()
	if !strings.Contains(line, "comm fault 8") {
		t.Errorf("inhibit text should surface in the status line, got %q", line)
	}
}

func TestStatusLineIndicators(t *testing.T) {
	session := newStatusSession(t)
	status := NewStatusLine(session)

	session.OIA().SetMessageLightOn()
	session.OIA().SetInsertMode(true)
	session.SetCursor(9, 41)

	line := status.Render()
	for _, want := range []string{"MW", "IM", "10/042"} {
		if !strings.Contains(line, want) {
			t.Errorf("expected %q in status line %q", want, line)
		}
	}
}
