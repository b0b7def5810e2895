package tn5250

import "io"

// Standard 5250 screen geometries. Model 2 is the 24x80 base screen every
// host supports; model 5 is the 27x132 wide screen negotiated by capable
// displays.
const (
	Model2Rows    = 24
	Model2Columns = 80
	Model5Rows    = 27
	Model5Columns = 132
)

// SessionConfig carries everything needed to construct a Session.
type SessionConfig struct {
	// Rows and Columns establish the screen geometry. When zero, the
	// 24x80 base geometry is used. The geometry is fixed for the life of
	// the session's buffer; a host-driven size change means building a
	// new session.
	Rows    int
	Columns int

	// CodePage is the registered IANA name of the host code page, such
	// as "IBM037", "IBM500", or "IBM273". When empty, IBM037 is used.
	// The translation capability is swappable per session and the engine
	// never embeds its own tables.
	CodePage string

	// Writer receives outbound frames: heartbeats and AID-key responses.
	// When nil, the session is receive-only and send methods report an
	// error.
	Writer io.Writer

	// EventHooks indicates hooks that should be registered before the
	// session processes its first record.
	EventHooks EventHooks
}
