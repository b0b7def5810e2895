package tn5250

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Screen owner values reported in the operator information area.
const (
	OwnerUnknown = iota
	OwnerHost
	OwnerOperator
)

// ErrNoWriter is reported by send methods on a receive-only session.
var ErrNoWriter = errors.New("session has no writer")

// Session is the host-interaction engine of one 5250 connection: the
// character plane buffer, the field format table, the operator
// information area, the negotiated device configuration, and the cursor.
// The connection lifecycle itself - dialing, TLS, timeouts, the telnet
// option exchange - lives outside; the owner of that connection feeds
// complete records into ProcessRecord and negotiation packets into
// Negotiate, and reads the engine's state back out for display and
// automation.
//
// All mutating methods are intended to be called from the single
// goroutine driving the connection's receive loop. None of them block or
// perform I/O beyond the configured writer. An application that wants a
// second goroutine reading the buffer while the receive loop writes it
// must supply its own synchronization; one mutex around the whole
// session is sufficient, since every operation here is cheap.
type Session struct {
	planes *ScreenPlanes
	fields *ScreenFields
	oia    *OIA

	codePage *CodePage
	device   DeviceConfig
	writer   writerFunc

	cursorPos  int
	negotiated bool
	invited    bool

	encounteredErrorHooks *EventPublisher[error]
	processedRecordHooks  *EventPublisher[*Record]
	negotiatedDeviceHooks *EventPublisher[DeviceConfig]
}

type writerFunc func(b []byte) error

// NewSession constructs the engine for one connection from the provided
// config.
func NewSession(config SessionConfig) (*Session, error) {
	rows, cols := config.Rows, config.Columns
	if rows == 0 && cols == 0 {
		rows, cols = Model2Rows, Model2Columns
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("session: invalid geometry %dx%d", rows, cols)
	}

	codePageName := config.CodePage
	if codePageName == "" {
		codePageName = "IBM037"
	}

	codePage, err := NewCodePage(codePageName)
	if err != nil {
		return nil, err
	}

	session := &Session{
		planes:   NewScreenPlanes(rows, cols),
		fields:   NewScreenFields(cols),
		oia:      NewOIA(),
		codePage: codePage,

		encounteredErrorHooks: NewPublisher(config.EventHooks.EncounteredError),
		processedRecordHooks:  NewPublisher(config.EventHooks.ProcessedRecord),
		negotiatedDeviceHooks: NewPublisher(config.EventHooks.NegotiatedDevice),
	}

	if config.Writer != nil {
		writer := config.Writer
		session.writer = func(b []byte) error {
			_, err := writer.Write(b)
			return err
		}
	}

	return session, nil
}

// Planes returns the session's character plane buffer.
func (s *Session) Planes() *ScreenPlanes {
	return s.planes
}

// Fields returns the session's field format table.
func (s *Session) Fields() *ScreenFields {
	return s.fields
}

// OIA returns the session's operator information area.
func (s *Session) OIA() *OIA {
	return s.oia
}

// CodePage returns the session's host code page.
func (s *Session) CodePage() *CodePage {
	return s.codePage
}

// SetCodePage swaps the session's translation capability.
func (s *Session) SetCodePage(codePage *CodePage) {
	s.codePage = codePage
}

// Device returns the negotiated device configuration. Before a
// successful negotiation it is the zero configuration.
func (s *Session) Device() DeviceConfig {
	return s.device
}

// IsNegotiated reports whether a device negotiation has completed.
func (s *Session) IsNegotiated() bool {
	return s.negotiated
}

// RegisterEncounteredErrorHook registers a hook for tolerated errors.
func (s *Session) RegisterEncounteredErrorHook(hook ErrorHandler) {
	s.encounteredErrorHooks.Register(EventHook[error](hook))
}

// RegisterProcessedRecordHook registers a hook fired after each record.
func (s *Session) RegisterProcessedRecordHook(hook RecordHandler) {
	s.processedRecordHooks.Register(EventHook[*Record](hook))
}

// RegisterNegotiatedDeviceHook registers a hook fired on successful
// negotiation.
func (s *Session) RegisterNegotiatedDeviceHook(hook DeviceHandler) {
	s.negotiatedDeviceHooks.Register(EventHook[DeviceConfig](hook))
}

// Negotiate validates a TN5250E device-negotiation packet and, on
// success, applies it as the session's device configuration. A rejected
// packet changes nothing: the previously negotiated configuration, if
// any, stays in force.
func (s *Session) Negotiate(packet []byte) error {
	device, err := NegotiateDevice(packet)
	if err != nil {
		return err
	}

	s.device = device
	s.negotiated = true
	s.negotiatedDeviceHooks.Fire(s, device)

	return nil
}

// Cursor position accessors. The connection owner reads these when
// serializing AID-key frames; the data-stream decoder writes them.

// SetCursor moves the cursor to the position computed from row and col,
// clamped into the buffer.
func (s *Session) SetCursor(row, col int) {
	pos := s.planes.Pos(row, col)
	if pos < 0 {
		pos = 0
	}
	if pos >= s.planes.Size() {
		pos = s.planes.Size() - 1
	}

	s.cursorPos = pos
}

// CursorPos returns the cursor's linear buffer position.
func (s *Session) CursorPos() int {
	return s.cursorPos
}

// CursorRow returns the cursor's row.
func (s *Session) CursorRow() int {
	return s.planes.RowOf(s.cursorPos)
}

// CursorCol returns the cursor's column.
func (s *Session) CursorCol() int {
	return s.planes.ColOf(s.cursorPos)
}

// ProcessRecord parses one complete 5250 record (already stripped of its
// IAC EOR terminator) and applies its work-station opcode to the
// session's state. Unrecognized opcodes are tolerated: the record is
// still handed to the registered record hooks, and the error hook is
// informed. Malformed records never terminate the session.
func (s *Session) ProcessRecord(data []byte) error {
	record, err := NewRecord(data)
	if err != nil {
		s.encounteredErrorHooks.Fire(s, err)
		return err
	}

	switch record.Opcode() {
	case OpNoOp:

	case OpInviteOp:
		// The host invited input: keyboard comes back to the operator.
		s.invited = true
		s.oia.SetInputInhibited(NotInhibited, 0)
		s.oia.SetKeyboardLocked(false)
		s.oia.SetOwner(OwnerOperator)

	case OpCancelInvite:
		s.invited = false
		s.oia.SetOwner(OwnerHost)

	case OpOutputOnly, OpPutGet, OpSaveScreen, OpRestoreScreen,
		OpReadImmediate, OpReadScreen:
		// Data-stream commands in the record body belong to the
		// decoder layered on top of this engine; the opcode itself
		// only tells us the host holds the screen.
		s.oia.SetOwner(OwnerHost)

	case OpMessageLightOn:
		s.oia.SetMessageLightOn()

	case OpMessageLightOff:
		s.oia.SetMessageLightOff()

	default:
		s.encounteredErrorHooks.Fire(s, fmt.Errorf("record: opcode 0x%02x not recognized", record.Opcode()))
	}

	s.processedRecordHooks.Fire(s, record)

	return nil
}

// IsInvited reports whether the host has invited input and not cancelled
// the invite since.
func (s *Session) IsInvited() bool {
	return s.invited
}

// SendHeartbeat writes the IAC NOP keep-alive frame.
func (s *Session) SendHeartbeat() error {
	if s.writer == nil {
		return ErrNoWriter
	}

	return s.writer([]byte{IAC, NOP})
}

// SendAID transmits an attention identifier to the host: a response
// record carrying the cursor row, cursor column, and the AID byte,
// framed by IAC EOR. The host answers an AID by locking the keyboard,
// so the lock indicator is raised as part of the send.
func (s *Session) SendAID(aid AID) error {
	if s.writer == nil {
		return ErrNoWriter
	}

	frame := s.aidFrame(aid, nil)

	if err := s.writer(frame); err != nil {
		return err
	}

	s.oia.SetKeyboardLocked(true)
	s.oia.SetInputInhibited(SystemWait, 0)
	s.invited = false

	return nil
}

// aidFrame builds a response record: the 10-byte record header, the
// one-based cursor address, the AID byte, the field data, and the IAC
// EOR terminator. Data bytes of 0xFF are doubled per the telnet framing
// rules.
func (s *Session) aidFrame(aid AID, fieldData []byte) []byte {
	body := make([]byte, 0, recordMinHeader+3+len(fieldData))

	body = append(body, 0, 0) // length, patched below
	body = append(body, 0x12, 0xA0, 0, 0)
	body = append(body, 0x04) // variable header length
	body = append(body, 0, 0) // flags
	body = append(body, OpPutGet)
	body = append(body, byte(s.CursorRow()+1), byte(s.CursorCol()+1), byte(aid))
	body = append(body, fieldData...)

	binary.BigEndian.PutUint16(body, uint16(len(body)))

	framed := make([]byte, 0, len(body)+2)
	for _, b := range body {
		framed = append(framed, b)
		if b == IAC {
			framed = append(framed, IAC)
		}
	}

	return append(framed, IAC, EOR)
}
