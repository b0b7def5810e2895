package tn5250

// InputInhibit is the reason the host is refusing operator input, shown
// in the operator information area. The zero value is not inhibited.
type InputInhibit byte

const (
	NotInhibited InputInhibit = iota
	SystemWait
	CommCheck
	ProgCheck
	MachineCheck
	InhibitOther
)

var inhibitNames = map[InputInhibit]string{
	NotInhibited: "not inhibited",
	SystemWait:   "system wait",
	CommCheck:    "communications check",
	ProgCheck:    "program check",
	MachineCheck: "machine check",
	InhibitOther: "inhibited",
}

func (i InputInhibit) String() string {
	name, hasName := inhibitNames[i]
	if !hasName {
		return "unknown"
	}

	return name
}

// OIAChange is the category of operator-information-area state that an
// OIA mutation altered. Listeners receive one notification per category
// actually changed by a call, never one for an unrelated category and
// never one for a no-op transition.
type OIAChange byte

const (
	OIAChangedKeyboardLocked OIAChange = iota
	OIAChangedInsertMode
	OIAChangedMessageLight
	OIAChangedInputInhibited
	OIAChangedKeysBuffered
	OIAChangedOwner
	OIAChangedBell
)

var oiaChangeNames = map[OIAChange]string{
	OIAChangedKeyboardLocked: "keyboard locked",
	OIAChangedInsertMode:     "insert mode",
	OIAChangedMessageLight:   "message light",
	OIAChangedInputInhibited: "input inhibited",
	OIAChangedKeysBuffered:   "keys buffered",
	OIAChangedOwner:          "owner",
	OIAChangedBell:           "bell",
}

func (c OIAChange) String() string {
	name, hasName := oiaChangeNames[c]
	if !hasName {
		return "unknown"
	}

	return name
}

// OIAListener receives operator-information-area change notifications.
// Listeners are invoked synchronously, in registration order, from the
// mutating call itself; a listener must not re-enter the OIA's mutators
// from inside OIAChanged.
type OIAListener interface {
	OIAChanged(oia *OIA, change OIAChange)
}

// OIAListenerFunc adapts a plain function to the OIAListener interface.
type OIAListenerFunc func(oia *OIA, change OIAChange)

func (f OIAListenerFunc) OIAChanged(oia *OIA, change OIAChange) {
	f(oia, change)
}

// OIA holds the operator information area of one host session: keyboard
// lock, insert mode, message light, screen ownership, and the input
// inhibit cause with its diagnostic payload.
//
// The OIA is a pure data holder. In particular, keyboard lock and input
// inhibit are deliberately orthogonal: setting one never touches the
// other, and the protocol driver is responsible for keeping them
// coherent. One OIA exists per session; it is reset on reconnect, never
// replaced mid-session.
type OIA struct {
	listeners []OIAListener

	keyboardLocked bool
	insertMode     bool
	messageWait    bool
	keysBuffered   bool
	owner          int

	inputInhibited InputInhibit
	inhibitedText  string

	// commCheck and machineCheck each hold the last diagnostic code
	// reported for their cause. Transitioning to a different inhibit
	// cause and back leaves them in place; only a new report for the
	// same cause overwrites them.
	commCheck    int
	machineCheck int
}

// NewOIA creates an OIA in its initial state: keyboard unlocked, not
// inhibited, all indicators off.
func NewOIA() *OIA {
	return &OIA{}
}

// AddListener registers a listener for change notifications.
func (o *OIA) AddListener(listener OIAListener) {
	o.listeners = append(o.listeners, listener)
}

func (o *OIA) fireChanged(change OIAChange) {
	for _, listener := range o.listeners {
		listener.OIAChanged(o, change)
	}
}

// SetKeyboardLocked sets the keyboard lock indicator. Setting the current
// value again is a silent no-op.
func (o *OIA) SetKeyboardLocked(locked bool) {
	if o.keyboardLocked == locked {
		return
	}

	o.keyboardLocked = locked
	o.fireChanged(OIAChangedKeyboardLocked)
}

// IsKeyboardLocked reports whether the keyboard is locked.
func (o *OIA) IsKeyboardLocked() bool {
	return o.keyboardLocked
}

// SetInsertMode sets the insert-mode indicator.
func (o *OIA) SetInsertMode(insert bool) {
	if o.insertMode == insert {
		return
	}

	o.insertMode = insert
	o.fireChanged(OIAChangedInsertMode)
}

// IsInsertMode reports whether insert mode is active.
func (o *OIA) IsInsertMode() bool {
	return o.insertMode
}

// SetMessageLightOn turns on the message-wait indicator.
func (o *OIA) SetMessageLightOn() {
	if o.messageWait {
		return
	}

	o.messageWait = true
	o.fireChanged(OIAChangedMessageLight)
}

// SetMessageLightOff turns off the message-wait indicator.
func (o *OIA) SetMessageLightOff() {
	if !o.messageWait {
		return
	}

	o.messageWait = false
	o.fireChanged(OIAChangedMessageLight)
}

// IsMessageWait reports whether the message-wait indicator is on.
func (o *OIA) IsMessageWait() bool {
	return o.messageWait
}

// SetKeysBuffered sets the typeahead indicator.
func (o *OIA) SetKeysBuffered(buffered bool) {
	if o.keysBuffered == buffered {
		return
	}

	o.keysBuffered = buffered
	o.fireChanged(OIAChangedKeysBuffered)
}

// IsKeysBuffered reports whether keystrokes are buffered.
func (o *OIA) IsKeysBuffered() bool {
	return o.keysBuffered
}

// SetOwner records which component owns the screen.
func (o *OIA) SetOwner(owner int) {
	if o.owner == owner {
		return
	}

	o.owner = owner
	o.fireChanged(OIAChangedOwner)
}

// Owner returns the current screen owner.
func (o *OIA) Owner() int {
	return o.owner
}

// SignalBell raises a bell notification. The bell has no retained state,
// so every call notifies.
func (o *OIA) SignalBell() {
	o.fireChanged(OIAChangedBell)
}

// SetInputInhibited replaces the inhibit cause and clears any inhibit
// message text. See SetInputInhibitedText.
func (o *OIA) SetInputInhibited(inhibit InputInhibit, code int) {
	o.SetInputInhibitedText(inhibit, code, "")
}

// SetInputInhibitedText replaces the inhibit cause, its diagnostic code,
// and the inhibit message text in one step, so a listener or reader never
// observes the old cause paired with the new text. The code lands in the
// slot belonging to the cause: a communications-check code never disturbs
// the stored machine-check code and vice versa.
func (o *OIA) SetInputInhibitedText(inhibit InputInhibit, code int, text string) {
	changed := o.inputInhibited != inhibit || o.inhibitedText != text

	switch inhibit {
	case CommCheck:
		changed = changed || o.commCheck != code
		o.commCheck = code
	case MachineCheck:
		changed = changed || o.machineCheck != code
		o.machineCheck = code
	}

	o.inputInhibited = inhibit
	o.inhibitedText = text

	if changed {
		o.fireChanged(OIAChangedInputInhibited)
	}
}

// InputInhibited returns the current inhibit cause.
func (o *OIA) InputInhibited() InputInhibit {
	return o.inputInhibited
}

// InhibitedText returns the message text of the current inhibit cause, or
// an empty string when none was supplied.
func (o *OIA) InhibitedText() string {
	return o.inhibitedText
}

// CommCheckCode returns the last reported communications-check code.
func (o *OIA) CommCheckCode() int {
	return o.commCheck
}

// MachineCheckCode returns the last reported machine-check code.
func (o *OIA) MachineCheckCode() int {
	return o.machineCheck
}

// Reset returns the OIA to its initial state without notifying listeners.
// Used when a session reconnects.
func (o *OIA) Reset() {
	o.keyboardLocked = false
	o.insertMode = false
	o.messageWait = false
	o.keysBuffered = false
	o.owner = 0
	o.inputInhibited = NotInhibited
	o.inhibitedText = ""
	o.commCheck = 0
	o.machineCheck = 0
}
