package tn5250

// EventHook is a type for function pointers that are registered to
// receive session events
type EventHook[T any] func(session *Session, data T)

// EventPublisher is a type used to register and fire arbitrary events
type EventPublisher[U any] struct {
	registeredHooks []EventHook[U]
}

// NewPublisher creates a new EventPublisher for a particular EventHook. A
// slice of hooks can be passed in, in which case the hooks will be
// registered to receive events from the publisher. Otherwise, nil can be
// passed in.
func NewPublisher[U any, T ~func(session *Session, data U)](hooks []T) *EventPublisher[U] {
	var convertedHooks []EventHook[U]

	for _, hook := range hooks {
		convertedHooks = append(convertedHooks, EventHook[U](hook))
	}

	return &EventPublisher[U]{
		registeredHooks: convertedHooks,
	}
}

// Register registers a single EventHook to receive events from this
// publisher.
func (e *EventPublisher[U]) Register(hook EventHook[U]) {
	e.registeredHooks = append(e.registeredHooks, hook)
}

// Fire calls the event for all EventHook instances registered to this
// publisher with the provided parameters. Hooks run synchronously on the
// session's driving goroutine, in registration order.
func (e *EventPublisher[U]) Fire(session *Session, eventData U) {
	for _, hook := range e.registeredHooks {
		hook(session, eventData)
	}
}

// ErrorHandler is an event hook type that receives malformed-input errors
// the session chose to tolerate
type ErrorHandler func(s *Session, err error)

// RecordHandler is an event hook type that receives every 5250 record the
// session processes
type RecordHandler func(s *Session, record *Record)

// DeviceHandler is an event hook type that receives the validated device
// configuration after a successful negotiation
type DeviceHandler func(s *Session, device DeviceConfig)

// EventHooks is used to pass in a set of pre-registered event hooks to a
// Session when calling NewSession. See SessionConfig for more info.
type EventHooks struct {
	EncounteredError []ErrorHandler
	ProcessedRecord  []RecordHandler
	NegotiatedDevice []DeviceHandler
}
