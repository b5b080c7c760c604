// Package zone provides the drop-zone activation controller: a two-state
// activation model with asymmetric debounced transitions, CSS class
// reflection, and a synchronous switch path driven by application events.
package zone

// Event carries what a controller handler needs from a dispatched DOM or
// application event: the event name, the live structured payload (detail),
// and any static parameters the binding layer attached.
type Event struct {
	Name   string
	Detail map[string]any
	Params map[string]any

	// Cancelable reports whether the event's default action can be
	// suppressed. Non-cancelable events ignore PreventDefault.
	Cancelable bool

	defaultPrevented bool
}

// PreventDefault suppresses the event's default action. It has no effect
// on non-cancelable events.
func (e *Event) PreventDefault() {
	if e == nil || !e.Cancelable {
		return
	}
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called on a
// cancelable event.
func (e *Event) DefaultPrevented() bool {
	return e != nil && e.defaultPrevented
}
