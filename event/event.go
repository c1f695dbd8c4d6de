// Package event implements the WHATWG DOM event dispatch pipeline
// (EventTarget, Event, CustomEvent, AbortSignal) independently of any
// particular node implementation. It depends on nothing from the dom
// package; a tree participates in dispatch by implementing Node.
package event

// Phase is the dispatch phase an Event is currently in.
type Phase int

const (
	PhaseNone      Phase = 0
	PhaseCapturing Phase = 1
	PhaseAtTarget  Phase = 2
	PhaseBubbling  Phase = 3
)

// Event is the DOM Event interface. Fields are exported for host bindings
// (e.g. a goja adapter) to read directly; mutating methods below keep the
// flags consistent with the dispatch algorithm.
type Event struct {
	Type       string
	Target     Node
	CurrentTarget Node
	Phase      Phase
	Bubbles    bool
	Cancelable bool
	Composed   bool
	IsTrusted  bool
	TimeStamp  float64

	defaultPrevented bool
	stopped          bool
	stoppedImmediate bool
	dispatching      bool
	path             []Node
}

// NewEvent constructs an Event, per the Event(type, init) constructor steps.
func NewEvent(eventType string, bubbles, cancelable, composed bool) *Event {
	return &Event{
		Type:       eventType,
		Bubbles:    bubbles,
		Cancelable: cancelable,
		Composed:   composed,
	}
}

// PreventDefault sets the canceled flag, unless the event is not cancelable
// or is currently being dispatched from a passive listener (enforced via
// ListenOptions.Passive in dispatch.go, which restores the flag after a
// passive listener returns).
func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether PreventDefault took effect.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation stops the event from proceeding past the current target
// within the current phase, and from entering the next phase.
func (e *Event) StopPropagation() { e.stopped = true }

// StopImmediatePropagation additionally stops remaining listeners on the
// current target within the current phase.
func (e *Event) StopImmediatePropagation() {
	e.stopped = true
	e.stoppedImmediate = true
}

// ComposedPath returns the event's path at the point of last dispatch, target
// first. Empty if the event has never been dispatched.
func (e *Event) ComposedPath() []Node {
	if len(e.path) == 0 {
		return nil
	}
	out := make([]Node, len(e.path))
	copy(out, e.path)
	return out
}

// CustomEvent adds a host-opaque detail payload to Event, per the
// CustomEvent(type, init) interface.
type CustomEvent struct {
	Event
	Detail interface{}
}

// NewCustomEvent constructs a CustomEvent.
func NewCustomEvent(eventType string, bubbles, cancelable, composed bool, detail interface{}) *CustomEvent {
	return &CustomEvent{
		Event:  *NewEvent(eventType, bubbles, cancelable, composed),
		Detail: detail,
	}
}
