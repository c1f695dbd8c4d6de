package cabi

import (
	"github.com/chrisuehlinger/domkernel/dom"
	"github.com/chrisuehlinger/domkernel/event"
)

func (s *Surface) resolveEvent(h Handle) (*event.Event, Code) {
	v, ok := s.table.Resolve(h)
	if !ok {
		return nil, NotFoundError
	}
	e, ok := v.(*event.Event)
	if !ok {
		return nil, InvalidStateError
	}
	return e, Success
}

// WrapEvent mints a handle for e, or the zero Handle if e is nil.
func (s *Surface) WrapEvent(e *event.Event) Handle {
	if e == nil {
		return Handle{}
	}
	return s.table.New(e)
}

// CreateEvent wraps event.NewEvent, the plain (non-Custom) Event
// constructor §3's Event entity names.
func (s *Surface) CreateEvent(eventType string, bubbles, cancelable, composed bool) Handle {
	return s.WrapEvent(event.NewEvent(eventType, bubbles, cancelable, composed))
}

// CreateCustomEvent wraps event.NewCustomEvent, attaching an opaque detail
// value the host supplied (the C-ABI surface does not type-check it; a
// binding layer is responsible for marshaling its own detail shape).
func (s *Surface) CreateCustomEvent(eventType string, bubbles, cancelable, composed bool, detail interface{}) Handle {
	return s.WrapEvent(&event.CustomEvent{
		Event:  *event.NewEvent(eventType, bubbles, cancelable, composed),
		Detail: detail,
	})
}

func (s *Surface) EventType(h Handle) (string, Code) {
	e, code := s.resolveEvent(h)
	if code != Success {
		return "", code
	}
	return e.Type, Success
}

func (s *Surface) EventBubbles(h Handle) (bool, Code) {
	e, code := s.resolveEvent(h)
	if code != Success {
		return false, code
	}
	return e.Bubbles, Success
}

func (s *Surface) EventCancelable(h Handle) (bool, Code) {
	e, code := s.resolveEvent(h)
	if code != Success {
		return false, code
	}
	return e.Cancelable, Success
}

func (s *Surface) EventDefaultPrevented(h Handle) (bool, Code) {
	e, code := s.resolveEvent(h)
	if code != Success {
		return false, code
	}
	return e.DefaultPrevented(), Success
}

// EventPreventDefault, EventStopPropagation, and EventStopImmediatePropagation
// wrap the matching Event methods §4.6 names.
func (s *Surface) EventPreventDefault(h Handle) Code {
	e, code := s.resolveEvent(h)
	if code != Success {
		return code
	}
	e.PreventDefault()
	return Success
}

func (s *Surface) EventStopPropagation(h Handle) Code {
	e, code := s.resolveEvent(h)
	if code != Success {
		return code
	}
	e.StopPropagation()
	return Success
}

func (s *Surface) EventStopImmediatePropagation(h Handle) Code {
	e, code := s.resolveEvent(h)
	if code != Success {
		return code
	}
	e.StopImmediatePropagation()
	return Success
}

// EventTargetHandle mints a handle for the event's target at the point of
// the call — per §4.6 this is only meaningful during or immediately after a
// dispatch. Returns the zero Handle if the event has never been dispatched
// or its target isn't a *dom.Node (the only event.Node this surface mints
// handles for).
func (s *Surface) EventTargetHandle(h Handle) (Handle, Code) {
	e, code := s.resolveEvent(h)
	if code != Success {
		return Handle{}, code
	}
	n, ok := e.Target.(*dom.Node)
	if !ok || n == nil {
		return Handle{}, Success
	}
	return s.WrapNode(n), Success
}

// AddEventListener wraps dom.Node.EventTarget().AddEventListener via the
// event.Node structural contract dom.Node already implements, registering
// cb — a host trampoline per §6's "(function_ptr, opaque_context)"
// convention rendered as a Go event.Callback — against nodeHandle.
func (s *Surface) AddEventListener(nodeHandle Handle, eventType string, cb event.Callback, opts event.ListenOptions) Code {
	n, code := s.resolveNode(nodeHandle)
	if code != Success {
		return code
	}
	n.EventTarget().AddEventListener(eventType, cb, opts)
	return Success
}

// RemoveEventListener wraps dom.Node.EventTarget().RemoveEventListener.
func (s *Surface) RemoveEventListener(nodeHandle Handle, eventType string, cb event.Callback, capture bool) Code {
	n, code := s.resolveNode(nodeHandle)
	if code != Success {
		return code
	}
	n.EventTarget().RemoveEventListener(eventType, cb, capture)
	return Success
}

// DispatchEvent wraps event.Dispatch against a node target, returning
// !canceled per §4.6's dispatchEvent return-value contract.
func (s *Surface) DispatchEvent(nodeHandle, eventHandle Handle) (bool, Code) {
	n, code := s.resolveNode(nodeHandle)
	if code != Success {
		return false, code
	}
	e, code := s.resolveEvent(eventHandle)
	if code != Success {
		return false, code
	}
	ok, err := event.Dispatch(n, e)
	if err != nil {
		return false, InvalidStateError
	}
	return ok, Success
}
