package event

import "errors"

// ErrAlreadyDispatching is the InvalidStateError-class failure returned when
// Dispatch is re-entered with an Event instance already mid-dispatch.
var ErrAlreadyDispatching = errors.New("event: event is already being dispatched")

// buildPath walks from target up through parents, crossing shadow
// boundaries only when composed is true, per the event-path construction
// algorithm (§4.6). Index 0 is the target; the last element is the root.
func buildPath(target Node, composed bool) []Node {
	var path []Node
	for n := target; n != nil; {
		path = append(path, n)
		parent := n.EventParent()
		if parent == nil {
			if !composed {
				break
			}
			host := n.ShadowHost()
			if host == nil {
				break
			}
			parent = host
		}
		n = parent
	}
	return path
}

// Dispatch runs the capture/target/bubble algorithm for e against target,
// per §4.6. Returns true unless a cancelable event's default was prevented.
func Dispatch(target Node, e *Event) (bool, error) {
	if e.dispatching {
		return false, ErrAlreadyDispatching
	}

	path := buildPath(target, e.Composed)
	e.dispatching = true
	e.Target = target
	e.path = path
	e.stopped = false
	e.stoppedImmediate = false
	e.defaultPrevented = false

	defer func() {
		e.dispatching = false
		e.Phase = PhaseNone
		e.CurrentTarget = nil
	}()

	// Capturing phase: root down to (excluding) target.
	e.Phase = PhaseCapturing
	for i := len(path) - 1; i > 0; i-- {
		invokeAt(path[i], e, true)
		if e.stopped {
			return !e.defaultPrevented, nil
		}
	}

	// Target phase: capture and non-capture listeners on target run together,
	// in insertion order (§4.6 step 4) -- not capture-first, which is why
	// this is a single unfiltered pass rather than two invokeAt calls.
	e.Phase = PhaseAtTarget
	if len(path) > 0 {
		invokeAtTarget(path[0], e)
	}
	if e.stopped {
		return !e.defaultPrevented, nil
	}

	// Bubbling phase: target's parent up to root.
	if e.Bubbles {
		e.Phase = PhaseBubbling
		for i := 1; i < len(path); i++ {
			invokeAt(path[i], e, false)
			if e.stopped {
				break
			}
		}
	}

	return !e.defaultPrevented, nil
}

// invokeAt runs every listener on node matching the capture flag, honoring
// once/passive/stopImmediatePropagation. Used for the capturing and
// bubbling phases, where capture and non-capture listeners run as two
// separate passes.
func invokeAt(node Node, e *Event, capture bool) {
	invoke(node, e, func(l *listener) bool { return l.opts.Capture == capture })
}

// invokeAtTarget runs every listener on node for e.Type in a single pass,
// in true insertion order, regardless of its capture flag. The target
// phase does not partition by capture (§4.6 step 4): a non-capture listener
// added before a capture listener on the same target fires first.
func invokeAtTarget(node Node, e *Event) {
	invoke(node, e, func(l *listener) bool { return true })
}

// invoke runs the listeners on node for e.Type that match, in insertion
// order, honoring once/passive/stopImmediatePropagation.
func invoke(node Node, e *Event, match func(*listener) bool) {
	t := node.EventTarget()
	list := t.listeners[e.Type]
	// Snapshot: a listener added during dispatch must not run in this pass
	// (per spec); removing during dispatch must take effect immediately.
	snapshot := make([]*listener, len(list))
	copy(snapshot, list)

	e.CurrentTarget = node
	for _, l := range snapshot {
		if l.removed || !match(l) {
			continue
		}
		if l.opts.Once {
			t.removeListener(e.Type, l)
		}

		wasPassive := l.opts.Passive
		savedPrevented := e.defaultPrevented
		if err := l.callback.HandleEvent(e); err != nil && t.errorHandler != nil {
			t.errorHandler(e.Type, err)
		}
		if wasPassive {
			e.defaultPrevented = savedPrevented
		}

		if e.stoppedImmediate {
			return
		}
	}
}
