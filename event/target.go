package event

// Node is the tree-shape contract event dispatch needs from a host node
// type. dom.Node satisfies this structurally — event never imports dom.
type Node interface {
	// EventParent returns the node's parent for capture/bubble purposes, or
	// nil at a root.
	EventParent() Node
	// EventTarget returns this node's lazily-allocated listener storage.
	EventTarget() *Target
	// ShadowHost returns the host element if this node is the root of a
	// shadow tree, or nil otherwise. Used to cross shadow boundaries when
	// an event is composed.
	ShadowHost() Node
}

// Callback is the host trampoline invoked for a listener. Implementations
// typically wrap a JS function (goja.Callable) or a Go closure.
type Callback interface {
	HandleEvent(e *Event) error
}

// CallbackFunc adapts a function to Callback.
type CallbackFunc func(e *Event) error

// HandleEvent implements Callback.
func (f CallbackFunc) HandleEvent(e *Event) error { return f(e) }

// ErrorHandler is invoked when a listener's callback returns an error. The
// core never lets a listener's error interrupt dispatch (§4.6); it is
// reported here instead.
type ErrorHandler func(eventType string, err error)

// ListenOptions mirrors addEventListener's options dictionary.
type ListenOptions struct {
	Capture bool
	Once    bool
	Passive bool
	Signal  *AbortSignal
}

type listener struct {
	callback Callback
	opts     ListenOptions
	removed  bool
}

// Target holds the listener list for one EventTarget. Lazily allocated by
// the host node type, matching the node kernel's "rare data" discipline
// (§4.1): a node with no listeners pays nothing beyond a nil pointer.
type Target struct {
	listeners    map[string][]*listener
	errorHandler ErrorHandler
}

// NewTarget creates an empty listener store.
func NewTarget() *Target {
	return &Target{listeners: make(map[string][]*listener)}
}

// SetErrorHandler installs the callback invoked when a listener errors.
func (t *Target) SetErrorHandler(h ErrorHandler) { t.errorHandler = h }

// AddEventListener registers cb for eventType. A duplicate (same callback
// identity is the caller's responsibility to detect — Go has no reliable
// function-value equality, so callers that need dedup should compare their
// own wrapped identity before calling this) is not rejected here.
func (t *Target) AddEventListener(eventType string, cb Callback, opts ListenOptions) {
	l := &listener{callback: cb, opts: opts}
	t.listeners[eventType] = append(t.listeners[eventType], l)
	if opts.Signal != nil {
		opts.Signal.addAbortHook(func() {
			t.removeListener(eventType, l)
		})
	}
}

// RemoveEventListener removes the first listener for eventType whose
// callback is identical to cb (by interface equality) and whose capture
// flag matches.
func (t *Target) RemoveEventListener(eventType string, cb Callback, capture bool) {
	list := t.listeners[eventType]
	for i, l := range list {
		if l.callback == cb && l.opts.Capture == capture {
			l.removed = true
			t.listeners[eventType] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

func (t *Target) removeListener(eventType string, target *listener) {
	list := t.listeners[eventType]
	for i, l := range list {
		if l == target {
			l.removed = true
			t.listeners[eventType] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

func (t *Target) hasListeners(eventType string) bool {
	return len(t.listeners[eventType]) > 0
}

// Count returns the total number of listeners registered on t across all
// event types, for a host that wants to enforce a per-target listener cap.
func (t *Target) Count() int {
	n := 0
	for _, list := range t.listeners {
		n += len(list)
	}
	return n
}
