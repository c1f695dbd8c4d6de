package event

// AbortSignal is a minimal rendering of the WHATWG AbortSignal interface:
// enough for addEventListener's {signal} option (§4.6, §9) to auto-remove a
// listener on abort. A host tick source composes AbortSignal.timeout-class
// features externally by calling Abort() from its own timer (SPEC_FULL.md
// §9 Open Questions) — that contract is out of this package's scope.
type AbortSignal struct {
	aborted bool
	reason  interface{}
	hooks   []func()
}

// NewAbortSignal returns a fresh, non-aborted signal.
func NewAbortSignal() *AbortSignal {
	return &AbortSignal{}
}

// Aborted reports whether the signal has been aborted.
func (s *AbortSignal) Aborted() bool { return s.aborted }

// Reason returns the value passed to Abort, or nil if not aborted.
func (s *AbortSignal) Reason() interface{} { return s.reason }

// Abort marks the signal aborted and runs every registered hook exactly
// once, in registration order. A second call is a no-op (AbortSignal can
// only transition once).
func (s *AbortSignal) Abort(reason interface{}) {
	if s.aborted {
		return
	}
	s.aborted = true
	s.reason = reason
	hooks := s.hooks
	s.hooks = nil
	for _, h := range hooks {
		h()
	}
}

// addAbortHook registers a function to run on abort. If the signal is
// already aborted, it runs immediately.
func (s *AbortSignal) addAbortHook(hook func()) {
	if s.aborted {
		hook()
		return
	}
	s.hooks = append(s.hooks, hook)
}

// AbortController pairs a signal with the capability to abort it, per the
// WHATWG AbortController interface.
type AbortController struct {
	signal *AbortSignal
}

// NewAbortController creates a controller with a fresh, non-aborted signal.
func NewAbortController() *AbortController {
	return &AbortController{signal: NewAbortSignal()}
}

// Signal returns the controller's AbortSignal.
func (c *AbortController) Signal() *AbortSignal { return c.signal }

// Abort aborts the controller's signal with the given reason.
func (c *AbortController) Abort(reason interface{}) { c.signal.Abort(reason) }
