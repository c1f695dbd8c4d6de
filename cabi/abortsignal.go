package cabi

import "github.com/chrisuehlinger/domkernel/event"

func (s *Surface) resolveAbortSignal(h Handle) (*event.AbortSignal, Code) {
	v, ok := s.table.Resolve(h)
	if !ok {
		return nil, NotFoundError
	}
	sig, ok := v.(*event.AbortSignal)
	if !ok {
		return nil, InvalidStateError
	}
	return sig, Success
}

// WrapAbortSignal mints a handle for sig, or the zero Handle if sig is nil.
func (s *Surface) WrapAbortSignal(sig *event.AbortSignal) Handle {
	if sig == nil {
		return Handle{}
	}
	return s.table.New(sig)
}

// CreateAbortController wraps event.NewAbortController, minting a handle
// for the controller itself; AbortControllerSignal mints the paired
// signal's own handle on demand (the [SameObject] slot §3 describes is the
// *event.AbortSignal Go value the controller already holds — re-wrapping it
// here mints a fresh Handle each time, which is fine since Handle equality
// isn't part of this surface's contract, only Resolve-to-the-same-object
// is, and Resolve always returns the same *event.AbortSignal pointer).
func (s *Surface) CreateAbortController() Handle {
	return s.table.New(event.NewAbortController())
}

func (s *Surface) resolveAbortController(h Handle) (*event.AbortController, Code) {
	v, ok := s.table.Resolve(h)
	if !ok {
		return nil, NotFoundError
	}
	c, ok := v.(*event.AbortController)
	if !ok {
		return nil, InvalidStateError
	}
	return c, Success
}

// AbortControllerSignal mints a handle for the controller's signal.
func (s *Surface) AbortControllerSignal(h Handle) (Handle, Code) {
	c, code := s.resolveAbortController(h)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapAbortSignal(c.Signal()), Success
}

// AbortControllerAbort wraps event.AbortController.Abort.
func (s *Surface) AbortControllerAbort(h Handle, reason interface{}) Code {
	c, code := s.resolveAbortController(h)
	if code != Success {
		return code
	}
	c.Abort(reason)
	return Success
}

// AbortSignalAborted wraps event.AbortSignal.Aborted.
func (s *Surface) AbortSignalAborted(h Handle) (bool, Code) {
	sig, code := s.resolveAbortSignal(h)
	if code != Success {
		return false, code
	}
	return sig.Aborted(), Success
}

// AbortSignalReason wraps event.AbortSignal.Reason.
func (s *Surface) AbortSignalReason(h Handle) (interface{}, Code) {
	sig, code := s.resolveAbortSignal(h)
	if code != Success {
		return nil, code
	}
	return sig.Reason(), Success
}
