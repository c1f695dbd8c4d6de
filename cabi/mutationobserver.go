package cabi

import (
	"github.com/chrisuehlinger/domkernel/dom"
	"github.com/chrisuehlinger/domkernel/mutation"
)

func (s *Surface) resolveObserver(h Handle) (*mutation.Observer, Code) {
	v, ok := s.table.Resolve(h)
	if !ok {
		return nil, NotFoundError
	}
	o, ok := v.(*mutation.Observer)
	if !ok {
		return nil, InvalidStateError
	}
	return o, Success
}

// CreateMutationObserver wraps mutation.NewObserver. cb is the host
// trampoline invoked with each drained batch; schedule, if non-nil, is the
// host's microtask-scheduling hook per §4.7/§10 ("microtask-style drain
// requested via host callback").
func (s *Surface) CreateMutationObserver(cb mutation.Callback, schedule func(*mutation.Observer)) Handle {
	return s.table.New(mutation.NewObserver(cb, schedule))
}

// MutationObserverObserve wraps mutation.Observer.Observe against a node
// handle.
func (s *Surface) MutationObserverObserve(h, targetHandle Handle, opts mutation.Options) Code {
	o, code := s.resolveObserver(h)
	if code != Success {
		return code
	}
	n, code := s.resolveNode(targetHandle)
	if code != Success {
		return code
	}
	o.Observe(n, opts)
	return Success
}

// MutationObserverDisconnect wraps mutation.Observer.Disconnect.
func (s *Surface) MutationObserverDisconnect(h Handle) Code {
	o, code := s.resolveObserver(h)
	if code != Success {
		return code
	}
	o.Disconnect()
	return Success
}

// MutationObserverTakeRecords wraps mutation.Observer.TakeRecords.
func (s *Surface) MutationObserverTakeRecords(h Handle) ([]*mutation.Record, Code) {
	o, code := s.resolveObserver(h)
	if code != Success {
		return nil, code
	}
	return o.TakeRecords(), Success
}

// MutationObserverDrain wraps mutation.Observer.Drain.
func (s *Surface) MutationObserverDrain(h Handle) Code {
	o, code := s.resolveObserver(h)
	if code != Success {
		return code
	}
	o.Drain()
	return Success
}

// RecordAddedNodeHandles and RecordRemovedNodeHandles mint fresh handles for
// a Record's added/removed node vectors — a Record itself is a plain
// dom-free value (mutation.Record carries *dom.Node fields directly), so
// these are convenience wrappers for a C-ABI caller that only ever receives
// opaque handles, never bare *dom.Node pointers.
func (s *Surface) RecordAddedNodeHandles(r *mutation.Record) []Handle {
	return wrapNodeSlice(s, r.AddedNodes)
}

func (s *Surface) RecordRemovedNodeHandles(r *mutation.Record) []Handle {
	return wrapNodeSlice(s, r.RemovedNodes)
}

func (s *Surface) RecordTargetHandle(r *mutation.Record) Handle {
	return s.WrapNode(r.Target)
}

func wrapNodeSlice(s *Surface, nodes []*dom.Node) []Handle {
	if nodes == nil {
		return nil
	}
	out := make([]Handle, len(nodes))
	for i, n := range nodes {
		out[i] = s.WrapNode(n)
	}
	return out
}
