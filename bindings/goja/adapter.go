// Package goja is a demonstration host-trampoline adapter, proving the
// core's dom/event/mutation/reaction packages are engine-agnostic by
// wrapping github.com/dop251/goja callables to satisfy their trampoline
// interfaces. It is intentionally thin: it is not a full ECMAScript DOM
// binding (the teacher's own js/dom_bindings.go and js/events.go already
// are one, for goja specifically) — it exists to demonstrate §6's "binding
// layer wraps the C-ABI as ECMAScript properties/methods" contract and
// §4.6/§4.8's "callbacks invoked through a host-supplied trampoline"
// requirement using the one JS engine the pack already depends on.
package goja

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/chrisuehlinger/domkernel/dom"
	"github.com/chrisuehlinger/domkernel/event"
	"github.com/chrisuehlinger/domkernel/reaction"
)

// EventToValue projects a *event.Event into the goja.Value a script-level
// listener receives. A binding layer owns this projection (typically a
// goja.Object mirroring Event's properties plus a preventDefault/
// stopPropagation pair that call back into the *event.Event); this package
// only needs the result.
type EventToValue func(*event.Event) goja.Value

// EventListener adapts a goja.Callable to event.Callback, the function-
// listener branch of the teacher's js/events.go addEventListener split
// (function vs. object-with-handleEvent, see EventListenerObject for the
// latter). The JS 'this' binding follows the teacher's convention of
// passing currentTarget; thisValue supplies it per dispatch since it
// changes as dispatch walks the event path.
type EventListener struct {
	fn        goja.Callable
	toValue   EventToValue
	thisValue func(*event.Event) goja.Value
}

// NewEventListener wraps fn as an event.Callback. toValue projects the
// event for the script; thisValue supplies the 'this' binding (typically
// the goja.Value for e.CurrentTarget).
func NewEventListener(fn goja.Callable, toValue EventToValue, thisValue func(*event.Event) goja.Value) *EventListener {
	return &EventListener{fn: fn, toValue: toValue, thisValue: thisValue}
}

// HandleEvent implements event.Callback.
func (l *EventListener) HandleEvent(e *event.Event) error {
	_, err := l.fn(l.thisValue(e), l.toValue(e))
	if err == nil {
		return nil
	}
	if exc, ok := err.(*goja.Exception); ok {
		return fmt.Errorf("listener for %q threw: %v", e.Type, exc.Value())
	}
	return err
}

var _ event.Callback = (*EventListener)(nil)

// EventListenerObject adapts a goja.Object exposing a handleEvent method,
// per the teacher's object-listener branch: handleEvent is looked up fresh
// on every invocation rather than cached, so a getter-backed handleEvent
// property is honored each dispatch.
type EventListenerObject struct {
	obj     *goja.Object
	toValue EventToValue
}

func NewEventListenerObject(obj *goja.Object, toValue EventToValue) *EventListenerObject {
	return &EventListenerObject{obj: obj, toValue: toValue}
}

// HandleEvent implements event.Callback.
func (l *EventListenerObject) HandleEvent(e *event.Event) error {
	handleEventVal := l.obj.Get("handleEvent")
	fn, ok := goja.AssertFunction(handleEventVal)
	if !ok {
		return fmt.Errorf("handleEvent is not a function")
	}
	_, err := fn(l.obj, l.toValue(e))
	if err == nil {
		return nil
	}
	if exc, ok := err.(*goja.Exception); ok {
		return fmt.Errorf("listener for %q threw: %v", e.Type, exc.Value())
	}
	return err
}

var _ event.Callback = (*EventListenerObject)(nil)

// NodeFilter adapts a goja.Callable to dom.NodeFilter, for NodeIterator/
// TreeWalker filter callbacks (§4.9). nodeToValue projects a *dom.Node
// into the goja.Value the script expects.
type NodeFilter struct {
	fn          goja.Callable
	nodeToValue func(*dom.Node) goja.Value
}

func NewNodeFilter(fn goja.Callable, nodeToValue func(*dom.Node) goja.Value) *NodeFilter {
	return &NodeFilter{fn: fn, nodeToValue: nodeToValue}
}

// AcceptNode implements dom.NodeFilter. A thrown exception or a return
// value outside {1,2,3} is treated as FilterReject, the conservative
// choice — skipping the subtree a misbehaving filter touched rather than
// risking it being silently treated as FilterAccept.
func (f *NodeFilter) AcceptNode(n *dom.Node) dom.FilterResult {
	result, err := f.fn(goja.Undefined(), f.nodeToValue(n))
	if err != nil {
		return dom.FilterReject
	}
	switch result.ToInteger() {
	case int64(dom.FilterAccept):
		return dom.FilterAccept
	case int64(dom.FilterSkip):
		return dom.FilterSkip
	default:
		return dom.FilterReject
	}
}

var _ dom.NodeFilter = (*NodeFilter)(nil)

// ReactionTrampoline adapts per-reaction goja.Callables to reaction.Callback,
// invoked at [CEReactions] scope exit (§4.8). callbackFor looks up the
// lifecycle method (connectedCallback, attributeChangedCallback, ...) for
// r's element's custom-element definition and the positional arguments its
// Kind calls for; it is supplied by the caller since this package has no
// custom-element registry of its own to resolve definitions from.
type ReactionTrampoline struct {
	elementToValue func(*dom.Node) goja.Value
	callbackFor    func(r *reaction.Reaction) (fn goja.Callable, args []goja.Value, ok bool)
}

func NewReactionTrampoline(
	elementToValue func(*dom.Node) goja.Value,
	callbackFor func(r *reaction.Reaction) (goja.Callable, []goja.Value, bool),
) *ReactionTrampoline {
	return &ReactionTrampoline{elementToValue: elementToValue, callbackFor: callbackFor}
}

// Invoke is a reaction.Callback (reaction.Callback is a function type, not
// an interface — pass t.Invoke directly to reaction.NewStack). If
// callbackFor reports no callback is registered for r (e.g. the element's
// definition doesn't define attributeChangedCallback), Invoke is a no-op
// success — an unregistered reaction callback is not an error per §4.8.
func (t *ReactionTrampoline) Invoke(r *reaction.Reaction) error {
	fn, args, ok := t.callbackFor(r)
	if !ok {
		return nil
	}
	this := t.elementToValue(r.Element)
	_, err := fn(this, args...)
	if err == nil {
		return nil
	}
	if exc, ok := err.(*goja.Exception); ok {
		return fmt.Errorf("reaction callback threw: %v", exc.Value())
	}
	return err
}

var _ reaction.Callback = (*ReactionTrampoline)(nil).Invoke
