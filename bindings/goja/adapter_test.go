package goja

import (
	"testing"

	"github.com/dop251/goja"

	"github.com/chrisuehlinger/domkernel/dom"
	"github.com/chrisuehlinger/domkernel/event"
)

func TestEventListenerInvokesJSFunction(t *testing.T) {
	vm := goja.New()
	var gotType string
	vm.Set("record", func(call goja.FunctionCall) goja.Value {
		gotType = call.Argument(0).String()
		return goja.Undefined()
	})
	fnVal, err := vm.RunString(`(function(e) { record(e.type); })`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn, ok := goja.AssertFunction(fnVal)
	if !ok {
		t.Fatalf("expected a callable")
	}

	listener := NewEventListener(fn,
		func(e *event.Event) goja.Value {
			obj := vm.NewObject()
			obj.Set("type", e.Type)
			return obj
		},
		func(e *event.Event) goja.Value { return goja.Undefined() },
	)

	e := event.NewEvent("click", true, true, false)
	if err := listener.HandleEvent(e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotType != "click" {
		t.Fatalf("want click, got %q", gotType)
	}
}

func TestEventListenerPropagatesThrow(t *testing.T) {
	vm := goja.New()
	fnVal, err := vm.RunString(`(function(e) { throw new Error("boom"); })`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn, _ := goja.AssertFunction(fnVal)

	listener := NewEventListener(fn,
		func(e *event.Event) goja.Value { return goja.Undefined() },
		func(e *event.Event) goja.Value { return goja.Undefined() },
	)

	if err := listener.HandleEvent(event.NewEvent("x", false, false, false)); err == nil {
		t.Fatalf("expected the thrown JS error to propagate")
	}
}

func TestNodeFilterMapsReturnTwoToReject(t *testing.T) {
	vm := goja.New()
	fnVal, err := vm.RunString(`(function(n) { return n === 1 ? 2 : 1; })`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn, _ := goja.AssertFunction(fnVal)

	filter := NewNodeFilter(fn, func(n *dom.Node) goja.Value { return vm.ToValue(1) })
	if got := filter.AcceptNode(nil); got != dom.FilterReject {
		t.Fatalf("want FilterReject, got %v", got)
	}
}
