package event

import "testing"

type fakeNode struct {
	parent *fakeNode
	host   *fakeNode
	target *Target
}

func newFakeNode() *fakeNode { return &fakeNode{target: NewTarget()} }

func (n *fakeNode) EventParent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}
func (n *fakeNode) EventTarget() *Target { return n.target }
func (n *fakeNode) ShadowHost() Node {
	if n.host == nil {
		return nil
	}
	return n.host
}

func record(flag *string, tag string) CallbackFunc {
	return func(e *Event) error {
		*flag += tag
		return nil
	}
}

func TestDispatchBubblesInOrder(t *testing.T) {
	grand, parent, child := newFakeNode(), newFakeNode(), newFakeNode()
	parent.parent = grand
	child.parent = parent

	var order string
	grand.EventTarget().AddEventListener("click", record(&order, "G"), ListenOptions{})
	parent.EventTarget().AddEventListener("click", record(&order, "P"), ListenOptions{})
	child.EventTarget().AddEventListener("click", record(&order, "C"), ListenOptions{})

	e := NewEvent("click", true, true, false)
	ok, err := Dispatch(child, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected dispatch to return true (not canceled)")
	}
	if order != "CPG" {
		t.Fatalf("want CPG, got %s", order)
	}
}

func TestStopPropagationSuppressesOuterListeners(t *testing.T) {
	grand, parent, child := newFakeNode(), newFakeNode(), newFakeNode()
	parent.parent = grand
	child.parent = parent

	var grandFired, parentFired bool
	grand.EventTarget().AddEventListener("click", CallbackFunc(func(e *Event) error {
		grandFired = true
		return nil
	}), ListenOptions{})
	parent.EventTarget().AddEventListener("click", CallbackFunc(func(e *Event) error {
		parentFired = true
		e.StopPropagation()
		return nil
	}), ListenOptions{})

	e := NewEvent("click", true, true, false)
	if _, err := Dispatch(child, e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !parentFired {
		t.Fatalf("expected parent listener to fire")
	}
	if grandFired {
		t.Fatalf("expected stopPropagation to suppress grandparent listener")
	}
}

func TestPassiveListenerCannotPreventDefault(t *testing.T) {
	n := newFakeNode()
	n.EventTarget().AddEventListener("click", CallbackFunc(func(e *Event) error {
		e.PreventDefault()
		return nil
	}), ListenOptions{Passive: true})

	e := NewEvent("click", false, true, false)
	ok, _ := Dispatch(n, e)
	if !ok {
		t.Fatalf("passive listener's preventDefault must not take effect")
	}
	if e.DefaultPrevented() {
		t.Fatalf("defaultPrevented must remain false for a passive listener")
	}
}

func TestOnceListenerFiresOnlyOnce(t *testing.T) {
	n := newFakeNode()
	count := 0
	n.EventTarget().AddEventListener("click", CallbackFunc(func(e *Event) error {
		count++
		return nil
	}), ListenOptions{Once: true})

	Dispatch(n, NewEvent("click", false, false, false))
	Dispatch(n, NewEvent("click", false, false, false))

	if count != 1 {
		t.Fatalf("want 1 invocation, got %d", count)
	}
}

func TestAbortSignalRemovesListener(t *testing.T) {
	n := newFakeNode()
	ctrl := NewAbortController()
	fired := false
	n.EventTarget().AddEventListener("click", CallbackFunc(func(e *Event) error {
		fired = true
		return nil
	}), ListenOptions{Signal: ctrl.Signal()})

	ctrl.Abort(nil)
	Dispatch(n, NewEvent("click", false, false, false))

	if fired {
		t.Fatalf("listener should have been removed on abort")
	}
}

func TestTargetPhaseRunsInInsertionOrder(t *testing.T) {
	n := newFakeNode()

	var order string
	n.EventTarget().AddEventListener("click", record(&order, "N"), ListenOptions{})
	n.EventTarget().AddEventListener("click", record(&order, "C"), ListenOptions{Capture: true})

	if _, err := Dispatch(n, NewEvent("click", false, false, false)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order != "NC" {
		t.Fatalf("want NC (insertion order, not capture-first), got %s", order)
	}
}

func TestReentrantDispatchRejected(t *testing.T) {
	n := newFakeNode()
	e := NewEvent("click", false, false, false)
	n.EventTarget().AddEventListener("click", CallbackFunc(func(inner *Event) error {
		_, err := Dispatch(n, e)
		if err != ErrAlreadyDispatching {
			t.Fatalf("want ErrAlreadyDispatching, got %v", err)
		}
		return nil
	}), ListenOptions{})

	if _, err := Dispatch(n, e); err != nil {
		t.Fatalf("outer dispatch should not itself error: %v", err)
	}
}
