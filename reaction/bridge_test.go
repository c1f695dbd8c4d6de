package reaction

import (
	"testing"

	"github.com/chrisuehlinger/domkernel/dom"
)

func TestBridgeEnqueuesConnectedOnAppend(t *testing.T) {
	doc := newTestDoc()
	root := newTestElement(doc, "root")
	doc.AsNode().AppendChild(root)
	custom := newTestElement(doc, "my-widget")

	var fired []Kind
	s := NewStack(func(r *Reaction) error {
		fired = append(fired, r.Kind)
		return nil
	})
	bridge := NewBridge(s, func(n *dom.Node) bool { return true })
	dom.RegisterMutationCallback(doc, bridge)

	root.AppendChild(custom)

	if len(fired) != 1 || fired[0] != Connected {
		t.Fatalf("want one Connected reaction, got %v", fired)
	}
}

func TestBridgeRespectsIsCustomPredicate(t *testing.T) {
	doc := newTestDoc()
	root := newTestElement(doc, "root")
	doc.AsNode().AppendChild(root)
	plain := newTestElement(doc, "div")

	fired := false
	s := NewStack(func(r *Reaction) error {
		fired = true
		return nil
	})
	bridge := NewBridge(s, func(n *dom.Node) bool { return false })
	dom.RegisterMutationCallback(doc, bridge)

	root.AppendChild(plain)

	if fired {
		t.Fatalf("isCustom predicate returning false must suppress reactions")
	}
}

func TestBridgeSkipsConnectedForDetachedAppend(t *testing.T) {
	doc := newTestDoc()
	frag := doc.CreateDocumentFragment()
	custom := newTestElement(doc, "my-widget")

	var fired []Kind
	s := NewStack(func(r *Reaction) error {
		fired = append(fired, r.Kind)
		return nil
	})
	bridge := NewBridge(s, func(n *dom.Node) bool { return true })
	dom.RegisterMutationCallback(doc, bridge)

	frag.AsNode().AppendChild(custom)

	if len(fired) != 0 {
		t.Fatalf("appending into a detached DocumentFragment must not fire Connected, got %v", fired)
	}
}

func TestBridgeSkipsDisconnectedForAlreadyDetachedSubtree(t *testing.T) {
	doc := newTestDoc()
	detachedParent := newTestElement(doc, "detached-parent")
	custom := newTestElement(doc, "my-widget")
	detachedParent.AppendChild(custom)

	var fired []Kind
	s := NewStack(func(r *Reaction) error {
		fired = append(fired, r.Kind)
		return nil
	})
	bridge := NewBridge(s, func(n *dom.Node) bool { return true })
	dom.RegisterMutationCallback(doc, bridge)

	detachedParent.RemoveChild(custom)

	if len(fired) != 0 {
		t.Fatalf("removing from an already-disconnected subtree must not fire Disconnected, got %v", fired)
	}
}

func TestBridgeEnqueuesDisconnectedOnRemove(t *testing.T) {
	doc := newTestDoc()
	root := newTestElement(doc, "root")
	doc.AsNode().AppendChild(root)
	custom := newTestElement(doc, "my-widget")
	root.AppendChild(custom)

	var fired []Kind
	s := NewStack(func(r *Reaction) error {
		fired = append(fired, r.Kind)
		return nil
	})
	bridge := NewBridge(s, func(n *dom.Node) bool { return true })
	dom.RegisterMutationCallback(doc, bridge)

	root.RemoveChild(custom)

	if len(fired) != 1 || fired[0] != Disconnected {
		t.Fatalf("want one Disconnected reaction, got %v", fired)
	}
}

func TestBridgeEnqueuesAttributeChanged(t *testing.T) {
	doc := newTestDoc()
	el := newTestElement(doc, "my-widget")
	doc.AsNode().AppendChild(el)

	var got *Reaction
	s := NewStack(func(r *Reaction) error {
		got = r
		return nil
	})
	bridge := NewBridge(s, nil)
	dom.RegisterMutationCallback(doc, bridge)

	(*dom.Element)(el).SetAttribute("foo", "bar")

	if got == nil || got.Kind != AttributeChanged || got.AttributeName != "foo" {
		t.Fatalf("want AttributeChanged reaction for foo, got %+v", got)
	}
}
