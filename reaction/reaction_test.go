package reaction

import (
	"testing"

	"github.com/chrisuehlinger/domkernel/dom"
)

func newTestElement(doc *dom.Document, name string) *dom.Node {
	return doc.CreateElement(name).AsNode()
}

func newTestDoc() *dom.Document {
	impl := &dom.DOMImplementation{}
	doc, err := impl.CreateDocumentWithError("", "", nil)
	if err != nil {
		panic(err)
	}
	return doc
}

func TestPopInvokesInFIFOOrderPerElement(t *testing.T) {
	doc := newTestDoc()
	a := newTestElement(doc, "a")
	b := newTestElement(doc, "b")

	var order []string
	s := NewStack(func(r *Reaction) error {
		order = append(order, r.AttributeName)
		return nil
	})

	s.Push()
	s.Enqueue(&Reaction{Kind: AttributeChanged, Element: a, AttributeName: "a1"})
	s.Enqueue(&Reaction{Kind: AttributeChanged, Element: b, AttributeName: "b1"})
	s.Enqueue(&Reaction{Kind: AttributeChanged, Element: a, AttributeName: "a2"})
	s.Pop()

	want := []string{"a1", "a2", "b1"}
	if len(order) != len(want) {
		t.Fatalf("want %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("want %v, got %v", want, order)
		}
	}
}

func TestNestedScopesDrainIndependently(t *testing.T) {
	doc := newTestDoc()
	el := newTestElement(doc, "x")

	var order []string
	s := NewStack(func(r *Reaction) error {
		order = append(order, r.AttributeName)
		return nil
	})

	s.Push()
	s.Enqueue(&Reaction{Kind: AttributeChanged, Element: el, AttributeName: "outer"})
	s.Push()
	s.Enqueue(&Reaction{Kind: AttributeChanged, Element: el, AttributeName: "inner"})
	s.Pop()
	if len(order) != 1 || order[0] != "inner" {
		t.Fatalf("want inner drained first, got %v", order)
	}
	s.Pop()
	if len(order) != 2 || order[1] != "outer" {
		t.Fatalf("want outer drained second, got %v", order)
	}
}

func TestEnqueueWithoutScopeUsesBackupQueue(t *testing.T) {
	doc := newTestDoc()
	el := newTestElement(doc, "y")

	fired := false
	s := NewStack(func(r *Reaction) error {
		fired = true
		return nil
	})

	s.Enqueue(&Reaction{Kind: Connected, Element: el})

	if !fired {
		t.Fatalf("expected backup queue to drain immediately")
	}
	if s.Depth() != 0 {
		t.Fatalf("backup-queue drain must not leave the scope stack non-empty")
	}
}

func TestErrorHandlerReceivesReactionErrors(t *testing.T) {
	doc := newTestDoc()
	el := newTestElement(doc, "z")

	boom := errBoom{}
	var caught error
	s := NewStack(func(r *Reaction) error { return boom })
	s.SetErrorHandler(func(err error) { caught = err })

	s.Push()
	s.Enqueue(&Reaction{Kind: Upgrade, Element: el})
	s.Pop()

	if caught != boom {
		t.Fatalf("want error handler to receive the reaction error")
	}
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }
