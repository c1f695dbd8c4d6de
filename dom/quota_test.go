package dom

import (
	"testing"

	"github.com/chrisuehlinger/domkernel/event"
)

func TestDocument_QuotaMaxNodes(t *testing.T) {
	doc := NewDocument()
	doc.SetQuota(Quota{MaxNodes: 2})

	if _, err := doc.CreateElementWithError("div"); err != nil {
		t.Fatalf("first CreateElement: unexpected error %v", err)
	}
	if _, err := doc.CreateElementWithError("span"); err != nil {
		t.Fatalf("second CreateElement: unexpected error %v", err)
	}
	_, err := doc.CreateElementWithError("p")
	if err == nil {
		t.Fatal("third CreateElement: expected QuotaExceededError, got nil")
	}
	domErr, ok := err.(*DOMError)
	if !ok || domErr.Name != "QuotaExceededError" {
		t.Errorf("expected QuotaExceededError, got %v", err)
	}
}

func TestDocument_QuotaMaxNodesLogsOnce(t *testing.T) {
	doc := NewDocument()
	var logged []string
	doc.SetQuota(Quota{MaxNodes: 1, SecurityLogger: func(kind, detail string) {
		logged = append(logged, kind)
	}})

	if _, err := doc.CreateElementWithError("div"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if _, err := doc.CreateElementWithError("span"); err == nil {
		t.Fatal("expected quota error")
	}
	if len(logged) != 1 || logged[0] != "node" {
		t.Errorf("expected one 'node' log entry, got %v", logged)
	}
}

func TestDocument_QuotaZeroValueUnlimited(t *testing.T) {
	doc := NewDocument()
	for i := 0; i < 50; i++ {
		if doc.CreateElement("div") == nil {
			t.Fatalf("CreateElement unexpectedly returned nil at iteration %d", i)
		}
	}
}

func TestElement_QuotaMaxAttributes(t *testing.T) {
	doc := NewDocument()
	doc.SetQuota(Quota{MaxAttributesPerElement: 2})
	el := doc.CreateElement("div")
	doc.AsNode().AppendChild(el.AsNode())

	if err := el.SetAttributeWithError("a", "1"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := el.SetAttributeWithError("b", "2"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	// Updating an existing attribute's value must not count against the cap.
	if err := el.SetAttributeWithError("a", "updated"); err != nil {
		t.Fatalf("update of existing attribute should not trip quota: %v", err)
	}
	if err := el.SetAttributeWithError("c", "3"); err == nil {
		t.Fatal("expected QuotaExceededError adding a third attribute")
	}
}

func TestNode_QuotaMaxListeners(t *testing.T) {
	doc := NewDocument()
	doc.SetQuota(Quota{MaxListenersPerTarget: 1})
	el := doc.CreateElement("div")
	doc.AsNode().AppendChild(el.AsNode())

	cb := event.CallbackFunc(func(e *event.Event) error { return nil })
	if err := el.AsNode().AddEventListenerWithError("click", cb, event.ListenOptions{}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := el.AsNode().AddEventListenerWithError("hover", cb, event.ListenOptions{}); err == nil {
		t.Fatal("expected QuotaExceededError registering a second listener")
	}
}
