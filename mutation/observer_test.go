package mutation

import (
	"testing"

	"github.com/chrisuehlinger/domkernel/dom"
)

func newTestDoc() *dom.Document {
	impl := &dom.DOMImplementation{}
	doc, err := impl.CreateDocumentWithError("", "", nil)
	if err != nil {
		panic(err)
	}
	return doc
}

func TestChildListBatchIsOneRecord(t *testing.T) {
	doc := newTestDoc()
	root := doc.CreateElement("root")
	doc.AsNode().AppendChild(root.AsNode())

	var delivered []*Record
	obs := NewObserver(func(records []*Record, o *Observer) {
		delivered = append(delivered, records...)
	}, nil)
	obs.Observe(root.AsNode(), Options{ChildList: true, Subtree: true})

	frag := doc.CreateDocumentFragment()
	for _, text := range []string{"a", "b", "c"} {
		frag.AsNode().AppendChild(doc.CreateTextNode(text))
	}
	root.AsNode().AppendChild(frag.AsNode())

	obs.Drain()

	if len(delivered) != 1 {
		t.Fatalf("want exactly 1 record for the fragment insert, got %d", len(delivered))
	}
	if len(delivered[0].AddedNodes) != 3 {
		t.Fatalf("want 3 addedNodes, got %d", len(delivered[0].AddedNodes))
	}
}

func TestAttributeOldValueRespectsOption(t *testing.T) {
	doc := newTestDoc()
	el := doc.CreateElement("div")
	doc.AsNode().AppendChild(el.AsNode())
	el.SetAttribute("data-x", "1")

	var got *Record
	obs := NewObserver(func(records []*Record, o *Observer) {
		got = records[len(records)-1]
	}, nil)
	obs.Observe(el.AsNode(), Options{Attributes: true, AttributeOldValue: true})

	el.SetAttribute("data-x", "2")
	obs.Drain()

	if got == nil {
		t.Fatalf("expected a delivered record")
	}
	if got.OldValue == nil || *got.OldValue != "1" {
		t.Fatalf("want old value \"1\", got %v", got.OldValue)
	}
}

func TestDisconnectStopsDelivery(t *testing.T) {
	doc := newTestDoc()
	el := doc.CreateElement("div")
	doc.AsNode().AppendChild(el.AsNode())

	fired := false
	obs := NewObserver(func(records []*Record, o *Observer) { fired = true }, nil)
	obs.Observe(el.AsNode(), Options{Attributes: true})
	obs.Disconnect()

	el.SetAttribute("data-x", "1")
	obs.Drain()

	if fired {
		t.Fatalf("observer should not deliver records after Disconnect")
	}
}
