package cabi

import (
	"testing"

	"github.com/chrisuehlinger/domkernel/dom"
	"github.com/chrisuehlinger/domkernel/event"
	"github.com/chrisuehlinger/domkernel/mutation"
)

func TestSurfaceRangeDeleteContents(t *testing.T) {
	doc := newTestDoc()
	root := doc.CreateElement("root")
	doc.AsNode().AppendChild(root.AsNode())
	text := doc.CreateTextNode("hello world")
	root.AsNode().AppendChild(text)

	s := NewSurface()
	docH := s.WrapDocument(doc)
	rangeH, code := s.CreateRange(docH)
	if code != Success {
		t.Fatalf("unexpected code %v", code)
	}

	textH := s.WrapNode(text)
	if code := s.RangeSetStart(rangeH, textH, 0); code != Success {
		t.Fatalf("SetStart: %v", code)
	}
	if code := s.RangeSetEnd(rangeH, textH, 5); code != Success {
		t.Fatalf("SetEnd: %v", code)
	}
	str, code := s.RangeToString(rangeH)
	if code != Success || str != "hello" {
		t.Fatalf("want %q, got %q code=%v", "hello", str, code)
	}

	if code := s.RangeDeleteContents(rangeH); code != Success {
		t.Fatalf("DeleteContents: %v", code)
	}
	if got := text.TextContent(); got != " world" {
		t.Fatalf("want %q after delete, got %q", " world", got)
	}
}

func TestSurfaceEventDispatch(t *testing.T) {
	doc := newTestDoc()
	parent := doc.CreateElement("parent")
	doc.AsNode().AppendChild(parent.AsNode())
	child := doc.CreateElement("child")
	parent.AsNode().AppendChild(child.AsNode())

	s := NewSurface()
	parentH := s.WrapNode(parent.AsNode())
	childH := s.WrapNode(child.AsNode())

	var bubbled bool
	cb := event.CallbackFunc(func(e *event.Event) error {
		bubbled = true
		return nil
	})
	if code := s.AddEventListener(parentH, "click", cb, event.ListenOptions{}); code != Success {
		t.Fatalf("AddEventListener: %v", code)
	}

	eventH := s.CreateEvent("click", true, true, false)
	ok, code := s.DispatchEvent(childH, eventH)
	if code != Success {
		t.Fatalf("DispatchEvent: %v", code)
	}
	if !ok {
		t.Fatalf("want dispatch to report not-canceled")
	}
	if !bubbled {
		t.Fatalf("expected bubbling listener on parent to fire")
	}
}

func TestSurfaceAbortSignalRemovesListener(t *testing.T) {
	doc := newTestDoc()
	el := doc.CreateElement("el")
	doc.AsNode().AppendChild(el.AsNode())

	s := NewSurface()
	elH := s.WrapNode(el.AsNode())
	controllerH := s.CreateAbortController()
	signalH, code := s.AbortControllerSignal(controllerH)
	if code != Success {
		t.Fatalf("AbortControllerSignal: %v", code)
	}
	sig, code := s.resolveAbortSignal(signalH)
	if code != Success {
		t.Fatalf("resolveAbortSignal: %v", code)
	}

	var calls int
	cb := event.CallbackFunc(func(e *event.Event) error {
		calls++
		return nil
	})
	if code := s.AddEventListener(elH, "go", cb, event.ListenOptions{Signal: sig}); code != Success {
		t.Fatalf("AddEventListener: %v", code)
	}
	if code := s.AbortControllerAbort(controllerH, nil); code != Success {
		t.Fatalf("AbortControllerAbort: %v", code)
	}

	eventH := s.CreateEvent("go", false, false, false)
	if _, code := s.DispatchEvent(elH, eventH); code != Success {
		t.Fatalf("DispatchEvent: %v", code)
	}
	if calls != 0 {
		t.Fatalf("want listener removed by abort, got %d calls", calls)
	}
}

func TestSurfaceMutationObserverBatch(t *testing.T) {
	doc := newTestDoc()
	root := doc.CreateElement("root")
	doc.AsNode().AppendChild(root.AsNode())

	s := NewSurface()
	rootH := s.WrapNode(root.AsNode())

	var records []*mutation.Record
	observerH := s.CreateMutationObserver(func(rs []*mutation.Record, o *mutation.Observer) {
		records = append(records, rs...)
	}, nil)

	if code := s.MutationObserverObserve(observerH, rootH, mutation.Options{ChildList: true}); code != Success {
		t.Fatalf("Observe: %v", code)
	}

	for i := 0; i < 3; i++ {
		child := doc.CreateElement("child")
		root.AsNode().AppendChild(child.AsNode())
	}

	if code := s.MutationObserverDrain(observerH); code != Success {
		t.Fatalf("Drain: %v", code)
	}
	if len(records) != 3 {
		t.Fatalf("want 3 childList records, got %d", len(records))
	}
}

func TestSurfaceTreeWalkerNavigation(t *testing.T) {
	doc := newTestDoc()
	root := doc.CreateElement("root")
	doc.AsNode().AppendChild(root.AsNode())
	a := doc.CreateElement("a")
	root.AsNode().AppendChild(a.AsNode())
	b := doc.CreateElement("b")
	root.AsNode().AppendChild(b.AsNode())

	s := NewSurface()
	docH := s.WrapDocument(doc)
	rootH := s.WrapNode(root.AsNode())

	twH, code := s.CreateTreeWalker(docH, rootH, dom.ShowAll, nil)
	if code != Success {
		t.Fatalf("CreateTreeWalker: %v", code)
	}

	firstH, code := s.TreeWalkerFirstChild(twH)
	if code != Success || firstH.IsNil() {
		t.Fatalf("want a first child handle, code=%v", code)
	}
	tagName, code := s.TagName(firstH)
	if code != Success || tagName != "a" {
		t.Fatalf("want tagName a, got %q", tagName)
	}

	nextH, code := s.TreeWalkerNextSibling(twH)
	if code != Success || nextH.IsNil() {
		t.Fatalf("want a next-sibling handle, code=%v", code)
	}
	tagName, code = s.TagName(nextH)
	if code != Success || tagName != "b" {
		t.Fatalf("want tagName b, got %q", tagName)
	}
}

func TestSurfaceClassListAndAttributes(t *testing.T) {
	doc := newTestDoc()
	el := doc.CreateElement("div")
	doc.AsNode().AppendChild(el.AsNode())
	el.SetAttribute("class", "a b")

	s := NewSurface()
	elH := s.WrapNode(el.AsNode())

	clH, code := s.ClassList(elH)
	if code != Success {
		t.Fatalf("ClassList: %v", code)
	}
	n, code := s.DOMTokenListLength(clH)
	if code != Success || n != 2 {
		t.Fatalf("want 2 tokens, got %d code=%v", n, code)
	}
	if code := s.DOMTokenListAdd(clH, "c"); code != Success {
		t.Fatalf("Add: %v", code)
	}
	if ok, code := s.DOMTokenListContains(clH, "c"); code != Success || !ok {
		t.Fatalf("want contains(c), got %v code=%v", ok, code)
	}

	attrsH, code := s.Attributes(elH)
	if code != Success {
		t.Fatalf("Attributes: %v", code)
	}
	attrLen, code := s.NamedNodeMapLength(attrsH)
	if code != Success || attrLen != 1 {
		t.Fatalf("want 1 attribute, got %d code=%v", attrLen, code)
	}
	attrH, code := s.NamedNodeMapGetNamedItem(attrsH, "class")
	if code != Success || attrH.IsNil() {
		t.Fatalf("want class attr handle, code=%v", code)
	}
	val, code := s.AttrValue(attrH)
	if code != Success || val != "a b c" {
		t.Fatalf("want value %q, got %q", "a b c", val)
	}
}

func TestSurfaceGetElementsByTagName(t *testing.T) {
	doc := newTestDoc()
	root := doc.CreateElement("root")
	doc.AsNode().AppendChild(root.AsNode())
	for i := 0; i < 2; i++ {
		child := doc.CreateElement("item")
		root.AsNode().AppendChild(child.AsNode())
	}

	s := NewSurface()
	docH := s.WrapDocument(doc)
	hcH, code := s.GetElementsByTagName(docH, "item")
	if code != Success {
		t.Fatalf("GetElementsByTagName: %v", code)
	}
	n, code := s.HTMLCollectionLength(hcH)
	if code != Success || n != 2 {
		t.Fatalf("want 2 items, got %d code=%v", n, code)
	}
}
