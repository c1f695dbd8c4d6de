package cabi

import (
	"math"
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

func TestHandleRoundTrip(t *testing.T) {
	tbl := NewTable()
	h := tbl.New("hello")
	v, ok := tbl.Resolve(h)
	if !ok || v.(string) != "hello" {
		t.Fatalf("want resolved value hello, got %v ok=%v", v, ok)
	}
	tbl.Release(h)
	if _, ok := tbl.Resolve(h); ok {
		t.Fatalf("expected handle to be gone after release")
	}
}

func TestDoubleReleaseReportsAnomaly(t *testing.T) {
	tbl := NewTable()
	h := tbl.New(42)
	var anomalies []string
	tbl.SetAnomalyLogger(func(kind string, got Handle) {
		anomalies = append(anomalies, kind)
	})
	tbl.Release(h)
	tbl.Release(h)
	if len(anomalies) != 1 || anomalies[0] != "double-release" {
		t.Fatalf("want one double-release anomaly, got %v", anomalies)
	}
}

func TestAcquireExtendsLifetime(t *testing.T) {
	tbl := NewTable()
	h := tbl.New("x")
	tbl.Acquire(h)
	tbl.Release(h)
	if _, ok := tbl.Resolve(h); !ok {
		t.Fatalf("expected handle to survive one release after one extra acquire")
	}
	tbl.Release(h)
	if _, ok := tbl.Resolve(h); ok {
		t.Fatalf("expected handle to be gone after matching release")
	}
}

func TestAcquireOverflowPanics(t *testing.T) {
	tbl := NewTable()
	h := tbl.New("x")
	e := tbl.entries[h]
	e.refcount = math.MaxInt

	defer func() {
		if recover() == nil {
			t.Fatal("expected Acquire at math.MaxInt refcount to panic")
		}
	}()
	tbl.Acquire(h)
}

func TestSurfaceNodeAccessors(t *testing.T) {
	doc := newTestDoc()
	root := doc.CreateElement("root")
	doc.AsNode().AppendChild(root.AsNode())
	child := doc.CreateElement("child")
	root.AsNode().AppendChild(child.AsNode())

	s := NewSurface()
	docH := s.WrapDocument(doc)
	rootH, code := s.DocumentNode(docH)
	if code != Success {
		t.Fatalf("unexpected code %v", code)
	}
	_ = rootH

	elH := s.WrapNode(root.AsNode())
	tagName, code := s.TagName(elH)
	if code != Success || tagName != "root" {
		t.Fatalf("want tagName root, got %q code=%v", tagName, code)
	}

	n, code := s.ChildNodesLength(elH)
	if code != Success || n != 1 {
		t.Fatalf("want 1 child, got %d code=%v", n, code)
	}

	childH, code := s.FirstChild(elH)
	if code != Success || childH.IsNil() {
		t.Fatalf("expected a first-child handle")
	}
	childTag, code := s.TagName(childH)
	if code != Success || childTag != "child" {
		t.Fatalf("want tagName child, got %q", childTag)
	}
}

func TestSurfaceSetAndGetAttribute(t *testing.T) {
	doc := newTestDoc()
	el := doc.CreateElement("div")
	doc.AsNode().AppendChild(el.AsNode())

	s := NewSurface()
	h := s.WrapNode(el.AsNode())

	if code := s.SetAttribute(h, "class", "widget"); code != Success {
		t.Fatalf("unexpected code %v", code)
	}
	value, present, code := s.GetAttribute(h, "class")
	if code != Success || !present || value != "widget" {
		t.Fatalf("want class=widget, got %q present=%v code=%v", value, present, code)
	}

	_, present, _ = s.GetAttribute(h, "missing")
	if present {
		t.Fatalf("expected missing attribute to report present=false")
	}
}

func TestResolveUnknownHandleIsNotFound(t *testing.T) {
	s := NewSurface()
	_, code := s.TagName(Handle{})
	if code != NotFoundError {
		t.Fatalf("want NotFoundError for a never-minted handle, got %v", code)
	}
}
