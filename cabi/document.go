package cabi

import "github.com/chrisuehlinger/domkernel/dom"

func (s *Surface) resolveDocument(h Handle) (*dom.Document, Code) {
	v, ok := s.table.Resolve(h)
	if !ok {
		return nil, NotFoundError
	}
	d, ok := v.(*dom.Document)
	if !ok {
		return nil, InvalidStateError
	}
	return d, Success
}

// WrapDocument mints a handle for doc.
func (s *Surface) WrapDocument(doc *dom.Document) Handle {
	if doc == nil {
		return Handle{}
	}
	return s.table.New(doc)
}

// CreateElement wraps dom.Document.CreateElement, returning a handle to the
// new element's underlying node.
func (s *Surface) CreateElement(docHandle Handle, tagName string) (Handle, Code) {
	doc, code := s.resolveDocument(docHandle)
	if code != Success {
		return Handle{}, code
	}
	el := doc.CreateElement(tagName)
	return s.WrapNode(el.AsNode()), Success
}

// GetElementById wraps dom.Document.GetElementById, the accelerator-index
// lookup §4.4 guarantees is O(1) amortized.
func (s *Surface) GetElementById(docHandle Handle, id string) (Handle, Code) {
	doc, code := s.resolveDocument(docHandle)
	if code != Success {
		return Handle{}, code
	}
	el := doc.GetElementById(id)
	if el == nil {
		return Handle{}, Success
	}
	return s.WrapNode(el.AsNode()), Success
}

// DocumentNode wraps dom.Document.AsNode for handing the document's root
// node into the rest of the node-accessor surface.
func (s *Surface) DocumentNode(docHandle Handle) (Handle, Code) {
	doc, code := s.resolveDocument(docHandle)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapNode(doc.AsNode()), Success
}
