package cabi

import "github.com/chrisuehlinger/domkernel/dom"

// This file covers the remaining live collections §6/§7 (Live collections)
// names: NodeList, HTMLCollection, DOMTokenList, NamedNodeMap. All four
// follow §6's "length(handle)/item(handle, index)" convention; named access
// is added where the WebIDL interface requires it (getNamedItem,
// NamedItem), per §6's surface-convention note.

func (s *Surface) resolveNodeList(h Handle) (*dom.NodeList, Code) {
	v, ok := s.table.Resolve(h)
	if !ok {
		return nil, NotFoundError
	}
	nl, ok := v.(*dom.NodeList)
	if !ok {
		return nil, InvalidStateError
	}
	return nl, Success
}

// WrapNodeList mints a handle for nl, or the zero Handle if nl is nil.
func (s *Surface) WrapNodeList(nl *dom.NodeList) Handle {
	if nl == nil {
		return Handle{}
	}
	return s.table.New(nl)
}

// ChildNodes mints a NodeList handle for a node's childNodes — the
// [SameObject]-backed live view, distinct from ChildNodesLength/
// ChildNodesItem's no-handle fast path in node.go.
func (s *Surface) ChildNodes(nodeHandle Handle) (Handle, Code) {
	n, code := s.resolveNode(nodeHandle)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapNodeList(n.ChildNodes()), Success
}

func (s *Surface) NodeListLength(h Handle) (int, Code) {
	nl, code := s.resolveNodeList(h)
	if code != Success {
		return 0, code
	}
	return nl.Length(), Success
}

func (s *Surface) NodeListItem(h Handle, index int) (Handle, Code) {
	nl, code := s.resolveNodeList(h)
	if code != Success {
		return Handle{}, code
	}
	item := nl.Item(index)
	if item == nil {
		return Handle{}, IndexSizeError
	}
	return s.WrapNode(item), Success
}

func (s *Surface) resolveHTMLCollection(h Handle) (*dom.HTMLCollection, Code) {
	v, ok := s.table.Resolve(h)
	if !ok {
		return nil, NotFoundError
	}
	hc, ok := v.(*dom.HTMLCollection)
	if !ok {
		return nil, InvalidStateError
	}
	return hc, Success
}

// WrapHTMLCollection mints a handle for hc, or the zero Handle if hc is nil.
func (s *Surface) WrapHTMLCollection(hc *dom.HTMLCollection) Handle {
	if hc == nil {
		return Handle{}
	}
	return s.table.New(hc)
}

// GetElementsByTagName and GetElementsByClassName mint HTMLCollection
// handles backed by the document's tag/class accelerator indexes (§4.4).
func (s *Surface) GetElementsByTagName(docHandle Handle, tagName string) (Handle, Code) {
	doc, code := s.resolveDocument(docHandle)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapHTMLCollection(doc.GetElementsByTagName(tagName)), Success
}

func (s *Surface) GetElementsByClassName(docHandle Handle, classNames string) (Handle, Code) {
	doc, code := s.resolveDocument(docHandle)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapHTMLCollection(doc.GetElementsByClassName(classNames)), Success
}

func (s *Surface) HTMLCollectionLength(h Handle) (int, Code) {
	hc, code := s.resolveHTMLCollection(h)
	if code != Success {
		return 0, code
	}
	return hc.Length(), Success
}

func (s *Surface) HTMLCollectionItem(h Handle, index int) (Handle, Code) {
	hc, code := s.resolveHTMLCollection(h)
	if code != Success {
		return Handle{}, code
	}
	el := hc.Item(index)
	if el == nil {
		return Handle{}, IndexSizeError
	}
	return s.WrapNode(el.AsNode()), Success
}

func (s *Surface) HTMLCollectionNamedItem(h Handle, name string) (Handle, Code) {
	hc, code := s.resolveHTMLCollection(h)
	if code != Success {
		return Handle{}, code
	}
	el := hc.NamedItem(name)
	if el == nil {
		return Handle{}, Success
	}
	return s.WrapNode(el.AsNode()), Success
}

func (s *Surface) resolveDOMTokenList(h Handle) (*dom.DOMTokenList, Code) {
	v, ok := s.table.Resolve(h)
	if !ok {
		return nil, NotFoundError
	}
	dtl, ok := v.(*dom.DOMTokenList)
	if !ok {
		return nil, InvalidStateError
	}
	return dtl, Success
}

// WrapDOMTokenList mints a handle for dtl, or the zero Handle if dtl is nil.
func (s *Surface) WrapDOMTokenList(dtl *dom.DOMTokenList) Handle {
	if dtl == nil {
		return Handle{}
	}
	return s.table.New(dtl)
}

// ClassList mints a DOMTokenList handle for an element's classList.
func (s *Surface) ClassList(elementHandle Handle) (Handle, Code) {
	e, code := s.resolveElement(elementHandle)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapDOMTokenList(e.ClassList()), Success
}

func (s *Surface) DOMTokenListLength(h Handle) (int, Code) {
	dtl, code := s.resolveDOMTokenList(h)
	if code != Success {
		return 0, code
	}
	return dtl.Length(), Success
}

func (s *Surface) DOMTokenListItem(h Handle, index int) (string, Code) {
	dtl, code := s.resolveDOMTokenList(h)
	if code != Success {
		return "", code
	}
	return dtl.Item(index), Success
}

func (s *Surface) DOMTokenListContains(h Handle, token string) (bool, Code) {
	dtl, code := s.resolveDOMTokenList(h)
	if code != Success {
		return false, code
	}
	return dtl.Contains(token), Success
}

func (s *Surface) DOMTokenListAdd(h Handle, tokens ...string) Code {
	dtl, code := s.resolveDOMTokenList(h)
	if code != Success {
		return code
	}
	dtl.Add(tokens...)
	return Success
}

func (s *Surface) DOMTokenListRemove(h Handle, tokens ...string) Code {
	dtl, code := s.resolveDOMTokenList(h)
	if code != Success {
		return code
	}
	dtl.Remove(tokens...)
	return Success
}

// DOMTokenListToggle wraps DOMTokenList.Toggle. force uses §6's tri-state
// byte convention for an optional boolean parameter: 0=false, 1=true,
// 0xff=unset (Go renders "unset" as a zero-length variadic rather than a
// literal 0xff byte, since Go has no native optional-bool primitive — the
// variadic slice IS the tri-state encoding here).
func (s *Surface) DOMTokenListToggle(h Handle, token string, force ...bool) (bool, Code) {
	dtl, code := s.resolveDOMTokenList(h)
	if code != Success {
		return false, code
	}
	return dtl.Toggle(token, force...), Success
}

func (s *Surface) DOMTokenListValue(h Handle) (string, Code) {
	dtl, code := s.resolveDOMTokenList(h)
	if code != Success {
		return "", code
	}
	return dtl.Value(), Success
}

func (s *Surface) resolveNamedNodeMap(h Handle) (*dom.NamedNodeMap, Code) {
	v, ok := s.table.Resolve(h)
	if !ok {
		return nil, NotFoundError
	}
	nm, ok := v.(*dom.NamedNodeMap)
	if !ok {
		return nil, InvalidStateError
	}
	return nm, Success
}

// WrapNamedNodeMap mints a handle for nm, or the zero Handle if nm is nil.
func (s *Surface) WrapNamedNodeMap(nm *dom.NamedNodeMap) Handle {
	if nm == nil {
		return Handle{}
	}
	return s.table.New(nm)
}

// Attributes mints a NamedNodeMap handle for an element's attributes.
func (s *Surface) Attributes(elementHandle Handle) (Handle, Code) {
	e, code := s.resolveElement(elementHandle)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapNamedNodeMap(e.Attributes()), Success
}

func (s *Surface) NamedNodeMapLength(h Handle) (int, Code) {
	nm, code := s.resolveNamedNodeMap(h)
	if code != Success {
		return 0, code
	}
	return nm.Length(), Success
}

func (s *Surface) NamedNodeMapItem(h Handle, index int) (Handle, Code) {
	nm, code := s.resolveNamedNodeMap(h)
	if code != Success {
		return Handle{}, code
	}
	attr := nm.Item(index)
	if attr == nil {
		return Handle{}, IndexSizeError
	}
	return s.WrapAttr(attr), Success
}

func (s *Surface) NamedNodeMapGetNamedItem(h Handle, name string) (Handle, Code) {
	nm, code := s.resolveNamedNodeMap(h)
	if code != Success {
		return Handle{}, code
	}
	attr := nm.GetNamedItem(name)
	if attr == nil {
		return Handle{}, Success
	}
	return s.WrapAttr(attr), Success
}

func (s *Surface) NamedNodeMapRemoveNamedItem(h Handle, name string) (Handle, Code) {
	nm, code := s.resolveNamedNodeMap(h)
	if code != Success {
		return Handle{}, code
	}
	attr := nm.RemoveNamedItem(name)
	if attr == nil {
		return Handle{}, NotFoundError
	}
	return s.WrapAttr(attr), Success
}

func (s *Surface) resolveAttr(h Handle) (*dom.Attr, Code) {
	v, ok := s.table.Resolve(h)
	if !ok {
		return nil, NotFoundError
	}
	a, ok := v.(*dom.Attr)
	if !ok {
		return nil, InvalidStateError
	}
	return a, Success
}

// WrapAttr mints a handle for a, or the zero Handle if a is nil. Attr is
// not rendered as a *dom.Node in this codebase (unlike Element, which is a
// type-converted Node pointer) — it is its own small value type, so it gets
// its own handle kind here rather than going through WrapNode.
func (s *Surface) WrapAttr(a *dom.Attr) Handle {
	if a == nil {
		return Handle{}
	}
	return s.table.New(a)
}

func (s *Surface) AttrName(h Handle) (string, Code) {
	a, code := s.resolveAttr(h)
	if code != Success {
		return "", code
	}
	return a.Name(), Success
}

func (s *Surface) AttrValue(h Handle) (string, Code) {
	a, code := s.resolveAttr(h)
	if code != Success {
		return "", code
	}
	return a.Value(), Success
}

func (s *Surface) AttrSetValue(h Handle, value string) Code {
	a, code := s.resolveAttr(h)
	if code != Success {
		return code
	}
	a.SetValue(value)
	return Success
}
