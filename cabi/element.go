package cabi

import "github.com/chrisuehlinger/domkernel/dom"

func (s *Surface) resolveElement(h Handle) (*dom.Element, Code) {
	v, ok := s.table.Resolve(h)
	if !ok {
		return nil, NotFoundError
	}
	n, ok := v.(*dom.Node)
	if !ok {
		return nil, InvalidStateError
	}
	if n.NodeType() != dom.ElementNode {
		return nil, InvalidNodeTypeError
	}
	return (*dom.Element)(n), Success
}

// TagName returns the element's tagName.
func (s *Surface) TagName(h Handle) (string, Code) {
	e, code := s.resolveElement(h)
	if code != Success {
		return "", code
	}
	return e.TagName(), Success
}

// GetAttribute returns the named attribute's value and whether it is
// present (the empty string is ambiguous between "absent" and "present but
// empty", so the bool return is the canonical presence signal a C-ABI
// caller checks rather than a null pointer, per §6's nullable-return
// convention rendered for Go rather than a borrowed-string pointer).
func (s *Surface) GetAttribute(h Handle, name string) (string, bool, Code) {
	e, code := s.resolveElement(h)
	if code != Success {
		return "", false, code
	}
	return e.GetAttribute(name), e.HasAttribute(name), Success
}

// SetAttribute wraps dom.Element.SetAttributeWithError — one of the 18
// [CEReactions] entry points §4.8 names.
func (s *Surface) SetAttribute(h Handle, name, value string) Code {
	e, code := s.resolveElement(h)
	if code != Success {
		return code
	}
	if err := e.SetAttributeWithError(name, value); err != nil {
		return CodeOf(err)
	}
	return Success
}

// RemoveAttribute wraps dom.Element.RemoveAttribute.
func (s *Surface) RemoveAttribute(h Handle, name string) Code {
	e, code := s.resolveElement(h)
	if code != Success {
		return code
	}
	e.RemoveAttribute(name)
	return Success
}
