package cabi

import "github.com/chrisuehlinger/domkernel/dom"

func (s *Surface) resolveNodeIterator(h Handle) (*dom.NodeIterator, Code) {
	v, ok := s.table.Resolve(h)
	if !ok {
		return nil, NotFoundError
	}
	ni, ok := v.(*dom.NodeIterator)
	if !ok {
		return nil, InvalidStateError
	}
	return ni, Success
}

// CreateNodeIterator wraps dom.Document.CreateNodeIterator (§4.9/§13).
func (s *Surface) CreateNodeIterator(docHandle, rootHandle Handle, whatToShow uint32, filter dom.NodeFilter) (Handle, Code) {
	doc, code := s.resolveDocument(docHandle)
	if code != Success {
		return Handle{}, code
	}
	root, code := s.resolveNode(rootHandle)
	if code != Success {
		return Handle{}, code
	}
	ni := doc.CreateNodeIterator(root, whatToShow, filter)
	return s.table.New(ni), Success
}

// NodeIteratorNextNode and NodeIteratorPreviousNode wrap the matching
// NodeIterator methods, minting a handle for the next/previous node the
// filter accepts, or the zero Handle at the end of traversal.
func (s *Surface) NodeIteratorNextNode(h Handle) (Handle, Code) {
	ni, code := s.resolveNodeIterator(h)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapNode(ni.NextNode()), Success
}

func (s *Surface) NodeIteratorPreviousNode(h Handle) (Handle, Code) {
	ni, code := s.resolveNodeIterator(h)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapNode(ni.PreviousNode()), Success
}

// NodeIteratorDetach wraps dom.NodeIterator.Detach.
func (s *Surface) NodeIteratorDetach(h Handle) Code {
	ni, code := s.resolveNodeIterator(h)
	if code != Success {
		return code
	}
	ni.Detach()
	return Success
}

func (s *Surface) resolveTreeWalker(h Handle) (*dom.TreeWalker, Code) {
	v, ok := s.table.Resolve(h)
	if !ok {
		return nil, NotFoundError
	}
	tw, ok := v.(*dom.TreeWalker)
	if !ok {
		return nil, InvalidStateError
	}
	return tw, Success
}

// CreateTreeWalker wraps dom.Document.CreateTreeWalker.
func (s *Surface) CreateTreeWalker(docHandle, rootHandle Handle, whatToShow uint32, filter dom.NodeFilter) (Handle, Code) {
	doc, code := s.resolveDocument(docHandle)
	if code != Success {
		return Handle{}, code
	}
	root, code := s.resolveNode(rootHandle)
	if code != Success {
		return Handle{}, code
	}
	tw := doc.CreateTreeWalker(root, whatToShow, filter)
	return s.table.New(tw), Success
}

func (s *Surface) TreeWalkerCurrentNode(h Handle) (Handle, Code) {
	tw, code := s.resolveTreeWalker(h)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapNode(tw.CurrentNode()), Success
}

func (s *Surface) TreeWalkerSetCurrentNode(h, nodeHandle Handle) Code {
	tw, code := s.resolveTreeWalker(h)
	if code != Success {
		return code
	}
	n, code := s.resolveNode(nodeHandle)
	if code != Success {
		return code
	}
	tw.SetCurrentNode(n)
	return Success
}

func (s *Surface) TreeWalkerParentNode(h Handle) (Handle, Code) {
	tw, code := s.resolveTreeWalker(h)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapNode(tw.ParentNode()), Success
}

func (s *Surface) TreeWalkerFirstChild(h Handle) (Handle, Code) {
	tw, code := s.resolveTreeWalker(h)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapNode(tw.FirstChild()), Success
}

func (s *Surface) TreeWalkerLastChild(h Handle) (Handle, Code) {
	tw, code := s.resolveTreeWalker(h)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapNode(tw.LastChild()), Success
}

func (s *Surface) TreeWalkerNextSibling(h Handle) (Handle, Code) {
	tw, code := s.resolveTreeWalker(h)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapNode(tw.NextSibling()), Success
}

func (s *Surface) TreeWalkerPreviousSibling(h Handle) (Handle, Code) {
	tw, code := s.resolveTreeWalker(h)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapNode(tw.PreviousSibling()), Success
}

func (s *Surface) TreeWalkerNextNode(h Handle) (Handle, Code) {
	tw, code := s.resolveTreeWalker(h)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapNode(tw.NextNode()), Success
}

func (s *Surface) TreeWalkerPreviousNode(h Handle) (Handle, Code) {
	tw, code := s.resolveTreeWalker(h)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapNode(tw.PreviousNode()), Success
}
