package cabi

import "github.com/chrisuehlinger/domkernel/dom"

// Surface bundles a Table with the typed accessor functions SPEC_FULL.md §6
// describes: "opaque pointer handles per interface... typed accessor
// functions per interface." A Surface is the unit a host-side binding layer
// (bindings/goja, or a future cgo/WASM shim) holds one of per embedding; it
// does not itself own any dom.Document — handles are minted against
// whichever Go values are passed to wrap*.
type Surface struct {
	table *Table
}

// NewSurface creates a Surface backed by a fresh handle table.
func NewSurface() *Surface {
	return &Surface{table: NewTable()}
}

// SetAnomalyLogger forwards to the underlying Table (see Table.SetAnomalyLogger).
func (s *Surface) SetAnomalyLogger(fn func(kind string, h Handle)) {
	s.table.SetAnomalyLogger(fn)
}

func (s *Surface) resolveNode(h Handle) (*dom.Node, Code) {
	v, ok := s.table.Resolve(h)
	if !ok {
		return nil, NotFoundError
	}
	n, ok := v.(*dom.Node)
	if !ok {
		return nil, InvalidStateError
	}
	return n, Success
}

// WrapNode mints a handle for n, or returns the zero Handle if n is nil
// (the C-ABI nullable-return convention per §6).
func (s *Surface) WrapNode(n *dom.Node) Handle {
	if n == nil {
		return Handle{}
	}
	return s.table.New(n)
}

// Release drops one owned reference to h.
func (s *Surface) Release(h Handle) { s.table.Release(h) }

// Acquire duplicates an owned reference to h.
func (s *Surface) Acquire(h Handle) { s.table.Acquire(h) }

// NodeType returns the node's type, or (0, NotFoundError) for an unknown handle.
func (s *Surface) NodeType(h Handle) (dom.NodeType, Code) {
	n, code := s.resolveNode(h)
	if code != Success {
		return 0, code
	}
	return n.NodeType(), Success
}

// NodeName returns the node's nodeName string.
func (s *Surface) NodeName(h Handle) (string, Code) {
	n, code := s.resolveNode(h)
	if code != Success {
		return "", code
	}
	return n.NodeName(), Success
}

// TextContent returns the node's textContent.
func (s *Surface) TextContent(h Handle) (string, Code) {
	n, code := s.resolveNode(h)
	if code != Success {
		return "", code
	}
	return n.TextContent(), Success
}

// ParentNode returns a newly-minted handle for the node's parent, or the
// zero Handle if there is none.
func (s *Surface) ParentNode(h Handle) (Handle, Code) {
	n, code := s.resolveNode(h)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapNode(n.ParentNode()), Success
}

// FirstChild returns a newly-minted handle for the node's first child, or
// the zero Handle if there is none.
func (s *Surface) FirstChild(h Handle) (Handle, Code) {
	n, code := s.resolveNode(h)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapNode(n.FirstChild()), Success
}

// NextSibling returns a newly-minted handle for the node's next sibling, or
// the zero Handle if there is none.
func (s *Surface) NextSibling(h Handle) (Handle, Code) {
	n, code := s.resolveNode(h)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapNode(n.NextSibling()), Success
}

// ChildNodesLength and ChildNodesItem implement the collection convention
// §6 specifies ("length(handle)" / "item(handle, index)") for a node's
// childNodes, without minting a separate NodeList handle for the common
// case of indexed iteration over live children.
func (s *Surface) ChildNodesLength(h Handle) (int, Code) {
	n, code := s.resolveNode(h)
	if code != Success {
		return 0, code
	}
	return n.ChildNodes().Length(), Success
}

func (s *Surface) ChildNodesItem(h Handle, index int) (Handle, Code) {
	n, code := s.resolveNode(h)
	if code != Success {
		return Handle{}, code
	}
	item := n.ChildNodes().Item(index)
	if item == nil {
		return Handle{}, IndexSizeError
	}
	return s.WrapNode(item), Success
}

// AppendChild wraps dom.Node.AppendChildWithError, translating its error
// into a Code per §7's propagation policy (fallible operations either
// complete fully or leave state unchanged).
func (s *Surface) AppendChild(parent, child Handle) (Handle, Code) {
	p, code := s.resolveNode(parent)
	if code != Success {
		return Handle{}, code
	}
	c, code := s.resolveNode(child)
	if code != Success {
		return Handle{}, code
	}
	result, err := p.AppendChildWithError(c)
	if err != nil {
		return Handle{}, CodeOf(err)
	}
	return s.WrapNode(result), Success
}

// RemoveChild wraps dom.Node.RemoveChildWithError.
func (s *Surface) RemoveChild(parent, child Handle) (Handle, Code) {
	p, code := s.resolveNode(parent)
	if code != Success {
		return Handle{}, code
	}
	c, code := s.resolveNode(child)
	if code != Success {
		return Handle{}, code
	}
	result, err := p.RemoveChildWithError(c)
	if err != nil {
		return Handle{}, CodeOf(err)
	}
	return s.WrapNode(result), Success
}
