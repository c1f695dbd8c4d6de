package cabi

import "github.com/chrisuehlinger/domkernel/dom"

func (s *Surface) resolveRange(h Handle) (*dom.Range, Code) {
	v, ok := s.table.Resolve(h)
	if !ok {
		return nil, NotFoundError
	}
	r, ok := v.(*dom.Range)
	if !ok {
		return nil, InvalidStateError
	}
	return r, Success
}

// WrapRange mints a handle for r, or the zero Handle if r is nil.
func (s *Surface) WrapRange(r *dom.Range) Handle {
	if r == nil {
		return Handle{}
	}
	return s.table.New(r)
}

// CreateRange wraps dom.Document.CreateRange (via dom.NewRange), giving the
// C-ABI surface §14 names for Range its own Handle-per-interface entry
// point rather than leaving Range reachable only from bindings that import
// dom directly.
func (s *Surface) CreateRange(docHandle Handle) (Handle, Code) {
	doc, code := s.resolveDocument(docHandle)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapRange(dom.NewRange(doc)), Success
}

// RangeStartContainer and RangeEndContainer mint handles for a Range's
// boundary-point containers.
func (s *Surface) RangeStartContainer(h Handle) (Handle, Code) {
	r, code := s.resolveRange(h)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapNode(r.StartContainer()), Success
}

func (s *Surface) RangeEndContainer(h Handle) (Handle, Code) {
	r, code := s.resolveRange(h)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapNode(r.EndContainer()), Success
}

func (s *Surface) RangeStartOffset(h Handle) (int, Code) {
	r, code := s.resolveRange(h)
	if code != Success {
		return 0, code
	}
	return r.StartOffset(), Success
}

func (s *Surface) RangeEndOffset(h Handle) (int, Code) {
	r, code := s.resolveRange(h)
	if code != Success {
		return 0, code
	}
	return r.EndOffset(), Success
}

func (s *Surface) RangeCollapsed(h Handle) (bool, Code) {
	r, code := s.resolveRange(h)
	if code != Success {
		return false, code
	}
	return r.Collapsed(), Success
}

// RangeSetStart and RangeSetEnd wrap dom.Range.SetStart/SetEnd.
func (s *Surface) RangeSetStart(h, nodeHandle Handle, offset int) Code {
	r, code := s.resolveRange(h)
	if code != Success {
		return code
	}
	n, code := s.resolveNode(nodeHandle)
	if code != Success {
		return code
	}
	if err := r.SetStart(n, offset); err != nil {
		return CodeOf(err)
	}
	return Success
}

func (s *Surface) RangeSetEnd(h, nodeHandle Handle, offset int) Code {
	r, code := s.resolveRange(h)
	if code != Success {
		return code
	}
	n, code := s.resolveNode(nodeHandle)
	if code != Success {
		return code
	}
	if err := r.SetEnd(n, offset); err != nil {
		return CodeOf(err)
	}
	return Success
}

// RangeCollapse wraps dom.Range.Collapse.
func (s *Surface) RangeCollapse(h Handle, toStart bool) Code {
	r, code := s.resolveRange(h)
	if code != Success {
		return code
	}
	r.Collapse(toStart)
	return Success
}

// RangeDeleteContents wraps dom.Range.DeleteContents.
func (s *Surface) RangeDeleteContents(h Handle) Code {
	r, code := s.resolveRange(h)
	if code != Success {
		return code
	}
	if err := r.DeleteContents(); err != nil {
		return CodeOf(err)
	}
	return Success
}

// RangeExtractContents wraps dom.Range.ExtractContents, minting a handle
// for the resulting DocumentFragment's underlying node.
func (s *Surface) RangeExtractContents(h Handle) (Handle, Code) {
	r, code := s.resolveRange(h)
	if code != Success {
		return Handle{}, code
	}
	frag, err := r.ExtractContents()
	if err != nil {
		return Handle{}, CodeOf(err)
	}
	return s.WrapNode(frag.AsNode()), Success
}

// RangeCloneContents wraps dom.Range.CloneContents.
func (s *Surface) RangeCloneContents(h Handle) (Handle, Code) {
	r, code := s.resolveRange(h)
	if code != Success {
		return Handle{}, code
	}
	frag, err := r.CloneContents()
	if err != nil {
		return Handle{}, CodeOf(err)
	}
	return s.WrapNode(frag.AsNode()), Success
}

// RangeInsertNode wraps dom.Range.InsertNode.
func (s *Surface) RangeInsertNode(h, nodeHandle Handle) Code {
	r, code := s.resolveRange(h)
	if code != Success {
		return code
	}
	n, code := s.resolveNode(nodeHandle)
	if code != Success {
		return code
	}
	if err := r.InsertNode(n); err != nil {
		return CodeOf(err)
	}
	return Success
}

// RangeSurroundContents wraps dom.Range.SurroundContents.
func (s *Surface) RangeSurroundContents(h, newParentHandle Handle) Code {
	r, code := s.resolveRange(h)
	if code != Success {
		return code
	}
	n, code := s.resolveNode(newParentHandle)
	if code != Success {
		return code
	}
	if err := r.SurroundContents(n); err != nil {
		return CodeOf(err)
	}
	return Success
}

// RangeCloneRange wraps dom.Range.CloneRange.
func (s *Surface) RangeCloneRange(h Handle) (Handle, Code) {
	r, code := s.resolveRange(h)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapRange(r.CloneRange()), Success
}

// RangeToString wraps dom.Range.ToString (the Range stringifier).
func (s *Surface) RangeToString(h Handle) (string, Code) {
	r, code := s.resolveRange(h)
	if code != Success {
		return "", code
	}
	return r.ToString(), Success
}

// RangeDetach wraps dom.Range.Detach, a documented no-op retained for API
// compatibility (modern Range has no real detach behavior).
func (s *Surface) RangeDetach(h Handle) Code {
	r, code := s.resolveRange(h)
	if code != Success {
		return code
	}
	r.Detach()
	return Success
}

func (s *Surface) resolveStaticRange(h Handle) (*dom.StaticRange, Code) {
	v, ok := s.table.Resolve(h)
	if !ok {
		return nil, NotFoundError
	}
	sr, ok := v.(*dom.StaticRange)
	if !ok {
		return nil, InvalidStateError
	}
	return sr, Success
}

// WrapStaticRange mints a handle for an immutable StaticRange snapshot
// (§4.9/§12) — unlike Range, it registers no back-link with its document and
// its offsets are not adjusted by subsequent mutation.
func (s *Surface) WrapStaticRange(sr *dom.StaticRange) Handle {
	if sr == nil {
		return Handle{}
	}
	return s.table.New(sr)
}

func (s *Surface) StaticRangeStartContainer(h Handle) (Handle, Code) {
	sr, code := s.resolveStaticRange(h)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapNode(sr.StartContainer()), Success
}

func (s *Surface) StaticRangeEndContainer(h Handle) (Handle, Code) {
	sr, code := s.resolveStaticRange(h)
	if code != Success {
		return Handle{}, code
	}
	return s.WrapNode(sr.EndContainer()), Success
}

// CreateStaticRange wraps dom.NewStaticRange, resolving the start/end
// container handles and minting a StaticRange handle for the result.
func (s *Surface) CreateStaticRange(startHandle Handle, startOffset int, endHandle Handle, endOffset int) (Handle, Code) {
	start, code := s.resolveNode(startHandle)
	if code != Success {
		return Handle{}, code
	}
	end, code := s.resolveNode(endHandle)
	if code != Success {
		return Handle{}, code
	}
	sr, err := dom.NewStaticRange(dom.StaticRangeInit{
		StartContainer: start,
		StartOffset:    startOffset,
		EndContainer:   end,
		EndOffset:      endOffset,
	})
	if err != nil {
		return Handle{}, CodeOf(err)
	}
	return s.WrapStaticRange(sr), Success
}
