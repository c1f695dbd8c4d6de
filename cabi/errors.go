package cabi

import "github.com/chrisuehlinger/domkernel/dom"

// Code is the C-ABI error-code enum SPEC_FULL.md §6 specifies as the return
// value of fallible operations, spanning at minimum the names listed there.
type Code int

const (
	Success Code = iota
	OutOfMemory
	HierarchyRequestError
	NotFoundError
	InvalidCharacterError
	InvalidStateError
	NamespaceError
	SyntaxError
	IndexSizeError
	InvalidNodeTypeError
	WrongDocumentError
	QuotaExceededError
	NotSupported
	SecurityError
	InUseAttributeError
	NotAllowedError
	NoModificationAllowedError
	UnknownError
)

// CodeOf maps a Go error returned by the dom package to its Code by matching
// on the *dom.DOMError's Name; any other error maps to UnknownError.
// LegacyCode is not used here at all: it returns 0 for the newer errors it
// doesn't cover, which would collide with Success. It exists for callers
// that need the historical numeric DOMException code specifically, not for
// selecting a Code.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	domErr, ok := err.(*dom.DOMError)
	if !ok {
		return UnknownError
	}
	switch domErr.Name {
	case "HierarchyRequestError":
		return HierarchyRequestError
	case "NotFoundError":
		return NotFoundError
	case "InvalidCharacterError":
		return InvalidCharacterError
	case "InvalidStateError":
		return InvalidStateError
	case "NamespaceError":
		return NamespaceError
	case "SyntaxError":
		return SyntaxError
	case "IndexSizeError":
		return IndexSizeError
	case "InvalidNodeTypeError":
		return InvalidNodeTypeError
	case "WrongDocumentError":
		return WrongDocumentError
	case "QuotaExceededError":
		return QuotaExceededError
	case "NotSupportedError":
		return NotSupported
	case "SecurityError":
		return SecurityError
	case "InUseAttributeError":
		return InUseAttributeError
	case "NotAllowedError":
		return NotAllowedError
	case "NoModificationAllowedError":
		return NoModificationAllowedError
	default:
		return UnknownError
	}
}
