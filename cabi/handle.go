// Package cabi renders the external-interfaces boundary described by
// SPEC_FULL.md §6: an opaque-handle surface with acquire/release lifetime,
// an error-code enum, and typed accessor functions per interface. The
// teacher has no C-ABI precedent (it's an in-process browser, not an
// embeddable library), so the handle table's shape is grounded directly in
// §6's own wording ("handles are generated from google/uuid... rather than
// raw pointer casts or incrementing counters, so a handle from one Document
// cannot be mistaken for a handle from another and handle reuse after
// release is detectable") plus google/uuid's presence in cryguy-worker's
// go.mod, which SPEC_FULL.md §1B already earmarks for this purpose.
//
// This is a Go rendering of a C ABI, not cgo: handles are opaque Handle
// values exported Go functions accept and return, suitable for a cgo or
// WASM boundary layer to wrap without this package itself depending on
// cgo. bindings/goja is one concrete consumer of this surface.
package cabi

import (
	"math"
	"sync"

	"github.com/google/uuid"
)

// Handle is an opaque reference to a document-owned object. The zero Handle
// never refers to a live object (Table.Resolve on it always misses).
type Handle uuid.UUID

// IsNil reports whether h is the zero handle.
func (h Handle) IsNil() bool { return h == Handle{} }

type entry struct {
	value    interface{}
	refcount int
}

// Table is a per-document handle table: the thing each Document in the dom
// package would own one of, mapping opaque Handles to the Go values they
// denote (a *dom.Node, a *dom.Range, an *event.Target, ...). A Table is not
// safe for concurrent use from multiple goroutines without external
// synchronization, matching §5's "mutated by the single host thread" policy
// for everything else a Document owns.
type Table struct {
	mu      sync.Mutex
	entries map[Handle]*entry
	onAnomaly func(kind string, h Handle)
}

// NewTable creates an empty handle table.
func NewTable() *Table {
	return &Table{entries: make(map[Handle]*entry)}
}

// SetAnomalyLogger installs a callback invoked when Release sees a double-
// release or Acquire or Resolve sees an unknown handle — the handle-table
// anomalies behind one of the host hooks SPEC_FULL.md §1A lists. This
// package itself does not import log/slog (it has no opinion on log
// formatting); the callback is where a host wires that in.
func (t *Table) SetAnomalyLogger(fn func(kind string, h Handle)) {
	t.onAnomaly = fn
}

// New allocates a fresh handle denoting value, with refcount 1 (creation
// yields an owned reference, matching §3's "Creation yields ref-count 1").
func (t *Table) New(value interface{}) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	h := Handle(uuid.New())
	t.entries[h] = &entry{value: value, refcount: 1}
	return h
}

// Acquire duplicates an owned reference to h, per §6's "acquire duplicates
// an owned reference". Acquiring an unknown or already-released handle is
// reported as an anomaly and is a no-op. A refcount that would overflow
// math.MaxInt panics rather than wrapping silently into a small or negative
// count — per §5's "reference-count overflow is detected and panics (it
// indicates an unbounded leak)", this is a programmer-error backstop, not a
// caller-recoverable condition: no real caller legitimately holds MaxInt
// live references to one handle.
func (t *Table) Acquire(h Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[h]
	if !ok {
		t.anomaly("acquire-unknown", h)
		return
	}
	if e.refcount == math.MaxInt {
		panic("cabi: handle refcount overflow")
	}
	e.refcount++
}

// Release drops one owned reference to h; at refcount zero the entry is
// removed and its uuid is never reissued (a released handle reused later is
// detectable, never silently resolved to a new, unrelated object). Releasing
// an unknown or already-fully-released handle is reported as a
// double-release anomaly and is otherwise a no-op.
func (t *Table) Release(h Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[h]
	if !ok {
		t.anomaly("double-release", h)
		return
	}
	e.refcount--
	if e.refcount <= 0 {
		delete(t.entries, h)
	}
}

// Resolve returns the value h denotes, or (nil, false) if h is unknown
// (never allocated, or already fully released).
func (t *Table) Resolve(h Handle) (interface{}, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[h]
	if !ok {
		t.anomaly("resolve-unknown", h)
		return nil, false
	}
	return e.value, true
}

// Len reports the number of live handles, chiefly for tests and host-side
// leak diagnostics.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

func (t *Table) anomaly(kind string, h Handle) {
	if t.onAnomaly != nil {
		t.onAnomaly(kind, h)
	}
}
