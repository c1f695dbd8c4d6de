// Package reaction implements the custom-element reaction queue machinery
// described by WHATWG DOM §4.13 and referenced throughout the core spec as
// [CEReactions]: a stack of "element queues" pushed on scope entry and
// drained in FIFO order per element on scope exit. No teacher module covers
// this — the teacher has no custom-element registry — so the shape here
// follows the algorithm text directly, built the way the teacher builds its
// other stack-backed subsystems (see event.Dispatch's path walk, or
// dom.Node's child-list mutation funnel): a small, explicit, unexported
// slice-backed stack guarded by straightforward invariants.
package reaction

import "github.com/chrisuehlinger/domkernel/dom"

// Kind identifies which lifecycle callback a Reaction invokes.
type Kind int

const (
	Upgrade Kind = iota
	Connected
	Disconnected
	Adopted
	AttributeChanged
)

// Reaction is one queued custom-element lifecycle callback. AttributeName,
// OldValue, NewValue and Namespace are only meaningful when Kind is
// AttributeChanged; Definition carries host-supplied upgrade metadata and is
// only meaningful when Kind is Upgrade.
type Reaction struct {
	Kind          Kind
	Element       *dom.Node
	AttributeName string
	OldValue      *string
	NewValue      *string
	Namespace     string
	Definition    interface{}
}

// Callback invokes a single queued Reaction against the host's custom
// element implementation (a registry, a goja bridge, whatever owns the
// lifecycle methods). Errors are reported but do not stop the drain: per
// §4.13 a reaction that throws is reported to the host's error handler and
// the remaining reactions in the element's queue still run.
type Callback func(r *Reaction) error

// elementQueue holds the reactions queued against distinct elements, in the
// order each element was first touched, each element's own reactions kept
// in FIFO order — the "backup element queue" shape from §4.13.
type elementQueue struct {
	order     []*dom.Node
	reactions map[*dom.Node][]*Reaction
}

func newElementQueue() *elementQueue {
	return &elementQueue{reactions: make(map[*dom.Node][]*Reaction)}
}

func (q *elementQueue) enqueue(r *Reaction) {
	if _, ok := q.reactions[r.Element]; !ok {
		q.order = append(q.order, r.Element)
	}
	q.reactions[r.Element] = append(q.reactions[r.Element], r)
}

// Stack is the CEReactions scope stack. A single Stack is shared by every
// [CEReactions] entry point in a document's call graph; Push/Pop bracket
// each such algorithm the way the spec's "push a new element queue onto the
// custom element reactions stack" / "pop... invoke reactions" steps do.
type Stack struct {
	queues       []*elementQueue
	backup       *elementQueue
	backupQueued bool
	invoke       Callback
	errorHandler func(error)
}

// NewStack creates a Stack. invoke is called once per queued Reaction when
// its owning scope (or the backup queue) drains.
func NewStack(invoke Callback) *Stack {
	return &Stack{invoke: invoke}
}

// SetErrorHandler installs a handler for errors returned by invoke during a
// drain; if unset, such errors are silently discarded (matching the
// "report the exception" steps being host-defined and optional at the core
// level). It is one of the callback hooks SPEC_FULL.md §1A lists in place of
// logging; this package imports no logging package.
func (s *Stack) SetErrorHandler(fn func(error)) { s.errorHandler = fn }

// Push enters a new CEReactions scope, per "push a new element queue onto
// the custom element reactions stack".
func (s *Stack) Push() {
	s.queues = append(s.queues, newElementQueue())
}

// Pop exits the current CEReactions scope and invokes its queued reactions
// in element-FIFO order, then reaction-FIFO order within each element, per
// "pop the current element queue from the stack, and invoke custom element
// reactions in that queue".
//
// Pop panics if called without a matching Push; every [CEReactions]
// algorithm must bracket its body with Push/defer Pop, so an unbalanced
// call is a programming error in the host integration, not a runtime
// condition callers should handle.
func (s *Stack) Pop() {
	n := len(s.queues)
	q := s.queues[n-1]
	s.queues = s.queues[:n-1]
	s.drain(q)
}

// Enqueue adds a reaction to the current scope's element queue, or to the
// backup element queue if the stack is empty (§4.13's fallback path for
// reactions triggered outside any [CEReactions] algorithm — e.g. a
// microtask-scheduled upgrade).
func (s *Stack) Enqueue(r *Reaction) {
	if len(s.queues) > 0 {
		s.queues[len(s.queues)-1].enqueue(r)
		return
	}
	if s.backup == nil {
		s.backup = newElementQueue()
	}
	s.backup.enqueue(r)
	if !s.backupQueued {
		s.backupQueued = true
		s.drain(s.backup)
		s.backup = nil
		s.backupQueued = false
	}
}

func (s *Stack) drain(q *elementQueue) {
	for _, el := range q.order {
		for _, r := range q.reactions[el] {
			if err := s.invoke(r); err != nil && s.errorHandler != nil {
				s.errorHandler(err)
			}
		}
	}
}

// Depth reports how many scopes are currently pushed, chiefly for tests and
// for hosts that want to assert they are (or are not) inside a CEReactions
// scope before raising ErrNotAllowed.
func (s *Stack) Depth() int { return len(s.queues) }
