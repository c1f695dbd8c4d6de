// Package mutation implements MutationObserver (§4.7) on top of the dom
// package's existing MutationCallback funnel hook (dom/mutation_callback.go),
// the same hook dom/index.go uses for the id/tag/class accelerator.
package mutation

import "github.com/chrisuehlinger/domkernel/dom"

// RecordKind identifies which of the three WHATWG mutation record shapes a
// Record carries.
type RecordKind int

const (
	ChildList RecordKind = iota
	Attributes
	CharacterData
)

// Record mirrors the WHATWG MutationRecord interface. OldValue is nil unless
// the matching subscription requested it.
type Record struct {
	Kind                RecordKind
	Target              *dom.Node
	AddedNodes          []*dom.Node
	RemovedNodes        []*dom.Node
	PreviousSibling     *dom.Node
	NextSibling         *dom.Node
	AttributeName       string
	AttributeNamespace  string
	OldValue            *string
}

// Options mirrors MutationObserverInit.
type Options struct {
	ChildList             bool
	Attributes            bool
	AttributeFilter       []string // nil means "all attributes"
	AttributeOldValue     bool
	CharacterData         bool
	CharacterDataOldValue bool
	Subtree               bool
}

func (o Options) attributeWanted(name string) bool {
	if !o.Attributes {
		return false
	}
	if o.AttributeFilter == nil {
		return true
	}
	for _, f := range o.AttributeFilter {
		if f == name {
			return true
		}
	}
	return false
}

// Callback receives a batch of records drained from the observer's queue.
type Callback func(records []*Record, observer *Observer)

type subscription struct {
	target *dom.Node
	opts   Options
}

// Observer is a MutationObserver. Records accumulate in an internal queue as
// matching mutations occur; Drain (called directly, or by the host from the
// schedule hook passed to NewObserver) delivers them in one batch, in
// enqueue order, per §4.7.
type Observer struct {
	callback Callback
	subs     []subscription
	pending  []*Record
	docs     map[*dom.Document]bool
	schedule func(*Observer)
	queued   bool

	// maxQueue bounds the pending queue; on overflow the oldest record is
	// dropped rather than growing unboundedly (§4.7, §1A).
	maxQueue int
	overflowLogger func(dropped int)
}

// NewObserver creates an Observer. schedule, if non-nil, is called the first
// time a record is enqueued after the queue was last drained — the host's
// hook to schedule an async Drain (a microtask, an event-loop tick, etc.).
// If schedule is nil, the observer only delivers records when Drain is
// called explicitly.
func NewObserver(cb Callback, schedule func(*Observer)) *Observer {
	return &Observer{
		callback: cb,
		docs:     make(map[*dom.Document]bool),
		schedule: schedule,
		maxQueue: 65536,
	}
}

// SetMaxQueue overrides the default pending-queue bound.
func (o *Observer) SetMaxQueue(n int) { o.maxQueue = n }

// SetOverflowLogger installs a callback invoked with the number of dropped
// records when the pending queue overflows.
func (o *Observer) SetOverflowLogger(fn func(dropped int)) { o.overflowLogger = fn }

// Observe registers (or replaces, per spec, re-observing the same target
// resets its options rather than adding a second subscription) a
// subscription on target.
func (o *Observer) Observe(target *dom.Node, opts Options) {
	for i, s := range o.subs {
		if s.target == target {
			o.subs[i].opts = opts
			return
		}
	}
	o.subs = append(o.subs, subscription{target: target, opts: opts})

	doc := target.OwnerDocument()
	if doc != nil && !o.docs[doc] {
		dom.RegisterMutationCallback(doc, (*adapter)(o))
		o.docs[doc] = true
	}
}

// Disconnect stops observing every target and discards pending records.
func (o *Observer) Disconnect() {
	for doc := range o.docs {
		dom.UnregisterMutationCallback(doc, (*adapter)(o))
	}
	o.docs = make(map[*dom.Document]bool)
	o.subs = nil
	o.pending = nil
	o.queued = false
}

// TakeRecords drains the pending queue synchronously without invoking the
// callback, per MutationObserver.takeRecords().
func (o *Observer) TakeRecords() []*Record {
	records := o.pending
	o.pending = nil
	o.queued = false
	return records
}

// Drain hands the pending queue to the callback in one batch and empties it.
// A no-op if nothing is pending.
func (o *Observer) Drain() {
	if len(o.pending) == 0 {
		return
	}
	records := o.TakeRecords()
	o.callback(records, o)
}

func (o *Observer) enqueue(r *Record) {
	o.pending = append(o.pending, r)
	if len(o.pending) > o.maxQueue {
		dropped := len(o.pending) - o.maxQueue
		o.pending = o.pending[dropped:]
		if o.overflowLogger != nil {
			o.overflowLogger(dropped)
		}
	}
	if !o.queued {
		o.queued = true
		if o.schedule != nil {
			o.schedule(o)
		}
	}
}

// isAncestor reports whether ancestor is target or a strict ancestor of
// target, via the plain parent-chain walk dom.Node already exposes.
func isAncestor(ancestor, target *dom.Node) bool {
	for n := target; n != nil; n = n.ParentNode() {
		if n == ancestor {
			return true
		}
	}
	return false
}

func (o *Observer) matching(target *dom.Node, want func(Options) bool) []subscription {
	var out []subscription
	for _, s := range o.subs {
		if !want(s.opts) {
			continue
		}
		if s.target == target || (s.opts.Subtree && isAncestor(s.target, target)) {
			out = append(out, s)
		}
	}
	return out
}

// adapter satisfies dom.MutationCallback by forwarding into the Observer it
// is a type-converted pointer to (a zero-size indirection: Observer and
// adapter share the same underlying struct).
type adapter Observer

func (a *adapter) obs() *Observer { return (*Observer)(a) }

func (a *adapter) OnChildListMutation(target *dom.Node, added, removed []*dom.Node, prevSib, nextSib *dom.Node) {
	o := a.obs()
	for _, s := range o.matching(target, func(opt Options) bool { return opt.ChildList }) {
		_ = s
		o.enqueue(&Record{
			Kind:            ChildList,
			Target:          target,
			AddedNodes:      added,
			RemovedNodes:    removed,
			PreviousSibling: prevSib,
			NextSibling:     nextSib,
		})
		return // one record per matching call; §4.7's "interested observers" set is deduped to the observer, not per-subscription
	}
}

func (a *adapter) OnAttributeMutation(target *dom.Node, attributeName, attributeNamespace, oldValue string) {
	o := a.obs()
	for _, s := range o.subs {
		if !s.opts.attributeWanted(attributeName) {
			continue
		}
		if s.target != target && !(s.opts.Subtree && isAncestor(s.target, target)) {
			continue
		}
		r := &Record{
			Kind:               Attributes,
			Target:             target,
			AttributeName:      attributeName,
			AttributeNamespace: attributeNamespace,
		}
		if s.opts.AttributeOldValue {
			v := oldValue
			r.OldValue = &v
		}
		o.enqueue(r)
		return
	}
}

func (a *adapter) OnCharacterDataMutation(target *dom.Node, oldValue string) {
	o := a.obs()
	for _, s := range o.matching(target, func(opt Options) bool { return opt.CharacterData }) {
		r := &Record{Kind: CharacterData, Target: target}
		if s.opts.CharacterDataOldValue {
			v := oldValue
			r.OldValue = &v
		}
		o.enqueue(r)
		return
	}
}

func (a *adapter) OnReplaceData(target *dom.Node, offset, count int, data string) {
	// replaceData-class operations are a characterData change for observer
	// purposes; the precise offset/count is range-adjustment-only detail
	// (consumed by dom's own registered Range boundaries, not observers).
	a.OnCharacterDataMutation(target, "")
}
