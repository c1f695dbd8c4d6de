package reaction

import "github.com/chrisuehlinger/domkernel/dom"

// Bridge adapts dom.MutationCallback into reaction enqueueing, the same
// funnel mutation.Observer rides (dom/mutation_callback.go). It gives a
// Stack connected/disconnected and attributeChanged reactions without the
// dom package itself needing to know about custom elements: every
// [CEReactions]-annotated operation already runs through this notification
// path because each one is also a mutation. Upgrade and Adopted reactions
// are not mutation-shaped, so a host wanting them calls Stack.Enqueue
// directly (see Stack.Enqueue's backup-queue fallback).
//
// Each notification from dom is treated as its own CEReactions algorithm:
// Bridge pushes a scope, enqueues the derived reactions, and pops
// immediately. The funnel emits one notification per already-batched
// mutation (the same granularity mutation.Observer's adapter consumes for
// MutationRecord batching).
type Bridge struct {
	stack    *Stack
	isCustom func(*dom.Node) bool
}

// NewBridge creates a Bridge that enqueues reactions onto stack for nodes
// isCustom reports true for. isCustom lets a host-side custom element
// registry decide which elements actually have reactions to run; a nil
// isCustom treats every element as a candidate.
func NewBridge(stack *Stack, isCustom func(*dom.Node) bool) *Bridge {
	return &Bridge{stack: stack, isCustom: isCustom}
}

func (b *Bridge) wants(n *dom.Node) bool {
	if n == nil {
		return false
	}
	return b.isCustom == nil || b.isCustom(n)
}

// OnChildListMutation queues Connected only for added nodes that are
// actually connected post-insertion, and Disconnected only for removed
// nodes that were connected pre-removal, per §4.2 step 6 ("for each
// connected inserted node" / "for each connected removed node"). An added
// node's own IsConnected reflects its state right now, which is the state
// that matters since it has already been inserted by the time this
// notification fires. A removed node, by contrast, has already been
// unlinked from target by the time this notification fires, so its own
// IsConnected is always false post-removal regardless of its state before
// -- target's connectivity is used as a stand-in instead, since removing a
// child never changes target's own connectedness: if target is connected,
// every one of its former children was connected immediately before
// removal; if target is (or was part of) an already-disconnected subtree,
// none of them were.
func (b *Bridge) OnChildListMutation(target *dom.Node, added, removed []*dom.Node, prevSib, nextSib *dom.Node) {
	var reactions []*Reaction
	for _, n := range added {
		if b.wants(n) && n.IsConnected() {
			reactions = append(reactions, &Reaction{Kind: Connected, Element: n})
		}
	}
	if target.IsConnected() {
		for _, n := range removed {
			if b.wants(n) {
				reactions = append(reactions, &Reaction{Kind: Disconnected, Element: n})
			}
		}
	}
	if len(reactions) == 0 {
		return
	}
	b.stack.Push()
	for _, r := range reactions {
		b.stack.Enqueue(r)
	}
	b.stack.Pop()
}

func (b *Bridge) OnAttributeMutation(target *dom.Node, attributeName, attributeNamespace, oldValue string) {
	if !b.wants(target) {
		return
	}
	old := oldValue
	b.stack.Push()
	b.stack.Enqueue(&Reaction{
		Kind:          AttributeChanged,
		Element:       target,
		AttributeName: attributeName,
		Namespace:     attributeNamespace,
		OldValue:      &old,
	})
	b.stack.Pop()
}

func (b *Bridge) OnCharacterDataMutation(target *dom.Node, oldValue string) {}

func (b *Bridge) OnReplaceData(target *dom.Node, offset, count int, data string) {}

var _ dom.MutationCallback = (*Bridge)(nil)
