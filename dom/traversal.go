package dom

// WhatToShow bit flags select which node types a NodeIterator or TreeWalker
// exposes. They mirror the NodeType constants shifted into a bitmask
// (ShowElement is 1<<(ElementNode-1), and so on).
const (
	ShowAll                  uint32 = 0xFFFFFFFF
	ShowElement              uint32 = 1 << 0
	ShowAttribute            uint32 = 1 << 1
	ShowText                 uint32 = 1 << 2
	ShowCDATASection         uint32 = 1 << 3
	ShowEntityReference      uint32 = 1 << 4
	ShowEntity               uint32 = 1 << 5
	ShowProcessingInstructio uint32 = 1 << 6
	ShowComment              uint32 = 1 << 7
	ShowDocument             uint32 = 1 << 8
	ShowDocumentType         uint32 = 1 << 9
	ShowDocumentFragment     uint32 = 1 << 10
	ShowNotation             uint32 = 1 << 11
)

// FilterResult is the outcome a NodeFilter gives for a candidate node.
type FilterResult int

const (
	FilterAccept FilterResult = 1
	FilterReject FilterResult = 2
	FilterSkip   FilterResult = 3
)

// NodeFilter lets a caller veto or skip nodes a NodeIterator/TreeWalker
// would otherwise visit, on top of the whatToShow mask.
type NodeFilter interface {
	AcceptNode(node *Node) FilterResult
}

// NodeFilterFunc adapts a plain function to a NodeFilter.
type NodeFilterFunc func(node *Node) FilterResult

// AcceptNode implements NodeFilter.
func (f NodeFilterFunc) AcceptNode(node *Node) FilterResult {
	return f(node)
}

func whatToShowBit(nodeType NodeType) uint32 {
	if nodeType < 1 || nodeType > 12 {
		return 0
	}
	return 1 << (uint(nodeType) - 1)
}

// filterNode runs the whatToShow mask followed by the optional NodeFilter,
// per the "filter" algorithm shared by NodeIterator and TreeWalker.
func filterNode(node *Node, whatToShow uint32, filter NodeFilter) FilterResult {
	if whatToShow&whatToShowBit(node.nodeType) == 0 {
		return FilterSkip
	}
	if filter == nil {
		return FilterAccept
	}
	return filter.AcceptNode(node)
}

// NodeIterator provides a way to iterate over nodes in a subtree.
// Implements the DOM NodeIterator interface.
type NodeIterator struct {
	document                   *Document
	root                       *Node
	whatToShow                 uint32
	filter                     NodeFilter
	referenceNode              *Node
	pointerBeforeReferenceNode bool
}

// CreateNodeIterator creates a NodeIterator for traversing the document.
func (d *Document) CreateNodeIterator(root *Node, whatToShow uint32, filter NodeFilter) *NodeIterator {
	ni := &NodeIterator{
		document:                   d,
		root:                       root,
		whatToShow:                 whatToShow,
		filter:                     filter,
		referenceNode:              root,
		pointerBeforeReferenceNode: true,
	}
	// Register the iterator with root's node document for pre-removal steps.
	// Per DOM spec, pre-removal steps are run for iterators whose root's node
	// document matches the removed node's node document.
	rootDoc := root.ownerDoc
	if root.nodeType == DocumentNode {
		rootDoc = (*Document)(root)
	}
	if rootDoc != nil {
		rootDoc.registerNodeIterator(ni)
	} else {
		d.registerNodeIterator(ni)
	}
	return ni
}

// registerNodeIterator adds an iterator to the document's list of active iterators.
func (d *Document) registerNodeIterator(ni *NodeIterator) {
	n := (*Node)(d)
	if n.documentData == nil {
		n.documentData = &documentData{}
	}
	n.documentData.nodeIterators = append(n.documentData.nodeIterators, ni)
}

// unregisterNodeIterator removes an iterator from the document's list.
func (d *Document) unregisterNodeIterator(ni *NodeIterator) {
	n := (*Node)(d)
	if n.documentData == nil {
		return
	}
	iterators := n.documentData.nodeIterators
	for i, iter := range iterators {
		if iter == ni {
			iterators[i] = iterators[len(iterators)-1]
			n.documentData.nodeIterators = iterators[:len(iterators)-1]
			return
		}
	}
}

// notifyNodeIteratorsOfRemoval runs pre-removal steps for all NodeIterators
// when a node is about to be removed. This implements the DOM spec's
// "pre-removing steps" for NodeIterator.
func (d *Document) notifyNodeIteratorsOfRemoval(node *Node) {
	n := (*Node)(d)
	if n.documentData == nil {
		return
	}
	for _, ni := range n.documentData.nodeIterators {
		ni.preRemovingSteps(node)
	}
}

// Detach removes this iterator from the document's list of active iterators.
// This is a no-op in modern DOM (iterators no longer need explicit
// detachment) but we use it to clean up the registry.
func (ni *NodeIterator) Detach() {
	if ni.document != nil {
		ni.document.unregisterNodeIterator(ni)
	}
}

// preRemovingSteps runs the pre-removal steps for this iterator when a node
// is being removed. Implements the DOM spec's NodeIterator pre-removing steps.
func (ni *NodeIterator) preRemovingSteps(toBeRemoved *Node) {
	if isInclusiveAncestor(toBeRemoved, ni.root) {
		return
	}
	if !isInclusiveAncestor(toBeRemoved, ni.referenceNode) {
		return
	}

	if !ni.pointerBeforeReferenceNode {
		ni.referenceNode = precedingNode(toBeRemoved, ni.root)
		return
	}

	next := followingNode(lastInclusiveDescendant(toBeRemoved), ni.root)
	if next != nil {
		ni.referenceNode = next
		return
	}

	ni.referenceNode = precedingNode(toBeRemoved, ni.root)
	ni.pointerBeforeReferenceNode = false
}

func isInclusiveAncestor(ancestor, node *Node) bool {
	for n := node; n != nil; n = n.parentNode {
		if n == ancestor {
			return true
		}
	}
	return false
}

func lastInclusiveDescendant(node *Node) *Node {
	for node.lastChild != nil {
		node = node.lastChild
	}
	return node
}

// precedingNode returns the first node that precedes node in tree order,
// constrained to the subtree rooted at root. Returns nil if no such node exists.
func precedingNode(node, root *Node) *Node {
	if node == root {
		return nil
	}
	if node.prevSibling != nil {
		return lastInclusiveDescendant(node.prevSibling)
	}
	parent := node.parentNode
	if parent == root {
		return root
	}
	return parent
}

// followingNode returns the first node that follows node in tree order,
// constrained to the subtree rooted at root. Returns nil if no such node exists.
func followingNode(node, root *Node) *Node {
	if node.firstChild != nil {
		return node.firstChild
	}
	for n := node; n != nil && n != root; n = n.parentNode {
		if n.nextSibling != nil {
			return n.nextSibling
		}
	}
	return nil
}

// Root returns the root node of the iterator.
func (ni *NodeIterator) Root() *Node { return ni.root }

// WhatToShow returns the whatToShow value.
func (ni *NodeIterator) WhatToShow() uint32 { return ni.whatToShow }

// Filter returns the iterator's NodeFilter, or nil.
func (ni *NodeIterator) Filter() NodeFilter { return ni.filter }

// ReferenceNode returns the reference node.
func (ni *NodeIterator) ReferenceNode() *Node { return ni.referenceNode }

// PointerBeforeReferenceNode returns whether the pointer is before the reference node.
func (ni *NodeIterator) PointerBeforeReferenceNode() bool { return ni.pointerBeforeReferenceNode }

// SetReferenceNode sets the reference node and pointer position.
func (ni *NodeIterator) SetReferenceNode(node *Node, before bool) {
	ni.referenceNode = node
	ni.pointerBeforeReferenceNode = before
}

// NextNode implements the NodeIterator traversal algorithm: walk forward
// from the reference node, skipping anything the filter rejects or skips,
// until an accepted node is found or the root's subtree is exhausted.
func (ni *NodeIterator) NextNode() *Node {
	node := ni.referenceNode
	beforeNode := ni.pointerBeforeReferenceNode

	for {
		if !beforeNode {
			node = followingNode(node, ni.root)
			if node == nil {
				return nil
			}
		}
		beforeNode = false

		if filterNode(node, ni.whatToShow, ni.filter) == FilterAccept {
			ni.referenceNode = node
			ni.pointerBeforeReferenceNode = false
			return node
		}
	}
}

// PreviousNode mirrors NextNode, walking backward.
func (ni *NodeIterator) PreviousNode() *Node {
	node := ni.referenceNode
	beforeNode := ni.pointerBeforeReferenceNode

	for {
		if beforeNode {
			node = precedingNode(node, ni.root)
			if node == nil {
				return nil
			}
		}
		beforeNode = true

		if filterNode(node, ni.whatToShow, ni.filter) == FilterAccept {
			ni.referenceNode = node
			ni.pointerBeforeReferenceNode = true
			return node
		}
	}
}

// TreeWalker provides a way to walk the document tree, skipping nodes the
// whatToShow mask or NodeFilter rejects.
type TreeWalker struct {
	root        *Node
	whatToShow  uint32
	filter      NodeFilter
	currentNode *Node
}

// CreateTreeWalker creates a TreeWalker for traversing the document.
func (d *Document) CreateTreeWalker(root *Node, whatToShow uint32, filter NodeFilter) *TreeWalker {
	return &TreeWalker{
		root:        root,
		whatToShow:  whatToShow,
		filter:      filter,
		currentNode: root,
	}
}

// Root returns the walker's root.
func (tw *TreeWalker) Root() *Node { return tw.root }

// WhatToShow returns the whatToShow value.
func (tw *TreeWalker) WhatToShow() uint32 { return tw.whatToShow }

// CurrentNode returns the current node.
func (tw *TreeWalker) CurrentNode() *Node { return tw.currentNode }

// SetCurrentNode sets the current node.
func (tw *TreeWalker) SetCurrentNode(node *Node) { tw.currentNode = node }

func (tw *TreeWalker) accept(node *Node) FilterResult {
	return filterNode(node, tw.whatToShow, tw.filter)
}

// ParentNode implements TreeWalker.parentNode(): walk up from currentNode,
// stopping at the first accepted ancestor within root's subtree (root
// itself is a valid stopping point per the algorithm).
func (tw *TreeWalker) ParentNode() *Node {
	node := tw.currentNode
	for node != nil && node != tw.root {
		node = node.parentNode
		if node != nil && tw.accept(node) == FilterAccept {
			tw.currentNode = node
			return node
		}
	}
	return nil
}

// firstOrLastChild implements the shared traverseChildren algorithm for
// FirstChild/LastChild, walking first into rejected subtrees' children and
// sideways through skipped siblings.
func (tw *TreeWalker) firstOrLastChild(forward bool) *Node {
	node := tw.currentNode
	if forward {
		node = node.firstChild
	} else {
		node = node.lastChild
	}

	for node != nil {
		switch tw.accept(node) {
		case FilterAccept:
			tw.currentNode = node
			return node
		case FilterSkip:
			if forward && node.firstChild != nil {
				node = node.firstChild
				continue
			}
			if !forward && node.lastChild != nil {
				node = node.lastChild
				continue
			}
		}
		// FilterReject, or FilterSkip with no matching children: move sideways.
		for node != nil {
			var sibling *Node
			if forward {
				sibling = node.nextSibling
			} else {
				sibling = node.prevSibling
			}
			if sibling != nil {
				node = sibling
				break
			}
			parent := node.parentNode
			if parent == nil || parent == tw.root || parent == tw.currentNode {
				return nil
			}
			node = parent
		}
	}
	return nil
}

// FirstChild navigates to the first accepted child.
func (tw *TreeWalker) FirstChild() *Node { return tw.firstOrLastChild(true) }

// LastChild navigates to the last accepted child.
func (tw *TreeWalker) LastChild() *Node { return tw.firstOrLastChild(false) }

// nextOrPreviousSibling implements the shared traverseSiblings algorithm.
func (tw *TreeWalker) nextOrPreviousSibling(forward bool) *Node {
	node := tw.currentNode
	if node == tw.root {
		return nil
	}

	for {
		var sibling *Node
		if forward {
			sibling = node.nextSibling
		} else {
			sibling = node.prevSibling
		}

		for sibling != nil {
			node = sibling
			result := tw.accept(node)
			if result == FilterAccept {
				tw.currentNode = node
				return node
			}
			if forward {
				if result == FilterSkip && node.firstChild != nil {
					node = node.firstChild
					sibling = nil
					continue
				}
				sibling = node.nextSibling
			} else {
				if result == FilterSkip && node.lastChild != nil {
					node = node.lastChild
					sibling = nil
					continue
				}
				sibling = node.prevSibling
			}
		}

		node = node.parentNode
		if node == nil || node == tw.root {
			return nil
		}
		if tw.accept(node) == FilterAccept {
			return nil
		}
	}
}

// NextSibling navigates to the next accepted sibling.
func (tw *TreeWalker) NextSibling() *Node { return tw.nextOrPreviousSibling(true) }

// PreviousSibling navigates to the previous accepted sibling.
func (tw *TreeWalker) PreviousSibling() *Node { return tw.nextOrPreviousSibling(false) }

// NextNode navigates forward in document order to the next accepted node.
func (tw *TreeWalker) NextNode() *Node {
	node := tw.currentNode
	for {
		for node.firstChild != nil {
			next := node.firstChild
			result := tw.accept(next)
			if result == FilterReject {
				break
			}
			node = next
			if result == FilterAccept {
				tw.currentNode = node
				return node
			}
		}

		candidate := node
		for candidate != nil && candidate != tw.root {
			if candidate.nextSibling != nil {
				candidate = candidate.nextSibling
				result := tw.accept(candidate)
				if result == FilterAccept {
					tw.currentNode = candidate
					return candidate
				}
				node = candidate
				if result == FilterSkip {
					goto descend
				}
				candidate = nil
				break
			}
			candidate = candidate.parentNode
		}
		if candidate == nil {
			return nil
		}
	descend:
	}
}

// PreviousNode navigates backward in document order to the previous
// accepted node.
func (tw *TreeWalker) PreviousNode() *Node {
	node := tw.currentNode
	for node != tw.root {
		sibling := node.prevSibling
		for sibling != nil {
			node = sibling
			result := tw.accept(node)
			for result != FilterReject && node.lastChild != nil {
				node = node.lastChild
				result = tw.accept(node)
			}
			if result == FilterAccept {
				tw.currentNode = node
				return node
			}
			sibling = node.prevSibling
		}

		if node == tw.root || node.parentNode == nil {
			return nil
		}
		node = node.parentNode
		if tw.accept(node) == FilterAccept {
			tw.currentNode = node
			return node
		}
	}
	return nil
}
