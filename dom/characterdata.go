package dom

// Comment, CDATASection, Text, and ProcessingInstruction all implement the
// WHATWG "CharacterData" interface: the same substringData/appendData/
// insertData/deleteData/replaceData/before/after/replaceWith/remove
// algorithms, operating on whatever single string each node kind holds. Go
// has no interface inheritance, so rather than four copies of the same
// offset arithmetic (which is how this module's teacher carried it, and
// which let Comment/CDATASection/ProcessingInstruction quietly skip the
// precise-offset Range notification Text alone used to get), every
// CharacterData node kind's methods below delegate to these functions.

// characterDataReplace implements the "replace data" algorithm
// (https://dom.spec.whatwg.org/#concept-cd-replace): offset/count identify
// the slice of n's current data being replaced by data. It notifies
// OnReplaceData with the precise offset/count/data so live Ranges anchored
// inside n adjust their boundary points correctly, matching what
// dom/range_mutations.go's rangeMutationHandler.OnReplaceData expects --
// previously only Text routed through this, so a live Range with an
// endpoint inside a mutated Comment, CDATASection, or ProcessingInstruction
// silently went stale.
func characterDataReplace(n *Node, offset, count int, data string) {
	current := cdCurrentData(n)
	end := offset + count
	if end > len(current) {
		end = len(current)
	}

	notifyReplaceData(n, offset, count, data)

	newValue := current[:offset] + data + current[end:]
	switch n.nodeType {
	case TextNode, CDATASectionNode:
		if n.textData != nil {
			*n.textData = newValue
		}
	case CommentNode:
		if n.commentData != nil {
			*n.commentData = newValue
		}
	}
	n.nodeValue = &newValue
}

func cdCurrentData(n *Node) string {
	return n.NodeValue()
}

func cdLength(n *Node) int {
	return len(cdCurrentData(n))
}

func cdSubstringData(n *Node, offset, count int) string {
	data := cdCurrentData(n)
	if offset < 0 || offset > len(data) {
		return ""
	}
	end := offset + count
	if end > len(data) {
		end = len(data)
	}
	return data[offset:end]
}

func cdAppendData(n *Node, data string) {
	characterDataReplace(n, len(cdCurrentData(n)), 0, data)
}

func cdInsertData(n *Node, offset int, data string) {
	current := cdCurrentData(n)
	if offset < 0 {
		offset = 0
	}
	if offset > len(current) {
		offset = len(current)
	}
	characterDataReplace(n, offset, 0, data)
}

func cdDeleteData(n *Node, offset, count int) {
	current := cdCurrentData(n)
	if offset < 0 || offset >= len(current) {
		return
	}
	if count < 0 {
		count = 0
	}
	if offset+count > len(current) {
		count = len(current) - offset
	}
	characterDataReplace(n, offset, count, "")
}

func cdReplaceData(n *Node, offset, count int, data string) {
	current := cdCurrentData(n)
	if offset < 0 || offset > len(current) {
		return
	}
	if count < 0 {
		count = 0
	}
	if offset+count > len(current) {
		count = len(current) - offset
	}
	characterDataReplace(n, offset, count, data)
}

// cdBefore, cdAfter, and cdReplaceWith implement the ChildNode mixin's
// before()/after()/replaceWith() algorithms, sharing Text's viable-sibling
// logic (node.go's convertNodesToFragment/findViablePreviousSibling/
// findViableNextSibling) rather than the simpler ad hoc version
// Comment/CDATASection/ProcessingInstruction used to have, which didn't
// correctly skip nodes in the nodes-to-insert set when computing the
// reference sibling.
func cdBefore(n *Node, nodes ...interface{}) {
	parent := n.parentNode
	if parent == nil {
		return
	}
	nodeSet := extractNodeSet(nodes)
	viablePrevSibling := n.findViablePreviousSibling(nodeSet)

	node := n.convertNodesToFragment(nodes)
	if node == nil {
		return
	}

	var refNode *Node
	if viablePrevSibling == nil {
		refNode = parent.firstChild
	} else {
		refNode = viablePrevSibling.nextSibling
	}
	parent.InsertBefore(node, refNode)
}

func cdAfter(n *Node, nodes ...interface{}) {
	parent := n.parentNode
	if parent == nil {
		return
	}
	nodeSet := extractNodeSet(nodes)
	viableNextSibling := n.findViableNextSibling(nodeSet)

	node := n.convertNodesToFragment(nodes)
	if node == nil {
		return
	}
	parent.InsertBefore(node, viableNextSibling)
}

func cdReplaceWith(n *Node, nodes ...interface{}) {
	parent := n.parentNode
	if parent == nil {
		return
	}
	nodeSet := extractNodeSet(nodes)
	viableNextSibling := n.findViableNextSibling(nodeSet)

	node := n.convertNodesToFragment(nodes)

	if n.parentNode == parent {
		if node != nil {
			parent.ReplaceChild(node, n)
		} else {
			parent.RemoveChild(n)
		}
	} else if node != nil {
		parent.InsertBefore(node, viableNextSibling)
	}
}

func cdRemove(n *Node) {
	if n.parentNode != nil {
		n.parentNode.RemoveChild(n)
	}
}
