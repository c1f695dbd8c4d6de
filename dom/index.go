package dom

import "strings"

// docIndex is a Document's accelerator: an id map for O(k) getElementById
// (k is the number of elements sharing an id, almost always 0 or 1) plus
// tag/class presence sets that let a collection short-circuit to empty
// without a tree walk when nothing in the document could match. It
// registers itself as a MutationCallback so it tracks the tree
// incrementally instead of rescanning on every query.
type docIndex struct {
	doc *Document

	byID    map[string][]*Element
	byTag   map[string]map[*Element]struct{}
	byClass map[string]map[*Element]struct{}
}

func newDocIndex(doc *Document) *docIndex {
	idx := &docIndex{
		doc:     doc,
		byID:    make(map[string][]*Element),
		byTag:   make(map[string]map[*Element]struct{}),
		byClass: make(map[string]map[*Element]struct{}),
	}
	idx.rebuildFull()
	return idx
}

// rebuildFull walks the whole document once to seed the index. It runs only
// at construction time; after that the index is kept current incrementally
// from mutation notifications.
func (idx *docIndex) rebuildFull() {
	var walk func(n *Node)
	walk = func(n *Node) {
		for child := n.firstChild; child != nil; child = child.nextSibling {
			if child.nodeType == ElementNode {
				idx.addElement((*Element)(child))
				walk(child)
			}
		}
	}
	walk((*Node)(idx.doc))
}

func (idx *docIndex) addElement(el *Element) {
	if id := el.Id(); id != "" {
		idx.byID[id] = append(idx.byID[id], el)
	}
	idx.addTag(el)
	for _, class := range el.ClassList().Values() {
		idx.addClass(el, class)
	}
}

func (idx *docIndex) removeElement(el *Element) {
	if id := el.Id(); id != "" {
		idx.removeFromSlice(idx.byID, id, el)
	}
	idx.removeTag(el)
	for _, class := range el.ClassList().Values() {
		idx.removeClass(el, class)
	}
}

func (idx *docIndex) addTag(el *Element) {
	tag := el.TagName()
	set := idx.byTag[tag]
	if set == nil {
		set = make(map[*Element]struct{})
		idx.byTag[tag] = set
	}
	set[el] = struct{}{}
}

func (idx *docIndex) removeTag(el *Element) {
	tag := el.TagName()
	if set, ok := idx.byTag[tag]; ok {
		delete(set, el)
		if len(set) == 0 {
			delete(idx.byTag, tag)
		}
	}
}

func (idx *docIndex) addClass(el *Element, class string) {
	set := idx.byClass[class]
	if set == nil {
		set = make(map[*Element]struct{})
		idx.byClass[class] = set
	}
	set[el] = struct{}{}
}

func (idx *docIndex) removeClass(el *Element, class string) {
	if set, ok := idx.byClass[class]; ok {
		delete(set, el)
		if len(set) == 0 {
			delete(idx.byClass, class)
		}
	}
}

func (idx *docIndex) removeFromSlice(m map[string][]*Element, key string, el *Element) {
	list := m[key]
	for i, e := range list {
		if e == el {
			m[key] = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(m[key]) == 0 {
		delete(m, key)
	}
}

// elementByID returns the first element (in tree order) with the given id,
// or nil. There is almost always at most one candidate; ties (duplicate,
// spec-invalid ids) are broken by tree order.
func (idx *docIndex) elementByID(id string) *Element {
	candidates := idx.byID[id]
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return candidates[0]
	}
	first := candidates[0]
	for _, c := range candidates[1:] {
		if precedesInTreeOrder(c.AsNode(), first.AsNode()) {
			first = c
		}
	}
	return first
}

// mayHaveTag reports whether any element in the document currently has the
// given tag name. A false result lets a tag-name collection return empty
// without visiting the tree at all.
func (idx *docIndex) mayHaveTag(tag string) bool {
	_, ok := idx.byTag[tag]
	return ok
}

// mayHaveClass reports whether any element in the document currently
// carries the given class.
func (idx *docIndex) mayHaveClass(class string) bool {
	_, ok := idx.byClass[class]
	return ok
}

// walkSubtreeElements visits an element and its element descendants.
func walkSubtreeElements(n *Node, fn func(*Element)) {
	if n.nodeType == ElementNode {
		fn((*Element)(n))
	}
	for child := n.firstChild; child != nil; child = child.nextSibling {
		walkSubtreeElements(child, fn)
	}
}

// OnChildListMutation implements MutationCallback.
func (idx *docIndex) OnChildListMutation(target *Node, added, removed []*Node, _, _ *Node) {
	idx.doc.bumpGeneration()
	for _, n := range removed {
		walkSubtreeElements(n, idx.removeElement)
	}
	for _, n := range added {
		walkSubtreeElements(n, idx.addElement)
	}
}

// OnAttributeMutation implements MutationCallback. It only needs to act on
// id/class changes; other attributes don't affect the index.
func (idx *docIndex) OnAttributeMutation(target *Node, attributeName string, attributeNamespace string, oldValue string) {
	idx.doc.bumpGeneration()
	if target.nodeType != ElementNode {
		return
	}
	el := (*Element)(target)
	switch attributeName {
	case "id":
		if oldValue != "" {
			idx.removeFromSlice(idx.byID, oldValue, el)
		}
		if id := el.Id(); id != "" {
			idx.byID[id] = append(idx.byID[id], el)
		}
	case "class":
		for _, class := range strings.Fields(oldValue) {
			idx.removeClass(el, class)
		}
		for _, class := range el.ClassList().Values() {
			idx.addClass(el, class)
		}
	}
}

// OnCharacterDataMutation implements MutationCallback.
func (idx *docIndex) OnCharacterDataMutation(target *Node, oldValue string) {
	idx.doc.bumpGeneration()
}

// OnReplaceData implements MutationCallback.
func (idx *docIndex) OnReplaceData(target *Node, offset int, count int, data string) {
	idx.doc.bumpGeneration()
}

// ensureIndex returns this document's accelerator, building it on first use.
func (d *Document) ensureIndex() *docIndex {
	nd := (*Node)(d)
	if nd.documentData == nil {
		nd.documentData = &documentData{}
	}
	if nd.documentData.index == nil {
		nd.documentData.index = newDocIndex(d)
		RegisterMutationCallback(d, nd.documentData.index)
	}
	return nd.documentData.index
}

// Generation returns the document's current mutation generation. Live
// collections compare against this to know whether a cached result is
// still valid.
func (d *Document) Generation() uint64 {
	nd := (*Node)(d)
	if nd.documentData == nil {
		return 0
	}
	return nd.documentData.generation
}

func (d *Document) bumpGeneration() {
	nd := (*Node)(d)
	if nd.documentData == nil {
		nd.documentData = &documentData{}
	}
	nd.documentData.generation++
}
