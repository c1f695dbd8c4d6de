package dom

// Text represents a text node in the DOM.
type Text Node

// AsNode returns the underlying Node.
func (t *Text) AsNode() *Node {
	return (*Node)(t)
}

// NodeType returns TextNode (3).
func (t *Text) NodeType() NodeType {
	return TextNode
}

// NodeName returns "#text".
func (t *Text) NodeName() string {
	return "#text"
}

// Data returns the text content.
func (t *Text) Data() string {
	return t.AsNode().NodeValue()
}

// SetData sets the text content.
func (t *Text) SetData(data string) {
	t.AsNode().SetNodeValue(data)
}

// Length returns the length of the text content.
func (t *Text) Length() int {
	return cdLength(t.AsNode())
}

// WholeText returns the text of this node and all adjacent text nodes.
func (t *Text) WholeText() string {
	// Find the first text node in the sequence
	first := t.AsNode()
	for first.prevSibling != nil && first.prevSibling.nodeType == TextNode {
		first = first.prevSibling
	}

	// Concatenate all adjacent text nodes
	var result string
	for node := first; node != nil && node.nodeType == TextNode; node = node.nextSibling {
		result += node.NodeValue()
	}
	return result
}

// SubstringData extracts a substring of the text.
func (t *Text) SubstringData(offset, count int) string {
	return cdSubstringData(t.AsNode(), offset, count)
}

// AppendData appends a string to the text.
// This is equivalent to insertData(length, data).
func (t *Text) AppendData(data string) {
	cdAppendData(t.AsNode(), data)
}

// InsertData inserts a string at the given offset.
// This is equivalent to replaceData(offset, 0, data).
func (t *Text) InsertData(offset int, data string) {
	cdInsertData(t.AsNode(), offset, data)
}

// DeleteData deletes characters starting at the given offset.
// This is equivalent to replaceData(offset, count, "").
func (t *Text) DeleteData(offset, count int) {
	cdDeleteData(t.AsNode(), offset, count)
}

// ReplaceData replaces characters starting at the given offset.
func (t *Text) ReplaceData(offset, count int, data string) {
	cdReplaceData(t.AsNode(), offset, count, data)
}

// SplitText splits this text node at the given offset.
// Returns the new text node containing the text after the offset.
func (t *Text) SplitText(offset int) *Text {
	data := t.Data()
	if offset < 0 || offset > len(data) {
		return nil
	}

	// Create new text node with the text after offset
	newData := data[offset:]
	newNode := t.AsNode().ownerDoc.CreateTextNode(newData)
	newText := (*Text)(newNode)

	// Truncate this node
	t.SetData(data[:offset])

	// Insert new node after this one
	parent := t.AsNode().parentNode
	if parent != nil {
		parent.InsertBefore(newNode, t.AsNode().nextSibling)
	}

	return newText
}

// CloneNode clones this text node.
func (t *Text) CloneNode(deep bool) *Text {
	clone := t.AsNode().ownerDoc.CreateTextNode(t.Data())
	return (*Text)(clone)
}

// IsElementContentWhitespace returns true if this is element content whitespace.
// This is a simplified implementation.
func (t *Text) IsElementContentWhitespace() bool {
	for _, r := range t.Data() {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

// Before inserts nodes before this text node.
// Implements the ChildNode.before() algorithm from DOM spec.
func (t *Text) Before(nodes ...interface{}) {
	cdBefore(t.AsNode(), nodes...)
}

// After inserts nodes after this text node.
// Implements the ChildNode.after() algorithm from DOM spec.
func (t *Text) After(nodes ...interface{}) {
	cdAfter(t.AsNode(), nodes...)
}

// ReplaceWith replaces this text node with nodes.
// Implements the ChildNode.replaceWith() algorithm from DOM spec.
func (t *Text) ReplaceWith(nodes ...interface{}) {
	cdReplaceWith(t.AsNode(), nodes...)
}

// Remove removes this text node from its parent.
func (t *Text) Remove() {
	cdRemove(t.AsNode())
}

// NewTextNode creates a new detached text node with the given data.
// The node has no owner document.
func NewTextNode(data string) *Node {
	node := newNode(TextNode, "#text", nil)
	node.textData = &data
	node.nodeValue = &data
	return node
}
