package dom

// CDATASection represents a CDATA section in an XML document.
// CDATASection inherits from Text and has no additional attributes or methods.
// However, the nodeName is "#cdata-section" and nodeType is CDATASectionNode (4).
//
// Per the DOM spec, CDATA sections are only valid in XML documents.
// In HTML documents, they are not allowed and createCDATASection throws NotSupportedError.
type CDATASection Node

// AsNode returns the underlying Node.
func (c *CDATASection) AsNode() *Node {
	return (*Node)(c)
}

// NodeType returns CDATASectionNode (4).
func (c *CDATASection) NodeType() NodeType {
	return CDATASectionNode
}

// NodeName returns "#cdata-section".
func (c *CDATASection) NodeName() string {
	return "#cdata-section"
}

// Data returns the text content.
func (c *CDATASection) Data() string {
	return c.AsNode().NodeValue()
}

// SetData sets the text content.
func (c *CDATASection) SetData(data string) {
	c.AsNode().SetNodeValue(data)
}

// Length returns the length of the text content.
func (c *CDATASection) Length() int {
	return cdLength(c.AsNode())
}

// SubstringData extracts a substring of the text.
func (c *CDATASection) SubstringData(offset, count int) string {
	return cdSubstringData(c.AsNode(), offset, count)
}

// AppendData appends a string to the text.
func (c *CDATASection) AppendData(data string) {
	cdAppendData(c.AsNode(), data)
}

// InsertData inserts a string at the given offset.
func (c *CDATASection) InsertData(offset int, data string) {
	cdInsertData(c.AsNode(), offset, data)
}

// DeleteData deletes characters starting at the given offset.
func (c *CDATASection) DeleteData(offset, count int) {
	cdDeleteData(c.AsNode(), offset, count)
}

// ReplaceData replaces characters starting at the given offset.
func (c *CDATASection) ReplaceData(offset, count int, data string) {
	cdReplaceData(c.AsNode(), offset, count, data)
}

// SplitText splits this CDATASection node at the given offset.
// Returns the new CDATASection node containing the text after the offset.
func (c *CDATASection) SplitText(offset int) *CDATASection {
	data := c.Data()
	if offset < 0 || offset > len(data) {
		return nil
	}

	newData := data[offset:]
	newNode, _ := c.AsNode().ownerDoc.CreateCDATASectionWithError(newData)
	if newNode == nil {
		return nil
	}
	newCDATA := (*CDATASection)(newNode)

	c.SetData(data[:offset])

	parent := c.AsNode().parentNode
	if parent != nil {
		parent.InsertBefore(newNode, c.AsNode().nextSibling)
	}

	return newCDATA
}

// CloneNode clones this CDATASection node.
func (c *CDATASection) CloneNode(deep bool) *CDATASection {
	clone, _ := c.AsNode().ownerDoc.CreateCDATASectionWithError(c.Data())
	return (*CDATASection)(clone)
}

// Before inserts nodes before this CDATASection node.
func (c *CDATASection) Before(nodes ...interface{}) {
	cdBefore(c.AsNode(), nodes...)
}

// After inserts nodes after this CDATASection node.
func (c *CDATASection) After(nodes ...interface{}) {
	cdAfter(c.AsNode(), nodes...)
}

// ReplaceWith replaces this CDATASection node with nodes.
func (c *CDATASection) ReplaceWith(nodes ...interface{}) {
	cdReplaceWith(c.AsNode(), nodes...)
}

// Remove removes this CDATASection node from its parent.
func (c *CDATASection) Remove() {
	cdRemove(c.AsNode())
}

// NewCDATASectionNode creates a new detached CDATASection node with the given data.
// The node has no owner document.
func NewCDATASectionNode(data string) *Node {
	node := newNode(CDATASectionNode, "#cdata-section", nil)
	node.textData = &data
	node.nodeValue = &data
	return node
}
