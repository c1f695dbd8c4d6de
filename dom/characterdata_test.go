package dom

import "testing"

// Comment and ProcessingInstruction used to mutate through SetData/SetNodeValue
// alone, which only reaches OnCharacterDataMutation (a no-op for Range purposes,
// see range_mutations.go) -- a live Range anchored inside one went stale on
// insertData/deleteData/replaceData/appendData. dom/characterdata.go routes all
// four CharacterData kinds through the same offset-precise replace-data
// algorithm Text already used, so these now adjust correctly too.

func TestCommentReplaceDataAdjustsLiveRange(t *testing.T) {
	doc := NewDocument()
	commentNode := doc.CreateComment("hello world")
	doc.AsNode().AppendChild(commentNode)
	comment := (*Comment)(commentNode)

	r := doc.CreateRange()
	if err := r.SetStart(commentNode, 6); err != nil {
		t.Fatalf("SetStart failed: %v", err)
	}
	if err := r.SetEnd(commentNode, 11); err != nil {
		t.Fatalf("SetEnd failed: %v", err)
	}

	comment.ReplaceData(0, 5, "hi")

	if got := r.StartOffset(); got != 3 {
		t.Fatalf("want start offset 3 after replacing 5 chars with 2, got %d", got)
	}
	if got := r.EndOffset(); got != 8 {
		t.Fatalf("want end offset 8 after replacing 5 chars with 2, got %d", got)
	}
}

func TestProcessingInstructionInsertDataAdjustsLiveRange(t *testing.T) {
	doc := NewDocument()
	piNode := doc.CreateProcessingInstruction("target", "abcdef")
	doc.AsNode().AppendChild(piNode)
	pi := (*ProcessingInstruction)(piNode)

	r := doc.CreateRange()
	if err := r.SetStart(piNode, 4); err != nil {
		t.Fatalf("SetStart failed: %v", err)
	}

	pi.InsertData(2, "XYZ")

	if got := r.StartOffset(); got != 7 {
		t.Fatalf("want start offset 7 after inserting 3 chars before it, got %d", got)
	}
	if got := pi.Data(); got != "abXYZcdef" {
		t.Fatalf("want data abXYZcdef, got %q", got)
	}
}

func TestCommentBeforeUsesViableSibling(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	doc.AsNode().AppendChild(root.AsNode())
	commentNode := doc.CreateComment("c")
	root.AsNode().AppendChild(commentNode)
	comment := (*Comment)(commentNode)

	comment.Before("a", "b")

	var got []string
	for n := root.AsNode().FirstChild(); n != nil; n = n.NextSibling() {
		got = append(got, n.NodeValue())
	}
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("want [a b c], got %v", got)
	}
}
