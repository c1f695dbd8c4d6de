package dom

import (
	"os"
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TestMain registers a default FragmentParser before running this package's
// tests. Without one, every SetInnerHTML/SetOuterHTML/InsertAdjacentHTML
// call hits dom/fragmentparser.go's parseFragment seam and fails with
// ErrNotSupported -- this mirrors the "a host embedding this module installs
// one... during startup" note on SetDefaultFragmentParser, just with the
// test binary playing the role of the host. golang.org/x/net/html is
// already a dependency of this package (document.go's ParseHTML uses it for
// whole-document parsing); this reuses it for fragments instead of adding
// anything new.
func TestMain(m *testing.M) {
	SetDefaultFragmentParser(FragmentParserFunc(parseFragmentWithXNetHTML))
	os.Exit(m.Run())
}

// parseFragmentWithXNetHTML adapts golang.org/x/net/html's ParseFragment
// (which parses in the insertion mode appropriate to a given context
// element, e.g. inside <table> or <select>) to the FragmentParser contract,
// reusing convertHTMLTree -- the same html.Node -> dom.Node conversion
// ParseHTML already relies on -- to build the result nodes.
func parseFragmentWithXNetHTML(htmlContent string, contextElement *Element, doc *Document) ([]*Node, error) {
	ctxName := "body"
	if contextElement != nil {
		ctxName = strings.ToLower(contextElement.LocalName())
	}
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     ctxName,
		DataAtom: atom.Lookup([]byte(ctxName)),
	}

	parsed, err := html.ParseFragment(strings.NewReader(htmlContent), context)
	if err != nil {
		return nil, err
	}

	holder := &html.Node{Type: html.ElementNode, Data: ctxName, DataAtom: context.DataAtom}
	for _, n := range parsed {
		holder.AppendChild(n)
	}

	temp := doc.CreateDocumentFragment()
	convertHTMLTree(holder, temp.AsNode(), doc)

	var out []*Node
	for c := temp.AsNode().FirstChild(); c != nil; {
		next := c.NextSibling()
		temp.AsNode().RemoveChild(c)
		out = append(out, c)
		c = next
	}
	return out, nil
}
