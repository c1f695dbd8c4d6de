package dom

import "testing"

func TestURLValuedAttributeCachesParsedURL(t *testing.T) {
	impl := &DOMImplementation{}
	doc, err := impl.CreateDocumentWithError("", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	el := doc.CreateElement("a")
	el.SetAttribute("href", "https://example.com/path")

	attr := el.Attributes().GetNamedItem("href")
	if attr == nil {
		t.Fatalf("expected href attribute to exist")
	}
	parsed, ok := attr.ParsedURL()
	if !ok || parsed == nil {
		t.Fatalf("expected href to parse as an absolute URL")
	}
}

func TestNonURLAttributeHasNoParsedURL(t *testing.T) {
	impl := &DOMImplementation{}
	doc, err := impl.CreateDocumentWithError("", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	el := doc.CreateElement("div")
	el.SetAttribute("class", "widget")

	attr := el.Attributes().GetNamedItem("class")
	if attr == nil {
		t.Fatalf("expected class attribute to exist")
	}
	if _, ok := attr.ParsedURL(); ok {
		t.Fatalf("class is not in urlValuedAttributes, expected no cached URL")
	}
}

func TestRelativeHrefDoesNotParseAsAbsoluteURL(t *testing.T) {
	impl := &DOMImplementation{}
	doc, err := impl.CreateDocumentWithError("", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	el := doc.CreateElement("a")
	el.SetAttribute("href", "/relative/path")

	attr := el.Attributes().GetNamedItem("href")
	if _, ok := attr.ParsedURL(); ok {
		t.Fatalf("a relative href has no absolute-URL parse, expected ParsedURL to report false")
	}
}
