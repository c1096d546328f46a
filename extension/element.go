package extension

import (
	"encoding/xml"

	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
)

// in reports whether space is one of spaces
func in(space string, spaces []string) bool {
	for _, s := range spaces {
		if s == space {
			return true
		}
	}
	return false
}

// Child returns the first element child of n named local in any of
// spaces. Extensions known under several namespace URIs use it to read
// documents written against either.
func Child(n *xmlquery.Node, local string, spaces ...string) *xmlquery.Node {
	for _, c := range xmlutil.Elements(n) {
		if c.Data == local && in(c.NamespaceURI, spaces) {
			return c
		}
	}
	return nil
}

// Children returns every element child of n named local in any of spaces.
func Children(n *xmlquery.Node, local string, spaces ...string) (found []*xmlquery.Node) {
	for _, c := range xmlutil.Elements(n) {
		if c.Data == local && in(c.NamespaceURI, spaces) {
			found = append(found, c)
		}
	}
	return found
}

// ChildText returns the trimmed text of Child(n, local, spaces...).
func ChildText(n *xmlquery.Node, local string, spaces ...string) (string, bool) {
	c := Child(n, local, spaces...)
	if c == nil {
		return "", false
	}
	return xmlutil.Text(c), true
}

// AttrValue returns the value of the attribute of n named local in any of
// spaces.
func AttrValue(n *xmlquery.Node, local string, spaces ...string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if !xmlutil.IsDeclaration(a.Name) && a.Name.Local == local && in(a.NamespaceURI, spaces) {
			return a.Value, true
		}
	}
	return "", false
}

// WriteText writes <name>text</name>, or nothing when text is empty.
func WriteText(e *xml.Encoder, name xml.Name, text string) error {
	if text == "" {
		return nil
	}
	return e.EncodeElement(text, xml.StartElement{Name: name})
}

// WriteEmpty writes the empty element <name/> with attrs.
func WriteEmpty(e *xml.Encoder, name xml.Name, attrs ...xml.Attr) error {
	start := xml.StartElement{Name: name, Attr: attrs}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}
