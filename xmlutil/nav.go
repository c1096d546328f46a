package xmlutil

import (
	"encoding/xml"
	"net/url"
	"strings"
	"sync"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Attrs returns the attributes of n as encoding/xml attributes, namespace
// declarations included.
func Attrs(n *xmlquery.Node) []xml.Attr {
	if n == nil || len(n.Attr) == 0 {
		return nil
	}
	attrs := make([]xml.Attr, 0, len(n.Attr))
	for _, a := range n.Attr {
		attrs = append(attrs, xml.Attr{Name: a.Name, Value: a.Value})
	}
	return attrs
}

// AttrValue returns the value of the attribute of n with the given
// expanded name. An empty name.Space selects an unqualified attribute.
func AttrValue(n *xmlquery.Node, name xml.Name) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if IsDeclaration(a.Name) {
			continue
		}
		if a.Name.Local == name.Local && a.NamespaceURI == name.Space {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first element child of n with the given expanded name.
func Child(n *xmlquery.Node, name xml.Name) *xmlquery.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == name.Local && c.NamespaceURI == name.Space {
			return c
		}
	}
	return nil
}

// Children returns the element children of n with the given expanded
// name, in document order.
func Children(n *xmlquery.Node, name xml.Name) (found []*xmlquery.Node) {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == name.Local && c.NamespaceURI == name.Space {
			found = append(found, c)
		}
	}
	return found
}

// Elements returns every element child of n, in document order.
func Elements(n *xmlquery.Node) (found []*xmlquery.Node) {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			found = append(found, c)
		}
	}
	return found
}

// Text returns the whitespace trimmed text content of n.
func Text(n *xmlquery.Node) string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.InnerText())
}

// ChildText returns the trimmed text of the first child of n named name.
func ChildText(n *xmlquery.Node, name xml.Name) (string, bool) {
	c := Child(n, name)
	if c == nil {
		return "", false
	}
	return Text(c), true
}

// InnerXML returns the serialized children of n.
func InnerXML(n *xmlquery.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(c.OutputXML(true))
	}
	return b.String()
}

// Document returns the top of the tree n belongs to.
func Document(n *xmlquery.Node) *xmlquery.Node {
	for n != nil && n.Parent != nil {
		n = n.Parent
	}
	return n
}

// DocumentElement returns the root element of the tree n belongs to.
func DocumentElement(n *xmlquery.Node) *xmlquery.Node {
	top := Document(n)
	if top == nil || top.Type == xmlquery.ElementNode {
		return top
	}
	for c := top.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return c
		}
	}
	return nil
}

// Base returns the xml:base in scope at n, with nested relative bases
// resolved against their ancestors.
func Base(n *xmlquery.Node) (*url.URL, bool) {
	var bases []string
	for it := n; it != nil; it = it.Parent {
		if v, ok := AttrValue(it, xml.Name{Space: NSXML, Local: attrXMLBase}); ok {
			bases = append(bases, strings.TrimSpace(v))
		}
	}
	var base *url.URL
	for i := len(bases) - 1; i >= 0; i-- {
		u, err := url.Parse(bases[i])
		if err != nil {
			continue
		}
		if base != nil {
			u = base.ResolveReference(u)
		}
		base = u
	}
	return base, base != nil
}

// Step returns a namespace aware XPath location step selecting elements
// named name.
func Step(name xml.Name) string {
	return "*[local-name()='" + name.Local + "' and namespace-uri()='" + name.Space + "']"
}

// Path returns the absolute XPath location path formed by names.
func Path(names ...xml.Name) string {
	steps := make([]string, 0, len(names))
	for _, name := range names {
		steps = append(steps, Step(name))
	}
	return "/" + strings.Join(steps, "/")
}

var exprs sync.Map

// Expr returns the compiled XPath expression for path. Compiled
// expressions are cached; path must be a valid expression.
func Expr(path string) *xpath.Expr {
	if e, ok := exprs.Load(path); ok {
		return e.(*xpath.Expr)
	}
	e := xpath.MustCompile(path)
	exprs.Store(path, e)
	return e
}

// SelectPath returns the first element reached by following names from
// the top of the tree n belongs to. The first name selects the root
// element.
func SelectPath(n *xmlquery.Node, names ...xml.Name) *xmlquery.Node {
	top := Document(n)
	if top == nil || len(names) == 0 {
		return nil
	}
	if top.Type != xmlquery.ElementNode {
		return xmlquery.QuerySelector(top, Expr(Path(names...)))
	}
	// detached element trees have no document node above the root
	if NodeName(top) != names[0] {
		return nil
	}
	if len(names) == 1 {
		return top
	}
	return xmlquery.QuerySelector(top, Expr(strings.TrimPrefix(Path(names[1:]...), "/")))
}

// SelectAllPath is SelectPath returning every match.
func SelectAllPath(n *xmlquery.Node, names ...xml.Name) []*xmlquery.Node {
	top := Document(n)
	if top == nil || len(names) == 0 {
		return nil
	}
	if top.Type != xmlquery.ElementNode {
		return xmlquery.QuerySelectorAll(top, Expr(Path(names...)))
	}
	if NodeName(top) != names[0] {
		return nil
	}
	if len(names) == 1 {
		return []*xmlquery.Node{top}
	}
	return xmlquery.QuerySelectorAll(top, Expr(strings.TrimPrefix(Path(names[1:]...), "/")))
}
