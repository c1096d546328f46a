package fill

import (
	"encoding/xml"

	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
)

// TextFunc applies the text s, read from n, to t. For attribute rules n
// is the element holding the attribute.
type TextFunc[T any] func(t T, s string, n *xmlquery.Node, c *Context)

// NodeFunc applies the element n to t.
type NodeFunc[T any] func(t T, n *xmlquery.Node, c *Context)

type ruleKind int

const (
	kindElem ruleKind = iota
	kindAttr
	kindNode
	kindEach
)

// Rule maps one element child or attribute onto a value object.
type Rule[T any] struct {
	Name xml.Name
	kind ruleKind
	text TextFunc[T]
	node NodeFunc[T]
}

// Elem applies the text of the first child named name.
func Elem[T any](name xml.Name, f TextFunc[T]) Rule[T] {
	return Rule[T]{Name: name, kind: kindElem, text: f}
}

// Attr applies the value of the attribute named name.
func Attr[T any](name xml.Name, f TextFunc[T]) Rule[T] {
	return Rule[T]{Name: name, kind: kindAttr, text: f}
}

// Child applies the first child named name.
func Child[T any](name xml.Name, f NodeFunc[T]) Rule[T] {
	return Rule[T]{Name: name, kind: kindNode, node: f}
}

// Each applies every child named name, within the retrieval limit.
func Each[T any](name xml.Name, f NodeFunc[T]) Rule[T] {
	return Rule[T]{Name: name, kind: kindEach, node: f}
}

// Within applies f to every child named item of the first child named
// container, within the retrieval limit.
func Within[T any](container, item xml.Name, f NodeFunc[T]) Rule[T] {
	each := Table[T]{Each(item, f)}
	return Child(container, func(t T, n *xmlquery.Node, c *Context) { each.Apply(t, n, c) })
}

// Table is an ordered list of rules.
type Table[T any] []Rule[T]

// Apply applies every rule of tbl to t, reading from n.
func (tbl Table[T]) Apply(t T, n *xmlquery.Node, c *Context) {
	if n == nil {
		return
	}
	for _, r := range tbl {
		r.apply(t, n, c)
	}
}

func (r Rule[T]) apply(t T, n *xmlquery.Node, c *Context) {
	switch r.kind {
	case kindElem:
		if child := xmlutil.Child(n, r.Name); child != nil {
			r.text(t, xmlutil.Text(child), child, c)
		}
	case kindAttr:
		if v, ok := xmlutil.AttrValue(n, r.Name); ok {
			r.text(t, v, n, c)
		}
	case kindNode:
		if child := xmlutil.Child(n, r.Name); child != nil {
			r.node(t, child, c)
		}
	case kindEach:
		for _, child := range c.Limit(xmlutil.Children(n, r.Name)) {
			r.node(t, child, c)
		}
	}
}

// Concat returns the concatenation of tables, for dialect versions
// extending an earlier version's rules.
func Concat[T any](tables ...Table[T]) (out Table[T]) {
	for _, tbl := range tables {
		out = append(out, tbl...)
	}
	return out
}
