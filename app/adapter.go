package app

import (
	"encoding/xml"
	"net/url"

	"github.com/andaru/syndication/atom"
	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/fill"
	"github.com/andaru/syndication/format"
	"github.com/andaru/syndication/settings"
	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
)

func name(local string) xml.Name { return xmlutil.XMLName(local, xmlutil.NSApp) }

func attr(local string) xml.Name { return xml.Name{Local: local} }

var atomTitle = xmlutil.XMLName("title", xmlutil.NSAtom10)

func title[T any](set func(T, *atom.Text)) fill.NodeFunc[T] {
	return func(t T, n *xmlquery.Node, c *fill.Context) {
		if v := atom.ReadText(n, c); v != nil {
			set(t, v)
		}
	}
}

var categoriesTable = fill.Table[*Categories]{
	fill.Attr(attr("href"), fill.URI(func(cs *Categories, u *url.URL) { cs.Href = u })),
	fill.Attr(attr("fixed"), fill.Bool(func(cs *Categories, b bool) { cs.Fixed = b })),
	fill.Attr(attr("scheme"), fill.URI(func(cs *Categories, u *url.URL) { cs.Scheme = u })),
	fill.Each(xmlutil.XMLName("category", xmlutil.NSAtom10), func(cs *Categories, n *xmlquery.Node, c *fill.Context) {
		cat := atom.ReadCategory(n, c)
		// categories without a scheme inherit the list's
		if cat.Scheme == nil && cs.Scheme != nil {
			u := *cs.Scheme
			cat.Scheme = &u
		}
		cs.Categories = append(cs.Categories, cat)
	}),
}

var collectionTable = fill.Table[*Collection]{
	fill.Attr(attr("href"), fill.URI(func(col *Collection, u *url.URL) { col.Href = u })),
	fill.Child(atomTitle, title(func(col *Collection, t *atom.Text) { col.Title = t })),
	fill.Each(name("accept"), func(col *Collection, n *xmlquery.Node, _ *fill.Context) {
		col.Accepts = append(col.Accepts, xmlutil.Text(n))
	}),
	fill.Each(name("categories"), func(col *Collection, n *xmlquery.Node, c *fill.Context) {
		cs := &Categories{}
		categoriesTable.Apply(cs, n, c)
		col.Categories = append(col.Categories, cs)
	}),
}

var workspaceTable = fill.Table[*Workspace]{
	fill.Child(atomTitle, title(func(w *Workspace, t *atom.Text) { w.Title = t })),
	fill.Each(name("collection"), func(w *Workspace, n *xmlquery.Node, c *fill.Context) {
		col := &Collection{}
		collectionTable.Apply(col, n, c)
		c.Extend(col, n)
		w.Collections = append(w.Collections, col)
	}),
}

var serviceTable = fill.Table[*ServiceDocument]{
	fill.Each(name("workspace"), func(d *ServiceDocument, n *xmlquery.Node, c *fill.Context) {
		w := &Workspace{}
		workspaceTable.Apply(w, n, c)
		c.Extend(w, n)
		d.Workspaces = append(d.Workspaces, w)
	}),
}

// Adapter fills a ServiceDocument or a CategoryDocument from an Atom
// Publishing Protocol document.
type Adapter struct {
	src *fill.Source
}

// NewAdapter returns an Adapter for doc, a parsed APP 1.0 service or
// category document. Extensions are looked up in reg.
func NewAdapter(doc *xmlquery.Node, s settings.Load, reg *extension.Registry) (*Adapter, error) {
	src, err := fill.NewSource("app.NewAdapter", doc, s, reg, xmlutil.NSApp, xmlutil.NSAtom10)
	if err != nil {
		return nil, err
	}
	if src.Version() != format.V10 {
		f, _ := format.Detect(doc)
		return nil, src.Unsupported(f)
	}
	return &Adapter{src: src}, nil
}

// Versions returns the APP versions an Adapter can fill from.
func Versions() []format.Version { return []format.Version{format.V10} }

// Version returns the APP version of the adapter's document.
func (a *Adapter) Version() format.Version { return a.src.Version() }

// Extensions returns the adapter used to discover extensions.
func (a *Adapter) Extensions() *extension.Adapter { return a.src.Extensions() }

// Fill populates target, a *ServiceDocument from a service document or
// a *CategoryDocument from a category document. A document whose root
// does not match the target leaves it untouched.
func (a *Adapter) Fill(target format.Resource) error {
	switch t := target.(type) {
	case *ServiceDocument:
		if t != nil {
			a.fillService(t)
			return nil
		}
	case *CategoryDocument:
		if t != nil {
			a.fillCategories(t)
			return nil
		}
	}
	return fill.WrongTarget("app.Adapter.Fill", target)
}

func (a *Adapter) fillService(d *ServiceDocument) {
	root := a.src.Select(name("service"))
	if root == nil {
		return
	}
	c := a.src.Context(root)
	d.Version = a.src.Version()
	serviceTable.Apply(d, root, c)
	c.Extend(d, root)
}

func (a *Adapter) fillCategories(d *CategoryDocument) {
	root := a.src.Select(name("categories"))
	if root == nil {
		return
	}
	c := a.src.Context(root)
	d.Version = a.src.Version()
	categoriesTable.Apply(&d.Categories, root, c)
	c.Extend(d, root)
}
