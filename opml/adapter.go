package opml

import (
	"encoding/xml"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/andaru/syndication/coerce"
	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/fill"
	"github.com/andaru/syndication/format"
	"github.com/andaru/syndication/settings"
	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
)

func name(local string) xml.Name { return xml.Name{Local: local} }

var head1 = fill.Table[*Head]{
	fill.Elem(name("title"), fill.String(func(h *Head, s string) { h.Title = s })),
	fill.Elem(name("dateCreated"), fill.Time(coerce.RFC822, func(h *Head, t time.Time) { h.DateCreated = t })),
	fill.Elem(name("dateModified"), fill.Time(coerce.RFC822, func(h *Head, t time.Time) { h.DateModified = t })),
	fill.Elem(name("ownerName"), fill.String(func(h *Head, s string) { h.OwnerName = s })),
	fill.Elem(name("ownerEmail"), fill.String(func(h *Head, s string) { h.OwnerEmail = s })),
	fill.Elem(name("expansionState"), expansionState),
	fill.Elem(name("vertScrollState"), fill.Int(func(h *Head, v int) { h.VertScrollState = v })),
	fill.Elem(name("windowTop"), fill.Int(func(h *Head, v int) { h.WindowTop = v })),
	fill.Elem(name("windowLeft"), fill.Int(func(h *Head, v int) { h.WindowLeft = v })),
	fill.Elem(name("windowBottom"), fill.Int(func(h *Head, v int) { h.WindowBottom = v })),
	fill.Elem(name("windowRight"), fill.Int(func(h *Head, v int) { h.WindowRight = v })),
}

// head2 adds the OPML 2.0 head elements
var head2 = fill.Concat(head1, fill.Table[*Head]{
	fill.Elem(name("ownerId"), fill.URI(func(h *Head, u *url.URL) { h.OwnerID = u })),
	fill.Elem(name("docs"), fill.URI(func(h *Head, u *url.URL) { h.Docs = u })),
})

var heads = map[format.Version]fill.Table[*Head]{
	format.V10: head1,
	format.V11: head1,
	format.V20: head2,
}

func expansionState(h *Head, s string, n *xmlquery.Node, c *fill.Context) {
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p == "" {
			continue
		}
		if v, ok := coerce.Int(p); ok {
			h.ExpansionState = append(h.ExpansionState, v)
		} else {
			c.Skip(n, p, "malformed expansion state")
		}
	}
}

var outlineAttrs = fill.Table[*Outline]{
	fill.Attr(name("text"), fill.String(func(o *Outline, s string) { o.Text = s })),
	fill.Attr(name("type"), fill.String(func(o *Outline, s string) { o.Type = s })),
	fill.Attr(name("isComment"), fill.Bool(func(o *Outline, b bool) { o.IsComment = b })),
	fill.Attr(name("isBreakpoint"), fill.Bool(func(o *Outline, b bool) { o.IsBreakpoint = b })),
	fill.Attr(name("created"), fill.Time(coerce.RFC822, func(o *Outline, t time.Time) { o.Created = t })),
	fill.Attr(name("category"), fill.String(func(o *Outline, s string) {
		for _, cat := range strings.Split(s, ",") {
			if cat = strings.TrimSpace(cat); cat != "" {
				o.Categories = append(o.Categories, cat)
			}
		}
	})),
	fill.Attr(name("description"), fill.String(func(o *Outline, s string) { o.Description = s })),
	fill.Attr(name("htmlUrl"), fill.URI(func(o *Outline, u *url.URL) { o.HTMLURL = u })),
	fill.Attr(name("xmlUrl"), fill.URI(func(o *Outline, u *url.URL) { o.XMLURL = u })),
	fill.Attr(name("url"), fill.URI(func(o *Outline, u *url.URL) { o.URL = u })),
	fill.Attr(name("language"), fill.String(func(o *Outline, s string) { o.Language = s })),
	fill.Attr(name("title"), fill.String(func(o *Outline, s string) { o.Title = s })),
	fill.Attr(name("version"), fill.String(func(o *Outline, s string) { o.Version = s })),
}

var (
	outlineTable fill.Table[*Outline]
	known        = map[string]bool{}
)

func init() {
	for _, r := range outlineAttrs {
		known[r.Name.Local] = true
	}
	outlineTable = fill.Concat(outlineAttrs, fill.Table[*Outline]{
		fill.Each(name("outline"), func(o *Outline, n *xmlquery.Node, c *fill.Context) {
			o.Outlines = append(o.Outlines, outline(n, c))
		}),
	})
}

// outline reads an outline and, recursively, its children
func outline(n *xmlquery.Node, c *fill.Context) *Outline {
	o := &Outline{}
	outlineTable.Apply(o, n, c)
	for _, a := range n.Attr {
		if a.NamespaceURI != "" || xmlutil.IsDeclaration(a.Name) || known[a.Name.Local] {
			continue
		}
		if o.Attributes == nil {
			o.Attributes = map[string]string{}
		}
		o.Attributes[a.Name.Local] = a.Value
	}
	c.Extend(o, n)
	return o
}

// Adapter fills a Document from an OPML document.
type Adapter struct {
	src  *fill.Source
	head fill.Table[*Head]
}

// NewAdapter returns an Adapter for doc, a parsed OPML document.
// Extensions are looked up in reg.
func NewAdapter(doc *xmlquery.Node, s settings.Load, reg *extension.Registry) (*Adapter, error) {
	src, err := fill.NewSource("opml.NewAdapter", doc, s, reg)
	if err != nil {
		return nil, err
	}
	head, ok := heads[src.Version()]
	if !ok {
		return nil, src.Unsupported(format.Opml)
	}
	return &Adapter{src: src, head: head}, nil
}

// Versions returns the OPML versions an Adapter can fill from.
func Versions() []format.Version {
	vs := make([]format.Version, 0, len(heads))
	for v := range heads {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i].Less(vs[j]) })
	return vs
}

// Version returns the OPML version of the adapter's document.
func (a *Adapter) Version() format.Version { return a.src.Version() }

// Extensions returns the adapter used to discover extensions.
func (a *Adapter) Extensions() *extension.Adapter { return a.src.Extensions() }

// Fill populates target, which must be a *Document.
func (a *Adapter) Fill(target format.Resource) error {
	d, ok := target.(*Document)
	if !ok || d == nil {
		return fill.WrongTarget("opml.Adapter.Fill", target)
	}
	root := a.src.Select(name("opml"))
	if root == nil {
		return nil
	}
	c := a.src.Context(root)
	d.Version = a.src.Version()
	a.head.Apply(&d.Head, xmlutil.Child(root, name("head")), c)
	body := xmlutil.Child(root, name("body"))
	for _, n := range c.Limit(xmlutil.Children(body, name("outline"))) {
		d.Outlines = append(d.Outlines, outline(n, c))
	}
	c.Extend(d, root)
	return nil
}
