package apml

import (
	"encoding/xml"
	"time"

	"github.com/andaru/syndication/coerce"
	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/fill"
	"github.com/andaru/syndication/format"
	"github.com/andaru/syndication/settings"
	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
)

func attr(local string) xml.Name { return xml.Name{Local: local} }

// weight returns a TextFunc setting an attention value in [-1, 1]
func weight[T any](set func(T, float64)) fill.TextFunc[T] {
	return func(t T, s string, n *xmlquery.Node, c *fill.Context) {
		v, ok := coerce.Float(s)
		switch {
		case !ok:
			c.Skip(n, s, "malformed value")
		case v < -1 || v > 1:
			c.Skip(n, s, "value out of range")
		default:
			set(t, v)
		}
	}
}

var conceptTable = fill.Table[*Concept]{
	fill.Attr(attr("key"), fill.String(func(cn *Concept, s string) { cn.Key = s })),
	fill.Attr(attr("value"), weight(func(cn *Concept, v float64) { cn.Value = v })),
	fill.Attr(attr("from"), fill.String(func(cn *Concept, s string) { cn.From = s })),
	fill.Attr(attr("updated"), fill.Time(coerce.RFC3339, func(cn *Concept, t time.Time) { cn.Updated = t })),
}

var sourceAttrs = fill.Table[*Source]{
	fill.Attr(attr("key"), fill.String(func(src *Source, s string) { src.Key = s })),
	fill.Attr(attr("name"), fill.String(func(src *Source, s string) { src.Name = s })),
	fill.Attr(attr("value"), weight(func(src *Source, v float64) { src.Value = v })),
	fill.Attr(attr("type"), fill.String(func(src *Source, s string) { src.Type = s })),
	fill.Attr(attr("from"), fill.String(func(src *Source, s string) { src.From = s })),
	fill.Attr(attr("updated"), fill.Time(coerce.RFC3339, func(src *Source, t time.Time) { src.Updated = t })),
}

// tables holds the rules for APML elements in one namespace. APML is
// published both in its namespace and without one.
type tables struct {
	head     fill.Table[*Head]
	document fill.Table[*Document]
}

func newTables(ns string) *tables {
	name := func(local string) xml.Name { return xmlutil.XMLName(local, ns) }

	sourceTable := fill.Concat(sourceAttrs, fill.Table[*Source]{
		fill.Each(name("Author"), func(src *Source, n *xmlquery.Node, c *fill.Context) {
			cn := Concept{}
			conceptTable.Apply(&cn, n, c)
			src.Authors = append(src.Authors, Author(cn))
		}),
	})
	dataTable := fill.Table[*Data]{
		fill.Within(name("Concepts"), name("Concept"), func(d *Data, n *xmlquery.Node, c *fill.Context) {
			cn := Concept{}
			conceptTable.Apply(&cn, n, c)
			d.Concepts = append(d.Concepts, cn)
		}),
		fill.Within(name("Sources"), name("Source"), func(d *Data, n *xmlquery.Node, c *fill.Context) {
			src := Source{}
			sourceTable.Apply(&src, n, c)
			d.Sources = append(d.Sources, src)
		}),
	}
	profileTable := fill.Table[*Profile]{
		fill.Attr(attr("name"), fill.String(func(p *Profile, s string) { p.Name = s })),
		fill.Child(name("ImplicitData"), func(p *Profile, n *xmlquery.Node, c *fill.Context) {
			dataTable.Apply(&p.Implicit, n, c)
		}),
		fill.Child(name("ExplicitData"), func(p *Profile, n *xmlquery.Node, c *fill.Context) {
			dataTable.Apply(&p.Explicit, n, c)
		}),
	}
	bodyTable := fill.Table[*Document]{
		fill.Attr(attr("defaultprofile"), fill.String(func(d *Document, s string) { d.DefaultProfile = s })),
		fill.Each(name("Profile"), func(d *Document, n *xmlquery.Node, c *fill.Context) {
			p := &Profile{}
			profileTable.Apply(p, n, c)
			d.Profiles = append(d.Profiles, p)
		}),
		fill.Within(name("Applications"), name("Application"), func(d *Document, n *xmlquery.Node, c *fill.Context) {
			app := Application{Data: xmlutil.InnerXML(n)}
			app.Name, _ = xmlutil.AttrValue(n, attr("name"))
			d.Applications = append(d.Applications, app)
		}),
	}

	t := &tables{
		head: fill.Table[*Head]{
			fill.Elem(name("Title"), fill.String(func(h *Head, s string) { h.Title = s })),
			fill.Elem(name("Generator"), fill.String(func(h *Head, s string) { h.Generator = s })),
			fill.Elem(name("UserEmail"), fill.String(func(h *Head, s string) { h.UserEmail = s })),
			fill.Elem(name("DateCreated"), fill.Time(coerce.RFC3339, func(h *Head, t time.Time) { h.DateCreated = t })),
		},
	}
	t.document = fill.Table[*Document]{
		fill.Child(name("Head"), func(d *Document, n *xmlquery.Node, c *fill.Context) { t.head.Apply(&d.Head, n, c) }),
		fill.Child(name("Body"), func(d *Document, n *xmlquery.Node, c *fill.Context) { bodyTable.Apply(d, n, c) }),
	}
	return t
}

// byNamespace maps the namespace of the APML root to its rules
var byNamespace = map[string]*tables{
	xmlutil.NSApml: newTables(xmlutil.NSApml),
	"":             newTables(""),
}

// Adapter fills a Document from an APML document.
type Adapter struct {
	src *fill.Source
}

// NewAdapter returns an Adapter for doc, a parsed APML 0.6 document.
// Extensions are looked up in reg.
func NewAdapter(doc *xmlquery.Node, s settings.Load, reg *extension.Registry) (*Adapter, error) {
	src, err := fill.NewSource("apml.NewAdapter", doc, s, reg, xmlutil.NSApml)
	if err != nil {
		return nil, err
	}
	if src.Version() != format.V06 {
		return nil, src.Unsupported(format.Apml)
	}
	return &Adapter{src: src}, nil
}

// Versions returns the APML versions an Adapter can fill from.
func Versions() []format.Version { return []format.Version{format.V06} }

// Version returns the APML version of the adapter's document.
func (a *Adapter) Version() format.Version { return a.src.Version() }

// Extensions returns the adapter used to discover extensions.
func (a *Adapter) Extensions() *extension.Adapter { return a.src.Extensions() }

// Fill populates target, which must be a *Document.
func (a *Adapter) Fill(target format.Resource) error {
	d, ok := target.(*Document)
	if !ok || d == nil {
		return fill.WrongTarget("apml.Adapter.Fill", target)
	}
	for ns, t := range byNamespace {
		root := a.src.Select(xmlutil.XMLName("APML", ns))
		if root == nil {
			continue
		}
		c := a.src.Context(root)
		d.Version = a.src.Version()
		t.document.Apply(d, root, c)
		c.Extend(d, root)
		return nil
	}
	return nil
}
