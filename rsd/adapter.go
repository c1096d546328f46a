package rsd

import (
	"encoding/xml"
	"net/url"

	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/fill"
	"github.com/andaru/syndication/format"
	"github.com/andaru/syndication/settings"
	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
)

func attr(local string) xml.Name { return xml.Name{Local: local} }

var apiAttrs = fill.Table[*API]{
	fill.Attr(attr("name"), fill.String(func(a *API, s string) { a.Name = s })),
	fill.Attr(attr("preferred"), fill.Bool(func(a *API, b bool) { a.Preferred = b })),
	fill.Attr(attr("apiLink"), fill.URI(func(a *API, u *url.URL) { a.APILink = u })),
	fill.Attr(attr("blogID"), fill.String(func(a *API, s string) { a.BlogID = s })),
}

// serviceTable returns the rules for a service element whose children
// are in namespace ns.
func serviceTable(ns string) fill.Table[*Document] {
	name := func(local string) xml.Name { return xmlutil.XMLName(local, ns) }

	settingsTable := fill.Table[*Settings]{
		fill.Elem(name("docs"), fill.URI(func(st *Settings, u *url.URL) { st.Docs = u })),
		fill.Elem(name("notes"), fill.String(func(st *Settings, s string) { st.Notes = s })),
		fill.Each(name("setting"), func(st *Settings, n *xmlquery.Node, c *fill.Context) {
			key, ok := xmlutil.AttrValue(n, attr("name"))
			if !ok {
				c.Skip(n, xmlutil.Text(n), "setting without a name")
				return
			}
			if st.Settings == nil {
				st.Settings = map[string]string{}
			}
			st.Settings[key] = xmlutil.Text(n)
		}),
	}
	apiTable := fill.Concat(apiAttrs, fill.Table[*API]{
		fill.Child(name("settings"), func(a *API, n *xmlquery.Node, c *fill.Context) {
			settingsTable.Apply(&a.Settings, n, c)
		}),
	})
	return fill.Table[*Document]{
		fill.Elem(name("engineName"), fill.String(func(d *Document, s string) { d.EngineName = s })),
		fill.Elem(name("engineLink"), fill.URI(func(d *Document, u *url.URL) { d.EngineLink = u })),
		fill.Elem(name("homePageLink"), fill.URI(func(d *Document, u *url.URL) { d.Homepage = u })),
		fill.Within(name("apis"), name("api"), func(d *Document, n *xmlquery.Node, c *fill.Context) {
			a := API{}
			apiTable.Apply(&a, n, c)
			d.APIs = append(d.APIs, a)
		}),
	}
}

var services = map[string]fill.Table[*Document]{
	xmlutil.NSRsd: serviceTable(xmlutil.NSRsd),
	"":            serviceTable(""),
}

var versions = []format.Version{format.V06, format.V10}

// Adapter fills a Document from an RSD document.
type Adapter struct {
	src *fill.Source
}

// NewAdapter returns an Adapter for doc, a parsed RSD 0.6 or 1.0
// document. Extensions are looked up in reg.
func NewAdapter(doc *xmlquery.Node, s settings.Load, reg *extension.Registry) (*Adapter, error) {
	src, err := fill.NewSource("rsd.NewAdapter", doc, s, reg, xmlutil.NSRsd)
	if err != nil {
		return nil, err
	}
	for _, v := range versions {
		if src.Version() == v {
			return &Adapter{src: src}, nil
		}
	}
	return nil, src.Unsupported(format.Rsd)
}

// Versions returns the RSD versions an Adapter can fill from.
func Versions() []format.Version { return append([]format.Version(nil), versions...) }

// Version returns the RSD version of the adapter's document.
func (a *Adapter) Version() format.Version { return a.src.Version() }

// Extensions returns the adapter used to discover extensions.
func (a *Adapter) Extensions() *extension.Adapter { return a.src.Extensions() }

// service returns the service element. Some engines publish the service
// element without the RSD namespace, so a namespace-less element is
// accepted as well.
func (a *Adapter) service() *xmlquery.Node {
	for _, names := range [][]xml.Name{
		{xmlutil.XMLName("rsd", xmlutil.NSRsd), xmlutil.XMLName("service", xmlutil.NSRsd)},
		{xmlutil.XMLName("rsd", xmlutil.NSRsd), xmlutil.XMLName("service")},
		{xmlutil.XMLName("rsd"), xmlutil.XMLName("service")},
	} {
		if n := a.src.Select(names...); n != nil {
			return n
		}
	}
	return nil
}

// Fill populates target, which must be a *Document.
func (a *Adapter) Fill(target format.Resource) error {
	d, ok := target.(*Document)
	if !ok || d == nil {
		return fill.WrongTarget("rsd.Adapter.Fill", target)
	}
	svc := a.service()
	if svc == nil {
		return nil
	}
	c := a.src.Context(svc)
	d.Version = a.src.Version()
	services[svc.NamespaceURI].Apply(d, svc, c)
	c.Extend(d, svc)
	return nil
}
