package rss

import (
	"sort"

	"github.com/andaru/syndication/extension"
	"github.com/andaru/syndication/fill"
	"github.com/andaru/syndication/format"
	"github.com/andaru/syndication/settings"
	"github.com/andaru/syndication/xmlutil"
	"github.com/antchfx/xmlquery"
)

// Adapter fills a Feed from an RSS document.
type Adapter struct {
	src *fill.Source
	d   *dialect
}

// NewAdapter returns an Adapter for doc, a parsed RSS document of any
// supported revision. Extensions are looked up in reg.
func NewAdapter(doc *xmlquery.Node, s settings.Load, reg *extension.Registry) (*Adapter, error) {
	src, err := fill.NewSource("rss.NewAdapter", doc, s, reg, xmlutil.NSRss10, xmlutil.NSRss090, xmlutil.NSRDF)
	if err != nil {
		return nil, err
	}
	d, ok := dialects[src.Version()]
	if !ok {
		return nil, src.Unsupported(format.Rss)
	}
	return &Adapter{src: src, d: d}, nil
}

// Versions returns the RSS revisions an Adapter can fill from.
func Versions() []format.Version {
	vs := make([]format.Version, 0, len(dialects))
	for v := range dialects {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i].Less(vs[j]) })
	return vs
}

// Version returns the revision of the adapter's document.
func (a *Adapter) Version() format.Version { return a.src.Version() }

// Extensions returns the adapter used to discover extensions.
func (a *Adapter) Extensions() *extension.Adapter { return a.src.Extensions() }

// Fill populates target, which must be a *Feed. A document without a
// channel leaves target untouched.
func (a *Adapter) Fill(target format.Resource) error {
	f, ok := target.(*Feed)
	if !ok || f == nil {
		return fill.WrongTarget("rss.Adapter.Fill", target)
	}
	var channel *xmlquery.Node
	if a.d.rdf {
		channel = a.src.Select(xmlutil.XMLName("RDF", xmlutil.NSRDF), xmlutil.XMLName("channel", a.d.ns))
	} else {
		channel = a.src.Select(name("rss"), name("channel"))
	}
	if channel == nil {
		return nil
	}
	root := channel.Parent
	c := a.src.Context(root)
	f.Version = a.src.Version()
	a.d.channel.Apply(&f.Channel, channel, c)
	if a.d.rdf {
		a.d.siblings.Apply(&f.Channel, root, c)
	}
	c.Extend(&f.Channel, channel)
	return nil
}
